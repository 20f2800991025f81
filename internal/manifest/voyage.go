// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/cargoship/cargoship/pkg/cargo"
	"github.com/cargoship/cargoship/pkg/ship"
	"github.com/cargoship/cargoship/pkg/types"
)

// ErrRejected is returned by a strict voyage when the ship refuses a step.
var ErrRejected = errors.New("ship rejected the operation")

type (
	// Option configures Build.
	Option func(*buildOptions)

	buildOptions struct {
		logger   *log.Logger
		reporter io.Writer
		strict   bool
	}

	// Voyage is a manifest bound to live containers and a ship.
	Voyage struct {
		ship       *ship.ContainerShip
		containers map[types.SerialNumber]cargo.Container
		order      []types.SerialNumber
		steps      []Step
		strict     bool
		logger     *log.Logger
	}

	// Report describes a voyage run: what each executed step did and the
	// final state of the ship.
	Report struct {
		Steps []StepResult  `json:"steps" toml:"steps"`
		Ship  ship.Snapshot `json:"ship" toml:"ship"`
	}

	// StepResult records one executed step.
	StepResult struct {
		// Index is the zero-based position of the step in the manifest.
		Index     int                `json:"index" toml:"index"`
		Op        Op                 `json:"op" toml:"op"`
		Container types.SerialNumber `json:"container,omitempty" toml:"container,omitempty"`
		// Outcome is the ship outcome for load, unload and replace steps.
		Outcome string `json:"outcome,omitempty" toml:"outcome,omitempty"`
		Message string `json:"message,omitempty" toml:"message,omitempty"`
		// Rejected is set when the ship refused the operation.
		Rejected bool `json:"rejected" toml:"rejected"`
	}

	// StepError stops a voyage. It carries the index of the failing step.
	StepError struct {
		Index     int
		Op        Op
		Container types.SerialNumber
		Err       error
	}

	// RejectedError wraps a ship refusal in strict mode.
	RejectedError struct {
		Result ship.Result
	}
)

// WithLogger sets the logger handed to the ship and every container.
func WithLogger(logger *log.Logger) Option {
	return func(o *buildOptions) {
		o.logger = logger
	}
}

// WithReporter sets where the ship writes its operation messages.
func WithReporter(w io.Writer) Option {
	return func(o *buildOptions) {
		o.reporter = w
	}
}

// WithStrict makes ship refusals (capacity, weight, not found) stop the run.
func WithStrict(strict bool) Option {
	return func(o *buildOptions) {
		o.strict = strict
	}
}

// Build validates m and instantiates its containers and ship.
func (m *Manifest) Build(opts ...Option) (*Voyage, error) {
	o := buildOptions{logger: log.Default(), reporter: io.Discard}
	for _, opt := range opts {
		opt(&o)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	v := &Voyage{
		containers: make(map[types.SerialNumber]cargo.Container, len(m.Containers)),
		order:      make([]types.SerialNumber, 0, len(m.Containers)),
		steps:      append([]Step(nil), m.Steps...),
		strict:     o.strict,
		logger:     o.logger,
	}

	for i, cs := range m.Containers {
		c, err := newContainer(cs, cargo.WithLogger(o.logger))
		if err != nil {
			return nil, fmt.Errorf("container #%d: %w", i+1, err)
		}
		v.containers[c.Serial()] = c
		v.order = append(v.order, c.Serial())
	}

	s, err := ship.New(m.Ship.Name, m.Ship.MaxSpeed, m.Ship.MaxContainers, m.Ship.MaxWeight,
		ship.WithReporter(o.reporter),
		ship.WithLogger(o.logger),
	)
	if err != nil {
		return nil, err
	}
	v.ship = s

	return v, nil
}

func newContainer(cs ContainerSpec, opts ...cargo.Option) (cargo.Container, error) {
	switch cs.Kind {
	case cargo.KindLiquid:
		return cargo.NewLiquidContainer(cs.Spec(), cs.Hazardous, cs.Pressure, opts...)
	case cargo.KindGas:
		return cargo.NewGasContainer(cs.Spec(), cs.Pressure, opts...)
	case cargo.KindRefrigerated:
		return cargo.NewRefrigeratedContainer(cs.Spec(), cs.Temperatures, opts...)
	default:
		return nil, &cargo.InvalidKindError{Value: cs.Kind}
	}
}

// Ship returns the voyage's ship.
func (v *Voyage) Ship() *ship.ContainerShip { return v.ship }

// Container returns the declared container with the given serial.
func (v *Voyage) Container(serial types.SerialNumber) (cargo.Container, bool) {
	c, ok := v.containers[serial]
	return c, ok
}

// Containers returns every declared container in manifest order, whether
// aboard or not.
func (v *Voyage) Containers() []cargo.Container {
	out := make([]cargo.Container, len(v.order))
	for i, serial := range v.order {
		out[i] = v.containers[serial]
	}
	return out
}

// Run executes the steps in order, writing ship information for print steps
// to w. A cargo overfill stops the run with a *StepError wrapping the
// *cargo.OverfillError; ship refusals are recorded in the report and only
// stop the run in strict mode. The report is returned even on error and
// covers the steps executed so far.
func (v *Voyage) Run(ctx context.Context, w io.Writer) (*Report, error) {
	report := &Report{Steps: make([]StepResult, 0, len(v.steps))}
	defer func() { report.Ship = v.ship.Snapshot() }()

	for i, step := range v.steps {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("voyage canceled before step %d: %w", i+1, err)
		}

		v.logger.Debug("voyage step", "index", i, "op", step.Op, "container", step.Container)

		res, err := v.execute(step, w)
		if err != nil {
			return report, &StepError{Index: i, Op: step.Op, Container: step.Container, Err: err}
		}

		sr := StepResult{Index: i, Op: step.Op, Container: step.Container}
		if res != nil {
			sr.Outcome = res.Outcome.String()
			sr.Message = res.Message
			sr.Rejected = !res.OK()
		}
		report.Steps = append(report.Steps, sr)

		if sr.Rejected && v.strict {
			return report, &StepError{Index: i, Op: step.Op, Container: step.Container, Err: &RejectedError{Result: *res}}
		}
	}

	return report, nil
}

// execute runs one step. It returns the ship result for ship operations.
func (v *Voyage) execute(step Step, w io.Writer) (*ship.Result, error) {
	if step.Op == OpPrint {
		return nil, v.ship.PrintShipInfo(w)
	}

	c, ok := v.containers[step.Container]
	if !ok {
		return nil, fmt.Errorf("%s: %w", step.Container, ErrUnknownContainer)
	}

	var res ship.Result
	switch step.Op {
	case OpLoadCargo:
		return nil, c.LoadCargo(step.CargoMass)
	case OpEmptyCargo:
		c.EmptyCargo()
		return nil, nil
	case OpNotifyHazard:
		n, ok := c.(cargo.HazardNotifier)
		if !ok {
			return nil, fmt.Errorf("%s: %w", step.Container, ErrHazardUnsupported)
		}
		n.NotifyHazard(c.Serial())
		return nil, nil
	case OpLoad:
		res = v.ship.LoadContainer(c)
	case OpUnload:
		res = v.ship.UnloadContainer(c)
	case OpReplace:
		replacement, ok := v.containers[step.With]
		if !ok {
			return nil, fmt.Errorf("%s: %w", step.With, ErrUnknownContainer)
		}
		res = v.ship.ReplaceContainer(c, replacement)
	default:
		return nil, &InvalidOpError{Value: step.Op}
	}
	return &res, nil
}

// Rejections returns the steps the ship refused.
func (r *Report) Rejections() []StepResult {
	var out []StepResult
	for _, s := range r.Steps {
		if s.Rejected {
			out = append(out, s)
		}
	}
	return out
}

// Error implements the error interface for StepError.
func (e *StepError) Error() string {
	if e.Container == "" {
		return fmt.Sprintf("step %d (%s): %v", e.Index+1, e.Op, e.Err)
	}
	return fmt.Sprintf("step %d (%s %s): %v", e.Index+1, e.Op, e.Container, e.Err)
}

// Unwrap returns the underlying failure.
func (e *StepError) Unwrap() error { return e.Err }

// Error implements the error interface for RejectedError.
func (e *RejectedError) Error() string { return e.Result.Message }

// Unwrap returns ErrRejected for errors.Is() compatibility.
func (e *RejectedError) Unwrap() error { return ErrRejected }
