// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/cargoship/cargoship/pkg/cargo"
	"github.com/cargoship/cargoship/pkg/cueutil"
	"github.com/cargoship/cargoship/pkg/types"
)

const (
	// OpLoadCargo fills a container with cargo_mass.
	OpLoadCargo Op = "load_cargo"
	// OpEmptyCargo empties a container.
	OpEmptyCargo Op = "empty_cargo"
	// OpLoad puts a container on the ship.
	OpLoad Op = "load"
	// OpUnload takes a container off the ship.
	OpUnload Op = "unload"
	// OpReplace swaps a container aboard for the one named by with.
	OpReplace Op = "replace"
	// OpNotifyHazard raises a hazard alert for a container.
	OpNotifyHazard Op = "notify_hazard"
	// OpPrint writes the ship information.
	OpPrint Op = "print"
)

var (
	//go:embed manifest_schema.cue
	manifestSchema []byte

	//go:embed demo.cue
	demoManifest []byte

	// ErrInvalidManifest is the sentinel error wrapped by InvalidManifestError.
	ErrInvalidManifest = errors.New("invalid manifest")
	// ErrInvalidOp is the sentinel error wrapped by InvalidOpError.
	ErrInvalidOp = errors.New("invalid step operation")
	// ErrDuplicateSerial is returned when two containers share a serial number.
	ErrDuplicateSerial = errors.New("duplicate container serial")
	// ErrUnknownContainer is returned when a step names an undeclared container.
	ErrUnknownContainer = errors.New("unknown container")
	// ErrHazardUnsupported is returned when notify_hazard targets a container
	// that cannot raise hazard alerts.
	ErrHazardUnsupported = errors.New("container cannot notify hazards")
)

type (
	// Op names a voyage step.
	Op string

	// Manifest is a parsed voyage plan.
	Manifest struct {
		Ship       ShipSpec        `json:"ship"`
		Containers []ContainerSpec `json:"containers"`
		Steps      []Step          `json:"steps"`

		// FilePath is where the manifest was read from, if anywhere.
		FilePath string `json:"-"`
	}

	// ShipSpec holds the ship limits.
	ShipSpec struct {
		Name          string          `json:"name"`
		MaxSpeed      types.Knots     `json:"max_speed"`
		MaxContainers int             `json:"max_containers"`
		MaxWeight     types.Kilograms `json:"max_weight"`
	}

	// ContainerSpec declares one container. Variant fields only apply to
	// their kind: Hazardous to liquid, Pressure to liquid and gas,
	// Temperatures to refrigerated.
	ContainerSpec struct {
		Kind         cargo.Kind               `json:"kind"`
		Serial       types.SerialNumber       `json:"serial,omitempty"`
		Mass         types.Kilograms          `json:"mass"`
		Height       types.Centimeters        `json:"height"`
		TareWeight   types.Kilograms          `json:"tare_weight"`
		Depth        types.Centimeters        `json:"depth"`
		MaxPayload   types.Kilograms          `json:"max_payload"`
		Hazardous    bool                     `json:"hazardous,omitempty"`
		Pressure     types.Bar                `json:"pressure,omitempty"`
		Temperatures map[string]types.Celsius `json:"temperatures,omitempty"`
	}

	// Step is one operation of the voyage.
	Step struct {
		Op        Op                 `json:"op"`
		Container types.SerialNumber `json:"container,omitempty"`
		CargoMass types.Kilograms    `json:"cargo_mass,omitempty"`
		With      types.SerialNumber `json:"with,omitempty"`
	}

	// InvalidOpError is returned for an unknown Op.
	InvalidOpError struct {
		Value Op
	}

	// DuplicateSerialError reports the second declaration of a serial.
	DuplicateSerialError struct {
		Serial types.SerialNumber
		// Index is the position of the duplicate in Manifest.Containers.
		Index int
	}

	// StepReferenceError reports a step that names a container it cannot use.
	StepReferenceError struct {
		Step   int
		Op     Op
		Serial types.SerialNumber
		Err    error
	}

	// InvalidManifestError aggregates every problem found by Validate.
	InvalidManifestError struct {
		FilePath    string
		FieldErrors []error
	}
)

// Parse reads and parses a manifest file.
func Parse(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest at %s: %w", path, err)
	}

	return ParseBytes(data, path)
}

// ParseBytes parses manifest content. filename is only used in messages.
func ParseBytes(data []byte, filename string) (*Manifest, error) {
	result, err := cueutil.Decode[Manifest](manifestSchema, data, "#Manifest",
		cueutil.WithFilename(filename),
	)
	if err != nil {
		return nil, err
	}

	m := result.Value
	m.FilePath = filename
	m.assignSerials()

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Demo returns the built-in demonstration voyage: a hazardous liquid
// container KON-L-1 loaded onto Ship 1, followed by the ship information.
func Demo() (*Manifest, error) {
	return ParseBytes(demoManifest, "demo.cue")
}

// DemoSource returns the CUE text of the demonstration voyage.
func DemoSource() []byte {
	return append([]byte(nil), demoManifest...)
}

// assignSerials gives every container without a serial the next number of
// its kind (KON-L-1, KON-L-2, ...). Declared serials consume a number too, so
// adding a serial to one container never renumbers the others.
func (m *Manifest) assignSerials() {
	seq := make(map[cargo.Kind]int)
	for i := range m.Containers {
		c := &m.Containers[i]
		seq[c.Kind]++
		if c.Serial == "" && c.Kind.Validate() == nil {
			c.Serial = types.NewSerialNumber(c.Kind.Code(), seq[c.Kind])
		}
	}
}

// Validate checks the parts of a manifest the schema cannot: container
// specs, unique serials and step references. It returns an
// *InvalidManifestError listing every problem, or nil.
func (m *Manifest) Validate() error {
	var errs []error

	kinds := make(map[types.SerialNumber]cargo.Kind, len(m.Containers))
	for i, c := range m.Containers {
		if err := c.validate(); err != nil {
			errs = append(errs, fmt.Errorf("container #%d: %w", i+1, err))
			continue
		}
		if _, dup := kinds[c.Serial]; dup {
			errs = append(errs, &DuplicateSerialError{Serial: c.Serial, Index: i})
			continue
		}
		kinds[c.Serial] = c.Kind
	}

	for i, s := range m.Steps {
		if err := s.Op.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("step %d: %w", i+1, err))
			continue
		}
		if s.Op == OpPrint {
			continue
		}

		kind, ok := kinds[s.Container]
		if !ok {
			errs = append(errs, &StepReferenceError{Step: i, Op: s.Op, Serial: s.Container, Err: ErrUnknownContainer})
			continue
		}
		if s.Op == OpNotifyHazard && kind == cargo.KindRefrigerated {
			errs = append(errs, &StepReferenceError{Step: i, Op: s.Op, Serial: s.Container, Err: ErrHazardUnsupported})
		}
		if s.Op == OpLoadCargo {
			if err := s.CargoMass.Validate(); err != nil {
				errs = append(errs, fmt.Errorf("step %d: %w", i+1, err))
			}
		}
		if s.Op == OpReplace {
			if _, ok := kinds[s.With]; !ok {
				errs = append(errs, &StepReferenceError{Step: i, Op: s.Op, Serial: s.With, Err: ErrUnknownContainer})
			}
		}
	}

	if len(errs) > 0 {
		return &InvalidManifestError{FilePath: m.FilePath, FieldErrors: errs}
	}
	return nil
}

// Spec returns the shared container attributes.
func (c ContainerSpec) Spec() cargo.Spec {
	return cargo.Spec{
		Serial:     c.Serial,
		Mass:       c.Mass,
		Height:     c.Height,
		TareWeight: c.TareWeight,
		Depth:      c.Depth,
		MaxPayload: c.MaxPayload,
	}
}

func (c ContainerSpec) validate() error {
	if err := c.Kind.Validate(); err != nil {
		return err
	}
	if err := c.Spec().Validate(); err != nil {
		return err
	}
	if err := c.Pressure.Validate(); err != nil {
		return err
	}
	for _, t := range c.Temperatures {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate returns an error if the Op is not recognized.
func (o Op) Validate() error {
	switch o {
	case OpLoadCargo, OpEmptyCargo, OpLoad, OpUnload, OpReplace, OpNotifyHazard, OpPrint:
		return nil
	default:
		return &InvalidOpError{Value: o}
	}
}

// String returns the op name.
func (o Op) String() string { return string(o) }

// Error implements the error interface for InvalidOpError.
func (e *InvalidOpError) Error() string {
	return fmt.Sprintf("invalid step operation %q", e.Value)
}

// Unwrap returns ErrInvalidOp for errors.Is() compatibility.
func (e *InvalidOpError) Unwrap() error { return ErrInvalidOp }

// Error implements the error interface for DuplicateSerialError.
func (e *DuplicateSerialError) Error() string {
	return fmt.Sprintf("container #%d: serial %s is already declared", e.Index+1, e.Serial)
}

// Unwrap returns ErrDuplicateSerial for errors.Is() compatibility.
func (e *DuplicateSerialError) Unwrap() error { return ErrDuplicateSerial }

// Error implements the error interface for StepReferenceError.
func (e *StepReferenceError) Error() string {
	return fmt.Sprintf("step %d (%s): %s: %v", e.Step+1, e.Op, e.Serial, e.Err)
}

// Unwrap returns the reason the reference is invalid.
func (e *StepReferenceError) Unwrap() error { return e.Err }

// Error implements the error interface for InvalidManifestError.
func (e *InvalidManifestError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	name := e.FilePath
	if name == "" {
		name = "manifest"
	}
	return fmt.Sprintf("%s: %s", name, strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidManifest and the individual field errors.
func (e *InvalidManifestError) Unwrap() []error {
	return append([]error{ErrInvalidManifest}, e.FieldErrors...)
}
