// SPDX-License-Identifier: MPL-2.0

package ship

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/cargoship/cargoship/pkg/cargo"
	"github.com/cargoship/cargoship/pkg/types"

	"github.com/charmbracelet/log"
)

// ErrInvalidShip is the sentinel error wrapped by InvalidShipError.
var ErrInvalidShip = errors.New("invalid ship")

type (
	// ContainerShip carries containers by reference in an ordered sequence that
	// may hold the same container more than once. All operations are serialized
	// by a single mutex so the count and weight invariants hold under
	// concurrent use.
	ContainerShip struct {
		name            string
		maxSpeed        types.Knots
		maxContainerNum int
		maxWeight       types.Kilograms

		mu         sync.Mutex
		containers []cargo.Container

		reporter io.Writer
		logger   *log.Logger
	}

	// Option configures a ContainerShip at construction time.
	Option func(*ContainerShip)

	// InvalidShipError aggregates the field errors of an invalid ship definition.
	InvalidShipError struct {
		Name        string
		FieldErrors []error
	}
)

// WithReporter sets the writer user-visible operation messages are printed to.
// The default discards them.
func WithReporter(w io.Writer) Option {
	return func(s *ContainerShip) {
		if w != nil {
			s.reporter = w
		}
	}
}

// WithLogger sets the logger the ship records its operations to at debug level.
func WithLogger(logger *log.Logger) Option {
	return func(s *ContainerShip) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New validates the limits and returns an empty ship.
func New(name string, maxSpeed types.Knots, maxContainerNum int, maxWeight types.Kilograms, opts ...Option) (*ContainerShip, error) {
	var errs []error
	if name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if err := maxSpeed.Validate(); err != nil {
		errs = append(errs, err)
	}
	if maxContainerNum < 0 {
		errs = append(errs, fmt.Errorf("max container count %d must not be negative", maxContainerNum))
	}
	if err := maxWeight.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, &InvalidShipError{Name: name, FieldErrors: errs}
	}

	s := &ContainerShip{
		name:            name,
		maxSpeed:        maxSpeed,
		maxContainerNum: maxContainerNum,
		maxWeight:       maxWeight,
		reporter:        io.Discard,
		logger:          log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Name returns the ship name.
func (s *ContainerShip) Name() string { return s.name }

// MaxSpeed returns the ship's maximum speed.
func (s *ContainerShip) MaxSpeed() types.Knots { return s.maxSpeed }

// MaxContainerNum returns the maximum number of containers aboard.
func (s *ContainerShip) MaxContainerNum() int { return s.maxContainerNum }

// MaxWeight returns the limit for the summed gross mass of all containers aboard.
func (s *ContainerShip) MaxWeight() types.Kilograms { return s.maxWeight }

// Len returns the number of containers aboard.
func (s *ContainerShip) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.containers)
}

// Containers returns a copy of the container sequence in load order.
func (s *ContainerShip) Containers() []cargo.Container {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]cargo.Container, len(s.containers))
	copy(out, s.containers)
	return out
}

// TotalWeight returns the sum of the gross Mass of every container aboard.
// Cargo mass is not included.
func (s *ContainerShip) TotalWeight() types.Kilograms {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalWeight()
}

func (s *ContainerShip) totalWeight() types.Kilograms {
	var total types.Kilograms
	for _, c := range s.containers {
		total += c.Mass()
	}
	return total
}

// LoadContainer appends c unless the ship is full or c's gross mass would push
// the total over the weight limit. The count limit is checked first.
func (s *ContainerShip) LoadContainer(c cargo.Container) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.containers) >= s.maxContainerNum {
		return s.report(Result{
			Outcome: CapacityExceeded,
			Serial:  c.Serial(),
			Message: fmt.Sprintf("Cannot load container %s. Maximum container limit (%d) reached on ship %s.",
				c.Serial(), s.maxContainerNum, s.name),
		})
	}

	if s.totalWeight()+c.Mass() > s.maxWeight {
		return s.report(Result{
			Outcome: WeightExceeded,
			Serial:  c.Serial(),
			Message: fmt.Sprintf("Cannot load container %s. Maximum weight limit (%skg) reached on ship %s.",
				c.Serial(), s.maxWeight, s.name),
		})
	}

	s.containers = append(s.containers, c)
	return s.report(Result{
		Outcome: Loaded,
		Serial:  c.Serial(),
		Message: fmt.Sprintf("Container %s loaded on ship %s.", c.Serial(), s.name),
	})
}

// UnloadContainer removes the first occurrence of c, compared by identity.
func (s *ContainerShip) UnloadContainer(c cargo.Container) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(c)
	if idx < 0 {
		return s.report(Result{
			Outcome: NotFound,
			Serial:  c.Serial(),
			Message: fmt.Sprintf("Container %s not found on ship %s.", c.Serial(), s.name),
		})
	}

	s.containers = append(s.containers[:idx], s.containers[idx+1:]...)
	return s.report(Result{
		Outcome: Unloaded,
		Serial:  c.Serial(),
		Message: fmt.Sprintf("Container %s unloaded from ship %s.", c.Serial(), s.name),
	})
}

// ReplaceContainer puts replacement into the slot of the first occurrence of
// old. The count and weight limits are not rechecked, so a replacement can
// leave the ship over its weight limit.
func (s *ContainerShip) ReplaceContainer(old, replacement cargo.Container) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(old)
	if idx < 0 {
		return s.report(Result{
			Outcome: NotFound,
			Serial:  old.Serial(),
			Message: fmt.Sprintf("Container %s not found on ship %s. Replacement failed.", old.Serial(), s.name),
		})
	}

	s.containers[idx] = replacement
	return s.report(Result{
		Outcome: Replaced,
		Serial:  replacement.Serial(),
		Message: fmt.Sprintf("Container %s replaced with %s on ship %s.", old.Serial(), replacement.Serial(), s.name),
	})
}

// PrintShipInfo writes the ship name, limits and the serial number of every
// container aboard in sequence order.
func (s *ContainerShip) PrintShipInfo(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := []string{
		fmt.Sprintf("Ship: %s", s.name),
		fmt.Sprintf("Max Speed: %s knots", s.maxSpeed),
		fmt.Sprintf("Max Container Capacity: %d", s.maxContainerNum),
		fmt.Sprintf("Max Weight Capacity: %skg", s.maxWeight),
		"Containers on board:",
	}
	for _, c := range s.containers {
		lines = append(lines, "- "+c.Serial().String())
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to print ship info: %w", err)
		}
	}
	return nil
}

// indexOf returns the index of the first container identical to c, or -1.
// Must be called with mu held.
func (s *ContainerShip) indexOf(c cargo.Container) int {
	for i, aboard := range s.containers {
		if aboard == c {
			return i
		}
	}
	return -1
}

// report writes r.Message to the reporter and logs the outcome.
// Must be called with mu held.
func (s *ContainerShip) report(r Result) Result {
	if _, err := fmt.Fprintln(s.reporter, r.Message); err != nil {
		s.logger.Warn("failed to write ship report", "ship", s.name, "error", err)
	}
	s.logger.Debug("ship operation",
		"ship", s.name,
		"container", r.Serial.String(),
		"outcome", r.Outcome.String(),
		"aboard", len(s.containers),
	)
	return r
}

// Error implements the error interface for InvalidShipError.
func (e *InvalidShipError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("invalid ship %q: %s", e.Name, strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidShip and the field errors for errors.Is() compatibility.
func (e *InvalidShipError) Unwrap() []error {
	return append([]error{ErrInvalidShip}, e.FieldErrors...)
}
