// SPDX-License-Identifier: MPL-2.0

package ship

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/cargoship/cargoship/pkg/cargo"
	"github.com/cargoship/cargoship/pkg/types"
)

func newLiquid(t *testing.T, serial types.SerialNumber, mass types.Kilograms) *cargo.LiquidContainer {
	t.Helper()
	c, err := cargo.NewLiquidContainer(cargo.Spec{
		Serial:     serial,
		Mass:       mass,
		Height:     200,
		TareWeight: 100,
		Depth:      150,
		MaxPayload: 10000,
	}, true, 1.5)
	if err != nil {
		t.Fatalf("NewLiquidContainer(%s) error = %v", serial, err)
	}
	return c
}

func newShip(t *testing.T, maxContainers int, maxWeight types.Kilograms, opts ...Option) *ContainerShip {
	t.Helper()
	s, err := New("Ship 1", 20, maxContainers, maxWeight, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return s
}

func TestLoadContainerScenario(t *testing.T) {
	t.Parallel()

	var report bytes.Buffer
	s := newShip(t, 200, 50000, WithReporter(&report))
	c := newLiquid(t, "KON-L-1", 5000)

	res := s.LoadContainer(c)
	if res.Outcome != Loaded || !res.OK() {
		t.Fatalf("LoadContainer() = %+v, want Loaded", res)
	}
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	if !strings.Contains(report.String(), "Container KON-L-1 loaded on ship Ship 1.") {
		t.Errorf("report = %q, want load confirmation", report.String())
	}

	var info bytes.Buffer
	if err := s.PrintShipInfo(&info); err != nil {
		t.Fatalf("PrintShipInfo() error = %v", err)
	}
	want := "Ship: Ship 1\n" +
		"Max Speed: 20 knots\n" +
		"Max Container Capacity: 200\n" +
		"Max Weight Capacity: 50000kg\n" +
		"Containers on board:\n" +
		"- KON-L-1\n"
	if info.String() != want {
		t.Errorf("PrintShipInfo() =\n%s\nwant\n%s", info.String(), want)
	}
}

func TestLoadContainerCapacityLimit(t *testing.T) {
	t.Parallel()

	const limit = 3
	s := newShip(t, limit, 1_000_000)

	for i := 1; i <= limit; i++ {
		res := s.LoadContainer(newLiquid(t, types.NewSerialNumber('L', i), 10))
		if res.Outcome != Loaded {
			t.Fatalf("load %d: outcome = %v, want loaded", i, res.Outcome)
		}
		if s.Len() != i {
			t.Fatalf("load %d: Len() = %d", i, s.Len())
		}
	}

	res := s.LoadContainer(newLiquid(t, "KON-L-99", 10))
	if res.Outcome != CapacityExceeded || res.OK() {
		t.Errorf("over-capacity load = %+v, want CapacityExceeded", res)
	}
	if s.Len() != limit {
		t.Errorf("Len() = %d after rejected load, want %d", s.Len(), limit)
	}
}

func TestLoadContainerCapacityCheckedBeforeWeight(t *testing.T) {
	t.Parallel()

	s := newShip(t, 0, 0)
	res := s.LoadContainer(newLiquid(t, "KON-L-1", 5000))
	if res.Outcome != CapacityExceeded {
		t.Errorf("outcome = %v, want capacity-exceeded", res.Outcome)
	}
}

func TestLoadContainerWeightLimit(t *testing.T) {
	t.Parallel()

	var report bytes.Buffer
	s := newShip(t, 10, 10000, WithReporter(&report))

	first := newLiquid(t, "KON-L-1", 6000)
	second := newLiquid(t, "KON-L-2", 4000)
	third := newLiquid(t, "KON-L-3", 0.5)

	if res := s.LoadContainer(first); res.Outcome != Loaded {
		t.Fatalf("first load = %v", res.Outcome)
	}
	if res := s.LoadContainer(second); res.Outcome != Loaded {
		t.Fatalf("load up to the exact limit = %v, want loaded", res.Outcome)
	}

	res := s.LoadContainer(third)
	if res.Outcome != WeightExceeded {
		t.Fatalf("over-weight load = %v, want weight-exceeded", res.Outcome)
	}
	if !strings.Contains(report.String(), "Maximum weight limit (10000kg) reached on ship Ship 1.") {
		t.Errorf("report = %q, want weight rejection", report.String())
	}

	got := s.Containers()
	if len(got) != 2 || got[0] != cargo.Container(first) || got[1] != cargo.Container(second) {
		t.Errorf("Containers() = %v, want prior containers kept", got)
	}
	if s.TotalWeight() != 10000 {
		t.Errorf("TotalWeight() = %v, want 10000", s.TotalWeight())
	}
}

func TestTotalWeightIgnoresCargoMass(t *testing.T) {
	t.Parallel()

	s := newShip(t, 10, 6000)
	c := newLiquid(t, "KON-L-1", 5000)
	if err := c.LoadCargo(6000); err == nil {
		t.Fatal("hazardous liquid must reject 6000kg of a 10000kg payload")
	}
	if err := c.LoadCargo(5000); err != nil {
		t.Fatal(err)
	}
	s.LoadContainer(c)

	if s.TotalWeight() != 5000 {
		t.Errorf("TotalWeight() = %v, want the gross mass 5000", s.TotalWeight())
	}
}

func TestUnloadContainer(t *testing.T) {
	t.Parallel()

	var report bytes.Buffer
	s := newShip(t, 10, 100000, WithReporter(&report))
	a := newLiquid(t, "KON-L-1", 100)
	b := newLiquid(t, "KON-L-2", 100)
	s.LoadContainer(a)
	s.LoadContainer(b)
	s.LoadContainer(a)

	t.Run("not found leaves sequence unchanged", func(t *testing.T) {
		stranger := newLiquid(t, "KON-L-1", 100)
		res := s.UnloadContainer(stranger)
		if res.Outcome != NotFound {
			t.Fatalf("outcome = %v, want not-found (identity, not serial, matters)", res.Outcome)
		}
		if s.Len() != 3 {
			t.Errorf("Len() = %d, want 3", s.Len())
		}
		if !strings.Contains(report.String(), "Container KON-L-1 not found on ship Ship 1.") {
			t.Errorf("report = %q, want not-found message", report.String())
		}
	})

	t.Run("removes first occurrence only", func(t *testing.T) {
		res := s.UnloadContainer(a)
		if res.Outcome != Unloaded {
			t.Fatalf("outcome = %v, want unloaded", res.Outcome)
		}
		got := s.Containers()
		if len(got) != 2 || got[0] != cargo.Container(b) || got[1] != cargo.Container(a) {
			t.Errorf("Containers() = %v, want [b a]", got)
		}
	})
}

func TestReplaceContainer(t *testing.T) {
	t.Parallel()

	s := newShip(t, 3, 1000)
	a := newLiquid(t, "KON-L-1", 400)
	b := newLiquid(t, "KON-L-2", 400)
	heavy := newLiquid(t, "KON-L-3", 5000)
	s.LoadContainer(a)
	s.LoadContainer(b)

	res := s.ReplaceContainer(a, heavy)
	if res.Outcome != Replaced || res.Serial != "KON-L-3" {
		t.Fatalf("ReplaceContainer() = %+v, want Replaced with KON-L-3", res)
	}
	if !strings.Contains(res.Message, "Container KON-L-1 replaced with KON-L-3 on ship Ship 1.") {
		t.Errorf("message = %q", res.Message)
	}

	got := s.Containers()
	if len(got) != 2 || got[0] != cargo.Container(heavy) || got[1] != cargo.Container(b) {
		t.Errorf("Containers() = %v, want heavy in a's former slot", got)
	}
	// Replacement skips the weight check that loading enforces.
	if s.TotalWeight() <= s.MaxWeight() {
		t.Errorf("TotalWeight() = %v, want it above the limit %v after replacement", s.TotalWeight(), s.MaxWeight())
	}

	missing := s.ReplaceContainer(a, b)
	if missing.Outcome != NotFound || missing.OK() {
		t.Errorf("replace of absent container = %+v, want NotFound", missing)
	}
	if !strings.HasSuffix(missing.Message, "Replacement failed.") {
		t.Errorf("message = %q", missing.Message)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestNewValidatesLimits(t *testing.T) {
	t.Parallel()

	_, err := New("", -1, -1, -5)
	if !errors.Is(err, ErrInvalidShip) {
		t.Fatalf("New() error = %v, want ErrInvalidShip", err)
	}
	if !errors.Is(err, types.ErrInvalidSpeed) || !errors.Is(err, types.ErrInvalidMass) {
		t.Errorf("error should expose field errors: %v", err)
	}

	var invalid *InvalidShipError
	if !errors.As(err, &invalid) || len(invalid.FieldErrors) != 4 {
		t.Errorf("expected 4 field errors, got %v", err)
	}
}

func TestSnapshot(t *testing.T) {
	t.Parallel()

	s := newShip(t, 5, 20000)
	liquid := newLiquid(t, "KON-L-1", 5000)
	gas, err := cargo.NewGasContainer(cargo.Spec{Serial: "KON-G-1", Mass: 3000, MaxPayload: 2000}, 4)
	if err != nil {
		t.Fatal(err)
	}
	if err := gas.LoadCargo(1500); err != nil {
		t.Fatal(err)
	}
	s.LoadContainer(liquid)
	s.LoadContainer(gas)

	snap := s.Snapshot()
	if snap.TotalWeight != 8000 || len(snap.Containers) != 2 {
		t.Fatalf("Snapshot() = %+v", snap)
	}
	if !snap.Containers[0].Hazardous || snap.Containers[0].Kind != cargo.KindLiquid {
		t.Errorf("entry 0 = %+v, want hazardous liquid", snap.Containers[0])
	}
	if snap.Containers[1].CargoMass != 1500 || snap.Containers[1].Hazardous {
		t.Errorf("entry 1 = %+v", snap.Containers[1])
	}
	if got := snap.Utilization(); got != 0.4 {
		t.Errorf("Utilization() = %v, want 0.4", got)
	}
}

func TestConcurrentLoadsRespectCapacity(t *testing.T) {
	t.Parallel()

	const limit = 25
	s := newShip(t, limit, 1_000_000)

	var wg sync.WaitGroup
	for i := range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c, err := cargo.NewGasContainer(cargo.Spec{Serial: types.NewSerialNumber('G', i), Mass: 1}, 1)
			if err != nil {
				t.Error(err)
				return
			}
			s.LoadContainer(c)
		}()
	}
	wg.Wait()

	if s.Len() != limit {
		t.Errorf("Len() = %d, want %d", s.Len(), limit)
	}
}
