// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/cargoship/cargoship/internal/testutil"
	"github.com/cargoship/cargoship/pkg/cargo"
	"github.com/cargoship/cargoship/pkg/cueutil"
	"github.com/cargoship/cargoship/pkg/types"
)

const fleetManifest = `
ship: {
	name:           "Aurora"
	max_speed:      18.5
	max_containers: 3
	max_weight:     20000
}

containers: [
	{kind: "liquid", mass: 5000, height: 200, tare_weight: 100, depth: 150, max_payload: 10000, hazardous: true, pressure: 1.5},
	{kind: "gas", mass: 4000, height: 250, tare_weight: 300, depth: 120, max_payload: 6000, pressure: 8},
	{kind: "liquid", mass: 3000, height: 180, tare_weight: 90, depth: 140, max_payload: 8000},
	{kind: "refrigerated", serial: "REEF-7", mass: 6000, height: 260, tare_weight: 400, depth: 160, max_payload: 9000,
		temperatures: {bananas: 13.3, "ice cream": -18}},
]

steps: [
	{op: "load_cargo", container: "KON-L-1", cargo_mass: 4000},
	{op: "load", container: "KON-L-1"},
	{op: "load", container: "KON-G-1"},
	{op: "replace", container: "KON-G-1", with: "REEF-7"},
	{op: "notify_hazard", container: "KON-L-1"},
	{op: "print"},
]
`

func TestParseBytes(t *testing.T) {
	t.Parallel()

	m, err := ParseBytes([]byte(fleetManifest), "fleet.cue")
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}

	if m.Ship.Name != "Aurora" || m.Ship.MaxSpeed != 18.5 || m.Ship.MaxContainers != 3 || m.Ship.MaxWeight != 20000 {
		t.Errorf("ship = %+v", m.Ship)
	}
	if m.FilePath != "fleet.cue" {
		t.Errorf("FilePath = %q", m.FilePath)
	}
	if len(m.Containers) != 4 || len(m.Steps) != 6 {
		t.Fatalf("got %d containers and %d steps", len(m.Containers), len(m.Steps))
	}

	liquid := m.Containers[0]
	if !liquid.Hazardous || liquid.Pressure != 1.5 || liquid.MaxPayload != 10000 {
		t.Errorf("liquid container = %+v", liquid)
	}
	reefer := m.Containers[3]
	if reefer.Temperatures["ice cream"] != -18 || reefer.Temperatures["bananas"] != 13.3 {
		t.Errorf("temperatures = %v", reefer.Temperatures)
	}
	if m.Steps[0].CargoMass != 4000 || m.Steps[3].With != "REEF-7" {
		t.Errorf("steps = %+v", m.Steps)
	}
}

func TestParseBytesAssignsSerials(t *testing.T) {
	t.Parallel()

	m, err := ParseBytes([]byte(fleetManifest), "fleet.cue")
	if err != nil {
		t.Fatal(err)
	}

	want := []types.SerialNumber{"KON-L-1", "KON-G-1", "KON-L-2", "REEF-7"}
	for i, c := range m.Containers {
		if c.Serial != want[i] {
			t.Errorf("container #%d serial = %s, want %s", i+1, c.Serial, want[i])
		}
	}
}

func TestParseBytesSchemaErrors(t *testing.T) {
	t.Parallel()

	const ship = `ship: {name: "S", max_speed: 10, max_containers: 1, max_weight: 100}
`
	tests := []struct {
		name    string
		content string
	}{
		{name: "missing ship", content: `containers: [], steps: []`},
		{name: "empty ship name", content: `ship: {name: "", max_speed: 1, max_containers: 1, max_weight: 1}`},
		{name: "negative weight", content: `ship: {name: "S", max_speed: 1, max_containers: 1, max_weight: -5}`},
		{name: "fractional container count", content: `ship: {name: "S", max_speed: 1, max_containers: 1.5, max_weight: 1}`},
		{name: "unknown kind", content: ship + `containers: [{kind: "bulk", mass: 1, height: 1, tare_weight: 1, depth: 1, max_payload: 1}]`},
		{name: "hazardous gas", content: ship + `containers: [{kind: "gas", mass: 1, height: 1, tare_weight: 1, depth: 1, max_payload: 1, hazardous: true}]`},
		{name: "temperatures on liquid", content: ship + `containers: [{kind: "liquid", mass: 1, height: 1, tare_weight: 1, depth: 1, max_payload: 1, temperatures: {fish: 2}}]`},
		{name: "missing max payload", content: ship + `containers: [{kind: "liquid", mass: 1, height: 1, tare_weight: 1, depth: 1}]`},
		{name: "unknown op", content: ship + `steps: [{op: "sink"}]`},
		{name: "load without container", content: ship + `steps: [{op: "load"}]`},
		{name: "load_cargo without mass", content: ship + `steps: [{op: "load_cargo", container: "A"}]`},
		{name: "replace without with", content: ship + `steps: [{op: "replace", container: "A"}]`},
		{name: "print with container", content: ship + `steps: [{op: "print", container: "A"}]`},
		{name: "negative cargo mass", content: ship + `steps: [{op: "load_cargo", container: "A", cargo_mass: -1}]`},
		{name: "syntax error", content: `ship: {`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseBytes([]byte(tt.content), "bad.cue")
			if !errors.Is(err, cueutil.ErrSchema) {
				t.Errorf("ParseBytes() error = %v, want schema error", err)
			}
		})
	}
}

func TestParseBytesCrossReferenceErrors(t *testing.T) {
	t.Parallel()

	const head = `ship: {name: "S", max_speed: 10, max_containers: 5, max_weight: 100000}
containers: [
	{kind: "liquid", serial: "A", mass: 1, height: 1, tare_weight: 1, depth: 1, max_payload: 10},
	{kind: "refrigerated", serial: "R", mass: 1, height: 1, tare_weight: 1, depth: 1, max_payload: 10},
]
`
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{
			name: "duplicate serial",
			content: `ship: {name: "S", max_speed: 10, max_containers: 5, max_weight: 100}
containers: [
	{kind: "liquid", serial: "KON-L-2", mass: 1, height: 1, tare_weight: 1, depth: 1, max_payload: 10},
	{kind: "liquid", mass: 1, height: 1, tare_weight: 1, depth: 1, max_payload: 10},
]`,
			want: ErrDuplicateSerial,
		},
		{name: "unknown container", content: head + `steps: [{op: "load", container: "B"}]`, want: ErrUnknownContainer},
		{name: "unknown replacement", content: head + `steps: [{op: "replace", container: "A", with: "B"}]`, want: ErrUnknownContainer},
		{name: "refrigerated hazard", content: head + `steps: [{op: "notify_hazard", container: "R"}]`, want: ErrHazardUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseBytes([]byte(tt.content), "refs.cue")
			if !errors.Is(err, ErrInvalidManifest) {
				t.Fatalf("ParseBytes() error = %v, want ErrInvalidManifest", err)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseBytes() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestValidateAggregatesErrors(t *testing.T) {
	t.Parallel()

	m := &Manifest{
		Ship: ShipSpec{Name: "S", MaxSpeed: 1, MaxContainers: 1, MaxWeight: 1},
		Containers: []ContainerSpec{
			{Kind: cargo.KindGas, Serial: "G", Mass: -1},
			{Kind: "bulk", Serial: "X"},
		},
		Steps: []Step{
			{Op: "sink"},
			{Op: OpUnload, Container: "missing"},
		},
	}

	err := m.Validate()
	var invalid *InvalidManifestError
	if !errors.As(err, &invalid) {
		t.Fatalf("Validate() error = %v, want *InvalidManifestError", err)
	}
	if len(invalid.FieldErrors) != 4 {
		t.Errorf("got %d field errors, want 4: %v", len(invalid.FieldErrors), err)
	}
	for _, sentinel := range []error{cargo.ErrInvalidSpec, cargo.ErrInvalidKind, ErrInvalidOp, ErrUnknownContainer} {
		if !errors.Is(err, sentinel) {
			t.Errorf("Validate() error does not wrap %v", sentinel)
		}
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	path := testutil.WriteFile(t, t.TempDir(), "voyage.cue", fleetManifest)
	m, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if m.FilePath != path {
		t.Errorf("FilePath = %q, want %q", m.FilePath, path)
	}

	if _, err := Parse(filepath.Join(t.TempDir(), "missing.cue")); err == nil {
		t.Error("Parse() of a missing file must fail")
	}
}

func TestDemo(t *testing.T) {
	t.Parallel()

	m, err := Demo()
	if err != nil {
		t.Fatalf("Demo() error = %v", err)
	}

	want := ShipSpec{Name: "Ship 1", MaxSpeed: 20, MaxContainers: 200, MaxWeight: 50000}
	if m.Ship != want {
		t.Errorf("ship = %+v, want %+v", m.Ship, want)
	}
	if len(m.Containers) != 1 {
		t.Fatalf("got %d containers, want 1", len(m.Containers))
	}
	c := m.Containers[0]
	if c.Serial != "KON-L-1" || c.Kind != cargo.KindLiquid || !c.Hazardous || c.Pressure != 1.5 ||
		c.Mass != 5000 || c.Height != 200 || c.TareWeight != 100 || c.Depth != 150 || c.MaxPayload != 10000 {
		t.Errorf("container = %+v", c)
	}
	if len(m.Steps) != 2 || m.Steps[0].Op != OpLoad || m.Steps[1].Op != OpPrint {
		t.Errorf("steps = %+v", m.Steps)
	}

	if len(DemoSource()) == 0 {
		t.Error("DemoSource() is empty")
	}
}

func TestOpValidate(t *testing.T) {
	t.Parallel()

	for _, op := range []Op{OpLoadCargo, OpEmptyCargo, OpLoad, OpUnload, OpReplace, OpNotifyHazard, OpPrint} {
		if err := op.Validate(); err != nil {
			t.Errorf("Op(%q).Validate() = %v", op, err)
		}
	}
	if err := Op("").Validate(); !errors.Is(err, ErrInvalidOp) {
		t.Errorf("Op(\"\").Validate() = %v, want ErrInvalidOp", err)
	}
}
