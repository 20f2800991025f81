// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

const (
	ManifestNotFoundId Id = iota + 1
	ManifestInvalidId
	CargoOverfillId
	ShipRejectedId
	ConfigLoadFailedId
)

type (
	// Id identifies a catalog entry.
	Id int

	// MarkdownMsg is catalog text rendered with glamour.
	MarkdownMsg string

	// HttpLink is a documentation URL.
	HttpLink string

	// Issue is a catalog entry explaining a class of problem and its fixes.
	Issue struct {
		id       Id
		mdMsg    MarkdownMsg
		docLinks []HttpLink
	}
)

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

// Render renders the entry for a terminal using the named glamour style
// ("dark", "light", "notty", ...).
func (i *Issue) Render(stylePath string) (string, error) {
	var b strings.Builder
	b.WriteString(string(i.mdMsg))
	if len(i.docLinks) > 0 {
		b.WriteString("\n\n## See also\n")
		for _, link := range i.docLinks {
			b.WriteString("- <" + string(link) + ">\n")
		}
	}
	return render(b.String(), stylePath)
}

var (
	render = glamour.Render

	manifestNotFoundIssue = &Issue{
		id: ManifestNotFoundId,
		mdMsg: `
# Voyage manifest not found

The manifest path given to the command does not exist or is not readable.

## Things you can try:
- Check the path for typos
- Run the built-in demonstration voyage instead:
~~~
$ cargoship demo
~~~`,
	}

	manifestInvalidIssue = &Issue{
		id: ManifestInvalidId,
		mdMsg: `
# Voyage manifest is invalid

The manifest does not match the expected schema, or it references
containers that are not declared.

## Common issues:
- Unknown container ` + "`kind`" + ` (use liquid, gas or refrigerated)
- Negative masses or dimensions
- Two containers sharing a serial number
- A step naming a container that is not declared
- ` + "`notify_hazard`" + ` on a refrigerated container

## Example:
~~~cue
ship: {name: "Ship 1", max_speed: 20, max_containers: 200, max_weight: 50000}
containers: [
	{kind: "liquid", serial: "KON-L-1", mass: 5000, height: 200, tare_weight: 100,
	 depth: 150, max_payload: 10000, hazardous: true, pressure: 1.5},
]
steps: [
	{op: "load", container: "KON-L-1"},
	{op: "print"},
]
~~~`,
	}

	cargoOverfillIssue = &Issue{
		id: CargoOverfillId,
		mdMsg: `
# Container overfilled

A ` + "`load_cargo`" + ` step asked for more cargo than the container accepts.

## Limits:
- Every container accepts at most its ` + "`max_payload`" + `
- Hazardous liquid containers accept at most 50% of their ` + "`max_payload`" + `

## Things you can try:
- Lower the ` + "`cargo_mass`" + ` of the failing step
- Split the cargo across several containers`,
	}

	shipRejectedIssue = &Issue{
		id: ShipRejectedId,
		mdMsg: `
# Ship rejected a container

A ` + "`load`" + ` step was refused because the ship is full or the
container's gross mass would exceed the ship's ` + "`max_weight`" + `.
Rejections do not stop a voyage; run with ` + "`--strict`" + ` to fail on them.

## Things you can try:
- Raise ` + "`max_containers`" + ` or ` + "`max_weight`" + ` on the ship
- Unload a container before loading the next one`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration

The configuration file could not be read or does not match the schema.

## Things you can try:
- Show the file location:
~~~
$ cargoship config path
~~~
- Recreate a default configuration:
~~~
$ cargoship config init
~~~`,
	}

	issues = map[Id]*Issue{
		manifestNotFoundIssue.Id(): manifestNotFoundIssue,
		manifestInvalidIssue.Id():  manifestInvalidIssue,
		cargoOverfillIssue.Id():    cargoOverfillIssue,
		shipRejectedIssue.Id():     shipRejectedIssue,
		configLoadFailedIssue.Id(): configLoadFailedIssue,
	}
)

// Values returns every catalog entry ordered by Id.
func Values() []*Issue {
	out := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		out = append(out, i)
	}
	slices.SortFunc(out, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return out
}

// Get returns the catalog entry for id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}
