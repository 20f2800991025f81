// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"strings"
	"testing"
)

const testSchema = `
#Doc: {
	name:  string & !=""
	count: int & >=0
	tags?: [...string]
}
`

type testDoc struct {
	Name  string   `json:"name"`
	Count int      `json:"count"`
	Tags  []string `json:"tags"`
}

func TestDecode(t *testing.T) {
	t.Parallel()

	res, err := Decode[testDoc]([]byte(testSchema), []byte(`name: "deck", count: 3, tags: ["a"]`), "#Doc")
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if res.Value.Name != "deck" || res.Value.Count != 3 || len(res.Value.Tags) != 1 {
		t.Errorf("Decode() = %+v", res.Value)
	}
}

func TestDecodeSchemaViolation(t *testing.T) {
	t.Parallel()

	_, err := Decode[testDoc]([]byte(testSchema), []byte(`name: "deck", count: -1`), "#Doc", WithFilename("doc.cue"))
	if !errors.Is(err, ErrSchema) {
		t.Fatalf("Decode() error = %v, want ErrSchema", err)
	}
	if !strings.Contains(err.Error(), "doc.cue") || !strings.Contains(err.Error(), "count") {
		t.Errorf("error %q should name the file and the offending field", err.Error())
	}
}

func TestDecodeSyntaxError(t *testing.T) {
	t.Parallel()

	_, err := Decode[testDoc]([]byte(testSchema), []byte(`name: "deck`), "#Doc")
	if !errors.Is(err, ErrSchema) {
		t.Errorf("Decode() error = %v, want ErrSchema", err)
	}
}

func TestDecodeMissingDefinition(t *testing.T) {
	t.Parallel()

	_, err := Decode[testDoc]([]byte(testSchema), []byte(`name: "deck", count: 1`), "#Missing")
	if err == nil || !strings.Contains(err.Error(), "internal error") {
		t.Errorf("Decode() error = %v, want internal schema error", err)
	}
}

func TestDecodeFileSize(t *testing.T) {
	t.Parallel()

	_, err := Decode[testDoc]([]byte(testSchema), []byte(`name: "deck", count: 1`), "#Doc", WithMaxFileSize(4))
	if !errors.Is(err, ErrFileTooLarge) {
		t.Errorf("Decode() error = %v, want ErrFileTooLarge", err)
	}
}

func TestFormatErrorNil(t *testing.T) {
	t.Parallel()

	if err := FormatError(nil, "x.cue"); err != nil {
		t.Errorf("FormatError(nil) = %v, want nil", err)
	}
}

func TestFormatPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path []string
		want string
	}{
		{nil, ""},
		{[]string{"ship"}, "ship"},
		{[]string{"ship", "name"}, "ship.name"},
		{[]string{"containers", "0", "mass"}, "containers[0].mass"},
		{[]string{"steps", "2", "with", "1"}, "steps[2].with[1]"},
	}

	for _, tt := range tests {
		if got := formatPath(tt.path); got != tt.want {
			t.Errorf("formatPath(%v) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
