// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := WriteFile(t, dir, "nested/voyage.cue", "ship: {}")

	if path != filepath.Join(dir, "nested", "voyage.cue") {
		t.Errorf("WriteFile() path = %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "ship: {}" {
		t.Errorf("content = %q", data)
	}
}

func TestMustChdir(t *testing.T) {
	before, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	t.Run("changes directory", func(t *testing.T) {
		dir := t.TempDir()
		MustChdir(t, dir)

		wd, err := os.Getwd()
		if err != nil {
			t.Fatal(err)
		}
		resolved, _ := filepath.EvalSymlinks(dir)
		wdResolved, _ := filepath.EvalSymlinks(wd)
		if wdResolved != resolved {
			t.Errorf("Getwd() = %q, want %q", wd, dir)
		}
	})

	after, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if after != before {
		t.Errorf("working directory not restored: %q, want %q", after, before)
	}
}

func TestNewBufferLogger(t *testing.T) {
	t.Parallel()

	logger, buf := NewBufferLogger()
	logger.Debug("ship operation", "outcome", "loaded")
	if !strings.Contains(buf.String(), "outcome=loaded") {
		t.Errorf("buffer = %q", buf.String())
	}
}
