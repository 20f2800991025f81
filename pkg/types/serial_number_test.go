// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"testing"
)

func TestSerialNumberValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   SerialNumber
		wantErr bool
	}{
		{name: "generated form", value: "KON-L-1", wantErr: false},
		{name: "free form", value: "ABC123", wantErr: false},
		{name: "empty", value: "", wantErr: true},
		{name: "whitespace only", value: "  \t", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.value.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("SerialNumber(%q).Validate() error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidSerialNumber) {
				t.Errorf("error does not wrap ErrInvalidSerialNumber: %v", err)
			}
		})
	}
}

func TestNewSerialNumber(t *testing.T) {
	t.Parallel()

	if got := NewSerialNumber('L', 1); got != "KON-L-1" {
		t.Errorf("NewSerialNumber('L', 1) = %q, want %q", got, "KON-L-1")
	}
	if got := NewSerialNumber('C', 42); got != "KON-C-42" {
		t.Errorf("NewSerialNumber('C', 42) = %q, want %q", got, "KON-C-42")
	}
}

func TestSerialNumberKindCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value  SerialNumber
		want   string
		wantOK bool
	}{
		{"KON-L-1", "L", true},
		{"KON-G-12", "G", true},
		{"KON-L-x", "", false},
		{"ABC-L-1", "", false},
		{"KON--1", "", false},
		{"KON-L", "", false},
	}

	for _, tt := range tests {
		got, ok := tt.value.KindCode()
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("SerialNumber(%q).KindCode() = (%q, %v), want (%q, %v)", tt.value, got, ok, tt.want, tt.wantOK)
		}
	}
}
