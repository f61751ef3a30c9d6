package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	mipsmemory "github.com/Eckaya06/mips-memory"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in      string
		want    uint32
		wantErr bool
	}{
		{in: "42", want: 42},
		{in: "0x10010000", want: 0x10010000},
		{in: " 0x40 ", want: 0x40},
		{in: "0o17", want: 15},
		{in: "nope", wantErr: true},
		{in: "", wantErr: true},
		{in: "0x1FFFFFFFF", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseNumber(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseNumber(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("parseNumber(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseAssignment(t *testing.T) {
	addr, value, err := parseAssignment("0x10010004=0xFF")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if addr != 0x10010004 || value != 0xFF {
		t.Errorf("got 0x%X=0x%X", addr, value)
	}

	if _, _, err := parseAssignment("0x10010004"); err == nil {
		t.Error("expected an error for a missing value")
	}
}

func TestParseData_Order(t *testing.T) {
	seg, err := parseData("x=1, y=0x2, z=3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []mipsmemory.SegmentEntry{
		{Name: "x", Value: 1},
		{Name: "y", Value: 2},
		{Name: "z", Value: 3},
	}
	if diff := cmp.Diff(want, seg.Entries()); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestParseData_Errors(t *testing.T) {
	for _, in := range []string{"x", "=1", "x=notanumber"} {
		if _, err := parseData(in); err == nil {
			t.Errorf("expected an error for %q", in)
		}
	}
}

func TestParseData_Empty(t *testing.T) {
	seg, err := parseData("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seg.Len() != 0 {
		t.Errorf("expected an empty segment, got %d entries", seg.Len())
	}
}
