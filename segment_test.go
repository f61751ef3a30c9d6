package mipsmemory

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSegment_DefineOrder(t *testing.T) {
	seg := NewSegment()
	seg.Define("x", 1)
	seg.Define("y", 2)
	seg.Define("z", 3)

	want := []SegmentEntry{
		{Name: "x", Value: 1},
		{Name: "y", Value: 2},
		{Name: "z", Value: 3},
	}
	if diff := cmp.Diff(want, seg.Entries()); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}

	// Redefining an existing name keeps its rank
	seg.Define("y", 99)
	rank, ok := seg.Lookup("y")
	if !ok || rank != 1 {
		t.Fatalf("expected y at rank 1, got rank %d (ok=%v)", rank, ok)
	}
	v, ok := seg.Value("y")
	if !ok || v != 99 {
		t.Fatalf("expected y == 99, got %d (ok=%v)", v, ok)
	}
	if seg.Len() != 3 {
		t.Fatalf("expected 3 entries after redefinition, got %d", seg.Len())
	}
}

func TestSegment_LookupUnknown(t *testing.T) {
	seg := NewSegment()
	seg.Define("x", 1)

	if _, ok := seg.Lookup("q"); ok {
		t.Error("Lookup of unknown name should report !ok")
	}
	if _, ok := seg.Value("q"); ok {
		t.Error("Value of unknown name should report !ok")
	}
}

func TestSegment_Clone(t *testing.T) {
	seg := NewSegment()
	seg.Define("x", 1)
	seg.Define("y", 2)

	c := seg.Clone()
	c.Define("x", 77)
	c.Define("w", 4)

	if v, _ := seg.Value("x"); v != 1 {
		t.Errorf("mutating the clone changed the original: x == %d", v)
	}
	if seg.Len() != 2 {
		t.Errorf("mutating the clone changed the original length: %d", seg.Len())
	}
	if c.Len() != 3 {
		t.Errorf("expected clone to have 3 entries, got %d", c.Len())
	}
}

func TestSegment_EntriesCopy(t *testing.T) {
	seg := NewSegment()
	seg.Define("x", 1)

	entries := seg.Entries()
	entries[0].Value = 42

	if v, _ := seg.Value("x"); v != 1 {
		t.Errorf("mutating the Entries copy changed the segment: x == %d", v)
	}
}
