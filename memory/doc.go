// Package memory implements the storage engine of the simulated processor.
//
// # Geometry
//
// An engine is constructed from a base address and a byte span:
//
//	mem := memory.New(0x10010000, 128)
//
// Two independent knobs describe the geometry. WordSize (default 4) is the
// addressing stride: every address must be a multiple of it relative to the
// resolving tier's reference point. CellWidth (default 2) is the byte width
// of one storage cell: it fixes the cell count (Size / CellWidth) and the
// mask applied to written values (0xFFFF by default).
//
// The defaults describe the simulated processor exactly: a 4-byte stride
// over 16-bit cells, with writes truncated to 16 bits. The interpretation
// chosen here is that cells really are 16-bit storage and the word stride
// is purely an addressing property; callers that want a self-consistent
// geometry can say so explicitly:
//
//	mem := memory.New(base, size, memory.WithCellWidth(4))
//
// # Addressing Tiers
//
// Address resolution has two tiers, tried in order. The primary tier is
// relative to the base address: index = (address - base) / wordSize, with
// alignment checked on the relative address. When the primary tier rejects
// an address, for misalignment or for range, the secondary tier accepts
// absolute addresses below the base: index = address / wordSize, with
// alignment checked on the absolute address. This lets a data segment
// placed conceptually "before" the base reach the same backing array.
//
// The tiers are not disjoint: one cell can be reachable through two
// different absolute addresses, one per tier. Resolve makes the outcome
// explicit rather than burying it in control flow:
//
//	r := mem.Resolve(addr)
//	switch r.Tier {
//	case memory.TierPrimary, memory.TierSecondary:
//	    // r.Index is a valid cell
//	case memory.TierInvalid:
//	    // r.Fault says why the primary attempt failed
//	}
//
// # Strict and Probing Operations
//
// ReadWord and WriteWord fail with a structured *errors.Error naming the
// operation, the failure kind and the offending address. IsValidAddress is
// the probing form: it never fails and collapses every failure reason into
// false.
//
// # Data Segment
//
// AllocateData seeds storage positionally from an ordered Segment: rank 0
// to cell 0, rank 1 to cell 1, independent of the base address and without
// masking. UpdateDataMemory patches one named value; an unknown name is a
// silent no-op, so a typo in a symbol name goes unreported.
//
// # Thread Safety
//
// The engine holds no locks. A host driving one engine from multiple
// goroutines must serialize all access, reads included.
package memory
