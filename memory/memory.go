package memory

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	mipsmemory "github.com/Eckaya06/mips-memory"
	"github.com/Eckaya06/mips-memory/errors"
)

// Memory is the engine: a fixed-size array of word cells plus the data
// segment that seeded it. It is NOT safe for concurrent use; the caller
// must serialize access.
type Memory struct {
	cfg     Config
	cells   []uint32
	segment *mipsmemory.Segment
	log     *zap.Logger
}

var (
	_ mipsmemory.Bus    = (*Memory)(nil)
	_ mipsmemory.Loader = (*Memory)(nil)
)

// New creates an engine covering size bytes of address space starting at
// base. Construction never fails and never validates its inputs; geometry
// that describes no cells yields an engine that rejects every address.
func New(base, size uint32, opts ...Option) *Memory {
	m := &Memory{
		cfg: Config{
			BaseAddress: base,
			Size:        size,
			WordSize:    DefaultWordSize,
			CellWidth:   DefaultCellWidth,
		},
		segment: mipsmemory.NewSegment(),
		log:     Logger(),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.cells = make([]uint32, m.cfg.CellCount())

	m.log.Debug("memory engine created",
		zap.Uint32("base", m.cfg.BaseAddress),
		zap.Uint32("size", m.cfg.Size),
		zap.Uint32("word_size", m.cfg.WordSize),
		zap.Uint32("cell_width", m.cfg.CellWidth),
		zap.Int("cells", len(m.cells)),
	)

	return m
}

// Config returns the engine's geometry.
func (m *Memory) Config() Config {
	return m.cfg
}

// CellCount returns the number of storage cells.
func (m *Memory) CellCount() int {
	return len(m.cells)
}

// ReadWord returns the raw value of the cell the address resolves to. No
// masking is applied on read; whatever the cell holds comes back as is.
func (m *Memory) ReadWord(address uint32) (uint32, error) {
	r := m.Resolve(address)
	if !r.Valid() {
		return 0, m.fault(errors.OpRead, address, r.Fault)
	}
	return m.cells[r.Index], nil
}

// WriteWord stores value into the cell the address resolves to, truncated
// to the cell width (the lower 16 bits with the default geometry). High
// bits are discarded silently.
func (m *Memory) WriteWord(address uint32, value uint32) error {
	r := m.Resolve(address)
	if !r.Valid() {
		return m.fault(errors.OpWrite, address, r.Fault)
	}

	masked := value & m.cfg.WriteMask()
	if masked != value {
		m.log.Debug("write truncated to cell width",
			zap.Uint32("address", address),
			zap.Uint32("value", value),
			zap.Uint32("stored", masked),
		)
	}
	m.cells[r.Index] = masked
	return nil
}

// IsValidAddress reports whether either tier accepts the address. It never
// fails and collapses the misaligned/out-of-range distinction into false;
// callers that need the reason use ReadWord/WriteWord or Resolve.
func (m *Memory) IsValidAddress(address uint32) bool {
	return m.Resolve(address).Valid()
}

// AllocateData replaces the engine's data segment wholesale and seeds the
// storage array positionally: the entry at rank 0 goes to cell 0, rank 1 to
// cell 1, and so on. Entries beyond the cell count are dropped silently.
//
// This is a direct positional load. It bypasses address translation and the
// write mask, and is independent of the base address.
func (m *Memory) AllocateData(seg *mipsmemory.Segment) {
	if seg == nil {
		seg = mipsmemory.NewSegment()
	}
	m.segment = seg.Clone()

	entries := m.segment.Entries()
	kept := len(entries)
	if kept > len(m.cells) {
		kept = len(m.cells)
	}
	for i := 0; i < kept; i++ {
		m.cells[i] = entries[i].Value
	}

	m.log.Debug("data segment loaded",
		zap.Int("entries", len(entries)),
		zap.Int("dropped", len(entries)-kept),
	)
}

// UpdateDataMemory overwrites the cell backing the named data value and the
// stored segment entry. An unknown name is a silent no-op: a typo in a
// variable name goes unreported. Hosts that care can enable debug logging
// to surface the ignored update.
func (m *Memory) UpdateDataMemory(name string, value uint32) {
	rank, ok := m.segment.Lookup(name)
	if !ok {
		m.log.Debug("update for unknown data symbol ignored", zap.String("name", name))
		return
	}
	if rank >= len(m.cells) {
		return
	}
	m.cells[rank] = value
	m.segment.Define(name, value)
}

// DataMemoryValues returns a snapshot copy of the whole storage array, not
// just the prefix backed by the data segment. Mutating the returned slice
// has no effect on the engine.
func (m *Memory) DataMemoryValues() []uint32 {
	out := make([]uint32, len(m.cells))
	copy(out, m.cells)
	return out
}

// Segment returns a copy of the stored data segment.
func (m *Memory) Segment() *mipsmemory.Segment {
	return m.segment.Clone()
}

// fault builds the error for a failed strict operation, reporting the
// primary tier's failure reason.
func (m *Memory) fault(op errors.Op, address uint32, kind errors.Kind) error {
	if kind == errors.KindUnaligned {
		return errors.Unaligned(op, address, m.cfg.WordSize)
	}
	return errors.OutOfBounds(op, address, len(m.cells))
}

// String renders the storage array as a hex grid, eight cells per row, each
// row prefixed with the index of its first cell.
func (m *Memory) String() string {
	digits := int(m.cfg.CellWidth) * 2
	if digits == 0 {
		digits = 8
	}

	var b strings.Builder
	for i, v := range m.cells {
		if i%8 == 0 {
			if i > 0 {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "%04x |", i)
		}
		fmt.Fprintf(&b, " %0*x", digits, v)
	}
	return b.String()
}
