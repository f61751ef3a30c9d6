package memory

import "go.uber.org/zap"

// Defaults for the two geometry knobs. The simulated processor addresses
// memory with a 4-byte word stride but allocates 2-byte storage cells and
// truncates written values to 16 bits. The two are independent properties
// here so that the relationship is explicit rather than accidental.
const (
	DefaultWordSize  = 4
	DefaultCellWidth = 2
)

// Config describes the geometry of the address space. It is fixed at
// construction and never validated: nonsense geometry simply degenerates to
// a zero-cell array that rejects every address.
type Config struct {
	// BaseAddress is where the primary addressing window begins. Addresses
	// below it are reachable only through the secondary tier.
	BaseAddress uint32

	// Size is the total byte span nominally covered. The number of storage
	// cells is Size / CellWidth.
	Size uint32

	// WordSize is the addressing granularity. Every address presented to
	// the engine must be a multiple of it, relative to the reference point
	// of the tier resolving it.
	WordSize uint32

	// CellWidth is the byte width of one storage cell. It determines both
	// the cell count and the mask applied to written values.
	CellWidth uint32
}

// CellCount returns the number of storage cells the config describes.
func (c Config) CellCount() int {
	if c.CellWidth == 0 {
		return 0
	}
	return int(c.Size / c.CellWidth)
}

// WriteMask returns the mask applied to values written through WriteWord.
// With the default 2-byte cells this is 0xFFFF.
func (c Config) WriteMask() uint32 {
	return uint32(uint64(1)<<(8*c.CellWidth) - 1)
}

// Option adjusts an engine at construction time.
type Option func(*Memory)

// WithWordSize overrides the addressing stride. Values below 1 are ignored.
func WithWordSize(n uint32) Option {
	return func(m *Memory) {
		if n >= 1 {
			m.cfg.WordSize = n
		}
	}
}

// WithCellWidth overrides the storage cell width in bytes. Accepted values
// are 1 through 4; anything else is ignored.
func WithCellWidth(n uint32) Option {
	return func(m *Memory) {
		if n >= 1 && n <= 4 {
			m.cfg.CellWidth = n
		}
	}
}

// WithLogger attaches a logger to the engine. The package-level logger is
// used otherwise.
func WithLogger(l *zap.Logger) Option {
	return func(m *Memory) {
		if l != nil {
			m.log = l
		}
	}
}
