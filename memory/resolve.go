package memory

import "github.com/Eckaya06/mips-memory/errors"

// Tier identifies which addressing scheme resolved an address
type Tier int

const (
	// TierInvalid means neither tier accepted the address.
	TierInvalid Tier = iota

	// TierPrimary resolves an address relative to the base address:
	// index = (address - base) / wordSize.
	TierPrimary

	// TierSecondary resolves an absolute address below the base address:
	// index = address / wordSize. It is attempted only after the primary
	// tier has failed.
	TierSecondary
)

func (t Tier) String() string {
	switch t {
	case TierPrimary:
		return "primary"
	case TierSecondary:
		return "secondary"
	}
	return "invalid"
}

// Resolution is the outcome of translating an address into a cell index.
// When Tier is TierInvalid, Fault records why the PRIMARY attempt failed;
// the strict operations surface that primary error even when the secondary
// tier was also tried and rejected the address.
type Resolution struct {
	Tier  Tier
	Index int
	Fault errors.Kind
}

// Valid reports whether the resolution denotes a storage cell.
func (r Resolution) Valid() bool {
	return r.Tier != TierInvalid
}

// Resolve translates an address into a storage cell index. The primary tier
// is tried first: the address must be word-aligned relative to the base
// address and its index must fall inside the storage array. If the primary
// tier fails for either reason, the secondary tier is tried for addresses
// below the base, checking alignment against the absolute address instead.
//
// The two tiers are not disjoint in the index space they produce: one cell
// can be reachable through two different absolute addresses, one per tier.
// That ambiguity is part of the observable contract; the precedence order
// encoded here (primary wins) is what keeps it deterministic.
func (m *Memory) Resolve(address uint32) Resolution {
	ws := int64(m.cfg.WordSize)

	// signed arithmetic: the relative address is negative below base
	rel := int64(address) - int64(m.cfg.BaseAddress)

	if rel%ws != 0 {
		if r, ok := m.resolveSecondary(address); ok {
			return r
		}
		return Resolution{Tier: TierInvalid, Fault: errors.KindUnaligned}
	}

	index := rel / ws
	if index >= 0 && index < int64(len(m.cells)) {
		return Resolution{Tier: TierPrimary, Index: int(index)}
	}

	if r, ok := m.resolveSecondary(address); ok {
		return r
	}
	return Resolution{Tier: TierInvalid, Fault: errors.KindOutOfBounds}
}

// resolveSecondary attempts the legacy absolute tier. Alignment is checked
// against the absolute address, not relative to base, so an address can be
// aligned under one tier and misaligned under the other.
func (m *Memory) resolveSecondary(address uint32) (Resolution, bool) {
	if address >= m.cfg.BaseAddress {
		return Resolution{}, false
	}
	if address%m.cfg.WordSize != 0 {
		return Resolution{}, false
	}
	index := int(address / m.cfg.WordSize)
	if index >= len(m.cells) {
		return Resolution{}, false
	}
	return Resolution{Tier: TierSecondary, Index: index}, true
}
