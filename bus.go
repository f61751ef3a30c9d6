package mipsmemory

// Bus defines the operations the instruction executor performs against the
// memory engine while interpreting machine instructions. Addresses are
// absolute; translation into cell indices happens behind the interface.
type Bus interface {
	ReadWord(address uint32) (uint32, error)
	WriteWord(address uint32, value uint32) error
	IsValidAddress(address uint32) bool
}

// Loader defines the operations the program loader performs before and
// during execution: seeding the data segment and patching named values.
type Loader interface {
	AllocateData(seg *Segment)
	UpdateDataMemory(name string, value uint32)
	DataMemoryValues() []uint32
}
