// Package mipsmemory models the memory subsystem of a simulated
// word-addressed processor: a finite, linearly-addressed storage array with
// address translation, alignment and bounds enforcement, and positional
// seeding from a named data segment.
//
// # Architecture Overview
//
// The library is organized into a small number of packages with distinct
// responsibilities:
//
//	mipsmemory/       Root package with the Bus and Loader contracts and the
//	                  ordered Segment type shared by both sides
//	├── memory/       The engine: geometry config, two-tier address
//	                  resolution, word read/write, data-segment operations
//	├── errors/       Structured error types (operation, kind, address)
//	└── cmd/          meminspect, a developer inspection front-end
//
// # Quick Start
//
// Construct an engine, seed its data segment, and perform word I/O:
//
//	mem := memory.New(0x10010000, 128)
//
//	seg := mipsmemory.NewSegment()
//	seg.Define("counter", 1)
//	seg.Define("limit", 10)
//	mem.AllocateData(seg)
//
//	if err := mem.WriteWord(0x10010004, 42); err != nil {
//	    log.Fatal(err)
//	}
//	v, err := mem.ReadWord(0x10010004)
//
// # Collaborators
//
// Two external collaborators drive the engine. A program loader populates
// the data segment once through the Loader contract before execution
// begins. An instruction executor then issues word reads and writes through
// the Bus contract as it interprets machine instructions, deciding for
// itself whether a memory fault is fatal to the simulated program.
// Instruction decoding, the register file, and any user-facing front end
// belong to those collaborators, not to this library.
//
// # Thread Safety
//
// The engine is single-threaded by contract. It holds no locks; a host
// driving one engine from multiple goroutines must serialize every
// operation, reads included.
package mipsmemory
