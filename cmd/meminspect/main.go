package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	mipsmemory "github.com/Eckaya06/mips-memory"
	"github.com/Eckaya06/mips-memory/memory"
)

func main() {
	var (
		base        = flag.String("base", "0x10010000", "Base address of the primary window")
		size        = flag.Uint("size", 128, "Byte span of the address space")
		wordSize    = flag.Uint("word", memory.DefaultWordSize, "Addressing stride in bytes")
		cellWidth   = flag.Uint("cell", memory.DefaultCellWidth, "Storage cell width in bytes (1-4)")
		data        = flag.String("data", "", "Data segment entries (x=1,y=2,...)")
		readAddr    = flag.String("read", "", "Read the word at this address and exit")
		writeSpec   = flag.String("write", "", "Write a word (addr=value) and exit")
		validAddr   = flag.String("valid", "", "Probe this address and exit")
		verbose     = flag.Bool("v", false, "Verbose engine logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *verbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		memory.SetLogger(log)
	}

	mem, err := buildEngine(*base, uint32(*size), uint32(*wordSize), uint32(*cellWidth), *data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(mem); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(mem, *readAddr, *writeSpec, *validAddr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func buildEngine(baseStr string, size, wordSize, cellWidth uint32, dataStr string) (*memory.Memory, error) {
	base, err := parseNumber(baseStr)
	if err != nil {
		return nil, fmt.Errorf("base address: %w", err)
	}

	mem := memory.New(base, size,
		memory.WithWordSize(wordSize),
		memory.WithCellWidth(cellWidth),
	)

	seg, err := parseData(dataStr)
	if err != nil {
		return nil, err
	}
	mem.AllocateData(seg)

	return mem, nil
}

func run(mem *memory.Memory, readAddr, writeSpec, validAddr string) error {
	switch {
	case readAddr != "":
		addr, err := parseNumber(readAddr)
		if err != nil {
			return fmt.Errorf("read address: %w", err)
		}
		v, err := mem.ReadWord(addr)
		if err != nil {
			return err
		}
		fmt.Printf("0x%08X = 0x%X (%d)\n", addr, v, v)

	case writeSpec != "":
		addr, value, err := parseAssignment(writeSpec)
		if err != nil {
			return fmt.Errorf("write spec: %w", err)
		}
		if err := mem.WriteWord(addr, value); err != nil {
			return err
		}
		stored, err := mem.ReadWord(addr)
		if err != nil {
			return err
		}
		fmt.Printf("0x%08X <- 0x%X (stored 0x%X)\n", addr, value, stored)

	case validAddr != "":
		addr, err := parseNumber(validAddr)
		if err != nil {
			return fmt.Errorf("valid address: %w", err)
		}
		fmt.Printf("0x%08X valid=%v\n", addr, mem.IsValidAddress(addr))

	default:
		cfg := mem.Config()
		fmt.Printf("Base:  0x%08X\n", cfg.BaseAddress)
		fmt.Printf("Span:  %d bytes, %d cells of %d bytes, word stride %d\n",
			cfg.Size, mem.CellCount(), cfg.CellWidth, cfg.WordSize)

		seg := mem.Segment()
		if seg.Len() > 0 {
			fmt.Println("\nData segment:")
			for rank, e := range seg.Entries() {
				fmt.Printf("  [%2d] %-16s = 0x%X (%d)\n", rank, e.Name, e.Value, e.Value)
			}
		}

		fmt.Println("\nStorage:")
		fmt.Println(mem.String())
	}

	return nil
}

// parseNumber accepts decimal, hex (0x) and octal (0o) forms.
func parseNumber(s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

// parseAssignment splits an "addr=value" pair.
func parseAssignment(s string) (uint32, uint32, error) {
	lhs, rhs, ok := strings.Cut(s, "=")
	if !ok {
		return 0, 0, fmt.Errorf("expected addr=value, got %q", s)
	}
	addr, err := parseNumber(lhs)
	if err != nil {
		return 0, 0, err
	}
	value, err := parseNumber(rhs)
	if err != nil {
		return 0, 0, err
	}
	return addr, value, nil
}

// parseData parses "x=1,y=2" into an ordered segment. Order of appearance
// is the cell order, so it is preserved exactly.
func parseData(s string) (*mipsmemory.Segment, error) {
	seg := mipsmemory.NewSegment()
	if strings.TrimSpace(s) == "" {
		return seg, nil
	}

	for _, pair := range strings.Split(s, ",") {
		name, valueStr, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("data entry %q: expected name=value", pair)
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("data entry %q: empty name", pair)
		}
		value, err := parseNumber(valueStr)
		if err != nil {
			return nil, fmt.Errorf("data entry %q: %w", pair, err)
		}
		seg.Define(name, value)
	}
	return seg, nil
}
