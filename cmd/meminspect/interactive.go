package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Eckaya06/mips-memory/memory"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	addrStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type inspectModel struct {
	err      error
	mem      *memory.Memory
	input    textinput.Model
	result   string
	selected int
	editing  bool
	state    modelState
}

type modelState int

const (
	stateBrowse modelState = iota
	stateInput
	stateShowResult
)

func newInspectModel(mem *memory.Memory) *inspectModel {
	return &inspectModel{
		mem:   mem,
		state: stateBrowse,
	}
}

func (m *inspectModel) Init() tea.Cmd {
	return nil
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state == stateBrowse {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateBrowse && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateBrowse && m.selected < m.mem.Segment().Len()-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateBrowse:
				if m.mem.Segment().Len() > 0 {
					m.prepareEntryInput()
					m.state = stateInput
				}

			case stateInput:
				m.runInput()
				m.state = stateShowResult

			case stateShowResult:
				m.state = stateBrowse
				m.result = ""
				m.err = nil
			}

		case ":":
			if m.state == stateBrowse {
				m.prepareCommandInput()
				m.state = stateInput
				// swallow the colon, it should not land in the input
				return m, nil
			}

		case "esc":
			switch m.state {
			case stateInput:
				m.state = stateBrowse
			case stateShowResult:
				m.state = stateBrowse
				m.result = ""
				m.err = nil
			}
		}
	}

	if m.state == stateInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *inspectModel) prepareEntryInput() {
	entries := m.mem.Segment().Entries()
	e := entries[m.selected]

	ti := textinput.New()
	ti.Prompt = e.Name + ": "
	ti.Placeholder = fmt.Sprintf("0x%X", e.Value)
	ti.Width = 40
	ti.Focus()
	m.input = ti
	m.editing = true
}

func (m *inspectModel) prepareCommandInput() {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "r <addr> | w <addr> <value> | v <addr>"
	ti.Width = 40
	ti.Focus()
	m.input = ti
	m.editing = false
}

func (m *inspectModel) runInput() {
	if m.editing {
		entries := m.mem.Segment().Entries()
		e := entries[m.selected]
		value, err := parseNumber(m.input.Value())
		if err != nil {
			m.err = err
			return
		}
		m.mem.UpdateDataMemory(e.Name, value)
		m.result = fmt.Sprintf("%s = 0x%X", e.Name, value)
		return
	}
	m.result, m.err = m.runCommand(m.input.Value())
}

func (m *inspectModel) runCommand(line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", fmt.Errorf("empty command")
	}

	switch fields[0] {
	case "r":
		if len(fields) != 2 {
			return "", fmt.Errorf("usage: r <addr>")
		}
		addr, err := parseNumber(fields[1])
		if err != nil {
			return "", err
		}
		v, err := m.mem.ReadWord(addr)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("0x%08X = 0x%X (%d)", addr, v, v), nil

	case "w":
		if len(fields) != 3 {
			return "", fmt.Errorf("usage: w <addr> <value>")
		}
		addr, err := parseNumber(fields[1])
		if err != nil {
			return "", err
		}
		value, err := parseNumber(fields[2])
		if err != nil {
			return "", err
		}
		if err := m.mem.WriteWord(addr, value); err != nil {
			return "", err
		}
		stored, err := m.mem.ReadWord(addr)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("0x%08X <- 0x%X (stored 0x%X)", addr, value, stored), nil

	case "v":
		if len(fields) != 2 {
			return "", fmt.Errorf("usage: v <addr>")
		}
		addr, err := parseNumber(fields[1])
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("0x%08X valid=%v", addr, m.mem.IsValidAddress(addr)), nil
	}

	return "", fmt.Errorf("unknown command %q", fields[0])
}

func (m *inspectModel) View() string {
	var b strings.Builder

	cfg := m.mem.Config()
	b.WriteString(titleStyle.Render("Memory Inspector"))
	b.WriteString(" ")
	b.WriteString(addrStyle.Render(fmt.Sprintf("base 0x%08X, %d cells", cfg.BaseAddress, m.mem.CellCount())))
	b.WriteString("\n\n")

	switch m.state {
	case stateBrowse:
		entries := m.mem.Segment().Entries()
		if len(entries) == 0 {
			b.WriteString(helpStyle.Render("no data segment loaded"))
			b.WriteString("\n")
		}
		for i, e := range entries {
			line := fmt.Sprintf("[%2d] %s = 0x%X", i, nameStyle.Render(e.Name), e.Value)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(m.mem.String())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter edit • : command • q quit"))

	case stateInput:
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter run • esc back"))

	case stateShowResult:
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(m.mem.String())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func runInteractive(mem *memory.Memory) error {
	p := tea.NewProgram(newInspectModel(mem), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
