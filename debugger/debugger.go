// Package debugger implements an interactive command-line front-end for
// stepping, breakpointing, and disassembling an 8080 program image: the
// same b/c/d/f/p/q/s/h command grammar the reference single-header
// emulator's companion debugger used, rendered with a bubbletea REPL
// instead of raw stdio.
package debugger

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/jmchacon/i8080/cpu"
	"github.com/jmchacon/i8080/disassemble"
	"github.com/jmchacon/i8080/memory"
)

const (
	loadAddr = 0x0100
	bdosAddr = 0x0005

	historyLines = 20
)

var (
	promptStyle = lipgloss.NewStyle().Bold(true)
	regStyle    = lipgloss.NewStyle().Faint(true)
)

// model is the bubbletea state for one debugging session.
type model struct {
	cpu         *cpu.State
	mem         memory.Bank
	breakpoints map[uint16]bool
	input       string
	history     []string
	quitting    bool
}

func newModel(rom []uint8) *model {
	m := memory.NewRAM()
	m.PowerOn()
	memory.Load(m, loadAddr, rom)
	m.Write(0, 0x76) // HLT: the exerciser ROMs JMP here when finished

	return &model{
		cpu:         cpu.New(loadAddr, cpu.Devices{Mem: m}),
		mem:         m,
		breakpoints: make(map[uint16]bool),
	}
}

// Run loads rom at 0x0100 and starts an interactive session that blocks
// until the user quits.
func Run(rom []uint8) error {
	_, err := tea.NewProgram(newModel(rom)).Run()
	return err
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEnter:
		m.runCommand(strings.TrimSpace(m.input))
		m.input = ""
		if m.quitting {
			return m, tea.Quit
		}
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeyRunes, tea.KeySpace:
		m.input += keyMsg.String()
	}
	return m, nil
}

func (m *model) log(format string, args ...interface{}) {
	m.history = append(m.history, fmt.Sprintf(format, args...))
	if len(m.history) > historyLines {
		m.history = m.history[len(m.history)-historyLines:]
	}
}

// runCommand implements the b/c/d/f/p/q/s/h grammar: toggle breakpoint,
// continue, disassemble, disassemble-to-return, print registers, quit,
// step, help.
func (m *model) runCommand(line string) {
	if line == "" {
		return
	}
	fields := strings.Fields(line)
	letter := fields[0][0]
	arg := 1
	if len(fields) > 1 {
		if v, err := strconv.ParseInt(fields[1], 0, 32); err == nil {
			arg = int(v)
		}
	}

	switch letter {
	case 'b':
		if len(fields) < 2 {
			m.help()
			return
		}
		addr, err := strconv.ParseInt(fields[1], 0, 32)
		if err != nil {
			m.help()
			return
		}
		a := uint16(addr)
		m.breakpoints[a] = !m.breakpoints[a]
		state := "removed"
		if m.breakpoints[a] {
			state = "added"
		}
		m.log("%s breakpoint at 0x%.4X", state, a)
	case 'c':
		for m.mem.Read(m.cpu.PC) != 0x76 {
			m.step()
			if m.breakpoints[m.cpu.PC] {
				break
			}
		}
	case 'd':
		pos := m.cpu.PC
		for i := 0; i < arg; i++ {
			text, n := disassemble.Step(pos, m.mem)
			m.log("%s", text)
			pos += uint16(n)
		}
	case 'f':
		pos := m.cpu.PC
		for i := 0; i < 16; i++ {
			text, n := disassemble.Step(pos, m.mem)
			m.log("%s", text)
			op := m.mem.Read(pos)
			pos += uint16(n)
			if op == 0xC9 || op == 0xD9 {
				break
			}
		}
	case 'p':
		m.log("%s", spew.Sdump(m.cpu))
	case 'q':
		m.quitting = true
	case 's':
		for i := 0; i < arg; i++ {
			m.step()
		}
	case 'h':
		m.help()
	default:
		m.help()
	}
}

func (m *model) help() {
	m.log("b addr     toggle breakpoint at addr")
	m.log("c          continue until breakpoint or halt")
	m.log("d [count]  disassemble count instructions (default 1)")
	m.log("f          disassemble until RET (at most 16 instructions)")
	m.log("p          print registers")
	m.log("q          quit")
	m.log("s [count]  step count instructions (default 1)")
	m.log("h          print this help message")
}

// step advances the core by one instruction, trapping the CP/M BDOS
// console calls the exerciser ROMs make through CALL 0x0005 the same way a
// patched RET there would, without needing to patch memory.
func (m *model) step() {
	m.cpu.Step()
	if m.cpu.PC != bdosAddr {
		return
	}
	switch m.cpu.C {
	case 9:
		var s strings.Builder
		for addr := m.cpu.DE(); m.mem.Read(addr) != '$'; addr++ {
			s.WriteByte(m.mem.Read(addr))
		}
		m.log("%s", s.String())
	case 2:
		m.log("%c", m.cpu.E)
	}
	lo := m.mem.Read(m.cpu.SP)
	hi := m.mem.Read(m.cpu.SP + 1)
	m.cpu.PC = uint16(hi)<<8 | uint16(lo)
	m.cpu.SP += 2
}

func (m *model) View() string {
	if m.quitting {
		return "quit\n"
	}
	status := regStyle.Render(fmt.Sprintf(
		"PC=%.4X SP=%.4X A=%.2X BC=%.4X DE=%.4X HL=%.4X cycles=%d",
		m.cpu.PC, m.cpu.SP, m.cpu.A, m.cpu.BC(), m.cpu.DE(), m.cpu.HL(), m.cpu.Cycles))
	prompt := promptStyle.Render(fmt.Sprintf("[0x%.4X]> ", m.cpu.PC)) + m.input
	return lipgloss.JoinVertical(lipgloss.Left, strings.Join(m.history, "\n"), status, prompt)
}
