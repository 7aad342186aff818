package trace

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/student/nescore/console"
)

// historyLimit bounds how many trace lines the interactive stepper
// keeps on screen at once.
const historyLimit = 12

// runBudget caps how many instructions a single (R)un command will
// execute before giving up on ever hitting a breakpoint, so a
// breakpoint typo can't wedge the terminal in an infinite loop.
const runBudget = 20_000_000

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	faultStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("204"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	paneStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// Debugger is a bubbletea model that single-steps a Machine, showing
// its register file, a memory window around PC, the top of the
// stack, and a scrollback of recently executed instructions. It is a
// development aid for stepping through execution by hand, not a
// product surface.
type Debugger struct {
	machine *console.Machine

	breakpoints map[uint16]struct{}
	history     []string

	enteringBreak bool
	inputBuf      string

	halted  bool
	fault   string
	verbose bool
}

// NewDebugger wraps an already-reset Machine for interactive stepping.
func NewDebugger(m *console.Machine) *Debugger {
	return &Debugger{
		machine:     m,
		breakpoints: make(map[uint16]struct{}),
	}
}

func (d *Debugger) Init() tea.Cmd {
	return nil
}

func (d *Debugger) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}

	if d.enteringBreak {
		switch keyMsg.String() {
		case "enter":
			addr, err := strconv.ParseUint(strings.TrimSpace(d.inputBuf), 16, 16)
			if err == nil {
				d.breakpoints[uint16(addr)] = struct{}{}
			}
			d.enteringBreak = false
			d.inputBuf = ""
		case "esc":
			d.enteringBreak = false
			d.inputBuf = ""
		case "backspace":
			if len(d.inputBuf) > 0 {
				d.inputBuf = d.inputBuf[:len(d.inputBuf)-1]
			}
		default:
			d.inputBuf += keyMsg.String()
		}
		return d, nil
	}

	switch keyMsg.String() {
	case "q", "ctrl+c":
		return d, tea.Quit
	case "s":
		d.step()
	case "r":
		d.runToBreakpoint()
	case "b":
		d.enteringBreak = true
	case "c":
		d.breakpoints = make(map[uint16]struct{})
	case "e":
		d.machine.Reset()
		d.halted = false
		d.fault = ""
		d.history = nil
	case "v":
		d.verbose = !d.verbose
	}
	return d, nil
}

// step executes one instruction, recording its trace line. A decode
// failure halts the stepper rather than crashing the terminal.
func (d *Debugger) step() {
	if d.halted {
		return
	}
	line := Line(d.machine.CPU())
	defer func() {
		if r := recover(); r != nil {
			d.halted = true
			d.fault = fmt.Sprint(r)
		}
	}()
	d.machine.Step()
	d.history = append(d.history, line)
	if len(d.history) > historyLimit {
		d.history = d.history[len(d.history)-historyLimit:]
	}
}

// runToBreakpoint steps until PC lands on a breakpoint, the CPU
// faults, or the run budget is exhausted.
func (d *Debugger) runToBreakpoint() {
	for i := 0; i < runBudget && !d.halted; i++ {
		d.step()
		if _, hit := d.breakpoints[d.machine.CPU().PC]; hit {
			return
		}
	}
}

func (d *Debugger) View() string {
	c := d.machine.CPU()

	var sb strings.Builder
	sb.WriteString(headerStyle.Render("nescore step debugger") + "\n\n")

	regs := fmt.Sprintf("PC:%04X  A:%02X  X:%02X  Y:%02X  P:%s(%02X)  SP:%02X",
		c.PC, c.A, c.X, c.Y, c.StatusString(), c.Status, c.SP)
	sb.WriteString(paneStyle.Render(regs) + "\n")

	next, _ := c.Disassemble(c.PC)
	sb.WriteString(fmt.Sprintf("next: %s\n", next))
	sb.WriteString(dimStyle.Render(MemoryWindow(c, c.PC, 8)) + "\n")
	sb.WriteString(dimStyle.Render("stack: "+StackTop(c, 6)) + "\n\n")

	if len(d.breakpoints) > 0 {
		var bps []string
		for addr := range d.breakpoints {
			bps = append(bps, fmt.Sprintf("%04X", addr))
		}
		sb.WriteString("breakpoints: " + strings.Join(bps, " ") + "\n\n")
	}

	sb.WriteString("history:\n")
	for _, h := range d.history {
		sb.WriteString(dimStyle.Render(h) + "\n")
	}
	sb.WriteString("\n")

	if d.halted {
		sb.WriteString(faultStyle.Render("halted: "+d.fault) + "\n\n")
	}

	if d.verbose {
		sb.WriteString(dimStyle.Render(spew.Sdump(*c)) + "\n")
	}

	if d.enteringBreak {
		sb.WriteString(promptStyle.Render("breakpoint (hex): " + d.inputBuf + "_"))
	} else {
		sb.WriteString(dimStyle.Render("(s)tep  (r)un-to-breakpoint  (b)reakpoint  (c)lear  r(e)set  (v)erbose  (q)uit"))
	}

	return sb.String()
}
