// Package trace renders CPU state for development tooling: a single
// formatted line suitable for redirecting to a log, and the building
// blocks an interactive stepper uses to show register, memory and
// stack contents around PC.
package trace

import (
	"fmt"
	"strings"

	"github.com/student/nescore/mos6502"
)

// Line renders one CPU step as PC, the disassembled instruction, the
// register file and P as per-flag letters, and S - the same fields a
// redirected log needs to reconstruct execution after the fact.
func Line(c *mos6502.CPU) string {
	text, _ := c.Disassemble(c.PC)
	return fmt.Sprintf("%04X  %-18s A:%02X X:%02X Y:%02X P:%s(%02X) SP:%02X",
		c.PC, text, c.A, c.X, c.Y, c.StatusString(), c.Status, c.SP)
}

// MemoryWindow formats n bytes of memory starting at addr as a single
// hex-dump line, for display around PC in an interactive stepper.
func MemoryWindow(c *mos6502.CPU, addr uint16, n int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%04X: ", addr)
	for i := 0; i < n; i++ {
		fmt.Fprintf(&sb, "%02X ", c.Peek(addr+uint16(i)))
	}
	return sb.String()
}

// StackTop formats the n bytes above the current stack pointer, most
// recently pushed first.
func StackTop(c *mos6502.CPU, n int) string {
	var sb strings.Builder
	top := c.StackAddr()
	for i := 1; i <= n; i++ {
		addr := top + uint16(i)
		if addr > 0x01FF {
			break
		}
		fmt.Fprintf(&sb, "%02X ", c.Peek(addr))
	}
	return sb.String()
}
