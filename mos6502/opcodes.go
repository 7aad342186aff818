package mos6502

import (
	"fmt"
	"math/bits"
)

// 6502 Addressing Modes
// https://www.nesdev.org/obelisk-6502-guide/addressing.html
type addrMode uint8

const (
	modeImplicit addrMode = iota
	modeAccumulator
	modeImmediate
	modeZeroPage
	modeZeroPageX
	modeZeroPageY
	modeRelative
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirect
	modeIndirectX // Indexed Indirect: (zp,X)
	modeIndirectY // Indirect Indexed: (zp),Y
)

type opcodeFunc func(c *CPU, addr uint16, mode addrMode)

type opcodeDescriptor struct {
	name             string
	mode             addrMode
	baseCycles       uint8
	pageCrossPenalty bool
	exec             opcodeFunc
}

var opcodes [256]opcodeDescriptor

func define(op uint8, name string, mode addrMode, cycles uint8, penalty bool, exec opcodeFunc) {
	opcodes[op] = opcodeDescriptor{name, mode, cycles, penalty, exec}
}

func init() {
	define(0x69, "ADC", modeImmediate, 2, false, adc)
	define(0x65, "ADC", modeZeroPage, 3, false, adc)
	define(0x75, "ADC", modeZeroPageX, 4, false, adc)
	define(0x6D, "ADC", modeAbsolute, 4, false, adc)
	define(0x7D, "ADC", modeAbsoluteX, 4, true, adc)
	define(0x79, "ADC", modeAbsoluteY, 4, true, adc)
	define(0x61, "ADC", modeIndirectX, 6, false, adc)
	define(0x71, "ADC", modeIndirectY, 5, true, adc)

	define(0x29, "AND", modeImmediate, 2, false, and)
	define(0x25, "AND", modeZeroPage, 3, false, and)
	define(0x35, "AND", modeZeroPageX, 4, false, and)
	define(0x2D, "AND", modeAbsolute, 4, false, and)
	define(0x3D, "AND", modeAbsoluteX, 4, true, and)
	define(0x39, "AND", modeAbsoluteY, 4, true, and)
	define(0x21, "AND", modeIndirectX, 6, false, and)
	define(0x31, "AND", modeIndirectY, 5, true, and)

	define(0x0A, "ASL", modeAccumulator, 2, false, asl)
	define(0x06, "ASL", modeZeroPage, 5, false, asl)
	define(0x16, "ASL", modeZeroPageX, 6, false, asl)
	define(0x0E, "ASL", modeAbsolute, 6, false, asl)
	define(0x1E, "ASL", modeAbsoluteX, 7, false, asl)

	define(0x90, "BCC", modeRelative, 2, false, branchOp(StatusCarry, false))
	define(0xB0, "BCS", modeRelative, 2, false, branchOp(StatusCarry, true))
	define(0xF0, "BEQ", modeRelative, 2, false, branchOp(StatusZero, true))
	define(0x30, "BMI", modeRelative, 2, false, branchOp(StatusNegative, true))
	define(0xD0, "BNE", modeRelative, 2, false, branchOp(StatusZero, false))
	define(0x10, "BPL", modeRelative, 2, false, branchOp(StatusNegative, false))
	define(0x50, "BVC", modeRelative, 2, false, branchOp(StatusOverflow, false))
	define(0x70, "BVS", modeRelative, 2, false, branchOp(StatusOverflow, true))

	define(0x24, "BIT", modeZeroPage, 3, false, bit)
	define(0x2C, "BIT", modeAbsolute, 4, false, bit)

	define(0x00, "BRK", modeImplicit, 7, false, brk)

	define(0x18, "CLC", modeImplicit, 2, false, clc)
	define(0xD8, "CLD", modeImplicit, 2, false, cld)
	define(0x58, "CLI", modeImplicit, 2, false, cli)
	define(0xB8, "CLV", modeImplicit, 2, false, clv)

	define(0xC9, "CMP", modeImmediate, 2, false, cmp)
	define(0xC5, "CMP", modeZeroPage, 3, false, cmp)
	define(0xD5, "CMP", modeZeroPageX, 4, false, cmp)
	define(0xCD, "CMP", modeAbsolute, 4, false, cmp)
	define(0xDD, "CMP", modeAbsoluteX, 4, true, cmp)
	define(0xD9, "CMP", modeAbsoluteY, 4, true, cmp)
	define(0xC1, "CMP", modeIndirectX, 6, false, cmp)
	define(0xD1, "CMP", modeIndirectY, 5, true, cmp)

	define(0xE0, "CPX", modeImmediate, 2, false, cpx)
	define(0xE4, "CPX", modeZeroPage, 3, false, cpx)
	define(0xEC, "CPX", modeAbsolute, 4, false, cpx)

	define(0xC0, "CPY", modeImmediate, 2, false, cpy)
	define(0xC4, "CPY", modeZeroPage, 3, false, cpy)
	define(0xCC, "CPY", modeAbsolute, 4, false, cpy)

	define(0xC6, "DEC", modeZeroPage, 5, false, dec)
	define(0xD6, "DEC", modeZeroPageX, 6, false, dec)
	define(0xCE, "DEC", modeAbsolute, 6, false, dec)
	define(0xDE, "DEC", modeAbsoluteX, 7, false, dec)

	define(0xCA, "DEX", modeImplicit, 2, false, dex)
	define(0x88, "DEY", modeImplicit, 2, false, dey)

	define(0x49, "EOR", modeImmediate, 2, false, eor)
	define(0x45, "EOR", modeZeroPage, 3, false, eor)
	define(0x55, "EOR", modeZeroPageX, 4, false, eor)
	define(0x4D, "EOR", modeAbsolute, 4, false, eor)
	define(0x5D, "EOR", modeAbsoluteX, 4, true, eor)
	define(0x59, "EOR", modeAbsoluteY, 4, true, eor)
	define(0x41, "EOR", modeIndirectX, 6, false, eor)
	define(0x51, "EOR", modeIndirectY, 5, true, eor)

	define(0xE6, "INC", modeZeroPage, 5, false, inc)
	define(0xF6, "INC", modeZeroPageX, 6, false, inc)
	define(0xEE, "INC", modeAbsolute, 6, false, inc)
	define(0xFE, "INC", modeAbsoluteX, 7, false, inc)

	define(0xE8, "INX", modeImplicit, 2, false, inx)
	define(0xC8, "INY", modeImplicit, 2, false, iny)

	define(0x4C, "JMP", modeAbsolute, 3, false, jmp)
	define(0x6C, "JMP", modeIndirect, 5, false, jmp)

	define(0x20, "JSR", modeAbsolute, 6, false, jsr)

	define(0xA9, "LDA", modeImmediate, 2, false, lda)
	define(0xA5, "LDA", modeZeroPage, 3, false, lda)
	define(0xB5, "LDA", modeZeroPageX, 4, false, lda)
	define(0xAD, "LDA", modeAbsolute, 4, false, lda)
	define(0xBD, "LDA", modeAbsoluteX, 4, true, lda)
	define(0xB9, "LDA", modeAbsoluteY, 4, true, lda)
	define(0xA1, "LDA", modeIndirectX, 6, false, lda)
	define(0xB1, "LDA", modeIndirectY, 5, true, lda)

	define(0xA2, "LDX", modeImmediate, 2, false, ldx)
	define(0xA6, "LDX", modeZeroPage, 3, false, ldx)
	define(0xB6, "LDX", modeZeroPageY, 4, false, ldx)
	define(0xAE, "LDX", modeAbsolute, 4, false, ldx)
	define(0xBE, "LDX", modeAbsoluteY, 4, true, ldx)

	define(0xA0, "LDY", modeImmediate, 2, false, ldy)
	define(0xA4, "LDY", modeZeroPage, 3, false, ldy)
	define(0xB4, "LDY", modeZeroPageX, 4, false, ldy)
	define(0xAC, "LDY", modeAbsolute, 4, false, ldy)
	define(0xBC, "LDY", modeAbsoluteX, 4, true, ldy)

	define(0x4A, "LSR", modeAccumulator, 2, false, lsr)
	define(0x46, "LSR", modeZeroPage, 5, false, lsr)
	define(0x56, "LSR", modeZeroPageX, 6, false, lsr)
	define(0x4E, "LSR", modeAbsolute, 6, false, lsr)
	define(0x5E, "LSR", modeAbsoluteX, 7, false, lsr)

	define(0xEA, "NOP", modeImplicit, 2, false, nop)

	define(0x09, "ORA", modeImmediate, 2, false, ora)
	define(0x05, "ORA", modeZeroPage, 3, false, ora)
	define(0x15, "ORA", modeZeroPageX, 4, false, ora)
	define(0x0D, "ORA", modeAbsolute, 4, false, ora)
	define(0x1D, "ORA", modeAbsoluteX, 4, true, ora)
	define(0x19, "ORA", modeAbsoluteY, 4, true, ora)
	define(0x01, "ORA", modeIndirectX, 6, false, ora)
	define(0x11, "ORA", modeIndirectY, 5, true, ora)

	define(0x48, "PHA", modeImplicit, 3, false, pha)
	define(0x08, "PHP", modeImplicit, 3, false, php)
	define(0x68, "PLA", modeImplicit, 4, false, pla)
	define(0x28, "PLP", modeImplicit, 4, false, plp)

	define(0x2A, "ROL", modeAccumulator, 2, false, rol)
	define(0x26, "ROL", modeZeroPage, 5, false, rol)
	define(0x36, "ROL", modeZeroPageX, 6, false, rol)
	define(0x2E, "ROL", modeAbsolute, 6, false, rol)
	define(0x3E, "ROL", modeAbsoluteX, 7, false, rol)

	define(0x6A, "ROR", modeAccumulator, 2, false, ror)
	define(0x66, "ROR", modeZeroPage, 5, false, ror)
	define(0x76, "ROR", modeZeroPageX, 6, false, ror)
	define(0x6E, "ROR", modeAbsolute, 6, false, ror)
	define(0x7E, "ROR", modeAbsoluteX, 7, false, ror)

	define(0x40, "RTI", modeImplicit, 6, false, rti)
	define(0x60, "RTS", modeImplicit, 6, false, rts)

	define(0xE9, "SBC", modeImmediate, 2, false, sbc)
	define(0xE5, "SBC", modeZeroPage, 3, false, sbc)
	define(0xF5, "SBC", modeZeroPageX, 4, false, sbc)
	define(0xED, "SBC", modeAbsolute, 4, false, sbc)
	define(0xFD, "SBC", modeAbsoluteX, 4, true, sbc)
	define(0xF9, "SBC", modeAbsoluteY, 4, true, sbc)
	define(0xE1, "SBC", modeIndirectX, 6, false, sbc)
	define(0xF1, "SBC", modeIndirectY, 5, true, sbc)

	define(0x38, "SEC", modeImplicit, 2, false, sec)
	define(0xF8, "SED", modeImplicit, 2, false, sed)
	define(0x78, "SEI", modeImplicit, 2, false, sei)

	define(0x85, "STA", modeZeroPage, 3, false, sta)
	define(0x95, "STA", modeZeroPageX, 4, false, sta)
	define(0x8D, "STA", modeAbsolute, 4, false, sta)
	define(0x9D, "STA", modeAbsoluteX, 5, false, sta)
	define(0x99, "STA", modeAbsoluteY, 5, false, sta)
	define(0x81, "STA", modeIndirectX, 6, false, sta)
	define(0x91, "STA", modeIndirectY, 6, false, sta)

	define(0x86, "STX", modeZeroPage, 3, false, stx)
	define(0x96, "STX", modeZeroPageY, 4, false, stx)
	define(0x8E, "STX", modeAbsolute, 4, false, stx)

	define(0x84, "STY", modeZeroPage, 3, false, sty)
	define(0x94, "STY", modeZeroPageX, 4, false, sty)
	define(0x8C, "STY", modeAbsolute, 4, false, sty)

	define(0xAA, "TAX", modeImplicit, 2, false, tax)
	define(0xA8, "TAY", modeImplicit, 2, false, tay)
	define(0xBA, "TSX", modeImplicit, 2, false, tsx)
	define(0x8A, "TXA", modeImplicit, 2, false, txa)
	define(0x9A, "TXS", modeImplicit, 2, false, txs)
	define(0x98, "TYA", modeImplicit, 2, false, tya)
}

// Name returns the mnemonic of the opcode at op, or "???" if op has no
// descriptor. Used by trace tooling.
func Name(op uint8) string {
	if d := opcodes[op]; d.exec != nil {
		return d.name
	}
	return "???"
}

// Disassemble renders the instruction at addr as text (mnemonic plus
// operand in 6502 assembler syntax) without mutating the CPU or
// executing anything, and returns the instruction's length in bytes
// so a caller walking forward through memory knows how far to
// advance. It reads operand bytes directly off the bus, so pointing
// it at memory-mapped I/O can trigger the same read side effects
// Peek can.
func (c *CPU) Disassemble(addr uint16) (text string, length uint16) {
	op := c.read(addr)
	d := opcodes[op]
	if d.exec == nil {
		return "???", 1
	}

	switch d.mode {
	case modeImplicit:
		return d.name, 1
	case modeAccumulator:
		return d.name + " A", 1
	case modeImmediate:
		b := c.read(addr + 1)
		return fmt.Sprintf("%s #$%02X", d.name, b), 2
	case modeZeroPage:
		b := c.read(addr + 1)
		return fmt.Sprintf("%s $%02X", d.name, b), 2
	case modeZeroPageX:
		b := c.read(addr + 1)
		return fmt.Sprintf("%s $%02X,X", d.name, b), 2
	case modeZeroPageY:
		b := c.read(addr + 1)
		return fmt.Sprintf("%s $%02X,Y", d.name, b), 2
	case modeRelative:
		b := c.read(addr + 1)
		target := addr + 2 + uint16(int8(b))
		return fmt.Sprintf("%s $%04X", d.name, target), 2
	case modeAbsolute:
		v := c.read16(addr + 1)
		return fmt.Sprintf("%s $%04X", d.name, v), 3
	case modeAbsoluteX:
		v := c.read16(addr + 1)
		return fmt.Sprintf("%s $%04X,X", d.name, v), 3
	case modeAbsoluteY:
		v := c.read16(addr + 1)
		return fmt.Sprintf("%s $%04X,Y", d.name, v), 3
	case modeIndirect:
		v := c.read16(addr + 1)
		return fmt.Sprintf("%s ($%04X)", d.name, v), 3
	case modeIndirectX:
		b := c.read(addr + 1)
		return fmt.Sprintf("%s ($%02X,X)", d.name, b), 2
	case modeIndirectY:
		b := c.read(addr + 1)
		return fmt.Sprintf("%s ($%02X),Y", d.name, b), 2
	default:
		return d.name, 1
	}
}

// decodeOperand advances PC past any operand bytes the addressing
// mode consumes and returns the effective address together with
// whether computing it crossed a page boundary. Accumulator and
// implicit modes return (0, false) without touching PC.
func (c *CPU) decodeOperand(mode addrMode) (uint16, bool) {
	switch mode {
	case modeImplicit, modeAccumulator:
		return 0, false
	case modeImmediate:
		addr := c.PC
		c.PC++
		return addr, false
	case modeZeroPage:
		addr := uint16(c.read(c.PC))
		c.PC++
		return addr, false
	case modeZeroPageX:
		addr := uint16(c.read(c.PC) + c.X)
		c.PC++
		return addr, false
	case modeZeroPageY:
		addr := uint16(c.read(c.PC) + c.Y)
		c.PC++
		return addr, false
	case modeAbsolute:
		addr := c.read16(c.PC)
		c.PC += 2
		return addr, false
	case modeAbsoluteX:
		base := c.read16(c.PC)
		c.PC += 2
		addr := base + uint16(c.X)
		return addr, pageCrossed(base, addr)
	case modeAbsoluteY:
		base := c.read16(c.PC)
		c.PC += 2
		addr := base + uint16(c.Y)
		return addr, pageCrossed(base, addr)
	case modeIndirect:
		ptr := c.read16(c.PC)
		c.PC += 2
		return c.read16PageWrap(ptr), false
	case modeIndirectX:
		zp := c.read(c.PC) + c.X
		c.PC++
		return c.readZeroPage16(zp), false
	case modeIndirectY:
		zp := c.read(c.PC)
		c.PC++
		base := c.readZeroPage16(zp)
		addr := base + uint16(c.Y)
		return addr, pageCrossed(base, addr)
	case modeRelative:
		offset := int8(c.read(c.PC))
		c.PC++
		return uint16(int32(c.PC) + int32(offset)), false
	default:
		panic("mos6502: invalid addressing mode")
	}
}

// read16PageWrap reproduces the indirect-JMP hardware bug: when ptr
// sits on the last byte of a page, the high byte of the target is
// fetched from the start of that same page instead of the next one.
func (c *CPU) read16PageWrap(ptr uint16) uint16 {
	lo := uint16(c.read(ptr))
	hiAddr := (ptr & 0xFF00) | uint16(uint8(ptr)+1)
	hi := uint16(c.read(hiAddr))
	return hi<<8 | lo
}

// readZeroPage16 reads a little-endian word from zero page starting
// at addr, wrapping within page zero rather than crossing into page
// one, as (zp,X) and (zp),Y addressing require.
func (c *CPU) readZeroPage16(addr uint8) uint16 {
	lo := uint16(c.read(uint16(addr)))
	hi := uint16(c.read(uint16(addr + 1)))
	return hi<<8 | lo
}

func pageCrossed(a, b uint16) bool {
	return a&0xFF00 != b&0xFF00
}

// branchOp builds the exec function for a conditional branch: it
// takes the branch when (Status&mask != 0) equals want, charging one
// cycle for a taken branch and a second if it lands on a new page.
func branchOp(mask uint8, want bool) opcodeFunc {
	return func(c *CPU, addr uint16, mode addrMode) {
		if c.flagSet(mask) == want {
			if pageCrossed(c.PC, addr) {
				c.extra++
			}
			c.extra++
			c.PC = addr
		}
	}
}

func adc(c *CPU, addr uint16, mode addrMode) {
	c.addWithCarry(c.read(addr))
}

func sbc(c *CPU, addr uint16, mode addrMode) {
	c.addWithCarry(^c.read(addr))
}

// addWithCarry adds b and the carry flag into A, setting Carry,
// Overflow, Zero and Negative from the result.
func (c *CPU) addWithCarry(b uint8) {
	carry := uint16(0)
	if c.flagSet(StatusCarry) {
		carry = 1
	}
	sum := uint16(c.A) + uint16(b) + carry
	result := uint8(sum)

	c.setFlag(StatusCarry, sum > 0xFF)
	c.setFlag(StatusOverflow, (c.A^result)&(b^result)&0x80 != 0)
	c.A = result
	c.setZN(c.A)
}

func and(c *CPU, addr uint16, mode addrMode) {
	c.A &= c.read(addr)
	c.setZN(c.A)
}

func asl(c *CPU, addr uint16, mode addrMode) {
	old := c.readForShift(addr, mode)
	result := old << 1
	c.writeForShift(addr, mode, result)
	c.setFlag(StatusCarry, old&0x80 != 0)
	c.setZN(result)
}

func lsr(c *CPU, addr uint16, mode addrMode) {
	old := c.readForShift(addr, mode)
	result := old >> 1
	c.writeForShift(addr, mode, result)
	c.setFlag(StatusCarry, old&0x01 != 0)
	c.setZN(result)
}

func rol(c *CPU, addr uint16, mode addrMode) {
	old := c.readForShift(addr, mode)
	result := bits.RotateLeft8(old, 1)
	if c.flagSet(StatusCarry) {
		result |= 0x01
	} else {
		result &^= 0x01
	}
	c.writeForShift(addr, mode, result)
	c.setFlag(StatusCarry, old&0x80 != 0)
	c.setZN(result)
}

func ror(c *CPU, addr uint16, mode addrMode) {
	old := c.readForShift(addr, mode)
	result := bits.RotateLeft8(old, -1)
	if c.flagSet(StatusCarry) {
		result |= 0x80
	} else {
		result &^= 0x80
	}
	c.writeForShift(addr, mode, result)
	c.setFlag(StatusCarry, old&0x01 != 0)
	c.setZN(result)
}

func (c *CPU) readForShift(addr uint16, mode addrMode) uint8 {
	if mode == modeAccumulator {
		return c.A
	}
	return c.read(addr)
}

func (c *CPU) writeForShift(addr uint16, mode addrMode, val uint8) {
	if mode == modeAccumulator {
		c.A = val
		return
	}
	c.write(addr, val)
}

func bit(c *CPU, addr uint16, mode addrMode) {
	v := c.read(addr)
	c.setFlag(StatusZero, v&c.A == 0)
	c.setFlag(StatusOverflow, v&StatusOverflow != 0)
	c.setFlag(StatusNegative, v&StatusNegative != 0)
}

func brk(c *CPU, addr uint16, mode addrMode) {
	c.PC++ // skip the padding byte following the BRK opcode
	c.push16(c.PC)
	c.push(c.Status | StatusBreak | StatusUnused)
	c.setFlag(StatusInterruptDisable, true)
	c.PC = c.read16(intIRQ)
}

func clc(c *CPU, addr uint16, mode addrMode) { c.setFlag(StatusCarry, false) }
func cld(c *CPU, addr uint16, mode addrMode) { c.setFlag(StatusDecimal, false) }
func cli(c *CPU, addr uint16, mode addrMode) { c.setFlag(StatusInterruptDisable, false) }
func clv(c *CPU, addr uint16, mode addrMode) { c.setFlag(StatusOverflow, false) }
func sec(c *CPU, addr uint16, mode addrMode) { c.setFlag(StatusCarry, true) }
func sed(c *CPU, addr uint16, mode addrMode) { c.setFlag(StatusDecimal, true) }
func sei(c *CPU, addr uint16, mode addrMode) { c.setFlag(StatusInterruptDisable, true) }

func (c *CPU) compare(reg, v uint8) {
	c.setFlag(StatusCarry, reg >= v)
	c.setZN(reg - v)
}

func cmp(c *CPU, addr uint16, mode addrMode) { c.compare(c.A, c.read(addr)) }
func cpx(c *CPU, addr uint16, mode addrMode) { c.compare(c.X, c.read(addr)) }
func cpy(c *CPU, addr uint16, mode addrMode) { c.compare(c.Y, c.read(addr)) }

func dec(c *CPU, addr uint16, mode addrMode) {
	v := c.read(addr) - 1
	c.write(addr, v)
	c.setZN(v)
}

func inc(c *CPU, addr uint16, mode addrMode) {
	v := c.read(addr) + 1
	c.write(addr, v)
	c.setZN(v)
}

func dex(c *CPU, addr uint16, mode addrMode) { c.X--; c.setZN(c.X) }
func dey(c *CPU, addr uint16, mode addrMode) { c.Y--; c.setZN(c.Y) }
func inx(c *CPU, addr uint16, mode addrMode) { c.X++; c.setZN(c.X) }
func iny(c *CPU, addr uint16, mode addrMode) { c.Y++; c.setZN(c.Y) }

func eor(c *CPU, addr uint16, mode addrMode) {
	c.A ^= c.read(addr)
	c.setZN(c.A)
}

func ora(c *CPU, addr uint16, mode addrMode) {
	c.A |= c.read(addr)
	c.setZN(c.A)
}

func jmp(c *CPU, addr uint16, mode addrMode) {
	c.PC = addr
}

func jsr(c *CPU, addr uint16, mode addrMode) {
	c.push16(c.PC - 1)
	c.PC = addr
}

func rts(c *CPU, addr uint16, mode addrMode) {
	c.PC = c.pull16() + 1
}

func rti(c *CPU, addr uint16, mode addrMode) {
	c.Status = c.pullStatus()
	c.PC = c.pull16()
}

func lda(c *CPU, addr uint16, mode addrMode) { c.A = c.read(addr); c.setZN(c.A) }
func ldx(c *CPU, addr uint16, mode addrMode) { c.X = c.read(addr); c.setZN(c.X) }
func ldy(c *CPU, addr uint16, mode addrMode) { c.Y = c.read(addr); c.setZN(c.Y) }
func sta(c *CPU, addr uint16, mode addrMode) { c.write(addr, c.A) }
func stx(c *CPU, addr uint16, mode addrMode) { c.write(addr, c.X) }
func sty(c *CPU, addr uint16, mode addrMode) { c.write(addr, c.Y) }

func nop(c *CPU, addr uint16, mode addrMode) {}

func pha(c *CPU, addr uint16, mode addrMode) { c.push(c.A) }
func pla(c *CPU, addr uint16, mode addrMode) { c.A = c.pull(); c.setZN(c.A) }
func php(c *CPU, addr uint16, mode addrMode) { c.push(c.Status | StatusBreak | StatusUnused) }
func plp(c *CPU, addr uint16, mode addrMode) { c.Status = c.pullStatus() }

func tax(c *CPU, addr uint16, mode addrMode) { c.X = c.A; c.setZN(c.X) }
func tay(c *CPU, addr uint16, mode addrMode) { c.Y = c.A; c.setZN(c.Y) }
func tsx(c *CPU, addr uint16, mode addrMode) { c.X = c.SP; c.setZN(c.X) }
func txa(c *CPU, addr uint16, mode addrMode) { c.A = c.X; c.setZN(c.A) }
func tya(c *CPU, addr uint16, mode addrMode) { c.A = c.Y; c.setZN(c.A) }
func txs(c *CPU, addr uint16, mode addrMode) { c.SP = c.X }
