package mos6502

import "testing"

type flatBus struct {
	data [0x10000]uint8
}

func (b *flatBus) Read(addr uint16) uint8       { return b.data[addr] }
func (b *flatBus) Write(addr uint16, val uint8) { b.data[addr] = val }

func (b *flatBus) write16(addr uint16, val uint16) {
	b.Write(addr, uint8(val))
	b.Write(addr+1, uint8(val>>8))
}

func newTestCPU() (*CPU, *flatBus) {
	bus := &flatBus{}
	return New(bus), bus
}

func TestResetLoadsVectorAndFlags(t *testing.T) {
	c, bus := newTestCPU()
	bus.write16(intReset, 0x8000)
	c.Status = 0

	if got := c.Reset(); got != 7 {
		t.Errorf("Reset() cycles = %d, want 7", got)
	}
	if c.PC != 0x8000 {
		t.Errorf("PC = %#04x, want 0x8000", c.PC)
	}
	if c.Status&StatusInterruptDisable == 0 {
		t.Error("Reset did not set the interrupt-disable flag")
	}
}

func TestStepCycleCounts(t *testing.T) {
	c, bus := newTestCPU()
	bus.write16(intReset, 0x8000)
	c.Reset()

	cases := []struct {
		name   string
		setup  func()
		pc     uint16
		bytes  []uint8
		want   int
		wantPC uint16
	}{
		{
			name:   "ADC immediate",
			pc:     0x8000,
			bytes:  []uint8{0x69, 0x01},
			want:   2,
			wantPC: 0x8002,
		},
		{
			name:  "ADC absolute,X no page cross",
			setup: func() { c.X = 1 },
			pc:    0x8000, bytes: []uint8{0x7D, 0x00, 0x80},
			want: 4, wantPC: 0x8003,
		},
		{
			name:  "ADC absolute,X page cross",
			setup: func() { c.X = 0xFF },
			pc:    0x8000, bytes: []uint8{0x7D, 0xFF, 0x80},
			want: 5, wantPC: 0x8003,
		},
		{
			name:  "BCC not taken",
			setup: func() { c.setFlag(StatusCarry, true) },
			pc:    0x8000, bytes: []uint8{0x90, 0x10},
			want: 2, wantPC: 0x8002,
		},
		{
			name:  "BCC taken same page",
			setup: func() { c.setFlag(StatusCarry, false) },
			pc:    0x8000, bytes: []uint8{0x90, 0x10},
			want: 3, wantPC: 0x8012,
		},
		{
			name:  "BCC taken crosses page",
			setup: func() { c.setFlag(StatusCarry, false) },
			pc:    0x80F0, bytes: []uint8{0x90, 0x20},
			want: 4, wantPC: 0x8112,
		},
	}

	for _, tc := range cases {
		c.PC = tc.pc
		for i, b := range tc.bytes {
			bus.Write(tc.pc+uint16(i), b)
		}
		if tc.setup != nil {
			tc.setup()
		}

		got := c.Step()
		if got != tc.want || c.PC != tc.wantPC {
			t.Errorf("%s: Step() = %d, PC = %#04x; want %d, PC = %#04x", tc.name, got, c.PC, tc.want, tc.wantPC)
		}
	}
}

func TestAddressingModes(t *testing.T) {
	c, bus := newTestCPU()
	c.X, c.Y = 0x10, 0xAC

	bus.write16(0x0064, 0x110F)

	cases := []struct {
		name string
		mode addrMode
		pc   uint16
		want uint16
	}{
		{"immediate", modeImmediate, 0x0064, 0x0064},
		{"absolute", modeAbsolute, 0x0064, 0x110F},
		{"absolute,X", modeAbsoluteX, 0x0064, 0x111F},
		{"absolute,Y", modeAbsoluteY, 0x0064, 0x11BB},
	}

	for _, tc := range cases {
		c.PC = tc.pc
		addr, _ := c.decodeOperand(tc.mode)
		if addr != tc.want {
			t.Errorf("%s: addr = %#04x, want %#04x", tc.name, addr, tc.want)
		}
	}
}

func TestIndirectJMPPageWrapBug(t *testing.T) {
	c, bus := newTestCPU()
	bus.Write(0x02FF, 0x00) // low byte of target, at last byte of page
	bus.Write(0x0300, 0x12) // not used: would be the "correct" high byte
	bus.Write(0x0200, 0x34) // used: buggy wraparound high byte

	c.PC = 0x0000
	bus.write16(0x0000, 0x02FF)
	addr, _ := c.decodeOperand(modeIndirect)
	if want := uint16(0x3400); addr != want {
		t.Errorf("indirect JMP addr = %#04x, want %#04x (page-wrap bug)", addr, want)
	}
}

func TestZeroPageIndexedWrap(t *testing.T) {
	c, bus := newTestCPU()
	c.X = 0x01
	bus.Write(0x0050, 0xFF)     // operand byte: zp pointer, wraps to 0x00 after +X
	bus.write16(0x0000, 0x1234) // target word stored at the wrapped zero-page address

	c.PC = 0x0050
	addr, _ := c.decodeOperand(modeIndirectX)
	if want := uint16(0x1234); addr != want {
		t.Errorf("(zp,X) addr = %#04x, want %#04x", addr, want)
	}
}

func TestADCFlagsAndCarry(t *testing.T) {
	c, _ := newTestCPU()
	cases := []struct {
		a, b, carryIn       uint8
		wantA               uint8
		wantC, wantV, wantN bool
	}{
		{0x50, 0x10, 0, 0x60, false, false, false},
		{0x50, 0x50, 0, 0xA0, false, true, true},
		{0xFF, 0x01, 0, 0x00, true, false, false},
		{0xFF, 0x00, 1, 0x00, true, false, false},
	}

	for i, tc := range cases {
		c.A = tc.a
		c.setFlag(StatusCarry, tc.carryIn != 0)
		c.addWithCarry(tc.b)
		if c.A != tc.wantA || c.flagSet(StatusCarry) != tc.wantC || c.flagSet(StatusOverflow) != tc.wantV || c.flagSet(StatusNegative) != tc.wantN {
			t.Errorf("%d: A=%#02x C=%v V=%v N=%v, want A=%#02x C=%v V=%v N=%v",
				i, c.A, c.flagSet(StatusCarry), c.flagSet(StatusOverflow), c.flagSet(StatusNegative),
				tc.wantA, tc.wantC, tc.wantV, tc.wantN)
		}
	}
}

func TestSBCBorrowClearsCarry(t *testing.T) {
	c, bus := newTestCPU()
	c.A = 0x00
	c.setFlag(StatusCarry, true) // no borrow pending
	bus.Write(0x0010, 0x01)

	sbc(c, 0x0010, modeZeroPage)

	if c.A != 0xFF {
		t.Errorf("A = %#02x, want 0xFF", c.A)
	}
	if c.flagSet(StatusCarry) {
		t.Error("SBC with borrow should clear Carry")
	}
	if c.flagSet(StatusZero) || !c.flagSet(StatusNegative) {
		t.Errorf("Z=%v N=%v, want Z=false N=true", c.flagSet(StatusZero), c.flagSet(StatusNegative))
	}
}

func TestCompareSetsCarryOnGreaterOrEqual(t *testing.T) {
	c, _ := newTestCPU()
	c.compare(0x10, 0x10)
	if !c.flagSet(StatusCarry) || !c.flagSet(StatusZero) {
		t.Error("equal compare should set Carry and Zero")
	}

	c.compare(0x05, 0x10)
	if c.flagSet(StatusCarry) {
		t.Error("lesser compare should clear Carry")
	}
}

func TestStackPushPull(t *testing.T) {
	c, bus := newTestCPU()
	c.SP = 0xFF

	c.push16(0xABCD)
	if c.SP != 0xFD {
		t.Fatalf("SP after push16 = %#02x, want 0xFD", c.SP)
	}
	if got := bus.Read(0x01FF); got != 0xAB {
		t.Errorf("high byte at 0x01FF = %#02x, want 0xAB", got)
	}
	if got := bus.Read(0x01FE); got != 0xCD {
		t.Errorf("low byte at 0x01FE = %#02x, want 0xCD", got)
	}

	if got := c.pull16(); got != 0xABCD || c.SP != 0xFF {
		t.Errorf("pull16() = %#04x (SP=%#02x), want 0xABCD (SP=0xFF)", got, c.SP)
	}
}

func TestPLPMasksBreakAndUnused(t *testing.T) {
	c, _ := newTestCPU()
	c.SP = 0xFF
	c.push(0xFF) // all bits set, including Break and Unused

	c.Status = 0
	plp(c, 0, modeImplicit)
	if c.Status&(StatusBreak|StatusUnused) != 0 {
		t.Errorf("PLP left Break/Unused set: status=%#02x", c.Status)
	}
}

func TestBRKPushesPCPlusOneAndSetsBreak(t *testing.T) {
	c, bus := newTestCPU()
	bus.write16(intIRQ, 0x9000)
	c.PC = 0x1235 // PC already advanced past the BRK opcode byte
	c.SP = 0xFF
	c.Status = 0

	brk(c, 0, modeImplicit)

	if c.PC != 0x9000 {
		t.Errorf("PC after BRK = %#04x, want 0x9000", c.PC)
	}
	pushedHi := bus.Read(0x01FF)
	pushedLo := bus.Read(0x01FE)
	pushedStatus := bus.Read(0x01FD)
	if pushedHi != 0x12 || pushedLo != 0x36 {
		t.Errorf("pushed return addr = %02x%02x, want 1236", pushedHi, pushedLo)
	}
	if pushedStatus&StatusBreak == 0 {
		t.Error("BRK did not set Break in the pushed status byte")
	}
	if c.Status&StatusInterruptDisable == 0 {
		t.Error("BRK did not set the live interrupt-disable flag")
	}
}

func TestNMIPushesUnmodifiedStatus(t *testing.T) {
	c, bus := newTestCPU()
	bus.write16(intNMI, 0x9000)
	c.PC = 0x9000
	c.SP = 0xFF
	c.Status = 0x24

	c.NMI()
	cycles := c.Step()

	if cycles != 7 {
		t.Errorf("NMI cycles = %d, want 7", cycles)
	}
	if c.PC != 0x9000 {
		t.Errorf("PC after NMI = %#04x, want 0x9000", c.PC)
	}
	if got := bus.Read(0x01FF); got != 0x90 {
		t.Errorf("stack[$01FF] = %#02x, want 0x90", got)
	}
	if got := bus.Read(0x01FE); got != 0x00 {
		t.Errorf("stack[$01FE] = %#02x, want 0x00", got)
	}
	if got := bus.Read(0x01FD); got != 0x24 {
		t.Errorf("stack[$01FD] = %#02x, want 0x24 (status pushed unmodified)", got)
	}
	if c.Status&StatusInterruptDisable == 0 {
		t.Error("NMI did not set interrupt-disable")
	}
}

func TestIRQSuppressedWhenDisabled(t *testing.T) {
	c, bus := newTestCPU()
	bus.Write(0x8000, 0xEA) // NOP, so the fallthrough fetch is well-defined
	c.Status = StatusInterruptDisable
	c.PC = 0x8000

	c.IRQ()
	cycles := c.Step()
	if cycles == interruptCycles {
		t.Error("IRQ serviced despite interrupt-disable being set")
	}
}

func TestJSRAndRTSRoundTrip(t *testing.T) {
	c, _ := newTestCPU()
	c.SP = 0xFF
	c.PC = 0x0302 // position after decodeOperand would have consumed the operand

	jsr(c, 0x9000, modeAbsolute)
	if c.PC != 0x9000 {
		t.Fatalf("PC after JSR = %#04x, want 0x9000", c.PC)
	}

	rts(c, 0, modeImplicit)
	if c.PC != 0x0302 {
		t.Errorf("PC after RTS = %#04x, want 0x0302", c.PC)
	}
}

func TestShiftsAndRotates(t *testing.T) {
	c, _ := newTestCPU()

	c.A = 0x81
	asl(c, 0, modeAccumulator)
	if c.A != 0x02 || !c.flagSet(StatusCarry) {
		t.Errorf("ASL: A=%#02x C=%v, want A=0x02 C=true", c.A, c.flagSet(StatusCarry))
	}

	c.A = 0x01
	lsr(c, 0, modeAccumulator)
	if c.A != 0x00 || !c.flagSet(StatusCarry) || !c.flagSet(StatusZero) {
		t.Errorf("LSR: A=%#02x C=%v Z=%v, want A=0x00 C=true Z=true", c.A, c.flagSet(StatusCarry), c.flagSet(StatusZero))
	}

	c.A = 0x80
	c.setFlag(StatusCarry, true)
	rol(c, 0, modeAccumulator)
	if c.A != 0x01 || !c.flagSet(StatusCarry) {
		t.Errorf("ROL: A=%#02x C=%v, want A=0x01 C=true", c.A, c.flagSet(StatusCarry))
	}

	c.A = 0x01
	c.setFlag(StatusCarry, true)
	ror(c, 0, modeAccumulator)
	if c.A != 0x80 || !c.flagSet(StatusCarry) {
		t.Errorf("ROR: A=%#02x C=%v, want A=0x80 C=true", c.A, c.flagSet(StatusCarry))
	}
}

func TestLoadAndStore(t *testing.T) {
	c, bus := newTestCPU()
	bus.Write(0x0010, 0xF0)

	lda(c, 0x0010, modeZeroPage)
	if c.A != 0xF0 || !c.flagSet(StatusNegative) {
		t.Errorf("LDA: A=%#02x N=%v, want A=0xF0 N=true", c.A, c.flagSet(StatusNegative))
	}

	c.A = 0x42
	sta(c, 0x0020, modeZeroPage)
	if got := bus.Read(0x0020); got != 0x42 {
		t.Errorf("STA: mem[0x0020] = %#02x, want 0x42", got)
	}
}

func TestBranchOpTakenAndNot(t *testing.T) {
	c, bus := newTestCPU()
	bus.write16(intReset, 0x8000)
	c.Reset()

	c.PC = 0x8000
	bus.Write(0x8000, 0xF0) // BEQ
	bus.Write(0x8001, 0x04)
	c.setFlag(StatusZero, true)
	if cycles := c.Step(); cycles != 3 {
		t.Errorf("BEQ taken cycles = %d, want 3", cycles)
	}
	if c.PC != 0x8006 {
		t.Errorf("BEQ taken PC = %#04x, want 0x8006", c.PC)
	}
}

func TestDisassembleFormatsEachAddressingMode(t *testing.T) {
	c, bus := newTestCPU()

	tests := []struct {
		name   string
		setup  func()
		pc     uint16
		want   string
		length uint16
	}{
		{"immediate", func() { bus.Write(0x8000, 0xA9); bus.Write(0x8001, 0xAA) }, 0x8000, "LDA #$AA", 2},
		{"zeropage", func() { bus.Write(0x8000, 0xA5); bus.Write(0x8001, 0x10) }, 0x8000, "LDA $10", 2},
		{"zeropageX", func() { bus.Write(0x8000, 0xB5); bus.Write(0x8001, 0x10) }, 0x8000, "LDA $10,X", 2},
		{"absolute", func() { bus.Write(0x8000, 0x8D); bus.write16(0x8001, 0x0200) }, 0x8000, "STA $0200", 3},
		{"absoluteX", func() { bus.Write(0x8000, 0x9D); bus.write16(0x8001, 0x0200) }, 0x8000, "STA $0200,X", 3},
		{"indirect", func() { bus.Write(0x8000, 0x6C); bus.write16(0x8001, 0x0200) }, 0x8000, "JMP ($0200)", 3},
		{"indirectX", func() { bus.Write(0x8000, 0xA1); bus.Write(0x8001, 0x10) }, 0x8000, "LDA ($10,X)", 2},
		{"indirectY", func() { bus.Write(0x8000, 0xB1); bus.Write(0x8001, 0x10) }, 0x8000, "LDA ($10),Y", 2},
		{"implicit", func() { bus.Write(0x8000, 0xEA) }, 0x8000, "NOP", 1},
		{"accumulator", func() { bus.Write(0x8000, 0x0A) }, 0x8000, "ASL A", 1},
		{"unknown opcode", func() { bus.Write(0x8000, 0x02) }, 0x8000, "???", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			text, length := c.Disassemble(tt.pc)
			if text != tt.want {
				t.Errorf("Disassemble() text = %q, want %q", text, tt.want)
			}
			if length != tt.length {
				t.Errorf("Disassemble() length = %d, want %d", length, tt.length)
			}
		})
	}
}

func TestDisassembleRelativeResolvesBranchTarget(t *testing.T) {
	c, bus := newTestCPU()
	bus.Write(0x8000, 0xF0) // BEQ
	bus.Write(0x8001, 0x04)

	text, length := c.Disassemble(0x8000)
	if text != "BEQ $8006" {
		t.Errorf("Disassemble() text = %q, want %q", text, "BEQ $8006")
	}
	if length != 2 {
		t.Errorf("Disassemble() length = %d, want 2", length)
	}
}

func TestPeekDoesNotMutateCPUState(t *testing.T) {
	c, bus := newTestCPU()
	bus.Write(0x0042, 0x99)
	c.PC = 0x8000

	if got := c.Peek(0x0042); got != 0x99 {
		t.Errorf("Peek(0x0042) = %#02x, want 0x99", got)
	}
	if c.PC != 0x8000 {
		t.Error("Peek should not move PC")
	}
}
