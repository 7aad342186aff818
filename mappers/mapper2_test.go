package mappers

import "testing"

func TestMapper2BankSwitchesLowWindowAndFixesHighWindow(t *testing.T) {
	rom := newTestROM(t, 4, 0, 0x00, 0x20) // mapper 2, 4 PRG banks
	m := &mapper2{baseMapper: newBaseMapper(2, "UxROM")}
	m.Init(rom)

	rom.PrgWrite(0*0x4000+0x05, 0xAA) // bank 0
	rom.PrgWrite(1*0x4000+0x05, 0xBB) // bank 1
	rom.PrgWrite(3*0x4000+0x05, 0xCC) // bank 3, fixed at $C000

	m.PrgWrite(0, 1) // select bank 1 into $8000-$BFFF
	if got := m.PrgRead(0x05); got != 0xBB {
		t.Errorf("PrgRead(0x05) after selecting bank 1 = %#02x, want 0xBB", got)
	}

	if got := m.PrgRead(0x4005); got != 0xCC {
		t.Errorf("PrgRead(0x4005) = %#02x, want 0xCC (fixed last bank)", got)
	}

	m.PrgWrite(0, 0) // select bank 0 into $8000-$BFFF
	if got := m.PrgRead(0x05); got != 0xAA {
		t.Errorf("PrgRead(0x05) after selecting bank 0 = %#02x, want 0xAA", got)
	}
}

func TestMapper2ChrIsWritableRAM(t *testing.T) {
	rom := newTestROM(t, 2, 0, 0x00, 0x20)
	m := &mapper2{baseMapper: newBaseMapper(2, "UxROM")}
	m.Init(rom)

	m.ChrWrite(0x10, 0x77)
	if got := m.ChrRead(0x10); got != 0x77 {
		t.Errorf("ChrRead(0x10) = %#02x, want 0x77", got)
	}
}
