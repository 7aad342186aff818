package console

import (
	"github.com/student/nescore/mappers"
	"github.com/student/nescore/mos6502"
	"github.com/student/nescore/ppu"
)

const (
	ramSize      = 2048
	sramSize     = 0x2000
	oamDMACycles = 513
)

// cpuBus is the CPU's view of the NES memory map: 2 KiB of work RAM
// mirrored every $0800, PPU registers mirrored every 8 bytes, the two
// controller ports, a small cartridge SRAM window, and the mapper for
// everything at $8000 and above. It satisfies mos6502.Bus.
type cpuBus struct {
	ram  [ramSize]uint8
	sram [sramSize]uint8

	ppu         *ppu.PPU
	mapper      mappers.Mapper
	controllers [2]*controller
	cpu         *mos6502.CPU

	cycles  *uint64
	openBus uint8
}

func (b *cpuBus) Read(addr uint16) uint8 {
	var v uint8
	switch {
	case addr < 0x2000:
		v = b.ram[addr%ramSize]
	case addr < 0x4000:
		v = b.ppu.ReadReg(0x2000 + addr%8)
	case addr == 0x4016:
		v = b.controllers[0].read()
	case addr == 0x4017:
		v = b.controllers[1].read()
	case addr < 0x6000:
		// Expansion area; nothing drives the bus here.
		v = b.openBus
	case addr < 0x8000:
		v = b.sram[addr-0x6000]
	default:
		v = b.mapper.PrgRead(addr - 0x8000)
	}
	b.openBus = v
	return v
}

func (b *cpuBus) Write(addr uint16, val uint8) {
	switch {
	case addr < 0x2000:
		b.ram[addr%ramSize] = val
	case addr < 0x4000:
		b.ppu.WriteReg(0x2000+addr%8, val)
	case addr == 0x4014:
		b.runOAMDMA(val)
	case addr == 0x4016:
		b.controllers[0].write(val)
		b.controllers[1].write(val)
	case addr < 0x6000:
		// APU/I/O registers and the expansion area are not emulated;
		// writes land nowhere.
	case addr < 0x8000:
		b.sram[addr-0x6000] = val
	default:
		b.mapper.PrgWrite(addr-0x8000, val)
	}
	b.openBus = val
}

// runOAMDMA copies the 256-byte page starting at page<<8 into OAM and
// charges the CPU the stall this freezes the bus for: 513 cycles, or
// 514 if DMA starts on an odd CPU cycle.
func (b *cpuBus) runOAMDMA(page uint8) {
	var data [256]uint8
	base := uint16(page) << 8
	for i := 0; i < 256; i++ {
		data[i] = b.Read(base + uint16(i))
	}
	b.ppu.WriteOAMDMA(data)

	cycles := oamDMACycles
	if b.cycles != nil && *b.cycles%2 == 1 {
		cycles++
	}
	b.cpu.AddStallCycles(cycles)
}
