package console

import (
	"github.com/student/nescore/mappers"
	"github.com/student/nescore/mos6502"
)

// ppuBus is the PPU's view of the cartridge: pattern-table storage
// lives on the mapper, and vblank-start NMI is signalled back to the
// CPU through here. It satisfies ppu.Bus.
type ppuBus struct {
	mapper mappers.Mapper
	cpu    *mos6502.CPU
}

func (b *ppuBus) ChrRead(addr uint16) uint8 {
	return b.mapper.ChrRead(addr)
}

func (b *ppuBus) ChrWrite(addr uint16, val uint8) {
	b.mapper.ChrWrite(addr, val)
}

func (b *ppuBus) TriggerNMI() {
	b.cpu.NMI()
}
