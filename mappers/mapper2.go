package mappers

func init() {
	RegisterMapper(2, &mapper2{baseMapper: newBaseMapper(2, "UxROM")})
}

// mapper2 implements UxROM: a switchable 16 KiB PRG bank at
// $8000-$BFFF, with the last 16 KiB bank fixed at $C000-$FFFF. CHR is
// always 8 KiB of CHR-RAM. A write anywhere in $8000-$FFFF selects the
// switchable bank from its low bits.
type mapper2 struct {
	*baseMapper
	bank uint8
}

func (m *mapper2) PrgRead(addr uint16) uint8 {
	if addr < 0x4000 {
		return m.rom.PrgRead(uint16(m.bank)*0x4000 + addr)
	}

	lastBank := m.rom.NumPrgBlocks() - 1
	return m.rom.PrgRead(uint16(lastBank)*0x4000 + (addr - 0x4000))
}

func (m *mapper2) PrgWrite(addr uint16, val uint8) {
	m.bank = val % m.rom.NumPrgBlocks()
}

func (m *mapper2) ChrRead(addr uint16) uint8 {
	return m.rom.ChrRead(addr)
}

func (m *mapper2) ChrWrite(addr uint16, val uint8) {
	m.rom.ChrWrite(addr, val)
}

var _ Mapper = (*mapper2)(nil)
