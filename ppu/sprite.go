package ppu

// spriteEntry is the decoded view of one sprite's four OAM bytes:
// Y position, tile index, attributes, X position. Attribute bits:
// 1:0 select the sprite palette, bit 5 puts the sprite behind the
// background, bits 6 and 7 flip it horizontally and vertically.
// Bits 4:2 are unimplemented on hardware and read back as zero.
type spriteEntry struct {
	y, tile, attr, x uint8
}

func decodeSprite(raw []uint8) spriteEntry {
	return spriteEntry{
		y:    raw[0],
		tile: raw[1],
		attr: raw[2] & 0xE3,
		x:    raw[3],
	}
}

func (s spriteEntry) palette() uint8 {
	return s.attr & 0x03
}

func (s spriteEntry) behindBackground() bool {
	return s.attr&0x20 != 0
}

func (s spriteEntry) flipH() bool {
	return s.attr&0x40 != 0
}

func (s spriteEntry) flipV() bool {
	return s.attr&0x80 != 0
}
