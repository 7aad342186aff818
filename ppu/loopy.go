package ppu

// loopy stores the PPU's internal v/t scroll registers and the bit
// fields packed into them, named after Loopy's famous scrolling
// writeup:
// yyy NN YYYYY XXXXX
// ||| || ||||| +++++-- coarse X scroll
// ||| || +++++-------- coarse Y scroll
// ||| ++-------------- nametable select
// +++----------------- fine Y scroll
type loopy struct {
	data uint16 // only 15 bits used
}

func (l *loopy) coarseX() uint16 {
	return l.data & 0x001F
}

func (l *loopy) setCoarseX(n uint16) {
	l.data = (l.data &^ 0x001F) | (n & 0x001F)
}

// incrementCoarseX wraps coarseX at 32, toggling nametable-X on wrap,
// reproducing the PPU's horizontal tile-step-and-flip behavior.
func (l *loopy) incrementCoarseX() {
	if l.coarseX() == 31 {
		l.setCoarseX(0)
		l.toggleNametableX()
	} else {
		l.setCoarseX(l.coarseX() + 1)
	}
}

func (l *loopy) coarseY() uint16 {
	return (l.data & 0x03E0) >> 5
}

func (l *loopy) setCoarseY(n uint16) {
	l.data = (l.data &^ 0x03E0) | ((n & 0x001F) << 5)
}

// incrementCoarseY steps fine-Y, carrying into coarseY and wrapping it
// at 29 (the last row of nametable tiles) with a nametable-Y toggle;
// rows 30-31 are attainable only by direct PPUADDR writes: row 30
// steps to 31 and row 31 wraps back to 0, neither toggling, per
// hardware.
func (l *loopy) incrementCoarseY() {
	if l.fineY() == 7 {
		l.setFineY(0)
		switch l.coarseY() {
		case 29:
			l.setCoarseY(0)
			l.toggleNametableY()
		case 31:
			l.setCoarseY(0)
		default:
			l.setCoarseY(l.coarseY() + 1)
		}
	} else {
		l.setFineY(l.fineY() + 1)
	}
}

func (l *loopy) nametableX() uint16 {
	return (l.data & 0x0400) >> 10
}

func (l *loopy) toggleNametableX() {
	l.data ^= 0x0400
}

func (l *loopy) nametableY() uint16 {
	return (l.data & 0x0800) >> 11
}

func (l *loopy) toggleNametableY() {
	l.data ^= 0x0800
}

func (l *loopy) fineY() uint16 {
	return (l.data & 0x7000) >> 12
}

func (l *loopy) setFineY(n uint16) {
	l.data = (l.data &^ 0x7000) | ((n & 0x0007) << 12)
}

// copyHorizontal pulls coarseX and nametableX from other into l,
// reproducing the PPU's cycle-257 reload of v from t.
func (l *loopy) copyHorizontal(other loopy) {
	l.data = (l.data &^ 0x041F) | (other.data & 0x041F)
}

// copyVertical pulls fineY, coarseY and nametableY from other into l,
// reproducing the pre-render-line cycle 280-304 reload of v from t.
func (l *loopy) copyVertical(other loopy) {
	l.data = (l.data &^ 0x7BE0) | (other.data & 0x7BE0)
}

// nametableAddr returns the address of the nametable byte the current
// v register points at.
func (l *loopy) nametableAddr() uint16 {
	return 0x2000 | (l.data & 0x0FFF)
}

// attributeAddr returns the address of the attribute byte covering
// the tile the current v register points at.
func (l *loopy) attributeAddr() uint16 {
	return 0x23C0 | (l.data & 0x0C00) | ((l.coarseY() >> 2) << 3) | (l.coarseX() >> 2)
}
