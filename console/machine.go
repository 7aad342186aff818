// Package console wires together the CPU, PPU, cartridge mapper and
// controller ports into a single steppable machine.
package console

import (
	"fmt"

	"github.com/student/nescore/mappers"
	"github.com/student/nescore/mos6502"
	"github.com/student/nescore/nesrom"
	"github.com/student/nescore/ppu"
)

// cyclesPerPPUCycle is the ratio between CPU and PPU clocks: the PPU
// runs three times as fast as the CPU.
const cyclesPerPPUCycle = 3

// Machine drives one CPU step at a time, fans the elapsed CPU cycles
// out to the PPU at its native rate, and propagates NMI and IRQ back
// to the CPU, until the PPU reports a completed frame.
type Machine struct {
	cpu *mos6502.CPU
	ppu *ppu.PPU

	mapper mappers.Mapper
	cBus   *cpuBus
	pBus   *ppuBus

	controllers [2]*controller

	cycles       uint64
	prevScanline int
}

// NewMachine builds a Machine from an already-loaded ROM, resolving
// its mapper from the registry and wiring CPU, PPU and mapper
// together. It does not call Reset; callers must do that before the
// first AdvanceFrame.
func NewMachine(rom *nesrom.ROM) (*Machine, error) {
	m, err := mappers.Get(rom)
	if err != nil {
		return nil, fmt.Errorf("couldn't resolve mapper: %w", err)
	}

	mach := &Machine{mapper: m}

	mach.pBus = &ppuBus{mapper: m}
	p := ppu.New(mach.pBus)
	p.SetMirrorMode(m.MirroringMode())
	mach.ppu = p

	mach.controllers[0] = &controller{}
	mach.controllers[1] = &controller{}

	mach.cBus = &cpuBus{
		ppu:         p,
		mapper:      m,
		controllers: mach.controllers,
		cycles:      &mach.cycles,
	}
	mach.cpu = mos6502.New(mach.cBus)
	mach.cBus.cpu = mach.cpu
	mach.pBus.cpu = mach.cpu
	mach.prevScanline = p.Scanline()

	return mach, nil
}

// Reset reloads PC from the reset vector and clears pending interrupt
// latches. It should be called once before the first AdvanceFrame.
func (m *Machine) Reset() {
	m.cycles += uint64(m.cpu.Reset())
}

// SetButtons latches the host's most recent button-state snapshot for
// controller 0 or 1 (player is 0-indexed) ahead of the next frame.
func (m *Machine) SetButtons(player int, mask uint8) {
	m.controllers[player].SetButtons(mask)
}

// PPU exposes the rendering pipeline read-only, for the host to pull
// the completed framebuffer from after AdvanceFrame returns.
func (m *Machine) PPU() *ppu.PPU {
	return m.ppu
}

// CPU exposes the processor core, for trace tooling and tests that
// need to inspect registers between steps.
func (m *Machine) CPU() *mos6502.CPU {
	return m.cpu
}

// Cycles returns the total CPU cycle count since the Machine was
// built. Reset adds its own cost to the count rather than zeroing it.
func (m *Machine) Cycles() uint64 {
	return m.cycles
}

// Step executes a single CPU instruction (or latched interrupt),
// advances the PPU the matching number of dot-cycles, and notifies
// the mapper of any scanline it crossed along the way. It reports
// whether this step completed a frame, for callers that want to
// single-step rather than call AdvanceFrame. It panics on decode
// failure, the same fatal condition AdvanceFrame treats as fatal.
func (m *Machine) Step() (cycles int, frameDone bool) {
	cycles = m.cpu.Step()
	if cycles == mos6502.FaultCycles {
		panic(fmt.Sprintf("decode failure at PC %#04x", m.cpu.PC))
	}
	m.cycles += uint64(cycles)

	frameDone = m.ppu.Tick(cycles * cyclesPerPPUCycle)

	if sl := m.ppu.Scanline(); sl != m.prevScanline {
		crossed := (sl - m.prevScanline + ppu.SCANLINES_PER_FRAME) % ppu.SCANLINES_PER_FRAME
		for i := 0; i < crossed; i++ {
			if m.mapper.EndScanline() {
				m.cpu.IRQ()
			}
		}
		m.prevScanline = sl
	}
	return cycles, frameDone
}

// AdvanceFrame steps the CPU and PPU until a full frame has been
// rendered, propagating NMI/IRQ between CPU steps.
func (m *Machine) AdvanceFrame() {
	for {
		if _, done := m.Step(); done {
			return
		}
	}
}
