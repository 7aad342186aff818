package console

import (
	"testing"

	"github.com/student/nescore/mappers"
	"github.com/student/nescore/mos6502"
)

func TestPPUBusDelegatesChrToMapper(t *testing.T) {
	b := &ppuBus{mapper: mappers.Dummy}

	b.ChrWrite(0x10, 0x5A)
	if got := b.ChrRead(0x10); got != 0x5A {
		t.Errorf("ChrRead(0x10) = %#02x, want 0x5A", got)
	}
}

func TestPPUBusTriggerNMISignalsCPU(t *testing.T) {
	cb := newTestCPUBus()
	b := &ppuBus{mapper: mappers.Dummy, cpu: cb.cpu}

	b.TriggerNMI()

	// NMI is serviced on the next Step regardless of the
	// interrupt-disable flag, which distinguishes it from IRQ.
	cb.cpu.Status |= mos6502.StatusInterruptDisable
	if got := cb.cpu.Step(); got != 7 {
		t.Errorf("cycles for a serviced NMI = %d, want 7", got)
	}
}
