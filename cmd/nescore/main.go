// Command nescore wires a Machine to a desktop window: it polls
// keyboard state into controller port 0 each tick (port 1 is never
// driven, so it always reads as no buttons pressed), advances
// one frame, and blits the result. It is the thin host collaborator
// the core needs to be runnable end to end; battery save persistence,
// audio and anything beyond blitting a frame are left to it, not the
// core.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/student/nescore/console"
	"github.com/student/nescore/nesrom"
	"github.com/student/nescore/trace"
)

var (
	romFile  = flag.String("nes_rom", "", "Path to NES ROM to run.")
	scale    = flag.Int("scale", 3, "Window scale factor.")
	traceOut = flag.String("trace", "", "Path to write a per-instruction trace line to, or empty to disable.")
	debug    = flag.Bool("debug", false, "Launch the interactive step debugger instead of the host window.")
)

func main() {
	flag.Parse()

	rom, err := nesrom.New(*romFile)
	if err != nil {
		log.Fatalf("invalid ROM: %v", err)
	}

	m, err := console.NewMachine(rom)
	if err != nil {
		log.Fatalf("couldn't build machine: %v", err)
	}
	m.Reset()

	if *debug {
		if _, err := tea.NewProgram(trace.NewDebugger(m)).Run(); err != nil {
			log.Fatalf("debugger exited with error: %v", err)
		}
		return
	}

	var traceFile *os.File
	if *traceOut != "" {
		f, err := os.Create(*traceOut)
		if err != nil {
			log.Fatalf("couldn't open trace file: %v", err)
		}
		defer f.Close()
		traceFile = f
	}

	g := &game{machine: m, traceOut: traceFile}

	w, h := m.PPU().Resolution()
	ebiten.SetWindowSize(w*(*scale), h*(*scale))
	ebiten.SetWindowTitle(fmt.Sprintf("nescore - %s", filepath.Base(*romFile)))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// keymap assigns a default, non-configurable layout: arrow keys for
// the d-pad, Z/X for A/B, Enter for Start and Backspace for Select.
var keymap = []struct {
	key    ebiten.Key
	button uint8
}{
	{ebiten.KeyZ, console.ButtonA},
	{ebiten.KeyX, console.ButtonB},
	{ebiten.KeyBackspace, console.ButtonSelect},
	{ebiten.KeyEnter, console.ButtonStart},
	{ebiten.KeyUp, console.ButtonUp},
	{ebiten.KeyDown, console.ButtonDown},
	{ebiten.KeyLeft, console.ButtonLeft},
	{ebiten.KeyRight, console.ButtonRight},
}

// game adapts a Machine to ebiten.Game. Layout returns the NES's
// fixed resolution unconditionally so ebiten does the window scaling.
type game struct {
	machine  *console.Machine
	traceOut *os.File
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.machine.PPU().Resolution()
}

func (g *game) Update() error {
	var mask uint8
	for _, k := range keymap {
		if ebiten.IsKeyPressed(k.key) {
			mask |= k.button
		}
	}
	g.machine.SetButtons(0, mask)

	if g.traceOut == nil {
		g.machine.AdvanceFrame()
		return nil
	}

	for {
		line := trace.Line(g.machine.CPU())
		_, done := g.machine.Step()
		fmt.Fprintln(g.traceOut, line)
		if done {
			return nil
		}
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.WritePixels(g.machine.PPU().Frame().Pix)
}
