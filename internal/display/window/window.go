// Package window is the host display and audio backend: it opens a
// pixelgl window, blits the VM's 64x32 framebuffer into it scaled to the
// window size, translates pixelgl key events into the core's keyboard
// latch, and plays a beep sample for as long as the VM's sound timer is
// nonzero. None of this is part of the CHIP-8 core — it is the host
// collaborator the core's VM façade is driven from.
package window

import (
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"

	"github.com/beanboi7/chyp8/internal/display"
	"github.com/beanboi7/chyp8/internal/keyboard"
)

// Scale is the number of host pixels per CHIP-8 pixel.
const Scale = 10

// keyMap translates pixelgl buttons to CHIP-8 key codes, using the
// conventional COSMAC VIP layout remapped onto a QWERTY keypad:
//
//	1 2 3 C        1 2 3 4
//	4 5 6 D   ->   Q W E R
//	7 8 9 E        A S D F
//	A 0 B F        Z X C V
var keyMap = map[pixelgl.Button]uint8{
	pixelgl.Key1: 0x1, pixelgl.Key2: 0x2, pixelgl.Key3: 0x3, pixelgl.Key4: 0xC,
	pixelgl.KeyQ: 0x4, pixelgl.KeyW: 0x5, pixelgl.KeyE: 0x6, pixelgl.KeyR: 0xD,
	pixelgl.KeyA: 0x7, pixelgl.KeyS: 0x8, pixelgl.KeyD: 0x9, pixelgl.KeyF: 0xE,
	pixelgl.KeyZ: 0xA, pixelgl.KeyX: 0x0, pixelgl.KeyC: 0xB, pixelgl.KeyV: 0xF,
}

// Window owns the pixelgl window and the audio stream used to drive a
// VM's display and sound timer.
type Window struct {
	*pixelgl.Window
	imd    *imdraw.IMDraw
	beeper beep.Streamer
}

// New opens a window sized for the CHIP-8 64x32 display at Scale pixels
// per cell.
func New(title string) (*Window, error) {
	cfg := pixelgl.WindowConfig{
		Title:  title,
		Bounds: pixel.R(0, 0, display.Width*Scale, display.Height*Scale),
		VSync:  true,
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return nil, fmt.Errorf("window: open: %w", err)
	}
	return &Window{Window: win, imd: imdraw.New(nil)}, nil
}

// Render blits fb into the window, lit pixels drawn white on a black
// field, each CHIP-8 pixel scaled to a Scale x Scale block.
func (w *Window) Render(fb *display.Framebuffer) {
	w.Window.Clear(color.Black)
	w.imd.Clear()
	w.imd.Color = color.White
	for y := 0; y < display.Height; y++ {
		for x := 0; x < display.Width; x++ {
			if !fb.At(x, y) {
				continue
			}
			w.drawCell(x, y)
		}
	}
	w.imd.Draw(w.Window)
	w.Window.Update()
}

// drawCell queues one lit CHIP-8 pixel as a Scale x Scale rectangle.
// Window space has Y increasing upward; the framebuffer has row 0 at the
// top, so the row is flipped when placing the cell.
func (w *Window) drawCell(x, y int) {
	flippedY := display.Height - 1 - y
	lo := pixel.V(float64(x*Scale), float64(flippedY*Scale))
	hi := lo.Add(pixel.V(Scale, Scale))
	w.imd.Push(lo, hi)
	w.imd.Rectangle(0)
}

// PumpKeys reads the window's pressed-key state into latch. Called by the
// host loop before each VM step.
func (w *Window) PumpKeys(latch *keyboard.Latch) {
	for button, key := range keyMap {
		latch.Set(key, w.Window.Pressed(button))
	}
	if w.Window.Closed() {
		latch.RequestQuit()
	}
}

// PlayBeep starts looping a beep sample read from assetPath. Call
// StopBeep to silence it. Mirrors the teacher's ManageAudio/soundTimer
// split: the core only counts ST, the host produces the sound.
func (w *Window) PlayBeep(assetPath string) error {
	f, err := os.Open(assetPath)
	if err != nil {
		return fmt.Errorf("window: open beep asset: %w", err)
	}

	streamer, format, err := mp3.Decode(f)
	if err != nil {
		return fmt.Errorf("window: decode beep asset: %w", err)
	}

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("window: init speaker: %w", err)
	}

	loop := beep.Loop(-1, streamer)
	w.beeper = loop
	speaker.Play(loop)
	return nil
}

// StopBeep silences any beep started by PlayBeep.
func (w *Window) StopBeep() {
	if w.beeper == nil {
		return
	}
	speaker.Clear()
	w.beeper = nil
}
