package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	chip8 "github.com/beanboi7/chyp8"
	"github.com/beanboi7/chyp8/internal/display/window"
)

var startCmd = &cobra.Command{
	Use:   "start `path/ROM`",
	Short: "load and start the Emulator",
	Args:  cobra.ExactArgs(1),
	Run:   Start,
}

var (
	refreshRate int
	clockSpeed  int
	traceSteps  bool
)

// chyp8 start 'path/to/ROM' -r 60 --clock 500
func Start(cmd *cobra.Command, args []string) {
	romPath := args[0]

	vm := chip8.New()
	if err := vm.LoadROM(romPath); err != nil {
		fmt.Printf("error starting the emulator: %v\n", err)
		os.Exit(1)
	}

	if traceSteps {
		vm.SetTracer(func(pc uint16, opcode uint16) {
			fmt.Fprintf(os.Stderr, "pc=%#04x opcode=%#04x\n", pc, opcode)
		})
	}

	win, err := window.New("Chyp8")
	if err != nil {
		fmt.Printf("error opening the display window: %v\n", err)
		os.Exit(1)
	}

	if err := win.PlayBeep(viper.GetString("beep_asset")); err != nil {
		fmt.Fprintf(os.Stderr, "warning: sound disabled: %v\n", err)
	}

	run(vm, win, clockSpeed, refreshRate)
}

// run drives the host loop: pump input, step the VM at clockHz, and
// render/poll audio at refreshHz. This loop, the window, and the input
// pump are deliberately outside the CHIP-8 core (see chip8.VM's doc
// comment) — they are the host collaborators the spec assigns to the
// surrounding program.
func run(vm *chip8.VM, win *window.Window, clockHz, refreshHz int) {
	if clockHz <= 0 {
		clockHz = 500
	}
	if refreshHz <= 0 {
		refreshHz = 60
	}

	cycle := time.Second / time.Duration(clockHz)
	frame := time.Second / time.Duration(refreshHz)

	ticker := time.NewTicker(cycle)
	defer ticker.Stop()
	frameTicker := time.NewTicker(frame)
	defer frameTicker.Stop()

	start := time.Now()
	for {
		select {
		case <-ticker.C:
			win.PumpKeys(vm.Keys())
			if vm.Keys().QuitRequested() {
				win.StopBeep()
				return
			}
			vm.Step(time.Since(start).Milliseconds())
		case <-frameTicker.C:
			win.Render(vm.Framebuffer())
			if vm.SoundTimer() == 0 {
				win.StopBeep()
			}
		}
	}
}

func init() {
	startCmd.Flags().IntVarP(&refreshRate, "refresh", "r", 60, "sets the refresh rate of the display, in Hz")
	startCmd.Flags().IntVarP(&clockSpeed, "clock", "c", 500, "sets the CPU clock speed, in instructions/sec")
	startCmd.Flags().BoolVarP(&traceSteps, "trace", "t", false, "trace each fetched opcode to stderr")
}
