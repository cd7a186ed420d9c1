package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/Code-Hex/dd"
	"github.com/faiface/pixel/pixelgl"
	"github.com/n-ulricksen/emu6502/emu"
	"github.com/n-ulricksen/emu6502/frontend"
	"github.com/n-ulricksen/emu6502/loader"
	"github.com/n-ulricksen/emu6502/terminal"
)

// Command line flags
var (
	flagHeadless bool
	flagHex      bool
	flagTrace    bool
	flagDebug    bool
	flagDump     bool
	flagIPF      int
	flagFPS      float64
	flagMax      uint64
)

func main() {
	parseFlags()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] program\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	path := flag.Arg(0)

	program, err := loader.LoadFile(path, flagHex)
	if err != nil {
		log.Fatal(err)
	}

	cfg := emu.DefaultConfig()
	cfg.MaxInstructions = flagMax
	if flagTrace {
		f, err := openTraceLog()
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		cfg.Trace = f
	}

	log.Printf("Loading %s (%d bytes) at $%04X", path, len(program), emu.ProgramStart)
	emulator := emu.NewEmulator(cfg)
	if err := emulator.LoadProgram(program); err != nil {
		log.Fatal(err)
	}

	if flagHeadless {
		err = runHeadless(emulator)
	} else {
		opts := frontend.DefaultOptions()
		opts.Debug = flagDebug
		opts.InstructionsPerFrame = flagIPF
		opts.FPS = flagFPS

		pixelgl.Run(func() {
			err = frontend.Run(emulator, opts)
		})
	}

	if flagDump {
		fmt.Println(dd.Dump(emulator.Cpu.Registers()))
	}
	if err != nil {
		log.Fatal(err)
	}
}

func parseFlags() {
	defaults := frontend.DefaultOptions()

	flag.BoolVar(&flagHeadless, "headless", false, "run without a window and print the final frame")
	flag.BoolVar(&flagHex, "hex", false, "program file is a hex listing")
	flag.BoolVar(&flagTrace, "trace", false, "write an instruction trace to ./logs")
	flag.BoolVar(&flagDebug, "d", false, "enable debug panel")
	flag.BoolVar(&flagDump, "dump", false, "dump the final registers")
	flag.IntVar(&flagIPF, "ipf", defaults.InstructionsPerFrame, "instructions per frame")
	flag.Float64Var(&flagFPS, "fps", defaults.FPS, "frames per second")
	flag.Uint64Var(&flagMax, "max", 0, "stop after this many instructions (0 for no limit)")

	flag.Parse()

	if flagIPF < 1 {
		flagIPF = 1
	}
	if flagFPS <= 0 {
		flagFPS = defaults.FPS
	}
}

// runHeadless runs the program to completion and prints the video frame.
func runHeadless(e *emu.Emulator) error {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	random := func() byte { return byte(rng.Intn(256)) }

	start := time.Now()
	for !e.Halted() {
		if _, err := e.RunFrame(flagIPF, random); err != nil {
			return err
		}
	}
	log.Printf("Program halted after %d instructions, took %s", e.Cpu.InstructionCount(), time.Since(start))

	if err := terminal.New(os.Stdout).Draw(e.Video.Frame()); err != nil {
		return err
	}
	fmt.Println(e.Cpu.Registers())

	return nil
}

// openTraceLog creates a timestamped trace file under ./logs.
func openTraceLog() (io.WriteCloser, error) {
	if err := os.MkdirAll("./logs", 0755); err != nil {
		return nil, err
	}

	now := time.Now()
	logFile := fmt.Sprintf("./logs/cpu%s.log", now.Format("20060102-150405"))

	f, err := os.OpenFile(logFile, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, err
	}
	log.Printf("Writing instruction trace to %s", logFile)

	return f, nil
}
