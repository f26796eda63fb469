// Command arm64emu is the emulator's CLI entry point, trimmed from the
// teacher's main.go down to this core's scope (SPEC_FULL §3): load a
// word-stream program, run it (optionally stepping through a TUI
// inspector), and print the final register/flags state. The teacher's
// HTTP API server, symbol dumps, coverage/stack/flag/register tracing,
// and debugger command-line mode have no equivalent here — there is no
// assembler, symbol table, or multi-process API boundary in this
// core's scope (spec.md §1 Non-goals).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/arm64emu/arm64-emulator/config"
	"github.com/arm64emu/arm64-emulator/devices"
	"github.com/arm64emu/arm64-emulator/loader"
	"github.com/arm64emu/arm64-emulator/tui"
	"github.com/arm64emu/arm64-emulator/vm"
)

// Version information, overridden at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

func main() {
	var (
		showVersion     = flag.Bool("version", false, "Show version information")
		configPath      = flag.String("config", "", "Path to a TOML config file")
		programPath     = flag.String("load", "", "Path to a binary program (little-endian 32-bit words)")
		memorySize      = flag.Uint64("memory-size", 0, "Memory size in bytes (0 = config/default)")
		maxInstructions = flag.Uint64("max-instructions", 0, "Maximum instructions before halt (0 = config/default)")
		entryAddress    = flag.Uint64("entry", 0, "Entry address to load the program at and set PC to (0 = config/default)")
		enableTrace     = flag.Bool("trace", false, "Record an execution trace")
		tuiMode         = flag.Bool("tui", false, "Start the stepping TUI inspector instead of running to completion")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("arm64emu %s (commit %s, built %s)\n", Version, Commit, Date)
		os.Exit(0)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "arm64emu: %v\n", err)
		os.Exit(1)
	}

	if *memorySize != 0 {
		cfg.Execution.MemorySizeBytes = *memorySize
	}
	if *maxInstructions != 0 {
		cfg.Execution.MaxInstructions = *maxInstructions
	}
	if *entryAddress != 0 {
		cfg.Execution.EntryAddress = *entryAddress
	}

	engine := vm.NewEngine(cfg.Execution.MemorySizeBytes)
	engine.MaxInstructions = cfg.Execution.MaxInstructions

	if *enableTrace || cfg.Trace.Enabled {
		capacity := cfg.Trace.Capacity
		if capacity <= 0 {
			capacity = vm.DefaultTraceCapacity
		}
		engine.Trace = vm.NewExecutionTrace(capacity)
	}

	console := devices.NewConsole(os.Stdout)
	engine.Bus.RegisterDevice(cfg.Execution.MemorySizeBytes, console)

	if *programPath != "" {
		if err := loader.LoadFile(engine, *programPath, cfg.Execution.EntryAddress); err != nil {
			fmt.Fprintf(os.Stderr, "arm64emu: %v\n", err)
			os.Exit(1)
		}
	}

	if *tuiMode {
		inspector := tui.NewInspector(engine)
		if err := inspector.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "arm64emu: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := engine.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "arm64emu: %v\n", err)
	}
	fmt.Println(engine.DumpState())
}
