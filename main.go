package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	var (
		configPath = flag.String("config", "config.json", "path to the JSON config file")
		preset     = flag.String("preset", "", "preset name; empty starts from a random board")
		size       = flag.Int("size", 0, "board side length")
		maxFrames  = flag.Int("frames", 0, "maximum number of frames")
		seed       = flag.Int64("seed", 0, "random seed; 0 picks one from the clock")
		list       = flag.Bool("list", false, "list preset names and exit")
	)
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		fmt.Printf("Using default configuration (%s not found)\n", *configPath)
		config = utils.DefaultConfig()
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "preset":
			config.Preset = *preset
		case "size":
			config.Size = *size
		case "frames":
			config.MaxFrames = *maxFrames
		case "seed":
			config.Seed = *seed
		}
	})
	if err = config.Validate(); err != nil {
		fatal(err)
	}

	presets, err := loadPresets(config.PresetsFile)
	if err != nil && (config.Preset != "" || *list) {
		fatal(err)
	}
	if *list {
		for _, name := range presets.Names() {
			fmt.Println(name)
		}
		return
	}

	grid, err := buildInitialGrid(config, presets)
	if err != nil {
		fatal(err)
	}
	sim, err := model.NewSimulation(grid, config)
	if err != nil {
		fatal(err)
	}

	displayGameInfo(os.Stdout, config, grid)

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stats := utils.NewStats()
	result := runSimulation(ctx, sim, config, os.Stdout, stats)

	fmt.Printf("Final stats: %d frames (%s) in %.1f seconds\n",
		result.Frames, result.Reason, stats.Runtime().Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}
