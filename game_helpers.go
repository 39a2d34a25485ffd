package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// outcome summarizes how a run ended
type outcome struct {
	Frames int
	State  model.State
	Reason string
}

// loadPresets reads the preset store from a JSON file holding "patterns"
// and "grids" objects
func loadPresets(filename string) (*model.Presets, error) {
	presets := &model.Presets{}

	data, err := os.ReadFile(filename)
	if err != nil {
		return presets, errors.Wrapf(err, "[loadPresets] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, presets); err != nil {
		return presets, errors.Wrapf(err, "[loadPresets] failed to unmarshal data from file: %+v", filename)
	}

	return presets, nil
}

// buildInitialGrid creates the starting board from the configured preset,
// or a random board when no preset is set
func buildInitialGrid(config utils.Config, presets *model.Presets) (*model.Grid, error) {
	if config.Preset != "" {
		return model.NewGridFromPreset(config.Preset, presets, config.Size)
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return model.NewRandomGrid(config.Size, model.NewRNG(seed))
}

// displayGameInfo shows the initial game information
func displayGameInfo(out io.Writer, config utils.Config, grid *model.Grid) {
	source := "random"
	if config.Preset != "" {
		source = "preset " + config.Preset
	}
	fmt.Fprintf(out, "Start: %s | Bounded: %v | Max frames: %d\n",
		source, config.UseBoundedGrid, config.MaxFrames)
	fmt.Fprintf(out, "Grid: %dx%d | Initial living cells: %d\n",
		grid.Size(), grid.Size(), grid.CountLivingCells())
	fmt.Fprintln(out, "Press Ctrl+C to exit gracefully")
	fmt.Fprintln(out)
}

// displayGameStatus shows the status line for a frame
func displayGameStatus(out io.Writer, frame int, grid *model.Grid, state model.State, stats *utils.Stats) {
	density := float64(grid.CountLivingCells()) / float64(grid.Size()*grid.Size()) * 100

	fmt.Fprintf(out, "Gen: %d | Living: %d | Density: %.1f%% | Status: %s | Bounding box: %d cells\n",
		frame, grid.CountLivingCells(), density, state, stats.BoundingBoxSize)
	fmt.Fprintf(out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds())
}

// renderFrame clears the screen if configured and prints the grid
func renderFrame(out io.Writer, renderer *model.TerminalRenderer, config utils.Config, grid *model.Grid) {
	if config.ClearScreen {
		if err := renderer.Clear(); err != nil {
			fmt.Fprintln(out, "Error clearing terminal:", err)
		}
	}
	if err := renderer.Display(grid); err != nil {
		fmt.Fprintln(out, "Error rendering frame:", err)
	}
}

// runSimulation steps sim until it goes extinct, gets stuck, runs out of
// frames, or ctx is cancelled
func runSimulation(
	ctx context.Context,
	sim *model.Simulation,
	config utils.Config,
	out io.Writer,
	stats *utils.Stats,
) outcome {
	var (
		renderer      = model.NewTerminalRenderer(out)
		lastFrameTime = time.Now()
	)

	for frame := range config.MaxFrames {
		select {
		case <-ctx.Done():
			fmt.Fprintln(out, "\n🛑 Shutting down gracefully...")
			return outcome{Frames: frame, State: sim.State(), Reason: "interrupted"}
		default:
			// Continue with game loop
		}

		frameStart := time.Now()
		if config.Render {
			renderFrame(out, renderer, config, sim.Current())
		}

		res := sim.Step()
		stats.Update(frame, res.Grid.CountLivingCells(), res.Grid.BoundingBoxSize(), time.Since(lastFrameTime))
		lastFrameTime = frameStart

		switch res.State {
		case model.Stable:
			fmt.Fprintf(out, "Stuck at frame %d\n", frame)
			return outcome{Frames: frame + 1, State: res.State, Reason: "stable"}
		case model.Extinct:
			fmt.Fprintf(out, "Died at frame %d\n", frame)
			return outcome{Frames: frame + 1, State: res.State, Reason: "extinct"}
		}

		if config.Render {
			displayGameStatus(out, frame, res.Grid, res.State, stats)
		} else {
			fmt.Fprintf(out, "Generating frame %d\n", frame)
		}

		if config.FrameRate > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(config.FrameRate):
			}
		}
	}

	fmt.Fprintf(out, "Maximum frames reached (%d)\n", config.MaxFrames)
	return outcome{Frames: config.MaxFrames, State: sim.State(), Reason: "max frames"}
}
