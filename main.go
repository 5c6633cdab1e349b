package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/sancharinfotech/bending-light/pkg/dispersion"
)

func main() {
	// Parse command line flags
	materials := flag.String("materials", "", "Comma-separated materials (default: all presets)")
	minNm := flag.Float64("min", 350, "Shortest wavelength in nanometers")
	maxNm := flag.Float64("max", 800, "Longest wavelength in nanometers")
	steps := flag.Int("steps", 100, "Number of wavelength intervals")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Bending Light dispersion table")
		fmt.Println("Usage: bending-light [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available materials:")
		for _, p := range dispersion.Presets() {
			fmt.Printf("  %-8s n = %v at 650 nm\n", strings.ToLower(p.Name), p.ReferenceIndex)
		}
		return
	}

	presets, err := parseMaterials(*materials)
	if err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}

	if err := run(presets, createTableConfig(*minNm, *maxNm, *steps), os.Stdout); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

// parseMaterials resolves a comma-separated list of preset names; empty means all
func parseMaterials(list string) ([]dispersion.Preset, error) {
	if strings.TrimSpace(list) == "" {
		return dispersion.Presets(), nil
	}

	var presets []dispersion.Preset
	for _, name := range strings.Split(list, ",") {
		p, ok := dispersion.LookupPreset(name)
		if !ok {
			return nil, fmt.Errorf("unknown material: %q", strings.TrimSpace(name))
		}
		presets = append(presets, p)
	}
	return presets, nil
}

// createTableConfig converts nanometer flags into a table config
func createTableConfig(minNm, maxNm float64, steps int) dispersion.TableConfig {
	return dispersion.TableConfig{
		MinWavelength: minNm * 1e-9,
		MaxWavelength: maxNm * 1e-9,
		Steps:         steps,
	}
}

// run prints each material's index at red followed by the dispersion table
func run(presets []dispersion.Preset, config dispersion.TableConfig, w io.Writer) error {
	for _, p := range presets {
		fn, err := p.Function()
		if err != nil {
			return fmt.Errorf("failed to create dispersion function for %s: %w", p.Name, err)
		}
		red, err := fn.IndexAtRed()
		if err != nil {
			return fmt.Errorf("failed to evaluate %s at red: %w", p.Name, err)
		}
		fmt.Fprintf(w, "%s -> %.6f (weight %.6f)\n", p.Name, red, fn.Weight())
	}
	fmt.Fprintln(w)

	table, err := dispersion.BuildTable(config, presets)
	if err != nil {
		return fmt.Errorf("failed to build dispersion table: %w", err)
	}
	if _, err := table.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write dispersion table: %w", err)
	}
	return nil
}
