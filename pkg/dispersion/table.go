package dispersion

import (
	"bufio"
	"fmt"
	"io"

	"gonum.org/v1/gonum/floats"
)

// TableConfig controls the wavelength grid of a dispersion table
type TableConfig struct {
	MinWavelength float64 // Shortest wavelength in meters
	MaxWavelength float64 // Longest wavelength in meters
	Steps         int     // Number of intervals; the table has Steps+1 rows
}

// DefaultTableConfig returns the visible range in 100 steps
func DefaultTableConfig() TableConfig {
	return TableConfig{
		MinWavelength: 350e-9,
		MaxWavelength: 800e-9,
		Steps:         100,
	}
}

// Validate checks that the grid is well formed
func (c TableConfig) Validate() error {
	if c.Steps < 1 {
		return fmt.Errorf("steps must be at least 1, got: %d", c.Steps)
	}
	if !validWavelength(c.MinWavelength) || !validWavelength(c.MaxWavelength) {
		return fmt.Errorf("wavelength range [%g, %g] must be positive and finite", c.MinWavelength, c.MaxWavelength)
	}
	if c.MinWavelength >= c.MaxWavelength {
		return fmt.Errorf("min wavelength %g must be less than max wavelength %g", c.MinWavelength, c.MaxWavelength)
	}
	return nil
}

// Table holds indices of refraction sampled over a wavelength grid
type Table struct {
	Wavelengths []float64   // Sample wavelengths in meters
	Materials   []string    // Column names
	Indices     [][]float64 // Indices[m][i] is material m at Wavelengths[i]
}

// BuildTable samples every preset's dispersion function over the configured grid
func BuildTable(config TableConfig, materials []Preset) (*Table, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if len(materials) == 0 {
		return nil, fmt.Errorf("no materials to tabulate")
	}

	wavelengths := floats.Span(make([]float64, config.Steps+1), config.MinWavelength, config.MaxWavelength)

	table := &Table{
		Wavelengths: wavelengths,
		Materials:   make([]string, 0, len(materials)),
		Indices:     make([][]float64, 0, len(materials)),
	}

	for _, m := range materials {
		fn, err := m.Function()
		if err != nil {
			return nil, fmt.Errorf("failed to create dispersion function for %s: %w", m.Name, err)
		}

		column := make([]float64, len(wavelengths))
		for i, wl := range wavelengths {
			n, err := fn.IndexAt(wl)
			if err != nil {
				return nil, fmt.Errorf("failed to evaluate %s: %w", m.Name, err)
			}
			column[i] = n
		}

		table.Materials = append(table.Materials, m.Name)
		table.Indices = append(table.Indices, column)
	}

	return table, nil
}

// Range returns the smallest and largest index of material m over the grid
func (t *Table) Range(m int) (lo, hi float64) {
	return floats.Min(t.Indices[m]), floats.Max(t.Indices[m])
}

// WriteTo writes the table as tab-separated text with wavelengths in meters
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var written int64

	write := func(format string, args ...interface{}) error {
		n, err := fmt.Fprintf(bw, format, args...)
		written += int64(n)
		return err
	}

	if err := write("Wavelength"); err != nil {
		return written, err
	}
	for _, name := range t.Materials {
		if err := write("\t%s", name); err != nil {
			return written, err
		}
	}
	if err := write("\n"); err != nil {
		return written, err
	}

	for i, wl := range t.Wavelengths {
		if err := write("%g", wl); err != nil {
			return written, err
		}
		for m := range t.Materials {
			if err := write("\t%.6f", t.Indices[m][i]); err != nil {
				return written, err
			}
		}
		if err := write("\n"); err != nil {
			return written, err
		}
	}

	return written, bw.Flush()
}
