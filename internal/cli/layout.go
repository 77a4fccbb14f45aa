package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/piposter/piposter/pkg/poster/encode"
	"github.com/piposter/piposter/pkg/poster/grid"
)

// layoutStats summarizes the computed grid for inspection.
type layoutStats struct {
	PageWidthPx     int `json:"page_width_px"`
	PageHeightPx    int `json:"page_height_px"`
	Cols            int `json:"cols"`
	Rows            int `json:"rows"`
	UniformCells    int `json:"uniform_cells"`
	PerspectiveRows int `json:"perspective_rows"`
	TotalCells      int `json:"total_cells"`
}

// layoutCommand creates the layout command for inspecting grid geometry.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		configPath string
		asJSON     bool
		dumpCells  bool
	)

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Inspect the poster grid geometry",
		Long: `Inspect the poster grid geometry without rendering.

The layout command builds the cell grid from the page configuration and
reports how many cells (and therefore pi digits) the poster needs,
including the rows added by the perspective zone.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			page := cfg.Page
			cells, err := grid.Build(page.MarginXPx(), page.MarginYPx(),
				page.InnerWidthPx(), page.InnerHeightPx(), cfg.Grid.Params())
			if err != nil {
				return err
			}

			if dumpCells {
				return dumpCellJSON(cells)
			}

			params := cfg.Grid.Params()
			uniform := params.NormalRows() * params.Cols
			lastRow := cells[len(cells)-1].Row
			stats := layoutStats{
				PageWidthPx:     page.WidthPx(),
				PageHeightPx:    page.HeightPx(),
				Cols:            params.Cols,
				Rows:            params.Rows,
				UniformCells:    uniform,
				PerspectiveRows: lastRow - params.NormalRows() + 1,
				TotalCells:      len(cells),
			}

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(stats)
			}

			printKeyValue("page", fmt.Sprintf("%d x %d px", stats.PageWidthPx, stats.PageHeightPx))
			printKeyValue("grid", fmt.Sprintf("%d cols x %d rows", stats.Cols, stats.Rows))
			printKeyValue("uniform", fmt.Sprintf("%d cells", stats.UniformCells))
			printKeyValue("perspective", fmt.Sprintf("%d rows", stats.PerspectiveRows))
			printKeyValue("digits needed", fmt.Sprintf("%d", stats.TotalCells))
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "TOML config file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print stats as JSON")
	cmd.Flags().BoolVar(&dumpCells, "cells", false, "dump every cell with its visual encoding as JSON")

	return cmd
}

// cellDump is one cell plus its visual encoding, for --cells output.
type cellDump struct {
	Index       int     `json:"index"`
	Row         int     `json:"row"`
	Col         int     `json:"col"`
	CX          float64 `json:"cx"`
	CY          float64 `json:"cy"`
	Base        float64 `json:"base"`
	Color       string  `json:"color"`
	Shape       string  `json:"shape"`
	Orientation int     `json:"orientation"`
	Size        float64 `json:"size_fraction"`
	Feynman     bool    `json:"feynman,omitempty"`
}

// dumpCellJSON writes the cell/encoding table to stdout. Digits are not
// bound here, so encodings use digit 0; positions and orientations are
// exact.
func dumpCellJSON(cells []grid.Cell) error {
	dump := make([]cellDump, len(cells))
	for i, c := range cells {
		enc := encode.Encode(c.Digit, c.Index)
		dump[i] = cellDump{
			Index:       c.Index,
			Row:         c.Row,
			Col:         c.Col,
			CX:          c.CX,
			CY:          c.CY,
			Base:        c.Base,
			Color:       enc.Color.String(),
			Shape:       enc.Shape.String(),
			Orientation: enc.Orientation,
			Size:        enc.SizeFraction,
			Feynman:     enc.Feynman,
		}
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(dump)
}
