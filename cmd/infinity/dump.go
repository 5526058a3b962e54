package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Contomo/Infinity-Polyhedra/internal/diag"
	"github.com/Contomo/Infinity-Polyhedra/internal/mapping"
)

var wireOnly bool

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the configured solid's topology for the desktop viewer",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		p, err := buildSolid(cfg)
		if err != nil {
			return err
		}
		if wireOnly {
			return diag.DumpWireframe(os.Stdout, p, cfg.Solid.Kind)
		}
		return diag.DumpModel(os.Stdout, p, cfg.Solid.Kind)
	},
}

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Print the LED wiring table for the configured solid",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		p, err := buildSolid(cfg)
		if err != nil {
			return err
		}
		m, err := mapping.New(p, mapping.Options{
			LedsLongestEdge: cfg.Mapping.LedsLongestEdge,
			EdgeMap:         cfg.Mapping.EdgeMap,
			FlipMap:         cfg.Mapping.FlipMap,
		})
		if err != nil {
			return err
		}
		return diag.DumpMapping(os.Stdout, m)
	},
}

func init() {
	dumpCmd.Flags().BoolVar(&wireOnly, "wire", false, "vertices and edges only")
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(mapCmd)
}
