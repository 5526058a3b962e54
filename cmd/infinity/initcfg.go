package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Contomo/Infinity-Polyhedra/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config.yaml to start a new installation from",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("%s already exists", configPath)
		}
		if err := config.Save(configPath, config.Default()); err != nil {
			return err
		}
		fmt.Println("wrote", configPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
