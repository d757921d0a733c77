package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/gridsnap/internal/config"
)

var flagDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective grid configuration",
	Long: `Print the grid configuration 'gridsnap snap' would use, as YAML.

Config search order:
  --config <path>
  ~/.gridsnap/grid.yaml
  ./configs/grid.yaml
  built-in default

Examples:
  gridsnap config
  gridsnap config --preset iso-32x16 --prefer box-end
  gridsnap config --default > ~/.gridsnap/grid.yaml`,
	RunE: runConfig,
}

func init() {
	addGridFlags(configCmd)
	configCmd.Flags().BoolVar(&flagDefault, "default", false, "Print the built-in default config file")
}

func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if flagDefault {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	_, err = out.Write(data)
	return err
}
