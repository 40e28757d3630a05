package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruitbox/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would start with, as YAML.

Search order:
  --config <file>
  ~/.fruitbox/configs/fruitbox.yaml
  ./configs/fruitbox.yaml
  built-in defaults

The output is a complete config file: save it to one of the paths above
and edit what you need.

--defaults prints the built-in file instead, with its comments.

Examples:
  fruitbox config
  fruitbox config --defaults
  fruitbox config --difficulty easy > ~/.fruitbox/configs/fruitbox.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default config")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

// loadGameConfig loads the config file and applies --difficulty.
func loadGameConfig() (config.FruitBoxConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.FruitBoxConfig{}, err
	}
	cfg, err := config.LoadFruitBox(flagConfig)
	if err != nil {
		return config.FruitBoxConfig{}, err
	}
	config.ApplyFruitBoxPreset(&cfg, preset)
	return cfg, nil
}
