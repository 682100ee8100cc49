package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/frog-chase/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a round would be played with, after the
--config file and --difficulty preset are applied. Redirect it to a
file to start a custom level:

  frogchase config --defaults > ~/.frogchase/configs/frogchase.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		os.Stdout.Write(config.GetDefaultYAML())
		return
	}

	cfg, err := loadGameConfig()
	if err != nil {
		fatal("loading config", err)
	}
	out, err := config.Marshal(cfg)
	if err != nil {
		fatal("encoding config", err)
	}
	os.Stdout.Write(out)
}
