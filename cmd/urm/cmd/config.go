package cmd

import (
	"github.com/spf13/cobra"
)

var configSave bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Prints the configuration as TOML, after the defaults and the
configuration file are applied.

Examples:
  urm config                 # print the configuration
  urm config --save          # write it to the --config file`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.Flags().BoolVar(&configSave, "save", false, "write the configuration to the --config file")
}

func runConfig(cmd *cobra.Command, args []string) (err error) {
	cfg, err := loadConfig()
	if err != nil {
		return
	}

	if configSave {
		return cfg.Save(cfgFile)
	}

	return cfg.Encode(cmd.OutOrStdout())
}
