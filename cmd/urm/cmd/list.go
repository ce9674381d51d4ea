package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the programs of the program directory",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) (err error) {
	cfg, err := loadConfig()
	if err != nil {
		return
	}

	lib, err := openLibrary(cfg)
	if err != nil {
		return
	}

	err = lib.Check()
	if err != nil {
		return report(cmd, err)
	}

	out := cmd.OutOrStdout()
	for number, name := range lib.All() {
		fmt.Fprintf(out, "  %d) %v\n", number, name)
	}

	return
}
