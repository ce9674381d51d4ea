// Package cmd implements the urm command line.
package cmd

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/ezrec/urm/config"
	"github.com/ezrec/urm/library"
	"github.com/ezrec/urm/program"
	"github.com/ezrec/urm/translate"
)

var f = translate.From

// errReported marks a diagnostic already printed to the console.
var errReported = errors.New("reported")

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "urm",
	Short: "Unlimited Register Machine interpreter",
	Long: `urm runs programs for the Unlimited Register Machine.

Programs are .urm files holding the instructions z(n), s(n), t(m,n),
j(m,n,q) and an optional initial configuration p(r1,r2,...).

Examples:
  urm                        # choose a program from the program directory
  urm run suma.urm           # run a single file
  urm run --init "3, 4" --trace suma.urm
  urm list                   # list the program directory`,
	Args:          cobra.NoArgs,
	RunE:          runRun,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() (err error) {
	err = rootCmd.Execute()
	if err != nil && !errors.Is(err, errReported) {
		log.Print(err)
	}

	return
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DEFAULT_FILE, "configuration file")
	addRunFlags(rootCmd)
}

// loadConfig reads the configuration file named by --config.
func loadConfig() (cfg *config.Config, err error) {
	return config.Load(cfgFile)
}

// report prints a diagnostic to the console. Other errors are returned
// unchanged.
func report(cmd *cobra.Command, err error) error {
	var none *library.ErrNoPrograms
	if err == nil || !(program.IsDiagnostic(err) || errors.As(err, &none)) {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), err)

	return errReported
}
