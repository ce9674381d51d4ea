package cmd

import (
	"bufio"
	"os"

	"github.com/spf13/cobra"

	"github.com/ezrec/urm/config"
	"github.com/ezrec/urm/library"
	"github.com/ezrec/urm/program"
)

var (
	runMaxIterations int
	runTrace         bool
	runDebug         bool
	runInit          string
	runFileConfig    bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a program",
	Long: `Runs a URM program and prints the value of register 1.

Without a file the program is chosen from the program directory,
<search_in>/<programs>.

Examples:
  urm run                              # choose from the program directory
  urm run suma.urm                     # run a file
  urm run --init "1 << 70, 2" suma.urm # override the initial configuration
  urm run --max-iterations 1000 loop.urm`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	addRunFlags(runCmd)
}

// addRunFlags registers the flags that override the configuration file.
func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&runMaxIterations, "max-iterations", -1, "iteration limit, negative for none")
	cmd.Flags().BoolVar(&runTrace, "trace", false, "print the registers after every step")
	cmd.Flags().BoolVar(&runDebug, "debug", false, "verbose logging")
	cmd.Flags().StringVar(&runInit, "init", "", "initial configuration, e.g. \"1, 3, 5\"")
	cmd.Flags().BoolVar(&runFileConfig, "file-config", true, "use the p(...) of the file when present")
}

// applyRunFlags overrides the configuration with the flags that were set.
func applyRunFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	if flags.Changed("max-iterations") {
		cfg.MaxIterations = runMaxIterations
	}
	if flags.Changed("trace") {
		cfg.PrintProcess = runTrace
	}
	if flags.Changed("debug") {
		cfg.Debug = runDebug
	}
	if flags.Changed("file-config") {
		cfg.UseFileConfig = runFileConfig
	}
}

func runRun(cmd *cobra.Command, args []string) (err error) {
	cfg, err := loadConfig()
	if err != nil {
		return
	}
	applyRunFlags(cmd, cfg)

	sess := &session{
		Config:  cfg,
		Initial: runInit,
		Input:   bufio.NewReader(cmd.InOrStdin()),
		Output:  cmd.OutOrStdout(),
	}

	var prog *program.Program
	if len(args) == 1 {
		prog, err = loadFile(cfg, args[0])
	} else {
		prog, err = sess.choose()
	}
	if err != nil {
		return report(cmd, err)
	}

	err = sess.run(prog)

	return report(cmd, err)
}

// loadFile parses a program outside of the program directory.
func loadFile(cfg *config.Config, path string) (prog *program.Program, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	parser := &program.Parser{Verbose: cfg.Debug, Path: path}
	prog, err = parser.ParseString(string(data))

	return
}

// openLibrary scans the configured program directory.
func openLibrary(cfg *config.Config) (lib *library.Library, err error) {
	lib, err = library.Open(cfg.ProgramDir())
	if err != nil {
		return
	}
	lib.Verbose = cfg.Debug

	return
}
