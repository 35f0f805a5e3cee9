package cmd

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/josephlewis42/tinysh/core"
	"github.com/josephlewis42/tinysh/core/vos"
)

var (
	verbose bool
	noColor bool
)

// rootCmd runs the interactive shell; there are no subcommands.
var rootCmd = &cobra.Command{
	Use:   "tinysh",
	Short: "A minimal interactive shell",
	Long: `tinysh reads one command per line, runs a small set of builtins
directly and launches everything else as a child process found on PATH.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		if noColor {
			color.NoColor = true
		}

		tracer := log.New(io.Discard)
		if verbose {
			tracer = log.NewWithOptions(os.Stderr, log.Options{
				Level:  log.DebugLevel,
				Prefix: "tinysh",
			})
		}

		shell, err := core.NewShell(vos.NewOS(), core.WithTracer(tracer))
		if err != nil {
			return err
		}
		defer shell.Close()

		return shell.Run()
	},
}

// Execute runs the root command. It is called once, by main.main().
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "trace dispatch decisions to stderr")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "never colorize the prompt")
}
