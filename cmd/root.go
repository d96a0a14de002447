// Package cmd provides the root command and CLI setup for jsonreader.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/jsonreader/internal/adapter"
	"github.com/mouse-blink/jsonreader/internal/controller"
	"github.com/mouse-blink/jsonreader/internal/domain"
	m "github.com/mouse-blink/jsonreader/internal/model"
)

var clearFlag bool
var dirFlag string
var formatFlag string
var logFileFlag string

// newUI builds the front end; tests replace it.
var newUI = func(cmd *cobra.Command, wf domain.Workflow, options ...controller.Option) controller.UI {
	return controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()), wf, options...)
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jsonreader [file]",
		Short: "Sum the positions of a JSON document",
		Long: `jsonreader loads JSON documents of the form

  {"NumberOfPositions": 2, "Position0": {"x": 1, "y": 2}, "Position1": {"x": 3, "y": 4}}

and shows the number of positions and the combined x and y values.

On a terminal it opens an interactive window with a file picker. When the
output is redirected it loads the given file once and prints the result.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := controller.OutputFormat(formatFlag)
			if format != controller.FormatText && format != controller.FormatTable {
				return fmt.Errorf("invalid --format %q: want %s or %s", formatFlag, controller.FormatText, controller.FormatTable)
			}

			logger, closer := adapter.NewLogger(logFileFlag)
			defer closer.Close()

			wf := domain.NewWorkflow(adapter.NewLocalFileAdapter(), logger)

			ui := newUI(cmd, wf,
				controller.WithClearOnLoad(clearFlag),
				controller.WithStartDir(dirFlag),
				controller.WithFormat(format),
			)

			var path m.Path
			if len(args) == 1 {
				path = m.Path(args[0])
			}

			return ui.Run(path)
		},
	}
	cmd.Flags().BoolVarP(&clearFlag, "clear", "c", false, "clear text on opening file")
	cmd.Flags().StringVarP(&dirFlag, "dir", "d", ".", "directory the file picker opens in")
	cmd.Flags().StringVarP(&formatFlag, "format", "f", string(controller.FormatText), "plain output format: text or table")
	cmd.Flags().StringVar(&logFileFlag, "log-file", "", "write debug logs to this file")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
