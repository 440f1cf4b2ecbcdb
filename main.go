// Command statusdeck renders a project status payload read from stdin into a
// six-slide deck or a handout.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

const usage = "Usage: statusdeck <output_path>"

var errUsage = errors.New("expected exactly one output path")

type renderResult struct {
	Success bool   `json:"success"`
	Path    string `json:"path"`
}

func main() {
	if err := execute(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, usage)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// execute runs the root command with args, reading the payload from stdin
// and printing the result to stdout.
func execute(args []string, stdin io.Reader, stdout io.Writer) error {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return cmd.Execute()
}

func newRootCmd() *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "statusdeck <output_path>",
		Short: "Render a project status report",
		Long: `statusdeck reads a project status payload as JSON from stdin and writes a
six-slide status deck. A .pdf, .docx or .xlsx output path, or --format,
writes the same content as a handout instead.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errUsage
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.OutputPath = args[0]
			if _, err := render(cmd.InOrStdin(), opts); err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), opts.OutputPath)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: pptx|pdf|docx|xlsx (default: from the output extension)")
	cmd.Flags().StringVar(&opts.ThemePath, "theme", "", "Path to a YAML theme file")
	cmd.Flags().StringVar(&opts.Language, "lang", "en", "Slide label language: en|zh")
	cmd.Flags().StringVar(&opts.LogDir, "log-dir", "", "Directory for the render log (disabled when empty)")
	return cmd
}

func writeResult(w io.Writer, path string) error {
	if err := json.NewEncoder(w).Encode(renderResult{Success: true, Path: path}); err != nil {
		return WrapOperationError("write result", err)
	}
	return nil
}
