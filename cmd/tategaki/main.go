package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tategaki"
	"github.com/npillmayer/tategaki/termrender"
	"github.com/spf13/cobra"
)

var (
	asJSON     bool
	symbols    bool
	traceDebug bool
)

var rootCmd = &cobra.Command{
	Use:   "tategaki [file]",
	Short: "Lay out Japanese text vertically (tategaki)",
	Long: `tategaki converts horizontal Japanese text into a vertical layout plan:
one column per line, columns right-to-left, with glyph rotation, bracket
substitution and quoted-block handling applied.

Reads from a file argument or from stdin. By default it prints a terminal
preview; --json emits the full rendering plan for downstream renderers.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if traceDebug {
			tracing.Select("tategaki").SetTraceLevel(tracing.LevelDebug)
		}
		var input []byte
		var err error
		if len(args) == 1 {
			input, err = os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("cannot read input file: %w", err)
			}
		} else {
			input, err = io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("cannot read stdin: %w", err)
			}
		}
		var opts []tategaki.Option
		if symbols {
			opts = append(opts, tategaki.WithSymbolRotation(true))
		}
		doc := tategaki.NewLayouter(opts...).Layout(string(input))
		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(doc)
		}
		fmt.Fprintln(cmd.OutOrStdout(), termrender.Preview(doc))
		return nil
	},
}

func init() {
	rootCmd.Flags().BoolVar(&asJSON, "json", false, "emit the layout plan as JSON")
	rootCmd.Flags().BoolVar(&symbols, "symbols", false, "also rotate symbol characters (colons, arrows, equals)")
	rootCmd.Flags().BoolVar(&traceDebug, "trace", false, "enable debug tracing for the layout engine")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
