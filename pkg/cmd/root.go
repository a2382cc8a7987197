package cmd

import (
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bjaus/melt"
)

// exitUsage is the exit code for command-line usage errors (sysexits
// EX_USAGE).
const exitUsage = 64

// usageError marks errors caused by bad command-line arguments, as opposed
// to failures while processing the input.
type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg }

// NewRootCmd builds the melt command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "melt",
		Short: "Unpivot wide delimited data into long form.",
		Long: `Unpivot (melt) wide CSV/TSV data into long form: for each input row, one
output row is emitted per non-key column, carrying the key-column values
plus that column's name and value.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if getFlag(cmd, "verbose") {
				log.SetLevel(log.DebugLevel)
			}
			file := getString(cmd, "file")
			if file == "" {
				return &usageError{"no input file given (use --file)"}
			}
			keys := getStrings(cmd, "keys")
			if len(keys) == 0 {
				return &usageError{"no key columns given (use --keys)"}
			}
			mode := getString(cmd, "mode")
			if mode == "" {
				mode = modeFromFilename(file)
			}
			format, err := melt.ParseFormat(mode)
			if err != nil {
				return &usageError{err.Error()}
			}
			text, err := os.ReadFile(file)
			if err != nil {
				return err
			}
			headers := getFlag(cmd, "headers")
			table, err := melt.Parse(string(text), format, headers)
			if err != nil {
				_ = cmd.Help()
				return err
			}
			log.Debugf("parsed %d rows with %d columns from %s", len(table.Rows), len(table.Columns), file)
			var rows [][]string
			if table.Headed {
				rows = append(rows, melt.UnpivotHeader(keys))
			}
			rows = append(rows, melt.Collect(melt.Unpivot(table, keys))...)
			out, err := melt.Encode(rows, format)
			if err != nil {
				return err
			}
			log.Debugf("emitting %d rows", len(rows))
			if getFlag(cmd, "inline") {
				return os.WriteFile(file, []byte(out), 0644)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	//
	rootCmd.Flags().StringSliceP("keys", "k", nil, "key columns preserved in every output row")
	rootCmd.Flags().StringP("file", "f", "", "input file to unpivot")
	rootCmd.Flags().StringP("mode", "m", "", "input format, csv or tsv (default: from the file extension)")
	rootCmd.Flags().BoolP("headers", "H", false, "treat the first input line as a header row")
	rootCmd.Flags().BoolP("inline", "i", false, "overwrite the input file instead of writing to stdout")
	rootCmd.Flags().BoolP("verbose", "v", false, "increase logging verbosity")
	//
	return rootCmd
}

// Execute runs the melt command. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		//
		var uerr *usageError
		if errors.As(err, &uerr) {
			os.Exit(exitUsage)
		}
		os.Exit(1)
	}
}
