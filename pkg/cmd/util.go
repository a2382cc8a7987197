package cmd

import (
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/spf13/cobra"
)

// Get an expected boolean flag, or exit if an error arises.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected string flag, or exit if an error arises.
func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected string-slice flag, or exit if an error arises.
func getStrings(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringSlice(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Determine the default format mode from a filename: the last three
// characters of its extension (e.g. "data.csv" gives "csv").
func modeFromFilename(name string) string {
	ext := strings.TrimPrefix(path.Ext(name), ".")
	if len(ext) > 3 {
		ext = ext[len(ext)-3:]
	}

	return ext
}
