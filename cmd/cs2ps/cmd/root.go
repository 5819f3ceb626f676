package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "cs2ps",
	Short: "C# to PowerShell source transpiler",
	Long: `cs2ps translates C# source files into PowerShell.

It parses C# with a concrete-syntax-tree grammar, reduces it to a
language-neutral intermediate representation, and re-emits that as
PowerShell in one of two dialects: script-style functions, or
PowerShell 5+ classes.

Translation is syntactic: no type checking or semantic analysis is
performed, and the output is not guaranteed to execute — constructs
outside the supported subset are rendered as inline markers so they
can be found and fixed by hand.`,
	Version: Version,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
