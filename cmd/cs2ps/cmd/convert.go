package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cwbudde/cs2ps/pkg/transpile"
	"github.com/spf13/cobra"
)

var (
	convertOutput    string
	convertDialect   string
	convertWrite     bool
	convertRecursive bool
	convertIndent    int
	convertUseTabs   bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [files or directories...]",
	Short: "Convert C# source files to PowerShell",
	Long: `Convert reads C# source code, builds an intermediate representation of
its syntactic shape, and re-emits it as PowerShell in the selected
dialect.

Usage:
  cs2ps convert file.cs                  # Convert to stdout
  cs2ps convert -o out.ps1 file.cs       # Convert to a specific path
  cs2ps convert -w file.cs               # Write the .ps1 sibling in place
  cs2ps convert -r src/                  # Convert every .cs file in a directory
  cs2ps convert --dialect type file.cs   # Target PowerShell 5+ class syntax

If no path is provided, convert reads from standard input and writes to
standard output.`,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "write result to PATH (stdin/stdout otherwise)")
	convertCmd.Flags().StringVar(&convertDialect, "dialect", "function", `"function" (default) or "type"`)
	convertCmd.Flags().BoolVarP(&convertWrite, "write", "w", false, "overwrite the source file in place (.ps1 sibling)")
	convertCmd.Flags().BoolVarP(&convertRecursive, "recursive", "r", false, "process directories recursively (matches *.cs)")
	convertCmd.Flags().IntVar(&convertIndent, "indent", 4, "spaces per indent level")
	convertCmd.Flags().BoolVar(&convertUseTabs, "tabs", false, "use tabs instead of spaces")
}

func runConvert(cmd *cobra.Command, args []string) error {
	if convertOutput != "" && convertWrite {
		return fmt.Errorf("cannot use -o and -w together")
	}

	dialect, err := parseDialect(convertDialect)
	if err != nil {
		return err
	}
	indentUnit := indentUnitFor(convertIndent, convertUseTabs)

	if len(args) == 0 {
		return convertStdin(dialect, indentUnit)
	}

	hasErrors := false
	for _, path := range args {
		if err := convertPath(path, dialect, indentUnit); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", path, err)
			hasErrors = true
		}
	}
	if hasErrors {
		return fmt.Errorf("conversion failed for one or more files")
	}
	return nil
}

func parseDialect(s string) (transpile.Dialect, error) {
	switch strings.ToLower(s) {
	case "function", "":
		return transpile.DialectFunction, nil
	case "type":
		return transpile.DialectType, nil
	default:
		return 0, fmt.Errorf("unknown dialect: %s (use function or type)", s)
	}
}

func indentUnitFor(spaces int, useTabs bool) string {
	if useTabs {
		return "\t"
	}
	if spaces <= 0 {
		spaces = 4
	}
	return strings.Repeat(" ", spaces)
}

func convertPath(path string, dialect transpile.Dialect, indentUnit string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	if info.IsDir() {
		if convertRecursive {
			return convertDirectory(path, dialect, indentUnit)
		}
		return fmt.Errorf("%s is a directory (use -r to process recursively)", path)
	}

	return convertFile(path, dialect, indentUnit)
}

// convertDirectory walks dir, translating every *.cs file found.
func convertDirectory(dir string, dialect transpile.Dialect, indentUnit string) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if !strings.HasSuffix(path, ".cs") {
			return nil
		}
		if err := convertFile(path, dialect, indentUnit); err != nil {
			fmt.Fprintf(os.Stderr, "Error converting %s: %v\n", path, err)
		}
		return nil
	})
}

func convertStdin(dialect transpile.Dialect, indentUnit string) error {
	src, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("error reading stdin: %w", err)
	}

	out, err := transpile.Transpile(transpile.Options{
		Source:     string(src),
		Dialect:    dialect,
		IndentUnit: indentUnit,
	})
	if err != nil {
		return err
	}

	if convertOutput != "" {
		return os.WriteFile(convertOutput, []byte(out), 0o644)
	}
	fmt.Print(out)
	return nil
}

func convertFile(path string, dialect transpile.Dialect, indentUnit string) error {
	outputPath := convertOutput
	if convertWrite {
		outputPath = psSibling(path)
	}

	out, err := transpile.Transpile(transpile.Options{
		Path:       path,
		OutputPath: outputPath,
		Dialect:    dialect,
		IndentUnit: indentUnit,
	})
	if err != nil {
		return err
	}

	if outputPath != "" {
		if verbose {
			fmt.Printf("Converted %s -> %s\n", path, outputPath)
		}
		return nil
	}

	fmt.Print(out)
	return nil
}

// psSibling replaces path's extension with .ps1.
func psSibling(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + ".ps1"
}
