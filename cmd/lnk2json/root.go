package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jpare/shelllink/internal/logging"
)

var (
	verbose     bool
	quiet       bool
	lenient     bool
	codepage    string
	jsonIndent  string
	packedFlags bool
)

var rootCmd = &cobra.Command{
	Use:     "lnk2json",
	Short:   "Decode Windows Shell Link (.lnk) files to JSON",
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&lenient, "lenient", false, "Tolerate unknown ExtraData signatures and trailing garbage")
	rootCmd.PersistentFlags().StringVar(&codepage, "codepage", "windows-1252", "8-bit code page for non-Unicode strings")
	rootCmd.PersistentFlags().StringVar(&jsonIndent, "json-indent", "  ", "JSON indent string (empty for compact output)")
	rootCmd.PersistentFlags().BoolVar(&packedFlags, "packed-flags", false, "Render LinkFlags/FileAttributeFlags as a packed integer instead of a name list")

	rootCmd.AddCommand(newDecodeCmd())
}

func execute() {
	// Flags are parsed inside Execute, so logging is configured from an
	// initializer that cobra runs after parsing.
	cobra.OnInitialize(func() {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logging.Init(logging.Options{Enabled: verbose, Level: level})
	})

	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}
