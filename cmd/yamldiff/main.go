package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yamldiff/yamldiff/pkg/cli"
	"github.com/yamldiff/yamldiff/pkg/console"
	"github.com/yamldiff/yamldiff/pkg/constants"
)

// Build-time variables set by GoReleaser
var (
	version = "dev"
)

// Global flags
var verbose bool

// validateOutput validates the output flag value
func validateOutput(output string) error {
	if output != "text" && output != "json" && output != "yaml" {
		return fmt.Errorf("invalid output value '%s'. Must be 'text', 'json', or 'yaml'", output)
	}
	return nil
}

var rootCmd = &cobra.Command{
	Use:   constants.CLIName + " <left> <right>",
	Short: "Structural diff for YAML files",
	Long: `Compare two YAML files structurally instead of line by line.

Both inputs are parsed and their data trees are walked in lock-step, so
key reordering, quoting and whitespace changes produce no noise. Every
real divergence is reported with its line and column in both files.

Examples:
  ` + constants.CLIName + ` old.yaml new.yaml
  ` + constants.CLIName + ` old.yaml new.yaml -C 2
  ` + constants.CLIName + ` old.yaml new.yaml --skip-header-doc
  ` + constants.CLIName + ` old.yaml new.yaml -o json
  ` + constants.CLIName + ` old.yaml new.yaml --watch
  ` + constants.CLIName + ` envs/staging envs/production --recursive

Exit status is 0 when the inputs are identical, 1 when differences were
found, and 2 on error.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		skipHeader, _ := cmd.Flags().GetBool("skip-header-doc")
		contextLines, _ := cmd.Flags().GetInt("context")
		output, _ := cmd.Flags().GetString("output")
		watch, _ := cmd.Flags().GetBool("watch")
		recursive, _ := cmd.Flags().GetBool("recursive")

		if err := validateOutput(output); err != nil {
			fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
			os.Exit(2)
		}

		opts := cli.CompareOptions{
			SkipHeader: skipHeader,
			Context:    contextLines,
			Output:     output,
			Verbose:    verbose,
		}

		switch {
		case watch:
			if err := cli.WatchFiles(args[0], args[1], opts); err != nil {
				fmt.Fprintln(os.Stderr, cli.FormatCompareError(err))
				os.Exit(2)
			}
		case recursive:
			found, err := cli.CompareDirs(args[0], args[1], opts)
			exitWith(found, err)
		default:
			found, err := cli.CompareFiles(args[0], args[1], opts)
			exitWith(found, err)
		}
	},
}

// exitWith maps a comparison outcome to diff(1)-style exit codes.
func exitWith(found bool, err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatCompareError(err))
		os.Exit(2)
	}
	if found {
		os.Exit(1)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(console.FormatInfoMessage(fmt.Sprintf("%s version %s", constants.CLIName, version)))
	},
}

func init() {
	// Add global verbose flag to root command
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output showing detailed information")

	rootCmd.Flags().IntP("context", "C", 0, "Number of source lines of context to print with each difference")
	rootCmd.Flags().BoolP("skip-header-doc", "x", false, "Skip the first document with header information in each YAML stream")
	rootCmd.Flags().StringP("output", "o", "text", "Output format (text, json, yaml)")
	rootCmd.Flags().BoolP("watch", "w", false, "Watch both files and re-run the comparison on change")
	rootCmd.Flags().BoolP("recursive", "r", false, "Compare two directories, pairing YAML files by relative path")

	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(console.FormatErrorMessage(err.Error()))
		os.Exit(2)
	}
}
