// Package main provides the CLI entrypoint for huffman.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/o1810156/huffman"
	"github.com/o1810156/huffman/internal/config"
	"github.com/o1810156/huffman/internal/freqlist"
)

type options struct {
	configPath string
	delimiter  string
	normalize  bool
	tree       bool
	entropy    bool
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:          "huffman [FILE]",
		Short:        "Build a Huffman code from a symbol,weight list",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, args, opts)
		},
	}

	rootCmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/huffman/config.toml)")
	rootCmd.Flags().StringVar(&opts.delimiter, "delimiter", freqlist.DefaultDelimiter, "separator between symbol and weight")
	rootCmd.Flags().BoolVar(&opts.normalize, "normalize", false, "scale weights to sum to 1")
	rootCmd.Flags().BoolVar(&opts.tree, "tree", true, "print the code tree")
	rootCmd.Flags().BoolVar(&opts.entropy, "entropy", true, "print the entropy of the weights")

	rootCmd.AddCommand(newConfigCmd())
	return rootCmd
}

func runReport(cmd *cobra.Command, args []string, opts *options) error {
	cfgPath := opts.configPath
	if cfgPath == "" {
		cfgPath = config.DefaultConfigPath()
	}
	fileCfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "delimiter", &opts.delimiter, fileCfg.Report.Delimiter)
	applyBoolConfig(cmd, "normalize", &opts.normalize, fileCfg.Report.Normalize)
	applyBoolConfig(cmd, "tree", &opts.tree, fileCfg.Report.Tree)
	applyBoolConfig(cmd, "entropy", &opts.entropy, fileCfg.Report.Entropy)

	var list freqlist.List
	if len(args) == 0 || args[0] == "-" {
		list, err = freqlist.Parse(cmd.InOrStdin(), opts.delimiter)
	} else {
		list, err = freqlist.LoadFile(args[0], opts.delimiter)
	}
	if err != nil {
		return err
	}
	for _, lineNo := range list.Defaulted {
		logErrf(cmd, "line %d: missing or malformed weight, using 0\n", lineNo)
	}
	if opts.normalize {
		list = list.Normalize()
	}

	report, err := huffman.New(list.Symbols)
	if err != nil {
		return fmt.Errorf("failed to build code: %w", err)
	}
	return writeReport(cmd.OutOrStdout(), report, opts)
}

func writeReport(w io.Writer, report *huffman.Report[string], opts *options) error {
	if opts.entropy {
		if _, err := fmt.Fprintf(w, "entropy: %v\n", report.Entropy()); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	if opts.tree {
		if _, err := fmt.Fprintln(w, report.Tree()); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	if _, err := fmt.Fprintln(w, report.String()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if _, err := fmt.Fprintf(w, "avg_len: %v\n", report.AverageLength()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print a default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := fmt.Fprint(cmd.OutOrStdout(), defaultConfigTemplate()); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			return nil
		},
	}
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# huffman configuration
# Uncomment a value to enable it. CLI flags override config values.

[report]
# delimiter = %q        # Separator between symbol and weight
# normalize = false     # Scale weights to sum to 1
# tree = true           # Print the code tree
# entropy = true        # Print the entropy of the weights
`,
		freqlist.DefaultDelimiter,
	)
}

func logErrf(cmd *cobra.Command, format string, args ...any) {
	if _, err := fmt.Fprintf(cmd.ErrOrStderr(), format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
