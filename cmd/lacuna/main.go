package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"github.com/lacuna-lang/lacuna/pkg/report"
	"github.com/lacuna-lang/lacuna/pkg/statics"
	"github.com/lacuna-lang/lacuna/pkg/syntax"
)

// Config holds the application configuration
type Config struct {
	Debug     bool
	JSON      bool
	NoColor   bool
	CacheSize int
	Dump      bool
	File      string
}

func main() {
	var cfg Config

	rootCmd := &cobra.Command{
		Use:   "lacuna [flags] [file]",
		Short: "Lacuna statics checker",
		Long: `Lacuna checks a serialized term tree and reports the statics of
every node: its type, the mode it was checked in, and any errors.
Checking is total, so broken fragments are reported without
suppressing the rest of the tree.`,
		Example: `  # Check a tree and print the report
  lacuna program.json

  # Check a tree piped on stdin
  lacuna < program.json

  # Per-node statics as JSON, for editors and tooling
  lacuna --json program.json

  # Recheck on every change
  lacuna watch program.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg.File = args[0]
			}
			return runCheck(cmd, cfg)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&cfg.Debug, "debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&cfg.JSON, "json", false, "Emit per-node statics as JSON instead of the styled report")
	rootCmd.PersistentFlags().BoolVar(&cfg.NoColor, "no-color", false, "Disable styled output")
	rootCmd.PersistentFlags().IntVar(&cfg.CacheSize, "cache-size", statics.DefaultCacheSize, "Bound the number of memoized check results")
	rootCmd.Flags().BoolVar(&cfg.Dump, "dump", false, "Pretty-print the decoded tree before checking")

	rootCmd.AddCommand(checkCmd(&cfg))
	rootCmd.AddCommand(watchCmd(&cfg))

	ctx := context.Background()
	if err := fang.Execute(ctx, rootCmd,
		fang.WithVersion("v0.1.0"),
		fang.WithCommit("dev"),
		fang.WithErrorHandler(func(w io.Writer, styles fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, err.Error())
		}),
	); err != nil {
		os.Exit(1)
	}
}

func checkCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [flags] [file]",
		Short: "Check a tree once and report its statics",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg.File = args[0]
			}
			return runCheck(cmd, *cfg)
		},
	}
	cmd.Flags().BoolVar(&cfg.Dump, "dump", false, "Pretty-print the decoded tree before checking")
	return cmd
}

func runCheck(cmd *cobra.Command, cfg Config) error {
	setupLogging(cfg.Debug)

	source, dir, err := readSource(cfg.File)
	if err != nil {
		return err
	}
	cfg, err = mergeProjectConfig(cmd, cfg, dir)
	if err != nil {
		return err
	}

	root, err := syntax.DecodeExp(source)
	if err != nil {
		return fmt.Errorf("decode tree: %w", err)
	}
	if cfg.Dump {
		_, _ = pretty.Println(root)
	}

	infos := statics.Check(root)
	slog.Debug("checked tree", "nodes", len(infos), "errors", len(infos.ErrorIDs()))

	return render(report.New(infos), cfg)
}

// readSource reads the tree to check, from path or from stdin when path
// is empty, and returns the directory governing project configuration.
func readSource(path string) ([]byte, string, error) {
	if path == "" {
		source, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}
		cwd, _ := os.Getwd()
		return source, cwd, nil
	}
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", path, err)
	}
	return source, filepath.Dir(path), nil
}

// mergeProjectConfig fills cfg from the nearest lacuna.toml. Flags set
// explicitly on the command line win over the file.
func mergeProjectConfig(cmd *cobra.Command, cfg Config, dir string) (Config, error) {
	project, err := statics.LoadProjectConfig(dir)
	if err != nil {
		return cfg, err
	}
	if !cmd.Flags().Changed("json") {
		cfg.JSON = project.JSON
	}
	if !cmd.Flags().Changed("no-color") {
		cfg.NoColor = project.NoColor
	}
	if !cmd.Flags().Changed("cache-size") {
		cfg.CacheSize = project.CacheSize
	}
	return cfg, nil
}

func render(rep *report.Report, cfg Config) error {
	if cfg.JSON {
		if err := rep.WriteJSON(os.Stdout); err != nil {
			return err
		}
	} else {
		opts := report.Options{Color: report.DetectColor(os.Stdout) && !cfg.NoColor}
		if err := rep.Render(os.Stdout, opts); err != nil {
			return err
		}
	}

	if n := len(rep.Diagnostics()); n > 0 {
		if n == 1 {
			return fmt.Errorf("1 problem found")
		}
		return fmt.Errorf("%d problems found", n)
	}
	return nil
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}
