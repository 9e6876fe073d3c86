package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/ormasoftchile/lv2lint/pkg/config"
	"github.com/ormasoftchile/lv2lint/pkg/lint"
	"github.com/ormasoftchile/lv2lint/pkg/plugin"
	"github.com/ormasoftchile/lv2lint/pkg/report"
	"github.com/ormasoftchile/lv2lint/pkg/schema"
	"github.com/spf13/cobra"
)

type validateFlags struct {
	show       lint.Mask
	mask       lint.Mask
	color      string
	jsonOutput bool
	configPath string
	verbose    bool
}

func newValidateCmd() *cobra.Command {
	f := &validateFlags{show: lint.MaskAll, mask: lint.MaskOf(lint.SeverityFail)}
	cmd := &cobra.Command{
		Use:   "validate <bundle.yaml>...",
		Short: "Check every port of one or more plugin bundles",
		Long: `Check every port of one or more plugin bundles.

Settings are read from the nearest lv2lint.yaml above each bundle unless
--config is given; flags override the file. The command exits with status 1
when any port fails and 2 when a bundle cannot be loaded.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, f, args)
		},
	}
	cmd.Flags().VarP(&f.show, "show", "S", "Severities to display: note, warn, fail, all or none (comma separated)")
	cmd.Flags().VarP(&f.mask, "mask", "M", "Severities that fail a port (comma separated)")
	cmd.Flags().StringVar(&f.color, "color", config.ColorAuto, "Colorize output: auto, always or never")
	cmd.Flags().BoolVar(&f.jsonOutput, "json", false, "Output results as structured JSON")
	cmd.Flags().StringVar(&f.configPath, "config", "", "Path to lv2lint.yaml (default: discovered from each bundle)")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Log each rule to stderr")
	return cmd
}

func runValidate(cmd *cobra.Command, f *validateFlags, args []string) error {
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	log := newLogger(stderr, f.verbose)

	paths, err := expandPaths(args)
	if err != nil {
		return err
	}

	var fixed *config.Config
	if f.configPath != "" {
		cfg, err := config.LoadFile(f.configPath)
		if err != nil {
			return err
		}
		fixed = cfg
	}

	var (
		docs       []report.Document
		failed     int
		total      int
		loadFailed int
	)
	for _, path := range paths {
		cfg := fixed
		if cfg == nil {
			var err error
			if cfg, err = config.Discover(path); err != nil {
				return fmt.Errorf("load config for %s: %w", path, err)
			}
		}
		if cfg.Path != "" {
			log.Debug("using config", "bundle", path, "config", cfg.Path)
		}

		show, opts, colorMode, err := resolveSettings(cmd, f, cfg, log)
		if err != nil {
			return err
		}
		color, err := useColor(colorMode, stdout)
		if err != nil {
			return err
		}
		rep := report.New(show, color)

		res, err := plugin.LintFile(path, opts)
		if err != nil {
			var le *plugin.LoadError
			if !errors.As(err, &le) {
				return err
			}
			printLoadErrors(stderr, path, le.Errors)
			loadFailed++
			continue
		}
		printWarnings(stderr, path, res.Warnings)

		failed += res.Failed
		total += res.Total()
		if f.jsonOutput {
			docs = append(docs, rep.Document(path, res.Plugin, res.Reports))
			continue
		}
		if err := rep.WritePlugin(stdout, res.Plugin, res.Reports); err != nil {
			return err
		}
		if err := rep.Summary(stdout, res.Plugin, res.Failed, res.Total()); err != nil {
			return err
		}
	}

	if f.jsonOutput {
		if docs == nil {
			docs = []report.Document{}
		}
		if err := report.WriteJSON(stdout, docs); err != nil {
			return err
		}
	}
	if loadFailed > 0 {
		return fmt.Errorf("%d of %d bundle(s) failed to load", loadFailed, len(paths))
	}
	if failed > 0 {
		return &PortsFailedError{Failed: failed, Total: total}
	}
	return nil
}

// expandPaths resolves ** glob patterns, such as "bundles/**/*.yaml", that
// the shell left unexpanded. Other arguments pass through unchanged.
func expandPaths(args []string) ([]string, error) {
	var out []string
	for _, arg := range args {
		if !strings.ContainsAny(arg, "*?[{") {
			out = append(out, arg)
			continue
		}
		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no bundles match %q", arg)
		}
		out = append(out, matches...)
	}
	return out, nil
}

// resolveSettings layers explicitly set flags over the config file.
func resolveSettings(cmd *cobra.Command, f *validateFlags, cfg *config.Config, log *slog.Logger) (lint.Mask, plugin.Options, string, error) {
	opts, err := plugin.OptionsFromConfig(cfg, log)
	if err != nil {
		return 0, plugin.Options{}, "", err
	}
	show := cfg.ShowMask()
	if cmd.Flags().Changed("show") {
		show = f.show
	}
	if cmd.Flags().Changed("mask") {
		opts.Failure = f.mask
	}
	colorMode := cfg.Color
	if cmd.Flags().Changed("color") {
		colorMode = f.color
	}
	log.Debug("settings", "show", show, "mask", opts.Failure, "color", colorMode, "waivers", opts.Waivers.Len())
	return show, opts, colorMode, nil
}

func printLoadErrors(w io.Writer, path string, errs []*schema.ValidationError) {
	n := 0
	for _, e := range errs {
		if e.Severity == "error" {
			n++
		}
	}
	fmt.Fprintf(w, "%s: load failed: %d error(s)\n\n", path, n)
	i := 0
	for _, e := range errs {
		if e.Severity != "error" {
			continue
		}
		i++
		fmt.Fprintf(w, "  %d. [%s] %s\n", i, e.Phase, e.Message)
		if e.Path != "" {
			fmt.Fprintf(w, "     at: %s\n", e.Path)
		}
	}
}

func printWarnings(w io.Writer, path string, errs []*schema.ValidationError) {
	for _, e := range errs {
		if e.Severity != "warning" {
			continue
		}
		fmt.Fprintf(w, "%s: ⚠ [%s] %s\n", path, e.Phase, e.Message)
		if e.Path != "" {
			fmt.Fprintf(w, "    at: %s\n", e.Path)
		}
	}
}
