// Package plugin validates every port of a bundle and folds the per-port
// verdicts into one result.
package plugin

import (
	"fmt"
	"log/slog"

	"github.com/ormasoftchile/lv2lint/pkg/config"
	"github.com/ormasoftchile/lv2lint/pkg/lint"
	"github.com/ormasoftchile/lv2lint/pkg/schema"
	"github.com/ormasoftchile/lv2lint/pkg/waiver"
)

// Options configures a lint run.
type Options struct {
	// Failure is the set of severities that fail a port.
	Failure lint.Mask
	// Waivers suppress matching findings. May be nil.
	Waivers *waiver.Set
	Logger  *slog.Logger
}

// OptionsFromConfig builds options from a loaded config file.
func OptionsFromConfig(cfg *config.Config, logger *slog.Logger) (Options, error) {
	set, err := waiver.Compile(cfg.Waivers)
	if err != nil {
		return Options{}, err
	}
	set.Logger = logger
	return Options{Failure: cfg.FailureMask(), Waivers: set, Logger: logger}, nil
}

// Result is the outcome of linting one plugin.
type Result struct {
	Plugin  string
	Reports []*lint.Report
	Failed  int
	// Warnings holds non-fatal bundle load findings.
	Warnings []*schema.ValidationError
	// Pass is the conjunction of every port's verdict.
	Pass bool
}

// Total returns the number of ports checked.
func (r *Result) Total() int { return len(r.Reports) }

// Lint validates each port of b in index order, each with a fresh context.
func Lint(b *schema.Bundle, opts Options) (*Result, error) {
	g, err := b.Graph()
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	ex := lint.NewExecutor()
	ex.Failure = opts.Failure
	ex.Logger = log
	if opts.Waivers.Len() > 0 {
		ex.Suppress = opts.Waivers.ForPlugin(b.Plugin.URI)
	}

	res := &Result{Plugin: b.Plugin.URI, Pass: true}
	for _, port := range b.Ports(g) {
		rep := ex.Validate(g, port)
		if !rep.Pass {
			res.Pass = false
			res.Failed++
		}
		log.Debug("port validated", "plugin", b.Plugin.URI, "port", port.Symbol, "pass", rep.Pass)
		res.Reports = append(res.Reports, rep)
	}
	return res, nil
}

// LintFile loads, validates and lints a bundle file. Load problems are
// returned as a *LoadError.
func LintFile(path string, opts Options) (*Result, error) {
	b, errs := schema.ValidateFile(path)
	if schema.HasErrors(errs) {
		return nil, &LoadError{Path: path, Errors: errs}
	}
	res, err := Lint(b, opts)
	if err != nil {
		return nil, err
	}
	res.Warnings = errs
	return res, nil
}

// LoadError reports a bundle that failed to load.
type LoadError struct {
	Path   string
	Errors []*schema.ValidationError
}

func (e *LoadError) Error() string {
	n := 0
	for _, v := range e.Errors {
		if v.Severity == "error" {
			n++
		}
	}
	return fmt.Sprintf("%s: %d load error(s), first: %s", e.Path, n, first(e.Errors))
}

func first(errs []*schema.ValidationError) string {
	for _, v := range errs {
		if v.Severity == "error" {
			return v.Error()
		}
	}
	return ""
}
