package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/c360studio/semvocab/config"
	"github.com/c360studio/semvocab/export"
	"github.com/c360studio/semvocab/gateway"
	"github.com/c360studio/semvocab/rules"
	"github.com/c360studio/semvocab/vocabulary"
)

// App wires the registry, rule catalog and gateway for one CLI invocation.
type App struct {
	cfg     *config.Config
	logger  *slog.Logger
	out     io.Writer
	reg     *vocabulary.Registry
	catalog *rules.Catalog
	gw      *gateway.Gateway
}

func newApp(cfg *config.Config, logger *slog.Logger, out io.Writer) (*App, error) {
	reg, err := vocabulary.NewRegistry()
	if err != nil {
		return nil, fmt.Errorf("build registry: %w", err)
	}
	catalog := rules.NewCatalog()

	gwCfg, err := cfg.GatewayConfiguration()
	if err != nil {
		return nil, fmt.Errorf("gateway configuration: %w", err)
	}
	gw := gateway.New(reg, catalog,
		gateway.WithLogger(logger),
		gateway.WithConfiguration(gwCfg),
	)

	return &App{
		cfg:     cfg,
		logger:  logger,
		out:     out,
		reg:     reg,
		catalog: catalog,
		gw:      gw,
	}, nil
}

// --- validate ---

func validateCmd(ctx *appContext) *cobra.Command {
	var (
		fileGlobs []string
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "validate [handles...]",
		Short: "Validate handles against the canonical vocabulary",
		Long: `Validate classifies each handle against the generative hierarchy.
Handles come from positional arguments, from files selected by --files
globs (one handle per line, # starts a comment), or both.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := ctx.load()
			if err != nil {
				return err
			}
			handles, err := collectHandles(args, fileGlobs)
			if err != nil {
				return err
			}
			if len(handles) == 0 {
				return fmt.Errorf("no handles given; pass arguments or --files")
			}
			return app.runValidate(handles, asJSON)
		},
	}

	cmd.Flags().StringSliceVarP(&fileGlobs, "files", "f", nil, "Glob patterns for handle list files (supports **)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the batch result as JSON")
	return cmd
}

func (a *App) runValidate(handles []string, asJSON bool) error {
	result := a.reg.ValidateHandles(handles)

	if asJSON {
		if err := writeJSON(a.out, result); err != nil {
			return err
		}
	} else {
		for _, h := range result.Valid {
			cls := a.reg.ValidateHandle(h)
			fmt.Fprintf(a.out, "ok    %-40s %s\n", h, cls.Level)
		}
		for _, cls := range result.Invalid {
			fmt.Fprintf(a.out, "FAIL  %-40s %s\n", cls.Handle, cls.Error)
			if cls.Suggestion != "" {
				fmt.Fprintf(a.out, "      %-40s %s\n", "", cls.Suggestion)
			}
		}
		fmt.Fprintf(a.out, "\n%d valid, %d invalid\n", len(result.Valid), len(result.Invalid))
	}

	if n := len(result.Invalid); n > 0 {
		return fmt.Errorf("%d invalid handle(s)", n)
	}
	return nil
}

// collectHandles merges positional handles with handles read from files
// matching the given glob patterns.
func collectHandles(args, globs []string) ([]string, error) {
	handles := make([]string, 0, len(args))
	handles = append(handles, args...)

	for _, pattern := range globs {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad glob %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("glob %q matched no files", pattern)
		}
		sort.Strings(matches)
		for _, path := range matches {
			fromFile, err := readHandleFile(path)
			if err != nil {
				return nil, err
			}
			handles = append(handles, fromFile...)
		}
	}
	return handles, nil
}

func readHandleFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var handles []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		handles = append(handles, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return handles, nil
}

// --- check ---

// manifest is the YAML shape the check command consumes: the module and
// taxonomy handle sets of one model.
type manifest struct {
	Modules    []gateway.Item `yaml:"modules"`
	Taxonomies []gateway.Item `yaml:"taxonomies"`
}

func checkCmd(ctx *appContext) *cobra.Command {
	var (
		stage  string
		asJSON bool
		watch  bool
	)

	cmd := &cobra.Command{
		Use:   "check <manifest.yaml>",
		Short: "Run checkpoint validation over a model manifest",
		Long: `Check loads a YAML manifest of module and taxonomy handles and runs
the validation pipeline over it. By default all substantive checkpoints
run in order; --stage restricts the run to a single checkpoint.

With --watch the command keeps running: whenever the config file
changes, the gateway picks up the new strictness and filters and the
manifest is re-checked.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := ctx.load()
			if err != nil {
				return err
			}
			m, err := loadManifest(args[0])
			if err != nil {
				return err
			}
			if watch {
				if stage != "" {
					return fmt.Errorf("--watch runs the full pipeline; drop --stage")
				}
				path := *ctx.configPath
				if path == "" {
					path = config.ProjectConfigFile
				}
				sigCtx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
				defer cancel()
				err := app.runCheckWatch(sigCtx, path, m, asJSON)
				if errors.Is(err, context.Canceled) {
					return nil
				}
				return err
			}
			return app.runCheck(m, stage, asJSON)
		},
	}

	cmd.Flags().StringVarP(&stage, "stage", "s", "", "Run a single checkpoint (ingest, extract, map, build, export)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the report as JSON")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-check the manifest whenever the config file changes")
	return cmd
}

func loadManifest(path string) (*manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	if len(m.Modules) == 0 && len(m.Taxonomies) == 0 {
		return nil, fmt.Errorf("manifest %s lists no modules or taxonomies", path)
	}
	return &m, nil
}

func (a *App) runCheck(m *manifest, stage string, asJSON bool) error {
	if stage != "" {
		result, err := a.gw.ValidateCheckpoint(gateway.Stage(stage), m.Modules, m.Taxonomies)
		var se *gateway.StrictnessError
		if err != nil && !errors.As(err, &se) {
			return err
		}
		a.printCheckpoint(result, asJSON)
		if err != nil {
			return err
		}
		if !result.Passed {
			return fmt.Errorf("%s checkpoint failed with %d error(s)", result.Stage, len(result.Errors))
		}
		return nil
	}

	report, err := a.gw.ValidateAll(m.Modules, m.Taxonomies)
	a.printReport(report, asJSON)
	if err != nil {
		return err
	}
	if !report.Valid {
		return fmt.Errorf("validation failed with %d error(s)", report.TotalErrors)
	}
	return nil
}

// runCheckWatch runs one check, then blocks watching the config file at
// path. Each change reconfigures the gateway atomically and re-checks the
// manifest; check failures are reported in the output, not as errors, so
// the watch survives them. Returns when ctx is cancelled.
func (a *App) runCheckWatch(ctx context.Context, path string, m *manifest, asJSON bool) error {
	if err := a.runCheck(m, "", asJSON); err != nil {
		a.logger.Warn("Initial check reported errors", "error", err.Error())
	}

	w := config.NewWatcher(path, a.logger)
	return w.Watch(ctx, func(cfg *config.Config) {
		gwCfg, err := cfg.GatewayConfiguration()
		if err != nil {
			a.logger.Warn("Reloaded config rejected", "error", err.Error())
			return
		}
		if err := a.gw.Configure(gwCfg); err != nil {
			a.logger.Warn("Gateway reconfiguration failed", "error", err.Error())
			return
		}
		a.logger.Info("Gateway reconfigured", "strictness", string(gwCfg.Strictness))
		if err := a.runCheck(m, "", asJSON); err != nil {
			a.logger.Warn("Re-check reported errors", "error", err.Error())
		}
	})
}

func (a *App) printCheckpoint(result gateway.CheckpointResult, asJSON bool) {
	if asJSON {
		_ = writeJSON(a.out, result)
		return
	}
	status := "passed"
	if !result.Passed {
		status = "FAILED"
	}
	fmt.Fprintf(a.out, "checkpoint %s: %s (%d modules, %d taxonomies)\n",
		result.Stage, status, result.Stats.ModulesChecked, result.Stats.TaxonomiesChecked)
	for _, e := range result.Errors {
		fmt.Fprintf(a.out, "  error [%s] %s\n", e.RuleID, e.Message)
		if e.Suggestion != "" {
			fmt.Fprintf(a.out, "        %s\n", e.Suggestion)
		}
	}
	for _, w := range result.Warnings {
		fmt.Fprintf(a.out, "  warn  [%s] %s\n", w.RuleID, w.Message)
	}
}

func (a *App) printReport(report gateway.Report, asJSON bool) {
	if asJSON {
		_ = writeJSON(a.out, report)
		return
	}
	fmt.Fprintf(a.out, "report %s\n", report.ID)
	for _, cp := range report.Checkpoints {
		a.printCheckpoint(cp, false)
	}
	verdict := "valid"
	if !report.Valid {
		verdict = "INVALID"
	}
	fmt.Fprintf(a.out, "\n%s: %d error(s), %d warning(s)", verdict, report.TotalErrors, report.TotalWarnings)
	if len(report.RulesFired) > 0 {
		fmt.Fprintf(a.out, "; rules fired: %s", strings.Join(report.RulesFired, ", "))
	}
	fmt.Fprintln(a.out)
}

// --- rules ---

func rulesCmd(ctx *appContext) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "rules [id]",
		Short: "List validation rules or show one rule in detail",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := ctx.load()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				return app.showRule(args[0])
			}
			return app.listRules(category)
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Restrict listing to one category (naming, structural, relationship, taxonomy)")
	return cmd
}

func (a *App) listRules(category string) error {
	cats := rules.Categories
	if category != "" {
		cats = []rules.Category{rules.Category(category)}
	}
	printed := 0
	for _, cat := range cats {
		group := a.catalog.ByCategory(cat)
		if len(group) == 0 {
			continue
		}
		fmt.Fprintf(a.out, "%s\n", cat)
		for _, r := range group {
			fmt.Fprintf(a.out, "  %-4s %s\n", r.ID, r.Name)
		}
		printed += len(group)
	}
	if printed == 0 {
		return fmt.Errorf("no rules in category %q", category)
	}
	return nil
}

func (a *App) showRule(id string) error {
	r, err := a.catalog.Definition(id)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s  %s (%s)\n\n%s\n", r.ID, r.Name, r.Category, r.Description)
	if len(r.Correct) > 0 {
		fmt.Fprintf(a.out, "\ncorrect:\n")
		for _, ex := range r.Correct {
			fmt.Fprintf(a.out, "  %s\n", ex)
		}
	}
	if len(r.Incorrect) > 0 {
		fmt.Fprintf(a.out, "\nincorrect:\n")
		for _, ex := range r.Incorrect {
			fmt.Fprintf(a.out, "  %s\n", ex)
		}
	}
	return nil
}

// --- export ---

func exportCmd(ctx *appContext) *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the canonical vocabulary",
		Long: `Export renders the full generated vocabulary. Markdown yields the
human-readable reference document; turtle, ntriples and jsonld yield
RDF/SKOS serializations.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := ctx.load()
			if err != nil {
				return err
			}
			if format == "" {
				format = app.cfg.Export.Format
			}
			if output == "" {
				output = app.cfg.Export.Output
			}
			return app.runExport(export.Format(format), output)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "F", "", "Output format (markdown, turtle, ntriples, jsonld)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Destination path (\"-\" = stdout)")
	return cmd
}

func (a *App) runExport(format export.Format, output string) error {
	info, ok := export.GetFormatInfo(format)
	if !ok {
		return fmt.Errorf("unsupported export format %q", format)
	}

	w := a.out
	var file *os.File
	if output != "" && output != "-" {
		var err error
		file, err = os.Create(output)
		if err != nil {
			return fmt.Errorf("create %s: %w", output, err)
		}
		defer file.Close()
		w = file
	}

	switch format {
	case export.FormatMarkdown:
		if err := export.WriteMarkdown(w, a.reg, a.catalog); err != nil {
			return fmt.Errorf("write markdown: %w", err)
		}
	default:
		out, err := export.NewRDFExporter(a.reg).Export(format)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, out); err != nil {
			return fmt.Errorf("write %s: %w", info.Name, err)
		}
	}

	if file != nil {
		a.logger.Info("vocabulary exported", "format", string(format), "path", output)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
