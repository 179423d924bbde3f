// Package generator orchestrates a generation run: render the template,
// split the output into documents, write each document body, and apply its
// injection directives in order.
//
// The generator owns all file I/O side effects and keeps no state between
// Generate calls; the target files on disk are the only state that crosses
// runs. A directive's read-modify-write is not atomic against concurrent
// external modification of the same file; callers that need that guarantee
// must serialize around Generate themselves.
package generator

import (
	"log/slog"
	"os"
	"time"

	"git.home.luguber.info/inful/scaffgen/internal/document"
	generrors "git.home.luguber.info/inful/scaffgen/internal/errors"
	"git.home.luguber.info/inful/scaffgen/internal/genfs"
	"git.home.luguber.info/inful/scaffgen/internal/inject"
	"git.home.luguber.info/inful/scaffgen/internal/metrics"
	"git.home.luguber.info/inful/scaffgen/internal/render"
	"git.home.luguber.info/inful/scaffgen/internal/schema"
	"github.com/google/uuid"
)

// Generator drives rendering, splitting, body writes, and injections.
type Generator struct {
	fs       genfs.Driver
	renderer render.Renderer
	reporter Reporter
	recorder metrics.Recorder
	decode   document.DecodeFunc
}

// Option configures a Generator.
type Option func(*Generator)

// WithReporter replaces the default console reporter.
func WithReporter(r Reporter) Option {
	return func(g *Generator) { g.reporter = r }
}

// WithRecorder replaces the default no-op metrics recorder.
func WithRecorder(rec metrics.Recorder) Option {
	return func(g *Generator) { g.recorder = rec }
}

// WithDecoder replaces the frontmatter decoder, mainly for tests.
func WithDecoder(decode document.DecodeFunc) Option {
	return func(g *Generator) { g.decode = decode }
}

// New creates a Generator over the given filesystem driver and renderer.
func New(fs genfs.Driver, renderer render.Renderer, opts ...Option) *Generator {
	g := &Generator{
		fs:       fs,
		renderer: renderer,
		reporter: ConsoleReporter{Out: os.Stdout},
		recorder: metrics.NoopRecorder{},
		decode:   schema.Decode,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate renders templateText with vars and executes every resulting
// document. Documents and their directives are processed strictly in
// listed order; the first failure aborts the run. The returned report
// covers the work completed up to that point.
func (g *Generator) Generate(templateText string, vars map[string]any) (*Report, error) {
	start := time.Now()
	report := &Report{RunID: uuid.NewString()}
	logger := slog.With("run_id", report.RunID)

	rendered, err := g.renderer.Render(templateText, vars)
	if err != nil {
		return report, err
	}

	docs, err := document.Split(rendered, g.decode)
	if err != nil {
		return report, err
	}
	logger.Debug("template rendered", "documents", len(docs))

	for _, doc := range docs {
		record, err := g.generateDocument(logger, doc)
		if record != nil {
			report.Documents = append(report.Documents, *record)
		}
		if err != nil {
			g.recorder.IncDocumentOutcome(metrics.OutcomeFailed)
			return report, err
		}
	}

	g.recorder.ObserveGenerateDuration(time.Since(start))
	return report, nil
}

// GenerateFile reads a template from the filesystem driver and runs
// Generate on its content.
func (g *Generator) GenerateFile(path string, vars map[string]any) (*Report, error) {
	templateText, err := g.fs.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return g.Generate(templateText, vars)
}

func (g *Generator) generateDocument(logger *slog.Logger, doc document.Document) (*DocumentRecord, error) {
	meta := doc.Meta
	record := &DocumentRecord{Index: doc.Index, Path: meta.To, Message: meta.Message}

	if meta.SkipExists && g.fs.Exists(meta.To) {
		record.Outcome = DocumentSkipped
		g.reporter.SkippedExists(meta.To)
		g.recorder.IncDocumentOutcome(metrics.OutcomeSkipped)
		logger.Debug("skipping document, target exists", "path", meta.To)
		return record, nil
	}
	if meta.SkipGlob != "" {
		matches, err := g.fs.Glob(meta.SkipGlob)
		if err != nil {
			return record, withDocContext(err, doc.Index)
		}
		if len(matches) > 0 {
			record.Outcome = DocumentSkipped
			g.reporter.SkippedExists(meta.To)
			g.recorder.IncDocumentOutcome(metrics.OutcomeSkipped)
			logger.Debug("skipping document, glob matched", "path", meta.To, "glob", meta.SkipGlob)
			return record, nil
		}
	}

	// The body is the canonical freshly generated file; an existing target
	// is overwritten unless skip_exists asked otherwise.
	existed := g.fs.Exists(meta.To)
	if err := g.fs.WriteFile(meta.To, doc.Body); err != nil {
		return record, withDocContext(err, doc.Index)
	}
	if existed {
		record.Outcome = DocumentOverwritten
		g.reporter.OverwroteFile(meta.To)
		g.recorder.IncDocumentOutcome(metrics.OutcomeOverwritten)
	} else {
		record.Outcome = DocumentCreated
		g.reporter.AddedFile(meta.To)
		g.recorder.IncDocumentOutcome(metrics.OutcomeCreated)
	}
	logger.Info("generated file", "path", meta.To, "overwritten", existed)

	for i, directive := range meta.Injections {
		injRecord, err := g.applyInjection(logger, directive)
		record.Injections = append(record.Injections, injRecord)
		if err != nil {
			if ge, ok := err.(*generrors.GenError); ok {
				ge.WithContext("document", doc.Index).WithContext("directive", i)
			}
			return record, err
		}
	}

	return record, nil
}

func (g *Generator) applyInjection(logger *slog.Logger, d *schema.InjectionDirective) (InjectionRecord, error) {
	record := InjectionRecord{Into: d.Into, Placement: d.Placement.String()}

	if !g.fs.Exists(d.Into) {
		return record, generrors.Newf(generrors.CategoryTarget, generrors.SeverityFatal,
			"cannot inject into %s: file does not exist", d.Into)
	}

	current, err := g.fs.ReadFile(d.Into)
	if err != nil {
		return record, err
	}

	updated, outcome, err := inject.Apply(current, d)
	if err != nil {
		return record, err
	}
	record.Result = outcome.String()

	switch outcome {
	case inject.OutcomeSkippedGuard:
		g.recorder.IncInjectionResult(metrics.ResultSkipped)
		logger.Debug("injection skipped by guard", "path", d.Into)
	case inject.OutcomeNoMatch:
		g.recorder.IncInjectionResult(metrics.ResultNoMatch)
		logger.Debug("injection anchor matched nothing", "path", d.Into, "placement", d.Placement.String())
	case inject.OutcomeApplied:
		g.recorder.IncInjectionResult(metrics.ResultInjected)
		if updated != current {
			record.Changed = true
			if err := g.fs.WriteFile(d.Into, updated); err != nil {
				return record, err
			}
			g.reporter.Injected(d.Into)
			logger.Info("injected", "path", d.Into, "placement", d.Placement.String())
		}
	}

	return record, nil
}

func withDocContext(err error, index int) error {
	if ge, ok := err.(*generrors.GenError); ok {
		ge.WithContext("document", index)
	}
	return err
}
