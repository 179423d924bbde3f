package commands

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"git.home.luguber.info/inful/scaffgen/internal/generator"
	"git.home.luguber.info/inful/scaffgen/internal/genfs"
	"git.home.luguber.info/inful/scaffgen/internal/metrics"
	"git.home.luguber.info/inful/scaffgen/internal/render"
	"git.home.luguber.info/inful/scaffgen/internal/vars"
	"git.home.luguber.info/inful/scaffgen/internal/watch"
	prom "github.com/prometheus/client_golang/prometheus"
)

// WatchCmd implements the 'watch' command: regenerate on template change.
type WatchCmd struct {
	Template    string        `arg:"" help:"Path to the template file"`
	Vars        string        `help:"YAML file with template variables"`
	Set         []string      `help:"Set a template variable (key=value, repeatable)" placeholder:"key=value"`
	Root        string        `help:"Resolve relative output and injection paths against this directory"`
	Debounce    time.Duration `default:"500ms" help:"Settle time before regenerating after a change"`
	MetricsAddr string        `name:"metrics-addr" help:"Serve Prometheus metrics on this address"`
}

func (w *WatchCmd) Run(_ *Global, _ *CLI) error {
	variables, err := vars.Load(w.Vars, w.Set)
	if err != nil {
		return err
	}

	var recorder metrics.Recorder = metrics.NoopRecorder{}
	if w.MetricsAddr != "" {
		reg := prom.NewRegistry()
		recorder = metrics.NewPrometheusRecorder(reg)
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", metrics.HTTPHandler(reg))
			slog.Info("serving metrics", "addr", w.MetricsAddr)
			if err := http.ListenAndServe(w.MetricsAddr, mux); err != nil {
				slog.Error("metrics listener failed", "error", err)
			}
		}()
	}

	gen := generator.New(genfs.NewOS(w.Root), render.NewEngine(), generator.WithRecorder(recorder))

	regenerate := func() {
		templateText, err := os.ReadFile(w.Template)
		if err != nil {
			slog.Error("read template failed", "path", w.Template, "error", err)
			return
		}
		// A failed run keeps watching: the author is mid-edit and the
		// next save gets another chance.
		if _, err := gen.Generate(string(templateText), variables); err != nil {
			slog.Error("generation failed", "path", w.Template, "error", err)
		}
	}

	regenerate()

	watcher, err := watch.New(w.Template, w.Debounce)
	if err != nil {
		return err
	}
	defer watcher.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := watcher.Run(ctx, regenerate); err != nil {
		return fmt.Errorf("watch %s: %w", w.Template, err)
	}
	return nil
}
