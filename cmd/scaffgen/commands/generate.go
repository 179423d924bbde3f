package commands

import (
	"fmt"
	"os"
	"sort"

	"git.home.luguber.info/inful/scaffgen/internal/generator"
	"git.home.luguber.info/inful/scaffgen/internal/genfs"
	"git.home.luguber.info/inful/scaffgen/internal/render"
	"git.home.luguber.info/inful/scaffgen/internal/vars"
)

// GenerateCmd implements the 'generate' command: one template, one run.
type GenerateCmd struct {
	Template string   `arg:"" help:"Path to the template file"`
	Vars     string   `help:"YAML file with template variables"`
	Set      []string `help:"Set a template variable (key=value, repeatable)" placeholder:"key=value"`
	Root     string   `help:"Resolve relative output and injection paths against this directory"`
	DryRun   bool     `name:"dry-run" help:"Render and report without writing any file"`
}

func (g *GenerateCmd) Run(_ *Global, _ *CLI) error {
	variables, err := vars.Load(g.Vars, g.Set)
	if err != nil {
		return err
	}

	templateText, err := os.ReadFile(g.Template)
	if err != nil {
		return fmt.Errorf("read template %s: %w", g.Template, err)
	}

	var driver genfs.Driver = genfs.NewOS(g.Root)
	var overlay *genfs.Overlay
	if g.DryRun {
		overlay = genfs.NewOverlay(driver)
		driver = overlay
	}

	opts := []generator.Option{}
	if g.DryRun {
		opts = append(opts, generator.WithReporter(generator.SilentReporter()))
	}

	gen := generator.New(driver, render.NewEngine(), opts...)
	report, err := gen.Generate(string(templateText), variables)
	if err != nil {
		return err
	}

	if g.DryRun {
		fmt.Println("dry run, nothing was written")
		written := overlay.Written()
		paths := make([]string, 0, len(written))
		for path := range written {
			paths = append(paths, path)
		}
		sort.Strings(paths)
		for _, path := range paths {
			fmt.Printf("would write: %s\n", path)
		}
	}

	for _, message := range report.Messages() {
		fmt.Println(message)
	}
	return nil
}
