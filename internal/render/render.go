// Package render evaluates template expressions in raw template text.
//
// The generator depends only on the Renderer interface; the shipped Engine
// uses text/template with case-conversion and pluralization helpers, but a
// caller can substitute any implementation (tests use a pass-through stub).
package render

import (
	"bytes"
	"text/template"

	generrors "git.home.luguber.info/inful/scaffgen/internal/errors"
)

// Renderer expands template expressions against a set of variables.
type Renderer interface {
	Render(text string, vars map[string]any) (string, error)
}

// Engine is the text/template based Renderer. Unknown variables are render
// errors rather than silently expanding to "<no value>".
type Engine struct {
	funcs template.FuncMap
}

// NewEngine creates an Engine with the standard filter set registered.
func NewEngine() *Engine {
	return &Engine{funcs: Filters()}
}

// AddFunc registers an additional template helper, overriding a standard
// filter of the same name.
func (e *Engine) AddFunc(name string, fn any) {
	e.funcs[name] = fn
}

// Render parses and executes text as a template with vars as the data root.
func (e *Engine) Render(text string, vars map[string]any) (string, error) {
	tpl, err := template.New("template").Funcs(e.funcs).Option("missingkey=error").Parse(text)
	if err != nil {
		return "", generrors.Wrap(err, generrors.CategoryRender, generrors.SeverityFatal, "parse template")
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, vars); err != nil {
		return "", generrors.Wrap(err, generrors.CategoryRender, generrors.SeverityFatal, "render template")
	}
	return buf.String(), nil
}
