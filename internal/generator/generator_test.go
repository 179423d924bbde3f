package generator

import (
	"testing"

	generrors "git.home.luguber.info/inful/scaffgen/internal/errors"
	"git.home.luguber.info/inful/scaffgen/internal/genfs"
	"git.home.luguber.info/inful/scaffgen/internal/render"
	"github.com/stretchr/testify/require"
)

// stubRenderer returns the template text unchanged, proving the renderer
// seam: the orchestrator never depends on expression evaluation.
type stubRenderer struct{}

func (stubRenderer) Render(text string, _ map[string]any) (string, error) {
	return text, nil
}

// writeSpy counts writes per path on top of a Mem driver.
type writeSpy struct {
	*genfs.Mem
	writes map[string]int
}

func newWriteSpy(mem *genfs.Mem) *writeSpy {
	return &writeSpy{Mem: mem, writes: map[string]int{}}
}

func (w *writeSpy) WriteFile(path, content string) error {
	w.writes[path]++
	return w.Mem.WriteFile(path, content)
}

func TestGenerate_SingleDocument_WritesBody(t *testing.T) {
	fs := genfs.NewMem()
	g := New(fs, stubRenderer{}, WithReporter(SilentReporter()))

	report, err := g.Generate("---\nto: out.txt\n---\nhello\n", nil)
	require.NoError(t, err)
	require.NotEmpty(t, report.RunID)
	require.Len(t, report.Documents, 1)
	require.Equal(t, DocumentCreated, report.Documents[0].Outcome)

	content, err := fs.ReadFile("out.txt")
	require.NoError(t, err)
	require.Equal(t, "hello", content)
}

func TestGenerate_ExistingTarget_IsOverwritten(t *testing.T) {
	fs := genfs.NewMem().Seed("out.txt", "old")
	g := New(fs, stubRenderer{}, WithReporter(SilentReporter()))

	report, err := g.Generate("---\nto: out.txt\n---\nnew\n", nil)
	require.NoError(t, err)
	require.Equal(t, DocumentOverwritten, report.Documents[0].Outcome)

	content, _ := fs.ReadFile("out.txt")
	require.Equal(t, "new", content)
}

func TestGenerate_SkipExists_LeavesFileAndInjectionsUntouched(t *testing.T) {
	fs := genfs.NewMem().
		Seed("out.txt", "old").
		Seed("routes.go", "routes\n")
	g := New(fs, stubRenderer{}, WithReporter(SilentReporter()))

	template := `---
to: out.txt
skip_exists: true
injections:
  - into: routes.go
    content: added
    append: true
---
new
`
	report, err := g.Generate(template, nil)
	require.NoError(t, err)
	require.Equal(t, DocumentSkipped, report.Documents[0].Outcome)
	require.Empty(t, report.Documents[0].Injections)

	content, _ := fs.ReadFile("out.txt")
	require.Equal(t, "old", content)
	content, _ = fs.ReadFile("routes.go")
	require.Equal(t, "routes\n", content)
}

func TestGenerate_SkipGlobMatch_SkipsDocument(t *testing.T) {
	fs := genfs.NewMem().Seed("models/post_v2.go", "x")
	g := New(fs, stubRenderer{}, WithReporter(SilentReporter()))

	report, err := g.Generate("---\nto: models/post.go\nskip_glob: \"models/post*.go\"\n---\nbody\n", nil)
	require.NoError(t, err)
	require.Equal(t, DocumentSkipped, report.Documents[0].Outcome)
	require.False(t, fs.Exists("models/post.go"))
}

func TestGenerate_MultiDocument_EachDocumentTouchesOnlyItsOwnTargets(t *testing.T) {
	fs := genfs.NewMem().
		Seed("reg1.txt", "registry one\n").
		Seed("reg2.txt", "registry two\n")
	g := New(fs, render.NewEngine(), WithReporter(SilentReporter()))

	template := `{{range .items}}---
to: out{{.}}.txt
injections:
  - into: reg{{.}}.txt
    content: "entry {{.}}"
    append: true
---
content {{.}}
{{end}}`

	report, err := g.Generate(template, map[string]any{"items": []int{1, 2}})
	require.NoError(t, err)
	require.Len(t, report.Documents, 2)

	c1, _ := fs.ReadFile("out1.txt")
	c2, _ := fs.ReadFile("out2.txt")
	require.Equal(t, "content 1", c1)
	require.Equal(t, "content 2", c2)

	r1, _ := fs.ReadFile("reg1.txt")
	r2, _ := fs.ReadFile("reg2.txt")
	require.Equal(t, "registry one\nentry 1\n", r1)
	require.Equal(t, "registry two\nentry 2\n", r2)
}

func TestGenerate_InjectionTargetMissing_ReturnsTargetErrorWithContext(t *testing.T) {
	fs := genfs.NewMem()
	g := New(fs, stubRenderer{}, WithReporter(SilentReporter()))

	template := `---
to: out.txt
injections:
  - into: missing.go
    content: x
    append: true
---
body
`
	_, err := g.Generate(template, nil)
	require.Error(t, err)
	require.True(t, generrors.IsCategory(err, generrors.CategoryTarget))

	ge := err.(*generrors.GenError)
	require.Equal(t, 0, ge.Context["document"])
	require.Equal(t, 0, ge.Context["directive"])
}

func TestGenerate_UnchangedInjection_DoesNotRewriteTarget(t *testing.T) {
	spy := newWriteSpy(genfs.NewMem().Seed("target.txt", "alpha\n"))
	g := New(spy, stubRenderer{}, WithReporter(SilentReporter()))

	template := `---
to: out.txt
injections:
  - into: target.txt
    content: x
    before: nonexistent
---
body
`
	report, err := g.Generate(template, nil)
	require.NoError(t, err)
	require.Zero(t, spy.writes["target.txt"])
	require.Equal(t, 1, spy.writes["out.txt"])

	inj := report.Documents[0].Injections[0]
	require.Equal(t, "no_match", inj.Result)
	require.False(t, inj.Changed)
}

func TestGenerate_SkipIfGuard_MakesSecondRunANoOp(t *testing.T) {
	spy := newWriteSpy(genfs.NewMem().Seed("routes.go", "fn routes() {\n}\n"))
	g := New(spy, stubRenderer{}, WithReporter(SilentReporter()))

	template := `---
to: out.txt
injections:
  - into: routes.go
    content: "  add(post);"
    after: "fn routes"
    skip_if: 'add\(post\);'
---
body
`
	_, err := g.Generate(template, nil)
	require.NoError(t, err)
	first, _ := spy.ReadFile("routes.go")
	require.Equal(t, "fn routes() {\n  add(post);\n}\n", first)

	report, err := g.Generate(template, nil)
	require.NoError(t, err)
	second, _ := spy.ReadFile("routes.go")
	require.Equal(t, first, second)
	require.Equal(t, 1, spy.writes["routes.go"])
	require.Equal(t, "skipped", report.Documents[0].Injections[0].Result)
}

func TestGenerate_DirectivesApplyInListedOrder(t *testing.T) {
	fs := genfs.NewMem().Seed("file.txt", "start\n")
	g := New(fs, stubRenderer{}, WithReporter(SilentReporter()))

	template := `---
to: out.txt
injections:
  - into: file.txt
    content: first
    append: true
  - into: file.txt
    content: second
    after: first
---
body
`
	_, err := g.Generate(template, nil)
	require.NoError(t, err)

	content, _ := fs.ReadFile("file.txt")
	require.Equal(t, "start\nfirst\nsecond\n", content)
}

func TestGenerate_RenderFailure_AbortsBeforeAnyWrite(t *testing.T) {
	spy := newWriteSpy(genfs.NewMem())
	g := New(spy, render.NewEngine(), WithReporter(SilentReporter()))

	_, err := g.Generate("---\nto: {{.broken\n---\nbody\n", nil)
	require.Error(t, err)
	require.True(t, generrors.IsCategory(err, generrors.CategoryRender))
	require.Empty(t, spy.writes)
}

func TestGenerate_Messages_CollectsGeneratedDocumentsOnly(t *testing.T) {
	fs := genfs.NewMem().Seed("skipped.txt", "x")
	g := New(fs, stubRenderer{}, WithReporter(SilentReporter()))

	template := `---
to: one.txt
message: "one done"
---
a
---
to: skipped.txt
skip_exists: true
message: "never shown"
---
b
---
to: two.txt
message: "two done"
---
c
`
	report, err := g.Generate(template, nil)
	require.NoError(t, err)
	require.Equal(t, []string{"one done", "two done"}, report.Messages())
}

func TestGenerateFile_ReadsTemplateThroughDriver(t *testing.T) {
	fs := genfs.NewMem().Seed("tpl.t", "---\nto: out.txt\n---\nbody\n")
	g := New(fs, stubRenderer{}, WithReporter(SilentReporter()))

	report, err := g.GenerateFile("tpl.t", nil)
	require.NoError(t, err)
	require.Len(t, report.Documents, 1)
	require.True(t, fs.Exists("out.txt"))

	_, err = g.GenerateFile("absent.t", nil)
	require.Error(t, err)
}

func TestGenerate_OverlayDriver_KeepsDiskUntouched(t *testing.T) {
	base := genfs.NewMem().Seed("routes.go", "routes\n")
	overlay := genfs.NewOverlay(base)
	g := New(overlay, stubRenderer{}, WithReporter(SilentReporter()))

	template := `---
to: out.txt
injections:
  - into: routes.go
    content: entry
    append: true
---
body
`
	_, err := g.Generate(template, nil)
	require.NoError(t, err)

	require.False(t, base.Exists("out.txt"))
	content, _ := base.ReadFile("routes.go")
	require.Equal(t, "routes\n", content)

	written := overlay.Written()
	require.Equal(t, "body", written["out.txt"])
	require.Equal(t, "routes\nentry\n", written["routes.go"])
}
