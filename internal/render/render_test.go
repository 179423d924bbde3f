package render

import (
	"testing"

	generrors "git.home.luguber.info/inful/scaffgen/internal/errors"
	"github.com/stretchr/testify/require"
)

func TestRender_VariableSubstitution_ExpandsValues(t *testing.T) {
	engine := NewEngine()

	out, err := engine.Render("hello {{.name}}", map[string]any{"name": "world"})
	require.NoError(t, err)
	require.Equal(t, "hello world", out)
}

func TestRender_InvalidExpression_ReturnsRenderError(t *testing.T) {
	engine := NewEngine()

	_, err := engine.Render("{{.name", nil)
	require.Error(t, err)
	require.True(t, generrors.IsCategory(err, generrors.CategoryRender))
}

func TestRender_MissingVariable_ReturnsRenderError(t *testing.T) {
	engine := NewEngine()

	_, err := engine.Render("{{.missing}}", map[string]any{"name": "x"})
	require.Error(t, err)
	require.True(t, generrors.IsCategory(err, generrors.CategoryRender))
}

func TestRender_RangeLoop_EmitsOneBlockPerElement(t *testing.T) {
	engine := NewEngine()

	out, err := engine.Render("{{range .items}}---\nto: out{{.}}.txt\n---\nbody {{.}}\n{{end}}",
		map[string]any{"items": []int{1, 2}})
	require.NoError(t, err)
	require.Contains(t, out, "to: out1.txt")
	require.Contains(t, out, "to: out2.txt")
}

func TestRender_Filters_ApplyInPipelines(t *testing.T) {
	engine := NewEngine()

	out, err := engine.Render("{{.name | snakeCase}} {{.name | pascalCase}} {{.name | plural}}",
		map[string]any{"name": "emailStats"})
	require.NoError(t, err)
	require.Equal(t, "email_stats EmailStats emailStatses", out)
}

func TestRender_AddFunc_RegistersCustomHelper(t *testing.T) {
	engine := NewEngine()
	engine.AddFunc("shout", func(s string) string { return s + "!" })

	out, err := engine.Render("{{.name | shout}}", map[string]any{"name": "go"})
	require.NoError(t, err)
	require.Equal(t, "go!", out)
}

func TestSnakeCase_HandlesCamelAndDelimiters(t *testing.T) {
	require.Equal(t, "email_stats", SnakeCase("EmailStats"))
	require.Equal(t, "email_stats", SnakeCase("email-stats"))
	require.Equal(t, "http_server", SnakeCase("HTTPServer"))
	require.Equal(t, "post", SnakeCase("post"))
}

func TestCamelAndPascalCase_ConvertIdentifiers(t *testing.T) {
	require.Equal(t, "emailStats", CamelCase("email_stats"))
	require.Equal(t, "EmailStats", PascalCase("email_stats"))
	require.Equal(t, "Post", PascalCase("post"))
}

func TestKebabCase_ConvertsIdentifiers(t *testing.T) {
	require.Equal(t, "email-stats", KebabCase("EmailStats"))
}

func TestTitleCase_UsesEnglishTitleRules(t *testing.T) {
	require.Equal(t, "Email Stats", TitleCase("email_stats"))
}

func TestPlural_AppliesEnglishRules(t *testing.T) {
	require.Equal(t, "posts", Plural("post"))
	require.Equal(t, "boxes", Plural("box"))
	require.Equal(t, "categories", Plural("category"))
	require.Equal(t, "days", Plural("day"))
}

func TestSingular_UndoesPlural(t *testing.T) {
	require.Equal(t, "post", Singular("posts"))
	require.Equal(t, "box", Singular("boxes"))
	require.Equal(t, "category", Singular("categories"))
	require.Equal(t, "address", Singular("address"))
}
