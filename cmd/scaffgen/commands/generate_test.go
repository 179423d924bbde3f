package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const modelTemplate = `---
to: models/{{.name | snakeCase}}.go
message: "model {{.name}} generated"
injections:
  - into: registry.txt
    content: "{{.name | snakeCase}}"
    append: true
    skip_if: "{{.name | snakeCase}}"
---
package models

type {{.name | pascalCase}} struct {}
`

func TestGenerateCmd_EndToEnd_WritesBodyAndInjects(t *testing.T) {
	dir := t.TempDir()
	tpl := filepath.Join(dir, "model.t")
	require.NoError(t, os.WriteFile(tpl, []byte(modelTemplate), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "registry.txt"), []byte("# models\n"), 0o600))

	cmd := &GenerateCmd{Template: tpl, Root: dir, Set: []string{"name=emailStats"}}
	require.NoError(t, cmd.Run(&Global{}, &CLI{}))

	body, err := os.ReadFile(filepath.Join(dir, "models", "email_stats.go"))
	require.NoError(t, err)
	require.Contains(t, string(body), "type EmailStats struct {}")

	registry, err := os.ReadFile(filepath.Join(dir, "registry.txt"))
	require.NoError(t, err)
	require.Equal(t, "# models\nemail_stats\n", string(registry))

	// A second run is idempotent thanks to skip_if.
	require.NoError(t, cmd.Run(&Global{}, &CLI{}))
	registry, err = os.ReadFile(filepath.Join(dir, "registry.txt"))
	require.NoError(t, err)
	require.Equal(t, "# models\nemail_stats\n", string(registry))
}

func TestGenerateCmd_DryRun_WritesNothing(t *testing.T) {
	dir := t.TempDir()
	tpl := filepath.Join(dir, "model.t")
	require.NoError(t, os.WriteFile(tpl, []byte(modelTemplate), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "registry.txt"), []byte("# models\n"), 0o600))

	cmd := &GenerateCmd{Template: tpl, Root: dir, Set: []string{"name=post"}, DryRun: true}
	require.NoError(t, cmd.Run(&Global{}, &CLI{}))

	require.NoFileExists(t, filepath.Join(dir, "models", "post.go"))
	registry, err := os.ReadFile(filepath.Join(dir, "registry.txt"))
	require.NoError(t, err)
	require.Equal(t, "# models\n", string(registry))
}

func TestGenerateCmd_MissingTemplate_ReturnsError(t *testing.T) {
	cmd := &GenerateCmd{Template: filepath.Join(t.TempDir(), "absent.t")}
	require.Error(t, cmd.Run(&Global{}, &CLI{}))
}

func TestInitCmd_WritesStarterAndRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "template.t")

	cmd := &InitCmd{Path: path}
	require.NoError(t, cmd.Run(&Global{}, &CLI{}))
	require.FileExists(t, path)

	require.Error(t, cmd.Run(&Global{}, &CLI{}))

	cmd.Force = true
	require.NoError(t, cmd.Run(&Global{}, &CLI{}))
}
