package commands

import (
	"fmt"
	"os"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Path  string `arg:"" optional:"" default:"template.t" help:"Where to write the starter template"`
	Force bool   `help:"Overwrite an existing file"`
}

const starterTemplate = `---
to: greetings/{{.name | snakeCase}}.txt
message: "greeting for {{.name}} generated"
# skip_exists: true
# injections:
#   - into: greetings/index.txt
#     content: "{{.name | snakeCase}}"
#     append: true
#     skip_if: "{{.name | snakeCase}}"
---
Hello, {{.name | pascalCase}}!
`

func (i *InitCmd) Run(_ *Global, _ *CLI) error {
	if _, err := os.Stat(i.Path); err == nil && !i.Force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", i.Path)
	}

	if err := os.WriteFile(i.Path, []byte(starterTemplate), 0o600); err != nil {
		return fmt.Errorf("write starter template: %w", err)
	}
	fmt.Printf("wrote starter template to %s\n", i.Path)
	fmt.Println("try: scaffgen generate " + i.Path + " --set name=world")
	return nil
}
