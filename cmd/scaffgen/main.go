package main

import (
	"fmt"
	"log/slog"
	"os"

	"git.home.luguber.info/inful/scaffgen/cmd/scaffgen/commands"
	"git.home.luguber.info/inful/scaffgen/internal/version"
	"github.com/alecthomas/kong"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("scaffgen"),
		kong.Description("Template-driven file generation with pattern-anchored injection into existing files."),
		kong.Vars{"version": version.Version},
	)

	if err := ctx.Run(&commands.Global{Logger: slog.Default()}); err != nil {
		fmt.Fprintf(os.Stderr, "scaffgen: %v\n", err)
		os.Exit(1)
	}
}
