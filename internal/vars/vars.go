// Package vars builds the variable map handed to the renderer from the
// CLI's inputs: optional .env files, an optional YAML vars file, and
// key=value overrides. Later sources win.
package vars

import (
	"os"
	"strings"

	generrors "git.home.luguber.info/inful/scaffgen/internal/errors"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// envFiles are probed in order; the first one that parses is used.
var envFiles = []string{".env", ".env.local"}

// Load merges variables for one generation run.
//
// The env map from a .env/.env.local file (if any) is exposed to templates
// under the "env" key. varsFile is an optional YAML mapping. sets are
// key=value pairs that override everything else.
func Load(varsFile string, sets []string) (map[string]any, error) {
	merged := map[string]any{}

	if env := loadEnvFile(); len(env) > 0 {
		merged["env"] = env
	}

	if varsFile != "" {
		fromFile, err := loadVarsFile(varsFile)
		if err != nil {
			return nil, err
		}
		for key, value := range fromFile {
			merged[key] = value
		}
	}

	for _, pair := range sets {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, generrors.Newf(generrors.CategorySchema, generrors.SeverityFatal,
				"invalid --set value %q, expected key=value", pair)
		}
		merged[key] = value
	}

	return merged, nil
}

func loadEnvFile() map[string]string {
	for _, path := range envFiles {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		env, err := godotenv.Read(path)
		if err != nil {
			continue
		}
		return env
	}
	return nil
}

func loadVarsFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, generrors.Wrap(err, generrors.CategoryFileSystem, generrors.SeverityFatal, "read vars file").
			WithContext("path", path)
	}

	var fields map[string]any
	if err := yaml.Unmarshal(data, &fields); err != nil {
		return nil, generrors.Wrap(err, generrors.CategorySchema, generrors.SeverityFatal, "parse vars file").
			WithContext("path", path)
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return fields, nil
}
