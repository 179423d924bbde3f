package render

import (
	"strings"
	"text/template"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Filters returns the standard template helper set: case conversions,
// pluralization, and plain upper/lower.
func Filters() template.FuncMap {
	return template.FuncMap{
		"snakeCase":  SnakeCase,
		"camelCase":  CamelCase,
		"pascalCase": PascalCase,
		"kebabCase":  KebabCase,
		"titleCase":  TitleCase,
		"plural":     Plural,
		"singular":   Singular,
		"upper":      strings.ToUpper,
		"lower":      strings.ToLower,
	}
}

// SnakeCase converts a name to lower snake_case.
func SnakeCase(s string) string {
	return strings.Join(splitWords(s), "_")
}

// KebabCase converts a name to lower kebab-case.
func KebabCase(s string) string {
	return strings.Join(splitWords(s), "-")
}

// CamelCase converts a name to lowerCamelCase.
func CamelCase(s string) string {
	words := splitWords(s)
	for i := 1; i < len(words); i++ {
		words[i] = capitalize(words[i])
	}
	return strings.Join(words, "")
}

// PascalCase converts a name to UpperCamelCase.
func PascalCase(s string) string {
	words := splitWords(s)
	for i := range words {
		words[i] = capitalize(words[i])
	}
	return strings.Join(words, "")
}

// TitleCase converts a name to space-separated Title Case.
func TitleCase(s string) string {
	return titleCaser.String(strings.Join(splitWords(s), " "))
}

// Plural applies basic English pluralization rules to the final word.
func Plural(s string) string {
	switch {
	case s == "":
		return s
	case hasAnySuffix(s, "s", "x", "z", "ch", "sh"):
		return s + "es"
	case strings.HasSuffix(s, "y") && len(s) > 1 && !isVowel(rune(s[len(s)-2])):
		return s[:len(s)-1] + "ies"
	default:
		return s + "s"
	}
}

// Singular undoes Plural for the common rule set.
func Singular(s string) string {
	switch {
	case strings.HasSuffix(s, "ies") && len(s) > 3:
		return s[:len(s)-3] + "y"
	case hasAnySuffix(s, "ses", "xes", "zes", "ches", "shes"):
		return s[:len(s)-2]
	case strings.HasSuffix(s, "s") && !strings.HasSuffix(s, "ss"):
		return s[:len(s)-1]
	default:
		return s
	}
}

// splitWords breaks an identifier into lowercase words on delimiters and
// camel-case boundaries, keeping acronym runs together (HTTPServer ->
// http, server).
func splitWords(s string) []string {
	var words []string
	var current []rune

	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = current[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || r == ' ' || r == '.' || r == '/':
			flush()
		case unicode.IsUpper(r):
			if len(current) > 0 {
				prevLower := !unicode.IsUpper(runes[i-1]) && unicode.IsLetter(runes[i-1])
				nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if prevLower || (unicode.IsUpper(runes[i-1]) && nextLower) {
					flush()
				}
			}
			current = append(current, unicode.ToLower(r))
		default:
			current = append(current, r)
		}
	}
	flush()

	return words
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}

func isVowel(r rune) bool {
	return strings.ContainsRune("aeiouAEIOU", r)
}
