// Package schema defines the typed frontmatter model for generation
// templates: the per-document metadata and its injection directives.
//
// Frontmatter is authored as YAML. Decode validates the exactly-one
// placement rule and compiles all anchor patterns up front, so a directive
// that reaches the injection engine is always well formed.
package schema

import (
	"regexp"

	generrors "git.home.luguber.info/inful/scaffgen/internal/errors"
	"gopkg.in/yaml.v3"
)

// PlacementKind identifies how a directive positions its content relative
// to the target file.
type PlacementKind int

const (
	PlacementInvalid PlacementKind = iota
	PlacementPrepend
	PlacementAppend
	PlacementBefore
	PlacementBeforeLast
	PlacementBeforeAll
	PlacementAfter
	PlacementAfterLast
	PlacementAfterAll
	PlacementRemoveLines
	PlacementReplace
	PlacementReplaceAll
)

// String returns the frontmatter key for the placement kind.
func (k PlacementKind) String() string {
	switch k {
	case PlacementPrepend:
		return "prepend"
	case PlacementAppend:
		return "append"
	case PlacementBefore:
		return "before"
	case PlacementBeforeLast:
		return "before_last"
	case PlacementBeforeAll:
		return "before_all"
	case PlacementAfter:
		return "after"
	case PlacementAfterLast:
		return "after_last"
	case PlacementAfterAll:
		return "after_all"
	case PlacementRemoveLines:
		return "remove_lines"
	case PlacementReplace:
		return "replace"
	case PlacementReplaceAll:
		return "replace_all"
	default:
		return "invalid"
	}
}

// Anchored reports whether the placement needs an anchor pattern.
func (k PlacementKind) Anchored() bool {
	return k != PlacementPrepend && k != PlacementAppend
}

// InjectionDirective is one pattern-anchored edit of an existing file.
// Directives are immutable value objects, decoded fresh per generate call.
type InjectionDirective struct {
	// Into is the file the directive edits. It must already exist when the
	// directive is applied.
	Into string

	// Content is the fragment to insert or substitute. May be empty
	// (remove_lines ignores it entirely).
	Content string

	// Placement is the single placement variant for this directive.
	Placement PlacementKind

	// Anchor locates the line or span the placement acts on. Nil for
	// prepend and append.
	Anchor *regexp.Regexp

	// Inline splices content at the anchor match boundary inside the
	// matched line instead of inserting a new line. Only meaningful for
	// the before/after variants.
	Inline bool

	// SkipIf makes the whole directive a no-op when it matches the current
	// target content. This is the idempotency guard for re-runs.
	SkipIf *regexp.Regexp
}

// Metadata describes one rendered document: where its body goes and which
// existing files it edits.
type Metadata struct {
	// To is the output path for the document body.
	To string

	// SkipExists skips the whole document (body and injections) when To
	// already exists.
	SkipExists bool

	// SkipGlob skips the whole document when the glob matches at least one
	// existing path.
	SkipGlob string

	// Message is included in the generation report when the document
	// generates.
	Message string

	// Injections are applied strictly in listed order.
	Injections []*InjectionDirective
}

type rawInjection struct {
	Into        string `yaml:"into"`
	Content     string `yaml:"content"`
	Prepend     bool   `yaml:"prepend"`
	Append      bool   `yaml:"append"`
	Before      string `yaml:"before"`
	BeforeLast  string `yaml:"before_last"`
	BeforeAll   string `yaml:"before_all"`
	After       string `yaml:"after"`
	AfterLast   string `yaml:"after_last"`
	AfterAll    string `yaml:"after_all"`
	RemoveLines string `yaml:"remove_lines"`
	Replace     string `yaml:"replace"`
	ReplaceAll  string `yaml:"replace_all"`
	Inline      bool   `yaml:"inline"`
	SkipIf      string `yaml:"skip_if"`
}

type rawMetadata struct {
	To         string         `yaml:"to"`
	SkipExists bool           `yaml:"skip_exists"`
	SkipGlob   string         `yaml:"skip_glob"`
	Message    string         `yaml:"message"`
	Injections []rawInjection `yaml:"injections"`
}

// Decode parses a frontmatter block (without delimiters) into Metadata.
//
// It returns a schema error for malformed YAML, a missing output path, a
// directive without exactly one placement, or a missing injection target;
// and a pattern error when an anchor or skip_if regex fails to compile.
func Decode(text string) (*Metadata, error) {
	var raw rawMetadata
	if err := yaml.Unmarshal([]byte(text), &raw); err != nil {
		return nil, generrors.Wrap(err, generrors.CategorySchema, generrors.SeverityFatal, "parse frontmatter")
	}

	if raw.To == "" {
		return nil, generrors.New(generrors.CategorySchema, generrors.SeverityFatal, "frontmatter is missing required key 'to'")
	}

	meta := &Metadata{
		To:         raw.To,
		SkipExists: raw.SkipExists,
		SkipGlob:   raw.SkipGlob,
		Message:    raw.Message,
	}

	for i, ri := range raw.Injections {
		directive, err := decodeInjection(ri)
		if err != nil {
			if ge, ok := err.(*generrors.GenError); ok {
				ge.WithContext("directive", i)
			}
			return nil, err
		}
		meta.Injections = append(meta.Injections, directive)
	}

	return meta, nil
}

func decodeInjection(raw rawInjection) (*InjectionDirective, error) {
	if raw.Into == "" {
		return nil, generrors.New(generrors.CategorySchema, generrors.SeverityFatal, "injection is missing required key 'into'")
	}

	d := &InjectionDirective{
		Into:    raw.Into,
		Content: raw.Content,
		Inline:  raw.Inline,
	}

	type placement struct {
		kind    PlacementKind
		set     bool
		pattern string
	}
	placements := []placement{
		{PlacementPrepend, raw.Prepend, ""},
		{PlacementAppend, raw.Append, ""},
		{PlacementBefore, raw.Before != "", raw.Before},
		{PlacementBeforeLast, raw.BeforeLast != "", raw.BeforeLast},
		{PlacementBeforeAll, raw.BeforeAll != "", raw.BeforeAll},
		{PlacementAfter, raw.After != "", raw.After},
		{PlacementAfterLast, raw.AfterLast != "", raw.AfterLast},
		{PlacementAfterAll, raw.AfterAll != "", raw.AfterAll},
		{PlacementRemoveLines, raw.RemoveLines != "", raw.RemoveLines},
		{PlacementReplace, raw.Replace != "", raw.Replace},
		{PlacementReplaceAll, raw.ReplaceAll != "", raw.ReplaceAll},
	}

	for _, p := range placements {
		if !p.set {
			continue
		}
		if d.Placement != PlacementInvalid {
			return nil, generrors.Newf(generrors.CategorySchema, generrors.SeverityFatal,
				"injection into %s sets both %s and %s; exactly one placement is allowed",
				raw.Into, d.Placement, p.kind)
		}
		d.Placement = p.kind
		if p.kind.Anchored() {
			anchor, err := compilePattern(p.pattern, p.kind.String(), raw.Into)
			if err != nil {
				return nil, err
			}
			d.Anchor = anchor
		}
	}

	if d.Placement == PlacementInvalid {
		return nil, generrors.Newf(generrors.CategorySchema, generrors.SeverityFatal,
			"injection into %s has no placement; exactly one of prepend, append, before, before_last, before_all, after, after_last, after_all, remove_lines, replace, replace_all is required",
			raw.Into)
	}

	if raw.SkipIf != "" {
		skipIf, err := compilePattern(raw.SkipIf, "skip_if", raw.Into)
		if err != nil {
			return nil, err
		}
		d.SkipIf = skipIf
	}

	return d, nil
}

func compilePattern(pattern, key, into string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, generrors.Wrap(err, generrors.CategoryPattern, generrors.SeverityFatal,
			"invalid "+key+" pattern for injection into "+into).
			WithContext("pattern", pattern)
	}
	return re, nil
}
