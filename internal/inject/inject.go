// Package inject computes file content mutations for injection directives.
//
// Apply is a pure function of (current text, directive) with no I/O, which
// keeps every placement variant unit-testable without filesystem fixtures.
// Anchors are best-effort: a pattern that compiles but matches nothing
// leaves the text unchanged, so one template can be applied to files whose
// content varies.
package inject

import (
	"strings"

	generrors "git.home.luguber.info/inful/scaffgen/internal/errors"
	"git.home.luguber.info/inful/scaffgen/internal/schema"
)

// Outcome classifies what Apply did with a directive.
type Outcome int

const (
	// OutcomeApplied means the placement ran against at least one match.
	// The resulting text may still equal the input.
	OutcomeApplied Outcome = iota

	// OutcomeSkippedGuard means skip_if matched and the directive was a no-op.
	OutcomeSkippedGuard

	// OutcomeNoMatch means the anchor matched nothing and the text is unchanged.
	OutcomeNoMatch
)

// String returns a label for report and log output.
func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeSkippedGuard:
		return "skipped"
	case OutcomeNoMatch:
		return "no_match"
	default:
		return "unknown"
	}
}

type insertionPoint int

const (
	pointBefore insertionPoint = iota
	pointAfter
)

type matchMode int

const (
	matchFirst matchMode = iota
	matchLast
	matchAll
)

// Apply returns the new content of a target file after running one
// directive against its current content. The skip_if guard is evaluated
// first for every placement variant.
func Apply(current string, d *schema.InjectionDirective) (string, Outcome, error) {
	if d.SkipIf != nil && d.SkipIf.MatchString(current) {
		return current, OutcomeSkippedGuard, nil
	}

	switch d.Placement {
	case schema.PlacementPrepend:
		lines, trailing := splitLines(current)
		return joinLines(append([]string{d.Content}, lines...), trailing), OutcomeApplied, nil
	case schema.PlacementAppend:
		lines, trailing := splitLines(current)
		return joinLines(append(lines, d.Content), trailing), OutcomeApplied, nil
	case schema.PlacementBefore:
		return insertAtMatches(current, d, pointBefore, matchFirst)
	case schema.PlacementBeforeLast:
		return insertAtMatches(current, d, pointBefore, matchLast)
	case schema.PlacementBeforeAll:
		return insertAtMatches(current, d, pointBefore, matchAll)
	case schema.PlacementAfter:
		return insertAtMatches(current, d, pointAfter, matchFirst)
	case schema.PlacementAfterLast:
		return insertAtMatches(current, d, pointAfter, matchLast)
	case schema.PlacementAfterAll:
		return insertAtMatches(current, d, pointAfter, matchAll)
	case schema.PlacementRemoveLines:
		return removeLines(current, d)
	case schema.PlacementReplace:
		return replaceFirst(current, d)
	case schema.PlacementReplaceAll:
		return replaceAll(current, d)
	default:
		return current, OutcomeNoMatch, generrors.Newf(generrors.CategoryInternal, generrors.SeverityFatal,
			"directive into %s has placement %s", d.Into, d.Placement)
	}
}

// insertAtMatches inserts content relative to matching lines. Matches are
// located in a single pass over the original lines, never against newly
// inserted content, so repeated anchors cannot compound.
func insertAtMatches(current string, d *schema.InjectionDirective, point insertionPoint, mode matchMode) (string, Outcome, error) {
	lines, trailing := splitLines(current)

	var matches []int
	for i, line := range lines {
		if d.Anchor.MatchString(line) {
			matches = append(matches, i)
		}
	}
	if len(matches) == 0 {
		return current, OutcomeNoMatch, nil
	}

	switch mode {
	case matchFirst:
		matches = matches[:1]
	case matchLast:
		matches = matches[len(matches)-1:]
	}

	out := make([]string, 0, len(lines)+len(matches))
	next := 0
	for i, line := range lines {
		if next >= len(matches) || matches[next] != i {
			out = append(out, line)
			continue
		}
		next++
		if d.Inline {
			out = append(out, spliceInline(line, d, point))
			continue
		}
		if point == pointBefore {
			out = append(out, d.Content, line)
		} else {
			out = append(out, line, d.Content)
		}
	}

	return joinLines(out, trailing), OutcomeApplied, nil
}

// spliceInline inserts content inside the matched line: at the match start
// for before, at the match end for after. No new line is created.
func spliceInline(line string, d *schema.InjectionDirective, point insertionPoint) string {
	loc := d.Anchor.FindStringIndex(line)
	if point == pointBefore {
		return line[:loc[0]] + d.Content + line[loc[0]:]
	}
	return line[:loc[1]] + d.Content + line[loc[1]:]
}

func removeLines(current string, d *schema.InjectionDirective) (string, Outcome, error) {
	lines, trailing := splitLines(current)

	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if !d.Anchor.MatchString(line) {
			kept = append(kept, line)
		}
	}
	if len(kept) == len(lines) {
		return current, OutcomeNoMatch, nil
	}
	return joinLines(kept, trailing), OutcomeApplied, nil
}

func replaceFirst(current string, d *schema.InjectionDirective) (string, Outcome, error) {
	loc := d.Anchor.FindStringIndex(current)
	if loc == nil {
		return current, OutcomeNoMatch, nil
	}
	return current[:loc[0]] + d.Content + current[loc[1]:], OutcomeApplied, nil
}

func replaceAll(current string, d *schema.InjectionDirective) (string, Outcome, error) {
	if !d.Anchor.MatchString(current) {
		return current, OutcomeNoMatch, nil
	}
	// Content is inserted verbatim, not as a replacement template, so
	// fragments containing $ are safe.
	return d.Anchor.ReplaceAllLiteralString(current, d.Content), OutcomeApplied, nil
}

// splitLines splits text into lines without terminators and remembers
// whether the text ended with a newline so joinLines can restore it.
func splitLines(text string) ([]string, bool) {
	trailing := strings.HasSuffix(text, "\n")
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n"), trailing
}

func joinLines(lines []string, trailing bool) string {
	out := strings.Join(lines, "\n")
	if trailing {
		out += "\n"
	}
	return out
}
