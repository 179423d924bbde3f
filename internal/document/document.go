// Package document splits rendered template output into frontmatter/body
// documents.
//
// A rendered template holds one or more documents, each headed by a
// frontmatter block between `---` delimiter lines. The splitter only scans
// delimiter lines in already-rendered text; a template that emits several
// documents does so by looping in the template itself before rendering.
package document

import (
	"strings"

	generrors "git.home.luguber.info/inful/scaffgen/internal/errors"
	"git.home.luguber.info/inful/scaffgen/internal/schema"
)

// Document is one decoded (metadata, body) pair in rendering order.
type Document struct {
	// Index is the zero-based position of the document in the template
	// output, used for error context.
	Index int

	Meta *schema.Metadata

	// Body is the document text after the closing delimiter, trimmed of
	// surrounding blank lines.
	Body string
}

// DecodeFunc turns a raw frontmatter block into Metadata. The production
// decoder is schema.Decode; tests may substitute a stub.
type DecodeFunc func(text string) (*schema.Metadata, error)

// Split partitions rendered template output into documents.
//
// A delimiter is a line consisting solely of `---`. The delimiter before
// the first frontmatter block may be omitted. A frontmatter block without
// a following body part is a document error.
func Split(rendered string, decode DecodeFunc) ([]Document, error) {
	parts := partition(rendered)
	if len(parts) == 0 {
		return nil, nil
	}
	if len(parts)%2 != 0 {
		return nil, generrors.New(generrors.CategoryDocument, generrors.SeverityFatal,
			"cannot split document into frontmatter and body: unbalanced delimiters").
			WithContext("document", len(parts)/2)
	}

	docs := make([]Document, 0, len(parts)/2)
	for i := 0; i+1 < len(parts); i += 2 {
		index := i / 2
		meta, err := decode(parts[i])
		if err != nil {
			if ge, ok := err.(*generrors.GenError); ok {
				ge.WithContext("document", index)
			}
			return nil, err
		}
		docs = append(docs, Document{Index: index, Meta: meta, Body: parts[i+1]})
	}
	return docs, nil
}

// partition splits text on delimiter lines and drops blank chunks, so a
// leading delimiter does not produce an empty first part.
func partition(text string) []string {
	var parts []string
	var current []string

	flush := func() {
		chunk := strings.TrimSpace(strings.Join(current, "\n"))
		if chunk != "" {
			parts = append(parts, chunk)
		}
		current = current[:0]
	}

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimRight(line, "\r") == "---" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()

	return parts
}
