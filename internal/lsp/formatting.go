package lsp

import (
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/grindlemire/go-yew/internal/formatter"
	"github.com/grindlemire/go-yew/internal/log"
)

func (s *Server) textDocumentFormatting(ctx *glsp.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.Get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}
	log.Server("formatting %s", doc.URI)

	f := formatter.New()
	if tabSize, ok := intOption(params.Options, protocol.FormattingOptionTabSize); ok && tabSize > 0 {
		f.TabWidth = tabSize
		if spaces, _ := params.Options[protocol.FormattingOptionInsertSpaces].(bool); spaces {
			f.IndentString = strings.Repeat(" ", tabSize)
		}
	}

	formatted, err := f.Format(doc.Path, doc.Content)
	if err != nil {
		// The diagnostics already report the syntax error.
		log.Server("formatting %s: %v", doc.URI, err)
		return []protocol.TextEdit{}, nil
	}
	if formatted == doc.Content {
		return []protocol.TextEdit{}, nil
	}
	return []protocol.TextEdit{{
		Range:   wholeDocument(doc.Content),
		NewText: formatted,
	}}, nil
}

// wholeDocument returns the range covering all of content.
func wholeDocument(content string) protocol.Range {
	lines := strings.Split(content, "\n")
	last := len(lines) - 1
	return protocol.Range{
		End: protocol.Position{
			Line:      protocol.UInteger(last),
			Character: protocol.UInteger(len(lines[last])),
		},
	}
}

// intOption reads an integer formatting option, which arrives as a JSON
// number.
func intOption(opts protocol.FormattingOptions, key string) (int, bool) {
	switch v := opts[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case protocol.UInteger:
		return int(v), true
	case protocol.Integer:
		return int(v), true
	}
	return 0, false
}
