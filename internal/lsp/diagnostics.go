package lsp

import (
	"strings"
	"unicode"
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/grindlemire/go-yew/internal/yewgen"
)

const diagnosticSource = "gsx"

// toDiagnostics converts compiler errors to LSP diagnostics. Positions are
// 1-based in the compiler and 0-based in LSP; an error without a position
// is reported at the start of the document. Each range spans the word the
// error points at, or one character when there is none.
func toDiagnostics(content string, errs []*yewgen.Error) []protocol.Diagnostic {
	lines := strings.Split(content, "\n")
	severity := protocol.DiagnosticSeverityError
	source := diagnosticSource

	out := make([]protocol.Diagnostic, 0, len(errs))
	for _, e := range errs {
		message := e.Message
		if e.Hint != "" {
			message += " (" + e.Hint + ")"
		}
		out = append(out, protocol.Diagnostic{
			Range:    errorRange(lines, e.Pos),
			Severity: &severity,
			Source:   &source,
			Message:  message,
		})
	}
	return out
}

func errorRange(lines []string, pos yewgen.Position) protocol.Range {
	if !pos.IsValid() {
		return protocol.Range{}
	}
	line := pos.Line - 1
	char := max(pos.Column-1, 0)
	length := 1
	if line < len(lines) && char < len(lines[line]) {
		if n := wordLength(lines[line][char:]); n > 0 {
			length = n
		}
	}
	start := protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(char)}
	end := protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(char + length)}
	return protocol.Range{Start: start, End: end}
}

// wordLength returns the byte length of the identifier-like run at the
// start of s. A leading '<' or '</' is included so tag errors cover the
// tag name.
func wordLength(s string) int {
	n := 0
	for _, prefix := range []string{"</", "<"} {
		if strings.HasPrefix(s, prefix) {
			n = len(prefix)
			break
		}
	}
	for n < len(s) {
		r, size := utf8.DecodeRuneInString(s[n:])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-' {
			break
		}
		n += size
	}
	return n
}
