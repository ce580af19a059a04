package lsp

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/grindlemire/go-yew/internal/log"
)

const serverName = "yew"

// Server is a language server for .gsx files. It publishes diagnostics
// and formats documents.
type Server struct {
	docs    *DocumentManager
	handler protocol.Handler
	server  *server.Server
	version string
}

// NewServer creates a language server that reports its version as version.
func NewServer(version string) *Server {
	s := &Server{
		docs:    NewDocumentManager(),
		version: version,
	}

	s.handler = protocol.Handler{
		Initialize:             s.initialize,
		Initialized:            s.initialized,
		Shutdown:               s.shutdown,
		SetTrace:               s.setTrace,
		TextDocumentDidOpen:    s.textDocumentDidOpen,
		TextDocumentDidChange:  s.textDocumentDidChange,
		TextDocumentDidClose:   s.textDocumentDidClose,
		TextDocumentDidSave:    s.textDocumentDidSave,
		TextDocumentFormatting: s.textDocumentFormatting,
	}
	s.server = server.NewServer(&s.handler, serverName, log.Enabled())
	return s
}

// RunStdio serves the protocol over stdin and stdout until the client exits.
func (s *Server) RunStdio() error {
	log.Server("starting %s %s on stdio", serverName, s.version)
	return s.server.RunStdio()
}

func (s *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := s.handler.CreateServerCapabilities()
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    serverName,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Server("client initialized")
	return nil
}

func (s *Server) shutdown(ctx *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (s *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := params.TextDocument
	log.Server("didOpen %s", doc.URI)
	s.publish(ctx, s.docs.Open(doc.URI, doc.Text, int(doc.Version)))
	return nil
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	whole, ok := change.(protocol.TextDocumentContentChangeEventWhole)
	if !ok {
		log.Server("ignoring incremental change to %s", params.TextDocument.URI)
		return nil
	}
	s.publish(ctx, s.docs.Update(params.TextDocument.URI, whole.Text, int(params.TextDocument.Version)))
	return nil
}

func (s *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	uri := params.TextDocument.URI
	doc := s.docs.Get(uri)
	if doc == nil {
		return nil
	}
	content := doc.Content
	if params.Text != nil {
		content = *params.Text
	}
	s.publish(ctx, s.docs.Update(uri, content, doc.Version))
	return nil
}

func (s *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI
	refreshed := s.docs.Close(uri)
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: []protocol.Diagnostic{},
	})
	s.publish(ctx, refreshed)
	return nil
}

// publish sends the current diagnostics of each document.
func (s *Server) publish(ctx *glsp.Context, docs []*Document) {
	for _, doc := range docs {
		version := protocol.UInteger(doc.Version)
		ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
			URI:         doc.URI,
			Version:     &version,
			Diagnostics: toDiagnostics(doc.Content, doc.Errors),
		})
		log.Debug("published %d diagnostic(s) for %s", len(doc.Errors), doc.URI)
	}
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
