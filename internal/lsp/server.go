package lsp

import (
	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
)

const serverName = "swatchkit-lsp"

var log = commonlog.GetLogger("swatchkit.lsp")

type Server struct {
	handler protocol.Handler
	docs    *DocumentStore
	version string
}

func NewServer(version string) *Server {
	s := &Server{
		docs:    NewDocumentStore(),
		version: version,
	}

	s.handler = protocol.Handler{
		Initialize:                    s.initialize,
		Initialized:                   s.initialized,
		Shutdown:                      s.shutdown,
		SetTrace:                      s.setTrace,
		TextDocumentDidOpen:           s.textDocumentDidOpen,
		TextDocumentDidChange:         s.textDocumentDidChange,
		TextDocumentDidClose:          s.textDocumentDidClose,
		TextDocumentHover:             s.textDocumentHover,
		TextDocumentColor:             s.textDocumentDocumentColor,
		TextDocumentColorPresentation: s.textDocumentColorPresentation,
		TextDocumentFormatting:        s.textDocumentFormatting,
	}

	return s
}

// Run serves the protocol over stdio until the client disconnects. Logging
// is configured by the caller.
func (s *Server) Run() error {
	srv := server.NewServer(&s.handler, serverName, false)
	return srv.RunStdio()
}

func (s *Server) initialize(_ *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := s.handler.CreateServerCapabilities()

	syncKind := protocol.TextDocumentSyncKindFull
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: &protocol.True,
		Change:    &syncKind,
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    serverName,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(_ *glsp.Context, _ *protocol.InitializedParams) error {
	return nil
}

func (s *Server) shutdown(_ *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (s *Server) setTrace(_ *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Debugf("opened %s", uri)
	publishDiagnostics(ctx, uri, s.docs.Open(string(uri), params.TextDocument.Text))
	return nil
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	for _, change := range params.ContentChanges {
		if c, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			publishDiagnostics(ctx, uri, s.docs.Update(string(uri), c.Text))
		}
	}
	return nil
}

func (s *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Debugf("closed %s", uri)
	s.docs.Close(string(uri))
	// Clear the diagnostics of the closed document.
	publishDiagnostics(ctx, uri, &AnalysisResult{})
	return nil
}

func (s *Server) getResult(uri string) *AnalysisResult {
	return s.docs.Result(uri)
}

func publishDiagnostics(ctx *glsp.Context, uri protocol.DocumentUri, result *AnalysisResult) {
	diagnostics := result.Diagnostics
	if diagnostics == nil {
		diagnostics = []protocol.Diagnostic{}
	}
	log.Debugf("%s: %d diagnostics", uri, len(diagnostics))
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}
