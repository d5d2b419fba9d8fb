// Copyright (c) 2026 Groqscribe Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package mcp

// In this file: MCP server construction and transport management.

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"

	"github.com/groqscribe/groqscribe/internal/transcribe"
)

const (
	serverName    = "groqscribe"
	serverVersion = "1.0.0"
)

// Transport selects how the MCP server communicates with its client.
type Transport string

const (
	// TransportStdio uses stdin/stdout for communication (default, suitable
	// for local agent integrations such as Claude Desktop).
	TransportStdio Transport = "stdio"
	// TransportHTTP uses Streamable HTTP transport (suitable for remote
	// agents or when multiple concurrent clients are needed).
	TransportHTTP Transport = "http"
)

// Service is the transcription facade the tools call into.  It is satisfied
// by *transcribe.Service.
type Service interface {
	TranscribeFile(ctx context.Context, path, apiKey string) (string, error)
	TranscribeURL(ctx context.Context, url, apiKey string) (string, error)
}

// Server wraps an MCP server and the transcription service it exposes.
type Server struct {
	mcp    *mcpsrv.MCPServer
	svc    Service
	logger *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger.  A nil logger falls back to slog.Default().
func WithLogger(lg *slog.Logger) Option {
	return func(s *Server) {
		if lg != nil {
			s.logger = lg
		}
	}
}

// New creates a new MCP server backed by the given transcription service.
// The server is populated with all available tools but does not start
// listening until one of the Serve* methods is called.
func New(svc Service, opts ...Option) *Server {
	s := &Server{
		svc:    svc,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	mcpServer := mcpsrv.NewMCPServer(
		serverName,
		serverVersion,
		mcpsrv.WithInstructions(instructions()),
	)

	// Register all tools.
	for _, t := range s.tools() {
		mcpServer.AddTool(t.Tool, t.Handler)
	}

	s.mcp = mcpServer
	return s
}

// instructions returns the server instructions shown to the connecting agent.
func instructions() string {
	return fmt.Sprintf(`You are connected to a Groqscribe MCP server.

It transcribes spoken audio and video content to text using Groq's hosted
Whisper models.  Available tools:
- transcribe_audio: transcribe a local audio/video file.
- transcribe_audio_from_url: transcribe media referenced by an http(s) URL.
- list_supported_formats: discover accepted formats and the size limit.

Local files must not exceed %s.  Supported formats: %s.
The spoken language is detected automatically.  Transcripts are returned as
plain text and are never stored on the server.
`, humanize.IBytes(transcribe.MaxFileSize), strings.Join(transcribe.SupportedFormats(), ", "))
}

// ServeStdio runs the MCP server over stdin/stdout until ctx is cancelled.
// This is the standard transport used by local agent integrations.
func (s *Server) ServeStdio(ctx context.Context) error {
	srv := mcpsrv.NewStdioServer(s.mcp)
	s.logger.InfoContext(ctx, "mcp server listening on stdio")
	if err := srv.Listen(ctx, os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
			return nil
		}
		return fmt.Errorf("mcp stdio server error: %w", err)
	}
	return nil
}

// ServeHTTP runs the MCP server as a Streamable HTTP server on addr until
// ctx is cancelled.  addr should be a host:port string such as "127.0.0.1:8487".
func (s *Server) ServeHTTP(ctx context.Context, addr string) error {
	httpSrv := &http.Server{Addr: addr}
	streamSrv := mcpsrv.NewStreamableHTTPServer(s.mcp,
		mcpsrv.WithStreamableHTTPServer(httpSrv),
	)

	s.logger.InfoContext(ctx, "mcp server listening on http", "addr", addr)

	errCh := make(chan error, 1)
	go func() {
		if err := streamSrv.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("mcp http server error: %w", err)
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		s.logger.InfoContext(ctx, "mcp server shutting down")
		if err := streamSrv.Shutdown(context.Background()); err != nil {
			return fmt.Errorf("mcp http server shutdown error: %w", err)
		}
		return nil
	case err := <-errCh:
		return err
	}
}

// tools returns all MCP tools that this server exposes.
func (s *Server) tools() []mcpsrv.ServerTool {
	return []mcpsrv.ServerTool{
		s.toolTranscribeAudio(),
		s.toolTranscribeAudioFromURL(),
		s.toolListSupportedFormats(),
	}
}

// resultText is a helper that wraps text in a successful CallToolResult.
func resultText(text string) *mcplib.CallToolResult {
	return mcplib.NewToolResultText(text)
}

// resultErr is a helper that wraps an error in a CallToolResult with IsError=true.
func resultErr(err error) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(err.Error())},
		IsError: true,
	}
}

// resultJSON is a helper that serialises v to JSON and returns a CallToolResult.
func resultJSON(v any) (*mcplib.CallToolResult, error) {
	return mcplib.NewToolResultJSON(v)
}

// stringArg extracts a named string argument from a tool call request.
// Returns ("", false) if the argument is absent or not a string.
func stringArg(req mcplib.CallToolRequest, name string) (string, bool) {
	args := req.GetArguments()
	if args == nil {
		return "", false
	}
	v, ok := args[name]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
