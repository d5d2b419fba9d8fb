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

// In this file: MCP tool definitions and handler implementations.

import (
	"context"
	"errors"

	"github.com/dustin/go-humanize"
	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"

	"github.com/groqscribe/groqscribe/internal/transcribe"
)

const apiKeyDescription = "Groq API key. Optional when the server was started " +
	"with the GROQ_API_KEY environment variable set; an explicit key takes precedence."

// ─── transcribe_audio ─────────────────────────────────────────────────────────

func (s *Server) toolTranscribeAudio() mcpsrv.ServerTool {
	tool := mcplib.NewTool("transcribe_audio",
		mcplib.WithDescription(`Transcribe a local audio or video file to text using Groq's Whisper model.

Supported formats: aac, flac, m4a, mp3, mpga, ogg, wav (audio);
mp4, mpeg, webm (video).  Maximum file size: 25 MiB.  The spoken language is
detected automatically.  Returns the plain-text transcript.`),
		mcplib.WithString("audio_file",
			mcplib.Description("Filesystem path to the audio or video file to transcribe."),
			mcplib.Required(),
		),
		mcplib.WithString("api_key",
			mcplib.Description(apiKeyDescription),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleTranscribeAudio}
}

func (s *Server) handleTranscribeAudio(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	path, ok := stringArg(req, "audio_file")
	if !ok || path == "" {
		return resultErr(errors.New("transcribe_audio: audio_file is required")), nil
	}
	apiKey, _ := stringArg(req, "api_key")

	s.logger.InfoContext(ctx, "mcp: transcribe_audio", "path", path)

	text, err := s.svc.TranscribeFile(ctx, path, apiKey)
	if err != nil {
		s.logger.WarnContext(ctx, "mcp: transcribe_audio failed", "path", path, "kind", transcribe.KindOf(err))
		return resultErr(err), nil
	}
	return resultText(text), nil
}

// ─── transcribe_audio_from_url ────────────────────────────────────────────────

func (s *Server) toolTranscribeAudioFromURL() mcpsrv.ServerTool {
	tool := mcplib.NewTool("transcribe_audio_from_url",
		mcplib.WithDescription(`Transcribe audio or video referenced by URL to text using Groq's Whisper model.

The URL must use the http or https scheme and point to media in a supported
format; Groq fetches the content itself, so the file never passes through
this server.  The spoken language is detected automatically.  Returns the
plain-text transcript.`),
		mcplib.WithString("audio_url",
			mcplib.Description("Publicly reachable http(s) URL of the audio or video to transcribe."),
			mcplib.Required(),
		),
		mcplib.WithString("api_key",
			mcplib.Description(apiKeyDescription),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleTranscribeAudioFromURL}
}

func (s *Server) handleTranscribeAudioFromURL(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	url, ok := stringArg(req, "audio_url")
	if !ok || url == "" {
		return resultErr(errors.New("transcribe_audio_from_url: audio_url is required")), nil
	}
	apiKey, _ := stringArg(req, "api_key")

	s.logger.InfoContext(ctx, "mcp: transcribe_audio_from_url", "url", url)

	text, err := s.svc.TranscribeURL(ctx, url, apiKey)
	if err != nil {
		s.logger.WarnContext(ctx, "mcp: transcribe_audio_from_url failed", "url", url, "kind", transcribe.KindOf(err))
		return resultErr(err), nil
	}
	return resultText(text), nil
}

// ─── list_supported_formats ───────────────────────────────────────────────────

func (s *Server) toolListSupportedFormats() mcpsrv.ServerTool {
	tool := mcplib.NewTool("list_supported_formats",
		mcplib.WithDescription("List the audio and video formats accepted by the transcription tools and the maximum file size."),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleListSupportedFormats}
}

// formatInfo is the JSON-serialisable answer of list_supported_formats.
type formatInfo struct {
	Audio        []string `json:"audio"`
	Video        []string `json:"video"`
	MaxFileSize  int64    `json:"max_file_size_bytes"`
	MaxFileHuman string   `json:"max_file_size"`
}

func (s *Server) handleListSupportedFormats(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	info := formatInfo{
		Audio:        transcribe.AudioFormats(),
		Video:        transcribe.VideoFormats(),
		MaxFileSize:  transcribe.MaxFileSize,
		MaxFileHuman: humanize.IBytes(transcribe.MaxFileSize),
	}
	result, err := resultJSON(info)
	if err != nil {
		return resultErr(err), nil
	}
	return result, nil
}
