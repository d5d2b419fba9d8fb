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

// Package mcp implements the Model Context Protocol (MCP) server for
// groqscribe.  It exposes the transcription service as named tools that AI
// agents can call: transcribe_audio for local files,
// transcribe_audio_from_url for remote media, and list_supported_formats
// for discovery.
//
// Tool calls are independent and stateless: a failing call returns a
// structured error result to the agent and never terminates the server.
//
// Transport: the server supports two transports selectable at runtime:
//   - stdio  – standard MCP stdio transport (default); suitable for local
//     agent integration (e.g. Claude Desktop, VS Code Copilot).
//   - http   – Streamable HTTP transport; suitable for remote agents or when
//     multiple concurrent clients are needed.
package mcp
