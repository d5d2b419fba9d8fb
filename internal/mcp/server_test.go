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

import (
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/groqscribe/groqscribe/internal/transcribe"
	"github.com/groqscribe/groqscribe/internal/transcribe/mock_transcribe"
)

// newTestServer creates a *Server whose Service is a real
// *transcribe.Service running over a mocked provider, so handler tests
// exercise the full dispatch chain: credential resolution, validation,
// provider call.
func newTestServer(t *testing.T, fallbackKey string) (*Server, *mock_transcribe.MockTranscriber) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := mock_transcribe.NewMockTranscriber(ctrl)
	svc := transcribe.NewService(transcribe.NewCredentials(fallbackKey), m)
	srv := New(svc, WithLogger(nil))
	require.NotNil(t, srv)
	return srv, m
}

// toolReq builds a CallToolRequest with the given argument map.
func toolReq(args map[string]any) mcplib.CallToolRequest {
	req := mcplib.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

// isErrorResult returns true when the result carries IsError=true.
func isErrorResult(r *mcplib.CallToolResult) bool {
	return r != nil && r.IsError
}

// firstText returns the text of the first TextContent in the result.
func firstText(t *testing.T, r *mcplib.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, r.Content, "result has no content")
	txt, ok := r.Content[0].(mcplib.TextContent)
	require.True(t, ok, "first content item is not TextContent")
	return txt.Text
}

// ─── New / options ────────────────────────────────────────────────────────────

func TestNew(t *testing.T) {
	srv, _ := newTestServer(t, "")
	assert.NotNil(t, srv.mcp)
	assert.NotNil(t, srv.svc)
	assert.NotNil(t, srv.logger)
}

func TestNew_nilLogger(t *testing.T) {
	// A nil logger must not panic and must fall back to slog.Default().
	assert.NotPanics(t, func() {
		srv := New(nil, WithLogger(nil))
		assert.NotNil(t, srv.logger)
	})
}

func TestTools_allRegistered(t *testing.T) {
	srv, _ := newTestServer(t, "")
	names := make([]string, 0, 3)
	for _, st := range srv.tools() {
		names = append(names, st.Tool.Name)
	}
	assert.ElementsMatch(t, names, []string{
		"transcribe_audio",
		"transcribe_audio_from_url",
		"list_supported_formats",
	})
}

func TestInstructions(t *testing.T) {
	got := instructions()
	assert.Contains(t, got, "transcribe_audio")
	assert.Contains(t, got, "transcribe_audio_from_url")
	assert.Contains(t, got, "list_supported_formats")
	assert.Contains(t, got, "25 MiB")
	assert.Contains(t, got, "mp3")
}

// ─── helpers ──────────────────────────────────────────────────────────────────

func TestStringArg(t *testing.T) {
	tests := []struct {
		name   string
		args   map[string]any
		key    string
		want   string
		wantOK bool
	}{
		{name: "nil map", args: nil, key: "a"},
		{name: "absent key", args: map[string]any{"b": "x"}, key: "a"},
		{name: "wrong type", args: map[string]any{"a": 42}, key: "a"},
		{name: "present", args: map[string]any{"a": "x"}, key: "a", want: "x", wantOK: true},
		{name: "empty string is ok=true", args: map[string]any{"a": ""}, key: "a", want: "", wantOK: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := stringArg(toolReq(tt.args), tt.key)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
