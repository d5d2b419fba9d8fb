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

package transcribe

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile creates a file of the given size in dir.  Oversized files are
// created sparse to keep the test fast.
func writeFile(t *testing.T, dir, name string, size int64) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, f.Truncate(size))
	return path
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name       string
		path       func(t *testing.T) string
		wantReason Reason
		wantFormat string
	}{
		{
			name:       "valid mp3 within the limit",
			path:       func(t *testing.T) string { return writeFile(t, dir, "podcast.mp3", 1024) },
			wantFormat: "mp3",
		},
		{
			name:       "file exactly at the limit passes",
			path:       func(t *testing.T) string { return writeFile(t, dir, "exact.wav", MaxFileSize) },
			wantFormat: "wav",
		},
		{
			name:       "uppercase extension is accepted",
			path:       func(t *testing.T) string { return writeFile(t, dir, "MEMO.M4A", 10) },
			wantFormat: "m4a",
		},
		{
			name:       "video format is accepted",
			path:       func(t *testing.T) string { return writeFile(t, dir, "talk.mp4", 2048) },
			wantFormat: "mp4",
		},
		{
			name:       "one byte over the limit fails",
			path:       func(t *testing.T) string { return writeFile(t, dir, "big.mp3", MaxFileSize+1) },
			wantReason: ReasonFileTooLarge,
		},
		{
			name:       "unsupported extension fails",
			path:       func(t *testing.T) string { return writeFile(t, dir, "notes.txt", 10) },
			wantReason: ReasonUnsupportedFormat,
		},
		{
			name:       "no extension fails as unsupported",
			path:       func(t *testing.T) string { return writeFile(t, dir, "noext", 10) },
			wantReason: ReasonUnsupportedFormat,
		},
		{
			name:       "nonexistent file fails as not found",
			path:       func(t *testing.T) string { return filepath.Join(dir, "missing.mp3") },
			wantReason: ReasonNotFound,
		},
		{
			name:       "empty path fails as not found",
			path:       func(t *testing.T) string { return "" },
			wantReason: ReasonNotFound,
		},
		{
			name:       "directory fails as not found",
			path:       func(t *testing.T) string { return dir },
			wantReason: ReasonNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tt.path(t)
			media, err := ValidateFile(path)
			if tt.wantReason != "" {
				require.Error(t, err)
				assert.Equal(t, KindInvalidInput, KindOf(err))
				assert.Equal(t, tt.wantReason, ReasonOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, path, media.Path)
			assert.Equal(t, tt.wantFormat, media.Format)
		})
	}
}

func TestValidateFile_sizeIsRecorded(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "sized.ogg", 4096)
	media, err := ValidateFile(path)
	require.NoError(t, err)
	assert.Equal(t, int64(4096), media.Size)
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		wantReason Reason
	}{
		{name: "https is accepted", url: "https://example.com/episode.mp3"},
		{name: "http is accepted", url: "http://example.com/episode.mp3"},
		{name: "ftp is rejected", url: "ftp://example.com/episode.mp3", wantReason: ReasonUnsupportedFormat},
		{name: "file scheme is rejected", url: "file:///tmp/episode.mp3", wantReason: ReasonUnsupportedFormat},
		{name: "empty string is rejected", url: "", wantReason: ReasonNotFound},
		{name: "scheme-relative URL is rejected", url: "//example.com/a.mp3", wantReason: ReasonUnsupportedFormat},
		{name: "no host is rejected", url: "https://", wantReason: ReasonNotFound},
		{name: "garbage is rejected", url: "http://exa mple.com/a.mp3", wantReason: ReasonNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.url)
			if tt.wantReason != "" {
				require.Error(t, err)
				assert.Equal(t, KindInvalidInput, KindOf(err))
				assert.Equal(t, tt.wantReason, ReasonOf(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSupportedFormats(t *testing.T) {
	all := SupportedFormats()
	assert.Contains(t, all, "mp3")
	assert.Contains(t, all, "webm")
	assert.Len(t, all, len(AudioFormats())+len(VideoFormats()))

	// returned slices are copies and must not alias the package state
	audio := AudioFormats()
	audio[0] = "tampered"
	assert.NotContains(t, AudioFormats(), "tampered")
}
