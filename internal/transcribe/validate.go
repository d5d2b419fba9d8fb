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

// In this file: local file and URL validation.  Validation is synchronous
// and never touches the network; for URLs only the scheme is checked, and
// oversized or malformed remote media surfaces later as a remote_fetch_error
// from the provider.

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
)

// MaxFileSize is the upload size limit imposed by the provider.
const MaxFileSize = 25 << 20 // 25 MiB

// Supported media extensions, lowercase, without the leading dot.
var (
	audioFormats = []string{"aac", "flac", "m4a", "mp3", "mpga", "ogg", "wav"}
	videoFormats = []string{"mp4", "mpeg", "webm"}
)

// Media describes a local file that passed validation.  It is constructed
// per call, handed to the provider client once, and discarded.
type Media struct {
	Path   string
	Size   int64
	Format string // extension without the dot, e.g. "mp3"
}

// AudioFormats returns the supported audio extensions, sorted.
func AudioFormats() []string {
	return slices.Clone(audioFormats)
}

// VideoFormats returns the supported video extensions, sorted.
func VideoFormats() []string {
	return slices.Clone(videoFormats)
}

// SupportedFormats returns all supported extensions, audio first.
func SupportedFormats() []string {
	return append(AudioFormats(), VideoFormats()...)
}

func supportedFormat(ext string) bool {
	return slices.Contains(audioFormats, ext) || slices.Contains(videoFormats, ext)
}

// ValidateFile checks that path refers to an existing regular file within
// the size limit and in a supported format.  It stats the file but does not
// read it.
func ValidateFile(path string) (Media, error) {
	if strings.TrimSpace(path) == "" {
		return Media{}, InvalidInput(ReasonNotFound, nil, "audio file path is empty")
	}
	fi, err := os.Stat(path)
	if err != nil {
		return Media{}, InvalidInput(ReasonNotFound, err, fmt.Sprintf("file %q is not accessible", path))
	}
	if !fi.Mode().IsRegular() {
		return Media{}, InvalidInput(ReasonNotFound, nil, fmt.Sprintf("%q is not a regular file", path))
	}
	if fi.Size() > MaxFileSize {
		return Media{}, InvalidInput(ReasonFileTooLarge, nil, fmt.Sprintf(
			"file size %s exceeds the %s limit",
			humanize.IBytes(uint64(fi.Size())), humanize.IBytes(MaxFileSize),
		))
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if !supportedFormat(ext) {
		return Media{}, InvalidInput(ReasonUnsupportedFormat, nil, fmt.Sprintf(
			"unsupported format %q, supported formats: %s",
			filepath.Ext(path), strings.Join(SupportedFormats(), ", "),
		))
	}
	return Media{Path: path, Size: fi.Size(), Format: ext}, nil
}

// ValidateURL checks that raw parses as an absolute http or https URL.  It
// performs no network I/O and no size probing.
func ValidateURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return InvalidInput(ReasonNotFound, nil, "audio URL is empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return InvalidInput(ReasonNotFound, err, fmt.Sprintf("invalid URL %q", raw))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return InvalidInput(ReasonUnsupportedFormat, nil, fmt.Sprintf("URL scheme %q is not supported, use http or https", u.Scheme))
	}
	if u.Host == "" {
		return InvalidInput(ReasonNotFound, nil, fmt.Sprintf("URL %q has no host", raw))
	}
	return nil
}
