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

// In this file: the Service that composes credential resolution, input
// validation and the provider call, stopping at the first failure.

import (
	"context"
	"log/slog"
)

//go:generate mockgen -destination=mock_transcribe/mock_transcribe.go . Transcriber

// Transcriber performs a single outbound transcription call against the
// hosted speech-to-text provider.  Implementations make exactly one network
// request per invocation and do not retry.
type Transcriber interface {
	// TranscribeFile uploads the validated local media and returns the
	// transcript text.
	TranscribeFile(ctx context.Context, media Media, apiKey string) (string, error)
	// TranscribeURL passes the media URL as a reference parameter and
	// returns the transcript text.
	TranscribeURL(ctx context.Context, url string, apiKey string) (string, error)
}

// Service is the tool-dispatch boundary: it validates caller input, resolves
// the credential and delegates to the provider.  It holds no mutable state,
// so a single Service may serve any number of concurrent calls.
type Service struct {
	creds  Credentials
	tr     Transcriber
	logger *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the logger.  A nil logger falls back to slog.Default().
func WithLogger(lg *slog.Logger) ServiceOption {
	return func(s *Service) {
		if lg != nil {
			s.logger = lg
		}
	}
}

// NewService creates a Service over the given credentials and provider.
func NewService(creds Credentials, tr Transcriber, opts ...ServiceOption) *Service {
	s := &Service{
		creds:  creds,
		tr:     tr,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// TranscribeFile transcribes a local audio or video file.  The credential is
// resolved before the file is validated, so a missing key fails fast without
// touching the filesystem.  On success the provider's transcript text is
// returned unchanged.
func (s *Service) TranscribeFile(ctx context.Context, path, apiKey string) (string, error) {
	key, err := s.creds.Resolve(apiKey)
	if err != nil {
		return "", err
	}
	media, err := ValidateFile(path)
	if err != nil {
		return "", err
	}
	s.logger.InfoContext(ctx, "transcribing file", "path", media.Path, "size", media.Size, "format", media.Format)
	text, err := s.tr.TranscribeFile(ctx, media, key)
	if err != nil {
		s.logger.WarnContext(ctx, "file transcription failed", "path", media.Path, "kind", KindOf(err))
		return "", err
	}
	return text, nil
}

// TranscribeURL transcribes remote media by reference.  Only the URL scheme
// is checked locally; fetch failures surface as remote_fetch_error from the
// provider.
func (s *Service) TranscribeURL(ctx context.Context, url, apiKey string) (string, error) {
	key, err := s.creds.Resolve(apiKey)
	if err != nil {
		return "", err
	}
	if err := ValidateURL(url); err != nil {
		return "", err
	}
	s.logger.InfoContext(ctx, "transcribing url", "url", url)
	text, err := s.tr.TranscribeURL(ctx, url, key)
	if err != nil {
		s.logger.WarnContext(ctx, "url transcription failed", "url", url, "kind", KindOf(err))
		return "", err
	}
	return text, nil
}
