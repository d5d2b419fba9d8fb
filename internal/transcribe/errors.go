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

// In this file: the structured error model shared by the validator, the
// credential resolver and the provider client.

import (
	"errors"
	"fmt"
)

// Kind classifies a transcription failure.  Every error returned by this
// package and by provider clients is an *Error carrying exactly one Kind.
type Kind string

const (
	// KindMissingCredential means neither the explicit api_key parameter nor
	// the process-wide fallback yielded a usable key.
	KindMissingCredential Kind = "missing_credential"
	// KindInvalidInput means the local file or URL failed validation before
	// any network call was attempted.  The Reason field narrows it down.
	KindInvalidInput Kind = "invalid_input"
	// KindAuthentication means the provider rejected the credential.
	KindAuthentication Kind = "authentication_error"
	// KindRateLimited means the provider returned HTTP 429.
	KindRateLimited Kind = "rate_limited"
	// KindRemoteFetch means the provider could not fetch or decode the
	// remote media referenced by URL.
	KindRemoteFetch Kind = "remote_fetch_error"
	// KindProvider covers any other provider-side failure, including
	// transport errors and malformed responses.
	KindProvider Kind = "provider_error"
)

// Reason refines KindInvalidInput.
type Reason string

const (
	ReasonFileTooLarge      Reason = "file_too_large"
	ReasonUnsupportedFormat Reason = "unsupported_format"
	ReasonNotFound          Reason = "not_found"
)

// Error is the structured failure outcome returned to tool callers.  Message
// is always human readable; Err, when set, preserves the underlying cause
// for errors.Is/As chains.
type Error struct {
	Kind    Kind
	Reason  Reason // set only when Kind == KindInvalidInput
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// MissingCredential returns an error of KindMissingCredential.
func MissingCredential(message string) *Error {
	return &Error{Kind: KindMissingCredential, Message: message}
}

// InvalidInput returns an error of KindInvalidInput with the given reason.
func InvalidInput(reason Reason, err error, message string) *Error {
	return &Error{Kind: KindInvalidInput, Reason: reason, Message: message, Err: err}
}

// Authentication returns an error of KindAuthentication.
func Authentication(err error, message string) *Error {
	return &Error{Kind: KindAuthentication, Message: message, Err: err}
}

// RateLimited returns an error of KindRateLimited.
func RateLimited(err error, message string) *Error {
	return &Error{Kind: KindRateLimited, Message: message, Err: err}
}

// RemoteFetch returns an error of KindRemoteFetch.
func RemoteFetch(err error, message string) *Error {
	return &Error{Kind: KindRemoteFetch, Message: message, Err: err}
}

// Provider returns an error of KindProvider.
func Provider(err error, message string) *Error {
	return &Error{Kind: KindProvider, Message: message, Err: err}
}

// KindOf returns the Kind of err, or KindProvider if err is not an *Error.
// A nil err has no kind and returns "".
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindProvider
}

// ReasonOf returns the invalid-input Reason of err, or "" if err is not an
// *Error of KindInvalidInput.
func ReasonOf(err error) Reason {
	var e *Error
	if errors.As(err, &e) && e.Kind == KindInvalidInput {
		return e.Reason
	}
	return ""
}
