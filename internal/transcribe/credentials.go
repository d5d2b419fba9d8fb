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

// In this file: per-call credential resolution.

import "strings"

// Credentials resolves the API key to use for a single call.  The fallback
// is captured once at process start and is immutable afterwards, which keeps
// Resolve safe under concurrent tool invocations.
type Credentials struct {
	fallback string
}

// NewCredentials returns a Credentials with the given process-wide fallback
// key.  The fallback may be empty; resolution then requires an explicit key.
func NewCredentials(fallback string) Credentials {
	return Credentials{fallback: strings.TrimSpace(fallback)}
}

// Resolve returns the key to use for a call: the explicit parameter when it
// is non-empty, the fallback otherwise.  When neither yields a key it
// returns a missing_credential error.
func (c Credentials) Resolve(explicit string) (string, error) {
	if key := strings.TrimSpace(explicit); key != "" {
		return key, nil
	}
	if c.fallback != "" {
		return c.fallback, nil
	}
	return "", MissingCredential("no API key: pass api_key or set the GROQ_API_KEY environment variable")
}
