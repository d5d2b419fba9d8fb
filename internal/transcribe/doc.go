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

// Package transcribe contains the transcription core: the structured error
// model, the credential resolver, local file and URL validation, and the
// Service that composes them in front of a provider client.
//
// The package is stateless apart from the process-wide fallback credential,
// which is captured once at startup and never mutated, so all operations are
// safe under unbounded concurrent invocation.  Nothing is cached: repeated
// identical calls produce independent outbound requests.
package transcribe
