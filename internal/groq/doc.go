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

// Package groq implements transcribe.Transcriber on top of Groq's
// OpenAI-compatible audio transcription endpoint.  It supports the two
// request shapes the API offers: a multipart file upload and a URL
// reference.  Provider failures are mapped onto the structured error kinds
// of the transcribe package; no retries are performed here, retry policy
// belongs to the caller.
package groq
