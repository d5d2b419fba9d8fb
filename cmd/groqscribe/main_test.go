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

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groqscribe/groqscribe/internal/groq"
)

func TestParseCmdLine_defaults(t *testing.T) {
	p, err := parseCmdLine(nil)
	require.NoError(t, err)
	assert.Equal(t, "stdio", p.transport)
	assert.Equal(t, "127.0.0.1:8487", p.listen)
	assert.Equal(t, groq.DefaultModel, p.model)
	assert.Equal(t, groq.DefaultBaseURL, p.baseURL)
	assert.Equal(t, groq.DefaultTimeout, p.timeout)
	assert.False(t, p.verbose)
}

func TestParseCmdLine_flags(t *testing.T) {
	p, err := parseCmdLine([]string{
		"-transport", "http",
		"-listen", "0.0.0.0:9000",
		"-model", "whisper-large-v3",
		"-timeout", "30s",
		"-v",
	})
	require.NoError(t, err)
	assert.Equal(t, "http", p.transport)
	assert.Equal(t, "0.0.0.0:9000", p.listen)
	assert.Equal(t, "whisper-large-v3", p.model)
	assert.Equal(t, 30*time.Second, p.timeout)
	assert.True(t, p.verbose)
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name    string
		p       params
		wantErr bool
	}{
		{name: "stdio is fine", p: params{transport: "stdio", timeout: time.Minute}},
		{name: "http with listen addr is fine", p: params{transport: "http", listen: ":1", timeout: time.Minute}},
		{name: "http without listen addr fails", p: params{transport: "http", timeout: time.Minute}, wantErr: true},
		{name: "non-positive timeout fails", p: params{transport: "stdio"}, wantErr: true},
		{name: "version print skips validation", p: params{printVersion: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
