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

// Command groqscribe starts an MCP server that transcribes audio and video
// to text using Groq's hosted Whisper models.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rusq/osenv/v2"

	"github.com/groqscribe/groqscribe/internal/groq"
	"github.com/groqscribe/groqscribe/internal/mcp"
	"github.com/groqscribe/groqscribe/internal/transcribe"
)

const envAPIKey = "GROQ_API_KEY"

var build = "dev"

// secrets defines the names of the supported secret files that we load our
// secrets from.  Inexperienced windows users might have bad experience trying
// to create .env file with the notepad as it will battle for having the
// "txt" extension.  Let it have it.
var secrets = []string{".env", ".env.txt", "secrets.txt"}

// params is the command line parameters.
type params struct {
	transport string
	listen    string

	model   string
	baseURL string
	timeout time.Duration

	logFile      string
	jsonHandler  bool
	traceFile    string
	verbose      bool
	printVersion bool
}

func main() {
	loadSecrets(secrets)

	p, err := parseCmdLine(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if p.printVersion {
		fmt.Println(build)
		return
	}

	lg, stopLog, err := initLog(p.logFile, p.jsonHandler, p.verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer stopLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, lg, p); err != nil {
		lg.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, lg *slog.Logger, p params) error {
	stopTrace := initTrace(p.traceFile)
	defer stopTrace()

	// The fallback credential is read once here and stays immutable for the
	// lifetime of the process.
	fallbackKey := osenv.Secret(envAPIKey, "")
	if fallbackKey == "" {
		lg.Info("no " + envAPIKey + " set; callers must pass api_key with every tool call")
	}

	client := groq.New(groq.Config{
		BaseURL: p.baseURL,
		Model:   p.model,
		Timeout: p.timeout,
	})
	svc := transcribe.NewService(
		transcribe.NewCredentials(fallbackKey),
		client,
		transcribe.WithLogger(lg),
	)
	srv := mcp.New(svc, mcp.WithLogger(lg))

	lg.InfoContext(ctx, "starting groqscribe", "version", build, "model", client.Model(), "transport", p.transport)

	switch mcp.Transport(strings.ToLower(p.transport)) {
	case mcp.TransportStdio, "":
		return srv.ServeStdio(ctx)
	case mcp.TransportHTTP:
		return srv.ServeHTTP(ctx, p.listen)
	default:
		return fmt.Errorf("unknown transport %q, must be %q or %q", p.transport, mcp.TransportStdio, mcp.TransportHTTP)
	}
}

// loadSecrets load secrets from the files in secrets slice.
func loadSecrets(files []string) {
	for _, f := range files {
		godotenv.Load(f)
	}
}

// parseCmdLine parses the command line arguments.
func parseCmdLine(args []string) (params, error) {
	fs := flag.NewFlagSet("groqscribe", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(
			fs.Output(),
			"Groqscribe %s\n"+
				"MCP server exposing audio/video transcription tools backed by Groq's\n"+
				"Whisper models.  The API key is taken from the %s environment\n"+
				"variable or passed by the agent with each tool call.\n\n"+
				"Usage:  %s [flags]\n\n",
			build, envAPIKey, filepath.Base(os.Args[0]))
		fs.PrintDefaults()
	}

	var p params
	fs.StringVar(&p.transport, "transport", osenv.Value("GROQSCRIBE_TRANSPORT", "stdio"), "MCP `transport`: \"stdio\" or \"http\"")
	fs.StringVar(&p.listen, "listen", osenv.Value("GROQSCRIBE_LISTEN", "127.0.0.1:8487"), "`address` to listen on when -transport=http")

	fs.StringVar(&p.model, "model", osenv.Value("GROQ_MODEL", groq.DefaultModel), "Groq speech `model` identifier")
	fs.StringVar(&p.baseURL, "base-url", osenv.Value("GROQ_BASE_URL", groq.DefaultBaseURL), "Groq API base `URL`")
	fs.DurationVar(&p.timeout, "timeout", groq.DefaultTimeout, "single transcription request `timeout`")

	fs.StringVar(&p.logFile, "log", osenv.Value("LOG_FILE", ""), "log `file`, if not specified, messages are printed to STDERR")
	fs.BoolVar(&p.jsonHandler, "log-json", osenv.Value("JSON_LOG", false), "log in JSON format")
	fs.StringVar(&p.traceFile, "trace", osenv.Value("TRACE_FILE", ""), "trace `file` (optional)")
	fs.BoolVar(&p.verbose, "v", osenv.Value("DEBUG", false), "verbose messages")
	fs.BoolVar(&p.printVersion, "V", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return p, err
	}
	return p, p.validate()
}

func (p *params) validate() error {
	if p.printVersion {
		return nil
	}
	if p.transport == "http" && p.listen == "" {
		return fmt.Errorf("-listen must not be empty with -transport=http")
	}
	if p.timeout <= 0 {
		return fmt.Errorf("-timeout must be positive")
	}
	return nil
}
