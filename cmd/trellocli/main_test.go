package main

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shaiso/trellocli/internal/cli"
)

func TestRun_Version(t *testing.T) {
	for _, flag := range []string{"--version", "-v"} {
		var stdout, stderr bytes.Buffer
		code := run([]string{flag}, &stdout, &stderr)

		if code != cli.ExitOK {
			t.Errorf("%s: expected exit 0, got %d", flag, code)
		}
		if stdout.String() != "trellocli v"+version+"\n" {
			t.Errorf("%s: unexpected output %q", flag, stdout.String())
		}
	}
}

func TestRun_MissingConfiguration(t *testing.T) {
	t.Setenv("TRELLO_API_KEY", "")
	t.Setenv("TRELLO_API_TOKEN", "")

	var stdout, stderr bytes.Buffer
	envFile := filepath.Join(t.TempDir(), "absent.env")
	code := run([]string{"--env-file", envFile, "list-boards"}, &stdout, &stderr)

	if code != cli.ExitMissingConfiguration {
		t.Errorf("expected exit %d, got %d", cli.ExitMissingConfiguration, code)
	}
	if !strings.Contains(stderr.String(), "TRELLO_API_KEY") {
		t.Errorf("expected missing variable in message, got %q", stderr.String())
	}
}

func TestRun_InvalidOutputFormat(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--output", "xml", "list-boards"}, &stdout, &stderr)

	if code != cli.ExitError {
		t.Errorf("expected exit %d, got %d", cli.ExitError, code)
	}
}

func TestRun_ListBoards(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		fmt.Fprint(w, `[{"id":"123","name":"Test Board Name","closed":false}]`)
	}))
	defer srv.Close()

	t.Setenv("TRELLO_API_KEY", "key")
	t.Setenv("TRELLO_API_TOKEN", "token")
	t.Setenv("TRELLO_API_URL", srv.URL+"/1/")

	dir := t.TempDir()
	metrics := filepath.Join(dir, "trellocli.prom")

	var stdout, stderr bytes.Buffer
	code := run([]string{
		"--env-file", filepath.Join(dir, "absent.env"),
		"--metrics-file", metrics,
		"--output", "json",
		"list-boards",
	}, &stdout, &stderr)

	if code != cli.ExitOK {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), `"name": "Test Board Name"`) {
		t.Errorf("unexpected output %q", stdout.String())
	}

	data, err := os.ReadFile(metrics)
	if err != nil {
		t.Fatalf("metrics file: %v", err)
	}
	if !strings.Contains(string(data), `trellocli_api_requests_total{code="200",endpoint="boards",method="GET"} 1`) {
		t.Errorf("expected request counter in metrics file:\n%s", data)
	}
}

func TestRun_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "invalid key", http.StatusUnauthorized)
	}))
	defer srv.Close()

	t.Setenv("TRELLO_API_KEY", "key")
	t.Setenv("TRELLO_API_TOKEN", "token")
	t.Setenv("TRELLO_API_URL", srv.URL)

	var stdout, stderr bytes.Buffer
	code := run([]string{"--env-file", "", "list-columns", "123"}, &stdout, &stderr)

	if code != cli.ExitError {
		t.Errorf("expected exit %d, got %d", cli.ExitError, code)
	}
	if !strings.HasPrefix(stderr.String(), "Error: unauthorized (HTTP 401)") {
		t.Errorf("expected unauthorized message, got %q", stderr.String())
	}
}
