// ABOUTME: Tests for the status command
// ABOUTME: Verifies status output formatting and exit codes

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFormatStatusHuman(t *testing.T) {
	output := formatStatusHuman(statusReport{
		APIURL:      "https://api.example.com",
		ConfigDir:   "/tmp/sg",
		Session:     "authenticated",
		AdminStatus: "admin-exists",
	})

	for _, check := range []string{"https://api.example.com", "/tmp/sg", "authenticated", "admin-exists"} {
		if !strings.Contains(output, check) {
			t.Errorf("expected output to contain '%s'", check)
		}
	}
	if strings.Contains(output, "Error") {
		t.Error("no error line expected")
	}
}

func TestFormatStatusJSON(t *testing.T) {
	output := formatStatusJSON(statusReport{Session: "unauthenticated", AdminStatus: "unknown", Error: "down"})

	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(output), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if parsed["admin_status"] != "unknown" || parsed["error"] != "down" {
		t.Errorf("unexpected JSON: %v", parsed)
	}
}

func TestStatusCommand_Success(t *testing.T) {
	api := &authServer{hasAdmin: true}
	server := httptest.NewServer(api.handler())
	defer server.Close()
	dir := setupCLI(t, server)
	loginAs(t, dir, "tok")

	var buf bytes.Buffer
	exitCode := runStatus(context.Background(), &buf)

	if exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", exitCode)
	}
	if !strings.Contains(buf.String(), "authenticated") || !strings.Contains(buf.String(), "admin-exists") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}

func TestStatusCommand_JSON(t *testing.T) {
	api := &authServer{}
	server := httptest.NewServer(api.handler())
	defer server.Close()
	setupCLI(t, server)
	jsonOutput = true

	var buf bytes.Buffer
	if exitCode := runStatus(context.Background(), &buf); exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", exitCode)
	}

	var report statusReport
	if err := json.Unmarshal(buf.Bytes(), &report); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if report.AdminStatus != "no-admin-yet" || report.Session != "unauthenticated" {
		t.Errorf("unexpected report: %+v", report)
	}
}

func TestStatusCommand_ConnectionError(t *testing.T) {
	setupCLI(t, nil)
	apiURL = "http://localhost:99999"

	var buf bytes.Buffer
	exitCode := runStatus(context.Background(), &buf)

	if exitCode != 2 {
		t.Errorf("expected exit code 2, got %d", exitCode)
	}
	if !strings.Contains(buf.String(), "unknown") {
		t.Errorf("expected unknown admin status, got %q", buf.String())
	}
}
