package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestScoreCommand_JSON(t *testing.T) {
	setupTestAPI(t, jsonHandler(`{
		"rows": [
			[1, 3600, 1, "VS Code", "Editing", 2],
			[2, 3600, 1, "twitter.com", "Social Media", -2]
		]
	}`))

	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"score", "--json"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON output: %v\nOutput: %s", err, buf.String())
	}
	if pulse, ok := result["pulse"].(float64); !ok || int(pulse) != 50 {
		t.Errorf("pulse = %v, want 50", result["pulse"])
	}
	if result["rating"] != "Fair" {
		t.Errorf("rating = %v, want Fair", result["rating"])
	}
	if hours, ok := result["productive_hours"].(float64); !ok || hours != 1.0 {
		t.Errorf("productive_hours = %v, want 1.0", result["productive_hours"])
	}
	if hours, ok := result["distracting_hours"].(float64); !ok || hours != 1.0 {
		t.Errorf("distracting_hours = %v, want 1.0", result["distracting_hours"])
	}
}

func TestScoreCommand_Human(t *testing.T) {
	setupTestAPI(t, jsonHandler(`{"rows": [[1, 1800, 1, "VS Code", "Editing", 2]]}`))

	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"score"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	got := buf.String()
	if !strings.Contains(got, "Pulse:") {
		t.Errorf("output = %q, want pulse line", got)
	}
	if !strings.Contains(got, "Excellent") {
		t.Errorf("output = %q, want Excellent rating for fully productive day", got)
	}
}

func TestScoreCommand_MissingAPIKey(t *testing.T) {
	t.Setenv("RESCUETIME_MCP_CONFIG_HOME", t.TempDir())
	t.Setenv("RESCUETIME_API_KEY", "")
	t.Setenv("RESCUETIME_BASE_URL", "")
	t.Setenv("RESCUETIME_TIMEOUT_SECONDS", "")

	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"score", "--json"})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("Execute() expected error without an API key")
	}
	if !strings.Contains(err.Error(), "RESCUETIME_API_KEY") {
		t.Errorf("error = %q, want to name the missing variable", err.Error())
	}
}
