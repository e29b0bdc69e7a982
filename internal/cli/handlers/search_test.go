package handlers

import (
	"strings"
	"testing"
)

func TestSearchEntries(t *testing.T) {
	env := newMemoryEnv(t)
	env.add(t, "Gym", "2024-01-02")
	env.add(t, "Work", "2024-01-03")
	env.add(t, "Gym again", "2024-01-05")

	SearchEntries(env.deps, "gym", "", "")

	out := env.stdout.String()
	if !strings.Contains(out, `Found 2 entries for "gym":`) {
		t.Errorf("unexpected header: %s", out)
	}
	if !strings.Contains(out, "[1] 2024-01-05  Gym again") || !strings.Contains(out, "[3] 2024-01-02  Gym") {
		t.Errorf("expected gallery indexes, got:\n%s", out)
	}
	if strings.Contains(out, "Work") {
		t.Errorf("unexpected match: %s", out)
	}
}

func TestSearchEntries_Range(t *testing.T) {
	env := newMemoryEnv(t)
	env.add(t, "Gym", "2024-01-02")
	env.add(t, "Gym", "2024-01-09")

	SearchEntries(env.deps, "", "yesterday", "today")

	out := env.stdout.String()
	if !strings.Contains(out, "Found 1 entry for from 2024-01-09 to 2024-01-10:") {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestSearchEntries_NoResults(t *testing.T) {
	env := newMemoryEnv(t)
	SearchEntries(env.deps, "piano", "", "")

	if !strings.Contains(env.stdout.String(), `No entries found for "piano"`) {
		t.Errorf("unexpected output: %s", env.stdout.String())
	}
}

func TestSearchEntries_InvalidDate(t *testing.T) {
	env := newMemoryEnv(t)
	SearchEntries(env.deps, "", "nope", "")

	if env.exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", env.exitCode)
	}
	if !strings.Contains(env.stderr.String(), "Error: Invalid date range") {
		t.Errorf("unexpected stderr: %s", env.stderr.String())
	}
}
