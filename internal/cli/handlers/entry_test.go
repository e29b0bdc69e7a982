package handlers

import (
	"strings"
	"testing"

	"github.com/xolan/diary/internal/cli"
	"github.com/xolan/diary/internal/entry"
)

func TestListEntries_Empty(t *testing.T) {
	env := newMemoryEnv(t)
	ListEntries(env.deps)

	out := env.stdout.String()
	if !strings.Contains(out, cli.EmptyGalleryTitle) || !strings.Contains(out, cli.EmptyGalleryHint) {
		t.Errorf("expected empty gallery message, got: %s", out)
	}
	if env.exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", env.exitCode)
	}
}

func TestListEntries_NewestFirst(t *testing.T) {
	env := newMemoryEnv(t)
	env.add(t, "Gym", "2024-01-02")
	env.add(t, "Work", "2024-01-03")

	ListEntries(env.deps)

	out := env.stdout.String()
	if !strings.Contains(out, "Diary (2 entries):") {
		t.Errorf("expected header, got: %s", out)
	}
	work := strings.Index(out, "[1] 2024-01-03  Work")
	gym := strings.Index(out, "[2] 2024-01-02  Gym")
	if work < 0 || gym < 0 || work > gym {
		t.Errorf("expected Work before Gym, got:\n%s", out)
	}
}

func TestAddEntry(t *testing.T) {
	env := newMemoryEnv(t)
	AddEntry(env.deps, entry.Candidate{Title: " Gym ", Date: "today", ImageURL: "https://x/img.jpg", Content: "Went to the gym"})

	if env.exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d (stderr: %s)", env.exitCode, env.stderr.String())
	}
	if got := env.stdout.String(); got != "Added: 2024-01-10  Gym\n" {
		t.Errorf("unexpected output %q", got)
	}
	if len(env.services.Entry.List()) != 1 {
		t.Error("expected one stored entry")
	}
}

func TestAddEntry_Errors(t *testing.T) {
	tests := []struct {
		name      string
		candidate entry.Candidate
		message   string
		detail    string
	}{
		{
			name:      "missing fields",
			candidate: entry.Candidate{Title: "  ", Date: "2024-01-05", ImageURL: "", Content: "c"},
			message:   "Error: Please fill in all fields.",
			detail:    "Details: missing title, imageUrl",
		},
		{
			name:      "duplicate day",
			candidate: entry.Candidate{Title: "Again", Date: "02/01/2024", ImageURL: "u", Content: "c"},
			message:   "Error: An entry for this day already exists. Please come back tomorrow.",
			detail:    "Hint: See it with 'diary show 2024-01-02'",
		},
		{
			name:      "invalid date",
			candidate: entry.Candidate{Title: "t", Date: "2024-1-5", ImageURL: "u", Content: "c"},
			message:   "Error: " + cli.MsgInvalidDate,
			detail:    "Hint: Use today, yesterday, YYYY-MM-DD or DD/MM/YYYY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newMemoryEnv(t)
			env.add(t, "Gym", "2024-01-02")

			AddEntry(env.deps, tt.candidate)

			if env.exitCode != 1 {
				t.Errorf("expected exit code 1, got %d", env.exitCode)
			}
			errOut := env.stderr.String()
			if !strings.Contains(errOut, tt.message) {
				t.Errorf("expected %q in stderr, got: %s", tt.message, errOut)
			}
			if !strings.Contains(errOut, tt.detail) {
				t.Errorf("expected %q in stderr, got: %s", tt.detail, errOut)
			}
			if len(env.services.Entry.List()) != 1 {
				t.Error("failed add must not change the diary")
			}
		})
	}
}

func TestAddEntry_SaveFailure(t *testing.T) {
	env := newEnv(t, failingAdapter{})
	AddEntry(env.deps, entry.Candidate{Title: "t", Date: "today", ImageURL: "u", Content: "c"})

	if env.exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", env.exitCode)
	}
	if !strings.Contains(env.stderr.String(), cli.MsgPersistence) || !strings.Contains(env.stderr.String(), "disk full") {
		t.Errorf("unexpected stderr: %s", env.stderr.String())
	}
	if len(env.services.Entry.List()) != 0 {
		t.Error("entry should be rolled back")
	}
}

func TestShowEntry(t *testing.T) {
	env := newMemoryEnv(t)
	env.add(t, "Gym", "2024-01-09")

	ShowEntry(env.deps, "yesterday")

	out := env.stdout.String()
	for _, want := range []string{"Gym\n", "2024-01-09", "https://img/2024-01-09", "Gym content"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got:\n%s", want, out)
		}
	}
}

func TestShowEntry_Errors(t *testing.T) {
	env := newMemoryEnv(t)

	ShowEntry(env.deps, "2024-01-01")
	if env.exitCode != 1 || !strings.Contains(env.stderr.String(), "no entry for that day") {
		t.Errorf("expected not found error, got exit %d: %s", env.exitCode, env.stderr.String())
	}

	env.reset()
	ShowEntry(env.deps, "2024-13")
	if env.exitCode != 1 || !strings.Contains(env.stderr.String(), "Invalid date '2024-13'") {
		t.Errorf("expected invalid date error, got exit %d: %s", env.exitCode, env.stderr.String())
	}
}
