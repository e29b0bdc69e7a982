package cli

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/xolan/diary/internal/entry"
	"github.com/xolan/diary/internal/service"
	"github.com/xolan/diary/internal/store"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"missing", &entry.ValidationError{Err: entry.ErrMissingField, Fields: []string{"title"}}, MsgMissingFields},
		{"duplicate", &entry.ValidationError{Err: entry.ErrDuplicateDate, Date: "2024-01-02"}, MsgDuplicateDate},
		{"invalid date", &entry.ValidationError{Err: entry.ErrInvalidDate, Date: "x"}, MsgInvalidDate},
		{"persistence", fmt.Errorf("%w: disk full", store.ErrPersistence), MsgPersistence},
		{"other", errors.New("something else"), "something else"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestUserMessage_OriginalWording(t *testing.T) {
	if MsgMissingFields != "Please fill in all fields." {
		t.Errorf("unexpected missing fields message %q", MsgMissingFields)
	}
	if MsgDuplicateDate != "An entry for this day already exists. Please come back tomorrow." {
		t.Errorf("unexpected duplicate message %q", MsgDuplicateDate)
	}
}

func TestFormatEntryLine(t *testing.T) {
	ie := service.IndexedEntry{Index: 3, Entry: entry.Entry{Date: "2024-01-02", Title: "Gym"}}
	if got := FormatEntryLine(ie, 2); got != "[ 3] 2024-01-02  Gym" {
		t.Errorf("FormatEntryLine() = %q", got)
	}
	if got := FormatEntryLine(ie, 1); got != "[3] 2024-01-02  Gym" {
		t.Errorf("FormatEntryLine() = %q", got)
	}
}

func TestIndexWidth(t *testing.T) {
	for n, want := range map[int]int{1: 1, 9: 1, 10: 2, 123: 3} {
		if got := IndexWidth(n); got != want {
			t.Errorf("IndexWidth(%d) = %d, expected %d", n, got, want)
		}
	}
}

func TestFormatEntryDetail(t *testing.T) {
	e := entry.Entry{
		Title:    "Gym",
		Date:     "2024-01-02",
		ImageURL: "https://x/img.jpg",
		Content:  "line one\n  indented line\n\nlast",
	}
	got := FormatEntryDetail(e)

	for _, want := range []string{
		"Gym\n",
		"Date:    Tue, Jan 2 2024 (2024-01-02)",
		"Image:   https://x/img.jpg",
		"line one\n  indented line\n\nlast\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("FormatEntryDetail() missing %q in:\n%s", want, got)
		}
	}
}

func TestFormatDay(t *testing.T) {
	if got := FormatDay("2024-02-29"); got != "Thu, Feb 29 2024 (2024-02-29)" {
		t.Errorf("FormatDay() = %q", got)
	}
	if got := FormatDay("2024-1-5"); got != "2024-1-5" {
		t.Errorf("FormatDay() should pass through non-canonical dates, got %q", got)
	}
}

func TestFormatMonth(t *testing.T) {
	if got := FormatMonth("2024-01"); got != "Jan 2024" {
		t.Errorf("FormatMonth() = %q", got)
	}
	if got := FormatMonth("bad"); got != "bad" {
		t.Errorf("FormatMonth() = %q", got)
	}
}

func TestFormatStreak(t *testing.T) {
	tests := map[int]string{0: "0 days", 1: "1 day", 5: "5 days"}
	for n, want := range tests {
		if got := FormatStreak(n); got != want {
			t.Errorf("FormatStreak(%d) = %q, expected %q", n, got, want)
		}
	}
}

func TestFormatBar(t *testing.T) {
	if got := FormatBar(10, 10, 5); got != "█████" {
		t.Errorf("FormatBar(full) = %q", got)
	}
	if got := FormatBar(1, 100, 10); got != "█" {
		t.Errorf("FormatBar(small) = %q, expected a minimum of one block", got)
	}
	if got := FormatBar(0, 10, 10); got != "" {
		t.Errorf("FormatBar(zero) = %q", got)
	}
}

func TestBuildRangeDescription(t *testing.T) {
	tests := []struct {
		keyword, from, to string
		expected          string
	}{
		{"", "", "", "all entries"},
		{"gym", "", "", `"gym"`},
		{"gym", "2024-01-01", "2024-01-31", `"gym" from 2024-01-01 to 2024-01-31`},
		{"", "", "2024-01-31", "to 2024-01-31"},
	}
	for _, tt := range tests {
		if got := BuildRangeDescription(tt.keyword, tt.from, tt.to); got != tt.expected {
			t.Errorf("BuildRangeDescription(%q, %q, %q) = %q, expected %q", tt.keyword, tt.from, tt.to, got, tt.expected)
		}
	}
}
