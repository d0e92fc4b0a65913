package repl

import "testing"

func TestWordBounds_Operators(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		cursor    int
		wantWord  string
		wantStart int
		wantEnd   int
	}{
		{"simple", "foo", 3, "foo", 0, 3},
		{"after_plus", "a + fo", 6, "fo", 4, 6},
		{"after_paren", "double(fo", 9, "fo", 7, 9},
		{"after_comma", "add(a, fo", 9, "fo", 7, 9},
		{"after_comparison", "a > fo", 6, "fo", 4, 6},
		{"after_assign", "x = fo", 6, "fo", 4, 6},
		{"after_semicolon", "let x = 1; fo", 13, "fo", 11, 13},
		{"empty_at_boundary", "a + ", 4, "", 4, 4},
		{"mid_word", "foobar", 3, "foobar", 0, 6},
		{"at_start", "foo", 0, "foo", 0, 3},
		{"between_operators", "a+b", 2, "b", 2, 3},
		{"inside_braces", "while(x){fo", 11, "fo", 9, 11},
		{"underscored", "loop_count", 10, "loop_count", 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word, start, end := wordBounds(tt.input, tt.cursor)
			if word != tt.wantWord || start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("wordBounds(%q, %d) = (%q, %d, %d), want (%q, %d, %d)",
					tt.input, tt.cursor, word, start, end,
					tt.wantWord, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestKeywordCandidates_SortedAndComplete(t *testing.T) {
	expected := map[string]bool{
		"let": false, "fn": false, "if": false, "else": false,
		"while": false, "return": false, "print": false, "input": false,
		"true": false, "false": false,
	}

	prev := ""

	for _, name := range keywordCandidates {
		if name < prev {
			t.Errorf("candidates not sorted: %q after %q", name, prev)
		}

		prev = name

		if _, ok := expected[name]; ok {
			expected[name] = true
		}
	}

	for name, seen := range expected {
		if !seen {
			t.Errorf("keyword %q missing from candidates", name)
		}
	}
}

func TestHistory_WriteAndGet(t *testing.T) {
	h := NewHistory(t.TempDir() + "/history.utf8")

	for _, line := range []string{"let x = 1;", "print x;", "let x = 1;"} {
		if _, err := h.Write(line); err != nil {
			t.Fatalf("Write(%q) failed: %v", line, err)
		}
	}

	// Duplicate moved to the end, so only two entries remain.
	if h.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", h.Len())
	}

	last, err := h.GetLine(1)
	if err != nil {
		t.Fatalf("GetLine failed: %v", err)
	}

	if last != "let x = 1;" {
		t.Errorf("expected duplicate at end, got %q", last)
	}

	if _, err := h.GetLine(5); err == nil {
		t.Error("expected out of range error")
	}
}

func TestHistory_RoundTrip(t *testing.T) {
	path := t.TempDir() + "/history.utf8"

	h := NewHistory(path)
	if _, err := h.Write("print 42;"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	// A fresh instance reads back the persisted entries.
	reloaded := NewHistory(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if reloaded.Len() != 1 {
		t.Fatalf("expected 1 entry after reload, got %d", reloaded.Len())
	}

	line, err := reloaded.GetLine(0)
	if err != nil {
		t.Fatalf("GetLine failed: %v", err)
	}

	if line != "print 42;" {
		t.Errorf("expected %q, got %q", "print 42;", line)
	}
}

func TestHistory_LoadMissingFile(t *testing.T) {
	h := NewHistory(t.TempDir() + "/absent")

	if err := h.Load(); err != nil {
		t.Errorf("Load of missing file should not error: %v", err)
	}

	if h.Len() != 0 {
		t.Errorf("expected empty history, got %d entries", h.Len())
	}
}
