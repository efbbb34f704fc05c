package preprocess

import (
	"reflect"
	"testing"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		strip     bool
		wantLines []string
	}{
		{
			name:      "simple lines",
			input:     "a,b\nc,d",
			wantLines: []string{"a,b", "c,d"},
		},
		{
			name:      "blank line dropped",
			input:     "a,b\n\nc,d",
			wantLines: []string{"a,b", "c,d"},
		},
		{
			name:      "whitespace-only line dropped",
			input:     "a,b\n \t \nc,d",
			wantLines: []string{"a,b", "c,d"},
		},
		{
			name:      "line with surrounding spaces kept verbatim",
			input:     "a,b\n\n c,d \n",
			wantLines: []string{"a,b", " c,d "},
		},
		{
			name:      "trailing newline trimmed",
			input:     "a,b\n",
			wantLines: []string{"a,b"},
		},
		{
			name:      "trailing whitespace of whole text trimmed",
			input:     "a,b\n  \n\t\n",
			wantLines: []string{"a,b"},
		},
		{
			name:      "empty input",
			input:     "",
			wantLines: []string{},
		},
		{
			name:      "all blank input",
			input:     "   \n  \n",
			wantLines: []string{},
		},
		{
			name:      "strip disabled leaves trailing separators",
			input:     "a,b,\nc,d,",
			strip:     false,
			wantLines: []string{"a,b,", "c,d,"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clean(tt.input, ',', tt.strip)
			if !reflect.DeepEqual(got.Lines, tt.wantLines) {
				t.Errorf("Clean() lines = %q, want %q", got.Lines, tt.wantLines)
			}
		})
	}
}

func TestCleanStripTrailingSep(t *testing.T) {
	t.Run("all lines end with separator", func(t *testing.T) {
		got := Clean("a,b,\nc,d,\n", ',', true)
		if !got.Stripped {
			t.Fatal("Clean() Stripped = false, want true")
		}
		wantLines := []string{"a,b", "c,d"}
		if !reflect.DeepEqual(got.Lines, wantLines) {
			t.Errorf("Clean() lines = %q, want %q", got.Lines, wantLines)
		}
		wantEnded := []int{0, 1}
		if !reflect.DeepEqual(got.SepEnded, wantEnded) {
			t.Errorf("Clean() SepEnded = %v, want %v", got.SepEnded, wantEnded)
		}
	})

	t.Run("all or nothing", func(t *testing.T) {
		// Second line lacks the trailing separator, so nothing is stripped.
		got := Clean("a,b,\nc,d\n", ',', true)
		if got.Stripped {
			t.Fatal("Clean() Stripped = true, want false")
		}
		wantLines := []string{"a,b,", "c,d"}
		if !reflect.DeepEqual(got.Lines, wantLines) {
			t.Errorf("Clean() lines = %q, want %q", got.Lines, wantLines)
		}
		if len(got.SepEnded) != 0 {
			t.Errorf("Clean() SepEnded = %v, want empty", got.SepEnded)
		}
	})

	t.Run("blank lines ignored by the all-or-nothing rule", func(t *testing.T) {
		got := Clean("a,b,\n\nc,d,", ',', true)
		if !got.Stripped {
			t.Fatal("Clean() Stripped = false, want true")
		}
		wantLines := []string{"a,b", "c,d"}
		if !reflect.DeepEqual(got.Lines, wantLines) {
			t.Errorf("Clean() lines = %q, want %q", got.Lines, wantLines)
		}
	})

	t.Run("multi-byte separator rune", func(t *testing.T) {
		got := Clean("a§b§\nc§d§", '§', true)
		if !got.Stripped {
			t.Fatal("Clean() Stripped = false, want true")
		}
		wantLines := []string{"a§b", "c§d"}
		if !reflect.DeepEqual(got.Lines, wantLines) {
			t.Errorf("Clean() lines = %q, want %q", got.Lines, wantLines)
		}
	})
}

func TestCleanIdempotent(t *testing.T) {
	// Re-running Clean on already-cleaned text is a no-op.
	inputs := []string{
		"a,b\nc,d",
		"x",
		"a,b\n c,d ",
	}
	for _, input := range inputs {
		once := Clean(input, ',', false)
		again := Clean(joinLines(once.Lines), ',', false)
		if !reflect.DeepEqual(once.Lines, again.Lines) {
			t.Errorf("Clean() not idempotent for %q: %q != %q", input, once.Lines, again.Lines)
		}
	}
}

func joinLines(lines []string) string {
	out := ""
	for i, line := range lines {
		if i > 0 {
			out += "\n"
		}
		out += line
	}
	return out
}
