package wordcount

import (
	"slices"
	"strings"
	"testing"
)

func TestCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		text      string
		wantKeys  []string
		wantCount map[string]int
	}{
		{
			name:      "first-seen order",
			text:      "a b a c b a",
			wantKeys:  []string{"a", "b", "c"},
			wantCount: map[string]int{"a": 3, "b": 2, "c": 1},
		},
		{
			name:      "punctuation stays attached",
			text:      "hello, hello world.",
			wantKeys:  []string{"hello,", "hello", "world."},
			wantCount: map[string]int{"hello,": 1, "hello": 1, "world.": 1},
		},
		{
			name:      "case sensitive",
			text:      "Go go GO go",
			wantKeys:  []string{"Go", "go", "GO"},
			wantCount: map[string]int{"Go": 1, "go": 2, "GO": 1},
		},
		{
			name:      "numeric tokens are words",
			text:      "1 2\n1\t3",
			wantKeys:  []string{"1", "2", "3"},
			wantCount: map[string]int{"1": 2, "2": 1, "3": 1},
		},
		{
			name:      "empty input",
			text:      "   \n  ",
			wantKeys:  []string{},
			wantCount: map[string]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			table := Count(strings.Fields(tt.text))

			if got := table.Keys(); !slices.Equal(got, tt.wantKeys) {
				t.Errorf("Keys() = %v, want %v", got, tt.wantKeys)
			}
			for k, want := range tt.wantCount {
				if got := table.Count(k); got != want {
					t.Errorf("Count(%q) = %d, want %d", k, got, want)
				}
			}
		})
	}
}

func TestTop(t *testing.T) {
	t.Parallel()

	table := Count(strings.Fields("x y z y z z w"))

	t.Run("orders by count then first-seen", func(t *testing.T) {
		t.Parallel()

		got := Top(table, 0)
		var keys []string
		for _, e := range got {
			keys = append(keys, e.Key)
		}
		want := []string{"z", "y", "x", "w"}
		if !slices.Equal(keys, want) {
			t.Errorf("Top() keys = %v, want %v", keys, want)
		}
	})

	t.Run("limits result size", func(t *testing.T) {
		t.Parallel()

		got := Top(table, 2)
		if len(got) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(got))
		}
		if got[0].Key != "z" || got[0].Count != 3 {
			t.Errorf("unexpected first entry: %+v", got[0])
		}
	})

	t.Run("does not reorder the table", func(t *testing.T) {
		t.Parallel()

		_ = Top(table, 1)
		if keys := table.Keys(); keys[0] != "x" {
			t.Errorf("table order changed: %v", keys)
		}
	})
}
