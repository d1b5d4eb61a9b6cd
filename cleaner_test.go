// cleaner_test.go
package textcleaner

import (
	"context"
	"testing"
)

func TestNormalize(t *testing.T) {
	// Representative artifacts from each rule category.
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Smart quotes and em dash",
			input:    "“Hello—world”",
			expected: `"Hello-world"`,
		},
		{
			name:     "Hidden characters",
			input:    "invisi​ble\uFEFF",
			expected: "invisible",
		},
		{
			name:     "Markdown emphasis",
			input:    "**bold** and *italic*",
			expected: "bold and italic",
		},
		{
			name:     "Already canonical",
			input:    "plain text stays put",
			expected: "plain text stays put",
		},
		{
			name:     "Empty",
			input:    "",
			expected: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.input)
			if got != tc.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.expected)
			}
			if again := Normalize(got); again != got {
				t.Errorf("Normalize not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestDiff(t *testing.T) {
	original := "**bold**"
	cleaned := Normalize(original)

	segments, err := Diff(context.Background(), original, cleaned)
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}

	var fromDelete, fromInsert string
	for i, seg := range segments {
		if i > 0 && segments[i-1].Kind == seg.Kind {
			t.Errorf("adjacent segments share kind %s", seg.Kind)
		}
		if seg.Kind == Equal || seg.Kind == Delete {
			fromDelete += seg.Text
		}
		if seg.Kind == Equal || seg.Kind == Insert {
			fromInsert += seg.Text
		}
	}
	if fromDelete != original {
		t.Errorf("equal+delete reconstructs %q, want %q", fromDelete, original)
	}
	if fromInsert != cleaned {
		t.Errorf("equal+insert reconstructs %q, want %q", fromInsert, cleaned)
	}
}

func TestCleanerPipeline(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	result, err := c.Clean(context.Background(), "‘quoted’ text")
	if err != nil {
		t.Fatalf("Clean: %v", err)
	}
	if result.CleanedText != "'quoted' text" {
		t.Errorf("expected %q, got %q", "'quoted' text", result.CleanedText)
	}
	if !result.Changed {
		t.Error("expected Changed=true")
	}
}

func TestCleanerBudgetOption(t *testing.T) {
	c, err := New(WithMaxCompareCells(1))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := c.Clean(context.Background(), "“ab” or ‘cd’"); err == nil {
		t.Fatal("expected budget error")
	}
}
