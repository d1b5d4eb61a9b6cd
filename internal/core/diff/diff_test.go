package diff

import (
	"context"
	"errors"
	"testing"

	"github.com/baditaflorin/go_text_cleaner/internal/core/domain"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Close() error                 { return nil }

func newTestDiffer(t *testing.T) *Differ {
	t.Helper()
	d, err := NewDiffer(DefaultConfig(), nopLogger{})
	if err != nil {
		t.Fatalf("NewDiffer: %v", err)
	}
	return d
}

func reconstruct(segments []domain.Segment, keep domain.SegmentKind) string {
	var out string
	for _, seg := range segments {
		if seg.Kind == domain.Equal || seg.Kind == keep {
			out += seg.Text
		}
	}
	return out
}

func checkInvariants(t *testing.T, segments []domain.Segment, original, cleaned string) {
	t.Helper()

	if got := reconstruct(segments, domain.Delete); got != original {
		t.Errorf("equal+delete reconstructs %q, want %q", got, original)
	}
	if got := reconstruct(segments, domain.Insert); got != cleaned {
		t.Errorf("equal+insert reconstructs %q, want %q", got, cleaned)
	}
	for i, seg := range segments {
		if seg.Text == "" {
			t.Errorf("segment %d is empty", i)
		}
		if i > 0 && segments[i-1].Kind == seg.Kind {
			t.Errorf("adjacent segments %d and %d share kind %s", i-1, i, seg.Kind)
		}
		if i > 0 && segments[i-1].Kind == domain.Insert && seg.Kind == domain.Delete {
			t.Errorf("segment %d: delete follows insert, want delete first", i)
		}
	}
}

func TestDiffSmartPunctuation(t *testing.T) {
	d := newTestDiffer(t)

	original := "“Hello—world”"
	cleaned := `"Hello-world"`
	segments, err := d.Diff(context.Background(), original, cleaned)
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}

	expected := []domain.Segment{
		{Kind: domain.Delete, Text: "“"},
		{Kind: domain.Insert, Text: `"`},
		{Kind: domain.Equal, Text: "Hello"},
		{Kind: domain.Delete, Text: "—"},
		{Kind: domain.Insert, Text: "-"},
		{Kind: domain.Equal, Text: "world"},
		{Kind: domain.Delete, Text: "”"},
		{Kind: domain.Insert, Text: `"`},
	}
	if len(segments) != len(expected) {
		t.Fatalf("expected %d segments, got %d: %v", len(expected), len(segments), segments)
	}
	for i := range expected {
		if segments[i] != expected[i] {
			t.Errorf("segment %d: expected %v, got %v", i, expected[i], segments[i])
		}
	}
	checkInvariants(t, segments, original, cleaned)
}

func TestDiffMarkerRemoval(t *testing.T) {
	d := newTestDiffer(t)

	segments, err := d.Diff(context.Background(), "**bold**", "bold")
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}

	expected := []domain.Segment{
		{Kind: domain.Delete, Text: "**"},
		{Kind: domain.Equal, Text: "bold"},
		{Kind: domain.Delete, Text: "**"},
	}
	if len(segments) != len(expected) {
		t.Fatalf("expected %d segments, got %d: %v", len(expected), len(segments), segments)
	}
	for i := range expected {
		if segments[i] != expected[i] {
			t.Errorf("segment %d: expected %v, got %v", i, expected[i], segments[i])
		}
	}
}

func TestDiffIdenticalInputs(t *testing.T) {
	d := newTestDiffer(t)

	segments, err := d.Diff(context.Background(), "same text", "same text")
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	if len(segments) != 1 || segments[0].Kind != domain.Equal || segments[0].Text != "same text" {
		t.Fatalf("expected single equal segment, got %v", segments)
	}
}

func TestDiffEmptyInputs(t *testing.T) {
	d := newTestDiffer(t)

	segments, err := d.Diff(context.Background(), "", "")
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	if segments != nil {
		t.Fatalf("expected no segments, got %v", segments)
	}
}

func TestDiffFullyRemovedInput(t *testing.T) {
	d := newTestDiffer(t)

	original := "​‌‍"
	segments, err := d.Diff(context.Background(), original, "")
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	if len(segments) != 1 || segments[0].Kind != domain.Delete || segments[0].Text != original {
		t.Fatalf("expected single delete segment, got %v", segments)
	}
}

func TestDiffReconstruction(t *testing.T) {
	d := newTestDiffer(t)

	pairs := []struct {
		name     string
		original string
		cleaned  string
	}{
		{"Prefix and suffix shared", "aaa—bbb", "aaa-bbb"},
		{"Nothing shared", "abcd", "wxyz"},
		{"Pure insertion", "ac", "abc"},
		{"Pure deletion", "abc", "ac"},
		{"Expansion", "x…y", "x...y"},
		{"Interleaved edits", "“a” b — c…", `"a" b - c...`},
		{"Unicode originals", "naïve café", "nave caf"},
	}

	for _, tc := range pairs {
		t.Run(tc.name, func(t *testing.T) {
			segments, err := d.Diff(context.Background(), tc.original, tc.cleaned)
			if err != nil {
				t.Fatalf("Diff: %v", err)
			}
			checkInvariants(t, segments, tc.original, tc.cleaned)
		})
	}
}

func TestDiffBudgetExceeded(t *testing.T) {
	d, err := NewDiffer(Config{MaxCompareCells: 4}, nopLogger{})
	if err != nil {
		t.Fatalf("NewDiffer: %v", err)
	}

	_, err = d.Diff(context.Background(), "abcde", "vwxyz")
	if !errors.Is(err, ErrTextTooLarge) {
		t.Fatalf("expected ErrTextTooLarge, got %v", err)
	}

	// A shared affix shrinks the alignment below the budget.
	segments, err := d.Diff(context.Background(), "shared — tail", "shared - tail")
	if err != nil {
		t.Fatalf("Diff after trimming: %v", err)
	}
	checkInvariants(t, segments, "shared — tail", "shared - tail")
}

func TestDiffConfigValidate(t *testing.T) {
	if _, err := NewDiffer(Config{MaxCompareCells: 0}, nopLogger{}); err == nil {
		t.Fatal("expected error for zero budget")
	}
}

func TestDiffCancelledContext(t *testing.T) {
	d := newTestDiffer(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := d.Diff(ctx, "a—b", "a-b"); err == nil {
		t.Fatal("expected context error")
	}
}
