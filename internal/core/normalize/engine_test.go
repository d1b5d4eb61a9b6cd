package normalize

import (
	"testing"
)

func TestNormalizeArtifacts(t *testing.T) {
	engine := NewDefaultEngine()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Zero-width space removed",
			input:    "Hello​World",
			expected: "HelloWorld",
		},
		{
			name:     "Non-breaking space to plain space",
			input:    "Text with nbsp",
			expected: "Text with nbsp",
		},
		{
			name:     "Em dash to hyphen",
			input:    "Em—dash",
			expected: "Em-dash",
		},
		{
			name:     "Smart quotes to ASCII",
			input:    "‘Smart’ “quotes”",
			expected: `'Smart' "quotes"`,
		},
		{
			name:     "Ellipsis expanded",
			input:    "Ellipsis…",
			expected: "Ellipsis...",
		},
		{
			name:     "Fullwidth letters narrowed",
			input:    "Ｈｅｌｌｏ",
			expected: "Hello",
		},
		{
			name:     "Fullwidth punctuation narrowed",
			input:    "Fullwidth: ！＃Ａａ",
			expected: "Fullwidth: !#Aa",
		},
		{
			name:     "Soft hyphen removed",
			input:    "Text with soft­hyphen",
			expected: "Text with softhyphen",
		},
		{
			name:     "Unmapped non-ASCII dropped",
			input:    "dollar $ and euro € symbol",
			expected: "dollar $ and euro  symbol",
		},
		{
			name:     "Copyright sign dropped",
			input:    "Copyright © symbol",
			expected: "Copyright  symbol",
		},
		{
			name:     "Single emoji kept",
			input:    "smile \U0001F60A face",
			expected: "smile \U0001F60A face",
		},
		{
			name:     "BOM and word joiner removed",
			input:    "test\uFEFFwith⁠bom",
			expected: "testwithbom",
		},
		{
			name:     "All dash variants",
			input:    "Dashes: ‒ – — ― −",
			expected: "Dashes: - - - - -",
		},
		{
			name:     "Repeated dashes stay repeated",
			input:    "a——b",
			expected: "a--b",
		},
		{
			name:     "Space variants",
			input:    "Spaces:  | | |　",
			expected: "Spaces:  | | | ",
		},
		{
			name:     "Bullet and middle dot",
			input:    "Misc: • ·",
			expected: "Misc: * .",
		},
		{
			name:     "Bullet pair becomes emphasis and is stripped",
			input:    "•item•",
			expected: "item",
		},
		{
			name:     "Fullwidth asterisk pair becomes emphasis and is stripped",
			input:    "＊item＊",
			expected: "item",
		},
		{
			name:     "Fullwidth heading marker stripped",
			input:    "＃ Heading",
			expected: "Heading",
		},
		{
			name:     "ZWNJ and ZWJ removed",
			input:    "Control: ‌ and ‍",
			expected: "Control:  and ",
		},
		{
			name:     "Variation selector removed, heart kept",
			input:    "Variation: text❤️emoji",
			expected: "Variation: text❤emoji",
		},
		{
			name:     "Triple prime removed",
			input:    "Triple prime ‴ test",
			expected: "Triple prime  test",
		},
		{
			name:     "Guillemets to double quotes",
			input:    "Angled quotes: «text»",
			expected: `Angled quotes: "text"`,
		},
		{
			name:     "Joined emoji falls apart, parts kept",
			input:    "Family emoji: \U0001F468‍\U0001F469‍\U0001F467‍\U0001F466",
			expected: "Family emoji: \U0001F468\U0001F469\U0001F467\U0001F466",
		},
		{
			name:     "Flag emoji kept",
			input:    "Flag: \U0001F1FA\U0001F1F8",
			expected: "Flag: \U0001F1FA\U0001F1F8",
		},
		{
			name:     "Bold markers stripped",
			input:    "**bold**",
			expected: "bold",
		},
		{
			name:     "Heading marker stripped",
			input:    "# Heading\nbody",
			expected: "Heading\nbody",
		},
		{
			name:     "Markdown around smart punctuation",
			input:    "**“bold”**",
			expected: `"bold"`,
		},
		{
			name:     "Empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "Already canonical",
			input:    "Plain ASCII text, nothing to do.",
			expected: "Plain ASCII text, nothing to do.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := engine.Normalize(tc.input)
			if got != tc.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.expected)
			}

			// Re-normalizing canonical text must yield it back.
			again := engine.Normalize(got)
			if again != got {
				t.Errorf("Normalize not idempotent: %q -> %q -> %q", tc.input, got, again)
			}
		})
	}
}

func TestDefaultRuleOrder(t *testing.T) {
	want := []string{"hidden", "misc", "fullwidth", "markdown", "spaces", "dashes", "quotes", "filter"}
	rules := DefaultRules()
	if len(rules) != len(want) {
		t.Fatalf("expected %d rules, got %d", len(want), len(rules))
	}
	for i, r := range rules {
		if r.Name() != want[i] {
			t.Errorf("rule %d: expected %q, got %q", i, want[i], r.Name())
		}
	}
}

func TestEngineRulesExposed(t *testing.T) {
	engine := NewDefaultEngine()
	if len(engine.Rules()) == 0 {
		t.Fatal("expected engine to expose its rule list")
	}
}
