// Package normalize canonicalizes user-submitted prose by stripping
// characters and markers commonly introduced by AI writing tools and
// rich-text editors: smart quotes, exotic dashes and spaces, hidden
// formatting characters, markdown emphasis markers, fullwidth punctuation.
//
// The substitution rules are declared as an ordered data table
// (DefaultRules) rather than branching code, so each rule can be unit-tested
// and extended independently of the engine.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// Rule rewrites one class of characters or markers. Apply processes its
// input in a single left-to-right pass and never re-applies to its own
// output; the engine feeds each rule's output to the next rule in declared
// order.
type Rule interface {
	Name() string
	Apply(text string) string
}

// DefaultRules returns the substitution rules in their contractual order:
//
//  1. hidden: invisible/control characters removed
//  2. misc: ellipsis, bullet, middle dot to ASCII punctuation
//  3. fullwidth: fullwidth forms narrowed to ASCII
//  4. markdown: paired emphasis markers and heading markers removed
//  5. spaces: Unicode space separators to ASCII space
//  6. dashes: dash glyphs to hyphen-minus (1:1, runs never merged)
//  7. quotes: smart quotes, primes and guillemets to ASCII quotes
//  8. filter: remaining non-ASCII dropped, common emoji kept
//
// Hidden-character removal runs first so that zero-width characters cannot
// mask marker or line-start detection. The misc and fullwidth maps run
// before the markdown rule: they are the only rules that emit '*' or '#',
// and placing them first keeps the output stable under re-normalization.
// Markdown stripping runs before the space rule so removed markers leave no
// spacing artifacts. No rule after markdown emits a marker character.
func DefaultRules() []Rule {
	return []Rule{
		RuneRangeRule{RuleName: "hidden", Table: hiddenChars, Replacement: ""},
		RuneMapRule{RuleName: "misc", Mapping: miscMap},
		FullwidthRule{},
		MarkdownRule{},
		RuneRangeRule{RuleName: "spaces", Table: spaceSeparators, Replacement: " "},
		RuneMapRule{RuleName: "dashes", Mapping: dashMap},
		RuneMapRule{RuleName: "quotes", Mapping: quoteMap},
		KeepFilterRule{},
	}
}

// hiddenChars covers soft hyphen, Mongolian vowel separator, zero-width and
// directional marks, word joiner and invisible operators, variation
// selectors, and the BOM.
var hiddenChars = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x00AD, Hi: 0x00AD, Stride: 1},
		{Lo: 0x180E, Hi: 0x180E, Stride: 1},
		{Lo: 0x200B, Hi: 0x200F, Stride: 1},
		{Lo: 0x202A, Hi: 0x202E, Stride: 1},
		{Lo: 0x2060, Hi: 0x206F, Stride: 1},
		{Lo: 0xFE00, Hi: 0xFE0F, Stride: 1},
		{Lo: 0xFEFF, Hi: 0xFEFF, Stride: 1},
	},
}

// spaceSeparators covers the non-breaking space, Ogham space mark, the
// typographic space block, narrow no-break space, mathematical space and the
// ideographic space.
var spaceSeparators = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x00A0, Hi: 0x00A0, Stride: 1},
		{Lo: 0x1680, Hi: 0x1680, Stride: 1},
		{Lo: 0x2000, Hi: 0x200A, Stride: 1},
		{Lo: 0x202F, Hi: 0x202F, Stride: 1},
		{Lo: 0x205F, Hi: 0x205F, Stride: 1},
		{Lo: 0x3000, Hi: 0x3000, Stride: 1},
	},
}

// dashMap maps each dash glyph to a single hyphen-minus. The mapping is 1:1
// per glyph, so genuinely repeated dashes in the source stay repeated.
var dashMap = map[rune]string{
	'‒': "-", // figure dash
	'–': "-", // en dash
	'—': "-", // em dash
	'―': "-", // horizontal bar
	'−': "-", // minus sign
}

var quoteMap = map[rune]string{
	'‘': "'",  // left single quote
	'’': "'",  // right single quote
	'‚': "'",  // single low-9 quote
	'‛': "'",  // single high-reversed-9 quote
	'“': `"`,  // left double quote
	'”': `"`,  // right double quote
	'„': `"`,  // double low-9 quote
	'‟': `"`,  // double high-reversed-9 quote
	'′': "'",  // prime
	'″': `"`,  // double prime
	'‴': "",   // triple prime, no ASCII equivalent
	'‵': "'",  // reversed prime
	'‶': `"`,  // reversed double prime
	'«': `"`,  // left guillemet
	'»': `"`,  // right guillemet
}

var miscMap = map[rune]string{
	'…': "...", // horizontal ellipsis
	'•': "*",   // bullet
	'·': ".",   // middle dot
}

// emoji covers the ranges the cleaner deliberately preserves. Joined emoji
// sequences lose their ZWJ and variation selectors to the hidden rule and
// come out as their component emoji.
var emoji = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x2600, Hi: 0x26FF, Stride: 1}, // miscellaneous symbols
		{Lo: 0x2700, Hi: 0x27BF, Stride: 1}, // dingbats
	},
	R32: []unicode.Range32{
		{Lo: 0x1F1E6, Hi: 0x1F1FF, Stride: 1}, // regional indicators
		{Lo: 0x1F300, Hi: 0x1F5FF, Stride: 1}, // pictographs
		{Lo: 0x1F600, Hi: 0x1F64F, Stride: 1}, // emoticons
		{Lo: 0x1F680, Hi: 0x1F6FF, Stride: 1}, // transport and map
		{Lo: 0x1F900, Hi: 0x1F9FF, Stride: 1}, // supplemental pictographs
		{Lo: 0x1FA70, Hi: 0x1FAFF, Stride: 1}, // extended-A pictographs
	},
}

// RuneRangeRule replaces every rune inside a range table with a fixed
// string. An empty Replacement removes the matched runes.
type RuneRangeRule struct {
	RuleName    string
	Table       *unicode.RangeTable
	Replacement string
}

func (r RuneRangeRule) Name() string { return r.RuleName }

func (r RuneRangeRule) Apply(text string) string {
	if !containsIn(text, r.Table) {
		return text
	}
	var sb strings.Builder
	sb.Grow(len(text))
	for _, c := range text {
		if unicode.Is(r.Table, c) {
			sb.WriteString(r.Replacement)
			continue
		}
		sb.WriteRune(c)
	}
	return sb.String()
}

// RuneMapRule replaces individual runes according to a fixed table. Runes
// absent from the table pass through unchanged.
type RuneMapRule struct {
	RuleName string
	Mapping  map[rune]string
}

func (r RuneMapRule) Name() string { return r.RuleName }

func (r RuneMapRule) Apply(text string) string {
	changed := false
	for _, c := range text {
		if _, ok := r.Mapping[c]; ok {
			changed = true
			break
		}
	}
	if !changed {
		return text
	}
	var sb strings.Builder
	sb.Grow(len(text))
	for _, c := range text {
		if repl, ok := r.Mapping[c]; ok {
			sb.WriteString(repl)
			continue
		}
		sb.WriteRune(c)
	}
	return sb.String()
}

// FullwidthRule narrows fullwidth ASCII variants (U+FF01..U+FF5E) to their
// basic Latin equivalents.
type FullwidthRule struct{}

func (FullwidthRule) Name() string { return "fullwidth" }

func (FullwidthRule) Apply(text string) string {
	changed := false
	for _, c := range text {
		if c >= 0xFF01 && c <= 0xFF5E {
			changed = true
			break
		}
	}
	if !changed {
		return text
	}
	var sb strings.Builder
	sb.Grow(len(text))
	for _, c := range text {
		if c >= 0xFF01 && c <= 0xFF5E {
			sb.WriteString(width.Narrow.String(string(c)))
			continue
		}
		sb.WriteRune(c)
	}
	return sb.String()
}

// KeepFilterRule drops every non-ASCII rune that survived the earlier rules,
// except for runes in the preserved emoji ranges. It must run last.
type KeepFilterRule struct{}

func (KeepFilterRule) Name() string { return "filter" }

func (KeepFilterRule) Apply(text string) string {
	changed := false
	for _, c := range text {
		if c > unicode.MaxASCII && !unicode.Is(emoji, c) {
			changed = true
			break
		}
	}
	if !changed {
		return text
	}
	var sb strings.Builder
	sb.Grow(len(text))
	for _, c := range text {
		if c > unicode.MaxASCII && !unicode.Is(emoji, c) {
			continue
		}
		sb.WriteRune(c)
	}
	return sb.String()
}

func containsIn(text string, table *unicode.RangeTable) bool {
	for _, c := range text {
		if unicode.Is(table, c) {
			return true
		}
	}
	return false
}
