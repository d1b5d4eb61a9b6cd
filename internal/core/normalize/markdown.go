package normalize

import "strings"

// MarkdownRule strips markdown emphasis and heading markers while keeping
// the enclosed text: **bold** and *italic* lose their asterisk pairs, and
// "# Heading" lines lose the leading hashes and the single following space.
//
// Only paired, properly flanked emphasis markers are consumed: an opener
// must be followed by a non-space rune and have a closing marker later in
// the text, a closer must be preceded by a non-space rune. Unpaired
// asterisks (bullet lists, arithmetic) pass through unchanged, which keeps
// the rule idempotent.
type MarkdownRule struct{}

func (MarkdownRule) Name() string { return "markdown" }

func (MarkdownRule) Apply(text string) string {
	if !strings.ContainsAny(text, "*#") {
		return text
	}
	src := []rune(text)
	var sb strings.Builder
	sb.Grow(len(text))

	openSingle := false
	openDouble := false

	for i := 0; i < len(src); {
		c := src[i]
		if c == '#' && atLineStart(src, i) {
			if n := headingMarker(src, i); n > 0 {
				i += n
				continue
			}
		}
		if c == '*' {
			run := asteriskRun(src, i)
			if run >= 2 {
				if consumed, open := emphasisMarker(src, i, 2, openDouble); consumed {
					openDouble = open
					i += 2
					continue
				}
			}
			if consumed, open := emphasisMarker(src, i, 1, openSingle); consumed {
				openSingle = open
				i++
				continue
			}
		}
		sb.WriteRune(c)
		i++
	}
	return sb.String()
}

func atLineStart(src []rune, i int) bool {
	return i == 0 || src[i-1] == '\n'
}

// headingMarker reports the marker length to consume for a heading at line
// start: one to six hashes followed by a single space. Anything else (a bare
// hashtag, a seven-hash run) is left alone.
func headingMarker(src []rune, i int) int {
	n := 0
	for i+n < len(src) && src[i+n] == '#' {
		n++
	}
	if n > 6 {
		return 0
	}
	if i+n < len(src) && src[i+n] == ' ' {
		return n + 1
	}
	return 0
}

func asteriskRun(src []rune, i int) int {
	n := 0
	for i+n < len(src) && src[i+n] == '*' {
		n++
	}
	return n
}

// emphasisMarker decides whether the width-long asterisk marker at i is a
// valid opener or closer, given whether a marker of that width is currently
// open. It returns whether to consume the marker and the new open state.
func emphasisMarker(src []rune, i, markerWidth int, open bool) (bool, bool) {
	if open {
		// A closer needs a non-space rune immediately before it.
		if i > 0 && src[i-1] != ' ' && src[i-1] != '\n' {
			return true, false
		}
		return false, open
	}
	// An opener needs a non-space rune after the marker and a closing
	// asterisk somewhere ahead.
	after := i + markerWidth
	if after >= len(src) || src[after] == ' ' || src[after] == '\n' {
		return false, open
	}
	if markerWidth == 1 && src[after] == '*' {
		// Part of a longer asterisk run, not a single-emphasis opener.
		return false, open
	}
	for j := after; j < len(src); j++ {
		if src[j] == '*' {
			return true, true
		}
	}
	return false, open
}
