package diff

import "github.com/baditaflorin/go_text_cleaner/internal/core/domain"

// segmentBuilder accumulates diff segments in document order, merging
// adjacent segments of the same kind into maximal runs and keeping deletions
// ahead of insertions wherever both occur between two equal anchors, so a
// substitution always reads as "old span removed, new span added".
type segmentBuilder struct {
	segs []domain.Segment
}

func (b *segmentBuilder) add(kind domain.SegmentKind, text string) {
	if text == "" {
		return
	}
	n := len(b.segs)
	if kind == domain.Delete && n > 0 && b.segs[n-1].Kind == domain.Insert {
		// A delete arriving after an insert belongs before it.
		if n > 1 && b.segs[n-2].Kind == domain.Delete {
			b.segs[n-2].Text += text
			return
		}
		b.segs = append(b.segs, domain.Segment{})
		b.segs[n] = b.segs[n-1]
		b.segs[n-1] = domain.Segment{Kind: domain.Delete, Text: text}
		return
	}
	if n > 0 && b.segs[n-1].Kind == kind {
		b.segs[n-1].Text += text
		return
	}
	b.segs = append(b.segs, domain.Segment{Kind: kind, Text: text})
}

func (b *segmentBuilder) equal(text []rune) {
	b.add(domain.Equal, string(text))
}

func (b *segmentBuilder) insert(text []rune) {
	b.add(domain.Insert, string(text))
}

func (b *segmentBuilder) delete(text []rune) {
	b.add(domain.Delete, string(text))
}

func (b *segmentBuilder) segments() []domain.Segment {
	return b.segs
}
