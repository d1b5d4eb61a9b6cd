// Package diff computes a character-level diff between an original text and
// its cleaned form as an ordered sequence of equal, insert and delete
// segments. The alignment is a longest-common-subsequence computed with
// Hirschberg's divide-and-conquer, which needs only two dynamic-programming
// rows at a time, so memory stays linear in the input length while time is
// O(N*M). A configurable cap on the post-trim N*M product bounds worst-case
// work per call.
package diff

import (
	"context"
	"errors"

	"github.com/baditaflorin/go_text_cleaner/internal/core/domain"
	"github.com/baditaflorin/go_text_cleaner/internal/pool"
	"github.com/baditaflorin/go_text_cleaner/internal/ports"
)

// ErrTextTooLarge is returned when aligning the two texts would exceed the
// configured comparison budget. The caller decides whether to reject,
// truncate, or fall back to a coarser diff; the segments are never silently
// truncated.
var ErrTextTooLarge = errors.New("diff: texts too large for character alignment")

// Config holds configuration for the differ.
type Config struct {
	// MaxCompareCells caps the product of the two text lengths (in runes,
	// after common prefix and suffix trimming) that the differ is willing
	// to align.
	MaxCompareCells int64
}

// DefaultConfig returns a default configuration. The default budget keeps a
// single comparison in the tens-of-milliseconds range.
func DefaultConfig() Config {
	return Config{
		MaxCompareCells: 16 << 20,
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if c.MaxCompareCells <= 0 {
		return errors.New("maxCompareCells must be greater than 0")
	}
	return nil
}

// Differ implements the character-level LCS diff.
type Differ struct {
	config Config
	logger ports.Logger
	runes  *pool.RuneBufferPool
	rows   *pool.IntRowPool
}

// NewDiffer creates a new character-level differ.
func NewDiffer(config Config, logger ports.Logger) (*Differ, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Differ{
		config: config,
		logger: logger,
		runes:  pool.NewRuneBufferPool(4096),
		rows:   pool.NewIntRowPool(4096),
	}, nil
}

// Diff aligns original and cleaned and returns the segments in left-to-right
// document order. Identical inputs yield a single equal segment; two empty
// inputs yield no segments. It fails only when the comparison budget is
// exceeded or the context is cancelled.
func (d *Differ) Diff(ctx context.Context, original, cleaned string) ([]domain.Segment, error) {
	if original == cleaned {
		if original == "" {
			return nil, nil
		}
		return []domain.Segment{{Kind: domain.Equal, Text: original}}, nil
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	ab := d.runes.Get()
	bb := d.runes.Get()
	defer d.runes.Put(ab)
	defer d.runes.Put(bb)
	*ab = appendRunes((*ab)[:0], original)
	*bb = appendRunes((*bb)[:0], cleaned)
	a, b := *ab, *bb

	// Trim the common prefix and suffix before aligning; normalization
	// typically touches a small fraction of the text.
	p := 0
	for p < len(a) && p < len(b) && a[p] == b[p] {
		p++
	}
	s := 0
	for s < len(a)-p && s < len(b)-p && a[len(a)-1-s] == b[len(b)-1-s] {
		s++
	}
	am := a[p : len(a)-s]
	bm := b[p : len(b)-s]

	if int64(len(am))*int64(len(bm)) > d.config.MaxCompareCells {
		d.logger.Warn("Comparison budget exceeded",
			"original_runes", len(a),
			"cleaned_runes", len(b),
			"max_compare_cells", d.config.MaxCompareCells,
		)
		return nil, ErrTextTooLarge
	}

	builder := &segmentBuilder{}
	builder.equal(a[:p])
	d.align(am, bm, builder)
	builder.equal(a[len(a)-s:])
	return builder.segments(), nil
}

// align recursively splits the alignment at the midpoint of a, choosing the
// split of b that maximizes the combined LCS length of both halves.
func (d *Differ) align(a, b []rune, out *segmentBuilder) {
	switch {
	case len(a) == 0:
		out.insert(b)
	case len(b) == 0:
		out.delete(a)
	case len(a) == 1:
		d.alignOneAgainst(a[0], b, out)
	case len(b) == 1:
		d.alignAgainstOne(a, b[0], out)
	default:
		mid := len(a) / 2
		left := d.rows.Get(len(b) + 1)
		right := d.rows.Get(len(b) + 1)
		lcsForward(a[:mid], b, *left)
		lcsBackward(a[mid:], b, *right)
		split, best := 0, -1
		for j := 0; j <= len(b); j++ {
			if sum := (*left)[j] + (*right)[j]; sum > best {
				best, split = sum, j
			}
		}
		d.rows.Put(left)
		d.rows.Put(right)
		d.align(a[:mid], b[:split], out)
		d.align(a[mid:], b[split:], out)
	}
}

// alignOneAgainst aligns a single original rune against b: it matches the
// leftmost occurrence, or deletes the rune ahead of the insertion when there
// is none.
func (d *Differ) alignOneAgainst(c rune, b []rune, out *segmentBuilder) {
	for i, r := range b {
		if r == c {
			out.insert(b[:i])
			out.add(domain.Equal, string(c))
			out.insert(b[i+1:])
			return
		}
	}
	out.add(domain.Delete, string(c))
	out.insert(b)
}

// alignAgainstOne aligns a against a single cleaned rune.
func (d *Differ) alignAgainstOne(a []rune, c rune, out *segmentBuilder) {
	for i, r := range a {
		if r == c {
			out.delete(a[:i])
			out.add(domain.Equal, string(c))
			out.delete(a[i+1:])
			return
		}
	}
	out.delete(a)
	out.add(domain.Insert, string(c))
}

// lcsForward fills row such that row[j] is the LCS length of a and b[:j].
func lcsForward(a, b []rune, row []int) {
	for j := range row {
		row[j] = 0
	}
	for i := 0; i < len(a); i++ {
		prev := 0 // row[j-1] from the previous iteration of i
		for j := 1; j <= len(b); j++ {
			cur := row[j]
			if a[i] == b[j-1] {
				row[j] = prev + 1
			} else if row[j-1] > row[j] {
				row[j] = row[j-1]
			}
			prev = cur
		}
	}
}

// lcsBackward fills row such that row[j] is the LCS length of a and b[j:].
func lcsBackward(a, b []rune, row []int) {
	for j := range row {
		row[j] = 0
	}
	for i := len(a) - 1; i >= 0; i-- {
		prev := 0 // row[j+1] from the previous iteration of i
		for j := len(b) - 1; j >= 0; j-- {
			cur := row[j]
			if a[i] == b[j] {
				row[j] = prev + 1
			} else if row[j+1] > row[j] {
				row[j] = row[j+1]
			}
			prev = cur
		}
	}
}

func appendRunes(buf []rune, s string) []rune {
	for _, r := range s {
		buf = append(buf, r)
	}
	return buf
}
