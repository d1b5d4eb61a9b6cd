package domain

// SegmentKind classifies a diff segment relative to the two texts.
type SegmentKind string

const (
	// Equal marks text present in both the original and the cleaned output.
	Equal SegmentKind = "equal"
	// Insert marks text present only in the cleaned output.
	Insert SegmentKind = "insert"
	// Delete marks text present only in the original.
	Delete SegmentKind = "delete"
)

// Segment is one maximal run of the character-level diff. Concatenating the
// text of all equal and delete segments reproduces the original input;
// concatenating equal and insert reproduces the cleaned output.
type Segment struct {
	Kind SegmentKind `json:"type"`
	Text string      `json:"text"`
}

// Result holds the outcome of a text cleanup computation.
type Result struct {
	Name string
	// CleanedText is the input after all substitution rules were applied.
	CleanedText string
	// Segments is the ordered character-level diff between the input and
	// CleanedText. Nil only for empty input.
	Segments []Segment
	// Changed reports whether cleanup altered the input at all.
	Changed bool
	// OriginalLength is the rune count of the input.
	OriginalLength int
	// CleanedLength is the rune count of CleanedText.
	CleanedLength int
	// Details holds additional diagnostic information.
	Details map[string]interface{}
}
