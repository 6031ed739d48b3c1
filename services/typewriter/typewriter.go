// Package typewriter reveals a string one character at a time.
//
// A character is a user-perceived character (grapheme cluster), so scripts
// with combining marks such as Devanagari are never cut inside a cluster.
package typewriter

import "github.com/rivo/uniseg"

// Caret is displayed after the revealed text while a reveal is running
const Caret = "|"

// Frame is the displayable output of a reveal at one instant
type Frame struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// Display returns the text with a trailing caret while the reveal is running
func (f Frame) Display() string {
	if f.Done {
		return f.Text
	}
	return f.Text + Caret
}

// Reveal is the cursor over one source string.
type Reveal struct {
	source   string
	bounds   []int // byte offset where each character ends
	revealed int
}

// New creates a reveal positioned before the first character
func New(source string) *Reveal {
	r := &Reveal{}
	r.load(source)
	return r
}

func (r *Reveal) load(source string) {
	r.source = source
	r.revealed = 0
	r.bounds = r.bounds[:0]

	state := -1
	rest := source
	offset := 0
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		offset += len(cluster)
		r.bounds = append(r.bounds, offset)
	}
}

// Source returns the full target string
func (r *Reveal) Source() string {
	return r.source
}

// Len returns the number of characters in the source
func (r *Reveal) Len() int {
	return len(r.bounds)
}

// Revealed returns the reveal cursor
func (r *Reveal) Revealed() int {
	return r.revealed
}

// Done reports whether the whole source is shown
func (r *Reveal) Done() bool {
	return r.revealed >= len(r.bounds)
}

// Tick advances the cursor by one character. It returns false once the
// reveal is complete; the cursor never moves past the end.
func (r *Reveal) Tick() bool {
	if r.Done() {
		return false
	}
	r.revealed++
	return true
}

// Text returns the revealed prefix of the source
func (r *Reveal) Text() string {
	if r.revealed == 0 {
		return ""
	}
	return r.source[:r.bounds[r.revealed-1]]
}

func (r *Reveal) Frame() Frame {
	return Frame{Text: r.Text(), Done: r.Done()}
}

// Reset restarts the reveal from a new source. Assigning the current source
// again keeps the cursor and returns false.
func (r *Reveal) Reset(source string) bool {
	if source == r.source {
		return false
	}
	r.load(source)
	return true
}

// Sequence returns every frame text a complete reveal of source produces,
// starting with the empty string.
func Sequence(source string) []string {
	r := New(source)
	seq := []string{r.Text()}
	for r.Tick() {
		seq = append(seq, r.Text())
	}
	return seq
}
