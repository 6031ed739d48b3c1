package typewriter

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequence(t *testing.T) {
	assert.Equal(t, []string{"", "H", "Hi"}, Sequence("Hi"))
	assert.Equal(t, []string{""}, Sequence(""))
}

func TestRevealStopsAtEnd(t *testing.T) {
	r := New("Hi")
	assert.Equal(t, 2, r.Len())
	assert.False(t, r.Done())

	assert.True(t, r.Tick())
	assert.True(t, r.Tick())
	assert.True(t, r.Done())

	assert.False(t, r.Tick())
	assert.Equal(t, "Hi", r.Text())
	assert.Equal(t, 2, r.Revealed())
}

func TestRevealGraphemeClusters(t *testing.T) {
	// e + combining acute is one character
	assert.Equal(t, []string{"", "n", "ne\u0301", "ne\u0301e"}, Sequence("ne\u0301e"))

	// "नमस्ते" is six code points; vowel signs and viramas never stand alone
	seq := Sequence("नमस्ते")
	assert.Less(t, len(seq)-1, 6)
	assert.Equal(t, "न", seq[1])
	assert.Equal(t, "नमस्ते", seq[len(seq)-1])
	for _, frame := range seq {
		assert.True(t, strings.HasPrefix("नमस्ते", frame))
	}
}

func TestRevealReset(t *testing.T) {
	r := New("Hello")
	r.Tick()
	r.Tick()
	require.Equal(t, "He", r.Text())

	assert.False(t, r.Reset("Hello"), "same source keeps the cursor")
	assert.Equal(t, "He", r.Text())

	assert.True(t, r.Reset("Bonjour"))
	assert.Equal(t, "", r.Text())
	assert.Equal(t, 0, r.Revealed())
	r.Tick()
	assert.Equal(t, "B", r.Text())
}

func TestFrameDisplay(t *testing.T) {
	assert.Equal(t, "H"+Caret, Frame{Text: "H"}.Display())
	assert.Equal(t, "Hi", Frame{Text: "Hi", Done: true}.Display())
}

// recorder collects emitted frames from the animator goroutine
type recorder struct {
	mu     sync.Mutex
	frames []Frame
}

func (r *recorder) emit(f Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, f)
}

func (r *recorder) texts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.frames))
	for i, f := range r.frames {
		out[i] = f.Text
	}
	return out
}

func (r *recorder) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.frames)
}

func TestAnimatorRunsToCompletion(t *testing.T) {
	rec := &recorder{}
	a := NewAnimator(context.Background(), time.Millisecond, rec.emit)

	assert.True(t, a.Start("Hi"))
	a.Wait()

	assert.Equal(t, []string{"", "H", "Hi"}, rec.texts())
	rec.mu.Lock()
	assert.True(t, rec.frames[len(rec.frames)-1].Done)
	rec.mu.Unlock()

	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, 3, rec.len(), "no frames after the terminal one")
}

func TestAnimatorRestartOnNewSource(t *testing.T) {
	rec := &recorder{}
	a := NewAnimator(context.Background(), 5*time.Millisecond, rec.emit)

	require.True(t, a.Start("Hello"))
	require.Eventually(t, func() bool { return rec.len() >= 3 }, time.Second, time.Millisecond)

	assert.True(t, a.Start("Bonjour"))
	before := rec.len()
	a.Wait()

	texts := rec.texts()
	assert.Equal(t, Sequence("Bonjour"), texts[before:])
	for _, text := range texts[before:] {
		assert.True(t, strings.HasPrefix("Bonjour", text), "stale frame %q", text)
	}
	for _, text := range texts[:before] {
		assert.True(t, strings.HasPrefix("Hello", text))
	}
}

func TestAnimatorSameSourceIsNoop(t *testing.T) {
	rec := &recorder{}
	a := NewAnimator(context.Background(), time.Millisecond, rec.emit)

	require.True(t, a.Start("Hi"))
	a.Wait()
	assert.False(t, a.Start("Hi"))
	assert.Equal(t, 3, rec.len())
}

func TestAnimatorStop(t *testing.T) {
	rec := &recorder{}
	a := NewAnimator(context.Background(), 5*time.Millisecond, rec.emit)

	require.True(t, a.Start("A fairly long headline"))
	require.Eventually(t, func() bool { return rec.len() >= 2 }, time.Second, time.Millisecond)

	a.Stop()
	stopped := rec.len()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, rec.len())
	assert.Equal(t, "", a.Source())
}

func TestAnimatorParentCancel(t *testing.T) {
	rec := &recorder{}
	ctx, cancel := context.WithCancel(context.Background())
	a := NewAnimator(ctx, 5*time.Millisecond, rec.emit)

	require.True(t, a.Start("A fairly long headline"))
	cancel()
	a.Wait()

	after := rec.len()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, rec.len())
	assert.False(t, a.Start("Another headline"), "cancelled animator does not start")
}

func TestAnimatorEmptySource(t *testing.T) {
	rec := &recorder{}
	a := NewAnimator(context.Background(), time.Millisecond, rec.emit)

	require.True(t, a.Start(""))
	a.Wait()
	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.Equal(t, []Frame{{Text: "", Done: true}}, rec.frames)
}
