package live

import (
	"context"
	"strings"
	"testing"
	"time"
	"travel_crm_go/services/engagement"
	"travel_crm_go/services/typewriter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var headlines = map[string]map[string]string{
	"en": {"hero.title": "Hello", "finalCTA.title": "Go"},
	"hi": {"hero.title": "Bonjour", "finalCTA.title": "Allez"},
}

func testOptions(interval time.Duration) Options {
	return Options{
		Interval: interval,
		Translate: func(lang, key string) string {
			return headlines[lang][key]
		},
	}
}

type harness struct {
	in     chan Inbound
	out    chan Outbound
	cancel context.CancelFunc
	done   chan struct{}
}

func startSession(t *testing.T, lang string, opts Options) (*Session, *harness) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	h := &harness{
		in:     make(chan Inbound),
		out:    make(chan Outbound, 256),
		cancel: cancel,
		done:   make(chan struct{}),
	}
	s := NewSession(lang, opts)
	go func() {
		s.Run(ctx, h.in, h.out)
		close(h.done)
	}()
	t.Cleanup(func() {
		cancel()
		<-h.done
	})
	return s, h
}

// next waits for the next outbound message matching keep
func (h *harness) next(t *testing.T, keep func(Outbound) bool) Outbound {
	t.Helper()
	timeout := time.After(2 * time.Second)
	for {
		select {
		case msg := <-h.out:
			if keep(msg) {
				return msg
			}
		case <-timeout:
			t.Fatal("timed out waiting for message")
		}
	}
}

// typed collects a section's frames until its reveal completes
func (h *harness) typed(t *testing.T, section string) []string {
	t.Helper()
	var texts []string
	for {
		msg := h.next(t, func(m Outbound) bool { return m.Type == TypeTypewriter && m.Section == section })
		texts = append(texts, msg.Text)
		if msg.Done {
			return texts
		}
	}
}

func isModal(m Outbound) bool { return m.Type == TypeModal }

func scroll(y float64) Inbound {
	return Inbound{Type: TypeScroll, ScrollMetrics: engagement.ScrollMetrics{ScrollPosition: y, ViewportHeight: 1000, DocumentHeight: 10000}}
}

func TestSessionTypesHeroOnConnect(t *testing.T) {
	s, h := startSession(t, "en", testOptions(time.Millisecond))

	assert.Equal(t, typewriter.Sequence("Hello"), h.typed(t, SectionHero))
	assert.Equal(t, "en", s.Lang())
	assert.NotEmpty(t, s.ID)
}

func TestSessionFinalCTAStartsOnceVisible(t *testing.T) {
	_, h := startSession(t, "en", testOptions(time.Millisecond))
	h.typed(t, SectionHero)

	h.in <- Inbound{Type: TypeVisible, Section: SectionFinalCTA}
	assert.Equal(t, []string{"", "G", "Go"}, h.typed(t, SectionFinalCTA))

	// A second visibility report does not replay the reveal
	h.in <- Inbound{Type: TypeVisible, Section: SectionFinalCTA}
	h.in <- Inbound{Type: TypeVisible, Section: "unknown"}
	h.in <- scroll(9000)
	msg := h.next(t, func(Outbound) bool { return true })
	assert.Equal(t, TypeModal, msg.Type)
}

func TestSessionModalFiresOnce(t *testing.T) {
	_, h := startSession(t, "en", testOptions(time.Millisecond))

	h.in <- scroll(7100)
	h.in <- scroll(7300)
	assert.Equal(t, Outbound{Type: TypeModal, Action: "show"}, h.next(t, isModal))

	h.in <- scroll(100)
	h.in <- scroll(9500)
	h.in <- Inbound{Type: TypeDismiss}
	assert.Equal(t, Outbound{Type: TypeModal, Action: "hide"}, h.next(t, isModal))

	// Nothing re-displays the modal; the next modal message would be a failure
	h.in <- scroll(9800)
	h.in <- Inbound{Type: TypeDismiss}
	select {
	case msg := <-h.out:
		assert.NotEqual(t, TypeModal, msg.Type)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSessionManualDismissDisarmsTrigger(t *testing.T) {
	_, h := startSession(t, "en", testOptions(time.Millisecond))
	h.typed(t, SectionHero)

	// The modal was opened from a button and closed before any deep scroll
	h.in <- Inbound{Type: TypeDismiss}
	h.in <- scroll(9500)
	h.in <- Inbound{Type: TypeVisible, Section: SectionFinalCTA}

	for {
		msg := h.next(t, func(Outbound) bool { return true })
		require.NotEqual(t, TypeModal, msg.Type, "scrolling re-displayed a dismissed modal")
		if msg.Section == SectionFinalCTA && msg.Done {
			return
		}
	}
}

func TestSessionLanguageSwitchRestartsReveal(t *testing.T) {
	_, h := startSession(t, "en", testOptions(10*time.Millisecond))

	// Wait until "Hello" is mid-animation
	h.next(t, func(m Outbound) bool { return m.Section == SectionHero && m.Text == "He" })
	h.in <- Inbound{Type: TypeLang, Lang: "hi"}

	var texts []string
	for {
		msg := h.next(t, func(m Outbound) bool { return m.Section == SectionHero })
		texts = append(texts, msg.Text)
		if msg.Done && msg.Text == "Bonjour" {
			break
		}
	}

	// The restart begins at the last empty frame; nothing from "Hello" follows it
	restart := -1
	for i, text := range texts {
		if text == "" {
			restart = i
		}
	}
	require.GreaterOrEqual(t, restart, 0)
	assert.Equal(t, typewriter.Sequence("Bonjour"), texts[restart:])
	for _, text := range texts[:restart] {
		assert.True(t, strings.HasPrefix("Hello", text))
	}
}

func TestSessionLanguageSwitchToSameLanguageIsNoop(t *testing.T) {
	s, h := startSession(t, "hi", testOptions(time.Millisecond))
	assert.Equal(t, typewriter.Sequence("Bonjour"), h.typed(t, SectionHero))

	h.in <- Inbound{Type: TypeLang, Lang: "hi"}
	h.in <- scroll(9000)
	msg := h.next(t, func(Outbound) bool { return true })
	assert.Equal(t, TypeModal, msg.Type, "no replayed frames")
	assert.Equal(t, "hi", s.Lang())
}

func TestSessionUnmountStopsOutput(t *testing.T) {
	_, h := startSession(t, "en", testOptions(5*time.Millisecond))
	h.next(t, func(m Outbound) bool { return m.Section == SectionHero && m.Text == "H" })

	h.cancel()
	select {
	case <-h.done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}

	// Drain what was queued before teardown, then expect silence
	for len(h.out) > 0 {
		<-h.out
	}
	time.Sleep(30 * time.Millisecond)
	assert.Empty(t, h.out)
}

func TestSessionEndsWhenInboundCloses(t *testing.T) {
	_, h := startSession(t, "en", testOptions(time.Millisecond))
	close(h.in)

	select {
	case <-h.done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after inbound closed")
	}
}

func TestNewSessionDefaults(t *testing.T) {
	s := NewSession("fr", Options{})
	assert.Equal(t, "en", s.Lang())
	assert.Equal(t, typewriter.DefaultInterval, s.opts.Interval)
	assert.Equal(t, engagement.DefaultOptions(), s.opts.Trigger)
	assert.NotNil(t, s.opts.Translate)
}
