// Package live runs the per-page-load interaction session: scroll samples
// feed the signup trigger and typed headlines are streamed back as frames.
package live

import (
	"context"
	"sync"
	"time"
	"travel_crm_go/services/engagement"
	"travel_crm_go/services/i18n"
	"travel_crm_go/services/typewriter"

	"github.com/google/uuid"
)

// Typed sections and the translation key of their headline
const (
	SectionHero     = "hero"
	SectionFinalCTA = "finalCTA"
)

var sectionKeys = map[string]string{
	SectionHero:     "hero.title",
	SectionFinalCTA: "finalCTA.title",
}

// Inbound message types
const (
	TypeScroll  = "scroll"
	TypeLang    = "lang"
	TypeVisible = "visible"
	TypeDismiss = "dismiss"
)

// Outbound message types
const (
	TypeTypewriter = "typewriter"
	TypeModal      = "modal"
)

// Inbound is a message from the page
type Inbound struct {
	Type string `json:"type"`
	engagement.ScrollMetrics
	Lang    string `json:"lang,omitempty"`
	Section string `json:"section,omitempty"`
}

// Outbound is a message to the page
type Outbound struct {
	Type    string `json:"type"`
	Section string `json:"section,omitempty"`
	Text    string `json:"text"`
	Done    bool   `json:"done"`
	Action  string `json:"action,omitempty"`
}

// Options configures a session
type Options struct {
	Interval  time.Duration
	Trigger   engagement.Options
	Translate func(lang, key string) string
}

// DefaultOptions returns the landing page settings
func DefaultOptions() Options {
	return Options{
		Interval:  typewriter.DefaultInterval,
		Trigger:   engagement.DefaultOptions(),
		Translate: func(lang, key string) string { return i18n.Translate(lang, key) },
	}
}

// Session owns the trigger and the typewriter animators of one page load.
// Nothing in it is shared with other sessions.
type Session struct {
	ID   string
	opts Options

	mu      sync.Mutex
	lang    string
	started map[string]bool
}

// NewSession creates a session for a page rendered in lang
func NewSession(lang string, opts Options) *Session {
	defaults := DefaultOptions()
	if opts.Interval <= 0 {
		opts.Interval = defaults.Interval
	}
	if opts.Trigger == (engagement.Options{}) {
		opts.Trigger = defaults.Trigger
	}
	if opts.Translate == nil {
		opts.Translate = defaults.Translate
	}
	return &Session{
		ID:      uuid.New().String(),
		opts:    opts,
		lang:    i18n.Normalize(lang),
		started: make(map[string]bool),
	}
}

// Lang returns the session's current language
func (s *Session) Lang() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lang
}

// Run processes inbound messages until ctx is done or in is closed, writing
// replies to out. Every animator and the trigger watcher have exited when
// Run returns.
func (s *Session) Run(ctx context.Context, in <-chan Inbound, out chan<- Outbound) {
	ctx, cancel := context.WithCancel(ctx)

	emit := func(msg Outbound) {
		select {
		case out <- msg:
		case <-ctx.Done():
		}
	}

	animators := make(map[string]*typewriter.Animator, len(sectionKeys))
	for section := range sectionKeys {
		section := section
		animators[section] = typewriter.NewAnimator(ctx, s.opts.Interval, func(f typewriter.Frame) {
			emit(Outbound{Type: TypeTypewriter, Section: section, Text: f.Text, Done: f.Done})
		})
	}

	trigger := engagement.NewWithOptions(s.opts.Trigger)
	scrolls := make(chan engagement.ScrollMetrics, 8)
	watchDone := make(chan struct{})
	go func() {
		defer close(watchDone)
		trigger.Watch(ctx, scrolls, func(sig engagement.Signal) {
			emit(Outbound{Type: TypeModal, Action: sig.String()})
		})
	}()

	defer func() {
		cancel()
		for _, a := range animators {
			a.Stop()
		}
		<-watchDone
	}()

	s.start(animators, SectionHero)

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-in:
			if !ok {
				return
			}
			switch msg.Type {
			case TypeScroll:
				select {
				case scrolls <- msg.ScrollMetrics:
				case <-ctx.Done():
					return
				}
			case TypeDismiss:
				if sig := trigger.Dismiss(); sig != engagement.None {
					emit(Outbound{Type: TypeModal, Action: sig.String()})
				}
			case TypeVisible:
				s.start(animators, msg.Section)
			case TypeLang:
				s.switchLanguage(animators, msg.Lang)
			}
		}
	}
}

// start begins a section's reveal once; later calls are no-ops
func (s *Session) start(animators map[string]*typewriter.Animator, section string) {
	a, ok := animators[section]
	if !ok {
		return
	}

	s.mu.Lock()
	if s.started[section] {
		s.mu.Unlock()
		return
	}
	s.started[section] = true
	lang := s.lang
	s.mu.Unlock()

	a.Start(s.opts.Translate(lang, sectionKeys[section]))
}

// switchLanguage restarts every started reveal with the translated headline
func (s *Session) switchLanguage(animators map[string]*typewriter.Animator, lang string) {
	s.mu.Lock()
	s.lang = i18n.Normalize(lang)
	lang = s.lang
	var sections []string
	for section := range s.started {
		sections = append(sections, section)
	}
	s.mu.Unlock()

	for _, section := range sections {
		animators[section].Start(s.opts.Translate(lang, sectionKeys[section]))
	}
}
