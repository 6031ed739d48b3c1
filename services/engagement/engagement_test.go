package engagement

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func metrics(scrollY, viewport, document float64) ScrollMetrics {
	return ScrollMetrics{ScrollPosition: scrollY, ViewportHeight: viewport, DocumentHeight: document}
}

func TestRatio(t *testing.T) {
	t.Run("Scrollable", func(t *testing.T) {
		ratio, ok := Ratio(metrics(4500, 1000, 10000))
		assert.True(t, ok)
		assert.InDelta(t, 0.5, ratio, 1e-9)
	})

	t.Run("NoScrollableRange", func(t *testing.T) {
		_, ok := Ratio(metrics(100, 1000, 1000))
		assert.False(t, ok)
		_, ok = Ratio(metrics(100, 1200, 1000))
		assert.False(t, ok)
	})
}

func TestTriggerNeverFiresWithoutScrollableRange(t *testing.T) {
	for _, document := range []float64{500, 999, 1000} {
		trigger := New()
		for _, scrollY := range []float64{0, 2500, 8000, 1e9} {
			assert.Equal(t, None, trigger.Observe(metrics(scrollY, 1000, document)))
		}
		assert.Equal(t, Armed, trigger.State())
		assert.Equal(t, Hidden, trigger.Modal())
	}
}

func TestTriggerFiringThreshold(t *testing.T) {
	trigger := New()

	assert.Equal(t, None, trigger.Observe(metrics(7100, 1000, 10000)))
	assert.Equal(t, Armed, trigger.State())

	assert.Equal(t, Show, trigger.Observe(metrics(7300, 1000, 10000)))
	assert.Equal(t, Fired, trigger.State())
	assert.Equal(t, Shown, trigger.Modal())
}

func TestTriggerRequiresAbsoluteOffset(t *testing.T) {
	// 90% of a short page is still below 2000px
	trigger := New()
	assert.Equal(t, None, trigger.Observe(metrics(1800, 800, 2800)))
	assert.Equal(t, Armed, trigger.State())
}

func TestTriggerFiresAtMostOnce(t *testing.T) {
	trigger := New()
	samples := []float64{1000, 7300, 500, 9000, 0, 8500, 9000}

	shows := 0
	for _, y := range samples {
		if trigger.Observe(metrics(y, 1000, 10000)) == Show {
			shows++
		}
	}
	assert.Equal(t, 1, shows)
	assert.Equal(t, Fired, trigger.State())
}

func TestTriggerDismiss(t *testing.T) {
	t.Run("BeforeFireDisarms", func(t *testing.T) {
		trigger := New()
		assert.Equal(t, None, trigger.Dismiss())
		assert.Equal(t, Dismissed, trigger.Modal())
		assert.Equal(t, Fired, trigger.State())

		// A manually opened and closed modal is never shown again by scrolling
		assert.Equal(t, None, trigger.Observe(metrics(9000, 1000, 10000)))
		assert.Equal(t, Dismissed, trigger.Modal())
	})

	t.Run("AfterFire", func(t *testing.T) {
		trigger := New()
		require.Equal(t, Show, trigger.Observe(metrics(9000, 1000, 10000)))

		assert.Equal(t, Hide, trigger.Dismiss())
		assert.Equal(t, Dismissed, trigger.Modal())
		assert.Equal(t, Fired, trigger.State())

		// Terminal: neither a second dismiss nor more scrolling re-displays it
		assert.Equal(t, None, trigger.Dismiss())
		assert.Equal(t, None, trigger.Observe(metrics(9000, 1000, 10000)))
		assert.Equal(t, Dismissed, trigger.Modal())
	})
}

func TestTriggerClose(t *testing.T) {
	trigger := New()
	trigger.Close()

	assert.Equal(t, None, trigger.Observe(metrics(9000, 1000, 10000)))
	assert.Equal(t, None, trigger.Dismiss())
	assert.Equal(t, Armed, trigger.State())
}

func TestEvaluateCustomOptions(t *testing.T) {
	opts := Options{RatioThreshold: 0.5, MinScrollPosition: 100}

	state, signal := Evaluate(Armed, metrics(600, 1000, 2000), opts)
	assert.Equal(t, Fired, state)
	assert.Equal(t, Show, signal)

	state, signal = Evaluate(Fired, metrics(600, 1000, 2000), opts)
	assert.Equal(t, Fired, state)
	assert.Equal(t, None, signal)
}

func TestWatch(t *testing.T) {
	t.Run("EmitsOnceAndClosesOnChannelClose", func(t *testing.T) {
		trigger := New()
		samples := make(chan ScrollMetrics)
		var signals []Signal
		done := make(chan struct{})

		go func() {
			trigger.Watch(context.Background(), samples, func(s Signal) {
				signals = append(signals, s)
			})
			close(done)
		}()

		samples <- metrics(3000, 1000, 10000)
		samples <- metrics(9500, 1000, 10000)
		samples <- metrics(9600, 1000, 10000)
		close(samples)
		<-done

		assert.Equal(t, []Signal{Show}, signals)
		assert.Equal(t, None, trigger.Dismiss(), "closed trigger ignores dismiss")
	})

	t.Run("StopsOnContextCancel", func(t *testing.T) {
		trigger := New()
		samples := make(chan ScrollMetrics, 1)
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})

		go func() {
			trigger.Watch(ctx, samples, func(Signal) {
				t.Error("no signal expected after cancel")
			})
			close(done)
		}()

		cancel()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Watch did not return after cancel")
		}

		samples <- metrics(9500, 1000, 10000)
		assert.Equal(t, Armed, trigger.State())
	})
}
