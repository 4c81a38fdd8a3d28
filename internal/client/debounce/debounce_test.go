package debounce

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	calls []string
	mu    sync.Mutex
}

func (r *recorder) flush(content string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, content)
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.calls))
	copy(out, r.calls)
	return out
}

func TestNew_DefaultDelay(t *testing.T) {
	d := New(0, func(string) {})
	assert.Equal(t, DefaultDelay, d.delay)

	d = New(-time.Second, func(string) {})
	assert.Equal(t, DefaultDelay, d.delay)
}

func TestDebouncer_CoalescesBurst(t *testing.T) {
	rec := &recorder{}
	d := New(50*time.Millisecond, rec.flush)

	d.Notify("A")
	time.Sleep(10 * time.Millisecond)
	d.Notify("AB")

	require.Eventually(t, func() bool {
		return len(rec.snapshot()) == 1
	}, time.Second, 5*time.Millisecond)

	// убеждаемся, что второго вызова не будет
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, []string{"AB"}, rec.snapshot())
	assert.False(t, d.Pending())
}

func TestDebouncer_TypingScenario(t *testing.T) {
	// "A" и затем "AB" через 100мс при задержке 300мс
	rec := &recorder{}
	d := New(DefaultDelay, rec.flush)

	d.Notify("A")
	time.Sleep(100 * time.Millisecond)
	d.Notify("AB")

	time.Sleep(250 * time.Millisecond)
	assert.Empty(t, rec.snapshot(), "flush must wait for a full quiet period after the last edit")

	require.Eventually(t, func() bool {
		return len(rec.snapshot()) == 1
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"AB"}, rec.snapshot())
}

func TestDebouncer_SeparateBursts(t *testing.T) {
	rec := &recorder{}
	d := New(20*time.Millisecond, rec.flush)

	d.Notify("one")
	require.Eventually(t, func() bool { return len(rec.snapshot()) == 1 }, time.Second, 5*time.Millisecond)

	d.Notify("two")
	require.Eventually(t, func() bool { return len(rec.snapshot()) == 2 }, time.Second, 5*time.Millisecond)

	assert.Equal(t, []string{"one", "two"}, rec.snapshot())
}

func TestDebouncer_Flush(t *testing.T) {
	rec := &recorder{}
	d := New(time.Hour, rec.flush)

	d.Flush()
	assert.Empty(t, rec.snapshot(), "nothing pending")

	d.Notify("draft")
	assert.True(t, d.Pending())

	d.Flush()
	assert.Equal(t, []string{"draft"}, rec.snapshot())
	assert.False(t, d.Pending())

	d.Flush()
	assert.Len(t, rec.snapshot(), 1)
}

func TestDebouncer_Stop(t *testing.T) {
	rec := &recorder{}
	d := New(20*time.Millisecond, rec.flush)

	d.Notify("lost")
	d.Stop()
	assert.False(t, d.Pending())

	d.Notify("ignored")
	assert.False(t, d.Pending())

	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, rec.snapshot())

	d.Flush()
	assert.Empty(t, rec.snapshot())
}

func TestDebouncer_ConcurrentNotify(t *testing.T) {
	rec := &recorder{}
	d := New(30*time.Millisecond, rec.flush)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.Notify("x")
		}()
	}
	wg.Wait()

	require.Eventually(t, func() bool { return len(rec.snapshot()) == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, []string{"x"}, rec.snapshot())
}

func TestDebouncer_Cancel(t *testing.T) {
	rec := &recorder{}
	d := New(20*time.Millisecond, rec.flush)

	d.Notify("local")
	d.Cancel()
	assert.False(t, d.Pending())

	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, rec.snapshot())

	// после Cancel debouncer продолжает работать
	d.Notify("next")
	require.Eventually(t, func() bool { return len(rec.snapshot()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"next"}, rec.snapshot())
}
