// Package debounce схлопывает серию локальных правок в одну отправку.
package debounce

import (
	"sync"
	"time"
)

// DefaultDelay период тишины по умолчанию
const DefaultDelay = 300 * time.Millisecond

// Debouncer вызывает flush с последним содержимым только после того,
// как в течение delay не было новых Notify.
type Debouncer struct {
	timer      *time.Timer
	flush      func(string)
	pending    string
	delay      time.Duration
	generation uint64
	mu         sync.Mutex
	hasPending bool
	stopped    bool
}

// New создает Debouncer. При delay <= 0 используется DefaultDelay.
func New(delay time.Duration, flush func(string)) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{
		delay: delay,
		flush: flush,
	}
}

// Notify запоминает последнее содержимое и перезапускает таймер.
func (d *Debouncer) Notify(content string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.pending = content
	d.hasPending = true
	d.generation++

	if d.timer != nil {
		d.timer.Stop()
	}
	gen := d.generation
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen) })
}

// Flush немедленно отправляет отложенное содержимое, если оно есть.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.generation++
	content, ok := d.take()
	d.mu.Unlock()

	if ok {
		d.flush(content)
	}
}

// Cancel отбрасывает отложенное содержимое, не отключая Debouncer.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.hasPending = false
	d.pending = ""
	d.generation++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Stop отменяет таймер и отключает дальнейшие отправки.
// Отложенное содержимое отбрасывается.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	d.hasPending = false
	d.pending = ""
	d.generation++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Pending возвращает true, если есть неотправленное содержимое.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.hasPending
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	// таймер мог сработать после Stop/Flush или перезапуска
	if gen != d.generation {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	content, ok := d.take()
	d.mu.Unlock()

	if ok {
		d.flush(content)
	}
}

// take вызывается под мьютексом
func (d *Debouncer) take() (string, bool) {
	if d.stopped || !d.hasPending {
		return "", false
	}
	content := d.pending
	d.pending = ""
	d.hasPending = false
	return content, true
}
