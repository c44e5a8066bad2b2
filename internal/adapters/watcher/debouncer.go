package watcher

import (
	"slices"
	"sync"
	"time"
	"unique"
)

// Debouncer coalesces bursts of keyed events into one callback per quiet window.
// Keys are document URIs or file paths; each burst delivers every distinct key once.
type Debouncer struct {
	mu       sync.Mutex
	idle     *sync.Cond
	pending  map[unique.Handle[string]]struct{}
	timer    *time.Timer
	window   time.Duration
	callback func(keys []string)
	// running counts callbacks started by the timer that have not returned.
	running int
}

// NewDebouncer creates a debouncer that calls callback window after the last Add.
func NewDebouncer(window time.Duration, callback func(keys []string)) *Debouncer {
	d := &Debouncer{
		pending:  make(map[unique.Handle[string]]struct{}),
		window:   window,
		callback: callback,
	}
	d.idle = sync.NewCond(&d.mu)
	return d
}

// Add records key and restarts the quiet window.
func (d *Debouncer) Add(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending[unique.Make(key)] = struct{}{}

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

// SetWindow changes the quiet window for subsequent Add calls.
func (d *Debouncer) SetWindow(window time.Duration) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.window = window
}

// Pending returns the number of keys waiting for the window to close.
func (d *Debouncer) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	keys := d.drainLocked()
	if len(keys) == 0 || d.callback == nil {
		d.mu.Unlock()
		return
	}
	d.running++
	d.mu.Unlock()

	go func() {
		defer func() {
			d.mu.Lock()
			d.running--
			d.idle.Broadcast()
			d.mu.Unlock()
		}()
		d.callback(keys)
	}()
}

// Flush delivers pending keys now and blocks until the callback returns.
// It also waits for callbacks the timer has already started.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	keys := d.drainLocked()
	d.mu.Unlock()

	if len(keys) > 0 && d.callback != nil {
		d.callback(keys)
	}

	d.mu.Lock()
	for d.running > 0 {
		d.idle.Wait()
	}
	d.mu.Unlock()
}

// Stop cancels the timer and drops pending keys.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	clear(d.pending)
}

// drainLocked empties the pending set and returns its keys in sorted order.
func (d *Debouncer) drainLocked() []string {
	if len(d.pending) == 0 {
		return nil
	}
	keys := make([]string, 0, len(d.pending))
	for handle := range d.pending {
		keys = append(keys, handle.Value())
	}
	clear(d.pending)
	slices.Sort(keys)
	return keys
}
