package dashboard

import "sync"

// DefaultHistorySize is the number of values kept per card for its sparkline.
const DefaultHistorySize = 30

// History keeps recent values per card key in ring buffers.
// It is safe for concurrent use.
type History struct {
	mu    sync.RWMutex
	size  int
	cards map[string]*ringBuffer
}

// ringBuffer is a fixed-size circular buffer for float64 values.
type ringBuffer struct {
	data  []float64
	head  int
	count int
	size  int
}

// NewHistory creates a history that keeps size values per card.
func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &History{
		size:  size,
		cards: make(map[string]*ringBuffer),
	}
}

// Seed replaces the history for key with the last values of trend.
func (h *History) Seed(key string, trend []float64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	buf := newRingBuffer(h.size)
	for _, v := range trend {
		buf.push(v)
	}
	h.cards[key] = buf
}

// Push appends a value to the history for key.
func (h *History) Push(key string, v float64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	buf, ok := h.cards[key]
	if !ok {
		buf = newRingBuffer(h.size)
		h.cards[key] = buf
	}
	buf.push(v)
}

// Values returns up to count recent values for key, oldest first.
// A non-positive count returns everything stored.
func (h *History) Values(key string, count int) []float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()

	buf, ok := h.cards[key]
	if !ok {
		return nil
	}
	if count <= 0 {
		return buf.getAll()
	}
	return buf.getLast(count)
}

// Count returns how many values are stored for key.
func (h *History) Count(key string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	buf, ok := h.cards[key]
	if !ok {
		return 0
	}
	return buf.count
}

// Clear drops the history for key.
func (h *History) Clear(key string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.cards, key)
}

func newRingBuffer(size int) *ringBuffer {
	return &ringBuffer{
		data: make([]float64, size),
		size: size,
	}
}

func (r *ringBuffer) push(value float64) {
	r.data[r.head] = value
	r.head = (r.head + 1) % r.size
	if r.count < r.size {
		r.count++
	}
}

// getLast returns the last count values in chronological order.
func (r *ringBuffer) getLast(count int) []float64 {
	if count <= 0 || r.count == 0 {
		return nil
	}
	if count > r.count {
		count = r.count
	}

	result := make([]float64, count)
	// head is the next write slot, so the newest value sits at head-1.
	start := (r.head - count + r.size) % r.size
	for i := 0; i < count; i++ {
		result[i] = r.data[(start+i)%r.size]
	}
	return result
}

func (r *ringBuffer) getAll() []float64 {
	return r.getLast(r.count)
}
