package service

import "frontdesk/internal/domains/event/model"

// ring keeps the last len(buf) events; the oldest is overwritten first.
type ring struct {
	buf   []model.Event
	start int
	size  int
}

func newRing(capacity int) *ring {
	return &ring{buf: make([]model.Event, capacity)}
}

func (r *ring) push(evt model.Event) {
	if r.size < len(r.buf) {
		r.buf[(r.start+r.size)%len(r.buf)] = evt
		r.size++

		return
	}

	r.buf[r.start] = evt
	r.start = (r.start + 1) % len(r.buf)
}

// items returns the buffered events oldest first.
func (r *ring) items() []model.Event {
	out := make([]model.Event, 0, r.size)
	for i := range r.size {
		out = append(out, r.buf[(r.start+i)%len(r.buf)])
	}

	return out
}
