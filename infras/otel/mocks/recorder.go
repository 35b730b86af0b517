package mocks

import (
	"context"
	"sync"

	"frontdesk/infras/otel"
)

// Recorder is a no-op Otel that keeps every error traced through its scopes.
type Recorder struct {
	mu     sync.Mutex
	errors []error
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// NewScope implements otel.Otel.
func (r *Recorder) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, &recordingScope{Scope: NewScope(), recorder: r}
}

// Shutdown implements otel.Otel.
func (r *Recorder) Shutdown(_ context.Context) error {
	return nil
}

// Errors returns the traced errors in the order they were recorded.
func (r *Recorder) Errors() []error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]error(nil), r.errors...)
}

func (r *Recorder) record(err error) {
	if err == nil {
		return
	}

	r.mu.Lock()
	r.errors = append(r.errors, err)
	r.mu.Unlock()
}

type recordingScope struct {
	otel.Scope
	recorder *Recorder
}

func (s *recordingScope) TraceError(err error) {
	s.recorder.record(err)
}

func (s *recordingScope) TraceIfError(err error) {
	s.recorder.record(err)
}
