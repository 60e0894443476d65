package goroutine

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/flyoffice/directory/internal/shared/logger"
)

type recordingLogger struct {
	logger.Interface
	mu   sync.Mutex
	msgs []string
	done chan struct{}
}

func (r *recordingLogger) Errorw(msg string, _ ...any) {
	r.mu.Lock()
	r.msgs = append(r.msgs, msg)
	r.mu.Unlock()
	close(r.done)
}

func TestSafeGo_RecoversPanic(t *testing.T) {
	rec := &recordingLogger{Interface: logger.NewNopLogger(), done: make(chan struct{})}

	SafeGo(rec, "notify-staff", func() { panic("smtp exploded") })

	select {
	case <-rec.done:
	case <-time.After(2 * time.Second):
		t.Fatal("panic was not logged")
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.Equal(t, []string{"goroutine panicked"}, rec.msgs)
}

func TestSafeGo_RunsFunction(t *testing.T) {
	done := make(chan struct{})
	SafeGo(logger.NewNopLogger(), "noop", func() { close(done) })

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("function did not run")
	}
}
