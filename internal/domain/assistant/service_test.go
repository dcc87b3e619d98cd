// internal/domain/assistant/service_test.go
package assistant

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fifi-bags/storefront-backend/internal/domain/catalog"
	"github.com/fifi-bags/storefront-backend/internal/infrastructure/persistence"
)

type fakeChatter struct {
	mu      sync.Mutex
	reply   string
	err     error
	block   chan struct{}
	lastMsg string
	seen    int
}

func (f *fakeChatter) Reply(_ context.Context, message string, products []catalog.Product, _ string) (string, error) {
	f.mu.Lock()
	f.lastMsg = message
	f.seen = len(products)
	block := f.block
	f.mu.Unlock()

	if block != nil {
		<-block
	}
	return f.reply, f.err
}

func newTestService(chatter Chatter) *Service {
	return NewService(catalog.NewService(persistence.NewMemoryStore()), chatter)
}

func TestTranscriptSeedsGreeting(t *testing.T) {
	svc := newTestService(&fakeChatter{})

	messages := svc.Transcript("session-1")
	require.Len(t, messages, 1)
	assert.Equal(t, RoleAssistant, messages[0].Role)
	assert.Equal(t, Greeting, messages[0].Text)
}

func TestSendAppendsBothTurns(t *testing.T) {
	chatter := &fakeChatter{reply: "We have lovely totes! 👜"}
	svc := newTestService(chatter)

	reply, err := svc.Send(context.Background(), "session-1", "Any totes?", "")
	require.NoError(t, err)
	assert.Equal(t, "We have lovely totes! 👜", reply.Text)

	messages := svc.Transcript("session-1")
	require.Len(t, messages, 3)
	assert.Equal(t, RoleUser, messages[1].Role)
	assert.Equal(t, "Any totes?", messages[1].Text)
	assert.Equal(t, RoleAssistant, messages[2].Role)

	// The live catalog was handed to the chat service
	assert.Equal(t, 6, chatter.seen)
}

func TestSendEmptyRejected(t *testing.T) {
	svc := newTestService(&fakeChatter{})

	_, err := svc.Send(context.Background(), "session-1", "", "")
	assert.ErrorIs(t, err, ErrEmptyMessage)
	assert.Len(t, svc.Transcript("session-1"), 1)
}

func TestSendImageOnlyAllowed(t *testing.T) {
	svc := newTestService(&fakeChatter{reply: "Love those colors! 🍂"})

	_, err := svc.Send(context.Background(), "session-1", "", "data:image/png;base64,aGk=")
	assert.NoError(t, err)
}

func TestSendFailureBecomesFallback(t *testing.T) {
	svc := newTestService(&fakeChatter{err: errors.New("upstream down")})

	reply, err := svc.Send(context.Background(), "session-1", "Hello?", "")
	require.NoError(t, err)
	assert.Equal(t, FallbackUnavailable, reply.Text)

	// The failed turn still lands in the transcript
	messages := svc.Transcript("session-1")
	require.Len(t, messages, 3)
	assert.Equal(t, FallbackUnavailable, messages[2].Text)
}

func TestSecondSendWhileInFlightRefused(t *testing.T) {
	chatter := &fakeChatter{reply: "done", block: make(chan struct{})}
	svc := newTestService(chatter)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := svc.Send(context.Background(), "session-1", "first", "")
		assert.NoError(t, err)
	}()

	// Wait for the first send to register as in flight
	require.Eventually(t, func() bool {
		return svc.Busy("session-1")
	}, time.Second, time.Millisecond)

	_, err := svc.Send(context.Background(), "session-1", "second", "")
	assert.ErrorIs(t, err, ErrBusy)

	close(chatter.block)
	<-done

	assert.False(t, svc.Busy("session-1"))
	// Only the first exchange made it into the transcript
	assert.Len(t, svc.Transcript("session-1"), 3)
}

func TestSessionsHaveSeparateTranscripts(t *testing.T) {
	svc := newTestService(&fakeChatter{reply: "hi"})

	_, err := svc.Send(context.Background(), "session-1", "hello", "")
	require.NoError(t, err)

	assert.Len(t, svc.Transcript("session-1"), 3)
	assert.Len(t, svc.Transcript("session-2"), 1)
}
