// internal/domain/upload/service_test.go
package upload

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fifi-bags/storefront-backend/internal/config"
)

func newTestService(maxSize int64) *Service {
	cfg := &config.Config{}
	cfg.Upload.MaxSize = maxSize
	cfg.Upload.AllowedExtensions = []string{"jpg", "jpeg", "png"}
	return NewService(cfg)
}

func TestAttachRequiresOpenForm(t *testing.T) {
	svc := newTestService(1024)

	err := svc.Attach("session-1", "bag.png", "image/png", strings.NewReader("img"))
	assert.ErrorIs(t, err, ErrFormClosed)
}

func TestAttachStoresDataURI(t *testing.T) {
	svc := newTestService(1024)
	svc.OpenForm("session-1")

	require.NoError(t, svc.Attach("session-1", "bag.png", "image/png", strings.NewReader("img")))

	dataURI, ok := svc.Pending("session-1")
	require.True(t, ok)
	assert.Equal(t, "data:image/png;base64,aW1n", dataURI)
}

func TestAttachRejectsUnsupportedExtension(t *testing.T) {
	svc := newTestService(1024)
	svc.OpenForm("session-1")

	assert.ErrorIs(t, svc.Attach("session-1", "bag.pdf", "application/pdf", strings.NewReader("x")), ErrUnsupportedType)
	assert.ErrorIs(t, svc.Attach("session-1", "noextension", "image/png", strings.NewReader("x")), ErrUnsupportedType)
}

func TestAttachRejectsOversizedFile(t *testing.T) {
	svc := newTestService(4)
	svc.OpenForm("session-1")

	err := svc.Attach("session-1", "bag.png", "image/png", strings.NewReader("too big"))
	assert.ErrorIs(t, err, ErrTooLarge)

	_, ok := svc.Pending("session-1")
	assert.False(t, ok)
}

func TestCloseFormDropsLateConversion(t *testing.T) {
	svc := newTestService(1024)
	svc.OpenForm("session-1")

	// The form closes while the upload is still being read; the conversion
	// completes but its result must not land anywhere.
	closed := false
	reader := readerFunc(func(p []byte) (int, error) {
		if !closed {
			closed = true
			svc.CloseForm("session-1")
			p[0] = 'x'
			return 1, nil
		}
		return 0, io.EOF
	})

	require.NoError(t, svc.Attach("session-1", "bag.png", "image/png", reader))

	_, ok := svc.Pending("session-1")
	assert.False(t, ok)
}

func TestReopenFormDiscardsPreviousAttachment(t *testing.T) {
	svc := newTestService(1024)
	svc.OpenForm("session-1")
	require.NoError(t, svc.Attach("session-1", "bag.png", "image/png", strings.NewReader("img")))

	svc.OpenForm("session-1")

	_, ok := svc.Pending("session-1")
	assert.False(t, ok)
}

type readerFunc func(p []byte) (int, error)

func (f readerFunc) Read(p []byte) (int, error) { return f(p) }
