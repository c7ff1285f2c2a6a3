package service

import (
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/crypto"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/mock"
)

func TestKeySession_StartAndEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mock.NewMockKeySource(ctrl)
	keys := crypto.NewKeyManager()

	source.EXPECT().FetchKey(gomock.Any()).Return(base64.StdEncoding.EncodeToString(make([]byte, 32)), nil)

	session := NewKeySession(source, keys, logger.Nop())
	require.NoError(t, session.Start(testContext()))
	assert.True(t, keys.HasKey())

	session.End()
	assert.False(t, keys.HasKey())

	// ending twice is harmless
	session.End()
}

func TestKeySession_StartFailures(t *testing.T) {
	validKey := base64.StdEncoding.EncodeToString(make([]byte, 32))

	t.Run("key service error keeps previous key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := mock.NewMockKeySource(ctrl)
		keys := crypto.NewKeyManager()
		require.NoError(t, keys.SetKey(validKey))

		source.EXPECT().FetchKey(gomock.Any()).Return("", adapter.ErrUnauthorized)

		err := NewKeySession(source, keys, logger.Nop()).Start(testContext())
		assert.ErrorIs(t, err, ErrKeySessionFailed)
		assert.ErrorIs(t, err, adapter.ErrUnauthorized)
		assert.True(t, keys.HasKey())
	})

	t.Run("bad key material", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := mock.NewMockKeySource(ctrl)
		keys := mock.NewMockKeyManager(ctrl)

		source.EXPECT().FetchKey(gomock.Any()).Return("short", nil)
		keys.EXPECT().SetKey("short").Return(crypto.ErrKeyImport)

		err := NewKeySession(source, keys, logger.Nop()).Start(testContext())
		assert.ErrorIs(t, err, ErrKeySessionFailed)
		assert.True(t, errors.Is(err, crypto.ErrKeyImport))
	})
}
