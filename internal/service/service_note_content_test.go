package service

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/crypto"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/mock"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

const (
	testUserID    = "user-1"
	testNoteID    = "note-1"
	testPath      = "user-1/note-1.md"
	testReference = "storage://notes/user-1/note-1.md"
	testSignedURL = "https://blobs.example/user-1/note-1.md?token=t"
)

type contentHarness struct {
	notes    *mock.MockNoteRepository
	blobs    *mock.MockBlobStore
	verifier *mock.MockUploadVerifier
	fetcher  *mock.MockBlobFetcher
	ids      *mock.MockIDGenerator
	keys     crypto.KeyManager
	codec    crypto.PayloadCodec
}

func newContentHarness(t *testing.T, withKey bool) *contentHarness {
	t.Helper()
	ctrl := gomock.NewController(t)

	keys := crypto.NewKeyManager()
	if withKey {
		require.NoError(t, keys.SetKey(base64.StdEncoding.EncodeToString(make([]byte, 32))))
	}

	return &contentHarness{
		notes:    mock.NewMockNoteRepository(ctrl),
		blobs:    mock.NewMockBlobStore(ctrl),
		verifier: mock.NewMockUploadVerifier(ctrl),
		fetcher:  mock.NewMockBlobFetcher(ctrl),
		ids:      mock.NewMockIDGenerator(ctrl),
		keys:     keys,
		codec:    crypto.NewPayloadCodec(keys),
	}
}

func (h *contentHarness) service() NoteContentService {
	return h.serviceWith(h.keys, h.codec, h.verifier)
}

func (h *contentHarness) serviceWith(keys crypto.KeyManager, codec crypto.PayloadCodec, verifier UploadVerifier) NoteContentService {
	return NewNoteContentService(
		h.notes,
		h.blobs,
		store.NewAddressResolver("notes"),
		keys,
		codec,
		verifier,
		h.fetcher,
		h.ids,
		time.Minute,
		logger.Nop(),
	)
}

// expectRead wires a successful text read of row whose blob holds body.
func (h *contentHarness) expectRead(row models.Note, body *[]byte) {
	h.notes.EXPECT().GetNote(gomock.Any(), row.ID, row.UserID).Return(row, nil)
	h.blobs.EXPECT().CreateSignedURL(gomock.Any(), testPath, time.Minute).Return(testSignedURL, nil)
	h.fetcher.EXPECT().Fetch(gomock.Any(), testSignedURL).DoAndReturn(
		func(context.Context, string) ([]byte, error) { return *body, nil },
	)
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func insertedRow() models.Note {
	return models.Note{ID: testNoteID, UserID: testUserID, Title: "title"}
}

func pointerRow(encrypted bool) models.Note {
	row := insertedRow()
	row.Content = testReference
	row.IsEncrypted = encrypted
	if encrypted {
		v := "v1"
		row.EncryptionVersion = &v
	}
	return row
}

func TestNoteContentService_Create_EncryptsUploadsVerifiesAndResolves(t *testing.T) {
	h := newContentHarness(t, true)
	var uploaded []byte

	h.notes.EXPECT().InsertNote(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n models.Note) (models.Note, error) {
			assert.Equal(t, testNoteID, n.ID)
			assert.Empty(t, n.Content)
			return n, nil
		})
	h.blobs.EXPECT().Upload(gomock.Any(), testPath, gomock.Any(), true).DoAndReturn(
		func(_ context.Context, _ string, data []byte, _ bool) error {
			uploaded = data
			return nil
		})
	h.verifier.EXPECT().Verify(gomock.Any(), testPath).Return(nil)
	h.notes.EXPECT().UpdateNote(gomock.Any(), testNoteID, testUserID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ string, f models.NoteFields) (models.Note, error) {
			require.NotNil(t, f.Content)
			assert.Equal(t, testReference, *f.Content)
			require.NotNil(t, f.IsEncrypted)
			assert.True(t, *f.IsEncrypted)
			require.NotNil(t, f.EncryptionVersion)
			assert.Equal(t, "v1", *f.EncryptionVersion)
			return pointerRow(true), nil
		})
	h.expectRead(pointerRow(true), &uploaded)

	got, err := h.service().Create(testContext(), models.NewNote{
		ID:      testNoteID,
		UserID:  testUserID,
		Title:   "title",
		Content: "hello",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(uploaded), "enc:v1:"))
	assert.Equal(t, "hello", got.Content)
	assert.True(t, got.IsEncrypted)
}

func TestNoteContentService_Create_GeneratesID(t *testing.T) {
	h := newContentHarness(t, false)
	body := []byte("plain")

	h.ids.EXPECT().Generate().Return(testNoteID)
	h.notes.EXPECT().InsertNote(gomock.Any(), gomock.Any()).Return(insertedRow(), nil)
	h.blobs.EXPECT().Upload(gomock.Any(), testPath, []byte("plain"), true).Return(nil)
	h.verifier.EXPECT().Verify(gomock.Any(), testPath).Return(nil)
	h.notes.EXPECT().UpdateNote(gomock.Any(), testNoteID, testUserID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ string, f models.NoteFields) (models.Note, error) {
			assert.False(t, *f.IsEncrypted)
			assert.Equal(t, "", *f.EncryptionVersion)
			return pointerRow(false), nil
		})
	h.expectRead(pointerRow(false), &body)

	got, err := h.service().Create(testContext(), models.NewNote{UserID: testUserID, Content: "plain"})
	require.NoError(t, err)
	assert.Equal(t, testNoteID, got.ID)
	assert.Equal(t, "plain", got.Content)
}

func TestNoteContentService_Create_EmptyContentSkipsVerification(t *testing.T) {
	h := newContentHarness(t, true)
	empty := []byte{}

	h.notes.EXPECT().InsertNote(gomock.Any(), gomock.Any()).Return(insertedRow(), nil)
	h.blobs.EXPECT().Upload(gomock.Any(), testPath, []byte{}, true).Return(nil)
	// no Verify expectation: any call fails the test
	h.notes.EXPECT().UpdateNote(gomock.Any(), testNoteID, testUserID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ string, f models.NoteFields) (models.Note, error) {
			assert.False(t, *f.IsEncrypted)
			return pointerRow(false), nil
		})
	h.expectRead(pointerRow(false), &empty)

	got, err := h.service().Create(testContext(), models.NewNote{ID: testNoteID, UserID: testUserID})
	require.NoError(t, err)
	assert.Equal(t, "", got.Content)
}

func TestNoteContentService_Create_FetchFailed500(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	h := newContentHarness(t, true)
	verifier := NewUploadVerifier(h.blobs, adapter.NewHTTPBlobFetcher(config.Adapter{RequestTimeout: time.Second}, logger.Nop()), time.Minute)

	h.notes.EXPECT().InsertNote(gomock.Any(), gomock.Any()).Return(insertedRow(), nil)
	h.blobs.EXPECT().Upload(gomock.Any(), testPath, gomock.Any(), true).Return(nil)
	h.blobs.EXPECT().CreateSignedURL(gomock.Any(), testPath, time.Minute).Return(srv.URL+"/blobs/"+testPath, nil)
	// no UpdateNote expectation: the row must not point at unverified content

	_, err := h.serviceWith(h.keys, h.codec, verifier).Create(testContext(), models.NewNote{
		ID:      testNoteID,
		UserID:  testUserID,
		Content: "hello",
	})

	var verr *VerificationFailedError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, ReasonFetchFailed, verr.Reason)
	assert.Equal(t, http.StatusInternalServerError, verr.Status)
	assert.Equal(t, testPath, verr.Path)
}

func TestNoteContentService_Create_EncryptionFailureStoresPlaintext(t *testing.T) {
	h := newContentHarness(t, false)
	ctrl := gomock.NewController(t)
	keys := mock.NewMockKeyManager(ctrl)
	codec := mock.NewMockPayloadCodec(ctrl)
	body := []byte("hello")

	keys.EXPECT().HasKey().Return(true)
	codec.EXPECT().EncryptText("hello").Return("", crypto.ErrKeyNotSet)

	h.notes.EXPECT().InsertNote(gomock.Any(), gomock.Any()).Return(insertedRow(), nil)
	h.blobs.EXPECT().Upload(gomock.Any(), testPath, []byte("hello"), true).Return(nil)
	h.verifier.EXPECT().Verify(gomock.Any(), testPath).Return(nil)
	h.notes.EXPECT().UpdateNote(gomock.Any(), testNoteID, testUserID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ string, f models.NoteFields) (models.Note, error) {
			assert.False(t, *f.IsEncrypted)
			return pointerRow(false), nil
		})
	h.expectRead(pointerRow(false), &body)

	got, err := h.serviceWith(keys, codec, h.verifier).Create(testContext(), models.NewNote{
		ID:      testNoteID,
		UserID:  testUserID,
		Content: "hello",
	})
	require.NoError(t, err)
	assert.Equal(t, "hello", got.Content)
}

func TestNoteContentService_Create_FetchThroughFailureReturnsPointer(t *testing.T) {
	h := newContentHarness(t, false)

	h.notes.EXPECT().InsertNote(gomock.Any(), gomock.Any()).Return(insertedRow(), nil)
	h.blobs.EXPECT().Upload(gomock.Any(), testPath, gomock.Any(), true).Return(nil)
	h.verifier.EXPECT().Verify(gomock.Any(), testPath).Return(nil)
	h.notes.EXPECT().UpdateNote(gomock.Any(), testNoteID, testUserID, gomock.Any()).Return(pointerRow(false), nil)
	h.notes.EXPECT().GetNote(gomock.Any(), testNoteID, testUserID).Return(models.Note{}, errors.New("db gone"))

	got, err := h.service().Create(testContext(), models.NewNote{ID: testNoteID, UserID: testUserID, Content: "x"})
	require.NoError(t, err)
	assert.Equal(t, testReference, got.Content)
}

func TestNoteContentService_Create_Errors(t *testing.T) {
	t.Run("invalid address", func(t *testing.T) {
		h := newContentHarness(t, false)
		_, err := h.service().Create(testContext(), models.NewNote{ID: "a/b", UserID: testUserID})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
		assert.ErrorIs(t, err, store.ErrInvalidAddressInput)
	})

	t.Run("insert collision", func(t *testing.T) {
		h := newContentHarness(t, false)
		h.notes.EXPECT().InsertNote(gomock.Any(), gomock.Any()).Return(models.Note{}, store.ErrNoteAlreadyExists)

		_, err := h.service().Create(testContext(), models.NewNote{ID: testNoteID, UserID: testUserID})
		assert.ErrorIs(t, err, store.ErrNoteAlreadyExists)
	})

	t.Run("upload failure", func(t *testing.T) {
		h := newContentHarness(t, false)
		h.notes.EXPECT().InsertNote(gomock.Any(), gomock.Any()).Return(insertedRow(), nil)
		h.blobs.EXPECT().Upload(gomock.Any(), testPath, gomock.Any(), true).Return(errors.New("disk full"))

		_, err := h.service().Create(testContext(), models.NewNote{ID: testNoteID, UserID: testUserID, Content: "x"})
		assert.ErrorContains(t, err, "disk full")
	})
}

func TestNoteContentService_Read(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		h := newContentHarness(t, false)
		h.notes.EXPECT().GetNote(gomock.Any(), testNoteID, testUserID).Return(models.Note{}, store.ErrNoteNotFound)

		_, found, err := h.service().Read(testContext(), testUserID, testNoteID)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("inline row as is", func(t *testing.T) {
		h := newContentHarness(t, true)
		row := insertedRow()
		row.Content = "legacy inline"
		h.notes.EXPECT().GetNote(gomock.Any(), testNoteID, testUserID).Return(row, nil)

		got, found, err := h.service().Read(testContext(), testUserID, testNoteID)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "legacy inline", got.Content)
	})

	t.Run("binary reference unresolved", func(t *testing.T) {
		h := newContentHarness(t, true)
		row := insertedRow()
		row.Content = "storage://notes/user-1/note-1.png"
		h.notes.EXPECT().GetNote(gomock.Any(), testNoteID, testUserID).Return(row, nil)

		got, found, err := h.service().Read(testContext(), testUserID, testNoteID)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, row.Content, got.Content)
	})

	t.Run("plaintext blob", func(t *testing.T) {
		h := newContentHarness(t, true)
		body := []byte("just text")
		h.expectRead(pointerRow(false), &body)

		got, _, err := h.service().Read(testContext(), testUserID, testNoteID)
		require.NoError(t, err)
		assert.Equal(t, "just text", got.Content)
	})

	t.Run("prefixed payload decrypted without flag", func(t *testing.T) {
		h := newContentHarness(t, true)
		payload, err := h.codec.EncryptText("secret")
		require.NoError(t, err)
		body := []byte(payload)
		h.expectRead(pointerRow(false), &body)

		got, _, err := h.service().Read(testContext(), testUserID, testNoteID)
		require.NoError(t, err)
		assert.Equal(t, "secret", got.Content)
	})

	t.Run("decryption failure returns raw text", func(t *testing.T) {
		h := newContentHarness(t, true)
		body := []byte("enc:v1:AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA")
		h.expectRead(pointerRow(true), &body)

		got, found, err := h.service().Read(testContext(), testUserID, testNoteID)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, string(body), got.Content)
	})

	t.Run("decryption without key returns raw text", func(t *testing.T) {
		h := newContentHarness(t, false)
		body := []byte("enc:v1:AAAA")
		h.expectRead(pointerRow(true), &body)

		got, _, err := h.service().Read(testContext(), testUserID, testNoteID)
		require.NoError(t, err)
		assert.Equal(t, "enc:v1:AAAA", got.Content)
	})

	t.Run("malformed reference", func(t *testing.T) {
		h := newContentHarness(t, true)
		row := insertedRow()
		row.Content = "storage://other-bucket/user-1/note-1.md"
		h.notes.EXPECT().GetNote(gomock.Any(), testNoteID, testUserID).Return(row, nil)

		_, _, err := h.service().Read(testContext(), testUserID, testNoteID)
		assert.ErrorIs(t, err, store.ErrMalformedReference)
	})

	t.Run("fetch failure", func(t *testing.T) {
		h := newContentHarness(t, true)
		h.notes.EXPECT().GetNote(gomock.Any(), testNoteID, testUserID).Return(pointerRow(true), nil)
		h.blobs.EXPECT().CreateSignedURL(gomock.Any(), testPath, time.Minute).Return(testSignedURL, nil)
		h.fetcher.EXPECT().Fetch(gomock.Any(), testSignedURL).Return(nil, &adapter.StatusError{StatusCode: 404})

		_, _, err := h.service().Read(testContext(), testUserID, testNoteID)
		assert.Error(t, err)
	})
}

func TestNoteContentService_Update_MigratesInlineOnce(t *testing.T) {
	h := newContentHarness(t, true)
	legacy := insertedRow()
	legacy.Content = "legacy body"

	var uploaded []byte
	h.notes.EXPECT().GetNote(gomock.Any(), testNoteID, testUserID).Return(legacy, nil)
	h.blobs.EXPECT().Upload(gomock.Any(), testPath, gomock.Any(), true).DoAndReturn(
		func(_ context.Context, _ string, data []byte, _ bool) error {
			uploaded = data
			return nil
		})
	h.verifier.EXPECT().Verify(gomock.Any(), testPath).Return(nil)
	h.notes.EXPECT().UpdateNote(gomock.Any(), testNoteID, testUserID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ string, f models.NoteFields) (models.Note, error) {
			assert.Equal(t, testReference, *f.Content)
			assert.True(t, *f.IsEncrypted)
			assert.Nil(t, f.Title)
			return pointerRow(true), nil
		})
	h.expectRead(pointerRow(true), &uploaded)

	svc := h.service()
	got, err := svc.Update(testContext(), models.NoteUpdate{ID: testNoteID, UserID: testUserID})
	require.NoError(t, err)
	assert.Equal(t, "legacy body", got.Content)

	// second update without content: no upload, the reference stays
	title := "renamed"
	h.notes.EXPECT().GetNote(gomock.Any(), testNoteID, testUserID).Return(pointerRow(true), nil)
	h.notes.EXPECT().UpdateNote(gomock.Any(), testNoteID, testUserID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ string, f models.NoteFields) (models.Note, error) {
			assert.Nil(t, f.Content)
			assert.Nil(t, f.IsEncrypted)
			require.NotNil(t, f.Title)
			row := pointerRow(true)
			row.Title = *f.Title
			return row, nil
		})
	renamed := pointerRow(true)
	renamed.Title = title
	h.expectRead(renamed, &uploaded)

	got, err = svc.Update(testContext(), models.NoteUpdate{ID: testNoteID, UserID: testUserID, Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, got.Title)
	assert.Equal(t, "legacy body", got.Content)
}

func TestNoteContentService_Update_MigratesInlineWithNewContent(t *testing.T) {
	h := newContentHarness(t, false)
	legacy := insertedRow()
	legacy.Content = "old"
	body := []byte("new")

	h.notes.EXPECT().GetNote(gomock.Any(), testNoteID, testUserID).Return(legacy, nil)
	h.blobs.EXPECT().Upload(gomock.Any(), testPath, []byte("new"), true).Return(nil)
	h.verifier.EXPECT().Verify(gomock.Any(), testPath).Return(nil)
	h.notes.EXPECT().UpdateNote(gomock.Any(), testNoteID, testUserID, gomock.Any()).Return(pointerRow(false), nil)
	h.expectRead(pointerRow(false), &body)

	content := "new"
	got, err := h.service().Update(testContext(), models.NoteUpdate{ID: testNoteID, UserID: testUserID, Content: &content})
	require.NoError(t, err)
	assert.Equal(t, "new", got.Content)
}

func TestNoteContentService_Update_InlinePayloadUploadedAsIs(t *testing.T) {
	h := newContentHarness(t, true)
	payload, err := h.codec.EncryptText("sealed inline")
	require.NoError(t, err)

	legacy := insertedRow()
	legacy.Content = payload
	legacy.IsEncrypted = true

	body := []byte(payload)
	h.notes.EXPECT().GetNote(gomock.Any(), testNoteID, testUserID).Return(legacy, nil)
	h.blobs.EXPECT().Upload(gomock.Any(), testPath, []byte(payload), true).Return(nil)
	h.verifier.EXPECT().Verify(gomock.Any(), testPath).Return(nil)
	h.notes.EXPECT().UpdateNote(gomock.Any(), testNoteID, testUserID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ string, f models.NoteFields) (models.Note, error) {
			assert.True(t, *f.IsEncrypted)
			assert.Equal(t, "v1", *f.EncryptionVersion)
			return pointerRow(true), nil
		})
	h.expectRead(pointerRow(true), &body)

	got, err := h.service().Update(testContext(), models.NoteUpdate{ID: testNoteID, UserID: testUserID})
	require.NoError(t, err)
	assert.Equal(t, "sealed inline", got.Content)
}

func TestNoteContentService_Update_OverwritesReference(t *testing.T) {
	h := newContentHarness(t, true)
	var uploaded []byte

	h.notes.EXPECT().GetNote(gomock.Any(), testNoteID, testUserID).Return(pointerRow(true), nil)
	h.blobs.EXPECT().Upload(gomock.Any(), testPath, gomock.Any(), true).DoAndReturn(
		func(_ context.Context, _ string, data []byte, overwrite bool) error {
			uploaded = data
			return nil
		})
	h.verifier.EXPECT().Verify(gomock.Any(), testPath).Return(nil)
	h.notes.EXPECT().UpdateNote(gomock.Any(), testNoteID, testUserID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ string, f models.NoteFields) (models.Note, error) {
			assert.Equal(t, testReference, *f.Content)
			return pointerRow(true), nil
		})
	h.expectRead(pointerRow(true), &uploaded)

	content := "v2"
	got, err := h.service().Update(testContext(), models.NoteUpdate{ID: testNoteID, UserID: testUserID, Content: &content})
	require.NoError(t, err)
	assert.Equal(t, "v2", got.Content)
}

func TestNoteContentService_Update_Errors(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		h := newContentHarness(t, false)
		h.notes.EXPECT().GetNote(gomock.Any(), testNoteID, testUserID).Return(models.Note{}, store.ErrNoteNotFound)

		_, err := h.service().Update(testContext(), models.NoteUpdate{ID: testNoteID, UserID: testUserID})
		assert.ErrorIs(t, err, ErrNoteNotFound)
	})

	t.Run("verification failure leaves row", func(t *testing.T) {
		h := newContentHarness(t, false)
		h.notes.EXPECT().GetNote(gomock.Any(), testNoteID, testUserID).Return(pointerRow(false), nil)
		h.blobs.EXPECT().Upload(gomock.Any(), testPath, gomock.Any(), true).Return(nil)
		h.verifier.EXPECT().Verify(gomock.Any(), testPath).Return(&VerificationFailedError{Path: testPath, Reason: ReasonEmptyBody})

		content := "x"
		_, err := h.service().Update(testContext(), models.NoteUpdate{ID: testNoteID, UserID: testUserID, Content: &content})
		var verr *VerificationFailedError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, ReasonEmptyBody, verr.Reason)
	})
}

func TestNoteContentService_MigrateInline(t *testing.T) {
	h := newContentHarness(t, false)

	good := insertedRow()
	good.Content = "a"
	bad := insertedRow()
	bad.ID = "note-2"
	bad.Content = "b"
	body := []byte("a")

	h.notes.EXPECT().ListInlineNotes(gomock.Any(), models.InlineNotesFilter{
		UserID:          testUserID,
		ReferencePrefix: "storage://notes/",
		Limit:           10,
	}).Return([]models.Note{good, bad}, nil)

	h.notes.EXPECT().GetNote(gomock.Any(), testNoteID, testUserID).Return(good, nil)
	h.blobs.EXPECT().Upload(gomock.Any(), testPath, []byte("a"), true).Return(nil)
	h.verifier.EXPECT().Verify(gomock.Any(), testPath).Return(nil)
	h.notes.EXPECT().UpdateNote(gomock.Any(), testNoteID, testUserID, gomock.Any()).Return(pointerRow(false), nil)
	h.expectRead(pointerRow(false), &body)

	h.notes.EXPECT().GetNote(gomock.Any(), "note-2", testUserID).Return(bad, nil)
	h.blobs.EXPECT().Upload(gomock.Any(), "user-1/note-2.md", []byte("b"), true).Return(errors.New("denied"))

	migrated, err := h.service().MigrateInline(testContext(), testUserID, 10)
	assert.Equal(t, 1, migrated)

	var merr *MigrationError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, "note-2", merr.NoteID)
	assert.ErrorContains(t, err, "denied")
}

func TestNoteContentService_MigrateInline_SkipsPastFailingOldestNote(t *testing.T) {
	h := newContentHarness(t, false)

	poisoned := insertedRow()
	poisoned.ID = "legacy/1"
	poisoned.Content = "old"
	good := insertedRow()
	good.Content = "a"
	good.CreatedAt = poisoned.CreatedAt.Add(time.Second)
	body := []byte("a")

	first := models.InlineNotesFilter{UserID: testUserID, ReferencePrefix: "storage://notes/", Limit: 1}
	second := first
	cursor := poisoned.Cursor()
	second.After = &cursor

	h.notes.EXPECT().ListInlineNotes(gomock.Any(), first).Return([]models.Note{poisoned}, nil)
	h.notes.EXPECT().GetNote(gomock.Any(), "legacy/1", testUserID).Return(poisoned, nil)

	h.notes.EXPECT().ListInlineNotes(gomock.Any(), second).Return([]models.Note{good}, nil)
	h.notes.EXPECT().GetNote(gomock.Any(), testNoteID, testUserID).Return(good, nil)
	h.blobs.EXPECT().Upload(gomock.Any(), testPath, []byte("a"), true).Return(nil)
	h.verifier.EXPECT().Verify(gomock.Any(), testPath).Return(nil)
	h.notes.EXPECT().UpdateNote(gomock.Any(), testNoteID, testUserID, gomock.Any()).Return(pointerRow(false), nil)
	h.expectRead(pointerRow(false), &body)

	migrated, err := h.service().MigrateInline(testContext(), testUserID, 1)
	assert.Equal(t, 1, migrated)

	var merr *MigrationError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, "legacy/1", merr.NoteID)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestNoteContentService_MigrateInline_StopsWhenPagesRunOut(t *testing.T) {
	h := newContentHarness(t, false)

	a, b := insertedRow(), insertedRow()
	a.ID, b.ID = "bad-a", "bad-b"
	b.CreatedAt = a.CreatedAt.Add(time.Second)

	first := models.InlineNotesFilter{UserID: testUserID, ReferencePrefix: "storage://notes/", Limit: 2}
	second := first
	cursor := b.Cursor()
	second.After = &cursor

	h.notes.EXPECT().ListInlineNotes(gomock.Any(), first).Return([]models.Note{a, b}, nil)
	h.notes.EXPECT().GetNote(gomock.Any(), "bad-a", testUserID).Return(models.Note{}, errors.New("db down"))
	h.notes.EXPECT().GetNote(gomock.Any(), "bad-b", testUserID).Return(models.Note{}, errors.New("db down"))
	h.notes.EXPECT().ListInlineNotes(gomock.Any(), second).Return(nil, nil)

	migrated, err := h.service().MigrateInline(testContext(), testUserID, 2)
	assert.Equal(t, 0, migrated)
	assert.ErrorContains(t, err, "bad-a")
	assert.ErrorContains(t, err, "bad-b")
}

func TestNoteContentService_Read_InlineTextStartingWithOtherStorageURL(t *testing.T) {
	h := newContentHarness(t, false)

	row := insertedRow()
	row.Content = "storage://elsewhere/keep.md is where the draft lives"
	h.notes.EXPECT().GetNote(gomock.Any(), testNoteID, testUserID).Return(row, nil)

	got, found, err := h.service().Read(testContext(), testUserID, testNoteID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, row.Content, got.Content)
}
