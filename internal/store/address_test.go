// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressResolver_Resolve(t *testing.T) {
	r := NewAddressResolver("notes")

	tests := []struct {
		name     string
		userID   string
		noteID   string
		ext      string
		wantPath string
		wantRef  string
		wantErr  error
	}{
		{
			name:     "default extension",
			userID:   "u1",
			noteID:   "n1",
			wantPath: "u1/n1.md",
			wantRef:  "storage://notes/u1/n1.md",
		},
		{
			name:     "explicit extension",
			userID:   "u1",
			noteID:   "n1",
			ext:      "txt",
			wantPath: "u1/n1.txt",
			wantRef:  "storage://notes/u1/n1.txt",
		},
		{
			name:     "leading dot",
			userID:   "u1",
			noteID:   "n1",
			ext:      ".json",
			wantPath: "u1/n1.json",
			wantRef:  "storage://notes/u1/n1.json",
		},
		{name: "empty user", noteID: "n1", wantErr: ErrInvalidAddressInput},
		{name: "empty note", userID: "u1", wantErr: ErrInvalidAddressInput},
		{name: "slash in user", userID: "u/1", noteID: "n1", wantErr: ErrInvalidAddressInput},
		{name: "dot dot note", userID: "u1", noteID: "..", wantErr: ErrInvalidAddressInput},
		{name: "backslash note", userID: "u1", noteID: `n\1`, wantErr: ErrInvalidAddressInput},
		{name: "nested extension", userID: "u1", noteID: "n1", ext: "tar.gz", wantErr: ErrInvalidAddressInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(tt.userID, tt.noteID, tt.ext)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, got.Path)
			assert.Equal(t, tt.wantRef, got.Reference)
		})
	}
}

func TestAddressResolver_ResolveIsDeterministic(t *testing.T) {
	r := NewAddressResolver("notes")
	first, err := r.Resolve("u1", "n1", "")
	require.NoError(t, err)
	second, err := r.Resolve("u1", "n1", "md")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAddressResolver_ParseReference(t *testing.T) {
	r := NewAddressResolver("notes")

	addr, err := r.Resolve("u1", "n1", "")
	require.NoError(t, err)

	p, err := r.ParseReference(addr.Reference)
	require.NoError(t, err)
	assert.Equal(t, addr.Path, p)

	for _, bad := range []string{
		"storage://other/u1/n1.md",
		"s3://notes/u1/n1.md",
		"storage://notes/",
		"plain text",
	} {
		_, err = r.ParseReference(bad)
		assert.ErrorIs(t, err, ErrMalformedReference, bad)
	}
}

func TestAddressResolver_IsReference(t *testing.T) {
	r := NewAddressResolver("notes")

	tests := []struct {
		content string
		want    bool
	}{
		{content: "storage://notes/u/n.md", want: true},
		{content: "storage://other/u/n.md", want: false},
		{content: "storage://notesarchive/u/n.md", want: false},
		{content: "storage:// is where my links live", want: false},
		{content: "enc:v1:AAAA", want: false},
		{content: "", want: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, r.IsReference(tt.content), tt.content)
	}
	assert.Equal(t, "storage://notes/", r.ReferencePrefix())
}

func TestContentHelpers(t *testing.T) {
	assert.Equal(t, "md", Extension("u/n.MD"))
	assert.Equal(t, "", Extension("u/n"))

	assert.True(t, IsTextExtension("md"))
	assert.True(t, IsTextExtension(".TXT"))
	assert.False(t, IsTextExtension("png"))
	assert.False(t, IsTextExtension(""))

	assert.Equal(t, "notes", NewAddressResolver("notes").Bucket())
}
