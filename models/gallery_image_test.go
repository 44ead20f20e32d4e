package models

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadImage(t *testing.T) {
	db := newTestDB(t)
	store := newMemStorage()

	image, err := UploadImage(db, store, bytes.NewReader([]byte("bytes")), "photo.JPG", nil, ImageMeta{
		Title:   "Pitch",
		AltText: "the pitch at dawn",
	})
	require.NoError(t, err)
	assert.NotZero(t, image.ID)
	assert.Equal(t, int64(5), image.Size)
	assert.Contains(t, store.files, image.Path)
	assert.Contains(t, image.Path, "gallery/")
	assert.Contains(t, image.Path, ".jpg", "extension is normalized to lower case")
}

func TestUploadImageStorageFailure(t *testing.T) {
	db := newTestDB(t)
	store := newMemStorage()
	store.failSave = true

	_, err := UploadImage(db, store, bytes.NewReader([]byte("bytes")), "photo.jpg", nil, ImageMeta{})
	assert.ErrorIs(t, err, ErrStorage)

	// A failed write leaves no metadata behind
	images, err := GetImages(db, nil)
	require.NoError(t, err)
	assert.Empty(t, images)
}

func TestUploadImageEmptyFile(t *testing.T) {
	db := newTestDB(t)
	_, err := UploadImage(db, newMemStorage(), bytes.NewReader(nil), "photo.jpg", nil, ImageMeta{})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateImagePathImmutable(t *testing.T) {
	db := newTestDB(t)
	store := newMemStorage()

	image := uploadTestImage(t, db, store, nil, "before")
	updated, err := UpdateImage(db, image.ID, nil, ImageMeta{Title: "after", Category: "pitch"})
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Title)
	assert.Equal(t, image.Path, updated.Path)
}

func TestDeleteImageRemovesFileBestEffort(t *testing.T) {
	db := newTestDB(t)
	store := newMemStorage()

	image := uploadTestImage(t, db, store, nil, "gone")
	// Simulate the blob disappearing underneath us; the row delete must
	// still succeed
	delete(store.files, image.Path)
	require.NoError(t, DeleteImage(db, store, image.ID))
	_, err := GetImageByID(db, image.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetImagesByAlbum(t *testing.T) {
	db := newTestDB(t)
	store := newMemStorage()

	album, err := CreateAlbum(db, "A", "")
	require.NoError(t, err)
	uploadTestImage(t, db, store, &album.ID, "in-album")
	uploadTestImage(t, db, store, nil, "loose")

	scoped, err := GetImages(db, &album.ID)
	require.NoError(t, err)
	assert.Len(t, scoped, 1)
	all, err := GetImages(db, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
