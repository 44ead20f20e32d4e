package models

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func uploadTestImage(t *testing.T, db *gorm.DB, store *memStorage, albumID *uint64, title string) GalleryImage {
	t.Helper()
	image, err := UploadImage(db, store, bytes.NewReader([]byte("not-really-a-jpeg")), title+".jpg", albumID, ImageMeta{Title: title})
	require.NoError(t, err)
	return image
}

func TestCreateAlbum(t *testing.T) {
	db := newTestDB(t)

	album, err := CreateAlbum(db, "Summer 2025", "club trip")
	require.NoError(t, err)
	assert.NotZero(t, album.ID)
	assert.Nil(t, album.CoverImageID, "new albums start with no cover")

	_, err = CreateAlbum(db, "   ", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSetAlbumCover(t *testing.T) {
	db := newTestDB(t)
	store := newMemStorage()

	album, err := CreateAlbum(db, "Matchday", "")
	require.NoError(t, err)
	other, err := CreateAlbum(db, "Training", "")
	require.NoError(t, err)

	image := uploadTestImage(t, db, store, &album.ID, "team")

	// A cover must belong to the album it covers
	err = SetAlbumCover(db, other.ID, image.Path)
	assert.ErrorIs(t, err, ErrValidation)

	require.NoError(t, SetAlbumCover(db, album.ID, image.Path))
	cover, err := GetAlbumCover(db, album.ID)
	require.NoError(t, err)
	assert.Equal(t, image.ID, cover.ID)
	require.NotNil(t, cover.AlbumID)
	assert.Equal(t, album.ID, *cover.AlbumID)

	// Unknown image path
	err = SetAlbumCover(db, album.ID, "gallery/nope.jpg")
	assert.ErrorIs(t, err, ErrNotFound)

	// Image without album membership cannot cover anything
	loose := uploadTestImage(t, db, store, nil, "loose")
	err = SetAlbumCover(db, album.ID, loose.Path)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDeleteAlbumKeepsImages(t *testing.T) {
	db := newTestDB(t)
	store := newMemStorage()

	album, err := CreateAlbum(db, "Season opener", "")
	require.NoError(t, err)
	first := uploadTestImage(t, db, store, &album.ID, "first")
	second := uploadTestImage(t, db, store, &album.ID, "second")
	require.NoError(t, SetAlbumCover(db, album.ID, first.Path))

	require.NoError(t, DeleteAlbum(db, album.ID))

	_, err = GetAlbumByID(db, album.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = GetAlbumCover(db, album.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Same image rows as before, each unassigned
	images, err := GetImages(db, nil)
	require.NoError(t, err)
	require.Len(t, images, 2)
	ids := map[uint64]bool{}
	for _, image := range images {
		assert.Nil(t, image.AlbumID)
		ids[image.ID] = true
	}
	assert.True(t, ids[first.ID])
	assert.True(t, ids[second.ID])
	// Files are untouched
	assert.Contains(t, store.files, first.Path)
	assert.Contains(t, store.files, second.Path)
}

func TestDeleteImageClearsCover(t *testing.T) {
	db := newTestDB(t)
	store := newMemStorage()

	album, err := CreateAlbum(db, "Cup final", "")
	require.NoError(t, err)
	image := uploadTestImage(t, db, store, &album.ID, "trophy")
	require.NoError(t, SetAlbumCover(db, album.ID, image.Path))

	require.NoError(t, DeleteImage(db, store, image.ID))

	// The album survives but no longer references a nonexistent image
	reloaded, err := GetAlbumByID(db, album.ID)
	require.NoError(t, err)
	assert.Nil(t, reloaded.CoverImageID)
	_, err = GetAlbumCover(db, album.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotContains(t, store.files, image.Path)
}

func TestAlbumCoverEndToEnd(t *testing.T) {
	db := newTestDB(t)
	store := newMemStorage()

	album, err := CreateAlbum(db, "Summer 2025", "")
	require.NoError(t, err)
	img1 := uploadTestImage(t, db, store, &album.ID, "img1")
	require.NoError(t, SetAlbumCover(db, album.ID, img1.Path))

	require.NoError(t, DeleteAlbum(db, album.ID))

	_, err = GetAlbumByID(db, album.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	survivor, err := GetImageByID(db, img1.ID)
	require.NoError(t, err)
	assert.Nil(t, survivor.AlbumID)
	_, err = GetAlbumCover(db, album.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}
