package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleLikeRequiresActor(t *testing.T) {
	db := newTestDB(t)
	event := newTestEvent(t, db, "Derby")

	_, err := ToggleLike(db, event.ID, 0)
	assert.ErrorIs(t, err, ErrAuth)
	count, err := LikeCount(db, event.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestToggleLikeParity(t *testing.T) {
	db := newTestDB(t)
	event := newTestEvent(t, db, "Derby")
	user := newTestUser(t, db, "Sam", "sam@club.test")

	// Odd number of toggles -> liked, even -> not liked
	for i := 1; i <= 5; i++ {
		liked, err := ToggleLike(db, event.ID, user.ID)
		require.NoError(t, err)
		assert.Equal(t, i%2 == 1, liked, "toggle %d", i)

		count, err := LikeCount(db, event.ID)
		require.NoError(t, err)
		if i%2 == 1 {
			assert.Equal(t, int64(1), count)
		} else {
			assert.Equal(t, int64(0), count)
		}

		has, err := HasLiked(db, event.ID, user.ID)
		require.NoError(t, err)
		assert.Equal(t, i%2 == 1, has)
	}
}

func TestToggleLikeIndependentActors(t *testing.T) {
	db := newTestDB(t)
	event := newTestEvent(t, db, "Open day")
	alex := newTestUser(t, db, "Alex", "alex@club.test")
	kim := newTestUser(t, db, "Kim", "kim@club.test")

	liked, err := ToggleLike(db, event.ID, alex.ID)
	require.NoError(t, err)
	assert.True(t, liked)
	liked, err = ToggleLike(db, event.ID, kim.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	count, err := LikeCount(db, event.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// Alex withdrawing does not touch Kim's like
	liked, err = ToggleLike(db, event.ID, alex.ID)
	require.NoError(t, err)
	assert.False(t, liked)
	count, err = LikeCount(db, event.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestHasLikedAnonymous(t *testing.T) {
	db := newTestDB(t)
	event := newTestEvent(t, db, "AGM")
	has, err := HasLiked(db, event.ID, 0)
	require.NoError(t, err)
	assert.False(t, has)
}
