package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventCRUD(t *testing.T) {
	db := newTestDB(t)

	_, err := CreateEvent(db, Event{Title: " "})
	assert.ErrorIs(t, err, ErrValidation)
	_, err = CreateEvent(db, Event{Title: "Gala", Category: "circus"})
	assert.ErrorIs(t, err, ErrValidation)

	event, err := CreateEvent(db, Event{Title: "Gala", Category: EventCategorySocial, StartsAt: 100})
	require.NoError(t, err)

	updated, err := UpdateEvent(db, event.ID, Event{Title: "Summer Gala", Category: EventCategorySocial, StartsAt: 200})
	require.NoError(t, err)
	assert.Equal(t, "Summer Gala", updated.Title)
	assert.Equal(t, int64(200), updated.StartsAt)

	require.NoError(t, DeleteEvent(db, nil, event.ID))
	_, err = GetEventByID(db, event.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteEventRemovesSocialRows(t *testing.T) {
	db := newTestDB(t)
	event := newTestEvent(t, db, "Derby")
	user := newTestUser(t, db, "Sam", "sam@club.test")

	_, err := ToggleLike(db, event.ID, user.ID)
	require.NoError(t, err)
	_, err = AddComment(db, event.ID, user.ID, "up the club")
	require.NoError(t, err)

	require.NoError(t, DeleteEvent(db, nil, event.ID))

	var likes, comments int64
	db.Model(&EventLike{}).Where("event_id = ?", event.ID).Count(&likes)
	db.Model(&EventComment{}).Where("event_id = ?", event.ID).Count(&comments)
	assert.Zero(t, likes)
	assert.Zero(t, comments)
}

func TestCompetitionCRUD(t *testing.T) {
	db := newTestDB(t)

	competition, err := CreateCompetition(db, Competition{Title: "League", Season: "2025/26"})
	require.NoError(t, err)
	assert.Equal(t, CompetitionStatusUpcoming, competition.Status, "status defaults to upcoming")

	_, err = CreateCompetition(db, Competition{Title: "League", Status: "paused"})
	assert.ErrorIs(t, err, ErrValidation)

	updated, err := UpdateCompetition(db, competition.ID, Competition{Title: "League", Status: CompetitionStatusActive})
	require.NoError(t, err)
	assert.Equal(t, CompetitionStatusActive, updated.Status)

	require.NoError(t, DeleteCompetition(db, nil, competition.ID))
	_, err = GetCompetitionByID(db, competition.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDocumentCRUD(t *testing.T) {
	db := newTestDB(t)
	store := newMemStorage()

	_, err := CreateDocument(db, Document{Title: "Rules"})
	assert.ErrorIs(t, err, ErrValidation, "a document needs a file")

	document, err := CreateDocument(db, Document{
		Title:    "Rules",
		Category: "club",
		FileName: "rules.pdf",
		FilePath: "documents/abc.pdf",
		FileSize: 123,
	})
	require.NoError(t, err)

	// Metadata-only update keeps the file
	updated, err := UpdateDocument(db, store, document.ID, Document{Title: "Club rules"})
	require.NoError(t, err)
	assert.Equal(t, "documents/abc.pdf", updated.FilePath)

	// Supplying a new path swaps the file
	updated, err = UpdateDocument(db, store, document.ID, Document{Title: "Club rules", FilePath: "documents/def.pdf", FileName: "rules-v2.pdf", FileSize: 456})
	require.NoError(t, err)
	assert.Equal(t, "documents/def.pdf", updated.FilePath)
	assert.Equal(t, int64(456), updated.FileSize)

	require.NoError(t, DeleteDocument(db, store, document.ID))
	_, err = GetDocumentByID(db, document.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResultCRUD(t *testing.T) {
	db := newTestDB(t)

	result, err := CreateResult(db, Result{
		Title:    "Round 3",
		PlayedAt: 100,
		Items: []ResultItem{
			{Place: 1, Name: "Firsts", Score: "3-1"},
			{Place: 2, Name: "Seconds", Score: "1-3"},
		},
	})
	require.NoError(t, err)

	loaded, err := GetResultByID(db, result.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Items, 2)

	// Update replaces items wholesale
	updated, err := UpdateResult(db, result.ID, Result{
		Title: "Round 3 (corrected)",
		Items: []ResultItem{{Place: 1, Name: "Firsts", Score: "3-2"}},
	})
	require.NoError(t, err)
	loaded, err = GetResultByID(db, updated.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, "3-2", loaded.Items[0].Score)

	require.NoError(t, DeleteResult(db, result.ID))
	var items int64
	db.Model(&ResultItem{}).Where("result_id = ?", result.ID).Count(&items)
	assert.Zero(t, items, "items go with their result")
}
