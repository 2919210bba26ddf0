package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/example/profile/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "admin-content.json"))
}

func rawPatch(t *testing.T, kv map[string]any) map[string]json.RawMessage {
	t.Helper()
	patch := make(map[string]json.RawMessage, len(kv))
	for k, v := range kv {
		data, err := json.Marshal(v)
		require.NoError(t, err)
		patch[k] = data
	}
	return patch
}

func TestRead_CreatesDefaultDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "admin-content.json")
	s := New(path)

	doc, err := s.Read()
	require.NoError(t, err)
	require.True(t, doc.Settings.ShowFeedback)
	require.True(t, doc.Settings.ShowProjects)
	require.True(t, doc.Settings.ShowServices)
	require.NotEmpty(t, doc.Settings.SiteTitle)
	require.NotEmpty(t, doc.Settings.SiteTitleAr)
	require.Empty(t, doc.Projects)
	require.Empty(t, doc.Services)
	require.Empty(t, doc.Feedbacks)

	// first read persists the defaults
	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestRead_CorruptDocumentIsNotMasked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "admin-content.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := New(path)
	_, err := s.Read()
	require.Error(t, err)
	require.ErrorIs(t, err, ErrCorruptDocument)

	var pe *PersistenceError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, "read", pe.Op)
}

func TestUpdateSettings_MergeKeepsMissingFields(t *testing.T) {
	s := newTestStore(t)

	before, err := s.Read()
	require.NoError(t, err)

	merged, err := s.UpdateSettings(rawPatch(t, map[string]any{
		"siteTitle":    "Ali Portfolio",
		"showProjects": false,
		"contactEmail": "ali@x.com",
	}))
	require.NoError(t, err)

	require.Equal(t, "Ali Portfolio", merged.SiteTitle)
	require.False(t, merged.ShowProjects)
	require.Equal(t, "ali@x.com", merged.ContactEmail)
	// untouched fields retain their pre-image values
	require.Equal(t, before.Settings.SiteDescription, merged.SiteDescription)
	require.Equal(t, before.Settings.SiteTitleAr, merged.SiteTitleAr)
	require.True(t, merged.ShowFeedback)

	after, err := s.Read()
	require.NoError(t, err)
	require.Equal(t, merged, after.Settings)
}

func TestAddFeedback_PrependsWithFreshID(t *testing.T) {
	s := newTestStore(t)
	before := time.Now().UTC().Truncate(time.Second)

	first, err := s.AddFeedback(models.Feedback{Name: "A", Email: "a@x.com", Message: "one", Rating: 4})
	require.NoError(t, err)
	second, err := s.AddFeedback(models.Feedback{Name: "B", Email: "b@x.com", Message: "two", Rating: 3})
	require.NoError(t, err)

	require.NotEmpty(t, first.ID)
	require.NotEqual(t, first.ID, second.ID)
	require.Equal(t, models.FeedbackStatusNew, first.Status)
	require.False(t, first.Visible)

	created, err := time.Parse(time.RFC3339, first.CreatedAt)
	require.NoError(t, err)
	require.False(t, created.Before(before))

	doc, err := s.Read()
	require.NoError(t, err)
	require.Len(t, doc.Feedbacks, 2)
	// newest first
	require.Equal(t, second.ID, doc.Feedbacks[0].ID)
	require.Equal(t, first.ID, doc.Feedbacks[1].ID)
}

func TestReplaceProjects_RoundTripPreservesOrder(t *testing.T) {
	s := newTestStore(t)

	list := []models.Project{
		{ID: "p3", Title: "Third", Order: 3, Visible: true},
		{ID: "p1", Title: "First", Order: 1, Visible: false},
		{ID: "p2", Title: "Second", Order: 2, Visible: true, Tags: []string{"go", "web"}},
	}

	stored, err := s.ReplaceProjects(list)
	require.NoError(t, err)
	require.Equal(t, list, stored)

	doc, err := s.Read()
	require.NoError(t, err)
	require.Equal(t, list, doc.Projects)
}

func TestUpdateItemByID_PatchesInPlace(t *testing.T) {
	s := newTestStore(t)

	fb, err := s.AddFeedback(models.Feedback{Name: "Ali", Email: "ali@x.com", Message: "Great site", Rating: 4, Category: "project"})
	require.NoError(t, err)

	found, err := s.UpdateItemByID(CollectionFeedbacks, fb.ID, rawPatch(t, map[string]any{
		"visible": true,
		"status":  models.FeedbackStatusApproved,
	}))
	require.NoError(t, err)
	require.True(t, found)

	doc, err := s.Read()
	require.NoError(t, err)
	require.Len(t, doc.Feedbacks, 1)
	got := doc.Feedbacks[0]
	require.True(t, got.Visible)
	require.Equal(t, models.FeedbackStatusApproved, got.Status)
	// untouched fields survive the merge
	require.Equal(t, "Ali", got.Name)
	require.Equal(t, 4, got.Rating)
	require.Equal(t, fb.ID, got.ID)
}

func TestUpdateItemByID_MissingIDIsSilentNoOp(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AddFeedback(models.Feedback{Name: "A", Email: "a@x.com", Message: "m"})
	require.NoError(t, err)
	before, err := s.Read()
	require.NoError(t, err)

	found, err := s.UpdateItemByID(CollectionFeedbacks, "no-such-id", rawPatch(t, map[string]any{"visible": true}))
	require.NoError(t, err)
	require.False(t, found)

	after, err := s.Read()
	require.NoError(t, err)
	require.Equal(t, before.Feedbacks, after.Feedbacks)
}

func TestDeleteItemByID_MissingIDIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	fb, err := s.AddFeedback(models.Feedback{Name: "A", Email: "a@x.com", Message: "m"})
	require.NoError(t, err)

	found, err := s.DeleteItemByID(CollectionFeedbacks, "no-such-id")
	require.NoError(t, err)
	require.False(t, found)

	doc, err := s.Read()
	require.NoError(t, err)
	require.Len(t, doc.Feedbacks, 1)

	found, err = s.DeleteItemByID(CollectionFeedbacks, fb.ID)
	require.NoError(t, err)
	require.True(t, found)

	doc, err = s.Read()
	require.NoError(t, err)
	require.Empty(t, doc.Feedbacks)
}

func TestUnknownCollectionRejected(t *testing.T) {
	s := newTestStore(t)

	_, err := s.UpdateItemByID("users", "1", nil)
	require.ErrorIs(t, err, ErrUnknownCollection)

	_, err = s.DeleteItemByID("users", "1")
	require.ErrorIs(t, err, ErrUnknownCollection)
}

func TestConcurrentAddFeedback_NoLostUpdate(t *testing.T) {
	s := newTestStore(t)

	const writers = 10
	errs := make(chan error, writers)
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func() {
			defer wg.Done()
			_, err := s.AddFeedback(models.Feedback{Name: "W", Email: "w@x.com", Message: "hello"})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	doc, err := s.Read()
	require.NoError(t, err)
	require.Len(t, doc.Feedbacks, writers)

	seen := make(map[string]bool, writers)
	for _, fb := range doc.Feedbacks {
		require.False(t, seen[fb.ID], "duplicate id %s", fb.ID)
		seen[fb.ID] = true
	}
}
