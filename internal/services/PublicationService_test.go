package services

import (
	"fmt"
	"testing"

	"cpd/internal/models"
	"cpd/internal/providers"
	"cpd/internal/storage"
	"cpd/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() models.PublishRequest {
	return models.PublishRequest{
		ID:             "v1",
		Title:          "Intro",
		Description:    "First lesson",
		InstructorID:   "i1",
		InstructorName: "Ada",
		Reference:      "blob:http://localhost/abc",
	}
}

func TestPublish_HappyPath(t *testing.T) {
	f := newFixture()
	ps := f.publication()

	result, err := ps.Publish(validRequest())
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.Complete())

	all := f.library.ListAll()
	require.Len(t, all, 1)
	got := all[0]
	assert.Equal(t, "v1", got.ID)
	assert.Equal(t, "Intro", got.Title)
	assert.Equal(t, "i1", got.InstructorID)
	assert.Equal(t, "Ada", got.InstructorName)
	assert.Equal(t, int64(0), got.ViewCount)
	assert.Equal(t, testNow, got.PublishedAt)
	assert.Equal(t, DefaultReferencePool[NewReferenceResolver(f.conf).Index("v1")], got.PlayableReference)

	audience, _ := f.notifications.ListAll(models.StreamAudience)
	admin, _ := f.notifications.ListAll(models.StreamAdmin)
	require.Len(t, audience, 1)
	require.Len(t, admin, 1)
	assert.Equal(t, "v1", audience[0].ContentID)
	assert.Equal(t, "Ada", audience[0].InstructorName)
	assert.False(t, audience[0].IsRead)
	assert.Empty(t, audience[0].Priority)
	assert.Equal(t, models.PriorityMedium, admin[0].Priority)
	assert.Equal(t, "i1", admin[0].InstructorID)
	assert.NotEqual(t, audience[0].ID, admin[0].ID)

	assert.Equal(t, 0, f.revenue.Count())
	assert.Equal(t, 1, f.metrics.Published[providers.OutcomeOK])
}

func TestPublish_DurableReferenceKept(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.Reference = "https://cdn.example.com/v1.mp4"

	result, err := f.publication().Publish(req)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/v1.mp4", result.LibraryItem.PlayableReference)
}

func TestPublish_ValidationHasNoSideEffects(t *testing.T) {
	for _, field := range []string{"id", "title", "description", "instructorId"} {
		t.Run(field, func(t *testing.T) {
			f := newFixture()
			req := validRequest()
			switch field {
			case "id":
				req.ID = "  "
			case "title":
				req.Title = ""
			case "description":
				req.Description = ""
			case "instructorId":
				req.InstructorID = "\t"
			}

			result, err := f.publication().Publish(req)
			assert.Nil(t, result)
			require.Error(t, err)

			var ve *models.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.NotEmpty(t, ve.Fields)
			assert.Equal(t, 0, f.store.Writes)
			assert.Equal(t, 1, f.metrics.Published[providers.OutcomeInvalid])
		})
	}
}

func TestPublish_LibraryFailureSendsNoNotifications(t *testing.T) {
	f := newFixture()
	f.store.SetFailing(storage.BucketLibrary, true)

	result, err := f.publication().Publish(validRequest())
	assert.Nil(t, result)
	assert.True(t, models.IsStoreWriteError(err))

	audience, _ := f.notifications.ListAll(models.StreamAudience)
	admin, _ := f.notifications.ListAll(models.StreamAdmin)
	assert.Empty(t, audience)
	assert.Empty(t, admin)
	assert.Equal(t, 1, f.metrics.Published[providers.OutcomeFailed])
}

func TestPublish_NotificationFailureKeepsLibraryEntry(t *testing.T) {
	f := newFixture()
	f.store.SetFailing(models.StreamAudience.Bucket(), true)

	result, err := f.publication().Publish(validRequest())
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.Complete())
	require.Len(t, result.Failures, 1)
	assert.Equal(t, models.StreamAudience, result.Failures[0].Stream)
	assert.ErrorIs(t, result.Failures[0].Err, testutil.ErrInjectedWrite)
	assert.Nil(t, result.AudienceNotification)
	require.NotNil(t, result.AdminNotification)

	assert.Equal(t, 1, f.library.Count())
	admin, _ := f.notifications.ListAll(models.StreamAdmin)
	assert.Len(t, admin, 1)
	assert.Equal(t, 1, f.metrics.Dropped[string(models.StreamAudience)])
	assert.Equal(t, 1, f.metrics.Published[providers.OutcomePartial])
}

func TestPublish_RepublishKeepsSingleEntry(t *testing.T) {
	f := newFixture()
	ps := f.publication()
	_, err := ps.Publish(validRequest())
	require.NoError(t, err)
	_, _, err = f.library.IncrementViews("v1")
	require.NoError(t, err)

	req := validRequest()
	req.Title = "Intro (updated)"
	result, err := ps.Publish(req)
	require.NoError(t, err)

	assert.Equal(t, 1, f.library.Count())
	assert.Equal(t, int64(1), result.LibraryItem.ViewCount)
	assert.Equal(t, "Intro (updated)", result.LibraryItem.Title)

	audience, _ := f.notifications.ListAll(models.StreamAudience)
	assert.Len(t, audience, 2)
}

func TestPublish_UsesGeneratedIDs(t *testing.T) {
	f := newFixture()
	ps := f.publication()
	n := 0
	ps.newID = func() string {
		n++
		return fmt.Sprintf("n%d", n)
	}

	result, err := ps.Publish(validRequest())
	require.NoError(t, err)
	assert.Equal(t, "n1", result.AudienceNotification.ID)
	assert.Equal(t, "n2", result.AdminNotification.ID)
}

func TestUnpublish_RemovesContentAndRevenue(t *testing.T) {
	f := newFixture()
	ps := f.publication()
	_, err := ps.Publish(validRequest())
	require.NoError(t, err)
	_, ok := f.playback().View("v1")
	require.True(t, ok)

	removed, err := ps.Unpublish("v1")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, 0, f.library.Count())
	assert.Equal(t, 0, f.revenue.Count())

	removed, err = ps.Unpublish("v1")
	require.NoError(t, err)
	assert.False(t, removed)
}
