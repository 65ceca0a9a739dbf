package repositories

import (
	"context"
	"github.com/google/uuid"
	"github.com/maxaizer/recruit-dashboard/internal/entities"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func newTestStore(t *testing.T) (*Store, *DbContext) {
	t.Helper()

	dbContext, err := NewDbContext("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = dbContext.Close() })

	require.NoError(t, dbContext.Migrate())
	require.NoError(t, dbContext.Seed(time.Now()))

	return NewStore(dbContext.DB), dbContext
}

func Test_Seed_ShouldLoadSampleData(t *testing.T) {
	assert := assert.New(t)
	store, _ := newTestStore(t)
	ctx := context.Background()

	candidates, err := store.Candidates.List(ctx)
	require.NoError(t, err)
	jobs, _ := store.JobRoles.List(ctx)
	presentations, _ := store.Presentations.List(ctx)
	employers, _ := store.Employers.List(ctx)
	messages, _ := store.Messages.List(ctx)

	assert.Len(candidates, 5)
	assert.Len(jobs, 5)
	assert.Len(presentations, 6)
	assert.Len(employers, 3)
	assert.Len(messages, 3)

	assert.Equal([]string{"1", "2", "3", "4", "5"}, lo.Map(candidates, func(c entities.Candidate, _ int) string {
		return c.ID
	}))
	assert.Len(candidates[0].Skills, 4)
	assert.Equal(160000, jobs[0].Salary.Max)
	assert.Equal(80, employers[0].Metrics.SuccessRate)
	assert.Equal("Sarah Chen", employers[0].ContactInfo.Name)
	require.NotNil(t, presentations[0].NextStep)
	assert.Equal("Technical Interview", presentations[0].NextStep.Type)
	assert.Nil(presentations[5].NextStep)
}

func Test_Seed_WhenAlreadySeeded_ShouldNotDuplicate(t *testing.T) {
	store, dbContext := newTestStore(t)

	require.NoError(t, dbContext.Seed(time.Now()))

	candidates, err := store.Candidates.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, candidates, 5)
}

func Test_FindByID_WhenAbsent_ShouldReturnNil(t *testing.T) {
	store, _ := newTestStore(t)

	candidate, err := store.Candidates.FindByID(context.Background(), "missing")

	assert.NoError(t, err)
	assert.Nil(t, candidate)
}

func Test_Create_ShouldAssignFreshIdAndAppend(t *testing.T) {
	assert := assert.New(t)
	store, _ := newTestStore(t)
	ctx := context.Background()

	created, err := store.Candidates.Create(ctx, entities.Candidate{ID: "1", Name: "New", Status: entities.CandidateActive})
	require.NoError(t, err)

	assert.NotEqual("1", created.ID)
	_, err = uuid.Parse(created.ID)
	assert.NoError(err)

	candidates, _ := store.Candidates.List(ctx)
	assert.Len(candidates, 6)
	assert.Equal(created.ID, candidates[5].ID)

	found, err := store.Candidates.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal("New", found.Name)
}

func Test_Create_TwiceWithSameContent_ShouldProduceDistinctIds(t *testing.T) {
	store, _ := newTestStore(t)
	job := entities.JobRole{Title: "Engineer", Company: "Acme", Status: entities.JobOpen}

	first, err := store.JobRoles.Create(context.Background(), job)
	require.NoError(t, err)
	second, err := store.JobRoles.Create(context.Background(), job)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func Test_Update_WhenEmptyPatch_ShouldLeaveEntityUnchanged(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	before, err := store.Presentations.FindByID(ctx, "1")
	require.NoError(t, err)

	updated, err := store.Presentations.Update(ctx, "1", entities.PresentationPatch{})
	require.NoError(t, err)

	assert.Equal(t, before.Status, updated.Status)
	assert.Equal(t, before.Notes, updated.Notes)
	assert.Equal(t, before.NextStep.Type, updated.NextStep.Type)
	assert.True(t, before.LastUpdated.Equal(updated.LastUpdated))
}

func Test_Update_ShouldReplaceOnlyGivenFields(t *testing.T) {
	assert := assert.New(t)
	store, _ := newTestStore(t)
	ctx := context.Background()
	status := entities.StatusOffer

	updated, err := store.Presentations.Update(ctx, "1", entities.PresentationPatch{Status: &status})
	require.NoError(t, err)

	assert.Equal(entities.StatusOffer, updated.Status)
	assert.Equal("1", updated.CandidateID)

	stored, _ := store.Presentations.FindByID(ctx, "1")
	assert.Equal(entities.StatusOffer, stored.Status)
	assert.Equal("Technical interview scheduled for next week", stored.Notes)
}

func Test_Update_WhenAbsent_ShouldBeNoOp(t *testing.T) {
	store, _ := newTestStore(t)
	name := "Ghost"

	updated, err := store.Employers.Update(context.Background(), "missing", entities.EmployerPatch{Name: &name})

	assert.NoError(t, err)
	assert.Nil(t, updated)
	employers, _ := store.Employers.List(context.Background())
	assert.Len(t, employers, 3)
}

func Test_Delete_ShouldRemoveAndBeIdempotent(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Candidates.Delete(ctx, "2"))
	require.NoError(t, store.Candidates.Delete(ctx, "2"))
	require.NoError(t, store.Candidates.Delete(ctx, "missing"))

	candidates, _ := store.Candidates.List(ctx)
	assert.Len(t, candidates, 4)
	found, err := store.Candidates.FindByID(ctx, "2")
	assert.NoError(t, err)
	assert.Nil(t, found)
}

func Test_Delete_ShouldNotCascade(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.JobRoles.Delete(ctx, "3"))

	presentations, _ := store.Presentations.List(ctx)
	assert.Len(t, presentations, 6)
}

func Test_CachedCandidates_ShouldSeeUpdatesAfterCachedRead(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	notes := "Relocating to Denver"

	_, err := store.Candidates.FindByID(ctx, "1")
	require.NoError(t, err)
	_, err = store.Candidates.Update(ctx, "1", entities.CandidatePatch{Notes: &notes})
	require.NoError(t, err)

	found, err := store.Candidates.FindByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, notes, found.Notes)
}

func Test_CachedJobRoles_ShouldForgetDeleted(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	cached, err := store.JobRoles.FindByID(ctx, "2")
	require.NoError(t, err)
	require.NotNil(t, cached)
	require.NoError(t, store.JobRoles.Delete(ctx, "2"))

	found, err := store.JobRoles.FindByID(ctx, "2")
	assert.NoError(t, err)
	assert.Nil(t, found)
}

func Test_CachedCandidates_WhenUpdatedDuringLoad_ShouldNotCacheStaleValue(t *testing.T) {
	assert := assert.New(t)
	store, _ := newTestStore(t)
	ctx := context.Background()
	cached := store.Candidates
	renamed := "Renamed"

	loaded, err := cached.cache.readThrough(ctx, "1",
		func(ctx context.Context, id string) (*entities.Candidate, error) {
			item, err := cached.Candidates.FindByID(ctx, id)
			_, updateErr := cached.Update(ctx, id, entities.CandidatePatch{Name: &renamed})
			require.NoError(t, updateErr)
			return item, err
		})
	require.NoError(t, err)
	assert.Equal("Alex Johnson", loaded.Name)

	found, err := cached.FindByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(renamed, found.Name)
}

func Test_CachedJobRoles_WhenDeletedDuringLoad_ShouldNotCacheStaleValue(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	cached := store.JobRoles

	_, err := cached.cache.readThrough(ctx, "2",
		func(ctx context.Context, id string) (*entities.JobRole, error) {
			item, err := cached.JobRoles.FindByID(ctx, id)
			require.NoError(t, cached.Delete(ctx, id))
			return item, err
		})
	require.NoError(t, err)

	found, err := cached.FindByID(ctx, "2")
	assert.NoError(t, err)
	assert.Nil(t, found)
}

func Test_Messages_CreateShouldStampAndListNewestFirst(t *testing.T) {
	assert := assert.New(t)
	store, _ := newTestStore(t)
	ctx := context.Background()

	created, err := store.Messages.Create(ctx, entities.Message{
		Title: "Digest", Content: "Daily summary", Type: entities.MessageInfo, Read: true,
	})
	require.NoError(t, err)

	assert.False(created.Read)
	assert.WithinDuration(time.Now(), created.Timestamp, time.Minute)

	messages, _ := store.Messages.List(ctx)
	assert.Equal([]string{created.ID, "1", "2", "3"}, lo.Map(messages, func(m entities.Message, _ int) string {
		return m.ID
	}))
}

func Test_Messages_MarkAsRead(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Messages.MarkAsRead(ctx, "2"))
	require.NoError(t, store.Messages.MarkAsRead(ctx, "missing"))

	count, err := store.Messages.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	message, _ := store.Messages.FindByID(ctx, "2")
	assert.True(t, message.Read)
}

func Test_Messages_MarkAllAsRead(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Messages.MarkAllAsRead(ctx))

	count, err := store.Messages.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
