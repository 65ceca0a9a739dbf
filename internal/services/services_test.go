package services

import (
	"context"
	"github.com/google/uuid"
	"github.com/maxaizer/recruit-dashboard/internal/entities"
	"github.com/maxaizer/recruit-dashboard/internal/matching"
	"github.com/maxaizer/recruit-dashboard/internal/repositories"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

var fixtureNow = time.Date(2024, 3, 27, 0, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) *repositories.Store {
	t.Helper()

	dbContext, err := repositories.NewDbContext("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = dbContext.Close() })

	require.NoError(t, dbContext.Migrate())
	require.NoError(t, dbContext.Seed(fixtureNow))

	return repositories.NewStore(dbContext.DB)
}

type mockMessages struct {
	mock.Mock
}

func (m *mockMessages) Create(ctx context.Context, message entities.Message) (*entities.Message, error) {
	args := m.Called(ctx, message)
	created, _ := args.Get(0).(*entities.Message)
	return created, args.Error(1)
}

func (m *mockMessages) UnreadCount(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type mockCandidates struct {
	mock.Mock
}

func (m *mockCandidates) List(ctx context.Context) ([]entities.Candidate, error) {
	args := m.Called(ctx)
	candidates, _ := args.Get(0).([]entities.Candidate)
	return candidates, args.Error(1)
}

func (m *mockCandidates) FindByID(ctx context.Context, id string) (*entities.Candidate, error) {
	args := m.Called(ctx, id)
	candidate, _ := args.Get(0).(*entities.Candidate)
	return candidate, args.Error(1)
}

type mockMetricsSource struct {
	mock.Mock
}

func (m *mockMetricsSource) Metrics(ctx context.Context, now time.Time) (*matching.DashboardMetrics, error) {
	args := m.Called(ctx, now)
	figures, _ := args.Get(0).(*matching.DashboardMetrics)
	return figures, args.Error(1)
}
