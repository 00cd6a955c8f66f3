package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/goaltracker/internal/db/dbtest"
	"github.com/templui/goaltracker/internal/model"
	"github.com/templui/goaltracker/internal/repository"
	"github.com/templui/goaltracker/internal/service"
)

// --- Mock Dependencies ---

type mockDataRepo struct {
	AddFunc   func(ctx context.Context, db repository.Executor, creatorUserID, goalIntentID int64, name string, active bool) (*model.GoalIntentData, error)
	ByIDFunc  func(ctx context.Context, db repository.Executor, goalIntentDataID int64) (*model.GoalIntentData, error)
	QueryFunc func(ctx context.Context, db repository.Executor, q model.GoalIntentDataQuery) ([]*model.GoalIntentData, error)

	AddFromLatestFunc func(ctx context.Context, db repository.Executor, creatorUserID, goalIntentID int64, name *string, active *bool) (*model.GoalIntentData, error)
}

func (m *mockDataRepo) Add(ctx context.Context, db repository.Executor, creatorUserID, goalIntentID int64, name string, active bool) (*model.GoalIntentData, error) {
	return m.AddFunc(ctx, db, creatorUserID, goalIntentID, name, active)
}

func (m *mockDataRepo) AddFromLatest(ctx context.Context, db repository.Executor, creatorUserID, goalIntentID int64, name *string, active *bool) (*model.GoalIntentData, error) {
	return m.AddFromLatestFunc(ctx, db, creatorUserID, goalIntentID, name, active)
}

func (m *mockDataRepo) ByID(ctx context.Context, db repository.Executor, goalIntentDataID int64) (*model.GoalIntentData, error) {
	return m.ByIDFunc(ctx, db, goalIntentDataID)
}

func (m *mockDataRepo) Query(ctx context.Context, db repository.Executor, q model.GoalIntentDataQuery) ([]*model.GoalIntentData, error) {
	return m.QueryFunc(ctx, db, q)
}

// --- Test Suite ---

func newService(t *testing.T) *service.GoalIntentDataService {
	t.Helper()
	return service.NewGoalIntentDataService(
		dbtest.New(t),
		repository.NewGoalIntentRepository(nil),
		repository.NewGoalIntentDataRepository(nil),
		50,
		100,
	)
}

func TestGoalIntentDataService_CreateAndRead(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	intent, err := svc.CreateIntent(ctx, 1)
	require.NoError(t, err)

	got, err := svc.Intent(ctx, intent.GoalIntentID)
	require.NoError(t, err)
	assert.Equal(t, intent, got)

	data, err := svc.Create(ctx, 1, intent.GoalIntentID, "Run 5k", true)
	require.NoError(t, err)

	byID, err := svc.ByID(ctx, data.GoalIntentDataID)
	require.NoError(t, err)
	assert.Equal(t, data, byID)

	current, err := svc.Current(ctx, intent.GoalIntentID)
	require.NoError(t, err)
	assert.Equal(t, data, current)
}

func TestGoalIntentDataService_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	_, err := svc.ByID(ctx, 12345)
	assert.ErrorIs(t, err, service.ErrGoalIntentDataNotFound)

	_, err = svc.Intent(ctx, 12345)
	assert.ErrorIs(t, err, service.ErrGoalIntentNotFound)

	_, err = svc.Current(ctx, 12345)
	assert.ErrorIs(t, err, service.ErrNoSnapshot)
}

func TestGoalIntentDataService_CreateRejectsBlankName(t *testing.T) {
	svc := newService(t)

	_, err := svc.Create(context.Background(), 1, 1, "  ", true)
	assert.EqualError(t, err, "name is required")
}

func TestGoalIntentDataService_CreateUnknownIntent(t *testing.T) {
	svc := newService(t)

	_, err := svc.Create(context.Background(), 1, 999, "orphan", true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create goal intent data")
}

func TestGoalIntentDataService_Snapshot(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	intent, err := svc.CreateIntent(ctx, 1)
	require.NoError(t, err)
	first, err := svc.Create(ctx, 1, intent.GoalIntentID, "Run 5k", true)
	require.NoError(t, err)

	renamed, err := svc.Snapshot(ctx, 2, intent.GoalIntentID, model.Ptr("Run 10k"), nil)
	require.NoError(t, err)
	assert.Greater(t, renamed.GoalIntentDataID, first.GoalIntentDataID)
	assert.Equal(t, "Run 10k", renamed.Name)
	assert.True(t, renamed.Active)
	assert.Equal(t, int64(2), renamed.CreatorUserID)

	paused, err := svc.Snapshot(ctx, 1, intent.GoalIntentID, nil, model.Ptr(false))
	require.NoError(t, err)
	assert.Equal(t, "Run 10k", paused.Name)
	assert.False(t, paused.Active)

	current, err := svc.Current(ctx, intent.GoalIntentID)
	require.NoError(t, err)
	assert.Equal(t, paused, current)

	// The first snapshot is untouched.
	original, err := svc.ByID(ctx, first.GoalIntentDataID)
	require.NoError(t, err)
	assert.Equal(t, first, original)

	history, err := svc.Query(ctx, model.GoalIntentDataQuery{GoalIntentID: model.Ptr(intent.GoalIntentID)})
	require.NoError(t, err)
	assert.Len(t, history, 3)
}

func TestGoalIntentDataService_SnapshotWithoutHistory(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	intent, err := svc.CreateIntent(ctx, 1)
	require.NoError(t, err)

	_, err = svc.Snapshot(ctx, 1, intent.GoalIntentID, model.Ptr("x"), nil)
	assert.ErrorIs(t, err, service.ErrNoSnapshot)
}

func TestGoalIntentDataService_ConcurrentSnapshots(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	intent, err := svc.CreateIntent(ctx, 1)
	require.NoError(t, err)
	_, err = svc.Create(ctx, 1, intent.GoalIntentID, "Run 5k", true)
	require.NoError(t, err)

	const writers = 20
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(active bool) {
			defer wg.Done()
			_, err := svc.Snapshot(ctx, 1, intent.GoalIntentID, nil, model.Ptr(active))
			if err != nil {
				errs <- err
				return
			}
			_, err = svc.Current(ctx, intent.GoalIntentID)
			if err != nil {
				errs <- err
			}
		}(i%2 == 0)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}

	history, err := svc.Query(ctx, model.GoalIntentDataQuery{GoalIntentID: model.Ptr(intent.GoalIntentID)})
	require.NoError(t, err)
	require.Len(t, history, writers+1)
	for _, h := range history {
		assert.Equal(t, "Run 5k", h.Name)
	}
}

func TestGoalIntentDataService_SnapshotRepositoryError(t *testing.T) {
	boom := errors.New("disk I/O error")
	repo := &mockDataRepo{
		AddFromLatestFunc: func(ctx context.Context, db repository.Executor, creatorUserID, goalIntentID int64, name *string, active *bool) (*model.GoalIntentData, error) {
			return nil, boom
		},
	}
	svc := service.NewGoalIntentDataService(nil, nil, repo, 50, 100)

	_, err := svc.Snapshot(context.Background(), 1, 1, nil, model.Ptr(true))
	assert.ErrorIs(t, err, boom)

	_, err = svc.Snapshot(context.Background(), 1, 1, model.Ptr(" "), nil)
	assert.EqualError(t, err, "name is required")
}

func TestGoalIntentDataService_QueryPageSize(t *testing.T) {
	tests := []struct {
		name      string
		count     int64
		wantCount int64
	}{
		{name: "default", count: 0, wantCount: 50},
		{name: "explicit", count: 20, wantCount: 20},
		{name: "capped", count: 500, wantCount: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen model.GoalIntentDataQuery
			repo := &mockDataRepo{
				QueryFunc: func(ctx context.Context, db repository.Executor, q model.GoalIntentDataQuery) ([]*model.GoalIntentData, error) {
					seen = q
					return []*model.GoalIntentData{}, nil
				},
			}
			svc := service.NewGoalIntentDataService(nil, nil, repo, 50, 100)

			results, err := svc.Query(context.Background(), model.GoalIntentDataQuery{Count: tt.count, Offset: 3})
			require.NoError(t, err)
			assert.Empty(t, results)
			assert.Equal(t, tt.wantCount, seen.Count)
			assert.Equal(t, int64(3), seen.Offset)
		})
	}
}

func TestGoalIntentDataService_QueryPassesErrorsThrough(t *testing.T) {
	boom := errors.New("connection reset")
	repo := &mockDataRepo{
		QueryFunc: func(ctx context.Context, db repository.Executor, q model.GoalIntentDataQuery) ([]*model.GoalIntentData, error) {
			return nil, boom
		},
	}
	svc := service.NewGoalIntentDataService(nil, nil, repo, 50, 100)

	_, err := svc.Query(context.Background(), model.GoalIntentDataQuery{})
	assert.Same(t, boom, err)
}

func TestGoalIntentDataService_QueryRejectsNegativePagination(t *testing.T) {
	repo := &mockDataRepo{
		QueryFunc: func(ctx context.Context, db repository.Executor, q model.GoalIntentDataQuery) ([]*model.GoalIntentData, error) {
			t.Fatal("repository must not be called")
			return nil, nil
		},
	}
	svc := service.NewGoalIntentDataService(nil, nil, repo, 50, 100)

	_, err := svc.Query(context.Background(), model.GoalIntentDataQuery{Offset: -1})
	assert.Error(t, err)
}
