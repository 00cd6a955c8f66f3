package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/templui/goaltracker/internal/model"
	"github.com/templui/goaltracker/internal/repository"
	"github.com/templui/goaltracker/internal/validation"
)

var (
	ErrGoalIntentNotFound     = errors.New("goal intent not found")
	ErrGoalIntentDataNotFound = errors.New("goal intent data not found")
	ErrNoSnapshot             = errors.New("goal intent has no snapshot yet")
)

type GoalIntentDataService struct {
	db           *sqlx.DB
	intentRepo   repository.GoalIntentRepository
	dataRepo     repository.GoalIntentDataRepository
	defaultCount int64
	maxCount     int64
}

func NewGoalIntentDataService(
	db *sqlx.DB,
	intentRepo repository.GoalIntentRepository,
	dataRepo repository.GoalIntentDataRepository,
	defaultCount int64,
	maxCount int64,
) *GoalIntentDataService {
	return &GoalIntentDataService{
		db:           db,
		intentRepo:   intentRepo,
		dataRepo:     dataRepo,
		defaultCount: defaultCount,
		maxCount:     maxCount,
	}
}

func (s *GoalIntentDataService) CreateIntent(ctx context.Context, creatorUserID int64) (*model.GoalIntent, error) {
	intent, err := s.intentRepo.Add(ctx, s.db, creatorUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal intent: %w", err)
	}

	slog.Info("goal intent created", "goal_intent_id", intent.GoalIntentID, "creator_user_id", creatorUserID)
	return intent, nil
}

func (s *GoalIntentDataService) Intent(ctx context.Context, goalIntentID int64) (*model.GoalIntent, error) {
	intent, err := s.intentRepo.ByID(ctx, s.db, goalIntentID)
	if err != nil {
		return nil, err
	}
	if intent == nil {
		return nil, ErrGoalIntentNotFound
	}
	return intent, nil
}

func (s *GoalIntentDataService) Create(ctx context.Context, creatorUserID, goalIntentID int64, name string, active bool) (*model.GoalIntentData, error) {
	err := validation.ValidateName(name)
	if err != nil {
		return nil, err
	}

	data, err := s.dataRepo.Add(ctx, s.db, creatorUserID, goalIntentID, name, active)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal intent data: %w", err)
	}

	slog.Info("goal intent data created",
		"goal_intent_data_id", data.GoalIntentDataID,
		"goal_intent_id", goalIntentID,
		"creator_user_id", creatorUserID,
	)
	return data, nil
}

// ByID returns ErrGoalIntentDataNotFound when the row does not exist.
func (s *GoalIntentDataService) ByID(ctx context.Context, goalIntentDataID int64) (*model.GoalIntentData, error) {
	data, err := s.dataRepo.ByID(ctx, s.db, goalIntentDataID)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, ErrGoalIntentDataNotFound
	}
	return data, nil
}

// Query runs a paginated search. A zero Count gets the default page size and
// no page is larger than the configured maximum.
func (s *GoalIntentDataService) Query(ctx context.Context, q model.GoalIntentDataQuery) ([]*model.GoalIntentData, error) {
	err := validation.ValidatePagination(q.Offset, q.Count)
	if err != nil {
		return nil, err
	}

	if q.Count == 0 {
		q.Count = s.defaultCount
	}
	if s.maxCount > 0 && q.Count > s.maxCount {
		q.Count = s.maxCount
	}

	results, err := s.dataRepo.Query(ctx, s.db, q)
	if err != nil {
		return nil, err
	}

	slog.Debug("goal intent data query",
		"only_recent", q.OnlyRecent,
		"offset", q.Offset,
		"count", q.Count,
		"results", len(results),
	)
	return results, nil
}

// Current returns the latest snapshot of a goal intent.
func (s *GoalIntentDataService) Current(ctx context.Context, goalIntentID int64) (*model.GoalIntentData, error) {
	return current(ctx, s.db, s.dataRepo, goalIntentID)
}

// Snapshot records a new snapshot of a goal intent, copying every field the
// caller leaves nil from the current one. Concurrent snapshots of the same
// intent each copy whichever row is latest when their insert runs.
func (s *GoalIntentDataService) Snapshot(ctx context.Context, creatorUserID, goalIntentID int64, name *string, active *bool) (*model.GoalIntentData, error) {
	if name != nil {
		err := validation.ValidateName(*name)
		if err != nil {
			return nil, err
		}
	}

	data, err := s.dataRepo.AddFromLatest(ctx, s.db, creatorUserID, goalIntentID, name, active)
	if err != nil {
		return nil, fmt.Errorf("failed to record snapshot: %w", err)
	}
	if data == nil {
		return nil, ErrNoSnapshot
	}

	slog.Info("goal intent snapshot recorded",
		"goal_intent_data_id", data.GoalIntentDataID,
		"goal_intent_id", goalIntentID,
		"creator_user_id", creatorUserID,
	)
	return data, nil
}

func current(ctx context.Context, db repository.Executor, repo repository.GoalIntentDataRepository, goalIntentID int64) (*model.GoalIntentData, error) {
	results, err := repo.Query(ctx, db, model.GoalIntentDataQuery{
		GoalIntentID: model.Ptr(goalIntentID),
		OnlyRecent:   true,
		Count:        1,
	})
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, ErrNoSnapshot
	}
	return results[0], nil
}
