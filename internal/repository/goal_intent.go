package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/templui/goaltracker/internal/model"
)

type GoalIntentRepository interface {
	Add(ctx context.Context, db Executor, creatorUserID int64) (*model.GoalIntent, error)
	ByID(ctx context.Context, db Executor, goalIntentID int64) (*model.GoalIntent, error)
}

type goalIntentRepository struct {
	clock Clock
}

func NewGoalIntentRepository(clock Clock) GoalIntentRepository {
	return &goalIntentRepository{clock: clock}
}

func (r *goalIntentRepository) Add(ctx context.Context, db Executor, creatorUserID int64) (*model.GoalIntent, error) {
	creationTime := millis(r.clock)
	query := `INSERT INTO goal_intent (creation_time, creator_user_id)
	          VALUES ($1, $2)
	          RETURNING goal_intent_id`

	var goalIntentID int64
	err := db.QueryRowxContext(ctx, query, creationTime, creatorUserID).Scan(&goalIntentID)
	if err != nil {
		return nil, err
	}

	return &model.GoalIntent{
		GoalIntentID:  goalIntentID,
		CreationTime:  creationTime,
		CreatorUserID: creatorUserID,
	}, nil
}

// ByID returns nil without an error when no goal intent has the id.
func (r *goalIntentRepository) ByID(ctx context.Context, db Executor, goalIntentID int64) (*model.GoalIntent, error) {
	intent := &model.GoalIntent{}
	query := `SELECT * FROM goal_intent WHERE goal_intent_id = $1`

	err := sqlx.GetContext(ctx, db, intent, query, goalIntentID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return intent, nil
}
