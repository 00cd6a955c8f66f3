package repository

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/templui/goaltracker/internal/model"
)

type GoalIntentDataRepository interface {
	Add(ctx context.Context, db Executor, creatorUserID, goalIntentID int64, name string, active bool) (*model.GoalIntentData, error)
	AddFromLatest(ctx context.Context, db Executor, creatorUserID, goalIntentID int64, name *string, active *bool) (*model.GoalIntentData, error)
	ByID(ctx context.Context, db Executor, goalIntentDataID int64) (*model.GoalIntentData, error)
	Query(ctx context.Context, db Executor, q model.GoalIntentDataQuery) ([]*model.GoalIntentData, error)
}

type goalIntentDataRepository struct {
	clock Clock
}

func NewGoalIntentDataRepository(clock Clock) GoalIntentDataRepository {
	return &goalIntentDataRepository{clock: clock}
}

func (r *goalIntentDataRepository) Add(ctx context.Context, db Executor, creatorUserID, goalIntentID int64, name string, active bool) (*model.GoalIntentData, error) {
	creationTime := millis(r.clock)
	query := `INSERT INTO goal_intent_data (creation_time, creator_user_id, goal_intent_id, name, active)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING goal_intent_data_id`

	var goalIntentDataID int64
	err := db.QueryRowxContext(ctx, query,
		creationTime,
		creatorUserID,
		goalIntentID,
		name,
		active,
	).Scan(&goalIntentDataID)
	if err != nil {
		return nil, err
	}

	return &model.GoalIntentData{
		GoalIntentDataID: goalIntentDataID,
		CreationTime:     creationTime,
		CreatorUserID:    creatorUserID,
		GoalIntentID:     goalIntentID,
		Name:             name,
		Active:           active,
	}, nil
}

// AddFromLatest copies the most recent snapshot of a goal intent into a new
// row, overriding the fields that are non-nil. The read and the write are one
// statement. It returns nil without an error when the intent has no snapshot.
func (r *goalIntentDataRepository) AddFromLatest(ctx context.Context, db Executor, creatorUserID, goalIntentID int64, name *string, active *bool) (*model.GoalIntentData, error) {
	data := &model.GoalIntentData{}
	query := `INSERT INTO goal_intent_data (creation_time, creator_user_id, goal_intent_id, name, active)
	          SELECT CAST($1 AS BIGINT), CAST($2 AS BIGINT), goal_intent_id,
	                 COALESCE(CAST($3 AS TEXT), name), COALESCE(CAST($4 AS BOOLEAN), active)
	          FROM goal_intent_data
	          WHERE goal_intent_data_id = (
	              SELECT max(goal_intent_data_id) FROM goal_intent_data WHERE goal_intent_id = $5
	          )
	          RETURNING goal_intent_data_id, creation_time, creator_user_id, goal_intent_id, name, active`

	err := sqlx.GetContext(ctx, db, data, query,
		millis(r.clock),
		creatorUserID,
		name,
		active,
		goalIntentID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return data, nil
}

// ByID returns nil without an error when no row has the id.
func (r *goalIntentDataRepository) ByID(ctx context.Context, db Executor, goalIntentDataID int64) (*model.GoalIntentData, error) {
	data := &model.GoalIntentData{}
	query := `SELECT * FROM goal_intent_data WHERE goal_intent_data_id = $1`

	err := sqlx.GetContext(ctx, db, data, query, goalIntentDataID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return data, nil
}

func (r *goalIntentDataRepository) Query(ctx context.Context, db Executor, q model.GoalIntentDataQuery) ([]*model.GoalIntentData, error) {
	query, args, err := goalIntentDataSelect(q)
	if err != nil {
		return nil, err
	}

	results := []*model.GoalIntentData{}
	err = sqlx.SelectContext(ctx, db, &results, query, args...)
	if err != nil {
		return nil, err
	}

	return results, nil
}

// goalIntentDataSelect builds the search statement. Unset filters add no
// predicate at all, so there is never a comparison against NULL.
func goalIntentDataSelect(q model.GoalIntentDataQuery) (string, []interface{}, error) {
	b := psql.Select("gid.*").From("goal_intent_data gid")

	if q.OnlyRecent {
		// Filters go inside the subquery too, so each goal intent keeps the
		// newest snapshot among the rows that match.
		latest := sq.Select("max(goal_intent_data_id) AS id").From("goal_intent_data")
		latest = withGoalIntentDataFilters(latest, q, "").GroupBy("goal_intent_id")
		sub, subArgs, err := latest.ToSql()
		if err != nil {
			return "", nil, err
		}
		b = b.Join("("+sub+") maxids ON maxids.id = gid.goal_intent_data_id", subArgs...)
	}

	b = withGoalIntentDataFilters(b, q, "gid.")
	b = b.OrderBy("gid.goal_intent_data_id ASC")

	if q.Count > 0 {
		b = b.Limit(uint64(q.Count))
	} else if q.Offset > 0 {
		// SQLite only accepts OFFSET after a LIMIT.
		b = b.Limit(math.MaxInt64)
	}
	if q.Offset > 0 {
		b = b.Offset(uint64(q.Offset))
	}

	return b.ToSql()
}

func withGoalIntentDataFilters(b sq.SelectBuilder, q model.GoalIntentDataQuery, prefix string) sq.SelectBuilder {
	col := func(name string) string { return prefix + name }

	if q.GoalIntentDataID != nil {
		b = b.Where(sq.Eq{col("goal_intent_data_id"): *q.GoalIntentDataID})
	}
	if q.CreationTime != nil {
		b = b.Where(sq.Eq{col("creation_time"): *q.CreationTime})
	}
	if q.MinCreationTime != nil {
		b = b.Where(sq.GtOrEq{col("creation_time"): *q.MinCreationTime})
	}
	if q.MaxCreationTime != nil {
		b = b.Where(sq.LtOrEq{col("creation_time"): *q.MaxCreationTime})
	}
	if q.CreatorUserID != nil {
		b = b.Where(sq.Eq{col("creator_user_id"): *q.CreatorUserID})
	}
	if q.GoalIntentID != nil {
		b = b.Where(sq.Eq{col("goal_intent_id"): *q.GoalIntentID})
	}
	if q.Name != nil {
		b = b.Where(sq.Eq{col("name"): *q.Name})
	}
	if q.PartialName != nil {
		b = b.Where(sq.Expr(col("name")+` LIKE ? ESCAPE '\'`, "%"+escapeLike(*q.PartialName)+"%"))
	}
	if q.Active != nil {
		b = b.Where(sq.Eq{col("active"): *q.Active})
	}

	return b
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
