package model

// GoalIntentData is one immutable snapshot of a goal intent. The current
// state of a goal intent is the snapshot with the highest GoalIntentDataID.
type GoalIntentData struct {
	GoalIntentDataID int64  `db:"goal_intent_data_id" json:"goal_intent_data_id"`
	CreationTime     int64  `db:"creation_time" json:"creation_time"` // epoch millis
	CreatorUserID    int64  `db:"creator_user_id" json:"creator_user_id"`
	GoalIntentID     int64  `db:"goal_intent_id" json:"goal_intent_id"`
	Name             string `db:"name" json:"name"`
	Active           bool   `db:"active" json:"active"`
}

// GoalIntentDataQuery filters a goal intent data search. A nil field imposes
// no constraint.
type GoalIntentDataQuery struct {
	GoalIntentDataID *int64
	CreationTime     *int64
	MinCreationTime  *int64
	MaxCreationTime  *int64
	CreatorUserID    *int64
	GoalIntentID     *int64
	Name             *string
	PartialName      *string
	Active           *bool

	// OnlyRecent keeps only the newest matching snapshot per goal intent.
	OnlyRecent bool

	Offset int64
	Count  int64 // <= 0 means no limit
}

// Ptr returns a pointer to v, for filling optional query fields.
func Ptr[T any](v T) *T {
	return &v
}
