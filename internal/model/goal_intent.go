package model

type GoalIntent struct {
	GoalIntentID  int64 `db:"goal_intent_id" json:"goal_intent_id"`
	CreationTime  int64 `db:"creation_time" json:"creation_time"`
	CreatorUserID int64 `db:"creator_user_id" json:"creator_user_id"`
}
