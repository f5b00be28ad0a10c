package model

import "time"

// Note belongs to exactly one user. UserID is set at creation and never
// changes; every repository read and write filters on (_id, user_id).
// NoteChanges is a partial update: nil fields are left untouched. A non-nil
// empty tag slice replaces the tags with an empty list.
type NoteChanges struct {
	Title    *string
	Content  *string
	Tags     *[]string
	IsPinned *bool
}

type Note struct {
	ID        string    `bson:"_id" json:"_id"`
	UserID    string    `bson:"user_id" json:"userId"`
	Title     string    `bson:"title" json:"title"`
	Content   string    `bson:"content" json:"content"`
	Tags      []string  `bson:"tags" json:"tags"`
	IsPinned  bool      `bson:"is_pinned" json:"isPinned"`
	CreatedAt time.Time `bson:"created_at" json:"createdOn"`
}
