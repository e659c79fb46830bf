package models

import "time"

// NotificationType is a closed set. Adding a variant means updating
// Valid and ActionText together.
type NotificationType string

const (
	NotificationLike    NotificationType = "like"
	NotificationComment NotificationType = "comment"
)

func (t NotificationType) Valid() bool {
	switch t {
	case NotificationLike, NotificationComment:
		return true
	}
	return false
}

// ActionText returns the phrase rendered after the actor's name. The
// generic fallback only surfaces for records written before a variant
// existed; Valid gates every write path.
func (t NotificationType) ActionText() string {
	switch t {
	case NotificationLike:
		return "menyukai post Anda"
	case NotificationComment:
		return "mengomentari post Anda"
	}
	return "berinteraksi dengan post Anda"
}

// Notification is a denormalized per-recipient record.
type Notification struct {
	NotifID        string           `bson:"notifid" json:"notifid"`
	UserID         string           `bson:"userId" json:"userId"` // recipient
	Type           NotificationType `bson:"type" json:"type"`
	ActorID        string           `bson:"actorId" json:"actorId"`
	ActorName      string           `bson:"actorName" json:"actorName"`
	PostID         string           `bson:"postId" json:"postId"`
	PostAuthorID   string           `bson:"postAuthorId,omitempty" json:"postAuthorId,omitempty"`
	PostAuthorName string           `bson:"postAuthorName,omitempty" json:"postAuthorName,omitempty"`
	PostContent    string           `bson:"postContent,omitempty" json:"postContent,omitempty"`
	Read           bool             `bson:"read" json:"read"`
	CreatedAt      time.Time        `bson:"createdAt" json:"createdAt"`
	ReadAt         *time.Time       `bson:"readAt,omitempty" json:"readAt,omitempty"`
}
