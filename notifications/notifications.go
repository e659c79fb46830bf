package notifications

import (
	"context"
	"errors"
	"log"
	"time"

	"buzzline/db"
	"buzzline/models"
	"buzzline/mq"
	"buzzline/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// postContentMax caps the denormalized post excerpt stored on a record.
const postContentMax = 200

type CreateInput struct {
	UserID      string // recipient
	Type        models.NotificationType
	ActorID     string
	ActorName   string
	PostID      string
	PostContent string
}

var (
	ErrSelfNotification = errors.New("self action, no notification")
	ErrInvalidInput     = errors.New("invalid notification input")
)

// ShouldDedup reports whether a second identical notification for the
// same (recipient, post, actor) should be suppressed. Likes are
// idempotent; comments are distinct events every time.
func ShouldDedup(t models.NotificationType) bool {
	return t == models.NotificationLike
}

// Create writes a denormalized notification record and announces it on
// the recipient's channel. Callers treat errors as non-fatal.
func Create(ctx context.Context, in CreateInput) error {
	if in.UserID == "" || in.PostID == "" || !in.Type.Valid() {
		return ErrInvalidInput
	}
	if in.UserID == in.ActorID {
		return ErrSelfNotification
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if ShouldDedup(in.Type) {
		err := db.NotificationsCollection.FindOne(ctx, bson.M{
			"userId":  in.UserID,
			"type":    in.Type,
			"postId":  in.PostID,
			"actorId": in.ActorID,
		}).Err()
		if err == nil {
			// Already notified for this like; skip.
			return nil
		}
		if err != mongo.ErrNoDocuments {
			return err
		}
	}

	notif := models.Notification{
		NotifID:     "n" + utils.GetUUID()[:12],
		UserID:      in.UserID,
		Type:        in.Type,
		ActorID:     in.ActorID,
		ActorName:   in.ActorName,
		PostID:      in.PostID,
		PostContent: utils.TruncateText(in.PostContent, postContentMax),
		Read:        false,
		CreatedAt:   time.Now(),
	}
	if notif.ActorName == "" {
		notif.ActorName = "User"
	}

	// Denormalize the post's author onto the record; the post may be
	// gone by the time the notification is read.
	var post models.Post
	if err := db.PostsCollection.FindOne(ctx, bson.M{"postid": in.PostID}).Decode(&post); err == nil {
		notif.PostAuthorID = post.AuthorID
		notif.PostAuthorName = post.AuthorName
	} else {
		log.Printf("post lookup failed for notification on %s: %v", in.PostID, err)
	}

	if _, err := db.NotificationsCollection.InsertOne(ctx, notif); err != nil {
		return err
	}

	bumpUnreadBadge(ctx, in.UserID)
	mq.NotifyUser(ctx, in.UserID, notif.NotifID)
	return nil
}
