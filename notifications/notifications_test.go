package notifications

import (
	"context"
	"testing"

	"buzzline/models"
)

func TestShouldDedup(t *testing.T) {
	if !ShouldDedup(models.NotificationLike) {
		t.Error("likes should dedup")
	}
	if ShouldDedup(models.NotificationComment) {
		t.Error("comments must never dedup")
	}
}

func TestCreateRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		in   CreateInput
		want error
	}{
		{"missing recipient", CreateInput{PostID: "p1", Type: models.NotificationLike, ActorID: "u2"}, ErrInvalidInput},
		{"missing post", CreateInput{UserID: "u1", Type: models.NotificationLike, ActorID: "u2"}, ErrInvalidInput},
		{"bad type", CreateInput{UserID: "u1", PostID: "p1", Type: "follow", ActorID: "u2"}, ErrInvalidInput},
		{"self action", CreateInput{UserID: "u1", PostID: "p1", Type: models.NotificationLike, ActorID: "u1"}, ErrSelfNotification},
	}

	for _, c := range cases {
		if err := Create(context.Background(), c.in); err != c.want {
			t.Errorf("%s: got %v, want %v", c.name, err, c.want)
		}
	}
}
