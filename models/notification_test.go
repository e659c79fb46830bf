package models

import "testing"

func TestNotificationTypeValid(t *testing.T) {
	if !NotificationLike.Valid() {
		t.Error("like should be valid")
	}
	if !NotificationComment.Valid() {
		t.Error("comment should be valid")
	}
	if NotificationType("follow").Valid() {
		t.Error("unknown type should be invalid")
	}
	if NotificationType("").Valid() {
		t.Error("empty type should be invalid")
	}
}

func TestNotificationTypeActionText(t *testing.T) {
	if got := NotificationLike.ActionText(); got != "menyukai post Anda" {
		t.Errorf("like action text = %q", got)
	}
	if got := NotificationComment.ActionText(); got != "mengomentari post Anda" {
		t.Errorf("comment action text = %q", got)
	}
	if got := NotificationType("follow").ActionText(); got != "berinteraksi dengan post Anda" {
		t.Errorf("fallback action text = %q", got)
	}
}
