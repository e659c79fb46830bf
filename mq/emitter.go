package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"buzzline/rdx"
)

// Event is the payload published for feed activity (post created,
// deleted, liked) so other processes can react without polling.
type Event struct {
	EntityType string `json:"entity_type"`
	Method     string `json:"method"`
	EntityId   string `json:"entity_id"`
	ActorId    string `json:"actor_id,omitempty"`
}

// Emit publishes a feed event to Redis. Failures are logged, never fatal.
func Emit(ctx context.Context, eventName string, content Event) {
	data, err := json.Marshal(content)
	if err != nil {
		log.Printf("[Emit] Failed to marshal event content: %v", err)
		return
	}

	if err := rdx.Conn.Publish(context.Background(), "feed-events", data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish %s: %v", eventName, err)
	}
}

// NotifyChannel is the per-recipient channel new notifications are
// announced on. Websocket subscribers listen here.
func NotifyChannel(userID string) string {
	return fmt.Sprintf("notify:%s", userID)
}

// NotifyUser announces a new notification to the recipient's channel.
func NotifyUser(ctx context.Context, userID, notifID string) {
	if err := rdx.Conn.Publish(ctx, NotifyChannel(userID), notifID).Err(); err != nil {
		log.Printf("[NotifyUser] publish failed for %s: %v", userID, err)
	}
}
