package notifications

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"buzzline/db"
	"buzzline/models"
	"buzzline/rdx"
	"buzzline/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const listLimit = 50

func badgeKey(userID string) string { return "notifcount:" + userID }

// GET /api/notifications
func GetNotifications(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(listLimit)

	notifs, err := utils.FindAndDecode[models.Notification](ctx, db.NotificationsCollection, bson.M{"userId": userID}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch notifications")
		return
	}
	if notifs == nil {
		notifs = []models.Notification{}
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"ok":   true,
		"data": notifs,
	})
}

// GET /api/notifications/unread-count
//
// Served from the badge mirror when present so feed polling does not
// hit Mongo every few seconds.
func GetUnreadCount(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if cached, err := rdx.RdxGet(badgeKey(userID)); err == nil && cached != "" {
		if n, err := strconv.ParseInt(cached, 10, 64); err == nil {
			utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "count": n})
			return
		}
	}

	count, err := db.NotificationsCollection.CountDocuments(ctx, bson.M{"userId": userID, "read": false})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to count notifications")
		return
	}
	rdx.SetWithExpiry(badgeKey(userID), strconv.FormatInt(count, 10), time.Hour)

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "count": count})
}

// POST /api/notifications/read-all
func MarkAllAsRead(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	now := time.Now()
	res, err := db.NotificationsCollection.UpdateMany(ctx,
		bson.M{"userId": userID, "read": false},
		bson.M{"$set": bson.M{"read": true, "readAt": now}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to mark notifications read")
		return
	}

	rdx.SetWithExpiry(badgeKey(userID), "0", time.Hour)

	if res.ModifiedCount == 0 {
		utils.RespondWithJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"updated": 0,
			"message": "No unread notifications",
		})
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"ok":      true,
		"updated": res.ModifiedCount,
	})
}

// bumpUnreadBadge refreshes the cached unread counter after an insert.
// Best effort; the count endpoint recomputes from Mongo on a miss.
func bumpUnreadBadge(ctx context.Context, userID string) {
	count, err := db.NotificationsCollection.CountDocuments(ctx, bson.M{"userId": userID, "read": false})
	if err != nil {
		log.Printf("unread recount failed for %s: %v", userID, err)
		rdx.RdxDel(badgeKey(userID))
		return
	}
	rdx.SetWithExpiry(badgeKey(userID), strconv.FormatInt(count, 10), time.Hour)
}
