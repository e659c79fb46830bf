package profile

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"buzzline/db"
	"buzzline/models"
	"buzzline/rdx"
	"buzzline/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GET /api/me
func GetMyProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	respondWithProfile(w, r, userID)
}

// GET /api/profile/:userid
func GetProfile(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	respondWithProfile(w, r, ps.ByName("userid"))
}

func respondWithProfile(w http.ResponseWriter, r *http.Request, userID string) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var user models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}

	postCount, totalLikes, err := postStats(ctx, userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to compute stats")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"ok": true,
		"data": models.ProfileResponse{
			UserID:     user.UserID,
			Username:   user.Username,
			Name:       user.Name,
			Email:      user.Email,
			Jurusan:    user.Jurusan,
			Angkatan:   user.Angkatan,
			AvatarURL:  user.AvatarURL,
			PostCount:  postCount,
			TotalLikes: totalLikes,
			LastLogin:  user.LastLogin,
		},
	})
}

// GET /api/profile/:userid/posts
//
// Anonymous posts stay out of the author's public page even though the
// author wrote them.
func GetUserPosts(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := ps.ByName("userid")
	filter := bson.M{"authorid": userID, "isAnonymous": bson.M{"$ne": true}}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	posts, err := utils.FindAndDecode[models.Post](ctx, db.PostsCollection, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}
	if posts == nil {
		posts = []models.Post{}
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"ok":   true,
		"data": posts,
	})
}

// PUT /api/profile/avatar
//
// Updates the user document and the memo only. Historical posts keep
// the avatar they were rendered with; the feed backfill handles posts
// that never had one.
func UpdateAvatar(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var body struct {
		AvatarURL string `json:"avatarUrl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	avatarURL := strings.TrimSpace(body.AvatarURL)
	if avatarURL == "" || !strings.HasPrefix(avatarURL, "https://") {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid avatar URL")
		return
	}

	res, err := db.UserCollection.UpdateOne(ctx,
		bson.M{"userid": userID},
		bson.M{"$set": bson.M{"avatarUrl": avatarURL, "updated_at": time.Now()}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update avatar")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	rdx.CacheAvatar(userID, avatarURL)

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"ok":        true,
		"avatarUrl": avatarURL,
	})
}

// postStats counts the user's posts and sums likes across them in one
// aggregation pass.
func postStats(ctx context.Context, userID string) (int, int, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"authorid": userID}},
		{"$group": bson.M{
			"_id":        nil,
			"postCount":  bson.M{"$sum": 1},
			"totalLikes": bson.M{"$sum": bson.M{"$size": bson.M{"$ifNull": []any{"$likes", []any{}}}}},
		}},
	}

	cursor, err := db.PostsCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		PostCount  int `bson:"postCount"`
		TotalLikes int `bson:"totalLikes"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, 0, err
	}
	if len(rows) == 0 {
		return 0, 0, nil
	}
	return rows[0].PostCount, rows[0].TotalLikes, nil
}
