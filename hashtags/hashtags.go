package hashtags

import (
	"context"
	"net/http"
	"time"

	"buzzline/db"
	"buzzline/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

type tagCount struct {
	Tag   string `bson:"_id" json:"tag"`
	Count int64  `bson:"count" json:"count"`
}

// GET /api/hashtags/counts
//
// Returns the total post count plus a per-tag breakdown, which is what
// the filter bar renders its chips from.
func GetHashtagCounts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	total, err := db.PostsCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to count posts")
		return
	}

	counts, err := aggregateTagCounts(ctx, 0)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to aggregate hashtags")
		return
	}

	perTag := make(map[string]int64, len(counts))
	for _, tc := range counts {
		perTag[tc.Tag] = tc.Count
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"ok":    true,
		"total": total,
		"tags":  perTag,
	})
}

// GET /api/hashtags/trending
func GetTrendingHashtags(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	counts, err := aggregateTagCounts(ctx, 10)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to aggregate hashtags")
		return
	}
	if counts == nil {
		counts = []tagCount{}
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"ok":   true,
		"data": counts,
	})
}

func aggregateTagCounts(ctx context.Context, limit int) ([]tagCount, error) {
	pipeline := []bson.M{
		{"$unwind": "$hashtags"},
		{"$group": bson.M{"_id": "$hashtags", "count": bson.M{"$sum": 1}}},
		{"$sort": bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}},
	}
	if limit > 0 {
		pipeline = append(pipeline, bson.M{"$limit": limit})
	}

	cursor, err := db.PostsCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var counts []tagCount
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}
