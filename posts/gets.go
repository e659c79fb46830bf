package posts

import (
	"context"
	"log"
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

var newestFirst = options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

// GET /api/feed
func GetPosts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	posts, err := utils.FindAndDecode[models.Post](ctx, db.PostsCollection, bson.M{}, newestFirst)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}
	if posts == nil {
		posts = []models.Post{}
	}

	backfillAvatars(ctx, posts)

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"ok":   true,
		"data": posts,
	})
}

// GET /api/feed/tag/:tag
func GetPostsByTag(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	tag := strings.ToLower(ps.ByName("tag"))
	if tag == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing tag parameter")
		return
	}

	posts, err := utils.FindAndDecode[models.Post](ctx, db.PostsCollection, bson.M{"hashtags": tag}, newestFirst)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}
	if posts == nil {
		posts = []models.Post{}
	}

	backfillAvatars(ctx, posts)

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"ok":   true,
		"tag":  tag,
		"data": posts,
	})
}

// GET /api/feed/post/:postid
func GetPost(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var post models.Post
	err := db.PostsCollection.FindOne(ctx, bson.M{"postid": ps.ByName("postid")}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Post not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch post")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"ok":   true,
		"data": post,
	})
}

// backfillAvatars fills authorAvatarUrl on posts written before the
// author had one. The memo keeps this from re-querying users on every
// feed load; the write-back is best effort.
func backfillAvatars(ctx context.Context, posts []models.Post) {
	for i := range posts {
		p := &posts[i]
		if p.IsAnonymous || p.AuthorAvatarURL != "" {
			continue
		}

		url, ok := rdx.CachedAvatar(p.AuthorID)
		if !ok {
			var author models.User
			if err := db.UserCollection.FindOne(ctx, bson.M{"userid": p.AuthorID}).Decode(&author); err != nil {
				continue
			}
			url = author.AvatarURL
			if url == "" {
				continue
			}
			rdx.CacheAvatar(p.AuthorID, url)
		}

		p.AuthorAvatarURL = url
		_, err := db.PostsCollection.UpdateOne(ctx,
			bson.M{"postid": p.PostID},
			bson.M{"$set": bson.M{"authorAvatarUrl": url}},
		)
		if err != nil {
			log.Printf("avatar backfill failed for post %s: %v", p.PostID, err)
		}
	}
}
