package posts

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sort"
	"strings"
	"time"

	"buzzline/db"
	"buzzline/middleware"
	"buzzline/models"
	"buzzline/notifications"
	"buzzline/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// POST /api/feed/post/:postid/comments
func AddComment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	tokenString := r.Header.Get("Authorization")
	claims, err := middleware.ValidateJWT(tokenString)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var body struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	content := strings.TrimSpace(body.Content)
	if content == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Comment cannot be empty")
		return
	}

	postID := ps.ByName("postid")

	var post models.Post
	err = db.PostsCollection.FindOne(ctx, bson.M{"postid": postID}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Post not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch post")
		return
	}

	comment := models.Comment{
		Content:    content,
		AuthorID:   claims.UserID,
		AuthorName: claims.Username,
		CreatedAt:  time.Now(),
	}

	// $push keeps the append atomic; no read-modify-write of the array.
	_, err = db.PostsCollection.UpdateOne(ctx,
		bson.M{"postid": postID},
		bson.M{"$push": bson.M{"comments": comment}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to add comment")
		return
	}

	// Comment notifications are intentionally not deduplicated: every
	// comment is a distinct event.
	if post.AuthorID != claims.UserID {
		actorName := displayName(ctx, claims.UserID, claims.Username)
		go func() {
			err := notifications.Create(context.Background(), notifications.CreateInput{
				UserID:      post.AuthorID,
				Type:        models.NotificationComment,
				ActorID:     claims.UserID,
				ActorName:   actorName,
				PostID:      postID,
				PostContent: post.Content,
			})
			if err != nil {
				log.Printf("comment notification failed for post %s: %v", postID, err)
			}
		}()
	}

	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{
		"ok":   true,
		"data": comment,
	})
}

// GET /api/feed/post/:postid/comments
func GetComments(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var post models.Post
	err := db.PostsCollection.FindOne(ctx, bson.M{"postid": ps.ByName("postid")}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Post not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch comments")
		return
	}

	comments := post.Comments
	if comments == nil {
		comments = []models.Comment{}
	}
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"ok":   true,
		"data": comments,
	})
}
