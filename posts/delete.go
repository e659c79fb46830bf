package posts

import (
	"context"
	"net/http"
	"time"

	"buzzline/db"
	"buzzline/models"
	"buzzline/mq"
	"buzzline/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// DELETE /api/feed/post/:postid
//
// Authorship is part of the delete filter, so a non-author request
// matches nothing regardless of what the client hides or shows.
func DeletePost(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	postID := ps.ByName("postid")

	var post models.Post
	err := db.PostsCollection.FindOne(ctx, bson.M{"postid": postID}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Post not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch post")
		return
	}
	if post.AuthorID != userID {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	res, err := db.PostsCollection.DeleteOne(ctx, bson.M{"postid": postID, "authorid": userID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete post")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	go mq.Emit(context.Background(), "post-deleted", mq.Event{
		EntityType: "post", EntityId: postID, Method: "DELETE", ActorId: userID,
	})

	w.WriteHeader(http.StatusNoContent)
}
