package posts

import (
	"context"
	"log"
	"net/http"
	"slices"
	"time"

	"buzzline/db"
	"buzzline/models"
	"buzzline/notifications"
	"buzzline/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// LikeToggle computes the direction of a toggle by userID and the
// resulting likes array. Membership decides the direction, so toggling
// twice restores the original array, and a user never appears twice.
func LikeToggle(likes []string, userID string) (liking bool, after []string) {
	if slices.Contains(likes, userID) {
		after = make([]string, 0, len(likes))
		for _, id := range likes {
			if id != userID {
				after = append(after, id)
			}
		}
		return false, after
	}
	after = make([]string, 0, len(likes)+1)
	after = append(after, likes...)
	return true, append(after, userID)
}

// displayName resolves the profile name used when rendering the user
// elsewhere, falling back to the JWT username when the doc is missing.
func displayName(ctx context.Context, userID, fallback string) string {
	var user models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&user)
	if err == nil && user.Name != "" {
		return user.Name
	}
	return fallback
}

// POST /api/feed/post/:postid/like
//
// Membership of the caller in the likes array decides the direction;
// the update itself uses $addToSet/$pull so concurrent toggles cannot
// lose each other's writes and the array can never hold duplicates.
func ToggleLike(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
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

	liking, after := LikeToggle(post.Likes, userID)

	var update bson.M
	if liking {
		update = bson.M{"$addToSet": bson.M{"likes": userID}}
	} else {
		update = bson.M{"$pull": bson.M{"likes": userID}}
	}

	if _, err := db.PostsCollection.UpdateOne(ctx, bson.M{"postid": postID}, update); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update like")
		return
	}

	count := len(after)

	// Notify the author on a like, never on an unlike. Failures must not
	// fail the toggle.
	if liking && post.AuthorID != userID {
		actorName := displayName(ctx, userID, utils.GetUsernameFromRequest(r))
		go func() {
			err := notifications.Create(context.Background(), notifications.CreateInput{
				UserID:      post.AuthorID,
				Type:        models.NotificationLike,
				ActorID:     userID,
				ActorName:   actorName,
				PostID:      postID,
				PostContent: post.Content,
			})
			if err != nil {
				log.Printf("like notification failed for post %s: %v", postID, err)
			}
		}()
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"ok":    true,
		"liked": liking,
		"count": count,
	})
}
