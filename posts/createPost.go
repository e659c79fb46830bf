package posts

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"buzzline/db"
	"buzzline/middleware"
	"buzzline/models"
	"buzzline/mq"
	"buzzline/rdx"
	"buzzline/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

const maxContentRunes = 280

// anonymousName is shown in place of the author on anonymous posts.
const anonymousName = "Anonim"

var hashtagPattern = regexp.MustCompile(`#(\w+)`)

// ExtractHashtags returns every #tag in the text, lower-cased, in order
// of appearance. Duplicates are preserved.
func ExtractHashtags(text string) []string {
	matches := hashtagPattern.FindAllStringSubmatch(text, -1)
	tags := []string{}
	for _, m := range matches {
		tags = append(tags, strings.ToLower(m[1]))
	}
	return tags
}

// ValidateContent enforces the composer rules: non-empty after trimming
// and at most 280 runes.
func ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return errors.New("post cannot be empty")
	}
	if len([]rune(content)) > maxContentRunes {
		return errors.New("post cannot be longer than 280 characters")
	}
	return nil
}

type PostPayload struct {
	Content       string `json:"content"`
	IsAnonymous   bool   `json:"isAnonymous"`
	ImageURL      string `json:"imageUrl,omitempty"`
	ImagePublicID string `json:"imagePublicId,omitempty"`
}

// POST /api/feed/post
func CreateFeedPost(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	token := r.Header.Get("Authorization")
	claims, err := middleware.ValidateJWT(token)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var payload PostPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	content := strings.TrimSpace(payload.Content)
	if err := ValidateContent(content); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	post := models.Post{
		PostID:        utils.GetUUID()[:12],
		Content:       content,
		AuthorID:      claims.UserID,
		AuthorName:    claims.Username,
		IsAnonymous:   payload.IsAnonymous,
		Hashtags:      ExtractHashtags(content),
		Likes:         []string{},
		Comments:      []models.Comment{},
		ImageURL:      payload.ImageURL,
		ImagePublicID: payload.ImagePublicID,
		CreatedAt:     time.Now(),
	}

	if payload.IsAnonymous {
		post.AuthorName = anonymousName
	} else {
		// Denormalize campus info and avatar onto the post at write time.
		var author models.User
		if err := db.UserCollection.FindOne(ctx, bson.M{"userid": claims.UserID}).Decode(&author); err == nil {
			post.AuthorName = author.Name
			post.AuthorJurusan = author.Jurusan
			post.AuthorAvatarURL = author.AvatarURL
			if author.AvatarURL != "" {
				rdx.CacheAvatar(author.UserID, author.AvatarURL)
			}
		} else {
			log.Printf("author lookup failed for %s: %v", claims.UserID, err)
		}
	}

	if _, err := db.PostsCollection.InsertOne(ctx, post); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create post")
		return
	}

	go mq.Emit(context.Background(), "post-created", mq.Event{
		EntityType: "post", EntityId: post.PostID, Method: "POST", ActorId: claims.UserID,
	})

	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{
		"ok":   true,
		"data": post,
	})
}
