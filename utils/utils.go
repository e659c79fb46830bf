package utils

import (
	"mime/multipart"
	"net/http"

	"buzzline/globals"
	"buzzline/middleware"

	"github.com/google/uuid"
)

func GetUUID() string {
	return uuid.New().String()
}

func GetUserIDFromRequest(r *http.Request) string {
	requestingUserID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || requestingUserID == "" {
		return ""
	}
	return requestingUserID
}

func GetUsernameFromRequest(r *http.Request) string {
	tokenString := r.Header.Get("Authorization")
	claims, err := middleware.ValidateJWT(tokenString)
	if err != nil {
		return ""
	}
	return claims.Username
}

// --- Image Validation ---

const (
	MaxPostImageBytes   = 5 << 20 // 5MB
	MaxAvatarImageBytes = 2 << 20 // 2MB
)

var SupportedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// ValidateImageUpload rejects files over maxBytes or outside the raster
// image allow-list. Returns a user-facing message on failure.
func ValidateImageUpload(header *multipart.FileHeader, maxBytes int64) (string, bool) {
	if header.Size > maxBytes {
		return "File too large", false
	}
	if !SupportedImageTypes[header.Header.Get("Content-Type")] {
		return "Invalid file type. Supported formats: JPEG, PNG, GIF, WebP.", false
	}
	return "", true
}

// TruncateText caps a string at max runes, appending an ellipsis.
func TruncateText(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}
