package uploads

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"strings"
	"time"

	"buzzline/utils"

	"github.com/julienschmidt/httprouter"
	"resty.dev/v3"
)

var httpc = resty.New().SetTimeout(30 * time.Second)

type cloudinaryResult struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Format    string `json:"format"`
}

// POST /api/uploads/image?kind=post|avatar
//
// The server proxies the file to Cloudinary instead of handing the
// client an upload preset, and enforces size and type limits before any
// bytes leave the building.
func UploadImage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	kind := r.URL.Query().Get("kind")
	var maxBytes int64 = utils.MaxPostImageBytes
	switch kind {
	case "", "post":
		kind = "post"
	case "avatar":
		maxBytes = utils.MaxAvatarImageBytes
	default:
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown upload kind")
		return
	}

	if err := r.ParseMultipartForm(maxBytes + 1024); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing file")
		return
	}
	defer file.Close()

	if msg, ok := utils.ValidateImageUpload(header, maxBytes); !ok {
		utils.RespondWithError(w, http.StatusBadRequest, msg)
		return
	}

	result, err := uploadToCloudinary(r.Context(), file, header, kind, userID)
	if err != nil {
		log.Printf("cloudinary upload failed for %s: %v", userID, err)
		utils.RespondWithError(w, http.StatusBadGateway, "Image upload failed")
		return
	}

	if kind == "avatar" {
		if err := writeAvatarThumbnail(userID, result.SecureURL); err != nil {
			// The Cloudinary URL still works without the local thumb.
			log.Printf("avatar thumbnail failed for %s: %v", userID, err)
		}
	}

	publicID := result.PublicID
	if publicID == "" {
		// Unsigned uploads on some presets omit public_id; recover it
		// from the delivery URL.
		publicID = PublicIDFromURL(result.SecureURL)
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"ok": true,
		"data": map[string]any{
			"url":      result.SecureURL,
			"publicId": publicID,
			"width":    result.Width,
			"height":   result.Height,
		},
	})
}

func uploadToCloudinary(ctx context.Context, file multipart.File, header *multipart.FileHeader, kind, userID string) (*cloudinaryResult, error) {
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	uploadPreset := os.Getenv("CLOUDINARY_UPLOAD_PRESET")
	if cloudName == "" || uploadPreset == "" {
		return nil, fmt.Errorf("cloudinary not configured")
	}

	endpoint := fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", cloudName)

	res, err := httpc.R().
		WithContext(ctx).
		SetFileReader("file", header.Filename, file).
		SetFormData(map[string]string{
			"upload_preset": uploadPreset,
			"folder":        "buzzline/" + kind,
			"context":       "uploader=" + userID,
		}).
		Post(endpoint)
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, fmt.Errorf("cloudinary returned %s", res.Status())
	}

	var result cloudinaryResult
	if err := json.Unmarshal(res.Bytes(), &result); err != nil {
		return nil, err
	}
	if result.SecureURL == "" {
		return nil, fmt.Errorf("cloudinary response missing secure_url")
	}
	return &result, nil
}

// PublicIDFromURL recovers the Cloudinary public id from a delivery
// URL, e.g. ".../upload/v123/buzzline/avatar/abc.jpg" -> "buzzline/avatar/abc".
func PublicIDFromURL(url string) string {
	idx := strings.Index(url, "/upload/")
	if idx < 0 {
		return ""
	}
	rest := url[idx+len("/upload/"):]
	// Skip the version segment if present.
	if strings.HasPrefix(rest, "v") {
		if slash := strings.IndexByte(rest, '/'); slash > 0 {
			if _, err := fmt.Sscanf(rest[1:slash], "%d", new(int)); err == nil {
				rest = rest[slash+1:]
			}
		}
	}
	if dot := strings.LastIndexByte(rest, '.'); dot > 0 {
		rest = rest[:dot]
	}
	return rest
}
