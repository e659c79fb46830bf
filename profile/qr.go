package profile

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"buzzline/db"
	"buzzline/utils"

	"github.com/julienschmidt/httprouter"
	qrcode "github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
)

// GET /api/profile/:userid/qr
//
// Serves a PNG QR code linking to the public profile page, for sharing
// profiles offline on campus.
func GetProfileQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := ps.ByName("userid")

	count, err := db.UserCollection.CountDocuments(ctx, bson.M{"userid": userID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to look up user")
		return
	}
	if count == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	base := os.Getenv("PUBLIC_BASE_URL")
	if base == "" {
		base = "http://localhost:4000"
	}
	png, err := qrcode.Encode(fmt.Sprintf("%s/profile/%s", base, userID), qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to render QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(png)
}
