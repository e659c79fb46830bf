package uploads

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
)

const thumbnailSize = 128

// writeAvatarThumbnail fetches the uploaded avatar back and stores a
// small square crop under static/userpic for list views.
func writeAvatarThumbnail(userID, url string) error {
	client := &http.Client{Timeout: 15 * time.Second}
	res, err := client.Get(url)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("avatar fetch returned %s", res.Status)
	}

	img, err := imaging.Decode(res.Body, imaging.AutoOrientation(true))
	if err != nil {
		return err
	}
	thumb := imaging.Fill(img, thumbnailSize, thumbnailSize, imaging.Center, imaging.Lanczos)

	dir := filepath.Join("static", "userpic")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return imaging.Save(thumb, filepath.Join(dir, userID+".jpg"), imaging.JPEGQuality(85))
}
