package rdx

import "buzzline/globals"

// Avatar URLs are memoized per user so feed rendering does not hit the
// users collection on every post. Entries are dropped on logout and on
// avatar change.
const avatarHash = "avatars"

func CacheAvatar(userID, url string) {
	Conn.HSet(globals.Ctx, avatarHash, userID, url)
}

func CachedAvatar(userID string) (string, bool) {
	url, err := Conn.HGet(globals.Ctx, avatarHash, userID).Result()
	if err != nil || url == "" {
		return "", false
	}
	return url, true
}

func ForgetAvatar(userID string) {
	Conn.HDel(globals.Ctx, avatarHash, userID)
}
