package routes

import (
	"net/http"

	"buzzline/auth"
	"buzzline/hashtags"
	"buzzline/middleware"
	"buzzline/notifications"
	"buzzline/posts"
	"buzzline/profile"
	"buzzline/ratelim"
	"buzzline/uploads"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router) {
	router.POST("/api/auth/register", ratelim.RateLimit(auth.Register))
	router.POST("/api/auth/login", ratelim.RateLimit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.LogoutUser))
	router.POST("/api/auth/token/refresh", ratelim.RateLimit(middleware.Authenticate(auth.RefreshToken)))
}

func AddFeedRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.GET("/api/feed", rateLimiter.Limit(posts.GetPosts))
	router.GET("/api/feed/tag/:tag", rateLimiter.Limit(posts.GetPostsByTag))
	router.GET("/api/feed/post/:postid", rateLimiter.Limit(posts.GetPost))
	router.POST("/api/feed/post", ratelim.RateLimit(middleware.Authenticate(posts.CreateFeedPost)))
	router.DELETE("/api/feed/post/:postid", middleware.Authenticate(posts.DeletePost))

	router.POST("/api/feed/post/:postid/like", middleware.Authenticate(posts.ToggleLike))
	router.GET("/api/feed/post/:postid/comments", rateLimiter.Limit(posts.GetComments))
	router.POST("/api/feed/post/:postid/comments", ratelim.RateLimit(middleware.Authenticate(posts.AddComment)))
}

func AddHashtagRoutes(router *httprouter.Router) {
	router.GET("/api/hashtags/counts", ratelim.RateLimit(hashtags.GetHashtagCounts))
	router.GET("/api/hashtags/trending", ratelim.RateLimit(hashtags.GetTrendingHashtags))
}

func AddNotificationRoutes(router *httprouter.Router) {
	router.GET("/api/notifications", middleware.Authenticate(notifications.GetNotifications))
	router.GET("/api/notifications/unread-count", middleware.Authenticate(notifications.GetUnreadCount))
	router.POST("/api/notifications/read-all", middleware.Authenticate(notifications.MarkAllAsRead))
	router.GET("/ws/notifications", notifications.LiveNotifications)
}

func AddProfileRoutes(router *httprouter.Router) {
	router.GET("/api/me", middleware.Authenticate(profile.GetMyProfile))
	router.GET("/api/profile/:userid", ratelim.RateLimit(profile.GetProfile))
	router.GET("/api/profile/:userid/posts", ratelim.RateLimit(profile.GetUserPosts))
	router.GET("/api/profile/:userid/qr", ratelim.RateLimit(profile.GetProfileQR))
	router.PUT("/api/profile/avatar", middleware.Authenticate(profile.UpdateAvatar))
}

func AddUploadRoutes(router *httprouter.Router) {
	router.POST("/api/uploads/image", ratelim.RateLimit(middleware.Authenticate(uploads.UploadImage)))
}

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/userpic/*filepath", http.Dir("static/userpic"))
}
