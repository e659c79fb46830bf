package models

import "time"

// Post document. Author fields are denormalized at write time; the
// avatar URL may be absent and is backfilled lazily by the feed path.
type Post struct {
	PostID          string    `bson:"postid" json:"postid"`
	Content         string    `bson:"content" json:"content"`
	AuthorID        string    `bson:"authorid" json:"authorid"`
	AuthorName      string    `bson:"authorName" json:"authorName"`
	IsAnonymous     bool      `bson:"isAnonymous" json:"isAnonymous"`
	AuthorJurusan   string    `bson:"authorJurusan,omitempty" json:"authorJurusan,omitempty"`
	AuthorAvatarURL string    `bson:"authorAvatarUrl,omitempty" json:"authorAvatarUrl,omitempty"`
	Hashtags        []string  `bson:"hashtags" json:"hashtags"`
	Likes           []string  `bson:"likes" json:"likes"`
	Comments        []Comment `bson:"comments" json:"comments"`
	ImageURL        string    `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	ImagePublicID   string    `bson:"imagePublicId,omitempty" json:"imagePublicId,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}

// Comment is embedded in a post's comments array. It has no identity of
// its own and cannot be edited or deleted.
type Comment struct {
	Content    string    `bson:"content" json:"content"`
	AuthorID   string    `bson:"authorid" json:"authorid"`
	AuthorName string    `bson:"authorName" json:"authorName"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}
