package models

import "time"

// User document. Auth fields live here alongside the campus profile
// fields (jurusan, angkatan) and the avatar URL.
type User struct {
	UserID        string    `bson:"userid" json:"userid"`
	Username      string    `bson:"username" json:"username"`
	Name          string    `bson:"name" json:"name"` // display name
	Email         string    `bson:"email" json:"email"`
	Password      string    `bson:"password" json:"password,omitempty"`
	Jurusan       string    `bson:"jurusan,omitempty" json:"jurusan,omitempty"`
	Angkatan      string    `bson:"angkatan,omitempty" json:"angkatan,omitempty"`
	AvatarURL     string    `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	Role          []string  `bson:"role" json:"role"`
	EmailVerified bool      `bson:"email_verified" json:"email_verified"`
	RefreshToken  string    `bson:"refresh_token,omitempty" json:"-"`
	RefreshExpiry time.Time `bson:"refresh_expiry,omitempty" json:"-"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
	LastLogin     time.Time `bson:"last_login,omitempty" json:"last_login,omitempty"`
}

// ProfileResponse is the trimmed-down DTO returned by the profile
// endpoints so we never expose the password hash or refresh token.
type ProfileResponse struct {
	UserID     string    `json:"userid"`
	Username   string    `json:"username"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Jurusan    string    `json:"jurusan,omitempty"`
	Angkatan   string    `json:"angkatan,omitempty"`
	AvatarURL  string    `json:"avatarUrl,omitempty"`
	PostCount  int       `json:"post_count"`
	TotalLikes int       `json:"total_likes"`
	LastLogin  time.Time `json:"last_login,omitempty"`
}
