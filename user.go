package viddler

import "github.com/antonholmquist/jason"

// User is a Viddler user profile.
type User struct {
	Username            string
	FirstName           string
	LastName            string
	AboutMe             string
	Avatar              string
	Age                 int
	Homepage            string
	Gender              string
	Company             string
	City                string
	VideoUploadCount    int
	VideoWatchCount     int
	FriendCount         int
	FavouriteVideoCount int
}

// NewUser reads a User from a <user> node.
func NewUser(o *jason.Object) *User {
	return &User{
		Username:            getString(o, "username"),
		FirstName:           getString(o, "first_name"),
		LastName:            getString(o, "last_name"),
		AboutMe:             getString(o, "about_me"),
		Avatar:              getString(o, "avatar"),
		Age:                 getInt(o, "age"),
		Homepage:            getString(o, "homepage"),
		Gender:              getString(o, "gender"),
		Company:             getString(o, "company"),
		City:                getString(o, "city"),
		VideoUploadCount:    getInt(o, "video_upload_count"),
		VideoWatchCount:     getInt(o, "video_watch_count"),
		FriendCount:         getInt(o, "friend_count"),
		FavouriteVideoCount: getInt(o, "favourite_video_count"),
	}
}
