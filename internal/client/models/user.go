package models

// LoginResult is the payload of a successful login.
type LoginResult struct {
	AccessToken string `json:"access_token"`
	Username    string `json:"username"`
	IsAdmin     bool   `json:"is_admin"`
}

// Profile is a user profile page projection, including the owner's albums.
type Profile struct {
	ID                int            `json:"id"`
	Username          string         `json:"username"`
	Bio               string         `json:"bio"`
	ProfilePictureURL string         `json:"profile_picture_url"`
	BannerImageURL    string         `json:"banner_image_url"`
	FollowersCount    int            `json:"followers_count"`
	FollowingCount    int            `json:"following_count"`
	IsFollowed        bool           `json:"is_followed"`
	Albums            []AlbumSummary `json:"albums"`
}

// AdminUser is a row in the admin panel user tables. IsActive reflects
// realtime presence and is mutated by channel events.
type AdminUser struct {
	ID         int    `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	IsApproved bool   `json:"is_approved"`
	IsActive   bool   `json:"is_active"`
}
