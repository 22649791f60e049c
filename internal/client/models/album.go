// Package models defines the client-held view models for the Exponiendo
// Tacna service. All of them are transient projections of server state:
// rebuilt from a fetch on load, extended by realtime events, and never
// persisted locally (the backend owns persistence).
package models

import "github.com/dmitrijs2005/expotacna/internal/timex"

// AlbumSummary is the card-sized album projection used in grids and search.
type AlbumSummary struct {
	ID            int        `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	UserID        int        `json:"user_id"`
	OwnerUsername string     `json:"owner_username"`
	ThumbnailURL  string     `json:"thumbnail_url"`
	ViewsCount    int        `json:"views_count"`
	CreatedAt     timex.Time `json:"created_at"`
}

// Media is a single photo or video inside an album.
type Media struct {
	ID       int    `json:"id"`
	FilePath string `json:"file_path"`
	FileType string `json:"file_type"`
}

// Comment is a rendered album comment.
type Comment struct {
	ID             int        `json:"id"`
	Text           string     `json:"text"`
	AuthorID       int        `json:"author_id"`
	AuthorUsername string     `json:"author_username"`
	CreatedAt      timex.Time `json:"created_at"`
}

// Album is the full album projection returned by the single-album endpoint,
// including viewer-relative flags. It is re-fetched wholesale after each
// mutation; only like/save counters and the follow flag are patched in place
// from mutation responses.
type Album struct {
	ID                  int       `json:"id"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	UserID              int       `json:"user_id"`
	OwnerUsername       string    `json:"owner_username"`
	OwnerProfilePicture string    `json:"owner_profile_picture"`
	OwnerFollowersCount int       `json:"owner_followers_count"`
	OwnerFollowingCount int       `json:"owner_following_count"`
	Media               []Media   `json:"media"`
	Comments            []Comment `json:"comments"`
	Tags                []string  `json:"tags"`
	ViewsCount          int       `json:"views_count"`
	PhotosCount         int       `json:"photos_count"`
	VideosCount         int       `json:"videos_count"`
	LikesCount          int       `json:"likes_count"`
	SavesCount          int       `json:"saves_count"`
	SharesCount         int       `json:"shares_count"`
	CommentsCount       int       `json:"comments_count"`
	IsFollowed          bool      `json:"is_followed"`
	IsLiked             bool      `json:"is_liked"`
	IsSaved             bool      `json:"is_saved"`
}

// AlbumPage is one page of the paginated album listing.
type AlbumPage struct {
	Albums      []AlbumSummary `json:"albums"`
	TotalPages  int            `json:"total_pages"`
	CurrentPage int            `json:"current_page"`
	HasNext     bool           `json:"has_next"`
	HasPrev     bool           `json:"has_prev"`
}

// SearchResults groups user and album matches for a query.
type SearchResults struct {
	Users  []SearchUser   `json:"users"`
	Albums []AlbumSummary `json:"albums"`
}

// SearchUser is a user match in search results.
type SearchUser struct {
	ID                int    `json:"id"`
	Username          string `json:"username"`
	ProfilePictureURL string `json:"profile_picture_url"`
}
