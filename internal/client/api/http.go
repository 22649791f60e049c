package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/expotacna/internal/client/models"
	"github.com/dmitrijs2005/expotacna/internal/common"
)

// TokenSource supplies the current access token. An empty string means the
// request goes out anonymous.
type TokenSource func(ctx context.Context) (string, error)

type HTTPClient struct {
	baseURL string
	token   TokenSource
	httpc   *http.Client
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(baseURL string, token TokenSource) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		token:   token,
		httpc:   &http.Client{},
	}
}

func (c *HTTPClient) Close() error {
	c.httpc.CloseIdleConnections()
	return nil
}

// Ping probes the album listing with the smallest possible page. Any HTTP
// status counts as reachable; only a transport failure is an error.
func (c *HTTPClient) Ping(ctx context.Context) error {
	resp, err := c.Do(ctx, http.MethodGet, "/api/albums?page=1&per_page=1", "", nil)
	if err != nil {
		return err
	}
	return resp.Body.Close()
}

// Do performs one request against the backend. The access token is attached
// when present; contentType is set verbatim, so multipart callers pass the
// writer's boundary form and JSON callers pass application/json. A non-2xx
// response is not an error at this level. Transport failures come back
// wrapped in ErrUnavailable.
func (c *HTTPClient) Do(ctx context.Context, method string, path string, contentType string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}
	if token != "" {
		req.Header.Set(common.AuthHeaderName, common.BearerPrefix+token)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", common.ErrUnavailable, err)
	}
	return resp, nil
}

// errorPayload matches the two shapes the backend uses for failures.
type errorPayload struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// apiError turns a non-2xx response into an error. The auth statuses map to
// sentinels so callers can errors.Is on them; everything else carries the
// server-supplied message.
func apiError(resp *http.Response) error {
	var payload errorPayload
	_ = json.NewDecoder(resp.Body).Decode(&payload)
	msg := payload.Error
	if msg == "" {
		msg = payload.Message
	}
	if msg == "" {
		msg = resp.Status
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", common.ErrUnauthorized, msg)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", common.ErrForbidden, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", common.ErrNotFound, msg)
	default:
		return fmt.Errorf("request failed: %s", msg)
	}
}

// doJSON runs a typed JSON round trip. in is marshalled as the request body
// when non-nil; out is decoded from the response body when non-nil.
func (c *HTTPClient) doJSON(ctx context.Context, method string, path string, in any, out any) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(data)
		contentType = "application/json"
	}

	resp, err := c.Do(ctx, method, path, contentType, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apiError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// doMultipart uploads one file as the "file" form field.
func (c *HTTPClient) doMultipart(ctx context.Context, method string, path string, filename string, fileContentType string, data io.Reader, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	if fileContentType != "" {
		header.Set("Content-Type", fileContentType)
	}
	part, err := w.CreatePart(header)
	if err != nil {
		return fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := io.Copy(part, data); err != nil {
		return fmt.Errorf("failed to read upload payload: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finish multipart body: %w", err)
	}

	resp, err := c.Do(ctx, method, path, w.FormDataContentType(), &buf)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apiError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *HTTPClient) Login(ctx context.Context, username string, password string) (*models.LoginResult, error) {
	in := map[string]string{"username": username, "password": password}
	var out models.LoginResult
	if err := c.doJSON(ctx, http.MethodPost, "/api/login", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Register(ctx context.Context, username string, email string, password string) error {
	in := map[string]string{"username": username, "email": email, "password": password}
	return c.doJSON(ctx, http.MethodPost, "/api/register", in, nil)
}

func (c *HTTPClient) Albums(ctx context.Context, page int, perPage int) (*models.AlbumPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(perPage))
	var out models.AlbumPage
	if err := c.doJSON(ctx, http.MethodGet, "/api/albums?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Album(ctx context.Context, id int) (*models.Album, error) {
	var out models.Album
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/albums/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CreateAlbum(ctx context.Context, title string, description string) (int, error) {
	in := map[string]string{"title": title, "description": description}
	var out struct {
		Album struct {
			ID int `json:"id"`
		} `json:"album"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/albums", in, &out); err != nil {
		return 0, err
	}
	return out.Album.ID, nil
}

func (c *HTTPClient) UpdateAlbum(ctx context.Context, id int, title string, description string) error {
	in := map[string]string{"title": title, "description": description}
	return c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/albums/%d", id), in, nil)
}

func (c *HTTPClient) DeleteAlbum(ctx context.Context, id int) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/albums/%d", id), nil, nil)
}

func (c *HTTPClient) UploadMedia(ctx context.Context, albumID int, filename string, contentType string, data io.Reader) error {
	return c.doMultipart(ctx, http.MethodPost, fmt.Sprintf("/api/albums/%d/media", albumID), filename, contentType, data, nil)
}

func (c *HTTPClient) DeleteMedia(ctx context.Context, mediaID int) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/media/%d", mediaID), nil, nil)
}

func (c *HTTPClient) SetCover(ctx context.Context, albumID int, mediaID int) error {
	in := map[string]int{"media_id": mediaID}
	return c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/albums/%d/cover", albumID), in, nil)
}

func (c *HTTPClient) ReorderMedia(ctx context.Context, albumID int, mediaIDs []int) error {
	in := map[string][]int{"media_ids": mediaIDs}
	return c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/albums/%d/reorder", albumID), in, nil)
}

func (c *HTTPClient) ToggleLike(ctx context.Context, albumID int) (bool, int, error) {
	var out struct {
		IsLiked    bool `json:"is_liked"`
		LikesCount int  `json:"likes_count"`
	}
	if err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/api/albums/%d/like", albumID), nil, &out); err != nil {
		return false, 0, err
	}
	return out.IsLiked, out.LikesCount, nil
}

func (c *HTTPClient) ToggleSave(ctx context.Context, albumID int) (bool, int, error) {
	var out struct {
		IsSaved    bool `json:"is_saved"`
		SavesCount int  `json:"saves_count"`
	}
	if err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/api/albums/%d/save", albumID), nil, &out); err != nil {
		return false, 0, err
	}
	return out.IsSaved, out.SavesCount, nil
}

func (c *HTTPClient) ToggleFollow(ctx context.Context, userID int) (bool, error) {
	var out struct {
		IsFollowed bool `json:"is_followed"`
	}
	if err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/api/users/%d/follow", userID), nil, &out); err != nil {
		return false, err
	}
	return out.IsFollowed, nil
}

func (c *HTTPClient) AddComment(ctx context.Context, albumID int, text string) error {
	in := map[string]string{"text": text}
	return c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/api/albums/%d/comments", albumID), in, nil)
}

func (c *HTTPClient) DeleteComment(ctx context.Context, commentID int) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/comments/%d", commentID), nil, nil)
}

func (c *HTTPClient) ReportComment(ctx context.Context, commentID int, reason string) error {
	in := map[string]string{"reason": reason}
	return c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/api/comments/%d/report", commentID), in, nil)
}

func (c *HTTPClient) ReportAlbum(ctx context.Context, albumID int, reason string, description string) error {
	in := map[string]string{"reason": reason, "description": description}
	return c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/api/albums/%d/report", albumID), in, nil)
}

func (c *HTTPClient) Profile(ctx context.Context, username string) (*models.Profile, error) {
	var out models.Profile
	if err := c.doJSON(ctx, http.MethodGet, "/api/profiles/"+url.PathEscape(username), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateBio(ctx context.Context, bio string) error {
	in := map[string]string{"bio": bio}
	return c.doJSON(ctx, http.MethodPut, "/api/my-profile", in, nil)
}

// UploadProfileImage replaces the profile picture or the banner and returns
// the new public URL.
func (c *HTTPClient) UploadProfileImage(ctx context.Context, kind ProfileImageKind, filename string, contentType string, data io.Reader) (string, error) {
	var out struct {
		ProfilePictureURL string `json:"profile_picture_url"`
		BannerImageURL    string `json:"banner_image_url"`
	}
	path := "/api/my-profile/" + string(kind)
	if err := c.doMultipart(ctx, http.MethodPost, path, filename, contentType, data, &out); err != nil {
		return "", err
	}
	if kind == ProfileImageBanner {
		return out.BannerImageURL, nil
	}
	return out.ProfilePictureURL, nil
}

func (c *HTTPClient) DeleteProfileImage(ctx context.Context, kind ProfileImageKind) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/my-profile/"+string(kind), nil, nil)
}

func (c *HTTPClient) Search(ctx context.Context, query string) (*models.SearchResults, error) {
	q := url.Values{}
	q.Set("q", query)
	var out models.SearchResults
	if err := c.doJSON(ctx, http.MethodGet, "/api/search?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Notifications(ctx context.Context) ([]models.Notification, error) {
	var out []models.Notification
	if err := c.doJSON(ctx, http.MethodGet, "/api/notifications", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) MarkNotificationsRead(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/api/notifications/read", nil, nil)
}

func (c *HTTPClient) SavedAlbums(ctx context.Context) ([]models.AlbumSummary, error) {
	var out []models.AlbumSummary
	if err := c.doJSON(ctx, http.MethodGet, "/api/me/saved-albums", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Conversations(ctx context.Context) ([]models.Conversation, error) {
	var out []models.Conversation
	if err := c.doJSON(ctx, http.MethodGet, "/api/chats", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Messages(ctx context.Context, otherUserID int) ([]models.Message, error) {
	var out []models.Message
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/chats/%d", otherUserID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) AdminUsers(ctx context.Context) ([]models.AdminUser, error) {
	var out []models.AdminUser
	if err := c.doJSON(ctx, http.MethodGet, "/api/admin/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ApproveUser(ctx context.Context, userID int) error {
	return c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/api/admin/users/%d/approve", userID), nil, nil)
}

func (c *HTTPClient) DeleteUser(ctx context.Context, userID int) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/admin/users/%d", userID), nil, nil)
}
