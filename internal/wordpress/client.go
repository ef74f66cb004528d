// Package wordpress is a minimal client for the WordPress REST API,
// covering what publishing needs: posts, terms, media.
package wordpress

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"hindnews/internal/logger"
)

type Client struct {
	apiURL   string
	username string
	password string
	httpc    *http.Client
}

// Post is a publish request.
type Post struct {
	Title         string
	Content       string
	Status        string
	Slug          string
	Categories    []string
	Tags          []string
	FeaturedMedia int
	AuthorID      int
}

// RemotePost is a post as returned by the API.
type RemotePost struct {
	ID            int
	Title         string
	Content       string
	FeaturedMedia int
}

func NewClient(siteURL, username, password string, timeout time.Duration) *Client {
	return &Client{
		apiURL:   strings.TrimRight(siteURL, "/") + "/wp-json/wp/v2",
		username: username,
		password: password,
		httpc:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.apiURL+path, body)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.username, c.password)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return c.httpc.Do(req)
}

func (c *Client) postJSON(ctx context.Context, path string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPost, path, bytes.NewReader(body), "application/json")
}

// TestConnection checks that the site answers with valid credentials.
func (c *Client) TestConnection(ctx context.Context) bool {
	resp, err := c.do(ctx, http.MethodGet, "/posts", nil, "")
	if err != nil {
		logger.Error("WordPress connection test failed", "error", err)
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// EnsureCategory creates the category, or looks it up when the API
// reports it already exists.
func (c *Client) EnsureCategory(ctx context.Context, name string) (int, error) {
	return c.ensureTerm(ctx, "/categories", name)
}

// EnsureTag creates the tag, or looks it up when it already exists.
func (c *Client) EnsureTag(ctx context.Context, name string) (int, error) {
	return c.ensureTerm(ctx, "/tags", name)
}

func (c *Client) ensureTerm(ctx context.Context, path, name string) (int, error) {
	resp, err := c.postJSON(ctx, path, map[string]string{"name": name})
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		var term struct {
			ID int `json:"id"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&term); err != nil {
			return 0, fmt.Errorf("decode term response: %w", err)
		}
		logger.Info("created term", "path", path, "name", name, "id", term.ID)
		return term.ID, nil
	case http.StatusBadRequest:
		// Term usually exists already, resolve by search
		return c.findTerm(ctx, path, name)
	default:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return 0, fmt.Errorf("create term %q: status %d: %s", name, resp.StatusCode, msg)
	}
}

func (c *Client) findTerm(ctx context.Context, path, name string) (int, error) {
	resp, err := c.do(ctx, http.MethodGet, path+"?search="+url.QueryEscape(name), nil, "")
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("search term %q: status %d", name, resp.StatusCode)
	}

	var terms []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&terms); err != nil {
		return 0, fmt.Errorf("decode term search: %w", err)
	}
	for _, term := range terms {
		if strings.EqualFold(term.Name, name) {
			return term.ID, nil
		}
	}
	return 0, fmt.Errorf("term %q not found", name)
}

// CreatePost resolves category and tag names to IDs and creates the
// post. Term resolution failures are logged and skipped, a post with
// a missing tag is better than no post.
func (c *Client) CreatePost(ctx context.Context, post Post) (int, error) {
	var categoryIDs []int
	for _, name := range post.Categories {
		id, err := c.EnsureCategory(ctx, name)
		if err != nil {
			logger.Warn("could not resolve category", "name", name, "error", err)
			continue
		}
		categoryIDs = append(categoryIDs, id)
	}

	var tagIDs []int
	for _, name := range post.Tags {
		id, err := c.EnsureTag(ctx, name)
		if err != nil {
			logger.Warn("could not resolve tag", "name", name, "error", err)
			continue
		}
		tagIDs = append(tagIDs, id)
	}

	payload := map[string]any{
		"title":          post.Title,
		"content":        post.Content,
		"status":         post.Status,
		"format":         "standard",
		"categories":     categoryIDs,
		"tags":           tagIDs,
		"featured_media": post.FeaturedMedia,
	}
	if post.AuthorID > 0 {
		payload["author"] = post.AuthorID
	}
	if post.Slug != "" {
		payload["slug"] = post.Slug
	}

	resp, err := c.postJSON(ctx, "/posts", payload)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return 0, fmt.Errorf("create post: status %d: %s", resp.StatusCode, msg)
	}

	var created struct {
		ID int `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return 0, fmt.Errorf("decode post response: %w", err)
	}
	logger.Info("created WordPress post", "id", created.ID, "categories", post.Categories, "tags", post.Tags)
	return created.ID, nil
}

// UploadImage uploads JPEG bytes as a media item and sets its alt
// text. Returns the media ID.
func (c *Client) UploadImage(ctx context.Context, data []byte, filename, altText string) (int, error) {
	if len(data) == 0 {
		return 0, fmt.Errorf("no image data to upload")
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return 0, err
	}
	if _, err := part.Write(data); err != nil {
		return 0, err
	}
	if err := writer.Close(); err != nil {
		return 0, err
	}

	resp, err := c.do(ctx, http.MethodPost, "/media", &body, writer.FormDataContentType())
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return 0, fmt.Errorf("upload image: status %d: %s", resp.StatusCode, msg)
	}

	var media struct {
		ID        int    `json:"id"`
		SourceURL string `json:"source_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&media); err != nil {
		return 0, fmt.Errorf("decode media response: %w", err)
	}
	logger.Info("uploaded image", "id", media.ID, "url", media.SourceURL)

	if altText != "" {
		if err := c.setAltText(ctx, media.ID, altText); err != nil {
			logger.Warn("could not set image alt text", "media_id", media.ID, "error", err)
		}
	}
	return media.ID, nil
}

func (c *Client) setAltText(ctx context.Context, mediaID int, altText string) error {
	resp, err := c.postJSON(ctx, fmt.Sprintf("/media/%d", mediaID), map[string]string{"alt_text": altText})
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	return nil
}

// UpdateFeaturedImage attaches a media item to an existing post.
// newContent, when non-empty, replaces the post body too.
func (c *Client) UpdateFeaturedImage(ctx context.Context, postID, mediaID int, newContent string) error {
	payload := map[string]any{"featured_media": mediaID}
	if newContent != "" {
		payload["content"] = newContent
	}

	resp, err := c.postJSON(ctx, fmt.Sprintf("/posts/%d", postID), payload)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("update post %d: status %d: %s", postID, resp.StatusCode, msg)
	}
	logger.Info("updated post featured image", "post_id", postID, "media_id", mediaID)
	return nil
}

// GetPostContent returns the rendered body of a post.
func (c *Client) GetPostContent(ctx context.Context, postID int) (string, error) {
	resp, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/posts/%d", postID), nil, "")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("get post %d: status %d", postID, resp.StatusCode)
	}

	var post struct {
		Content struct {
			Rendered string `json:"rendered"`
		} `json:"content"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&post); err != nil {
		return "", err
	}
	return post.Content.Rendered, nil
}

// RecentPosts lists the newest posts, up to perPage.
func (c *Client) RecentPosts(ctx context.Context, perPage int) ([]RemotePost, error) {
	path := fmt.Sprintf("/posts?per_page=%d&orderby=date&order=desc", perPage)
	resp, err := c.do(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list posts: status %d", resp.StatusCode)
	}

	var raw []struct {
		ID    int `json:"id"`
		Title struct {
			Rendered string `json:"rendered"`
		} `json:"title"`
		Content struct {
			Rendered string `json:"rendered"`
		} `json:"content"`
		FeaturedMedia int `json:"featured_media"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}

	posts := make([]RemotePost, 0, len(raw))
	for _, p := range raw {
		posts = append(posts, RemotePost{
			ID:            p.ID,
			Title:         p.Title.Rendered,
			Content:       p.Content.Rendered,
			FeaturedMedia: p.FeaturedMedia,
		})
	}
	return posts, nil
}
