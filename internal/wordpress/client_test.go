package wordpress

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hindnews/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func testClient(srv *httptest.Server) *Client {
	c := NewClient(srv.URL, "user", "pass", 5*time.Second)
	return c
}

func TestEnsureCategory_Creates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wp-json/wp/v2/categories", r.URL.Path)
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "user", user)
		assert.Equal(t, "pass", pass)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "राष्ट्रीय समाचार", body["name"])

		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"id": 42}`)
	}))
	defer srv.Close()

	id, err := testClient(srv).EnsureCategory(context.Background(), "राष्ट्रीय समाचार")
	require.NoError(t, err)
	assert.Equal(t, 42, id)
}

func TestEnsureCategory_ExistsResolvedBySearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			// term_exists style rejection
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"code":"term_exists"}`)
			return
		}
		assert.Equal(t, "Sports", r.URL.Query().Get("search"))
		fmt.Fprint(w, `[{"id": 7, "name": "sports"}]`)
	}))
	defer srv.Close()

	id, err := testClient(srv).EnsureCategory(context.Background(), "Sports")
	require.NoError(t, err)
	assert.Equal(t, 7, id, "case-insensitive name match")
}

func TestCreatePost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/wp-json/wp/v2/categories":
			w.WriteHeader(http.StatusCreated)
			fmt.Fprint(w, `{"id": 3}`)
		case "/wp-json/wp/v2/tags":
			w.WriteHeader(http.StatusCreated)
			fmt.Fprint(w, `{"id": 9}`)
		case "/wp-json/wp/v2/posts":
			var payload map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "publish", payload["status"])
			assert.Equal(t, "standard", payload["format"])
			assert.Equal(t, "india-election-politics-news", payload["slug"])
			assert.Equal(t, float64(3), payload["author"])
			assert.Equal(t, []any{float64(3)}, payload["categories"])
			assert.Equal(t, []any{float64(9)}, payload["tags"])
			assert.Equal(t, float64(55), payload["featured_media"])
			w.WriteHeader(http.StatusCreated)
			fmt.Fprint(w, `{"id": 101}`)
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	id, err := testClient(srv).CreatePost(context.Background(), Post{
		Title:         "चुनाव परिणाम",
		Content:       "<p>सामग्री</p>",
		Status:        "publish",
		Slug:          "india-election-politics-news",
		Categories:    []string{"राष्ट्रीय समाचार"},
		Tags:          []string{"चुनाव"},
		FeaturedMedia: 55,
		AuthorID:      3,
	})
	require.NoError(t, err)
	assert.Equal(t, 101, id)
}

func TestCreatePost_SkipsUnresolvableTerms(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/wp-json/wp/v2/categories":
			w.WriteHeader(http.StatusInternalServerError)
		case "/wp-json/wp/v2/posts":
			var payload map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Empty(t, payload["categories"])
			w.WriteHeader(http.StatusCreated)
			fmt.Fprint(w, `{"id": 5}`)
		}
	}))
	defer srv.Close()

	id, err := testClient(srv).CreatePost(context.Background(), Post{
		Title:      "t",
		Content:    "c",
		Status:     "publish",
		Categories: []string{"broken"},
	})
	require.NoError(t, err, "a failed term lookup must not block the post")
	assert.Equal(t, 5, id)
}

func TestUploadImage(t *testing.T) {
	var altRequests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/wp-json/wp/v2/media":
			require.NoError(t, r.ParseMultipartForm(1<<20))
			file, header, err := r.FormFile("file")
			require.NoError(t, err)
			defer file.Close()
			assert.Equal(t, "india-election-featured.jpg", header.Filename)
			w.WriteHeader(http.StatusCreated)
			fmt.Fprint(w, `{"id": 88, "source_url": "https://example.com/img.jpg"}`)
		case "/wp-json/wp/v2/media/88":
			altRequests++
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "Election results", body["alt_text"])
			fmt.Fprint(w, `{"id": 88}`)
		}
	}))
	defer srv.Close()

	id, err := testClient(srv).UploadImage(context.Background(),
		[]byte{0xFF, 0xD8, 0xFF}, "india-election-featured.jpg", "Election results")
	require.NoError(t, err)
	assert.Equal(t, 88, id)
	assert.Equal(t, 1, altRequests)
}

func TestUploadImage_EmptyData(t *testing.T) {
	c := NewClient("http://localhost", "u", "p", time.Second)
	_, err := c.UploadImage(context.Background(), nil, "x.jpg", "")
	assert.Error(t, err)
}

func TestRecentPosts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "10", r.URL.Query().Get("per_page"))
		assert.Equal(t, "date", r.URL.Query().Get("orderby"))
		fmt.Fprint(w, `[
			{"id": 1, "title": {"rendered": "पहली खबर"}, "content": {"rendered": "<p>a</p>"}, "featured_media": 0},
			{"id": 2, "title": {"rendered": "दूसरी खबर"}, "content": {"rendered": "<p>b</p>"}, "featured_media": 44}
		]`)
	}))
	defer srv.Close()

	posts, err := testClient(srv).RecentPosts(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, 0, posts[0].FeaturedMedia)
	assert.Equal(t, "पहली खबर", posts[0].Title)
	assert.Equal(t, 44, posts[1].FeaturedMedia)
}

func TestUpdateFeaturedImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wp-json/wp/v2/posts/12", r.URL.Path)
		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, float64(99), payload["featured_media"])
		assert.True(t, strings.Contains(payload["content"].(string), "updated"))
		fmt.Fprint(w, `{"id": 12}`)
	}))
	defer srv.Close()

	err := testClient(srv).UpdateFeaturedImage(context.Background(), 12, 99, "<p>updated</p>")
	require.NoError(t, err)
}

func TestTestConnection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wp-json/wp/v2/posts", r.URL.Path)
		fmt.Fprint(w, `[]`)
	}))
	defer srv.Close()

	assert.True(t, testClient(srv).TestConnection(context.Background()))
}
