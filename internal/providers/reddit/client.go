package reddit

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/url"
	"path"
	"sort"
	"strings"

	"github.com/raffleworks/raffle-coordinator/internal/adapter"
	"github.com/raffleworks/raffle-coordinator/internal/domain"
)

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// Post is a content-source post reduced to the fields the pipeline consumes
type Post struct {
	Title     string
	Author    string
	Selftext  string
	Permalink string // canonical absolute URL
	Subreddit string
	ImageURL  string
}

type listing struct {
	Data struct {
		Children []struct {
			Data postData `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type postData struct {
	Title         string               `json:"title"`
	Author        string               `json:"author"`
	Selftext      string               `json:"selftext"`
	Permalink     string               `json:"permalink"`
	Subreddit     string               `json:"subreddit"`
	URL           string               `json:"url"`
	IsGallery     bool                 `json:"is_gallery"`
	GalleryData   *galleryData         `json:"gallery_data"`
	MediaMetadata map[string]mediaMeta `json:"media_metadata"`
	Preview       *preview             `json:"preview"`
}

type galleryData struct {
	Items []galleryItem `json:"items"`
}

type galleryItem struct {
	MediaID string `json:"media_id"`
}

type mediaMeta struct {
	Status string       `json:"status"`
	Mime   string       `json:"m"`
	Source *mediaSource `json:"s"`
}

type mediaSource struct {
	URL string `json:"u"`
	GIF string `json:"gif"`
}

type preview struct {
	Images []previewImage `json:"images"`
}

type previewImage struct {
	Source previewSource `json:"source"`
}

type previewSource struct {
	URL string `json:"url"`
}

// Client defines the interface for content-source operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/reddit_client.go -package=mocks -mock_names=Client=MockRedditClient
type Client interface {
	// NormalizeURL canonicalizes the mobile, short-link and share forms of a post URL
	NormalizeURL(raw string) (string, error)

	// GetPost fetches and parses the post behind the given URL
	GetPost(ctx context.Context, sourceURL string) (*Post, error)

	// FetchRaw fetches a secondary plain-text document, e.g. an externally hosted slot list
	FetchRaw(ctx context.Context, rawURL string) (string, error)
}

// RedditClient implements Client against the public reddit JSON endpoints
type RedditClient struct {
	httpClient adapter.HTTPClient
	rawClient  adapter.HTTPClient // shorter timeout for secondary documents
	json       adapter.JSON
	baseURL    string
	userAgent  string
}

// NewClient creates a new reddit client. rawClient is used for secondary
// document fetches and should carry a tighter timeout than httpClient.
func NewClient(httpClient adapter.HTTPClient, rawClient adapter.HTTPClient, json adapter.JSON, baseURL string, userAgent string) *RedditClient {
	return &RedditClient{
		httpClient: httpClient,
		rawClient:  rawClient,
		json:       json,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		userAgent:  userAgent,
	}
}

// NormalizeURL canonicalizes the mobile, short-link and share forms of a post URL
func (c *RedditClient) NormalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", domain.ErrInvalidSourceURL
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidSourceURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: unsupported scheme %q", domain.ErrInvalidSourceURL, u.Scheme)
	}

	host := strings.ToLower(u.Hostname())
	switch host {
	case "redd.it":
		// Short links carry only the post id
		id := strings.Trim(u.Path, "/")
		if id == "" {
			return "", fmt.Errorf("%w: empty short link", domain.ErrInvalidSourceURL)
		}
		return c.baseURL + "/comments/" + id, nil
	case "reddit.com", "www.reddit.com", "old.reddit.com", "new.reddit.com", "m.reddit.com", "i.reddit.com", "np.reddit.com":
		p := strings.TrimSuffix(u.Path, "/")
		if p == "" {
			return "", fmt.Errorf("%w: missing post path", domain.ErrInvalidSourceURL)
		}
		return c.baseURL + p, nil
	default:
		return "", fmt.Errorf("%w: unrecognized host %q", domain.ErrInvalidSourceURL, host)
	}
}

// GetPost fetches and parses the post behind the given URL. The URL is
// normalized first, so any accepted form may be passed. Share links resolve
// through the transport's redirect handling.
func (c *RedditClient) GetPost(ctx context.Context, sourceURL string) (*Post, error) {
	canonical, err := c.NormalizeURL(sourceURL)
	if err != nil {
		return nil, err
	}

	jsonURL := canonical + ".json?raw_json=1"
	headers := map[string]string{"User-Agent": c.userAgent}

	respBody, err := c.httpClient.GetBytes(ctx, jsonURL, headers)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch post: %w", err)
	}

	var listings []listing
	if err := c.json.Unmarshal(respBody, &listings); err != nil {
		return nil, fmt.Errorf("failed to parse post listing: %w", err)
	}
	if len(listings) == 0 || len(listings[0].Data.Children) == 0 {
		return nil, errors.New("post listing carries no post")
	}

	data := listings[0].Data.Children[0].Data
	if data.Title == "" || data.Permalink == "" {
		return nil, errors.New("post listing is missing title or permalink")
	}

	return &Post{
		Title:     data.Title,
		Author:    data.Author,
		Selftext:  data.Selftext,
		Permalink: c.baseURL + strings.TrimSuffix(data.Permalink, "/"),
		Subreddit: data.Subreddit,
		ImageURL:  selectImage(&data),
	}, nil
}

// FetchRaw fetches a secondary plain-text document, e.g. an externally hosted slot list
func (c *RedditClient) FetchRaw(ctx context.Context, rawURL string) (string, error) {
	headers := map[string]string{"User-Agent": c.userAgent}
	body, err := c.rawClient.GetBytes(ctx, rawURL, headers)
	if err != nil {
		return "", fmt.Errorf("failed to fetch secondary document: %w", err)
	}
	return string(body), nil
}

// selectImage picks the post's representative image: gallery order first,
// then the direct URL when it looks like an image, then the first preview.
func selectImage(data *postData) string {
	if data.IsGallery {
		if data.GalleryData != nil {
			for _, item := range data.GalleryData.Items {
				if u := galleryImageURL(data.MediaMetadata, item.MediaID); u != "" {
					return u
				}
			}
		}
		// Gallery without ordering data, fall back to the first media entry
		keys := make([]string, 0, len(data.MediaMetadata))
		for k := range data.MediaMetadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if u := galleryImageURL(data.MediaMetadata, k); u != "" {
				return u
			}
		}
		return ""
	}

	if u, err := url.Parse(html.UnescapeString(data.URL)); err == nil {
		if ext := strings.ToLower(path.Ext(u.Path)); imageExtensions[ext] {
			return html.UnescapeString(data.URL)
		}
	}

	if data.Preview != nil && len(data.Preview.Images) > 0 {
		return html.UnescapeString(data.Preview.Images[0].Source.URL)
	}

	return ""
}

func galleryImageURL(metadata map[string]mediaMeta, mediaID string) string {
	meta, ok := metadata[mediaID]
	if !ok || meta.Source == nil {
		return ""
	}
	if meta.Source.URL != "" {
		return html.UnescapeString(meta.Source.URL)
	}
	if meta.Source.GIF != "" {
		return html.UnescapeString(meta.Source.GIF)
	}
	return ""
}
