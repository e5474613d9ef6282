package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"trippy/internal/infra"
)

const (
	thumbnailSize   = 800
	galleryCap      = 8
	galleryQueryCap = 3
)

// stockGallery keeps the gallery non-empty when no query yields a
// thumbnail.
var stockGallery = []string{
	"https://images.unsplash.com/photo-1488646953014-85cb44e25828?w=800",
	"https://images.unsplash.com/photo-1469854523086-cc02fe5d8800?w=800",
}

type ImageServiceInterface interface {
	// Thumbnail returns a single image URL or "" when the encyclopedia
	// search has no thumbnail for the query.
	Thumbnail(ctx context.Context, query string, size int) string
	// Summary returns the page-summary extract for the title, or ""
	// when there is no page or the provider is down.
	Summary(ctx context.Context, title string) string
	// Gallery builds a capped, deduplicated URL list from the top
	// attractions plus a generic skyline query.
	Gallery(ctx context.Context, city string, attractionNames []string) ([]string, string)
}

type ImageService struct {
	http    *http.Client
	baseURL string
}

func NewImageService(cfg *infra.ProviderConfig) ImageServiceInterface {
	return &ImageService{
		http:    infra.NewHTTPClient(8 * time.Second),
		baseURL: cfg.WikipediaBaseURL,
	}
}

func (s *ImageService) Thumbnail(ctx context.Context, query string, size int) string {
	u, err := url.Parse(s.baseURL + "/w/api.php")
	if err != nil {
		return ""
	}
	q := url.Values{}
	q.Set("action", "query")
	q.Set("generator", "search")
	q.Set("gsrsearch", query)
	q.Set("gsrlimit", "1")
	q.Set("prop", "pageimages")
	q.Set("piprop", "thumbnail")
	q.Set("pithumbsize", strconv.Itoa(size))
	q.Set("format", "json")
	u.RawQuery = q.Encode()

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	resp, err := s.http.Do(req)
	if err != nil {
		log.Printf("Image lookup %q failed: %v", query, err)
		return ""
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		log.Printf("Image lookup %q bad status: %s", query, resp.Status)
		return ""
	}

	var payload struct {
		Query struct {
			Pages map[string]struct {
				Index     int `json:"index"`
				Thumbnail struct {
					Source string `json:"source"`
				} `json:"thumbnail"`
			} `json:"pages"`
		} `json:"query"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("Image lookup %q decode error: %v", query, err)
		return ""
	}

	// The generator returns pages keyed by id; take the most relevant
	// one (lowest index) that actually has a thumbnail.
	best := ""
	bestIndex := 0
	for _, page := range payload.Query.Pages {
		if page.Thumbnail.Source == "" {
			continue
		}
		if best == "" || page.Index < bestIndex {
			best = page.Thumbnail.Source
			bestIndex = page.Index
		}
	}
	return best
}

func (s *ImageService) Summary(ctx context.Context, title string) string {
	u := s.baseURL + "/api/rest_v1/page/summary/" + url.PathEscape(title)

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	resp, err := s.http.Do(req)
	if err != nil {
		log.Printf("Summary lookup %q failed: %v", title, err)
		return ""
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		log.Printf("Summary lookup %q bad status: %s", title, resp.Status)
		return ""
	}

	var payload struct {
		Extract string `json:"extract"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("Summary lookup %q decode error: %v", title, err)
		return ""
	}
	return payload.Extract
}

func (s *ImageService) Gallery(ctx context.Context, city string, attractionNames []string) ([]string, string) {
	queries := make([]string, 0, galleryQueryCap+1)
	for _, name := range attractionNames {
		if len(queries) == galleryQueryCap {
			break
		}
		queries = append(queries, name)
	}
	queries = append(queries, fmt.Sprintf("%s skyline landmark", city))

	seen := make(map[string]struct{})
	gallery := make([]string, 0, galleryCap)
	for _, q := range queries {
		if len(gallery) == galleryCap {
			break
		}
		u := s.Thumbnail(ctx, q, thumbnailSize)
		if u == "" {
			continue
		}
		if _, dup := seen[u]; dup {
			continue
		}
		seen[u] = struct{}{}
		gallery = append(gallery, u)
	}

	if len(gallery) == 0 {
		return append([]string(nil), stockGallery...), "stock"
	}
	return gallery, "wikipedia"
}
