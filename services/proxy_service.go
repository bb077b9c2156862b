package services

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/activi-backend/config"
	"github.com/activi-backend/utils"
)

const (
	defaultSyllablesURL = "http://www.aulatea.com/silabas/website/silabas/index.php"
	defaultSoyVisualURL = "https://www.soyvisual.org/api/v1/resources.json"
	soyVisualToken      = "6B5165B822AE4400813CF4EC490BF6AB"
)

// ProxyService forwards requests to the external content APIs and rewrites
// their responses so returned image URLs route back through this service.
// Identity-independent: no caller context is involved.
type ProxyService struct {
	client        *http.Client
	SyllablesURL  string
	SoyVisualURL  string
	PublicBaseURL string
}

// NewProxyService creates a proxy service with the production upstreams
func NewProxyService() *ProxyService {
	return &ProxyService{
		client:       &http.Client{Timeout: 30 * time.Second},
		SyllablesURL: defaultSyllablesURL,
		SoyVisualURL: defaultSoyVisualURL,
	}
}

// baseURL resolves the public base the rewritten image URLs point at. Read
// lazily so .env loading in main has already happened.
func (s *ProxyService) baseURL() string {
	if s.PublicBaseURL != "" {
		return s.PublicBaseURL
	}
	port := config.GetEnv("PORT", "8080")
	return config.GetEnv("PUBLIC_BASE_URL", "http://localhost:"+port)
}

// FetchSyllables forwards a word to the syllable-splitting service and
// returns its JSON response unmodified
func (s *ProxyService) FetchSyllables(word string) (json.RawMessage, error) {
	if word == "" {
		return nil, utils.NewValidationError("word parameter required")
	}

	u, err := url.Parse(s.SyllablesURL)
	if err != nil {
		return nil, utils.NewUpstreamError("error fetching syllables data")
	}
	q := u.Query()
	q.Set("json", "1")
	q.Set("word", word)
	u.RawQuery = q.Encode()

	resp, err := s.client.Get(u.String())
	if err != nil {
		return nil, utils.NewUpstreamError("error fetching syllables data")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, utils.NewUpstreamError("error fetching syllables data")
	}

	if !json.Valid(body) {
		return nil, utils.NewUpstreamError("error fetching syllables data")
	}
	return json.RawMessage(body), nil
}

// SearchResources forwards a pictogram search to the upstream API and
// rewrites every image and thumbnail URL to the internal image endpoint so
// the client never talks to the upstream directly
func (s *ProxyService) SearchResources(query, resourceType, itemsPerPage string) ([]map[string]interface{}, error) {
	if query == "" {
		return nil, utils.NewValidationError("query parameter required")
	}
	if resourceType == "" {
		resourceType = "photo"
	}
	if itemsPerPage == "" {
		itemsPerPage = "20"
	}

	u, err := url.Parse(s.SoyVisualURL)
	if err != nil {
		return nil, utils.NewUpstreamError("error fetching resource data")
	}
	q := u.Query()
	q.Set("token", soyVisualToken)
	q.Set("query", query)
	q.Set("type", resourceType)
	q.Set("items_per_page", itemsPerPage)
	q.Set("matching", "contain")
	u.RawQuery = q.Encode()

	resp, err := s.client.Get(u.String())
	if err != nil {
		return nil, utils.NewUpstreamError("error fetching resource data")
	}
	defer resp.Body.Close()

	var items []map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, utils.NewUpstreamError("error fetching resource data")
	}

	for _, item := range items {
		s.rewriteImageSrc(item, "image")
		s.rewriteImageSrc(item, "thumbnail")
	}
	return items, nil
}

// rewriteImageSrc replaces item[key].src with the internal fetch endpoint
// parameterized by the original URL. Items lacking the field pass through.
func (s *ProxyService) rewriteImageSrc(item map[string]interface{}, key string) {
	image, ok := item[key].(map[string]interface{})
	if !ok {
		return
	}
	src, ok := image["src"].(string)
	if !ok || src == "" {
		return
	}
	image["src"] = s.baseURL() + "/soyvisual/image?url=" + url.QueryEscape(src)
}

// FetchImage retrieves the remote image bytes along with the upstream
// content type (JPEG when the upstream does not say)
func (s *ProxyService) FetchImage(imageURL string) ([]byte, string, error) {
	if imageURL == "" {
		return nil, "", utils.NewValidationError("url parameter required")
	}

	resp, err := s.client.Get(imageURL)
	if err != nil {
		return nil, "", utils.NewUpstreamError("error fetching image")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", utils.NewUpstreamError("error fetching image")
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}
	return body, contentType, nil
}
