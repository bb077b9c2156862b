package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/activi-backend/utils"
)

func TestFetchSyllablesRequiresWord(t *testing.T) {
	svc := NewProxyService()
	_, err := svc.FetchSyllables("")
	if utils.ErrorStatus(err) != 400 {
		t.Errorf("status = %d, want 400", utils.ErrorStatus(err))
	}
}

func TestFetchSyllablesPassthrough(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("json") != "1" {
			t.Errorf("json param = %q, want 1", r.URL.Query().Get("json"))
		}
		if r.URL.Query().Get("word") != "mariposa" {
			t.Errorf("word param = %q, want mariposa", r.URL.Query().Get("word"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"word":"mariposa","syllables":["ma","ri","po","sa"]}`))
	}))
	defer upstream.Close()

	svc := NewProxyService()
	svc.SyllablesURL = upstream.URL

	data, err := svc.FetchSyllables("mariposa")
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}

	var decoded struct {
		Word      string   `json:"word"`
		Syllables []string `json:"syllables"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("response is not the upstream JSON: %v", err)
	}
	if decoded.Word != "mariposa" || len(decoded.Syllables) != 4 {
		t.Errorf("unexpected passthrough content: %+v", decoded)
	}
}

func TestFetchSyllablesUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close() // connection refused from now on

	svc := NewProxyService()
	svc.SyllablesURL = upstream.URL

	_, err := svc.FetchSyllables("mariposa")
	if utils.ErrorStatus(err) != 500 {
		t.Errorf("status = %d, want 500", utils.ErrorStatus(err))
	}
}

func TestSearchResourcesRequiresQuery(t *testing.T) {
	svc := NewProxyService()
	_, err := svc.SearchResources("", "", "")
	if utils.ErrorStatus(err) != 400 {
		t.Errorf("status = %d, want 400", utils.ErrorStatus(err))
	}
}

func TestSearchResourcesRewritesImageURLs(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("query") != "casa" {
			t.Errorf("query = %q, want casa", q.Get("query"))
		}
		if q.Get("type") != "photo" || q.Get("items_per_page") != "20" {
			t.Errorf("defaults not applied: type=%q items_per_page=%q", q.Get("type"), q.Get("items_per_page"))
		}
		if q.Get("matching") != "contain" || q.Get("token") == "" {
			t.Errorf("fixed params missing: matching=%q", q.Get("matching"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"title":"Casa","image":{"src":"https://cdn.soyvisual.org/casa.jpg","width":800},"thumbnail":{"src":"https://cdn.soyvisual.org/casa_thumb.jpg"}}]`))
	}))
	defer upstream.Close()

	svc := NewProxyService()
	svc.SoyVisualURL = upstream.URL
	svc.PublicBaseURL = "https://api.example.com"

	items, err := svc.SearchResources("casa", "", "")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}

	item := items[0]
	if item["title"] != "Casa" {
		t.Errorf("item fields not preserved: %+v", item)
	}

	image := item["image"].(map[string]interface{})
	wantSrc := "https://api.example.com/soyvisual/image?url=" + url.QueryEscape("https://cdn.soyvisual.org/casa.jpg")
	if image["src"] != wantSrc {
		t.Errorf("image src = %q, want %q", image["src"], wantSrc)
	}
	if image["width"] != float64(800) {
		t.Errorf("sibling image fields not preserved: %+v", image)
	}

	thumbnail := item["thumbnail"].(map[string]interface{})
	wantThumb := "https://api.example.com/soyvisual/image?url=" + url.QueryEscape("https://cdn.soyvisual.org/casa_thumb.jpg")
	if thumbnail["src"] != wantThumb {
		t.Errorf("thumbnail src = %q, want %q", thumbnail["src"], wantThumb)
	}
}

func TestFetchImageContentType(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte{0x89, 'P', 'N', 'G'})
	}))
	defer upstream.Close()

	svc := NewProxyService()
	body, contentType, err := svc.FetchImage(upstream.URL)
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if contentType != "image/png" {
		t.Errorf("contentType = %q, want image/png", contentType)
	}
	if len(body) != 4 {
		t.Errorf("body length = %d, want 4", len(body))
	}
}

func TestFetchImageDefaultsToJPEG(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// net/http sniffs a Content-Type unless told otherwise
		w.Header()["Content-Type"] = nil
		w.WriteHeader(http.StatusOK)
	}))
	defer upstream.Close()

	svc := NewProxyService()
	_, contentType, err := svc.FetchImage(upstream.URL)
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if contentType != "image/jpeg" {
		t.Errorf("contentType = %q, want image/jpeg", contentType)
	}
}

func TestFetchImageRequiresURL(t *testing.T) {
	svc := NewProxyService()
	_, _, err := svc.FetchImage("")
	if utils.ErrorStatus(err) != 400 {
		t.Errorf("status = %d, want 400", utils.ErrorStatus(err))
	}
}
