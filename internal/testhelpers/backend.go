package testhelpers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

// RecordedFile is one uploaded multipart file.
type RecordedFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// RecordedRequest is what the fake backend saw.
type RecordedRequest struct {
	Method      string
	Path        string
	Query       string
	Header      http.Header
	ContentType string
	JSON        map[string]any
	Form        map[string][]string
	Files       map[string][]RecordedFile
}

// Bearer returns the token from the Authorization header.
func (r RecordedRequest) Bearer() string {
	return strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
}

func (r RecordedRequest) IsMultipart() bool {
	return strings.HasPrefix(r.ContentType, "multipart/form-data")
}

// FormValue returns the first value of a multipart field.
func (r RecordedRequest) FormValue(name string) string {
	if vs := r.Form[name]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// FakeBackend is an httptest server routed with gorilla/mux. Every request is
// recorded before routing, including those that match no route.
type FakeBackend struct {
	T      *testing.T
	Server *httptest.Server
	Router *mux.Router

	mu       sync.Mutex
	requests []RecordedRequest
}

func NewFakeBackend(t *testing.T) *FakeBackend {
	fb := &FakeBackend{T: t, Router: mux.NewRouter()}
	fb.Server = httptest.NewServer(http.HandlerFunc(fb.serve))
	t.Cleanup(fb.Server.Close)
	return fb
}

func (fb *FakeBackend) URL() string {
	return fb.Server.URL
}

func (fb *FakeBackend) serve(w http.ResponseWriter, r *http.Request) {
	fb.record(r)
	fb.Router.ServeHTTP(w, r)
}

func (fb *FakeBackend) record(r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		fb.T.Errorf("fake backend: read body: %v", err)
	}
	r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(raw))

	rec := RecordedRequest{
		Method:      r.Method,
		Path:        r.URL.Path,
		Query:       r.URL.RawQuery,
		Header:      r.Header.Clone(),
		ContentType: r.Header.Get("Content-Type"),
	}

	mediaType, params, _ := mime.ParseMediaType(rec.ContentType)
	switch {
	case mediaType == "application/json" && len(raw) > 0:
		_ = json.Unmarshal(raw, &rec.JSON)
	case mediaType == "multipart/form-data":
		clone := r.Clone(r.Context())
		clone.Body = io.NopCloser(bytes.NewReader(raw))
		clone.Header.Set("Content-Type", mime.FormatMediaType(mediaType, params))
		if err := clone.ParseMultipartForm(32 << 20); err == nil {
			rec.Form = clone.MultipartForm.Value
			rec.Files = make(map[string][]RecordedFile)
			for name, headers := range clone.MultipartForm.File {
				for _, h := range headers {
					f, err := h.Open()
					if err != nil {
						fb.T.Errorf("fake backend: open upload %s: %v", h.Filename, err)
						continue
					}
					data, _ := io.ReadAll(f)
					f.Close()
					rec.Files[name] = append(rec.Files[name], RecordedFile{
						Filename:    h.Filename,
						ContentType: h.Header.Get("Content-Type"),
						Data:        data,
					})
				}
			}
		}
	}

	fb.mu.Lock()
	fb.requests = append(fb.requests, rec)
	fb.mu.Unlock()
}

// Handle registers a custom handler.
func (fb *FakeBackend) Handle(method, pattern string, h http.HandlerFunc) {
	fb.Router.HandleFunc(pattern, h).Methods(method)
}

// Respond registers a canned JSON response. A nil body sends no content.
func (fb *FakeBackend) Respond(method, pattern string, status int, body any) {
	fb.Handle(method, pattern, func(w http.ResponseWriter, _ *http.Request) {
		WriteJSON(w, status, body)
	})
}

func WriteJSON(w http.ResponseWriter, status int, body any) {
	if body == nil {
		w.WriteHeader(status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// Requests returns a snapshot of everything received so far.
func (fb *FakeBackend) Requests() []RecordedRequest {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return append([]RecordedRequest(nil), fb.requests...)
}

// RequestsTo filters recorded requests by method and exact path.
func (fb *FakeBackend) RequestsTo(method, path string) []RecordedRequest {
	var out []RecordedRequest
	for _, r := range fb.Requests() {
		if r.Method == method && r.Path == path {
			out = append(out, r)
		}
	}
	return out
}

func (fb *FakeBackend) Count() int {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return len(fb.requests)
}

// Last returns the most recent request; it fails the test when there is none.
func (fb *FakeBackend) Last() RecordedRequest {
	reqs := fb.Requests()
	require.NotEmpty(fb.T, reqs, "expected at least one backend request")
	return reqs[len(reqs)-1]
}
