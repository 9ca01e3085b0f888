package httpcache

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// HeaderCache is set on responses served from the cache.
const HeaderCache = "X-Ghi-Cache"

// authParams are query parameters excluded from cache keys.
var authParams = []string{"login", "token"}

// Transport is an http.RoundTripper that revalidates GET responses against the store.
// Other methods pass through untouched.
type Transport struct {
	Base   http.RoundTripper
	Store  *Store
	Logger *slog.Logger
	Now    func() time.Time
}

// NewTransport wraps base with the cache in store.
func NewTransport(base http.RoundTripper, store *Store, logger *slog.Logger) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{Base: base, Store: store, Logger: logger, Now: time.Now}
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodGet {
		return t.Base.RoundTrip(req)
	}

	ctx := req.Context()
	key := Key(req.URL)
	entry, err := t.Store.Get(ctx, key)
	if err != nil {
		t.Logger.Warn("http cache lookup failed", "error", err)
		entry = nil
	}

	if entry != nil {
		req = req.Clone(ctx)
		if entry.ETag != "" {
			req.Header.Set("If-None-Match", entry.ETag)
		}
		if entry.LastModified != "" {
			req.Header.Set("If-Modified-Since", entry.LastModified)
		}
	}

	resp, err := t.Base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	switch {
	case resp.StatusCode == http.StatusNotModified && entry != nil:
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
		t.Logger.Debug("http cache hit", "url", key)
		return cachedResponse(req, resp, entry), nil

	case resp.StatusCode == http.StatusOK:
		etag := resp.Header.Get("ETag")
		lastModified := resp.Header.Get("Last-Modified")
		if etag == "" && lastModified == "" {
			if entry != nil {
				if err := t.Store.Delete(ctx, key); err != nil {
					t.Logger.Warn("http cache delete failed", "error", err)
				}
			}
			return resp, nil
		}
		body, err := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("read response body: %w", err)
		}
		resp.Body = io.NopCloser(bytes.NewReader(body))
		if err := t.Store.Put(ctx, &Entry{
			URL:          key,
			ETag:         etag,
			LastModified: lastModified,
			Body:         body,
			StoredAt:     t.Now(),
		}); err != nil {
			t.Logger.Warn("http cache store failed", "error", err)
		}
	}
	return resp, nil
}

// cachedResponse turns a 304 into a 200 carrying the stored body.
func cachedResponse(req *http.Request, notModified *http.Response, entry *Entry) *http.Response {
	header := notModified.Header.Clone()
	if header == nil {
		header = http.Header{}
	}
	header.Set(HeaderCache, "hit")
	header.Set("Content-Length", strconv.Itoa(len(entry.Body)))
	if header.Get("Content-Type") == "" {
		header.Set("Content-Type", "application/json")
	}
	return &http.Response{
		Status:        "200 OK",
		StatusCode:    http.StatusOK,
		Proto:         notModified.Proto,
		ProtoMajor:    notModified.ProtoMajor,
		ProtoMinor:    notModified.ProtoMinor,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(entry.Body)),
		ContentLength: int64(len(entry.Body)),
		Request:       req,
	}
}

// Key returns the cache key for u: the URL without credentials.
func Key(u *url.URL) string {
	k := *u
	k.User = nil
	q := k.Query()
	for _, p := range authParams {
		q.Del(p)
	}
	k.RawQuery = q.Encode()
	return k.String()
}
