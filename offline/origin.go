package offline

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Response is a cached origin response.
type Response struct {
	Header http.Header `json:"header"`
	Body   []byte      `json:"body"`
	Status int         `json:"status"`
}

// OK reports whether the response has a 2xx status.
func (r *Response) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// Fetcher retrieves assets from an origin. A non-2xx response is returned
// as a Response, not an error; errors mean the origin could not be reached.
type Fetcher interface {
	Fetch(ctx context.Context, path string) (*Response, error)
}

// HTTPOrigin fetches assets from a remote base URL.
type HTTPOrigin struct {
	client *http.Client
	base   *url.URL
}

// NewHTTPOrigin returns an origin rooted at base.
func NewHTTPOrigin(base string) (*HTTPOrigin, error) {
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errInvalidOrigin.Fmt(base)
	}

	return &HTTPOrigin{
		base: u,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

func (o *HTTPOrigin) Fetch(ctx context.Context, path string) (*Response, error) {
	ref, err := url.Parse(strings.TrimPrefix(path, "/"))
	if err != nil {
		return nil, err
	}

	base := *o.base
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base.ResolveReference(ref).String(), http.NoBody)
	if err != nil {
		return nil, err
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	header := http.Header{}

	for _, k := range []string{"Content-Type", "Last-Modified", "Etag"} {
		if v := resp.Header.Get(k); v != "" {
			header.Set(k, v)
		}
	}

	return &Response{
		Status: resp.StatusCode,
		Header: header,
		Body:   body,
	}, nil
}
