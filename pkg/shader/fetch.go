package shader

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/sync/errgroup"
)

// CacheBustParam is the query parameter Fetch sets to a random value so
// browsers and proxies never serve a stale shader.
const CacheBustParam = "dc"

// StatusError reports a shader request answered with a non-2xx status.
type StatusError struct {
	URL    string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request status %d invalid for loading file: %s", e.Status, e.URL)
}

// Fetch downloads the vertex and fragment shader sources concurrently. The
// first failure cancels the other request.
func Fetch(ctx context.Context, client *http.Client, vertexURL, fragmentURL string) (Sources, error) {
	if client == nil {
		client = http.DefaultClient
	}
	var src Sources
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		body, err := fetchText(ctx, client, vertexURL)
		if err != nil {
			return fmt.Errorf("loading %v shader: %w", Vertex, err)
		}
		src.Vertex = body
		return nil
	})
	g.Go(func() error {
		body, err := fetchText(ctx, client, fragmentURL)
		if err != nil {
			return fmt.Errorf("loading %v shader: %w", Fragment, err)
		}
		src.Fragment = body
		return nil
	})
	if err := g.Wait(); err != nil {
		return Sources{}, err
	}
	return src, nil
}

func fetchText(ctx context.Context, client *http.Client, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set(CacheBustParam, strconv.FormatFloat(rand.Float64(), 'f', -1, 64))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", err
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{URL: rawURL, Status: resp.StatusCode}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
