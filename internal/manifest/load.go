package manifest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// fetchTimeout bounds a manifest fetch. One attempt only; retry policy
	// belongs to the downloader that consumes the selected asset, not here.
	fetchTimeout = 30 * time.Second

	userAgent = "relpick/1.0"
)

// FromURL fetches and decodes a manifest over HTTP(S). The format is picked
// from the URL path extension, the same way ParseFile picks it.
func FromURL(ctx context.Context, rawURL string) (*Manifest, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch manifest %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch manifest %s: unexpected status code: %d", rawURL, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read manifest body: %w", err)
	}

	return parseByExt(urlPath(rawURL), body)
}

// Load resolves a manifest source string: file:// URLs and plain paths are
// read from disk, http:// and https:// URLs are fetched.
func Load(ctx context.Context, source string) (*Manifest, error) {
	if path, ok := strings.CutPrefix(source, "file://"); ok {
		return ParseFile(path)
	}
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return FromURL(ctx, source)
	}
	return ParseFile(source)
}

func urlPath(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return u.Path
}
