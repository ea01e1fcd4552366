package listing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
)

// ErrListingUnavailable reports that the remote directory index could not
// be retrieved. It aborts the whole run; there is nothing to fall back to.
var ErrListingUnavailable = errors.New("directory listing unavailable")

// Source supplies raw hyperlink strings from a directory index. The HTTP
// implementation is the production source; tests substitute fakes.
type Source interface {
	Links(ctx context.Context) ([]string, error)
}

// HTTPSource retrieves the index page at url and extracts href values.
type HTTPSource struct {
	client *http.Client
	url    string
}

// NewHTTPSource creates a source for the given index URL. client may be nil,
// in which case http.DefaultClient is used.
func NewHTTPSource(client *http.Client, url string) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{client: client, url: url}
}

// reHref matches single- or double-quoted href attributes. The CDN index
// pages are plain autogenerated listings; a full HTML parser buys nothing
// over this for extracting link targets.
var reHref = regexp.MustCompile(`(?i)href\s*=\s*(?:"([^"]*)"|'([^']*)')`)

// Links performs the single read against the directory index. Transport
// errors and non-2xx statuses surface as [ErrListingUnavailable].
func (s *HTTPSource) Links(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrListingUnavailable, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrListingUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: http %d from %s", ErrListingUnavailable, resp.StatusCode, s.url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading index: %v", ErrListingUnavailable, err)
	}

	var links []string
	for _, m := range reHref.FindAllStringSubmatch(string(body), -1) {
		href := m[1]
		if href == "" {
			href = m[2]
		}
		if href != "" {
			links = append(links, href)
		}
	}
	return links, nil
}
