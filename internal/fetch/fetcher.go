package fetch

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/draw"
	"io"
	"net/http"

	// Frame sources serve JPEG; PNG shows up on some mirrors.
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/sync/errgroup"

	"github.com/backmassage/skylapse/internal/config"
	"github.com/backmassage/skylapse/internal/naming"
)

// Result is one slot of the ordered fetch output. Exactly one of Image and
// Err is set. Index always equals the slot's position in the returned slice.
type Result struct {
	Index int
	ID    naming.Identifier
	Image *image.RGBA // nil when the fetch or decode failed
	Bytes int64       // compressed size as downloaded
	Err   error
}

// Summary aggregates a finished batch for end-of-run reporting.
type Summary struct {
	Requested int
	Succeeded int
	Failed    int
	Bytes     int64
}

// Logger is the minimal logging interface needed by Fetch. Defined here
// (rather than importing the logging package) so that fetch remains
// dependency-light and testable with a mock logger.
type Logger interface {
	Warn(string, ...interface{})
	Debug(string, ...interface{})
}

// Fetch retrieves and decodes every identifier, at most cfg.Workers at a
// time, and returns results in input order regardless of completion order.
// Per-task failures are absorbed: the slot records the error and the batch
// continues. Cancelling ctx stops work; slots whose task never ran carry
// the context error.
func Fetch(ctx context.Context, client *http.Client, cfg *config.Config, log Logger, ids []naming.Identifier) []Result {
	results := make([]Result, len(ids))
	if len(ids) == 0 {
		return results
	}
	if client == nil {
		client = http.DefaultClient
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			results[i] = fetchOne(gctx, client, cfg, id, i)
			if results[i].Err != nil {
				log.Warn("Frame %d/%d failed: %v", i+1, len(ids), results[i].Err)
			} else {
				log.Debug("Frame %d/%d ok: %s (%d bytes)", i+1, len(ids), id.Name, results[i].Bytes)
			}
			// A failed frame never aborts its siblings.
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// fetchOne downloads and decodes a single frame under its own deadline.
func fetchOne(ctx context.Context, client *http.Client, cfg *config.Config, id naming.Identifier, index int) Result {
	r := Result{Index: index, ID: id}

	// Cancelled before this task started: record and bail without touching
	// the network.
	if err := ctx.Err(); err != nil {
		r.Err = err
		return r
	}

	tctx, cancel := context.WithTimeout(ctx, cfg.FetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(tctx, http.MethodGet, id.URL, nil)
	if err != nil {
		r.Err = fmt.Errorf("fetch %s: %w", id.Name, err)
		return r
	}

	resp, err := client.Do(req)
	if err != nil {
		r.Err = fmt.Errorf("fetch %s: %w", id.Name, err)
		return r
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		r.Err = fmt.Errorf("fetch %s: http %d", id.Name, resp.StatusCode)
		return r
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		r.Err = fmt.Errorf("fetch %s: %w", id.Name, err)
		return r
	}
	r.Bytes = int64(len(body))

	img, err := decodeRGBA(body)
	if err != nil {
		r.Err = fmt.Errorf("decode %s: %w", id.Name, err)
		return r
	}
	r.Image = img
	return r
}

// decodeRGBA decodes the image bytes and normalizes to the fixed RGBA color
// model the encoder expects.
func decodeRGBA(data []byte) (*image.RGBA, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if rgba, ok := src.(*image.RGBA); ok {
		return rgba, nil
	}
	rgba := image.NewRGBA(image.Rect(0, 0, src.Bounds().Dx(), src.Bounds().Dy()))
	draw.Draw(rgba, rgba.Bounds(), src, src.Bounds().Min, draw.Src)
	return rgba, nil
}

// Summarize reduces a finished batch to its aggregate counters.
func Summarize(results []Result) Summary {
	s := Summary{Requested: len(results)}
	for _, r := range results {
		if r.Err != nil {
			s.Failed++
			continue
		}
		s.Succeeded++
		s.Bytes += r.Bytes
	}
	return s
}
