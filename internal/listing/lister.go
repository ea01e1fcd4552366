package listing

import (
	"context"
	"sort"

	"github.com/backmassage/skylapse/internal/config"
	"github.com/backmassage/skylapse/internal/naming"
)

// List returns the identifiers a run should fetch, oldest first. Hyperlinks
// that do not parse, carry the wrong resolution tag, or fall outside the
// configured time window are dropped silently; duplicates keep their first
// occurrence. Of the survivors, only the chronologically newest
// cfg.MaxCount remain.
func List(ctx context.Context, src Source, cfg *config.Config) ([]naming.Identifier, error) {
	links, err := src.Links(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(links))
	var ids []naming.Identifier
	for _, href := range links {
		id, ok := naming.ParseIdentifier(cfg.SourceURL, href)
		if !ok {
			continue
		}
		if id.Resolution != cfg.Resolution {
			continue
		}
		if cfg.Window != nil && !cfg.Window.Contains(id.Minutes) {
			continue
		}
		if _, dup := seen[id.Name]; dup {
			continue
		}
		seen[id.Name] = struct{}{}
		ids = append(ids, id)
	}

	// Sort by the full chronological key, not time-of-day, so listings that
	// span midnight keep their true order.
	sort.SliceStable(ids, func(i, j int) bool {
		return naming.LessKey(ids[i].Key, ids[j].Key)
	})

	if len(ids) > cfg.MaxCount {
		ids = ids[len(ids)-cfg.MaxCount:]
	}
	return ids, nil
}
