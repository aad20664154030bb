package gitlog

import (
	"context"
	"iter"
	"strings"

	"github.com/gitpulse/gitpulse/schema"
)

// CollectRecords materializes the parser's sequence for aggregation,
// applying an optional case-insensitive substring filter on the author
// identity. Collection stops early when ctx is canceled, and the caller
// gets whatever was consumed up to that point.
func CollectRecords(ctx context.Context, records iter.Seq[schema.CommitRecord], authorFilter string) []schema.CommitRecord {
	needle := strings.ToLower(strings.TrimSpace(authorFilter))

	var out []schema.CommitRecord
	for rec := range records {
		if ctx.Err() != nil {
			break
		}
		if needle != "" && !strings.Contains(strings.ToLower(rec.Author), needle) {
			continue
		}
		out = append(out, rec)
	}
	return out
}
