package loop

import (
	"context"
	"strings"

	"github.com/vk/loopgridgo/internal/ctxlog"
)

// ParseSkipList splits a free-form, comma-separated user string into the set
// of names to exclude. Tokens are whitespace-trimmed, empty tokens are
// dropped, and matching is case-sensitive.
func ParseSkipList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var skip []string
	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token != "" {
			skip = append(skip, token)
		}
	}
	return skip
}

// Filter removes every name listed in skipRaw from names, preserving the
// original order. If the skip list would remove everything, the unfiltered
// list is returned instead: an empty categorical axis would collapse the
// whole combination space to size zero, which is never what a user who
// over-typed a skip list wants. The fallback is logged as a warning.
func Filter(ctx context.Context, names []string, skipRaw string) []string {
	skip := ParseSkipList(skipRaw)
	if len(skip) == 0 {
		return names
	}

	skipSet := make(map[string]struct{}, len(skip))
	for _, s := range skip {
		skipSet[s] = struct{}{}
	}

	var kept []string
	for _, name := range names {
		if _, skipped := skipSet[name]; !skipped {
			kept = append(kept, name)
		}
	}

	if len(kept) == 0 && len(names) > 0 {
		ctxlog.FromContext(ctx).Warn("Skip list removed every name, falling back to the unfiltered list.",
			"skip_count", len(skip), "available", len(names))
		return names
	}
	return kept
}
