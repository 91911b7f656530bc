package collection

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/osse101/GachaTrip_Go/internal/domain"
)

// searchItems implements fuzzy.Source over collected items
type searchItems []domain.CollectionItem

func (s searchItems) String(i int) string {
	return s[i].Title + " " + s[i].County
}

func (s searchItems) Len() int {
	return len(s)
}

// Search fuzzy-matches query against item titles and counties, best match first.
// limit <= 0 returns every match.
func (s *Store) Search(query string, limit int) []domain.CollectionItem {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	source := searchItems(s.Items())
	matches := fuzzy.FindFrom(query, source)

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	results := make([]domain.CollectionItem, len(matches))
	for i, match := range matches {
		results[i] = source[match.Index]
	}
	return results
}
