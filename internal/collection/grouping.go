package collection

import (
	"sort"

	"golang.org/x/text/collate"

	"github.com/osse101/GachaTrip_Go/internal/domain"
)

// GroupedByCounty returns the collection grouped by county, then by category.
// Counties are ordered by TotalLocations descending (stable on ties, first-collected first),
// categories by collation order, items by LastCollectedAt descending.
func (s *Store) GroupedByCounty() []domain.CountyData {
	var countyOrder []string
	byCounty := make(map[string]map[string][]domain.CollectionItem)

	for _, item := range s.items {
		cats, ok := byCounty[item.County]
		if !ok {
			cats = make(map[string][]domain.CollectionItem)
			byCounty[item.County] = cats
			countyOrder = append(countyOrder, item.County)
		}
		cats[item.Category] = append(cats[item.Category], *item)
	}

	col := collate.New(s.opts.Language)
	result := make([]domain.CountyData, 0, len(countyOrder))

	for _, county := range countyOrder {
		cats := byCounty[county]

		names := make([]string, 0, len(cats))
		for name := range cats {
			names = append(names, name)
		}
		sort.Slice(names, func(i, j int) bool {
			return col.CompareString(names[i], names[j]) < 0
		})

		data := domain.CountyData{
			County:     county,
			ShortName:  ShortName(county, s.opts.ShortNames),
			Categories: make([]domain.CategoryData, 0, len(names)),
		}
		for _, name := range names {
			items := cats[name]
			sort.SliceStable(items, func(i, j int) bool {
				return items[i].LastCollectedAt.After(items[j].LastCollectedAt)
			})
			data.Categories = append(data.Categories, domain.CategoryData{
				Name:  name,
				Items: items,
				Count: len(items),
			})
			data.TotalLocations += len(items)
		}
		result = append(result, data)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalLocations > result[j].TotalLocations
	})
	return result
}
