package reporters

import (
	"github.com/reaandrew/keywordsearch/core"
)

func marcoPoloResults() core.SearchResults {
	results := core.NewSearchResults([]string{"Marco", "Polo", "Venice"})
	results.Extend(core.FileResult{Path: "b.txt", Matches: map[string][]string{"Marco": {"b.txt"}, "Polo": {"b.txt"}, "Venice": {}}})
	results.Extend(core.FileResult{Path: "a.txt", Matches: map[string][]string{"Marco": {"a.txt"}, "Polo": {}, "Venice": {}}})
	return results
}
