package dispatchers

import (
	"sort"
	"strings"

	"github.com/agext/levenshtein"
)

const maxSuggestionDistance = 2

type suggestion struct {
	name     string
	distance int
}

// distance is the case-insensitive edit distance between a and b.
func distance(a, b string) int {
	return levenshtein.Distance(strings.ToLower(a), strings.ToLower(b), nil)
}

// FindSimilarCommands returns up to maxResults names from cmds that are a
// short edit away from input, closest first. Hidden commands and exact
// matches are never suggested.
func FindSimilarCommands(input string, cmds []Command, maxResults int) []string {
	if input == "" || maxResults <= 0 {
		return nil
	}

	var suggestions []suggestion
	for _, cmd := range Visible(cmds) {
		best := -1
		for _, candidate := range append([]string{cmd.Name()}, cmd.Aliases()...) {
			d := distance(input, candidate)
			if best < 0 || d < best {
				best = d
			}
		}
		if best > 0 && best <= maxSuggestionDistance {
			suggestions = append(suggestions, suggestion{name: cmd.Name(), distance: best})
		}
	}

	// Sort by distance (ascending), then alphabetically for stability
	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].distance != suggestions[j].distance {
			return suggestions[i].distance < suggestions[j].distance
		}
		return suggestions[i].name < suggestions[j].name
	})

	if len(suggestions) > maxResults {
		suggestions = suggestions[:maxResults]
	}

	result := make([]string, len(suggestions))
	for i, s := range suggestions {
		result[i] = s.name
	}
	return result
}
