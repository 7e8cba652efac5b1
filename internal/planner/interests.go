package planner

import "strings"

// interestCategory pairs a keyword set with the clause it contributes to the
// hint sentence. Categories are independent; several may match at once.
type interestCategory struct {
	keywords []string
	clause   string
}

// Checked in fixed order so the hint sentence is deterministic.
var interestCategories = []interestCategory{
	{
		keywords: []string{"essen", "food", "kulinar", "restaurant"},
		clause:   "Fokus auf Essen und lokale Spezialitäten",
	},
	{
		keywords: []string{"kultur", "museum", "geschichte"},
		clause:   "viele kulturelle Programmpunkte und Museen",
	},
	{
		keywords: []string{"natur", "park", "wandern"},
		clause:   "Möglichkeit für Natur und Grünflächen",
	},
	{
		keywords: []string{"nachtleben", "bar", "club"},
		clause:   "Optionen für Bars und Nachtleben",
	},
}

// InterestHint derives a single focus sentence from free-text interests.
// Returns the empty string when the input is empty or no category matches.
func InterestHint(interests string) string {
	if interests == "" {
		return ""
	}

	lower := strings.ToLower(interests)
	var clauses []string

	for _, category := range interestCategories {
		for _, keyword := range category.keywords {
			if strings.Contains(lower, keyword) {
				clauses = append(clauses, category.clause)
				break
			}
		}
	}

	if len(clauses) == 0 {
		return ""
	}
	return "Schwerpunkt: " + strings.Join(clauses, ", ") + "."
}
