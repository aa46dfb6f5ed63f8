// Package directory implements the alumni directory search: three
// independent predicates, AND-combined, over the live user collection.
package directory

import (
	"strconv"
	"strings"

	"tableflip.dev/reunion/pkg/alumni"
)

// All is the filter value meaning "no constraint". It is distinct from any
// real school name or year.
const All = "All"

// Older is the year-filter value matching graduation years before the fixed
// threshold.
const Older = "Older"

// olderThreshold is a literal policy value, not derived from the current
// year.
const olderThreshold = 2018

// Filter narrows users by free text, school, and graduation year. The result
// is an order-preserving subsequence of the input; empty is a valid result.
//
// Text matches case-insensitively against name or occupation. School matches
// exactly unless it is All. Year is All, Older (< 2018), or an exact year in
// string form.
func Filter(users []alumni.User, query, school, year string) []alumni.User {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]alumni.User, 0, len(users))
	for _, u := range users {
		if !matchesQuery(u, q) {
			continue
		}
		if school != All && u.School != school {
			continue
		}
		if !matchesYear(u, year) {
			continue
		}
		out = append(out, u)
	}
	return out
}

func matchesQuery(u alumni.User, q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(u.Name), q) ||
		strings.Contains(strings.ToLower(u.Occupation), q)
}

func matchesYear(u alumni.User, year string) bool {
	switch year {
	case All, "":
		return true
	case Older:
		return u.GraduationYear < olderThreshold
	default:
		return strconv.Itoa(u.GraduationYear) == year
	}
}

// Schools derives the school filter options from the live collection:
// All first, then each distinct school in first-seen order. The options
// change when the collection does.
func Schools(users []alumni.User) []string {
	out := []string{All}
	seen := make(map[string]bool, len(users))
	for _, u := range users {
		if seen[u.School] {
			continue
		}
		seen[u.School] = true
		out = append(out, u.School)
	}
	return out
}

// Years returns the static year filter options.
func Years() []string {
	return []string{All, "2025", "2024", "2023", "2022", "2021", "2020", "2019", "2018", Older}
}
