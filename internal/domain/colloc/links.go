package colloc

import (
	"log"

	"github.com/corey/termo/internal/ports"
)

// LinkReport summarizes a consistency pass over candidate
// cross-references.
type LinkReport struct {
	// Consistent is true when every id referenced from LinkedIDs resolves
	// to a candidate in the list.
	Consistent bool
	// AnyLinks is true when at least one candidate carries links.
	AnyLinks bool
	// Broken lists (candidate id, dangling linked id) pairs.
	Broken [][2]int
}

// CheckLinks verifies that every LinkedIDs entry in the list resolves to
// another candidate of the same list. Purely diagnostic: nothing is
// repaired or removed.
func CheckLinks(candidates []ports.Collocation) LinkReport {
	byID := make(map[int]struct{}, len(candidates))
	for _, c := range candidates {
		byID[c.ID] = struct{}{}
	}

	report := LinkReport{Consistent: true}
	for _, c := range candidates {
		if len(c.LinkedIDs) == 0 {
			continue
		}
		report.AnyLinks = true
		for _, linked := range c.LinkedIDs {
			if _, ok := byID[linked]; !ok {
				report.Consistent = false
				report.Broken = append(report.Broken, [2]int{c.ID, linked})
			}
		}
	}
	return report
}

// FindByID looks a candidate up by id with a linear scan. On a miss it
// runs CheckLinks and logs whether the link graph is internally
// consistent — a missing id usually means a broken cross-reference
// somewhere upstream, and the log line is the breadcrumb. The lookup's
// return value is never affected by that pass.
func FindByID(candidates []ports.Collocation, id int) (*ports.Collocation, bool) {
	for i := range candidates {
		if candidates[i].ID == id {
			return &candidates[i], true
		}
	}

	report := CheckLinks(candidates)
	log.Printf("candidate #%d not found; link graph consistent: %v, any links present: %v",
		id, report.Consistent, report.AnyLinks)
	return nil, false
}
