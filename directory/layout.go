// ABOUTME: Groups contacts into team sections and three-wide display rows
// ABOUTME: Pinned teams lead, the rest follow in first-seen order
package directory

import "github.com/harperreed/photodir/models"

// Layout partitions the directory into display groups.
//
// Contacts are bucketed by team in directory order. Teams named in pinned come
// first, in pinned order and only if present; every other team follows in the
// order it was first seen. Each bucket is cut into groups of at most
// models.GroupSize, so no group spans two teams.
func Layout(dir *models.Directory, pinned []string) []models.DisplayGroup {
	if dir == nil || dir.Len() == 0 {
		return nil
	}

	buckets := make(map[string][]models.ContactRecord)
	var seen []string
	for _, rec := range dir.Records() {
		if _, ok := buckets[rec.Team]; !ok {
			seen = append(seen, rec.Team)
		}
		buckets[rec.Team] = append(buckets[rec.Team], rec)
	}

	var groups []models.DisplayGroup
	for _, team := range TeamOrder(seen, pinned) {
		groups = append(groups, chunk(team, buckets[team])...)
	}
	return groups
}

// TeamOrder orders the encountered teams with the pinned ones moved to the front.
func TeamOrder(encountered, pinned []string) []string {
	present := make(map[string]bool, len(encountered))
	for _, t := range encountered {
		present[t] = true
	}

	order := make([]string, 0, len(encountered))
	placed := make(map[string]bool, len(pinned))
	for _, p := range pinned {
		if present[p] && !placed[p] {
			order = append(order, p)
			placed[p] = true
		}
	}
	for _, t := range encountered {
		if !placed[t] {
			order = append(order, t)
			placed[t] = true
		}
	}
	return order
}

func chunk(team string, members []models.ContactRecord) []models.DisplayGroup {
	groups := make([]models.DisplayGroup, 0, (len(members)+models.GroupSize-1)/models.GroupSize)
	for start := 0; start < len(members); start += models.GroupSize {
		end := min(start+models.GroupSize, len(members))
		groups = append(groups, models.DisplayGroup{
			Team:    team,
			Members: members[start:end:end],
		})
	}
	return groups
}
