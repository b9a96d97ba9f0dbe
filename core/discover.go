package core

import (
	"sort"
	"strings"

	"github.com/toplistapp/toplist-server/cmd/models"
)

// DefaultMinMatches is the discovery threshold when the caller names none.
const DefaultMinMatches = 3

// DiscoverMatches finds every other user sharing at least minMatches media
// items with the subject, where sharing means case-insensitive exact title
// equality. SharedItems carry the other user's entries so their framing of
// each shared title can be shown. Results are ordered by match count
// descending; ties keep user iteration order.
//
// A subject with no items has an empty title set and matches nobody at the
// default threshold. A threshold of zero deliberately matches every other
// user, empty overlap included.
func (c *Core) DiscoverMatches(userID uint, minMatches int) ([]models.MatchedUser, error) {
	if minMatches < 0 {
		minMatches = 0
	}

	own, err := c.store.MediaItemsByUser(userID)
	if err != nil {
		return nil, err
	}
	titles := make(map[string]struct{})
	for _, item := range own {
		titles[strings.ToLower(item.Title)] = struct{}{}
	}

	others, err := c.store.AllUsers()
	if err != nil {
		return nil, err
	}
	results := []models.MatchedUser{}
	for _, other := range others {
		if other.ID == userID {
			continue
		}
		items, err := c.store.MediaItemsByUser(other.ID)
		if err != nil {
			return nil, err
		}
		shared := []models.MediaItem{}
		for _, item := range items {
			if _, ok := titles[strings.ToLower(item.Title)]; ok {
				shared = append(shared, *item)
			}
		}
		if len(shared) >= minMatches {
			results = append(results, models.MatchedUser{
				User:        *other,
				MatchCount:  len(shared),
				SharedItems: shared,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchCount > results[j].MatchCount
	})
	return results, nil
}
