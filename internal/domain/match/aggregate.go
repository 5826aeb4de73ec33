package match

import (
	"sort"
	"strings"
)

// Ordering sorts league groups in place.
type Ordering func(groups []LeagueGroup)

// Group discards invalid fixtures, groups the rest by league name and country,
// sorts each group's matches by kickoff and orders the groups with order.
func Group(fixtures []RawFixture, order Ordering) []LeagueGroup {
	groups := make([]LeagueGroup, 0)
	index := make(map[string]int)

	for _, item := range fixtures {
		if !item.Valid() {
			continue
		}

		league := groupLeagueOf(*item.League)
		key := league.Key()
		pos, ok := index[key]
		if !ok {
			pos = len(groups)
			index[key] = pos
			groups = append(groups, LeagueGroup{League: league})
		}
		groups[pos].Matches = append(groups[pos].Matches, Project(item))
	}

	for i := range groups {
		matches := groups[i].Matches
		sort.SliceStable(matches, func(a, b int) bool {
			return matches[a].Kickoff().Before(matches[b].Kickoff())
		})
	}

	if order != nil {
		order(groups)
	}
	return groups
}

// Project maps a valid RawFixture into its listing Match.
func Project(item RawFixture) Match {
	elapsed := 0
	if item.Fixture.Status.Elapsed != nil {
		elapsed = *item.Fixture.Status.Elapsed
	}

	venue := strings.TrimSpace(item.Fixture.Venue.Name)
	if venue == "" {
		venue = UnknownVenue
	}

	events := item.Events
	if events == nil {
		events = []Event{}
	}

	return Match{
		ID:      item.Fixture.ID,
		Status:  item.Fixture.Status.Short,
		Elapsed: elapsed,
		Venue:   venue,
		Date:    item.Fixture.Date,
		Teams: MatchTeams{
			Home: *item.Teams.Home,
			Away: *item.Teams.Away,
		},
		Score: MatchScore{
			Current:  item.Goals,
			Halftime: item.Score.Halftime,
			Fulltime: item.Score.Fulltime,
		},
		Events:    events,
		Timestamp: item.Kickoff().Unix(),
	}
}

func groupLeagueOf(l LeagueInfo) GroupLeague {
	country := strings.TrimSpace(l.Country)
	if country == "" {
		country = DefaultCountry
	}
	return GroupLeague{
		ID:      l.ID,
		Name:    l.Name,
		Country: country,
		Logo:    l.Logo,
		Flag:    l.Flag,
		Season:  l.Season,
	}
}

// FeaturedOrdering puts groups whose league id is in ids first, in ids order.
// Everything else follows by earliest kickoff, then league name, then grouping key.
func FeaturedOrdering(ids []int64) Ordering {
	rank := make(map[int64]int, len(ids))
	for i, id := range ids {
		if _, ok := rank[id]; !ok {
			rank[id] = i
		}
	}

	return func(groups []LeagueGroup) {
		sort.SliceStable(groups, func(i, j int) bool {
			left, right := groups[i], groups[j]
			lr, lok := rank[left.League.ID]
			rr, rok := rank[right.League.ID]
			if lok != rok {
				return lok
			}
			if lok && lr != rr {
				return lr < rr
			}

			lk, rk := left.EarliestKickoff(), right.EarliestKickoff()
			if !lk.Equal(rk) {
				return lk.Before(rk)
			}
			if left.League.Name != right.League.Name {
				return left.League.Name < right.League.Name
			}
			return left.League.Key() < right.League.Key()
		})
	}
}

// TopLeagueOrdering puts groups whose name|country key is in keys first, in keys order.
// Everything else follows alphabetically by league name, case-insensitive.
func TopLeagueOrdering(keys []string) Ordering {
	rank := make(map[string]int, len(keys))
	for i, key := range keys {
		key = strings.TrimSpace(key)
		if _, ok := rank[key]; !ok && key != "" {
			rank[key] = i
		}
	}

	return func(groups []LeagueGroup) {
		sort.SliceStable(groups, func(i, j int) bool {
			left, right := groups[i], groups[j]
			lr, lok := rank[left.League.Key()]
			rr, rok := rank[right.League.Key()]
			if lok != rok {
				return lok
			}
			if lok && lr != rr {
				return lr < rr
			}

			ln, rn := strings.ToLower(left.League.Name), strings.ToLower(right.League.Name)
			if ln != rn {
				return ln < rn
			}
			return left.League.Key() < right.League.Key()
		})
	}
}

// FilterGroups keeps groups whose league name and country contain the given
// substrings, case-insensitively. Empty filters match everything.
func FilterGroups(groups []LeagueGroup, league, country string) []LeagueGroup {
	league = strings.ToLower(strings.TrimSpace(league))
	country = strings.ToLower(strings.TrimSpace(country))
	if league == "" && country == "" {
		return groups
	}

	out := make([]LeagueGroup, 0, len(groups))
	for _, group := range groups {
		if league != "" && !strings.Contains(strings.ToLower(group.League.Name), league) {
			continue
		}
		if country != "" && !strings.Contains(strings.ToLower(group.League.Country), country) {
			continue
		}
		out = append(out, group)
	}
	return out
}
