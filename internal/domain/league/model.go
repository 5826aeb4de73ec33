package league

import "fmt"

// League is an archived competition keyed by the provider's league id.
type League struct {
	LeagueID int64
	Name     string
	Country  string
	Logo     string
	Flag     string
	Season   int
}

func (l League) Validate() error {
	if l.LeagueID <= 0 {
		return fmt.Errorf("league id must be greater than zero")
	}
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}
	return nil
}
