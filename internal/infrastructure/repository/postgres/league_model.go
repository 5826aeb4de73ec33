package postgres

import "time"

type leagueTableModel struct {
	ID        int64     `db:"id"`
	LeagueID  int64     `db:"league_id"`
	Name      string    `db:"name"`
	Country   string    `db:"country"`
	Logo      string    `db:"logo"`
	Flag      string    `db:"flag"`
	Season    int       `db:"season"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type leagueInsertModel struct {
	LeagueID int64  `db:"league_id"`
	Name     string `db:"name"`
	Country  string `db:"country"`
	Logo     string `db:"logo"`
	Flag     string `db:"flag"`
	Season   int    `db:"season"`
}
