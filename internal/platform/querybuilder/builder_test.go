package querybuilder

import (
	"testing"
	"time"
)

func TestSelectBuilderRange(t *testing.T) {
	t.Parallel()

	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)
	query, args, err := Select("*").
		From("fixtures").
		Where(Gte("kickoff_at", from), Lt("kickoff_at", to)).
		OrderBy("kickoff_at", "fixture_id").
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT * FROM fixtures WHERE kickoff_at >= $1 AND kickoff_at < $2 ORDER BY kickoff_at, fixture_id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != from || args[1] != to {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilderEqAndLimit(t *testing.T) {
	t.Parallel()

	query, args, err := Select("league_id", "name").
		From("leagues").
		Where(Eq("league_id", int64(39))).
		Limit(1).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT league_id, name FROM leagues WHERE league_id = $1 LIMIT 1"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != int64(39) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilderRequiresTable(t *testing.T) {
	t.Parallel()

	if _, _, err := Select("*").ToSQL(); err == nil {
		t.Fatalf("expected error for missing table")
	}
}

func TestInsertModel(t *testing.T) {
	t.Parallel()

	type row struct {
		LeagueID int64  `db:"league_id"`
		Name     string `db:"name"`
		Ignored  string `db:"-"`
		internal string
	}

	query, args, err := InsertModel("leagues", row{LeagueID: 39, Name: "Premier League", internal: "x"}, "ON CONFLICT (league_id) DO NOTHING")
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO leagues (league_id, name) VALUES ($1, $2) ON CONFLICT (league_id) DO NOTHING"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != int64(39) || args[1] != "Premier League" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilderRowWidthMismatch(t *testing.T) {
	t.Parallel()

	_, _, err := InsertInto("leagues").Columns("league_id", "name").Values(int64(39)).ToSQL()
	if err == nil {
		t.Fatalf("expected error for short row")
	}
}

func TestInsertModelsBatch(t *testing.T) {
	t.Parallel()

	type row struct {
		FixtureID int64  `db:"fixture_id"`
		Status    string `db:"status_short,omitempty"`
	}

	query, args, err := InsertModels("fixtures", []row{
		{FixtureID: 1, Status: "FT"},
		{FixtureID: 2, Status: "AET"},
	}, "")
	if err != nil {
		t.Fatalf("build batch insert query: %v", err)
	}

	wantQuery := "INSERT INTO fixtures (fixture_id, status_short) VALUES ($1, $2), ($3, $4)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 || args[2] != int64(2) || args[3] != "AET" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModelsRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	type a struct {
		ID int64 `db:"id"`
	}
	type b struct {
		ID int64 `db:"id"`
	}
	type untagged struct {
		ID int64
	}

	cases := map[string]func() error{
		"empty": func() error {
			_, _, err := InsertModels[a]("t", nil, "")
			return err
		},
		"nil pointer": func() error {
			var m *a
			_, _, err := InsertModel("t", m, "")
			return err
		},
		"not a struct": func() error {
			_, _, err := InsertModel("t", 42, "")
			return err
		},
		"mixed types": func() error {
			_, _, err := InsertModels("t", []any{a{ID: 1}, b{ID: 2}}, "")
			return err
		},
		"no columns": func() error {
			_, _, err := InsertModel("t", untagged{ID: 1}, "")
			return err
		},
	}
	for name, run := range cases {
		if err := run(); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}
