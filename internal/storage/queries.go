package storage

import (
	"database/sql"
	"fmt"

	"github.com/crickstats/crickstats/internal/model"
)

// DatasetExists returns true if a dataset with the given hash is already stored.
func (db *DB) DatasetExists(hash string) (bool, error) {
	var count int
	err := db.conn.QueryRow("SELECT COUNT(1) FROM datasets WHERE hash = ?", hash).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// InsertDataset inserts a dataset record. Uses INSERT OR REPLACE for idempotency.
func (db *DB) InsertDataset(s model.DatasetSummary) error {
	_, err := db.conn.Exec(`
		INSERT OR REPLACE INTO datasets(hash, source_name, loaded_at, deliveries, matches, batsmen, bowlers, clamped, dropped)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.Hash, s.SourceName, s.LoadedAt, s.Deliveries,
		s.Matches, s.Batsmen, s.Bowlers, s.Clamped, s.Dropped,
	)
	return err
}

// InsertDeliveries bulk-inserts reconstructed deliveries in a transaction.
func (db *DB) InsertDeliveries(hash string, deliveries []model.Delivery) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO deliveries(
			dataset_hash, seq, match_id, innings, over_number, ball_in_over, phase,
			batsman, bowler, batting_team, bowling_team, batting_hand, style,
			ground, home_away, season, match_date,
			cum_batsman_runs, has_cum_runs, cum_batsman_balls,
			cum_bowler_runs, cum_bowler_overs, cum_wickets,
			wicket_kind, runs_this_ball, is_dot, is_four, is_six
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for seq, d := range deliveries {
		_, err = stmt.Exec(
			hash, seq, d.MatchID, d.Innings, d.OverNumber, d.BallInOver, int(d.Phase),
			d.Batsman, d.Bowler, d.BattingTeam, d.BowlingTeam, string(d.BattingHand), int(d.Style),
			d.Ground, string(d.HomeAway), d.Season, d.Date,
			d.CumBatsmanRuns, boolInt(d.HasCumRuns), d.CumBatsmanBalls,
			d.CumBowlerRuns, d.CumBowlerOvers, d.CumWickets,
			d.WicketKind, d.RunsThisBall, boolInt(d.IsDot), boolInt(d.IsFour), boolInt(d.IsSix),
		)
		if err != nil {
			return fmt.Errorf("insert delivery %s %d.%d: %w", d.MatchID, d.OverNumber, d.BallInOver, err)
		}
	}
	return tx.Commit()
}

// LoadDeliveries returns all deliveries for a dataset hash in source order.
func (db *DB) LoadDeliveries(hash string) ([]model.Delivery, error) {
	rows, err := db.conn.Query(`
		SELECT match_id, innings, over_number, ball_in_over, phase,
		       batsman, bowler, batting_team, bowling_team, batting_hand, style,
		       ground, home_away, season, match_date,
		       cum_batsman_runs, has_cum_runs, cum_batsman_balls,
		       cum_bowler_runs, cum_bowler_overs, cum_wickets,
		       wicket_kind, runs_this_ball, is_dot, is_four, is_six
		FROM deliveries WHERE dataset_hash = ?
		ORDER BY seq`, hash)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Delivery
	for rows.Next() {
		var d model.Delivery
		var phase, style, hasCum, isDot, isFour, isSix int
		var hand, homeAway string
		if err := rows.Scan(
			&d.MatchID, &d.Innings, &d.OverNumber, &d.BallInOver, &phase,
			&d.Batsman, &d.Bowler, &d.BattingTeam, &d.BowlingTeam, &hand, &style,
			&d.Ground, &homeAway, &d.Season, &d.Date,
			&d.CumBatsmanRuns, &hasCum, &d.CumBatsmanBalls,
			&d.CumBowlerRuns, &d.CumBowlerOvers, &d.CumWickets,
			&d.WicketKind, &d.RunsThisBall, &isDot, &isFour, &isSix); err != nil {
			return nil, err
		}
		d.Phase = model.Phase(phase)
		d.Style = model.BowlingStyle(style)
		d.BattingHand = model.Hand(hand)
		d.HomeAway = model.VenueType(homeAway)
		d.HasCumRuns = hasCum != 0
		d.IsDot = isDot != 0
		d.IsFour = isFour != 0
		d.IsSix = isSix != 0
		out = append(out, d)
	}
	return out, rows.Err()
}

// ListDatasets returns all stored dataset summaries ordered by load time desc.
func (db *DB) ListDatasets() ([]model.DatasetSummary, error) {
	rows, err := db.conn.Query(`
		SELECT hash, source_name, loaded_at, deliveries, matches, batsmen, bowlers, clamped, dropped
		FROM datasets ORDER BY loaded_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.DatasetSummary
	for rows.Next() {
		var s model.DatasetSummary
		if err := rows.Scan(&s.Hash, &s.SourceName, &s.LoadedAt, &s.Deliveries,
			&s.Matches, &s.Batsmen, &s.Bowlers, &s.Clamped, &s.Dropped); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetDatasetByPrefix finds the first dataset whose hash starts with the given prefix.
func (db *DB) GetDatasetByPrefix(prefix string) (*model.DatasetSummary, error) {
	var s model.DatasetSummary
	err := db.conn.QueryRow(`
		SELECT hash, source_name, loaded_at, deliveries, matches, batsmen, bowlers, clamped, dropped
		FROM datasets WHERE hash LIKE ? LIMIT 1`, prefix+"%").
		Scan(&s.Hash, &s.SourceName, &s.LoadedAt, &s.Deliveries,
			&s.Matches, &s.Batsmen, &s.Bowlers, &s.Clamped, &s.Dropped)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// LatestDataset returns the most recently loaded dataset, or nil when the
// cache is empty.
func (db *DB) LatestDataset() (*model.DatasetSummary, error) {
	var s model.DatasetSummary
	err := db.conn.QueryRow(`
		SELECT hash, source_name, loaded_at, deliveries, matches, batsmen, bowlers, clamped, dropped
		FROM datasets ORDER BY loaded_at DESC LIMIT 1`).
		Scan(&s.Hash, &s.SourceName, &s.LoadedAt, &s.Deliveries,
			&s.Matches, &s.Batsmen, &s.Bowlers, &s.Clamped, &s.Dropped)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
