// Package store persists card records in SQLite. The pipeline never deletes
// rows: extraction fills in or corrects columns on existing records, price
// jobs update the price columns, and every mutation bumps last_updated.
package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/guarzo/cardgap/internal/extract"
	"github.com/guarzo/cardgap/internal/model"
)

//go:embed schema.sql
var schema string

// Store wraps the cards table.
type Store struct {
	db *sql.DB
}

// Open opens (and if needed initializes) the database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// modernc.org/sqlite is happiest with a single writer.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// Insert stores a new fully-extracted card and fills in its ID and
// timestamps.
func (s *Store) Insert(ctx context.Context, c *model.Card) error {
	now := time.Now().UTC()
	c.CreatedAt = now
	c.LastUpdated = now

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO cards (
			title, summary_title, player_name, year, brand, card_set,
			card_type, card_number, print_run, is_rookie, is_autograph,
			needs_review, sport, psa10_price, psa9_average_price,
			raw_average_price, multiplier, sold_date, condition, item_url,
			created_at, last_updated
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.Title, nullString(c.SummaryTitle), nullString(c.PlayerName),
		nullString(c.Year), nullString(c.Brand), nullString(c.CardSet),
		nullString(c.CardType), nullString(c.CardNumber), nullString(c.PrintRun),
		c.IsRookie, c.IsAutograph, c.NeedsReview, nullString(c.Sport),
		c.PSA10Price, c.PSA9Average, c.RawAverage, c.Multiplier,
		nullString(c.SoldDate), nullString(c.Condition), nullString(c.ItemURL),
		c.CreatedAt, c.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("insert card: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert card id: %w", err)
	}
	c.ID = id
	return nil
}

// UpdateFields applies a partial patch to one card without disturbing the
// untouched columns. An empty patch is a no-op.
func (s *Store) UpdateFields(ctx context.Context, id int64, p model.Patch) error {
	if p.IsEmpty() {
		return nil
	}

	var sets []string
	var args []interface{}
	add := func(col string, v interface{}) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}

	if p.SummaryTitle != nil {
		add("summary_title", nullString(*p.SummaryTitle))
	}
	if p.PlayerName != nil {
		add("player_name", nullString(*p.PlayerName))
	}
	if p.Year != nil {
		add("year", nullString(*p.Year))
	}
	if p.Brand != nil {
		add("brand", nullString(*p.Brand))
	}
	if p.CardSet != nil {
		add("card_set", nullString(*p.CardSet))
	}
	if p.CardType != nil {
		add("card_type", nullString(*p.CardType))
	}
	if p.CardNumber != nil {
		add("card_number", nullString(*p.CardNumber))
	}
	if p.PrintRun != nil {
		add("print_run", nullString(*p.PrintRun))
	}
	if p.IsRookie != nil {
		add("is_rookie", *p.IsRookie)
	}
	if p.IsAutograph != nil {
		add("is_autograph", *p.IsAutograph)
	}
	if p.NeedsReview != nil {
		add("needs_review", *p.NeedsReview)
	}
	if p.Sport != nil {
		add("sport", nullString(*p.Sport))
	}
	add("last_updated", time.Now().UTC())

	args = append(args, id)
	query := "UPDATE cards SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update card %d: %w", id, err)
	}
	return nil
}

// UpdatePrices writes the price columns and recomputes the multiplier,
// which is defined only when both psa10 and raw are positive.
func (s *Store) UpdatePrices(ctx context.Context, id int64, psa10, psa9, raw *float64) error {
	mult := extract.Multiplier(psa10, raw)
	_, err := s.db.ExecContext(ctx, `
		UPDATE cards
		SET psa10_price = ?, psa9_average_price = ?, raw_average_price = ?,
		    multiplier = ?, last_updated = ?
		WHERE id = ?`,
		psa10, psa9, raw, mult, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("update prices for card %d: %w", id, err)
	}
	return nil
}

const cardColumns = `
	id, title, summary_title, player_name, year, brand, card_set,
	card_type, card_number, print_run, is_rookie, is_autograph,
	needs_review, sport, psa10_price, psa9_average_price,
	raw_average_price, multiplier, sold_date, condition, item_url,
	created_at, last_updated`

// All returns every stored card, oldest first.
func (s *Store) All(ctx context.Context) ([]model.Card, error) {
	return s.query(ctx, "SELECT "+cardColumns+" FROM cards ORDER BY id")
}

// BySport returns every card classified under one sport, oldest first.
func (s *Store) BySport(ctx context.Context, sport string) ([]model.Card, error) {
	return s.query(ctx,
		"SELECT "+cardColumns+" FROM cards WHERE sport = ? ORDER BY id", sport)
}

// NeedingSport returns cards whose sport is null or still the Unknown
// sentinel; both mean detection should run (again).
func (s *Store) NeedingSport(ctx context.Context) ([]model.Card, error) {
	return s.query(ctx,
		"SELECT "+cardColumns+" FROM cards WHERE sport IS NULL OR sport = ? ORDER BY id",
		model.SportUnknown)
}

// AllTitles returns every stored raw title; the learning step's corpus.
func (s *Store) AllTitles(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT title FROM cards ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query titles: %w", err)
	}
	defer rows.Close()

	var titles []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("scan title: %w", err)
		}
		titles = append(titles, t)
	}
	return titles, rows.Err()
}

// HasTitle reports whether a raw title is already stored, so a scan does
// not insert the same sold listing twice.
func (s *Store) HasTitle(ctx context.Context, title string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM cards WHERE title = ?", title).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check title: %w", err)
	}
	return n > 0, nil
}

func (s *Store) query(ctx context.Context, q string, args ...interface{}) ([]model.Card, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query cards: %w", err)
	}
	defer rows.Close()

	var cards []model.Card
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, rows.Err()
}

func scanCard(rows *sql.Rows) (model.Card, error) {
	var c model.Card
	var summary, player, year, brand, set, ctype, num, run sql.NullString
	var sport, soldDate, condition, itemURL sql.NullString
	var psa10, psa9, raw, mult sql.NullFloat64

	err := rows.Scan(
		&c.ID, &c.Title, &summary, &player, &year, &brand, &set,
		&ctype, &num, &run, &c.IsRookie, &c.IsAutograph,
		&c.NeedsReview, &sport, &psa10, &psa9, &raw, &mult,
		&soldDate, &condition, &itemURL, &c.CreatedAt, &c.LastUpdated,
	)
	if err != nil {
		return c, fmt.Errorf("scan card: %w", err)
	}

	c.SummaryTitle = summary.String
	c.PlayerName = player.String
	c.Year = year.String
	c.Brand = brand.String
	c.CardSet = set.String
	c.CardType = ctype.String
	c.CardNumber = num.String
	c.PrintRun = run.String
	c.Sport = sport.String
	c.SoldDate = soldDate.String
	c.Condition = condition.String
	c.ItemURL = itemURL.String
	c.PSA10Price = nullableFloat(psa10)
	c.PSA9Average = nullableFloat(psa9)
	c.RawAverage = nullableFloat(raw)
	c.Multiplier = nullableFloat(mult)
	return c, nil
}

func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func nullableFloat(f sql.NullFloat64) *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Float64
	return &v
}
