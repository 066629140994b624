// Package store keeps a local catalogue of poems in SQLite, keyed by numeric
// id and locale.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/f3rmion/zitie/internal/poem"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when no poem matches an id and locale.
var ErrNotFound = errors.New("poem not found")

const schema = `
CREATE TABLE IF NOT EXISTS poems (
	id             INTEGER NOT NULL,
	locale         TEXT    NOT NULL,
	title          TEXT    NOT NULL,
	title_pinyin   TEXT    NOT NULL DEFAULT '',
	author_name    TEXT    NOT NULL,
	author_dynasty TEXT    NOT NULL DEFAULT '',
	author_pinyin  TEXT    NOT NULL DEFAULT '',
	content        TEXT    NOT NULL,
	content_pinyin TEXT    NOT NULL DEFAULT '',
	translation    TEXT    NOT NULL DEFAULT '',
	PRIMARY KEY (id, locale)
);
`

// Store is a poem catalogue backed by a SQLite database.
type Store struct {
	db *sql.DB
}

// Summary is a catalogue listing entry.
type Summary struct {
	ID     int64
	Locale string
	Title  string
	Author string
}

// Open opens (creating if needed) the database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put inserts or replaces a poem. A record without a locale is stored under
// poem.DefaultLocale.
func (s *Store) Put(ctx context.Context, rec poem.Record) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO poems (id, locale, title, title_pinyin, author_name, author_dynasty,
			author_pinyin, content, content_pinyin, translation)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id, locale) DO UPDATE SET
			title = excluded.title,
			title_pinyin = excluded.title_pinyin,
			author_name = excluded.author_name,
			author_dynasty = excluded.author_dynasty,
			author_pinyin = excluded.author_pinyin,
			content = excluded.content,
			content_pinyin = excluded.content_pinyin,
			translation = excluded.translation`,
		rec.ID, rec.LocaleOrDefault(), rec.Title, rec.TitlePinYin,
		rec.Author.Name, rec.Author.Dynasty, rec.Author.NamePinYin,
		rec.Content, rec.ContentPinYin, rec.Translation,
	)
	if err != nil {
		return fmt.Errorf("saving poem %d: %w", rec.ID, err)
	}
	return nil
}

// Get returns the poem with the given id and locale. An empty locale means
// poem.DefaultLocale.
func (s *Store) Get(ctx context.Context, id int64, locale string) (poem.Record, error) {
	if locale == "" {
		locale = poem.DefaultLocale
	}

	rec := poem.Record{ID: id, Locale: locale}
	err := s.db.QueryRowContext(ctx, `
		SELECT title, title_pinyin, author_name, author_dynasty, author_pinyin,
			content, content_pinyin, translation
		FROM poems WHERE id = ? AND locale = ?`, id, locale,
	).Scan(
		&rec.Title, &rec.TitlePinYin, &rec.Author.Name, &rec.Author.Dynasty,
		&rec.Author.NamePinYin, &rec.Content, &rec.ContentPinYin, &rec.Translation,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return poem.Record{}, fmt.Errorf("%w: id %d, locale %s", ErrNotFound, id, locale)
	}
	if err != nil {
		return poem.Record{}, fmt.Errorf("loading poem %d: %w", id, err)
	}
	return rec, nil
}

// List returns the poems of a locale ordered by id. An empty locale lists
// every locale.
func (s *Store) List(ctx context.Context, locale string) ([]Summary, error) {
	query := `SELECT id, locale, title, author_dynasty, author_name FROM poems`
	var args []any
	if locale != "" {
		query += ` WHERE locale = ?`
		args = append(args, locale)
	}
	query += ` ORDER BY id, locale`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing poems: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var sum Summary
		var author poem.Author
		if err := rows.Scan(&sum.ID, &sum.Locale, &sum.Title, &author.Dynasty, &author.Name); err != nil {
			return nil, fmt.Errorf("scanning poem: %w", err)
		}
		sum.Author = poem.Record{Author: author}.AuthorLine()
		out = append(out, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing poems: %w", err)
	}
	return out, nil
}

// Delete removes a poem. Deleting a missing poem returns ErrNotFound.
func (s *Store) Delete(ctx context.Context, id int64, locale string) error {
	if locale == "" {
		locale = poem.DefaultLocale
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM poems WHERE id = ? AND locale = ?`, id, locale)
	if err != nil {
		return fmt.Errorf("deleting poem %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting poem %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: id %d, locale %s", ErrNotFound, id, locale)
	}
	return nil
}

// NextID returns one past the largest stored id.
func (s *Store) NextID(ctx context.Context) (int64, error) {
	var maxID sql.NullInt64
	if err := s.db.QueryRowContext(ctx, `SELECT MAX(id) FROM poems`).Scan(&maxID); err != nil {
		return 0, fmt.Errorf("reading max id: %w", err)
	}
	return maxID.Int64 + 1, nil
}
