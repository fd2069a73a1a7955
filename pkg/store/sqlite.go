package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/aoc-go/aoc/pkg/types"
	_ "modernc.org/sqlite"
)

// driverName is the database/sql name registered by modernc.org/sqlite.
const driverName = "sqlite"

const answerColumns = "id, day, part, value, sample, want, check_status, elapsed_ns, solved_at"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite creates a SQLite-based store.
func NewSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Initialize schema
	if err := CreateSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// AddAnswer stores an answer (deduplicated by ID).
func (s *SQLiteStore) AddAnswer(a *types.Answer) error {
	var want sql.NullInt64
	if a.Want != nil {
		want = sql.NullInt64{Int64: *a.Want, Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT OR IGNORE INTO answers (`+answerColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		a.ID,
		a.Day,
		int(a.Part),
		a.Value,
		a.Sample,
		want,
		string(a.Check),
		int64(a.Elapsed),
		a.SolvedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting answer: %w", err)
	}

	return nil
}

// GetAnswers retrieves the answers recorded for one day.
func (s *SQLiteStore) GetAnswers(day int) ([]*types.Answer, error) {
	rows, err := s.db.Query(`
		SELECT `+answerColumns+`
		FROM answers
		WHERE day = ?
		ORDER BY part, sample DESC, solved_at
	`, day)
	if err != nil {
		return nil, fmt.Errorf("querying answers: %w", err)
	}
	defer rows.Close()

	return scanAnswers(rows)
}

// GetAllAnswers retrieves every recorded answer.
func (s *SQLiteStore) GetAllAnswers() ([]*types.Answer, error) {
	rows, err := s.db.Query(`
		SELECT ` + answerColumns + `
		FROM answers
		ORDER BY day, part, sample DESC, solved_at
	`)
	if err != nil {
		return nil, fmt.Errorf("querying answers: %w", err)
	}
	defer rows.Close()

	return scanAnswers(rows)
}

// AnswerExists checks if an answer with this ID has been recorded.
func (s *SQLiteStore) AnswerExists(id string) (bool, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM answers WHERE id = ?", id).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking answer existence: %w", err)
	}
	return count > 0, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func scanAnswers(rows *sql.Rows) ([]*types.Answer, error) {
	answers := []*types.Answer{}
	for rows.Next() {
		var a types.Answer
		var part int
		var want sql.NullInt64
		var check string
		var elapsed int64
		var solvedAt string

		err := rows.Scan(
			&a.ID,
			&a.Day,
			&part,
			&a.Value,
			&a.Sample,
			&want,
			&check,
			&elapsed,
			&solvedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning answer: %w", err)
		}

		a.Part = types.Part(part)
		a.Check = types.CheckStatus(check)
		a.Elapsed = time.Duration(elapsed)
		if want.Valid {
			w := want.Int64
			a.Want = &w
		}

		a.SolvedAt, err = time.Parse(time.RFC3339Nano, solvedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing solved_at for answer %s: %w", a.ID, err)
		}

		answers = append(answers, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating answers: %w", err)
	}

	return answers, nil
}
