package store

import (
	"database/sql"
	"fmt"
)

// MergeConfig configures the merge operation.
type MergeConfig struct {
	// SourcePaths are the database files to merge from.
	SourcePaths []string
	// DestPath is the destination database file.
	DestPath string
}

// MergeStats tracks merge operation statistics.
type MergeStats struct {
	AnswersMerged    int
	SourcesProcessed int
}

// Merge combines multiple answer datastores into one.
// Answer IDs are derived from (day, part, sample, value), so INSERT OR IGNORE
// on the primary key deduplicates the same result recorded in several files.
func Merge(cfg MergeConfig) (*MergeStats, error) {
	if len(cfg.SourcePaths) == 0 {
		return nil, fmt.Errorf("no source databases specified")
	}
	if cfg.DestPath == "" {
		return nil, fmt.Errorf("destination path is required")
	}

	destDB, err := sql.Open(driverName, cfg.DestPath)
	if err != nil {
		return nil, fmt.Errorf("opening destination database: %w", err)
	}
	defer destDB.Close()

	if err := CreateSchema(destDB); err != nil {
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	stats := &MergeStats{}

	for _, sourcePath := range cfg.SourcePaths {
		merged, err := mergeFrom(destDB, sourcePath)
		if err != nil {
			return stats, fmt.Errorf("merging from %s: %w", sourcePath, err)
		}
		stats.AnswersMerged += merged
		stats.SourcesProcessed++
	}

	return stats, nil
}

// mergeFrom copies answers from a source database to the destination.
func mergeFrom(destDB *sql.DB, sourcePath string) (int, error) {
	sourceDB, err := sql.Open(driverName, sourcePath)
	if err != nil {
		return 0, fmt.Errorf("opening source database: %w", err)
	}
	defer sourceDB.Close()

	tx, err := destDB.Begin()
	if err != nil {
		return 0, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	count, err := mergeAnswers(tx, sourceDB)
	if err != nil {
		return 0, fmt.Errorf("merging answers: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing transaction: %w", err)
	}

	return count, nil
}

func mergeAnswers(tx *sql.Tx, sourceDB *sql.DB) (int, error) {
	rows, err := sourceDB.Query("SELECT " + answerColumns + " FROM answers")
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	stmt, err := tx.Prepare(`
		INSERT OR IGNORE INTO answers (` + answerColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	count := 0
	for rows.Next() {
		var id, check, solvedAt string
		var day, part int
		var value, sample, elapsed int64
		var want sql.NullInt64

		if err := rows.Scan(&id, &day, &part, &value, &sample, &want, &check, &elapsed, &solvedAt); err != nil {
			return count, err
		}
		result, err := stmt.Exec(id, day, part, value, sample, want, check, elapsed, solvedAt)
		if err != nil {
			return count, err
		}
		affected, _ := result.RowsAffected()
		if affected > 0 {
			count++
		}
	}
	return count, rows.Err()
}
