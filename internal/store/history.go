package store

import (
	"fmt"
	"time"
)

// AddHistory appends a sent draft and trims the table to max entries.
func (s *Store) AddHistory(content string, max int) error {
	now := time.Now().UTC()
	if _, err := s.db.Exec(`INSERT INTO history (content, created_at) VALUES (?, ?)`, content, now); err != nil {
		return fmt.Errorf("insert history: %w", err)
	}

	if max > 0 {
		_, err := s.db.Exec(`
			DELETE FROM history
			WHERE id NOT IN (SELECT id FROM history ORDER BY id DESC LIMIT ?)
		`, max)
		if err != nil {
			return fmt.Errorf("trim history: %w", err)
		}
	}
	return nil
}

// RecentHistory returns up to limit sent drafts, oldest first.
func (s *Store) RecentHistory(limit int) ([]string, error) {
	rows, err := s.db.Query(`
		SELECT content FROM (
			SELECT id, content FROM history ORDER BY id DESC LIMIT ?
		) ORDER BY id ASC
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var content string
		if err := rows.Scan(&content); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		out = append(out, content)
	}
	return out, rows.Err()
}
