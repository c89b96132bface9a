package entries

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) GetAllByUser(ctx context.Context, userID int64) ([]Entry, error) {

	query :=
		`SELECT id, created_at, content, user_id FROM entries
		 WHERE user_id = $1
		 ORDER BY created_at ASC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	var result []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.CreatedAt, &e.Content, &e.UserID); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// CreateBatch inserts the batch as one multi-row statement. ON CONFLICT DO
// NOTHING tolerates per-row duplicate keys inside an otherwise atomic insert;
// RETURNING yields only the rows actually inserted.
func (r *PostgresRepository) CreateBatch(ctx context.Context, userID int64, batch []NewEntry) ([]Entry, error) {

	var b strings.Builder
	b.WriteString(`INSERT INTO entries (created_at, content, user_id) VALUES `)

	args := make([]any, 0, len(batch)*3)
	for i, e := range batch {
		if i > 0 {
			b.WriteString(", ")
		}
		base := i * 3
		fmt.Fprintf(&b, "($%d, $%d, $%d)", base+1, base+2, base+3)
		args = append(args, e.Timestamp, e.Text, userID)
	}

	b.WriteString(` ON CONFLICT (user_id, created_at) DO NOTHING RETURNING id, created_at, content, user_id`)

	rows, err := r.db.QueryContext(ctx, b.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	inserted := make([]Entry, 0, len(batch))
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.CreatedAt, &e.Content, &e.UserID); err != nil {
			return nil, err
		}
		inserted = append(inserted, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return inserted, nil
}
