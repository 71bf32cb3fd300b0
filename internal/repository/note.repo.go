package repository

import (
	"context"
	"errors"
	"time"

	"notes-auth/internal/domain"
	"notes-auth/pkg/xerrors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NoteRepository struct {
	db *pgxpool.Pool
}

func NewNoteRepository(db *pgxpool.Pool) *NoteRepository {
	return &NoteRepository{db: db}
}

const noteColumns = `id, user_id, title, content, created_at, updated_at`

func scanNote(row pgx.Row) (*domain.Note, error) {
	var n domain.Note
	err := row.Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNoteNotFound
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *NoteRepository) Create(ctx context.Context, n *domain.Note) (*domain.Note, error) {
	return scanNote(r.db.QueryRow(ctx, `
		INSERT INTO notes (id, user_id, title, content)
		VALUES ($1, $2, $3, $4)
		RETURNING `+noteColumns+`
	`, n.ID, n.UserID, n.Title, n.Content))
}

// GetByID scopes by owner so one user can never read another's note.
func (r *NoteRepository) GetByID(ctx context.Context, userID, id string) (*domain.Note, error) {
	return scanNote(r.db.QueryRow(ctx, `
		SELECT `+noteColumns+`
		FROM notes
		WHERE id = $1 AND user_id = $2
	`, id, userID))
}

func (r *NoteRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.Note, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+noteColumns+`
		FROM notes
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := make([]*domain.Note, 0)
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (r *NoteRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM notes WHERE user_id = $1`, userID).Scan(&count)
	return count, err
}

// SearchByUser matches the query case-insensitively against title and
// content, newest first.
func (r *NoteRepository) SearchByUser(ctx context.Context, userID, query string, limit, offset int) ([]*domain.Note, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+noteColumns+`
		FROM notes
		WHERE user_id = $1 AND (title ILIKE '%' || $2 || '%' OR content ILIKE '%' || $2 || '%')
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`, userID, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := make([]*domain.Note, 0)
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (r *NoteRepository) CountSearchByUser(ctx context.Context, userID, query string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM notes
		WHERE user_id = $1 AND (title ILIKE '%' || $2 || '%' OR content ILIKE '%' || $2 || '%')
	`, userID, query).Scan(&count)
	return count, err
}

// Stats returns the user's note totals and latest entry. A user with no
// notes gets zero counts and a nil LatestNote.
func (r *NoteRepository) Stats(ctx context.Context, userID string, since time.Time) (*domain.NoteStats, error) {
	var stats domain.NoteStats
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE created_at >= $2)
		FROM notes
		WHERE user_id = $1
	`, userID, since).Scan(&stats.TotalNotes, &stats.RecentNotes)
	if err != nil {
		return nil, err
	}

	var latest domain.NoteSummary
	err = r.db.QueryRow(ctx, `
		SELECT id, title, created_at
		FROM notes
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, userID).Scan(&latest.ID, &latest.Title, &latest.CreatedAt)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
	case err != nil:
		return nil, err
	default:
		stats.LatestNote = &latest
	}
	return &stats, nil
}

// DeleteMany removes the caller's notes among ids and reports how many rows
// actually went away; foreign or unknown ids are simply not counted.
func (r *NoteRepository) DeleteMany(ctx context.Context, userID string, ids []string) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM notes
		WHERE user_id = $1 AND id = ANY($2)
	`, userID, ids)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *NoteRepository) Update(ctx context.Context, userID, id, title, content string) (*domain.Note, error) {
	return scanNote(r.db.QueryRow(ctx, `
		UPDATE notes
		SET title = $3, content = $4, updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING `+noteColumns+`
	`, id, userID, title, content))
}

func (r *NoteRepository) Delete(ctx context.Context, userID, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM notes WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNoteNotFound
	}
	return nil
}
