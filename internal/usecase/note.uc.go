package usecase

import (
	"context"
	"time"

	"notes-auth/internal/domain"

	"github.com/google/uuid"
)

// NoteStore is the persistence contract for notes. Every operation is scoped
// to the owning user.
type NoteStore interface {
	Create(ctx context.Context, n *domain.Note) (*domain.Note, error)
	GetByID(ctx context.Context, userID, id string) (*domain.Note, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.Note, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
	SearchByUser(ctx context.Context, userID, query string, limit, offset int) ([]*domain.Note, error)
	CountSearchByUser(ctx context.Context, userID, query string) (int64, error)
	Stats(ctx context.Context, userID string, since time.Time) (*domain.NoteStats, error)
	Update(ctx context.Context, userID, id, title, content string) (*domain.Note, error)
	Delete(ctx context.Context, userID, id string) error
	DeleteMany(ctx context.Context, userID string, ids []string) (int64, error)
}

type NoteUsecase struct {
	noteRepo NoteStore
}

func NewNoteUsecase(noteRepo NoteStore) *NoteUsecase {
	return &NoteUsecase{noteRepo: noteRepo}
}

func (uc *NoteUsecase) Create(ctx context.Context, userID, title, content string) (*domain.Note, error) {
	return uc.noteRepo.Create(ctx, &domain.Note{
		ID:      uuid.New().String(),
		UserID:  userID,
		Title:   title,
		Content: content,
	})
}

func (uc *NoteUsecase) Get(ctx context.Context, userID, id string) (*domain.Note, error) {
	return uc.noteRepo.GetByID(ctx, userID, id)
}

// List returns one page of the user's notes, newest first.
func (uc *NoteUsecase) List(ctx context.Context, userID string, page, limit int) ([]*domain.Note, *domain.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	notes, err := uc.noteRepo.ListByUser(ctx, userID, limit, (page-1)*limit)
	if err != nil {
		return nil, nil, err
	}

	total, err := uc.noteRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return notes, &domain.Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalNotes:  total,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}, nil
}

// Search returns one page of the user's notes matching query in title or
// content, newest first. Paging rules match List.
func (uc *NoteUsecase) Search(ctx context.Context, userID, query string, page, limit int) ([]*domain.Note, *domain.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	notes, err := uc.noteRepo.SearchByUser(ctx, userID, query, limit, (page-1)*limit)
	if err != nil {
		return nil, nil, err
	}

	total, err := uc.noteRepo.CountSearchByUser(ctx, userID, query)
	if err != nil {
		return nil, nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return notes, &domain.Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalNotes:  total,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}, nil
}

// Stats reports the user's totals; "recent" counts the last 7 days.
func (uc *NoteUsecase) Stats(ctx context.Context, userID string) (*domain.NoteStats, error) {
	return uc.noteRepo.Stats(ctx, userID, time.Now().AddDate(0, 0, -7))
}

func (uc *NoteUsecase) Update(ctx context.Context, userID, id, title, content string) (*domain.Note, error) {
	return uc.noteRepo.Update(ctx, userID, id, title, content)
}

func (uc *NoteUsecase) Delete(ctx context.Context, userID, id string) error {
	return uc.noteRepo.Delete(ctx, userID, id)
}

// DeleteMany removes the user's notes among ids; ids owned by someone else
// are ignored rather than erroring. Returns the number actually deleted.
func (uc *NoteUsecase) DeleteMany(ctx context.Context, userID string, ids []string) (int64, error) {
	return uc.noteRepo.DeleteMany(ctx, userID, ids)
}
