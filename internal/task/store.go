package task

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("task not found")

// Store is ownership-scoped: every operation takes the caller's user id and
// touches only rows with a matching user_id. A row owned by someone else is
// indistinguishable from a missing one.
type Store interface {
	List(ctx context.Context, userID uint64, f Filter, s Sort) ([]Task, error)
	Get(ctx context.Context, userID, id uint64) (*Task, error)
	Create(ctx context.Context, t *Task) error
	Update(ctx context.Context, userID, id uint64, in Task) (*Task, error)
	Delete(ctx context.Context, userID, id uint64) error
}

type GormStore struct {
	DB *gorm.DB
}

func (s *GormStore) List(ctx context.Context, userID uint64, f Filter, srt Sort) ([]Task, error) {
	q := s.DB.WithContext(ctx).Where("user_id = ?", userID)

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Priority != "" {
		q = q.Where("priority = ?", f.Priority)
	}

	if order := OrderClause(srt); order != "" {
		q = q.Order(order)
	}

	tasks := []Task{}
	if err := q.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *GormStore) Get(ctx context.Context, userID, id uint64) (*Task, error) {
	var t Task
	err := s.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (s *GormStore) Create(ctx context.Context, t *Task) error {
	return s.DB.WithContext(ctx).Create(t).Error
}

// Update is a full replace: every mutable field is overwritten by in,
// NULLable ones included, and updated_at is refreshed.
func (s *GormStore) Update(ctx context.Context, userID, id uint64, in Task) (*Task, error) {
	t, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	t.Title = in.Title
	t.Description = in.Description
	t.Status = in.Status
	t.Priority = in.Priority
	t.DueDate = in.DueDate
	t.UpdatedAt = time.Now()

	if err := s.DB.WithContext(ctx).Save(t).Error; err != nil {
		return nil, err
	}
	return t, nil
}

func (s *GormStore) Delete(ctx context.Context, userID, id uint64) error {
	res := s.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&Task{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
