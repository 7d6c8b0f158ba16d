package progress

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/2beens/gymplan/internal/plan"
	"github.com/2beens/gymplan/internal/shopping"
	"github.com/2beens/gymplan/internal/store"
)

// Service is the typed layer over the key-value store: it knows the shape
// of each of the six well-known keys and implements the upsert-by-identity
// policy for workout progress.
type Service struct {
	store store.Store
}

func NewService(s store.Store) *Service {
	return &Service{
		store: s,
	}
}

func (s *Service) getJSON(ctx context.Context, userID, key string, target any) (found bool, err error) {
	value, err := s.store.Get(ctx, userID, key)
	if err != nil {
		return false, fmt.Errorf("get %s: %w", key, err)
	}
	if value == nil {
		return false, nil
	}
	if err := json.Unmarshal(value, target); err != nil {
		return false, fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return true, nil
}

func (s *Service) setJSON(ctx context.Context, userID, key string, value any) error {
	valueBytes, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := s.store.Set(ctx, userID, key, valueBytes); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// WorkoutProgressList returns every stored progress record of the user.
func (s *Service) WorkoutProgressList(ctx context.Context, userID string) ([]WorkoutProgress, error) {
	var progressList []WorkoutProgress
	if _, err := s.getJSON(ctx, userID, store.KeyWorkoutProgress, &progressList); err != nil {
		return nil, err
	}
	return progressList, nil
}

// SaveWorkoutProgressList replaces the whole stored list.
func (s *Service) SaveWorkoutProgressList(ctx context.Context, userID string, progressList []WorkoutProgress) error {
	if progressList == nil {
		progressList = []WorkoutProgress{}
	}
	return s.setJSON(ctx, userID, store.KeyWorkoutProgress, progressList)
}

// AddWorkoutProgress upserts one record by its identity: a record with the
// same (exercise, day, week, alternative) identity is replaced, otherwise
// the record is appended. Saving twice leaves exactly one record holding
// the second payload.
func (s *Service) AddWorkoutProgress(ctx context.Context, userID string, progress WorkoutProgress) error {
	progressList, err := s.WorkoutProgressList(ctx, userID)
	if err != nil {
		return err
	}

	replaced := false
	for i := range progressList {
		if progressList[i].SameIdentity(progress) {
			progressList[i] = progress
			replaced = true
			break
		}
	}
	if !replaced {
		progressList = append(progressList, progress)
	}

	return s.SaveWorkoutProgressList(ctx, userID, progressList)
}

// ExerciseProgress finds the record of one identity, nil when absent.
func (s *Service) ExerciseProgress(
	ctx context.Context,
	userID string,
	identity WorkoutProgress,
) (*WorkoutProgress, error) {
	progressList, err := s.WorkoutProgressList(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range progressList {
		if progressList[i].SameIdentity(identity) {
			return &progressList[i], nil
		}
	}
	return nil, nil
}

// CopyWeekProgress copies every record of srcWeek onto dstWeek, upserting
// per identity, and returns the number of records copied.
func (s *Service) CopyWeekProgress(ctx context.Context, userID string, srcWeek, dstWeek int) (int, error) {
	progressList, err := s.WorkoutProgressList(ctx, userID)
	if err != nil {
		return 0, err
	}

	copied := 0
	for _, p := range progressList {
		if p.Week != srcWeek {
			continue
		}
		p.Week = dstWeek
		if err := s.AddWorkoutProgress(ctx, userID, p); err != nil {
			return copied, err
		}
		copied++
	}

	return copied, nil
}

// ShoppingLists returns the saved shopping lists, oldest first.
func (s *Service) ShoppingLists(ctx context.Context, userID string) ([]shopping.List, error) {
	var lists []shopping.List
	if _, err := s.getJSON(ctx, userID, store.KeyShoppingLists, &lists); err != nil {
		return nil, err
	}
	return lists, nil
}

// AddShoppingList appends a generated list. Saved lists are never merged.
func (s *Service) AddShoppingList(ctx context.Context, userID string, list shopping.List) error {
	lists, err := s.ShoppingLists(ctx, userID)
	if err != nil {
		return err
	}
	lists = append(lists, list)
	return s.setJSON(ctx, userID, store.KeyShoppingLists, lists)
}

// DeleteShoppingList removes the list at index; out-of-range indices are
// ignored.
func (s *Service) DeleteShoppingList(ctx context.Context, userID string, index int) error {
	lists, err := s.ShoppingLists(ctx, userID)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(lists) {
		return nil
	}
	lists = append(lists[:index], lists[index+1:]...)
	return s.setJSON(ctx, userID, store.KeyShoppingLists, lists)
}

// TableColumns returns the saved column preferences, or the default set.
func (s *Service) TableColumns(ctx context.Context, userID string) ([]TableColumn, error) {
	var columns []TableColumn
	found, err := s.getJSON(ctx, userID, store.KeyTableColumns, &columns)
	if err != nil {
		return nil, err
	}
	if !found {
		return DefaultTableColumns(), nil
	}
	return columns, nil
}

// SaveTableColumns replaces the whole column preference array.
func (s *Service) SaveTableColumns(ctx context.Context, userID string, columns []TableColumn) error {
	return s.setJSON(ctx, userID, store.KeyTableColumns, columns)
}

func (s *Service) Theme(ctx context.Context, userID string) (string, error) {
	var theme string
	found, err := s.getJSON(ctx, userID, store.KeyTheme, &theme)
	if err != nil {
		return "", err
	}
	if !found {
		return DefaultTheme, nil
	}
	return theme, nil
}

func (s *Service) SaveTheme(ctx context.Context, userID, theme string) error {
	return s.setJSON(ctx, userID, store.KeyTheme, theme)
}

func (s *Service) CurrentWeek(ctx context.Context, userID string) (int, error) {
	var week int
	found, err := s.getJSON(ctx, userID, store.KeyCurrentWeek, &week)
	if err != nil {
		return 0, err
	}
	if !found {
		return DefaultCurrentWeek, nil
	}
	return week, nil
}

func (s *Service) SaveCurrentWeek(ctx context.Context, userID string, week int) error {
	return s.setJSON(ctx, userID, store.KeyCurrentWeek, week)
}

func (s *Service) CurrentDay(ctx context.Context, userID string) (plan.Day, error) {
	var day plan.Day
	found, err := s.getJSON(ctx, userID, store.KeyCurrentDay, &day)
	if err != nil {
		return "", err
	}
	if !found {
		return DefaultCurrentDay, nil
	}
	return day, nil
}

func (s *Service) SaveCurrentDay(ctx context.Context, userID string, day plan.Day) error {
	return s.setJSON(ctx, userID, store.KeyCurrentDay, day)
}

// ClearAll wipes the user's six well-known keys. Other user scopes are
// untouched.
func (s *Service) ClearAll(ctx context.Context, userID string) error {
	return s.store.Clear(ctx, userID)
}
