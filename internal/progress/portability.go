package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/2beens/gymplan/internal/plan"
	"github.com/2beens/gymplan/internal/shopping"
	"github.com/2beens/gymplan/internal/store"

	"go.uber.org/multierr"
)

// exportedData is the bulk export/import envelope: a snapshot of all six
// well-known keys plus the export timestamp.
type exportedData struct {
	WorkoutProgress []WorkoutProgress `json:"workoutProgress"`
	ShoppingLists   []shopping.List   `json:"shoppingLists"`
	Theme           string            `json:"theme"`
	TableColumns    []TableColumn     `json:"tableColumns"`
	CurrentWeek     int               `json:"currentWeek"`
	CurrentDay      plan.Day          `json:"currentDay"`
	ExportDate      time.Time         `json:"exportDate"`
}

// Export snapshots the user's stored state as a single JSON document.
func (s *Service) Export(ctx context.Context, userID string) ([]byte, error) {
	data := exportedData{
		ExportDate: time.Now(),
	}

	var err error
	if data.WorkoutProgress, err = s.WorkoutProgressList(ctx, userID); err != nil {
		return nil, err
	}
	if data.ShoppingLists, err = s.ShoppingLists(ctx, userID); err != nil {
		return nil, err
	}
	if data.Theme, err = s.Theme(ctx, userID); err != nil {
		return nil, err
	}
	if data.TableColumns, err = s.TableColumns(ctx, userID); err != nil {
		return nil, err
	}
	if data.CurrentWeek, err = s.CurrentWeek(ctx, userID); err != nil {
		return nil, err
	}
	if data.CurrentDay, err = s.CurrentDay(ctx, userID); err != nil {
		return nil, err
	}

	return json.MarshalIndent(data, "", "  ")
}

// Import restores a previously exported snapshot. The per-field saves are
// dispatched concurrently and joined - there is no transactional
// atomicity: a failed field does not roll back the fields that committed.
// A document that fails to parse imports nothing.
func (s *Service) Import(ctx context.Context, userID string, exported []byte) error {
	var data exportedData
	if err := json.Unmarshal(exported, &data); err != nil {
		return fmt.Errorf("unmarshal import data: %w", err)
	}

	saves := []func() error{
		func() error {
			if data.WorkoutProgress == nil {
				return nil
			}
			return s.SaveWorkoutProgressList(ctx, userID, data.WorkoutProgress)
		},
		func() error {
			if data.ShoppingLists == nil {
				return nil
			}
			return s.setJSON(ctx, userID, store.KeyShoppingLists, data.ShoppingLists)
		},
		func() error {
			if data.Theme == "" {
				return nil
			}
			return s.SaveTheme(ctx, userID, data.Theme)
		},
		func() error {
			if data.TableColumns == nil {
				return nil
			}
			return s.SaveTableColumns(ctx, userID, data.TableColumns)
		},
		func() error {
			if data.CurrentWeek == 0 {
				return nil
			}
			return s.SaveCurrentWeek(ctx, userID, data.CurrentWeek)
		},
		func() error {
			if data.CurrentDay == "" {
				return nil
			}
			return s.SaveCurrentDay(ctx, userID, data.CurrentDay)
		},
	}

	var (
		mu        sync.Mutex
		saveErrs  error
		waitGroup sync.WaitGroup
	)
	for _, save := range saves {
		waitGroup.Add(1)
		go func(save func() error) {
			defer waitGroup.Done()
			if err := save(); err != nil {
				mu.Lock()
				saveErrs = multierr.Append(saveErrs, err)
				mu.Unlock()
			}
		}(save)
	}
	waitGroup.Wait()

	return saveErrs
}
