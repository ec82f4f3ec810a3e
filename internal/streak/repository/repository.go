package repository

import (
	"taskstreak-backend/internal/streak/domain"
)

// ActivityRepository defines the interface for activity ledger data access
type ActivityRepository interface {
	// IncrementDay adds one completion to the user's ledger entry for day,
	// creating the entry if absent. The increment happens in the database,
	// so concurrent completions never lose counts.
	IncrementDay(userID, day string) error

	// FindRange returns the ledger entries with day in [startDay, endDay],
	// ordered by date ascending. Days with no activity are absent here;
	// dense filling is the usecase's job.
	FindRange(userID, startDay, endDay string) ([]*domain.ActivityDay, error)

	// FindAllByUser returns the user's full ledger ordered by date ascending
	FindAllByUser(userID string) ([]*domain.ActivityDay, error)

	// InsertMissing inserts ledger rows only for (user, day) pairs that do
	// not exist yet. Existing ledger data always wins over derived counts.
	InsertMissing(days []*domain.ActivityDay) error
}
