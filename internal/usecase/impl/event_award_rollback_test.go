package impl_test

import (
	"testing"

	"loyalty/internal/domain/entity"
	"loyalty/internal/infra/persistence/model"
	"loyalty/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var errDiskFull = errors.New("disk full")

// failNth makes the nth write to table fail while armed is set.
func failNth(table string, nth int, armed *bool) func(*gorm.DB) {
	seen := 0

	return func(db *gorm.DB) {
		if !*armed || db.Statement.Table != table {
			return
		}
		seen++
		if seen == nth {
			_ = db.AddError(errDiskFull)
		}
	}
}

func TestEventService_AwardAllRollsBackOnWriteFailure(t *testing.T) {
	tests := []struct {
		name     string
		register func(db *gorm.DB, armed *bool) error
	}{
		{
			name: "second transaction row",
			register: func(db *gorm.DB, armed *bool) error {
				return db.Callback().Create().Before("gorm:create").
					Register("test:fail_second_transaction", failNth("transactions", 2, armed))
			},
		},
		{
			name: "balance credit after every row exists",
			register: func(db *gorm.DB, armed *bool) error {
				return db.Callback().Update().Before("gorm:update").
					Register("test:fail_balance_credit", failNth("users", 1, armed))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &ledgerFeature{t: t}
			f.reset()

			require.NoError(t, f.aManager("manager1"))
			require.NoError(t, f.aPublishedEvent("Games Night", 10, 300))
			eventID := f.eventIDs["Games Night"]

			guests := []string{"guest001", "guest002", "guest003"}
			for _, utorid := range guests {
				require.NoError(t, f.aVerifiedUserWithPoints(utorid, 5))
				guest, err := f.users.FindByUtorid(f.ctx, utorid)
				require.NoError(t, err)
				require.NoError(t, f.events.AddGuest(f.ctx, eventID, guest.ID))
			}

			manager, err := f.actor("manager1")
			require.NoError(t, err)

			armed := true
			require.NoError(t, tt.register(f.db, &armed))

			awarded, err := f.eventSvc.AwardPoints(f.ctx, manager, eventID, usecase.AwardPointsInput{Amount: 50})
			require.Error(t, err)
			assert.Nil(t, awarded)

			var eventRows int64
			require.NoError(t, f.db.Model(&model.TransactionModel{}).
				Where("type = ?", string(entity.TransactionEvent)).
				Count(&eventRows).Error)
			assert.Zero(t, eventRows)

			event, err := f.events.FindByID(f.ctx, eventID)
			require.NoError(t, err)
			assert.Equal(t, int64(300), event.PointsRemain)
			assert.Zero(t, event.PointsAwarded)

			for _, utorid := range guests {
				guest, err := f.users.FindByUtorid(f.ctx, utorid)
				require.NoError(t, err)
				assert.Equal(t, int64(5), guest.Points, utorid)
			}

			// The same award goes through once the store recovers.
			armed = false
			awarded, err = f.eventSvc.AwardPoints(f.ctx, manager, eventID, usecase.AwardPointsInput{Amount: 50})
			require.NoError(t, err)
			assert.Len(t, awarded, len(guests))

			event, err = f.events.FindByID(f.ctx, eventID)
			require.NoError(t, err)
			assert.Equal(t, int64(150), event.PointsRemain)
			assert.Equal(t, int64(150), event.PointsAwarded)
		})
	}
}
