package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/subflow-io/subflow/internal/domain/subscription"
	"github.com/subflow-io/subflow/internal/infrastructure/persistence/models"
	"github.com/subflow-io/subflow/internal/shared/logger"
)

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...any)                   {}
func (nopLogger) Info(msg string, args ...any)                    {}
func (nopLogger) Warn(msg string, args ...any)                    {}
func (nopLogger) Error(msg string, args ...any)                   {}
func (nopLogger) With(args ...any) logger.Interface               { return nopLogger{} }
func (nopLogger) Named(name string) logger.Interface              { return nopLogger{} }
func (nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.SubscriptionModel{}, &models.SubscriptionLineModel{})
	require.NoError(t, err)

	return db
}

func createTestSubscription(t *testing.T, repo subscription.Repository, number string) *subscription.Subscription {
	line, err := subscription.NewLine(7, decimal.NewFromInt(2), decimal.RequireFromString("80.00"), nil, nil)
	require.NoError(t, err)

	entity, err := subscription.NewSubscription(subscription.NewParams{
		Number:          number,
		ContactID:       1,
		RecurringPlanID: 10,
		Lines:           []subscription.Line{line},
	})
	require.NoError(t, err)

	err = repo.Create(context.Background(), entity)
	require.NoError(t, err)
	return entity
}

func lineCount(t *testing.T, db *gorm.DB, subscriptionID uint) int64 {
	var count int64
	err := db.Model(&models.SubscriptionLineModel{}).
		Where("subscription_id = ?", subscriptionID).
		Count(&count).Error
	require.NoError(t, err)
	return count
}

func TestSubscriptionRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("delete removes subscription and lines", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewSubscriptionRepository(db, nopLogger{})
		entity := createTestSubscription(t, repo, "Sub900")

		err := repo.Delete(ctx, entity.ID())
		assert.NoError(t, err)

		found, err := repo.GetByID(ctx, entity.ID())
		assert.NoError(t, err)
		assert.Nil(t, found)
		assert.Equal(t, int64(0), lineCount(t, db, entity.ID()))
	})

	t.Run("failed delete rolls back the line delete", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewSubscriptionRepository(db, nopLogger{})
		entity := createTestSubscription(t, repo, "Sub901")

		// Dropping the subscriptions table makes the second delete fail
		// after the line delete already ran.
		require.NoError(t, db.Migrator().DropTable(&models.SubscriptionModel{}))

		err := repo.Delete(ctx, entity.ID())
		assert.Error(t, err)
		assert.Equal(t, int64(1), lineCount(t, db, entity.ID()))
	})
}
