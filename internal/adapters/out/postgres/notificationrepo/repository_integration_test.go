package notificationrepo_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "writedesk/internal/adapters/out/postgres"
	"writedesk/internal/adapters/out/postgres/notificationrepo"
	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/core/domain/model/notification"
	"writedesk/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NotificationRepositoryIntegrationTestSuite provides integration tests for
// GormNotificationRepository using PostgreSQL containers. The unpushed scan
// feeds the dispatch job, so its ordering and limit get the most attention.
type NotificationRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *notificationrepo.GormNotificationRepository
}

func (suite *NotificationRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))
}

func (suite *NotificationRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE notifications").Error)

	suite.repository = notificationrepo.NewGormNotificationRepository(suite.db)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestAdd_RoundTrip() {
	ctx := context.Background()

	entry, err := notification.NewNotification(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		"order.quoted",
		"your order has been quoted",
	)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, entry))

	retrieved, err := suite.repository.Get(ctx, entry.ID())
	suite.Require().NoError(err)

	suite.True(entry.ID().IsEqual(retrieved.ID()))
	suite.True(entry.RecipientID().IsEqual(retrieved.RecipientID()))
	suite.True(entry.OrderID().IsEqual(retrieved.OrderID()))
	suite.Equal("order.quoted", retrieved.Action())
	suite.Equal("your order has been quoted", retrieved.Message())
	suite.False(retrieved.IsRead())
	suite.False(retrieved.IsPushed())
	suite.Nil(retrieved.PushedAt())
	suite.WithinDuration(entry.CreatedAt(), retrieved.CreatedAt(), time.Second)
	suite.Equal(1, retrieved.Version())
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestUpdate_MarkReadBumpsVersion() {
	ctx := context.Background()

	entry := suite.restoreNotification(time.Now(), nil)
	suite.Require().NoError(suite.repository.Add(ctx, entry))

	suite.Require().NoError(entry.MarkRead())
	suite.Require().NoError(suite.repository.Update(ctx, entry))

	retrieved, err := suite.repository.Get(ctx, entry.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.IsRead())
	suite.Equal(2, retrieved.Version())
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestUpdate_MarkPushedRoundTrip() {
	ctx := context.Background()

	entry := suite.restoreNotification(time.Now(), nil)
	suite.Require().NoError(suite.repository.Add(ctx, entry))

	pushedAt := time.Now()
	suite.Require().NoError(entry.MarkPushed(pushedAt))
	suite.Require().NoError(suite.repository.Update(ctx, entry))

	retrieved, err := suite.repository.Get(ctx, entry.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.IsPushed())
	suite.Require().NotNil(retrieved.PushedAt())
	suite.WithinDuration(pushedAt, *retrieved.PushedAt(), time.Second)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestUpdate_RacingDispatchersConflict() {
	ctx := context.Background()

	entry := suite.restoreNotification(time.Now(), nil)
	suite.Require().NoError(suite.repository.Add(ctx, entry))

	// Two dispatch rounds pick the row up at the same version
	firstCopy, err := suite.repository.Get(ctx, entry.ID())
	suite.Require().NoError(err)
	secondCopy, err := suite.repository.Get(ctx, entry.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(firstCopy.MarkPushed(time.Now()))
	suite.Require().NoError(suite.repository.Update(ctx, firstCopy))

	suite.Require().NoError(secondCopy.MarkPushed(time.Now()))
	err = suite.repository.Update(ctx, secondCopy)
	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestListUnpushed_OldestFirstWithinLimit() {
	ctx := context.Background()
	now := time.Now()

	third := suite.restoreNotification(now.Add(-1*time.Hour), nil)
	suite.Require().NoError(suite.repository.Add(ctx, third))

	first := suite.restoreNotification(now.Add(-3*time.Hour), nil)
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second := suite.restoreNotification(now.Add(-2*time.Hour), nil)
	suite.Require().NoError(suite.repository.Add(ctx, second))

	// Already pushed rows never come back
	pushedAt := now.Add(-30 * time.Minute)
	pushed := suite.restoreNotification(now.Add(-4*time.Hour), &pushedAt)
	suite.Require().NoError(suite.repository.Add(ctx, pushed))

	unpushed, err := suite.repository.ListUnpushed(ctx, 2)
	suite.Require().NoError(err)

	suite.Require().Len(unpushed, 2)
	suite.True(first.ID().IsEqual(unpushed[0].ID()))
	suite.True(second.ID().IsEqual(unpushed[1].ID()))
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestListUnpushed_EmptyBacklog() {
	ctx := context.Background()

	pushedAt := time.Now()
	pushed := suite.restoreNotification(time.Now().Add(-time.Hour), &pushedAt)
	suite.Require().NoError(suite.repository.Add(ctx, pushed))

	unpushed, err := suite.repository.ListUnpushed(ctx, 50)
	suite.Require().NoError(err)
	suite.Empty(unpushed)
}

// restoreNotification restores an unread notification with a controlled
// creation time and push state.
func (suite *NotificationRepositoryIntegrationTestSuite) restoreNotification(createdAt time.Time, pushedAt *time.Time) *notification.Notification {
	entry, err := notification.RestoreNotification(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		"order.confirmed",
		"payment verified, work code issued",
		false,
		pushedAt,
		createdAt,
		1,
	)
	suite.Require().NoError(err)
	return entry
}

func TestNotificationRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationRepositoryIntegrationTestSuite))
}
