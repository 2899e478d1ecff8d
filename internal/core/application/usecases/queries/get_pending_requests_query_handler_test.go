package queries_test

import (
	"context"
	"testing"
	"time"

	"forwarding/internal/adapters/out/postgres/requestrepo"
	"forwarding/internal/core/application/usecases/queries"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/request"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetPendingRequestsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetPendingRequestsQueryHandler
}

func (suite *GetPendingRequestsQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&requestrepo.RequestDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetPendingRequestsQueryHandler(db)
}

func (suite *GetPendingRequestsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetPendingRequestsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE requests").Error
	suite.Require().NoError(err)
}

func (suite *GetPendingRequestsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetPendingRequestsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetPendingRequestsQueryHandlerTestSuite) TestHandle_MixedStatuses_ReturnsOnlyPendingOldestFirst() {
	first := suite.createTestRequest("AMZ-1001", time.Now().Add(-2*time.Hour))
	second := suite.createTestRequest("AMZ-1002", time.Now().Add(-time.Hour))
	rejected := suite.createTestRequest("AMZ-1003", time.Now().Add(-3*time.Hour))
	err := rejected.Reject()
	suite.Require().NoError(err)

	suite.saveRequests(first, second, rejected)

	query := queries.NewGetPendingRequestsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("AMZ-1001", result[0].CarrierReference)
	suite.Equal(first.ID(), result[0].ID)
	suite.Equal("AMZ-1002", result[1].CarrierReference)
	suite.Equal(second.ID(), result[1].ID)
}

func (suite *GetPendingRequestsQueryHandlerTestSuite) TestHandle_ReviewInProgress_ExposesGateState() {
	req := suite.createTestRequest("AMZ-2001", time.Now())
	reviewer := kernel.NewUUID()
	err := req.SetWeight(decimal.RequireFromString("6.5"), reviewer)
	suite.Require().NoError(err)
	err = req.ConfirmWeight(reviewer)
	suite.Require().NoError(err)
	err = req.SetCategory("electronics", reviewer)
	suite.Require().NoError(err)

	suite.saveRequests(req)

	query := queries.NewGetPendingRequestsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ReviewWeight.Equal(decimal.RequireFromString("6.5")))
	suite.True(result[0].WeightConfirmed)
	suite.Equal("electronics", result[0].ReviewCategory)
	suite.False(result[0].CategoryConfirmed)
	suite.Require().NotNil(result[0].EstimatedWeight)
	suite.True(result[0].EstimatedWeight.Equal(decimal.RequireFromString("5")))
}

func (suite *GetPendingRequestsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetPendingRequestsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, queries.ErrGetPendingRequestsQueryIsNotConstructed)
}

func (suite *GetPendingRequestsQueryHandlerTestSuite) createTestRequest(
	carrierReference string,
	createdAt time.Time,
) *request.Request {
	estimated := decimal.RequireFromString("5")

	req, err := request.NewRequest(
		kernel.NewUUID(),
		kernel.NewUUID(),
		carrierReference,
		"Two pairs of sneakers",
		&estimated,
		"clothing",
		"",
		"Marie Joseph",
		"+509 3700 0000",
		createdAt,
	)
	suite.Require().NoError(err)

	return req
}

func (suite *GetPendingRequestsQueryHandlerTestSuite) saveRequests(requests ...*request.Request) {
	repo := requestrepo.NewGormRequestRepository(suite.db, &mockAggregateTracker{})
	for _, req := range requests {
		err := repo.Add(context.Background(), req)
		suite.Require().NoError(err)
	}
}

func TestGetPendingRequestsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetPendingRequestsQueryHandlerTestSuite))
}
