//go:build integration
// +build integration

package repository

import (
	"testing"

	"albion-backend/internal/database/models"
	"albion-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// OrderRepositoryTestSuite tests the OrderRepository
type OrderRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *OrderRepository
	orderFactory  *testutils.OrderFactory
	clientFactory *testutils.ClientFactory
}

// SetupSuite runs before all tests in the suite
func (suite *OrderRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewOrderRepository(suite.baseTestSuite.DB)
	suite.orderFactory = testutils.NewOrderFactory()
	suite.clientFactory = testutils.NewClientFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *OrderRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *OrderRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *OrderRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *OrderRepositoryTestSuite) createClient() *models.Client {
	client := suite.clientFactory.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(client).Error)
	return client
}

// TestCreateAndGetWithDetails tests persisting the order matrix
func (suite *OrderRepositoryTestSuite) TestCreateAndGetWithDetails() {
	client := suite.createClient()
	order := suite.orderFactory.Create(client.ID)
	suite.orderFactory.WithDetail(order, "ST-100", "Navy", "M", 20)
	suite.orderFactory.WithDetail(order, "ST-100", "Navy", "L", 30)

	suite.NoError(suite.repo.Create(order))

	loaded, err := suite.repo.GetWithDetails(order.ID)
	suite.NoError(err)
	suite.Equal(client.ClientName, loaded.Client.ClientName)
	suite.Len(loaded.Styles, 1)
	suite.Len(loaded.Details, 2)
	suite.Equal(50, loaded.TotalQuantity)
}

// TestUpdateStatus tests status transitions at the storage level
func (suite *OrderRepositoryTestSuite) TestUpdateStatus() {
	client := suite.createClient()
	order := suite.orderFactory.Create(client.ID)
	suite.Require().NoError(suite.repo.Create(order))

	suite.NoError(suite.repo.UpdateStatus(order.ID, models.OrderStatusOpen, "planner"))

	loaded, err := suite.repo.GetByID(order.ID)
	suite.NoError(err)
	suite.Equal(models.OrderStatusOpen, loaded.Status)
	suite.Equal("planner", loaded.UpdatedBy)

	err = suite.repo.UpdateStatus(uuid.New(), models.OrderStatusOpen, "planner")
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestReplaceProcesses tests swapping the process snapshot rows
func (suite *OrderRepositoryTestSuite) TestReplaceProcesses() {
	client := suite.createClient()
	order := suite.orderFactory.Create(client.ID)
	suite.Require().NoError(suite.repo.Create(order))

	suite.NoError(suite.repo.ReplaceProcesses(order.ID, []models.OrderProcess{
		{StyleCode: "ST-100", ProcessName: "Knitting", Minutes: 12.5},
		{StyleCode: "ST-100", ProcessName: "Linking", Minutes: 6},
	}))

	loaded, err := suite.repo.GetWithDetails(order.ID)
	suite.NoError(err)
	suite.Len(loaded.Processes, 2)

	// Replacing again drops the old snapshot
	suite.NoError(suite.repo.ReplaceProcesses(order.ID, []models.OrderProcess{
		{StyleCode: "ST-100", ProcessName: "Knitting", Minutes: 13},
	}))
	loaded, err = suite.repo.GetWithDetails(order.ID)
	suite.NoError(err)
	suite.Len(loaded.Processes, 1)
	suite.Equal(13.0, loaded.Processes[0].Minutes)
}

// TestListSubmitted tests that drafts and cancelled orders are excluded
func (suite *OrderRepositoryTestSuite) TestListSubmitted() {
	client := suite.createClient()

	draft := suite.orderFactory.Create(client.ID)
	suite.Require().NoError(suite.repo.Create(draft))

	open := suite.orderFactory.Create(client.ID)
	open.Status = models.OrderStatusOpen
	suite.Require().NoError(suite.repo.Create(open))

	closed := suite.orderFactory.Create(client.ID)
	closed.Status = models.OrderStatusClosed
	suite.Require().NoError(suite.repo.Create(closed))

	cancelled := suite.orderFactory.Create(client.ID)
	cancelled.Status = models.OrderStatusCancelled
	suite.Require().NoError(suite.repo.Create(cancelled))

	orders, err := suite.repo.ListSubmitted()
	suite.NoError(err)
	suite.Len(orders, 2)

	total, err := suite.repo.CountSubmitted()
	suite.NoError(err)
	suite.Equal(int64(1), total)
}

// TestOrderRepositoryTestSuite runs the test suite
func TestOrderRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryTestSuite))
}
