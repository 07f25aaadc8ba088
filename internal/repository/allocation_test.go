//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"albion-backend/internal/database/models"
	"albion-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// AllocationRepositoryTestSuite tests the AllocationRepository
type AllocationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *AllocationRepository
	machFactory   *testutils.MachineFactory
	opFactory     *testutils.OperationFactory
}

// SetupSuite runs before all tests in the suite
func (suite *AllocationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewAllocationRepository(suite.baseTestSuite.DB)
	suite.machFactory = testutils.NewMachineFactory()
	suite.opFactory = testutils.NewOperationFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *AllocationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *AllocationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *AllocationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *AllocationRepositoryTestSuite) mustDate(s string) time.Time {
	d, err := models.ParseDate(s)
	suite.Require().NoError(err)
	return d
}

// fixture builds a machine with a frame, plus a client and submitted order
func (suite *AllocationRepositoryTestSuite) fixture() (*models.Machine, *models.Order) {
	db := suite.baseTestSuite.DB

	machine := func() *models.Machine {
		frame := suite.machFactory.CreateFrame()
		suite.Require().NoError(db.Create(frame).Error)
		m := suite.machFactory.Create(frame.ID)
		suite.Require().NoError(db.Create(m).Error)
		return m
	}()

	client := testutils.NewClientFactory().Create()
	suite.Require().NoError(db.Create(client).Error)
	order := testutils.NewOrderFactory().Create(client.ID)
	order.Status = models.OrderStatusOpen
	suite.Require().NoError(db.Create(order).Error)

	return machine, order
}

// TestFindByNaturalKey tests locating an operation by its planning key
func (suite *AllocationRepositoryTestSuite) TestFindByNaturalKey() {
	machine, order := suite.fixture()
	date := suite.mustDate("2026-04-01")

	op := suite.opFactory.Create(machine.ID, order.ID, "ST-100", date)
	suite.Require().NoError(suite.repo.Create(op))

	key := AllocationKey{
		MachineID:   machine.ID,
		OrderID:     order.ID,
		StyleCode:   "ST-100",
		ProcessName: op.ProcessName,
		Colour:      op.Colour,
		Size:        op.Size,
		Date:        date,
	}
	found, err := suite.repo.FindByNaturalKey(key)
	suite.NoError(err)
	suite.Equal(op.ID, found.ID)

	// Different colour misses
	key.Colour = "Ecru"
	_, err = suite.repo.FindByNaturalKey(key)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestUsedMinutes tests the per-machine per-day aggregation
func (suite *AllocationRepositoryTestSuite) TestUsedMinutes() {
	machine, order := suite.fixture()
	date := suite.mustDate("2026-04-01")

	first := suite.opFactory.Create(machine.ID, order.ID, "ST-100", date)
	first.AllocatedMinutes = 120
	suite.Require().NoError(suite.repo.Create(first))

	second := suite.opFactory.Create(machine.ID, order.ID, "ST-100", date)
	second.Colour = "Ecru"
	second.AllocatedMinutes = 90
	suite.Require().NoError(suite.repo.Create(second))

	outside := suite.opFactory.Create(machine.ID, order.ID, "ST-100", suite.mustDate("2026-05-01"))
	suite.Require().NoError(suite.repo.Create(outside))

	rows, err := suite.repo.UsedMinutes(suite.mustDate("2026-04-01"), suite.mustDate("2026-04-30"))
	suite.NoError(err)
	suite.Len(rows, 1)
	suite.Equal(machine.ID, rows[0].MachineID)
	suite.Equal(210, rows[0].Minutes)
}

// TestProductionReportFilters tests filtering and grouping of the report
func (suite *AllocationRepositoryTestSuite) TestProductionReportFilters() {
	machine, order := suite.fixture()
	date := suite.mustDate("2026-04-01")

	knit := suite.opFactory.Create(machine.ID, order.ID, "ST-100", date)
	knit.Quantity = 10
	suite.Require().NoError(suite.repo.Create(knit))

	link := suite.opFactory.Create(machine.ID, order.ID, "ST-100", date)
	link.ProcessName = "Linking"
	link.Quantity = 8
	suite.Require().NoError(suite.repo.Create(link))

	rows, err := suite.repo.ProductionReport(ProductionFilter{})
	suite.NoError(err)
	suite.Len(rows, 2)

	rows, err = suite.repo.ProductionReport(ProductionFilter{ProcessName: "Linking"})
	suite.NoError(err)
	suite.Len(rows, 1)
	suite.Equal(8, rows[0].Quantity)
	suite.Equal(order.PurchaseOrder, rows[0].PurchaseOrder)
	suite.Equal(machine.MachineID, rows[0].MachineCode)
}

// TestDeleteOrphans tests range-scoped deletion with a keep set
func (suite *AllocationRepositoryTestSuite) TestDeleteOrphans() {
	machine, order := suite.fixture()

	keep := suite.opFactory.Create(machine.ID, order.ID, "ST-100", suite.mustDate("2026-04-01"))
	suite.Require().NoError(suite.repo.Create(keep))

	orphan := suite.opFactory.Create(machine.ID, order.ID, "ST-100", suite.mustDate("2026-04-02"))
	suite.Require().NoError(suite.repo.Create(orphan))

	outside := suite.opFactory.Create(machine.ID, order.ID, "ST-100", suite.mustDate("2026-05-02"))
	suite.Require().NoError(suite.repo.Create(outside))

	deleted, err := suite.repo.DeleteOrphans(
		suite.mustDate("2026-04-01"), suite.mustDate("2026-04-30"), []uuid.UUID{keep.ID})
	suite.NoError(err)
	suite.Equal(int64(1), deleted)

	// Kept row and the row outside the range survive
	exists, err := suite.repo.Exists(keep.ID)
	suite.NoError(err)
	suite.True(exists)

	exists, err = suite.repo.Exists(outside.ID)
	suite.NoError(err)
	suite.True(exists)

	exists, err = suite.repo.Exists(orphan.ID)
	suite.NoError(err)
	suite.False(exists)
}

// TestAllocationRepositoryTestSuite runs the test suite
func TestAllocationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AllocationRepositoryTestSuite))
}
