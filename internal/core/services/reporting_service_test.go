package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/AbdulmosenAlmuzaini/malek/internal/core/domain"
	portssvc "github.com/AbdulmosenAlmuzaini/malek/internal/core/ports/services"
	"github.com/AbdulmosenAlmuzaini/malek/internal/core/services"
)

// --- Mock ReportingRepository ---

type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) OperationTotals(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Get(1).(decimal.Decimal), args.Error(2)
}

func (m *MockReportingRepository) TransferTotal(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) CategoryTotals(ctx context.Context) ([]domain.GroupTotal, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.GroupTotal), args.Error(1)
}

func (m *MockReportingRepository) PersonTotals(ctx context.Context) ([]domain.GroupTotal, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.GroupTotal), args.Error(1)
}

func (m *MockReportingRepository) PropertyTotals(ctx context.Context) ([]domain.GroupTotal, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.GroupTotal), args.Error(1)
}

func (m *MockReportingRepository) RecentOperations(ctx context.Context, limit int) ([]domain.RecentEntry, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.RecentEntry), args.Error(1)
}

func (m *MockReportingRepository) RecentTransfers(ctx context.Context, limit int) ([]domain.RecentEntry, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.RecentEntry), args.Error(1)
}

// --- Test Suite ---

type ReportingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockReportingRepository
	service  portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReportingRepository)
	suite.service = services.NewReportingService(suite.mockRepo)
}

func (suite *ReportingServiceTestSuite) mockEmptyBreakdowns() {
	suite.mockRepo.On("CategoryTotals", mock.Anything).Return([]domain.GroupTotal{}, nil)
	suite.mockRepo.On("PersonTotals", mock.Anything).Return([]domain.GroupTotal{}, nil)
	suite.mockRepo.On("PropertyTotals", mock.Anything).Return([]domain.GroupTotal{}, nil)
}

func (suite *ReportingServiceTestSuite) mockEmptyRecent() {
	suite.mockRepo.On("RecentOperations", mock.Anything, 5).Return([]domain.RecentEntry{}, nil)
	suite.mockRepo.On("RecentTransfers", mock.Anything, 5).Return([]domain.RecentEntry{}, nil)
}

func strPtr(s string) *string { return &s }

func (suite *ReportingServiceTestSuite) TestGetStats_EmptyLedger() {
	ctx := context.Background()
	suite.mockRepo.On("OperationTotals", mock.Anything).Return(decimal.Zero, decimal.Zero, nil)
	suite.mockRepo.On("TransferTotal", mock.Anything).Return(decimal.Zero, nil)
	suite.mockEmptyBreakdowns()
	suite.mockEmptyRecent()

	stats, err := suite.service.GetStats(ctx)

	suite.Require().NoError(err)
	suite.True(stats.TotalIn.IsZero())
	suite.True(stats.TotalOut.IsZero())
	suite.True(stats.TotalTransfers.IsZero())
	suite.True(stats.Balance.IsZero())
	suite.Empty(stats.Categories)
	suite.Empty(stats.Persons)
	suite.Empty(stats.Properties)
	suite.Empty(stats.Recent)
}

func (suite *ReportingServiceTestSuite) TestGetStats_BalanceSubtractsOutAndTransfers() {
	ctx := context.Background()
	suite.mockRepo.On("OperationTotals", mock.Anything).Return(
		decimal.NewFromInt(1000), decimal.NewFromInt(200), nil)
	suite.mockRepo.On("TransferTotal", mock.Anything).Return(decimal.NewFromInt(150), nil)
	suite.mockRepo.On("CategoryTotals", mock.Anything).Return([]domain.GroupTotal{
		{Key: strPtr("صيانة"), Total: decimal.NewFromInt(200)},
	}, nil)
	suite.mockRepo.On("PersonTotals", mock.Anything).Return([]domain.GroupTotal{
		{Key: strPtr("Ali"), Total: decimal.NewFromInt(150)},
	}, nil)
	suite.mockRepo.On("PropertyTotals", mock.Anything).Return([]domain.GroupTotal{}, nil)
	suite.mockRepo.On("RecentOperations", mock.Anything, 5).Return([]domain.RecentEntry{
		{EntryID: 2, Date: "2024-01-02", Amount: decimal.NewFromInt(200), Direction: domain.DirectionOut, Details: strPtr("صيانة"), Origin: domain.OriginOperation},
		{EntryID: 1, Date: "2024-01-01", Amount: decimal.NewFromInt(1000), Direction: domain.DirectionIn, Origin: domain.OriginOperation},
	}, nil)
	suite.mockRepo.On("RecentTransfers", mock.Anything, 5).Return([]domain.RecentEntry{
		{EntryID: 1, Date: "2024-01-03", Amount: decimal.NewFromInt(150), Direction: domain.DirectionOut, Details: strPtr("Ali"), Origin: domain.OriginTransfer},
	}, nil)

	stats, err := suite.service.GetStats(ctx)

	suite.Require().NoError(err)
	suite.True(stats.Balance.Equal(decimal.NewFromInt(650)), "balance should be 1000 - (200 + 150)")
	suite.Require().Len(stats.Recent, 3)
	suite.Equal("2024-01-03", stats.Recent[0].Date)
	suite.Equal(domain.OriginTransfer, stats.Recent[0].Origin)
	suite.Equal("2024-01-02", stats.Recent[1].Date)
	suite.Equal("2024-01-01", stats.Recent[2].Date)
}

func (suite *ReportingServiceTestSuite) TestGetStats_BalanceCanGoNegative() {
	ctx := context.Background()
	suite.mockRepo.On("OperationTotals", mock.Anything).Return(
		decimal.NewFromInt(100), decimal.NewFromInt(300), nil)
	suite.mockRepo.On("TransferTotal", mock.Anything).Return(decimal.NewFromInt(50), nil)
	suite.mockEmptyBreakdowns()
	suite.mockEmptyRecent()

	stats, err := suite.service.GetStats(ctx)

	suite.Require().NoError(err)
	suite.True(stats.Balance.Equal(decimal.NewFromInt(-250)))
}

func (suite *ReportingServiceTestSuite) TestGetStats_PropertiesDropNullAndEmptyGroups() {
	ctx := context.Background()
	suite.mockRepo.On("OperationTotals", mock.Anything).Return(decimal.Zero, decimal.Zero, nil)
	suite.mockRepo.On("TransferTotal", mock.Anything).Return(decimal.Zero, nil)
	suite.mockRepo.On("CategoryTotals", mock.Anything).Return([]domain.GroupTotal{
		{Key: nil, Total: decimal.NewFromInt(40)},
		{Key: strPtr("إيجار"), Total: decimal.NewFromInt(10)},
	}, nil)
	suite.mockRepo.On("PersonTotals", mock.Anything).Return([]domain.GroupTotal{}, nil)
	suite.mockRepo.On("PropertyTotals", mock.Anything).Return([]domain.GroupTotal{
		{Key: strPtr("سكني"), Total: decimal.NewFromInt(70)},
		{Key: nil, Total: decimal.NewFromInt(30)},
		{Key: strPtr(""), Total: decimal.NewFromInt(20)},
	}, nil)
	suite.mockEmptyRecent()

	stats, err := suite.service.GetStats(ctx)

	suite.Require().NoError(err)
	// Categories keep their null group, properties never do.
	suite.Len(stats.Categories, 2)
	suite.Require().Len(stats.Properties, 1)
	suite.Equal("سكني", *stats.Properties[0].Key)
}

func (suite *ReportingServiceTestSuite) TestGetStats_RecentFeedTruncatedToEight() {
	ctx := context.Background()
	suite.mockRepo.On("OperationTotals", mock.Anything).Return(decimal.Zero, decimal.Zero, nil)
	suite.mockRepo.On("TransferTotal", mock.Anything).Return(decimal.Zero, nil)
	suite.mockEmptyBreakdowns()

	ops := make([]domain.RecentEntry, 5)
	for i := range ops {
		ops[i] = domain.RecentEntry{
			EntryID:   int64(i + 1),
			Date:      "2024-03-1" + string(rune('0'+i)),
			Amount:    decimal.NewFromInt(10),
			Direction: domain.DirectionIn,
			Origin:    domain.OriginOperation,
		}
	}
	transfers := make([]domain.RecentEntry, 5)
	for i := range transfers {
		transfers[i] = domain.RecentEntry{
			EntryID:   int64(i + 1),
			Date:      "2024-02-1" + string(rune('0'+i)),
			Amount:    decimal.NewFromInt(20),
			Direction: domain.DirectionOut,
			Origin:    domain.OriginTransfer,
		}
	}
	suite.mockRepo.On("RecentOperations", mock.Anything, 5).Return(ops, nil)
	suite.mockRepo.On("RecentTransfers", mock.Anything, 5).Return(transfers, nil)

	stats, err := suite.service.GetStats(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(stats.Recent, 8)
	for i := 1; i < len(stats.Recent); i++ {
		suite.GreaterOrEqual(stats.Recent[i-1].Date, stats.Recent[i].Date)
	}
	// March operations sort ahead of February transfers.
	suite.Equal("2024-03-14", stats.Recent[0].Date)
	suite.Equal(domain.OriginOperation, stats.Recent[0].Origin)
}

func (suite *ReportingServiceTestSuite) TestGetStats_RecentSameDateOrdersOperationsFirst() {
	ctx := context.Background()
	suite.mockRepo.On("OperationTotals", mock.Anything).Return(decimal.Zero, decimal.Zero, nil)
	suite.mockRepo.On("TransferTotal", mock.Anything).Return(decimal.Zero, nil)
	suite.mockEmptyBreakdowns()

	suite.mockRepo.On("RecentOperations", mock.Anything, 5).Return([]domain.RecentEntry{
		{EntryID: 7, Date: "2024-05-01", Amount: decimal.NewFromInt(1), Direction: domain.DirectionIn, Origin: domain.OriginOperation},
		{EntryID: 9, Date: "2024-05-01", Amount: decimal.NewFromInt(2), Direction: domain.DirectionOut, Origin: domain.OriginOperation},
	}, nil)
	suite.mockRepo.On("RecentTransfers", mock.Anything, 5).Return([]domain.RecentEntry{
		{EntryID: 3, Date: "2024-05-01", Amount: decimal.NewFromInt(3), Direction: domain.DirectionOut, Origin: domain.OriginTransfer},
	}, nil)

	stats, err := suite.service.GetStats(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(stats.Recent, 3)
	suite.Equal(domain.OriginOperation, stats.Recent[0].Origin)
	suite.Equal(int64(9), stats.Recent[0].EntryID)
	suite.Equal(int64(7), stats.Recent[1].EntryID)
	suite.Equal(domain.OriginTransfer, stats.Recent[2].Origin)
}

func TestReportingService(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
