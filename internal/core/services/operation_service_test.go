package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/AbdulmosenAlmuzaini/malek/internal/apperrors"
	"github.com/AbdulmosenAlmuzaini/malek/internal/core/domain"
	portsrepo "github.com/AbdulmosenAlmuzaini/malek/internal/core/ports/repositories"
	portssvc "github.com/AbdulmosenAlmuzaini/malek/internal/core/ports/services"
	"github.com/AbdulmosenAlmuzaini/malek/internal/core/services"
	"github.com/AbdulmosenAlmuzaini/malek/internal/dto"
)

// --- Mock OperationRepository ---

type MockOperationRepository struct {
	mock.Mock
}

func (m *MockOperationRepository) SaveOperation(ctx context.Context, op *domain.Operation) error {
	args := m.Called(ctx, op)
	return args.Error(0)
}

func (m *MockOperationRepository) FindOperationByID(ctx context.Context, operationID int64) (*domain.Operation, error) {
	args := m.Called(ctx, operationID)
	var op *domain.Operation
	if args.Get(0) != nil {
		op = args.Get(0).(*domain.Operation)
	}
	return op, args.Error(1)
}

func (m *MockOperationRepository) FindOperations(ctx context.Context, filter portsrepo.OperationFilter) ([]domain.Operation, error) {
	args := m.Called(ctx, filter)
	var ops []domain.Operation
	if args.Get(0) != nil {
		ops = args.Get(0).([]domain.Operation)
	}
	return ops, args.Error(1)
}

func (m *MockOperationRepository) UpdateOperation(ctx context.Context, op *domain.Operation) error {
	args := m.Called(ctx, op)
	return args.Error(0)
}

func (m *MockOperationRepository) DeleteOperation(ctx context.Context, operationID int64) error {
	args := m.Called(ctx, operationID)
	return args.Error(0)
}

// --- Test Suite ---

type OperationServiceTestSuite struct {
	suite.Suite
	mockRepo *MockOperationRepository
	service  portssvc.OperationSvcFacade
}

func (suite *OperationServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockOperationRepository)
	suite.service = services.NewOperationService(suite.mockRepo)
}

func (suite *OperationServiceTestSuite) TestCreateOperation_Success() {
	ctx := context.Background()
	req := dto.CreateOperationRequest{
		Date:      "2024-06-01",
		Direction: "in",
		Amount:    "1250.50",
		Category:  "إيجار",
	}
	suite.mockRepo.On("SaveOperation", ctx, mock.MatchedBy(func(op *domain.Operation) bool {
		return op.Date == "2024-06-01" &&
			op.Direction == domain.DirectionIn &&
			op.Amount.Equal(decimal.RequireFromString("1250.50")) &&
			op.Category != nil && *op.Category == "إيجار" &&
			op.CreatedBy == int64(42)
	})).Return(nil).Once()

	op, err := suite.service.CreateOperation(ctx, req, 42)

	suite.Require().NoError(err)
	suite.Require().NotNil(op)
	suite.Nil(op.PropertyType, "empty form fields should store as null")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *OperationServiceTestSuite) TestCreateOperation_EmptyAmountCoercesToZero() {
	ctx := context.Background()
	req := dto.CreateOperationRequest{Date: "2024-06-01", Direction: "out"}
	suite.mockRepo.On("SaveOperation", ctx, mock.MatchedBy(func(op *domain.Operation) bool {
		return op.Amount.IsZero()
	})).Return(nil).Once()

	op, err := suite.service.CreateOperation(ctx, req, 1)

	suite.Require().NoError(err)
	suite.True(op.Amount.IsZero())
}

func (suite *OperationServiceTestSuite) TestCreateOperation_NonNumericAmountRejected() {
	ctx := context.Background()
	req := dto.CreateOperationRequest{Date: "2024-06-01", Direction: "in", Amount: "abc"}

	op, err := suite.service.CreateOperation(ctx, req, 1)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(op)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveOperation")
}

func (suite *OperationServiceTestSuite) TestCreateOperation_NegativeAmountRejected() {
	ctx := context.Background()
	req := dto.CreateOperationRequest{Date: "2024-06-01", Direction: "in", Amount: "-5"}

	_, err := suite.service.CreateOperation(ctx, req, 1)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *OperationServiceTestSuite) TestCreateOperation_MissingDateOrDirectionRejected() {
	ctx := context.Background()

	_, err := suite.service.CreateOperation(ctx, dto.CreateOperationRequest{Direction: "in"}, 1)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.CreateOperation(ctx, dto.CreateOperationRequest{Date: "2024-06-01"}, 1)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *OperationServiceTestSuite) TestCreateOperation_InvalidDirectionRejected() {
	ctx := context.Background()
	req := dto.CreateOperationRequest{Date: "2024-06-01", Direction: "sideways"}

	_, err := suite.service.CreateOperation(ctx, req, 1)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *OperationServiceTestSuite) TestUpdateOperation_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindOperationByID", ctx, int64(99)).Return(nil, nil).Once()

	op, err := suite.service.UpdateOperation(ctx, 99, dto.UpdateOperationRequest{})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(op)
}

func (suite *OperationServiceTestSuite) TestUpdateOperation_RowDeletedMidUpdate() {
	ctx := context.Background()
	existing := &domain.Operation{
		OperationID: 8,
		Date:        "2024-02-01",
		Direction:   domain.DirectionIn,
	}
	suite.mockRepo.On("FindOperationByID", ctx, int64(8)).Return(existing, nil).Once()
	// A concurrent delete lands between the existence check and the
	// update; the repository reports not-found, not a plain failure.
	suite.mockRepo.On("UpdateOperation", ctx, mock.Anything).Return(apperrors.ErrNotFound).Once()

	op, err := suite.service.UpdateOperation(ctx, 8, dto.UpdateOperationRequest{Amount: "10"})

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(op)
}

func (suite *OperationServiceTestSuite) TestUpdateOperation_KeepsStoredDateDirectionAndAttachment() {
	ctx := context.Background()
	attachment := "/uploads/existing.pdf"
	existing := &domain.Operation{
		OperationID:    7,
		Date:           "2024-01-15",
		Direction:      domain.DirectionOut,
		Amount:         decimal.NewFromInt(100),
		AttachmentPath: &attachment,
		CreatedBy:      3,
		CreatedAt:      time.Now(),
	}
	suite.mockRepo.On("FindOperationByID", ctx, int64(7)).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateOperation", ctx, mock.MatchedBy(func(op *domain.Operation) bool {
		return op.OperationID == int64(7) &&
			op.Date == "2024-01-15" &&
			op.Direction == domain.DirectionOut &&
			op.AttachmentPath != nil && *op.AttachmentPath == attachment &&
			op.CreatedBy == int64(3)
	})).Return(nil).Once()

	op, err := suite.service.UpdateOperation(ctx, 7, dto.UpdateOperationRequest{Amount: "250"})

	suite.Require().NoError(err)
	suite.True(op.Amount.Equal(decimal.NewFromInt(250)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *OperationServiceTestSuite) TestUpdateOperation_NewAttachmentReplacesStored() {
	ctx := context.Background()
	old := "/uploads/old.pdf"
	existing := &domain.Operation{
		OperationID:    7,
		Date:           "2024-01-15",
		Direction:      domain.DirectionOut,
		AttachmentPath: &old,
	}
	suite.mockRepo.On("FindOperationByID", ctx, int64(7)).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateOperation", ctx, mock.MatchedBy(func(op *domain.Operation) bool {
		return op.AttachmentPath != nil && *op.AttachmentPath == "/uploads/new.png"
	})).Return(nil).Once()

	_, err := suite.service.UpdateOperation(ctx, 7, dto.UpdateOperationRequest{AttachmentPath: "/uploads/new.png"})

	suite.Require().NoError(err)
}

func TestOperationService(t *testing.T) {
	suite.Run(t, new(OperationServiceTestSuite))
}
