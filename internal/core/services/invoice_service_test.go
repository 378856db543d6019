package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/core/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID, ownerID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoicesByOwner(ctx context.Context, ownerID string) ([]domain.Invoice, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID, ownerID string) error {
	args := m.Called(ctx, invoiceID, ownerID)
	return args.Error(0)
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// --- Test Suite ---
type InvoiceServiceTestSuite struct {
	suite.Suite
	mockRepo       *MockInvoiceRepository
	mockClientRepo *MockClientRepository
	service        portssvc.InvoiceSvcFacade
	ownerID        string
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockInvoiceRepository)
	suite.mockClientRepo = new(MockClientRepository)
	suite.service = services.NewInvoiceService(suite.mockRepo, suite.mockClientRepo)
	suite.ownerID = uuid.NewString()
}

// --- Test Cases ---

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_Success() {
	ctx := context.Background()
	req := dto.CreateInvoiceRequest{
		InvoiceNumber: "INV-001",
		Currency:      "EUR",
		TotalAmount:   decPtr("120.50"),
	}

	suite.mockRepo.On("SaveInvoice", ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.InvoiceNumber == "INV-001" &&
			inv.OwnerID == suite.ownerID &&
			inv.Status == domain.StatusDraft &&
			inv.TotalAmount.Equal(decimal.RequireFromString("120.50"))
	})).Return(nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, req, suite.ownerID)

	suite.Require().NoError(err)
	suite.Require().NotNil(invoice)
	suite.Equal(domain.StatusDraft, invoice.Status)
	suite.Empty(invoice.ClientID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_ChecksClientReference() {
	ctx := context.Background()
	clientID := uuid.NewString()
	req := dto.CreateInvoiceRequest{
		InvoiceNumber: "INV-002",
		ClientID:      &clientID,
	}

	suite.mockClientRepo.On("FindClientByID", ctx, clientID, suite.ownerID).
		Return(&domain.Client{ClientID: clientID, OwnerID: suite.ownerID}, nil).Once()
	suite.mockRepo.On("SaveInvoice", ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.ClientID == clientID
	})).Return(nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, req, suite.ownerID)

	suite.Require().NoError(err)
	suite.Equal(clientID, invoice.ClientID)
	suite.mockClientRepo.AssertExpectations(suite.T())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_ClientOfOtherOwnerRejected() {
	ctx := context.Background()
	clientID := uuid.NewString()
	req := dto.CreateInvoiceRequest{
		InvoiceNumber: "INV-003",
		ClientID:      &clientID,
	}

	// The referenced client exists but under a different owner, which the
	// owner-scoped lookup reports as absent. Nothing may be written.
	suite.mockClientRepo.On("FindClientByID", ctx, clientID, suite.ownerID).
		Return(nil, apperrors.ErrNotFound).Once()

	invoice, err := suite.service.CreateInvoice(ctx, req, suite.ownerID)

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_ReferenceCheckedBeforeWrite() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	newClientID := uuid.NewString()
	stored := &domain.Invoice{InvoiceID: invoiceID, OwnerID: suite.ownerID, InvoiceNumber: "INV-004"}

	suite.mockRepo.On("FindInvoiceByID", ctx, invoiceID, suite.ownerID).Return(stored, nil).Once()
	suite.mockClientRepo.On("FindClientByID", ctx, newClientID, suite.ownerID).
		Return(nil, apperrors.ErrNotFound).Once()

	invoice, err := suite.service.UpdateInvoice(ctx, invoiceID, dto.UpdateInvoiceRequest{
		ClientID: &newClientID,
		Notes:    strPtr("should not be persisted"),
	}, suite.ownerID)

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_DetachClientNeedsNoCheck() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	stored := &domain.Invoice{
		InvoiceID:     invoiceID,
		OwnerID:       suite.ownerID,
		ClientID:      uuid.NewString(),
		InvoiceNumber: "INV-005",
	}

	suite.mockRepo.On("FindInvoiceByID", ctx, invoiceID, suite.ownerID).Return(stored, nil).Once()
	suite.mockRepo.On("UpdateInvoice", ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.ClientID == ""
	})).Return(nil).Once()

	invoice, err := suite.service.UpdateInvoice(ctx, invoiceID, dto.UpdateInvoiceRequest{
		ClientID: strPtr(""),
	}, suite.ownerID)

	suite.Require().NoError(err)
	suite.Empty(invoice.ClientID)
	suite.mockClientRepo.AssertNotCalled(suite.T(), "FindClientByID", mock.Anything, mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_EmptyPatchIsNoOp() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	storedUpdatedAt := time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)
	stored := &domain.Invoice{
		InvoiceID:     invoiceID,
		OwnerID:       suite.ownerID,
		InvoiceNumber: "INV-006",
		AuditFields:   domain.AuditFields{UpdatedAt: storedUpdatedAt},
	}

	suite.mockRepo.On("FindInvoiceByID", ctx, invoiceID, suite.ownerID).Return(stored, nil).Once()

	invoice, err := suite.service.UpdateInvoice(ctx, invoiceID, dto.UpdateInvoiceRequest{}, suite.ownerID)

	suite.Require().NoError(err)
	suite.Equal(storedUpdatedAt, invoice.UpdatedAt)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_AmountsStoredVerbatim() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	stored := &domain.Invoice{
		InvoiceID:     invoiceID,
		OwnerID:       suite.ownerID,
		InvoiceNumber: "INV-007",
		SubTotal:      decimal.RequireFromString("100"),
		TotalAmount:   decimal.RequireFromString("100"),
	}

	suite.mockRepo.On("FindInvoiceByID", ctx, invoiceID, suite.ownerID).Return(stored, nil).Once()
	// No recomputation: the total stays inconsistent with the new subtotal.
	suite.mockRepo.On("UpdateInvoice", ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.SubTotal.Equal(decimal.RequireFromString("999")) &&
			inv.TotalAmount.Equal(decimal.RequireFromString("100"))
	})).Return(nil).Once()

	invoice, err := suite.service.UpdateInvoice(ctx, invoiceID, dto.UpdateInvoiceRequest{
		SubTotal: decPtr("999"),
	}, suite.ownerID)

	suite.Require().NoError(err)
	suite.True(invoice.TotalAmount.Equal(decimal.RequireFromString("100")))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestDeleteInvoice_ReturnsDeletedRecord() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	stored := &domain.Invoice{InvoiceID: invoiceID, OwnerID: suite.ownerID, InvoiceNumber: "INV-008"}

	suite.mockRepo.On("FindInvoiceByID", ctx, invoiceID, suite.ownerID).Return(stored, nil).Once()
	suite.mockRepo.On("DeleteInvoice", ctx, invoiceID, suite.ownerID).Return(nil).Once()

	deleted, err := suite.service.DeleteInvoice(ctx, invoiceID, suite.ownerID)

	suite.Require().NoError(err)
	suite.Equal(stored, deleted)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestDeleteInvoice_OtherOwnerLooksAbsent() {
	ctx := context.Background()
	invoiceID := uuid.NewString()

	suite.mockRepo.On("FindInvoiceByID", ctx, invoiceID, suite.ownerID).Return(nil, apperrors.ErrNotFound).Once()

	deleted, err := suite.service.DeleteInvoice(ctx, invoiceID, suite.ownerID)

	suite.Require().Error(err)
	suite.Nil(deleted)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteInvoice", mock.Anything, mock.Anything, mock.Anything)
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
