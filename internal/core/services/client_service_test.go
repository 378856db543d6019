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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ClientRepository ---
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) FindClientByID(ctx context.Context, clientID, ownerID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) ListClientsByOwner(ctx context.Context, ownerID string) ([]domain.Client, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) DeleteClient(ctx context.Context, clientID, ownerID string) error {
	args := m.Called(ctx, clientID, ownerID)
	return args.Error(0)
}

func strPtr(s string) *string {
	return &s
}

// --- Test Suite ---
type ClientServiceTestSuite struct {
	suite.Suite
	mockRepo *MockClientRepository
	service  portssvc.ClientSvcFacade
	ownerID  string
}

func (suite *ClientServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockClientRepository)
	suite.service = services.NewClientService(suite.mockRepo)
	suite.ownerID = uuid.NewString()
}

// --- Test Cases ---

func (suite *ClientServiceTestSuite) TestCreateClient_Success() {
	ctx := context.Background()
	req := dto.CreateClientRequest{
		DisplayName: "Acme Corp",
		Email:       "billing@acme.test",
	}

	suite.mockRepo.On("SaveClient", ctx, mock.MatchedBy(func(c domain.Client) bool {
		return c.DisplayName == req.DisplayName && c.OwnerID == suite.ownerID && c.ClientID != ""
	})).Return(nil).Once()

	client, err := suite.service.CreateClient(ctx, req, suite.ownerID)

	suite.Require().NoError(err)
	suite.Require().NotNil(client)
	suite.Equal(req.DisplayName, client.DisplayName)
	suite.Equal(suite.ownerID, client.OwnerID)
	suite.NotEmpty(client.ClientID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestCreateClient_CallerSuppliedID() {
	ctx := context.Background()
	suppliedID := uuid.NewString()
	req := dto.CreateClientRequest{
		ClientID:    &suppliedID,
		DisplayName: "Acme Corp",
	}

	suite.mockRepo.On("SaveClient", ctx, mock.MatchedBy(func(c domain.Client) bool {
		return c.ClientID == suppliedID
	})).Return(nil).Once()

	client, err := suite.service.CreateClient(ctx, req, suite.ownerID)

	suite.Require().NoError(err)
	suite.Equal(suppliedID, client.ClientID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestCreateClient_DuplicateID() {
	ctx := context.Background()
	suppliedID := uuid.NewString()
	req := dto.CreateClientRequest{
		ClientID:    &suppliedID,
		DisplayName: "Acme Corp",
	}

	suite.mockRepo.On("SaveClient", ctx, mock.AnythingOfType("domain.Client")).Return(apperrors.ErrDuplicate).Once()

	client, err := suite.service.CreateClient(ctx, req, suite.ownerID)

	suite.Require().Error(err)
	suite.Nil(client)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestCreateClient_MissingDisplayName() {
	ctx := context.Background()
	req := dto.CreateClientRequest{DisplayName: "   "}

	client, err := suite.service.CreateClient(ctx, req, suite.ownerID)

	suite.Require().Error(err)
	suite.Nil(client)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveClient", mock.Anything, mock.Anything)
}

func (suite *ClientServiceTestSuite) TestGetClientByID_OtherOwnerLooksAbsent() {
	ctx := context.Background()
	clientID := uuid.NewString()

	// The repository scopes the lookup by owner, so a record held by a
	// different owner surfaces exactly like a missing one.
	suite.mockRepo.On("FindClientByID", ctx, clientID, suite.ownerID).Return(nil, apperrors.ErrNotFound).Once()

	client, err := suite.service.GetClientByID(ctx, clientID, suite.ownerID)

	suite.Require().Error(err)
	suite.Nil(client)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestUpdateClient_MergesOnlyProvidedFields() {
	ctx := context.Background()
	clientID := uuid.NewString()
	stored := &domain.Client{
		ClientID:    clientID,
		OwnerID:     suite.ownerID,
		DisplayName: "Acme Corp",
		Email:       "old@acme.test",
		Phone:       "555-0100",
	}

	suite.mockRepo.On("FindClientByID", ctx, clientID, suite.ownerID).Return(stored, nil).Once()
	suite.mockRepo.On("UpdateClient", ctx, mock.MatchedBy(func(c domain.Client) bool {
		return c.Email == "new@acme.test" && c.Phone == "555-0100" && c.DisplayName == "Acme Corp"
	})).Return(nil).Once()

	updated, err := suite.service.UpdateClient(ctx, clientID, dto.UpdateClientRequest{
		Email: strPtr("new@acme.test"),
	}, suite.ownerID)

	suite.Require().NoError(err)
	suite.Equal("new@acme.test", updated.Email)
	suite.Equal("555-0100", updated.Phone)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestUpdateClient_ExplicitEmptyOverwrites() {
	ctx := context.Background()
	clientID := uuid.NewString()
	stored := &domain.Client{
		ClientID:    clientID,
		OwnerID:     suite.ownerID,
		DisplayName: "Acme Corp",
		Notes:       "old notes",
	}

	suite.mockRepo.On("FindClientByID", ctx, clientID, suite.ownerID).Return(stored, nil).Once()
	suite.mockRepo.On("UpdateClient", ctx, mock.MatchedBy(func(c domain.Client) bool {
		return c.Notes == ""
	})).Return(nil).Once()

	updated, err := suite.service.UpdateClient(ctx, clientID, dto.UpdateClientRequest{
		Notes: strPtr(""),
	}, suite.ownerID)

	suite.Require().NoError(err)
	suite.Empty(updated.Notes)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestUpdateClient_EmptyPatchIsNoOp() {
	ctx := context.Background()
	clientID := uuid.NewString()
	storedUpdatedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	stored := &domain.Client{
		ClientID:    clientID,
		OwnerID:     suite.ownerID,
		DisplayName: "Acme Corp",
		AuditFields: domain.AuditFields{UpdatedAt: storedUpdatedAt},
	}

	suite.mockRepo.On("FindClientByID", ctx, clientID, suite.ownerID).Return(stored, nil).Once()

	updated, err := suite.service.UpdateClient(ctx, clientID, dto.UpdateClientRequest{}, suite.ownerID)

	suite.Require().NoError(err)
	suite.Equal(storedUpdatedAt, updated.UpdatedAt)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateClient", mock.Anything, mock.Anything)
}

func (suite *ClientServiceTestSuite) TestUpdateClient_EmptyDisplayNameRejected() {
	ctx := context.Background()
	clientID := uuid.NewString()
	stored := &domain.Client{ClientID: clientID, OwnerID: suite.ownerID, DisplayName: "Acme Corp"}

	suite.mockRepo.On("FindClientByID", ctx, clientID, suite.ownerID).Return(stored, nil).Once()

	updated, err := suite.service.UpdateClient(ctx, clientID, dto.UpdateClientRequest{
		DisplayName: strPtr(""),
	}, suite.ownerID)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateClient", mock.Anything, mock.Anything)
}

func (suite *ClientServiceTestSuite) TestDeleteClient_ReturnsDeletedRecord() {
	ctx := context.Background()
	clientID := uuid.NewString()
	stored := &domain.Client{ClientID: clientID, OwnerID: suite.ownerID, DisplayName: "Acme Corp"}

	suite.mockRepo.On("FindClientByID", ctx, clientID, suite.ownerID).Return(stored, nil).Once()
	suite.mockRepo.On("DeleteClient", ctx, clientID, suite.ownerID).Return(nil).Once()

	deleted, err := suite.service.DeleteClient(ctx, clientID, suite.ownerID)

	suite.Require().NoError(err)
	suite.Equal(stored, deleted)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestDeleteClient_NotFound() {
	ctx := context.Background()
	clientID := uuid.NewString()

	suite.mockRepo.On("FindClientByID", ctx, clientID, suite.ownerID).Return(nil, apperrors.ErrNotFound).Once()

	deleted, err := suite.service.DeleteClient(ctx, clientID, suite.ownerID)

	suite.Require().Error(err)
	suite.Nil(deleted)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteClient", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ClientServiceTestSuite) TestListClients_Empty() {
	ctx := context.Background()

	suite.mockRepo.On("ListClientsByOwner", ctx, suite.ownerID).Return([]domain.Client{}, nil).Once()

	clients, err := suite.service.ListClients(ctx, suite.ownerID)

	suite.Require().NoError(err)
	suite.Empty(clients)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestListClients_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("ListClientsByOwner", ctx, suite.ownerID).Return(nil, expectedErr).Once()

	clients, err := suite.service.ListClients(ctx, suite.ownerID)

	suite.Require().Error(err)
	suite.Nil(clients)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestClientServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ClientServiceTestSuite))
}
