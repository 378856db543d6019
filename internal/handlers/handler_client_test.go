package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
	"github.com/finbooks/finbooks_backend/internal/handlers"
	"github.com/finbooks/finbooks_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ClientService ---
type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) CreateClient(ctx context.Context, req dto.CreateClientRequest, ownerID string) (*domain.Client, error) {
	args := m.Called(ctx, req, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientService) GetClientByID(ctx context.Context, clientID, ownerID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientService) ListClients(ctx context.Context, ownerID string) ([]domain.Client, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientService) UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, ownerID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID, req, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientService) DeleteClient(ctx context.Context, clientID, ownerID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.ClientSvcFacade = (*MockClientService)(nil)

// --- Test Suite ---
type ClientHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockClientService *MockClientService
	jwtSecret         string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *ClientHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "finbooks-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *ClientHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockClientService = new(MockClientService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterClientRoutes(v1, suite.mockClientService)
}

// --- Test Cases ---

func (suite *ClientHandlerTestSuite) TestCreateClient_Success() {
	ownerID := uuid.NewString()
	reqBody := dto.CreateClientRequest{DisplayName: "Acme Corp"}
	created := &domain.Client{
		ClientID:    uuid.NewString(),
		OwnerID:     ownerID,
		DisplayName: "Acme Corp",
	}

	suite.mockClientService.On("CreateClient",
		mock.AnythingOfType("*context.valueCtx"),
		mock.MatchedBy(func(r dto.CreateClientRequest) bool { return r.DisplayName == "Acme Corp" }),
		ownerID,
	).Return(created, nil).Once()

	body, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/clients", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(ownerID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.ClientResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.ClientID, resp.ClientID)
	suite.Equal(ownerID, resp.OwnerID)
	suite.mockClientService.AssertExpectations(suite.T())
}

func (suite *ClientHandlerTestSuite) TestCreateClient_MissingBearerToken() {
	body, _ := json.Marshal(dto.CreateClientRequest{DisplayName: "Acme Corp"})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/clients", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockClientService.AssertNotCalled(suite.T(), "CreateClient", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ClientHandlerTestSuite) TestGetClient_NotFoundForOtherOwner() {
	ownerID := uuid.NewString()
	clientID := uuid.NewString()

	suite.mockClientService.On("GetClientByID",
		mock.AnythingOfType("*context.valueCtx"), clientID, ownerID,
	).Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/clients/"+clientID, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(ownerID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockClientService.AssertExpectations(suite.T())
}

func (suite *ClientHandlerTestSuite) TestUpdateClient_ValidationError() {
	ownerID := uuid.NewString()
	clientID := uuid.NewString()
	empty := ""

	suite.mockClientService.On("UpdateClient",
		mock.AnythingOfType("*context.valueCtx"),
		clientID,
		mock.AnythingOfType("dto.UpdateClientRequest"),
		ownerID,
	).Return(nil, apperrors.ErrValidation).Once()

	body, _ := json.Marshal(dto.UpdateClientRequest{DisplayName: &empty})
	req, _ := http.NewRequest(http.MethodPut, "/api/v1/clients/"+clientID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(ownerID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockClientService.AssertExpectations(suite.T())
}

func (suite *ClientHandlerTestSuite) TestDeleteClient_ReturnsDeletedRecord() {
	ownerID := uuid.NewString()
	clientID := uuid.NewString()
	deleted := &domain.Client{ClientID: clientID, OwnerID: ownerID, DisplayName: "Acme Corp"}

	suite.mockClientService.On("DeleteClient",
		mock.AnythingOfType("*context.valueCtx"), clientID, ownerID,
	).Return(deleted, nil).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/clients/"+clientID, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(ownerID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ClientResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(clientID, resp.ClientID)
	suite.mockClientService.AssertExpectations(suite.T())
}

func TestClientHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ClientHandlerTestSuite))
}
