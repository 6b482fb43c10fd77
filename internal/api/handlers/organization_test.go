package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	apperrors "growth-roadmap-backend/internal/errors"
	"growth-roadmap-backend/internal/mocks"
	"growth-roadmap-backend/internal/service"
	"growth-roadmap-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// OrganizationHandlerTestSuite defines the test suite for OrganizationHandler
type OrganizationHandlerTestSuite struct {
	suite.Suite
	ctrl                    *gomock.Controller
	mockOrganizationService *mocks.MockOrganizationServiceInterface
	handler                 *OrganizationHandler
	httpSuite               *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *OrganizationHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOrganizationService = mocks.NewMockOrganizationServiceInterface(suite.ctrl)

	// Create handler with mock service
	suite.handler = NewOrganizationHandler(suite.mockOrganizationService)

	// Setup HTTP test suite
	suite.httpSuite = testutils.SetupHTTPTest()

	// Register routes
	v1 := suite.httpSuite.Router.Group("/api/v1")
	orgs := v1.Group("/organizations")
	{
		orgs.POST("", suite.handler.CreateOrganization)
		orgs.GET("", suite.handler.ListOrganizations)
		orgs.GET("/:id", suite.handler.GetOrganization)
	}
}

// TearDownTest cleans up after each test
func (suite *OrganizationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateOrganization tests creating an organization
func (suite *OrganizationHandlerTestSuite) TestCreateOrganization() {
	orgID := uuid.New()
	requestBody := map[string]interface{}{
		"name":         "acme",
		"display_name": "Acme Inc",
		"methodology":  "lean_startup",
	}

	expectedResponse := &service.OrganizationResponse{
		ID:          orgID,
		Name:        "acme",
		DisplayName: "Acme Inc",
		Methodology: "lean_startup",
		CreatedAt:   "2023-01-01T00:00:00Z",
		UpdatedAt:   "2023-01-01T00:00:00Z",
	}

	suite.mockOrganizationService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *service.CreateOrganizationRequest) (*service.OrganizationResponse, error) {
			assert.Equal(suite.T(), "acme", req.Name)
			return expectedResponse, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/organizations", requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response service.OrganizationResponse
	err := json.Unmarshal(recorder.Body.Bytes(), &response)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), orgID, response.ID)
	assert.Equal(suite.T(), "Acme Inc", response.DisplayName)
}

// TestCreateOrganizationErrors tests the error mapping of create
func (suite *OrganizationHandlerTestSuite) TestCreateOrganizationErrors() {
	testCases := []struct {
		name           string
		serviceErr     error
		expectedStatus int
	}{
		{"Validation", apperrors.NewValidationError("Name", "failed on the 'required' rule"), http.StatusBadRequest},
		{"AlreadyExists", apperrors.ErrOrganizationExists, http.StatusConflict},
		{"Internal", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.mockOrganizationService.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				Return(nil, tc.serviceErr).
				Times(1)

			recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/organizations", map[string]interface{}{"name": "acme"})

			assert.Equal(suite.T(), tc.expectedStatus, recorder.Code)
		})
	}
}

// TestCreateOrganizationInvalidJSON tests that malformed bodies never reach the service
func (suite *OrganizationHandlerTestSuite) TestCreateOrganizationInvalidJSON() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/organizations", "not an object")

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
	assert.Contains(suite.T(), recorder.Body.String(), "Invalid request body")
}

// TestGetOrganization tests getting an organization by ID
func (suite *OrganizationHandlerTestSuite) TestGetOrganization() {
	orgID := uuid.New()

	suite.mockOrganizationService.EXPECT().
		GetByID(gomock.Any(), orgID).
		Return(&service.OrganizationResponse{ID: orgID, Name: "acme"}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/organizations/"+orgID.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.Contains(suite.T(), recorder.Body.String(), `"name":"acme"`)
}

// TestGetOrganizationNotFound tests the 404 mapping
func (suite *OrganizationHandlerTestSuite) TestGetOrganizationNotFound() {
	orgID := uuid.New()

	suite.mockOrganizationService.EXPECT().
		GetByID(gomock.Any(), orgID).
		Return(nil, apperrors.ErrOrganizationNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/organizations/"+orgID.String(), nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
	assert.Contains(suite.T(), recorder.Body.String(), "organization not found")
}

// TestGetOrganizationInvalidID tests UUID validation of the path
func (suite *OrganizationHandlerTestSuite) TestGetOrganizationInvalidID() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/organizations/not-a-uuid", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
	assert.Contains(suite.T(), recorder.Body.String(), "Invalid organization ID")
}

// TestListOrganizations tests pagination parameter handling
func (suite *OrganizationHandlerTestSuite) TestListOrganizations() {
	testCases := []struct {
		name             string
		query            string
		expectedPage     int
		expectedPageSize int
	}{
		{"Defaults", "", 1, 20},
		{"Explicit", "?page=3&page_size=50", 3, 50},
		{"NegativePage", "?page=-1", 1, 20},
		{"OversizedPage", "?page_size=1000", 1, 20},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.mockOrganizationService.EXPECT().
				GetAll(gomock.Any(), tc.expectedPage, tc.expectedPageSize).
				Return(&service.OrganizationListResponse{
					Organizations: []service.OrganizationResponse{},
					Page:          tc.expectedPage,
					PageSize:      tc.expectedPageSize,
				}, nil).
				Times(1)

			recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/organizations"+tc.query, nil)

			assert.Equal(suite.T(), http.StatusOK, recorder.Code)
		})
	}
}

// TestOrganizationHandlerTestSuite runs the test suite
func TestOrganizationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationHandlerTestSuite))
}
