package service_test

import (
	"context"
	"errors"
	"testing"

	"growth-roadmap-backend/internal/database/models"
	apperrors "growth-roadmap-backend/internal/errors"
	"growth-roadmap-backend/internal/mocks"
	"growth-roadmap-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// OrganizationServiceTestSuite defines the test suite for OrganizationService
type OrganizationServiceTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	ctx                 context.Context
	mockOrgRepo         *mocks.MockOrganizationRepositoryInterface
	organizationService *service.OrganizationService
	validator           *validator.Validate
}

// SetupTest sets up the test suite
func (suite *OrganizationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.ctx = context.Background()
	suite.mockOrgRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.organizationService = service.NewOrganizationService(suite.mockOrgRepo, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *OrganizationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateOrganization tests creating an organization
func (suite *OrganizationServiceTestSuite) TestCreateOrganization() {
	req := &service.CreateOrganizationRequest{
		Name:        "test-org",
		DisplayName: "Test Organization",
		Description: "A test organization",
	}

	suite.mockOrgRepo.EXPECT().
		GetByName(gomock.Any(), req.Name).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockOrgRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, org *models.Organization) error {
			org.ID = uuid.New()
			return nil
		}).
		Times(1)

	response, err := suite.organizationService.Create(suite.ctx, req)

	suite.NoError(err)
	suite.NotNil(response)
	suite.Equal(req.Name, response.Name)
	suite.Equal(req.DisplayName, response.DisplayName)
	suite.Equal(models.MethodologyLeanStartup, response.Methodology, "methodology defaults to lean startup")
	suite.NotEqual(uuid.Nil, response.ID)
}

// TestCreateOrganizationNameExists tests creating an organization with an existing name
func (suite *OrganizationServiceTestSuite) TestCreateOrganizationNameExists() {
	req := &service.CreateOrganizationRequest{
		Name:        "existing-org",
		DisplayName: "Existing Organization",
	}

	suite.mockOrgRepo.EXPECT().
		GetByName(gomock.Any(), req.Name).
		Return(&models.Organization{Name: req.Name}, nil).
		Times(1)

	response, err := suite.organizationService.Create(suite.ctx, req)

	suite.Nil(response)
	suite.ErrorIs(err, apperrors.ErrOrganizationExists)
}

// TestCreateOrganizationRace tests a concurrent insert with the same name
func (suite *OrganizationServiceTestSuite) TestCreateOrganizationRace() {
	req := &service.CreateOrganizationRequest{
		Name:        "racy-org",
		DisplayName: "Racy Organization",
		Methodology: models.MethodologyScalingUp,
	}

	suite.mockOrgRepo.EXPECT().GetByName(gomock.Any(), req.Name).Return(nil, gorm.ErrRecordNotFound)
	suite.mockOrgRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&pgconn.PgError{Code: "23505"})

	_, err := suite.organizationService.Create(suite.ctx, req)

	suite.ErrorIs(err, apperrors.ErrOrganizationExists)
}

// TestCreateOrganizationValidation tests request validation
func (suite *OrganizationServiceTestSuite) TestCreateOrganizationValidation() {
	testCases := []struct {
		name    string
		request *service.CreateOrganizationRequest
		field   string
	}{
		{
			name:    "missing name",
			request: &service.CreateOrganizationRequest{DisplayName: "Test"},
			field:   "Name",
		},
		{
			name:    "missing display name",
			request: &service.CreateOrganizationRequest{Name: "test"},
			field:   "DisplayName",
		},
		{
			name:    "unknown methodology",
			request: &service.CreateOrganizationRequest{Name: "test", DisplayName: "Test", Methodology: "waterfall"},
			field:   "Methodology",
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			response, err := suite.organizationService.Create(suite.ctx, tc.request)

			suite.Nil(response)
			suite.True(apperrors.IsValidation(err))
			suite.Contains(err.Error(), tc.field)
		})
	}
}

// TestGetByID tests retrieving an organization by ID
func (suite *OrganizationServiceTestSuite) TestGetByID() {
	orgID := uuid.New()
	org := &models.Organization{
		BaseModel:   models.BaseModel{ID: orgID},
		Name:        "test-org",
		DisplayName: "Test Organization",
		Methodology: models.MethodologyScalingUp,
	}

	suite.mockOrgRepo.EXPECT().GetByID(gomock.Any(), orgID).Return(org, nil).Times(1)

	response, err := suite.organizationService.GetByID(suite.ctx, orgID)

	suite.NoError(err)
	suite.Equal(orgID, response.ID)
	suite.Equal(models.MethodologyScalingUp, response.Methodology)
}

// TestGetByIDNotFound tests retrieving a non-existent organization
func (suite *OrganizationServiceTestSuite) TestGetByIDNotFound() {
	orgID := uuid.New()

	suite.mockOrgRepo.EXPECT().GetByID(gomock.Any(), orgID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	response, err := suite.organizationService.GetByID(suite.ctx, orgID)

	suite.Nil(response)
	suite.ErrorIs(err, apperrors.ErrOrganizationNotFound)
}

// TestGetAll tests pagination defaults
func (suite *OrganizationServiceTestSuite) TestGetAll() {
	testCases := []struct {
		name           string
		page           int
		pageSize       int
		expectedLimit  int
		expectedOffset int
	}{
		{name: "first page", page: 1, pageSize: 10, expectedLimit: 10, expectedOffset: 0},
		{name: "third page", page: 3, pageSize: 10, expectedLimit: 10, expectedOffset: 20},
		{name: "defaults", page: 0, pageSize: 0, expectedLimit: 20, expectedOffset: 0},
		{name: "oversized page", page: 1, pageSize: 500, expectedLimit: 20, expectedOffset: 0},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			orgs := []models.Organization{{Name: "a"}, {Name: "b"}}
			suite.mockOrgRepo.EXPECT().
				GetAll(gomock.Any(), tc.expectedLimit, tc.expectedOffset).
				Return(orgs, int64(42), nil).
				Times(1)

			response, err := suite.organizationService.GetAll(suite.ctx, tc.page, tc.pageSize)

			suite.NoError(err)
			suite.Len(response.Organizations, 2)
			suite.Equal(int64(42), response.Total)
			suite.Equal(tc.expectedLimit, response.PageSize)
		})
	}
}

// TestGetAllRepositoryError tests a failing repository
func (suite *OrganizationServiceTestSuite) TestGetAllRepositoryError() {
	suite.mockOrgRepo.EXPECT().GetAll(gomock.Any(), 20, 0).Return(nil, int64(0), errors.New("database error"))

	response, err := suite.organizationService.GetAll(suite.ctx, 1, 20)

	suite.Nil(response)
	suite.Contains(err.Error(), "database error")
}

func TestOrganizationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationServiceTestSuite))
}

func TestCreateOrganizationRequestMetadata(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockOrganizationRepositoryInterface(ctrl)
	svc := service.NewOrganizationService(repo, validator.New())

	repo.EXPECT().GetByName(gomock.Any(), "meta").Return(nil, gorm.ErrRecordNotFound)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, org *models.Organization) error {
			assert.JSONEq(t, `{"industry":"saas"}`, string(org.Metadata))
			return nil
		})

	resp, err := svc.Create(context.Background(), &service.CreateOrganizationRequest{
		Name:        "meta",
		DisplayName: "Meta",
		Metadata:    []byte(`{"industry":"saas"}`),
	})

	assert.NoError(t, err)
	assert.JSONEq(t, `{"industry":"saas"}`, string(resp.Metadata))
}
