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
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// OKRServiceTestSuite defines the test suite for OKRService
type OKRServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	ctx              context.Context
	mockKRRepo       *mocks.MockKeyResultRepositoryInterface
	mockOrgRepo      *mocks.MockOrganizationRepositoryInterface
	mockPhaseService *mocks.MockPhaseServiceInterface
	okrService       *service.OKRService
	orgID            uuid.UUID
}

// SetupTest sets up the test suite
func (suite *OKRServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.ctx = context.Background()
	suite.mockKRRepo = mocks.NewMockKeyResultRepositoryInterface(suite.ctrl)
	suite.mockOrgRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockPhaseService = mocks.NewMockPhaseServiceInterface(suite.ctrl)
	suite.orgID = uuid.New()

	suite.okrService = service.NewOKRService(suite.mockKRRepo, suite.mockOrgRepo, suite.mockPhaseService, validator.New())
}

// TearDownTest cleans up after each test
func (suite *OKRServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *OKRServiceTestSuite) expectOrganization() {
	suite.mockOrgRepo.EXPECT().GetByID(gomock.Any(), suite.orgID).
		Return(&models.Organization{BaseModel: models.BaseModel{ID: suite.orgID}}, nil).AnyTimes()
}

func (suite *OKRServiceTestSuite) keyResult(current, target float64) *models.KeyResult {
	return &models.KeyResult{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: suite.orgID,
		ObjectiveTitle: "Grow revenue",
		Title:          "Paying customers",
		CurrentValue:   current,
		TargetValue:    target,
	}
}

// TestCreateKeyResult tests that the current value starts at the start value
func (suite *OKRServiceTestSuite) TestCreateKeyResult() {
	suite.expectOrganization()
	suite.mockKRRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, kr *models.KeyResult) error {
			suite.Equal(5.0, kr.CurrentValue)
			return nil
		})

	kr, err := suite.okrService.CreateKeyResult(suite.ctx, suite.orgID, &service.CreateKeyResultRequest{
		ObjectiveTitle: "Grow revenue",
		Title:          "Paying customers",
		StartValue:     5,
		TargetValue:    50,
	})

	suite.Require().NoError(err)
	suite.Equal(suite.orgID, kr.OrganizationID)
}

// TestCreateKeyResultValidation tests request validation
func (suite *OKRServiceTestSuite) TestCreateKeyResultValidation() {
	_, err := suite.okrService.CreateKeyResult(suite.ctx, suite.orgID, &service.CreateKeyResultRequest{Title: "x"})

	suite.True(apperrors.IsValidation(err))
	suite.Contains(err.Error(), "ObjectiveTitle")
}

// TestUpdateKeyResultProgress tests the update and the recompute it triggers
func (suite *OKRServiceTestSuite) TestUpdateKeyResultProgress() {
	kr := suite.keyResult(10, 50)
	current := 30.0

	suite.mockKRRepo.EXPECT().GetByID(gomock.Any(), kr.ID).Return(kr, nil)
	gomock.InOrder(
		suite.mockKRRepo.EXPECT().UpdateCurrent(gomock.Any(), kr.ID, 30.0).Return(nil),
		suite.mockPhaseService.EXPECT().RecomputeOrganization(gomock.Any(), suite.orgID).Return(nil, nil),
	)

	updated, err := suite.okrService.UpdateKeyResultProgress(suite.ctx, suite.orgID, kr.ID,
		&service.UpdateKeyResultProgressRequest{CurrentValue: &current})

	suite.Require().NoError(err)
	suite.Equal(30.0, updated.CurrentValue)
}

// TestUpdateKeyResultProgressErrors tests the update rejections
func (suite *OKRServiceTestSuite) TestUpdateKeyResultProgressErrors() {
	current := 1.0

	suite.Run("missing value", func() {
		_, err := suite.okrService.UpdateKeyResultProgress(suite.ctx, suite.orgID, uuid.New(),
			&service.UpdateKeyResultProgressRequest{})
		suite.True(apperrors.IsValidation(err))
	})

	suite.Run("another organization", func() {
		kr := suite.keyResult(0, 10)
		kr.OrganizationID = uuid.New()
		suite.mockKRRepo.EXPECT().GetByID(gomock.Any(), kr.ID).Return(kr, nil)

		_, err := suite.okrService.UpdateKeyResultProgress(suite.ctx, suite.orgID, kr.ID,
			&service.UpdateKeyResultProgressRequest{CurrentValue: &current})
		suite.ErrorIs(err, apperrors.ErrKeyResultNotFound)
	})

	suite.Run("deleted meanwhile", func() {
		kr := suite.keyResult(0, 10)
		suite.mockKRRepo.EXPECT().GetByID(gomock.Any(), kr.ID).Return(kr, nil)
		suite.mockKRRepo.EXPECT().UpdateCurrent(gomock.Any(), kr.ID, current).Return(gorm.ErrRecordNotFound)

		_, err := suite.okrService.UpdateKeyResultProgress(suite.ctx, suite.orgID, kr.ID,
			&service.UpdateKeyResultProgressRequest{CurrentValue: &current})
		suite.ErrorIs(err, apperrors.ErrKeyResultNotFound)
	})
}

// TestGetStatus tests the OKR linkage guard
func (suite *OKRServiceTestSuite) TestGetStatus() {
	testCases := []struct {
		name    string
		count   int64
		allowed bool
	}{
		{name: "no key results", count: 0, allowed: false},
		{name: "with key results", count: 3, allowed: true},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.expectOrganization()
			suite.mockKRRepo.EXPECT().CountByOrganization(gomock.Any(), suite.orgID).Return(tc.count, nil)

			status, err := suite.okrService.GetStatus(suite.ctx, suite.orgID)

			suite.Require().NoError(err)
			suite.Equal(tc.allowed, status.AllowObjectiveProgress)
			suite.Equal(tc.allowed, status.HasGeneratedOKRs)
			suite.Equal(tc.count, status.KeyResultCount)
		})
	}
}

// TestHasGeneratedOKRs tests the repository error path
func (suite *OKRServiceTestSuite) TestHasGeneratedOKRs() {
	suite.mockKRRepo.EXPECT().CountByOrganization(gomock.Any(), suite.orgID).Return(int64(0), errors.New("boom"))

	has, err := suite.okrService.HasGeneratedOKRs(suite.ctx, suite.orgID)

	suite.Error(err)
	suite.False(has)
}

// TestGetObjectiveProgress tests completion of a key result
func (suite *OKRServiceTestSuite) TestGetObjectiveProgress() {
	testCases := []struct {
		name       string
		current    float64
		target     float64
		percent    int
		complete   bool
		degenerate bool
	}{
		{name: "in progress", current: 12, target: 50, percent: 24},
		{name: "reached", current: 50, target: 50, percent: 100, complete: true},
		{name: "exceeded", current: 80, target: 50, percent: 100, complete: true},
		{name: "zero target", current: 0, target: 0, percent: 100, complete: true, degenerate: true},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			kr := suite.keyResult(tc.current, tc.target)
			suite.mockKRRepo.EXPECT().GetByID(gomock.Any(), kr.ID).Return(kr, nil)

			progress, err := suite.okrService.GetObjectiveProgress(suite.ctx, suite.orgID, kr.ID)

			suite.Require().NoError(err)
			suite.Equal(tc.percent, progress.Percent)
			suite.Equal(tc.complete, progress.IsComplete)
			suite.Equal(tc.degenerate, progress.Degenerate)
		})
	}
}

func TestOKRServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OKRServiceTestSuite))
}
