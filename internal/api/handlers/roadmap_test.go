package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"growth-roadmap-backend/internal/database/models"
	apperrors "growth-roadmap-backend/internal/errors"
	"growth-roadmap-backend/internal/mocks"
	"growth-roadmap-backend/internal/progression"
	"growth-roadmap-backend/internal/service"
	"growth-roadmap-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// RoadmapHandlerTestSuite defines the test suite for RoadmapHandler
type RoadmapHandlerTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockPhaseService *mocks.MockPhaseServiceInterface
	handler          *RoadmapHandler
	httpSuite        *testutils.HTTPTestSuite
	orgID            uuid.UUID
}

// SetupTest sets up the test suite
func (suite *RoadmapHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPhaseService = mocks.NewMockPhaseServiceInterface(suite.ctrl)
	suite.handler = NewRoadmapHandler(suite.mockPhaseService)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.orgID = uuid.New()

	org := suite.httpSuite.Router.Group("/api/v1/organizations/:id")
	{
		org.GET("/roadmap", suite.handler.GetRoadmap)
		org.POST("/roadmap/generate", suite.handler.GenerateRoadmap)
		org.POST("/roadmap/recompute", suite.handler.Recompute)
		org.GET("/phases/:number/activation-preview", suite.handler.ActivationPreview)
		org.POST("/phases/:number/activate", suite.handler.Activate)
		org.POST("/phases/:number/regenerate", suite.handler.Regenerate)
		org.POST("/phases/:number/skip", suite.handler.Skip)
	}
}

// TearDownTest cleans up after each test
func (suite *RoadmapHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RoadmapHandlerTestSuite) url(path string) string {
	return "/api/v1/organizations/" + suite.orgID.String() + path
}

func (suite *RoadmapHandlerTestSuite) roadmap(active int) *progression.RoadmapView {
	return &progression.RoadmapView{
		OrganizationID: suite.orgID,
		Phases: []progression.PhaseView{
			{PhaseNumber: 1, PhaseName: "Discover", Status: models.PhaseStatusActive},
			{PhaseNumber: 2, PhaseName: "Validate", Status: models.PhaseStatusPending, CanActivate: true},
		},
		ActivePhaseNumber: &active,
	}
}

// TestGetRoadmap tests fetching the roadmap
func (suite *RoadmapHandlerTestSuite) TestGetRoadmap() {
	suite.mockPhaseService.EXPECT().
		GetRoadmap(gomock.Any(), suite.orgID).
		Return(suite.roadmap(1), nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, suite.url("/roadmap"), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response progression.RoadmapView
	suite.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &response))
	suite.Require().Len(response.Phases, 2)
	assert.Equal(suite.T(), 1, *response.ActivePhaseNumber)
	assert.True(suite.T(), response.Phases[1].CanActivate)
}

// TestGetRoadmapInvalidOrganization tests UUID validation
func (suite *RoadmapHandlerTestSuite) TestGetRoadmapInvalidOrganization() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/organizations/acme/roadmap", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestGenerateRoadmap tests generation with and without a body
func (suite *RoadmapHandlerTestSuite) TestGenerateRoadmap() {
	suite.Run("WithoutBody", func() {
		suite.mockPhaseService.EXPECT().
			GenerateRoadmap(gomock.Any(), suite.orgID, &service.GenerateRoadmapRequest{}).
			Return(suite.roadmap(1), nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.url("/roadmap/generate"), nil)

		assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
	})

	suite.Run("RegenerateOnly", func() {
		suite.mockPhaseService.EXPECT().
			GenerateRoadmap(gomock.Any(), suite.orgID, &service.GenerateRoadmapRequest{RegenerateOnly: true}).
			Return(suite.roadmap(1), nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.url("/roadmap/generate"),
			map[string]interface{}{"regenerate_only": true})

		assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
	})

	suite.Run("MalformedBody", func() {
		req := httptest.NewRequest(http.MethodPost, suite.url("/roadmap/generate"), strings.NewReader("{"))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		suite.httpSuite.Router.ServeHTTP(recorder, req)

		assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
	})
}

// TestGenerateRoadmapErrors tests the error mapping of generation
func (suite *RoadmapHandlerTestSuite) TestGenerateRoadmapErrors() {
	testCases := []struct {
		name           string
		serviceErr     error
		expectedStatus int
	}{
		{"RoadmapExists", apperrors.ErrRoadmapExists, http.StatusConflict},
		{"OrganizationNotFound", apperrors.ErrOrganizationNotFound, http.StatusNotFound},
		{"GeneratorFailed", apperrors.NewGenerationFailure("generate roadmap", apperrors.ErrEmptyRoadmap), http.StatusBadGateway},
		{"GeneratorNotConfigured", apperrors.ErrGeneratorNotConfigured, http.StatusServiceUnavailable},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.mockPhaseService.EXPECT().
				GenerateRoadmap(gomock.Any(), suite.orgID, gomock.Any()).
				Return(nil, tc.serviceErr).
				Times(1)

			recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.url("/roadmap/generate"), nil)

			assert.Equal(suite.T(), tc.expectedStatus, recorder.Code)
		})
	}
}

// TestRecompute tests recomputing the whole roadmap and a single phase
func (suite *RoadmapHandlerTestSuite) TestRecompute() {
	suite.Run("Organization", func() {
		suite.mockPhaseService.EXPECT().
			RecomputeOrganization(gomock.Any(), suite.orgID).
			Return([]service.RecomputeResult{
				{Phase: progression.PhaseView{PhaseNumber: 1, ProgressPercentage: 40}, Warnings: []progression.Warning{}},
				{Phase: progression.PhaseView{PhaseNumber: 2}, Warnings: []progression.Warning{}},
			}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.url("/roadmap/recompute"), nil)

		assert.Equal(suite.T(), http.StatusOK, recorder.Code)
		var results []service.RecomputeResult
		suite.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &results))
		assert.Len(suite.T(), results, 2)
		assert.Equal(suite.T(), 40, results[0].Phase.ProgressPercentage)
	})

	suite.Run("SinglePhase", func() {
		suite.mockPhaseService.EXPECT().
			RecomputePhase(gomock.Any(), suite.orgID, 2).
			Return(&service.RecomputeResult{Phase: progression.PhaseView{PhaseNumber: 2}}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.url("/roadmap/recompute?phase=2"), nil)

		assert.Equal(suite.T(), http.StatusOK, recorder.Code)
		var results []service.RecomputeResult
		suite.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &results))
		suite.Require().Len(results, 1)
		assert.Equal(suite.T(), 2, results[0].Phase.PhaseNumber)
	})

	suite.Run("InvalidPhase", func() {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.url("/roadmap/recompute?phase=zero"), nil)

		assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
	})

	suite.Run("PhaseNotFound", func() {
		suite.mockPhaseService.EXPECT().
			RecomputePhase(gomock.Any(), suite.orgID, 9).
			Return(nil, apperrors.ErrPhaseNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.url("/roadmap/recompute?phase=9"), nil)

		assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
	})
}

// TestActivationPreview tests the preview endpoint
func (suite *RoadmapHandlerTestSuite) TestActivationPreview() {
	current := 1
	suite.mockPhaseService.EXPECT().
		ActivationPreview(gomock.Any(), suite.orgID, 2).
		Return(&progression.ActivationPreview{
			CurrentPhaseNumber: &current,
			PendingTaskLabels:  []string{"Talk to users"},
			TargetPhaseNumber:  2,
		}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, suite.url("/phases/2/activation-preview"), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.Contains(suite.T(), recorder.Body.String(), "Talk to users")
}

// TestActivate tests activation and its rejections
func (suite *RoadmapHandlerTestSuite) TestActivate() {
	suite.Run("Success", func() {
		suite.mockPhaseService.EXPECT().
			Activate(gomock.Any(), suite.orgID, 2).
			Return(suite.roadmap(2), nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.url("/phases/2/activate"), nil)

		assert.Equal(suite.T(), http.StatusOK, recorder.Code)
		assert.Contains(suite.T(), recorder.Body.String(), `"active_phase_number":2`)
	})

	suite.Run("NotPending", func() {
		suite.mockPhaseService.EXPECT().
			Activate(gomock.Any(), suite.orgID, 1).
			Return(nil, apperrors.ErrPhaseNotPending).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.url("/phases/1/activate"), nil)

		assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
		assert.Contains(suite.T(), recorder.Body.String(), "phase is not pending")
	})

	suite.Run("InvalidNumber", func() {
		for _, number := range []string{"0", "-1", "two"} {
			recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.url("/phases/"+number+"/activate"), nil)
			assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code, number)
		}
	})
}

// TestRegenerate tests phase regeneration
func (suite *RoadmapHandlerTestSuite) TestRegenerate() {
	suite.Run("Success", func() {
		suite.mockPhaseService.EXPECT().
			Regenerate(gomock.Any(), suite.orgID, 2).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, number int) (*progression.PhaseView, error) {
				return &progression.PhaseView{PhaseNumber: number, RegenerationCount: 1, RegenerationsRemaining: 1}, nil
			}).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.url("/phases/2/regenerate"), nil)

		assert.Equal(suite.T(), http.StatusOK, recorder.Code)
		assert.Contains(suite.T(), recorder.Body.String(), `"regenerations_remaining":1`)
	})

	suite.Run("CapReached", func() {
		suite.mockPhaseService.EXPECT().
			Regenerate(gomock.Any(), suite.orgID, 2).
			Return(nil, apperrors.ErrNoRegenerationsRemaining).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.url("/phases/2/regenerate"), nil)

		assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
	})
}

// TestSkip tests skipping a phase
func (suite *RoadmapHandlerTestSuite) TestSkip() {
	suite.Run("Success", func() {
		suite.mockPhaseService.EXPECT().
			Skip(gomock.Any(), suite.orgID, 2).
			Return(suite.roadmap(1), nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.url("/phases/2/skip"), nil)

		assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	})

	suite.Run("Terminal", func() {
		suite.mockPhaseService.EXPECT().
			Skip(gomock.Any(), suite.orgID, 1).
			Return(nil, apperrors.ErrPhaseNotSkippable).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.url("/phases/1/skip"), nil)

		assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
	})
}

// TestRoadmapHandlerTestSuite runs the test suite
func TestRoadmapHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RoadmapHandlerTestSuite))
}
