package routes

import (
	"net/http"
	"testing"

	"growth-roadmap-backend/internal/auth"
	"growth-roadmap-backend/internal/config"
	"growth-roadmap-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// RouterTestSuite exercises the routing and access rules that run before
// any handler touches the database
type RouterTestSuite struct {
	suite.Suite
	authService *auth.AuthService
	httpSuite   *testutils.HTTPTestSuite
	orgID       uuid.UUID
}

func (suite *RouterTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	authService, err := auth.NewAuthService("test-secret")
	require.NoError(suite.T(), err)
	suite.authService = authService
	suite.orgID = uuid.New()

	cfg := &config.Config{AllowedOrigins: []string{"http://localhost:3000"}}
	suite.httpSuite = &testutils.HTTPTestSuite{Router: NewRouter(nil, cfg, nil, authService)}
}

func (suite *RouterTestSuite) token(orgID uuid.UUID, role auth.Role) string {
	token, err := suite.authService.GenerateJWT("user-1", orgID, role)
	require.NoError(suite.T(), err)
	return token
}

func (suite *RouterTestSuite) TestLiveness() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/health/live", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.NotEmpty(suite.T(), recorder.Header().Get("X-Request-ID"))
}

func (suite *RouterTestSuite) TestMetricsEndpoint() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/metrics", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.Contains(suite.T(), recorder.Body.String(), "go_goroutines")
}

func (suite *RouterTestSuite) TestRequiresToken() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/organizations/"+suite.orgID.String()+"/roadmap", nil)

	assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)
}

func (suite *RouterTestSuite) TestForeignOrganizationForbidden() {
	token := suite.token(uuid.New(), auth.RoleAdmin)

	recorder := suite.httpSuite.MakeAuthorizedRequest(http.MethodGet,
		"/api/v1/organizations/"+suite.orgID.String()+"/roadmap", token, nil)

	assert.Equal(suite.T(), http.StatusForbidden, recorder.Code)
}

func (suite *RouterTestSuite) TestRoleRestrictedRoutes() {
	member := suite.token(suite.orgID, auth.RoleMember)
	base := "/api/v1/organizations/" + suite.orgID.String()

	testCases := []struct {
		name   string
		method string
		path   string
	}{
		{"SkipPhase", http.MethodPost, base + "/phases/2/skip"},
		{"ValidateCompletion", http.MethodPost, base + "/task-completions/" + uuid.New().String() + "/validate"},
		{"CreateOrganization", http.MethodPost, "/api/v1/organizations"},
		{"ListOrganizations", http.MethodGet, "/api/v1/organizations"},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			recorder := suite.httpSuite.MakeAuthorizedRequest(tc.method, tc.path, member, nil)

			assert.Equal(suite.T(), http.StatusForbidden, recorder.Code)
		})
	}
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}
