package acceptance

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/simplethings/baubuero-api/repositories"
	"github.com/simplethings/baubuero-api/tests/testutil"
	"github.com/stretchr/testify/suite"
)

// AuthAcceptanceTestSuite verifies the login lifecycle over real HTTP.
type AuthAcceptanceTestSuite struct {
	suite.Suite
	server *httptest.Server
	client *http.Client
	repos  *repositories.Repositories
}

// SetupSuite runs once before all tests
func (suite *AuthAcceptanceTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	testutil.MustSetTestEnvironment(suite.T())
}

// SetupTest runs before each test
func (suite *AuthAcceptanceTestSuite) SetupTest() {
	suite.server, suite.repos = buildTestServer(suite.T())
	suite.client = newBrowserClient(suite.T())
}

func (suite *AuthAcceptanceTestSuite) TestLoginLandsOnDashboard() {
	resp := login(suite.T(), suite.client, suite.server.URL, testAdminEmail, testAdminPassword)

	suite.Equal(http.StatusOK, resp.StatusCode)
	suite.Equal("/dashboard", resp.Request.URL.Path)
}

func (suite *AuthAcceptanceTestSuite) TestLoginWithWrongPassword() {
	resp := login(suite.T(), suite.client, suite.server.URL, testAdminEmail, "falsch")

	suite.Equal(http.StatusUnauthorized, resp.StatusCode)

	// No session was established
	probe, err := suite.client.Get(suite.server.URL + "/dashboard")
	suite.NoError(err)
	probe.Body.Close()
	suite.Equal("/login", probe.Request.URL.Path)
}

func (suite *AuthAcceptanceTestSuite) TestLoginWithUnknownEmail() {
	resp := login(suite.T(), suite.client, suite.server.URL, "nobody@simplethings.de", testAdminPassword)

	suite.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (suite *AuthAcceptanceTestSuite) TestLogoutEndsSession() {
	login(suite.T(), suite.client, suite.server.URL, testAdminEmail, testAdminPassword)

	resp, err := suite.client.Get(suite.server.URL + "/logout")
	suite.NoError(err)
	resp.Body.Close()

	// Back behind the gate
	probe, err := suite.client.Get(suite.server.URL + "/gesellschaften")
	suite.NoError(err)
	probe.Body.Close()
	suite.Equal("/login", probe.Request.URL.Path)
}

// TestAuthAcceptanceTestSuite runs the test suite
func TestAuthAcceptanceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthAcceptanceTestSuite))
}
