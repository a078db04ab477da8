//go:build e2e
// +build e2e

package e2e

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	postgresDriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	authMiddleware "github.com/steelcity/sports-results/internal/auth/middleware"
	authModel "github.com/steelcity/sports-results/internal/auth/model"
	authRouter "github.com/steelcity/sports-results/internal/auth/router"
	authService "github.com/steelcity/sports-results/internal/auth/service"
	appConfig "github.com/steelcity/sports-results/internal/config"
	"github.com/steelcity/sports-results/internal/database/migrate"
	footballRouter "github.com/steelcity/sports-results/internal/football/router"
	golfRouter "github.com/steelcity/sports-results/internal/golf/router"
	"github.com/steelcity/sports-results/internal/health"
	hockeyRouter "github.com/steelcity/sports-results/internal/hockey/router"
	raceRouter "github.com/steelcity/sports-results/internal/race/router"
)

const adminPassword = "e2e-admin-password"

// E2ETestSuite runs the full application against a real PostgreSQL
// container, exercising the SQL migrations and every router in one process.
type E2ETestSuite struct {
	suite.Suite
	ctx         context.Context
	pgContainer *postgres.PostgresContainer
	db          *gorm.DB
	app         *gin.Engine
	session     *http.Cookie
}

// SetupSuite runs once before all tests.
func (s *E2ETestSuite) SetupSuite() {
	s.ctx = context.Background()

	pgContainer, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(s.T(), err, "failed to start PostgreSQL container")
	s.pgContainer = pgContainer

	connStr, err := pgContainer.ConnectionString(s.ctx, "sslmode=disable")
	require.NoError(s.T(), err, "failed to get connection string")

	db, err := gorm.Open(postgresDriver.Open(connStr), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(s.T(), err, "failed to connect to database")
	s.db = db

	// The suite runs from tests/e2e, so the migrations directory sits two
	// levels up.
	require.NoError(s.T(), os.Setenv("MIGRATIONS_PATH", "../../migrations"))
	require.NoError(s.T(), migrate.Up(db), "failed to apply migrations")

	s.app = s.buildApp()
	s.session = s.login()
}

// TearDownSuite runs once after all tests.
func (s *E2ETestSuite) TearDownSuite() {
	if s.pgContainer != nil {
		_ = s.pgContainer.Terminate(s.ctx)
	}
}

// SetupTest truncates every table so tests stay independent.
func (s *E2ETestSuite) SetupTest() {
	for _, table := range []string{"nascar_races", "pga_results", "nfl_games", "nhl_games"} {
		require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE "+table+" RESTART IDENTITY").Error)
	}
}

func (s *E2ETestSuite) buildApp() *gin.Engine {
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.MinCost)
	require.NoError(s.T(), err)

	log := zap.NewNop().Sugar()
	authSvc := authService.New(appConfig.AuthConfig{
		AdminPasswordHash: string(hash),
		SessionSecret:     "e2e-secret",
		SessionTTL:        time.Hour,
	}, log)
	guard := authMiddleware.RequireAdmin(authSvc)

	r := gin.New()
	r.GET("/health", health.New(s.db, log).Check)
	authRouter.RegisterRoutes(r, authSvc, log)
	raceRouter.RegisterRoutes(r, s.db, guard, log)
	golfRouter.RegisterRoutes(r, s.db, guard, log)
	footballRouter.RegisterRoutes(r, s.db, guard, log)
	hockeyRouter.RegisterRoutes(r, s.db, guard, log)
	return r
}

func (s *E2ETestSuite) login() *http.Cookie {
	w := s.postForm("/admin/login", url.Values{"password": {adminPassword}}, nil)
	require.Equal(s.T(), http.StatusSeeOther, w.Code)
	for _, ck := range w.Result().Cookies() {
		if ck.Name == authModel.CookieName {
			return ck
		}
	}
	s.T().Fatal("session cookie not set")
	return nil
}

func (s *E2ETestSuite) postForm(target string, form url.Values, session *http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if session != nil {
		req.AddCookie(session)
	}
	s.app.ServeHTTP(w, req)
	return w
}

func (s *E2ETestSuite) getJSON(target string, out interface{}) int {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", target, nil)
	s.app.ServeHTTP(w, req)
	if out != nil && w.Code == http.StatusOK {
		require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), out))
	}
	return w.Code
}
