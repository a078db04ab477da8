package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authMiddleware "github.com/steelcity/sports-results/internal/auth/middleware"
	authModel "github.com/steelcity/sports-results/internal/auth/model"
	authRouter "github.com/steelcity/sports-results/internal/auth/router"
	authService "github.com/steelcity/sports-results/internal/auth/service"
	appConfig "github.com/steelcity/sports-results/internal/config"
	footballModel "github.com/steelcity/sports-results/internal/football/model"
	"github.com/steelcity/sports-results/pkg/score"
)

const adminPassword = "hunter2"

func setupApp(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&footballModel.Game{}))

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.MinCost)
	require.NoError(t, err)

	log := zap.NewNop().Sugar()
	svc := authService.New(appConfig.AuthConfig{
		AdminPasswordHash: string(hash),
		SessionSecret:     "integration-secret",
		SessionTTL:        time.Hour,
	}, log)

	r := gin.New()
	authRouter.RegisterRoutes(r, svc, log)
	RegisterRoutes(r, db, authMiddleware.RequireAdmin(svc), log)
	return r
}

func login(t *testing.T, r *gin.Engine) *http.Cookie {
	t.Helper()
	form := url.Values{"password": {adminPassword}}
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusSeeOther, w.Code)
	for _, ck := range w.Result().Cookies() {
		if ck.Name == authModel.CookieName {
			return ck
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func postGameForm(r *gin.Engine, target string, form url.Values, session *http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if session != nil {
		req.AddCookie(session)
	}
	r.ServeHTTP(w, req)
	return w
}

func listGames(t *testing.T, r *gin.Engine, query string) footballModel.ListResponse {
	t.Helper()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/football-games"+query, nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp footballModel.ListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func addGame(t *testing.T, r *gin.Engine, session *http.Cookie, form url.Values) {
	t.Helper()
	w := postGameForm(r, "/football-games/add", form, session)
	require.Equal(t, http.StatusSeeOther, w.Code)
}

func TestIntegration_GuardRedirectsToLogin(t *testing.T) {
	r := setupApp(t)

	w := postGameForm(r, "/football-games/add", url.Values{"opponent": {"Ravens"}}, nil)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login?next=%2Ffootball-games%2Fadd", w.Header().Get("Location"))

	resp := listGames(t, r, "")
	assert.Empty(t, resp.Games, "guarded write must not persist")
}

func TestIntegration_AddDerivesResult(t *testing.T) {
	r := setupApp(t)
	session := login(t, r)

	addGame(t, r, session, url.Values{
		"game_date":      {"2025-09-07"},
		"season":         {"2025"},
		"week":           {"1"},
		"opponent":       {"Baltimore Ravens"},
		"home_away":      {"Home"},
		"team_score":     {"24"},
		"opponent_score": {"17"},
	})

	resp := listGames(t, r, "")
	require.Len(t, resp.Games, 1)
	got := resp.Games[0]
	assert.Equal(t, "Baltimore Ravens", got.Opponent)
	assert.Equal(t, score.Win, got.Result)
	require.NotNil(t, got.Week)
	assert.Equal(t, 1, *got.Week)
	assert.Equal(t, []int{2025}, resp.SeasonOptions)
}

func TestIntegration_FilterBySeasonOpponentResult(t *testing.T) {
	r := setupApp(t)
	session := login(t, r)

	games := []url.Values{
		{"game_date": {"2025-09-07"}, "season": {"2025"}, "opponent": {"Baltimore Ravens"}, "home_away": {"Home"}, "team_score": {"24"}, "opponent_score": {"17"}},
		{"game_date": {"2025-09-21"}, "season": {"2025"}, "opponent": {"Cleveland Browns"}, "home_away": {"Away"}, "team_score": {"13"}, "opponent_score": {"20"}},
		{"game_date": {"2024-09-08"}, "season": {"2024"}, "opponent": {"Atlanta Falcons"}, "home_away": {"Away"}, "team_score": {"18"}, "opponent_score": {"10"}},
	}
	for _, form := range games {
		addGame(t, r, session, form)
	}

	bySeason := listGames(t, r, "?season=2024")
	require.Len(t, bySeason.Games, 1)
	assert.Equal(t, "Atlanta Falcons", bySeason.Games[0].Opponent)

	byOpponent := listGames(t, r, "?opponent=browns")
	require.Len(t, byOpponent.Games, 1)
	assert.Equal(t, "Cleveland Browns", byOpponent.Games[0].Opponent)

	byResult := listGames(t, r, "?result=W")
	assert.Len(t, byResult.Games, 2)

	badSeason := listGames(t, r, "?season=recent")
	assert.Len(t, badSeason.Games, 3, "non-numeric season filter is ignored")

	unfiltered := listGames(t, r, "")
	assert.Len(t, unfiltered.Games, 3)
	assert.Equal(t, []int{2025, 2024}, unfiltered.SeasonOptions)
	assert.Equal(t, "Cleveland Browns", unfiltered.Games[0].Opponent, "newest game first")
}

func TestIntegration_EditFlipsResultAndDelete(t *testing.T) {
	r := setupApp(t)
	session := login(t, r)

	addGame(t, r, session, url.Values{
		"game_date":      {"2025-09-07"},
		"season":         {"2025"},
		"opponent":       {"Baltimore Ravens"},
		"home_away":      {"Home"},
		"team_score":     {"24"},
		"opponent_score": {"17"},
	})

	id := listGames(t, r, "").Games[0].ID

	w := postGameForm(r, "/football-games/"+itoa(id)+"/edit", url.Values{
		"team_score":     {"17"},
		"opponent_score": {"24"},
	}, session)
	require.Equal(t, http.StatusSeeOther, w.Code)

	resp := listGames(t, r, "")
	require.Len(t, resp.Games, 1)
	assert.Equal(t, score.Loss, resp.Games[0].Result, "result follows the edited scores")
	assert.Equal(t, "Baltimore Ravens", resp.Games[0].Opponent, "blank required field stays unchanged")

	w = postGameForm(r, "/football-games/"+itoa(id)+"/delete", url.Values{}, session)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Empty(t, listGames(t, r, "").Games)

	w = postGameForm(r, "/football-games/999999/delete", url.Values{}, session)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
