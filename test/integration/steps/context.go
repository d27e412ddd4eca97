// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/korven/backend/config"
	"github.com/korven/backend/internal/infra/dependency"
	"github.com/korven/backend/internal/integration/email"
	"github.com/korven/backend/test/integration/mock"
)

const (
	testJWTSecret     = "test-jwt-secret-key-for-testing-purposes"
	testFrontendURL   = "https://app.korven.test"
	resendEmailsPath  = "/emails"
	testResendAPIKey  = "re_test_key"
	defaultPassword   = "Sup3rSecret!"
	mockResendEmailID = "re_mock_email"
)

// environment holds the process-wide resources shared by every scenario.
type environment struct {
	server   *httptest.Server
	db       *mock.Db
	timeMock *mock.Time
	resend   *mock.ApiMock
	worker   *email.Worker
}

var env *environment

// InitializeTestSuite boots the API once over an in-memory database,
// miniredis and a mocked Resend API.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)

		var err error
		env, err = startEnvironment()
		if err != nil {
			panic(err)
		}
	})

	ctx.AfterSuite(func() {
		if env == nil {
			return
		}
		env.server.Close()
		env.resend.Close()
	})
}

func startEnvironment() (*environment, error) {
	resend := mock.NewApiServer()
	resend.Start()

	cfg := config.Load()
	cfg.Server.Environment = "test"
	cfg.JWT.Secret = testJWTSecret
	cfg.JWT.AccessTokenExpiry = time.Hour
	cfg.App.Timezone = "UTC"
	cfg.App.FrontendBaseURL = testFrontendURL
	cfg.App.BcryptCost = bcrypt.MinCost
	cfg.RateLimit.MaxAttempts = 0
	cfg.Email.ResendAPIKey = testResendAPIKey
	cfg.Email.ResendBaseURL = resend.GetUrl()
	cfg.Email.FromName = "Korven"
	cfg.Email.FromEmail = "no-reply@korven.test"

	timeMock := mock.NewTime(time.UTC)
	db := mock.NewDb()

	injector, err := dependency.NewInjector(cfg, dependency.Externals{
		DB:    db.DbConn,
		Redis: mock.NewRedis(),
		Clock: timeMock,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to wire application: %w", err)
	}

	server := httptest.NewServer(injector.Router.Setup(cfg.Server.Environment))

	resp, err := http.Get(server.URL + "/health")
	if err != nil {
		return nil, fmt.Errorf("health check failed: %w", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("health check answered %d", resp.StatusCode)
	}

	return &environment{
		server:   server,
		db:       db,
		timeMock: timeMock,
		resend:   resend,
		worker:   injector.EmailWorker,
	}, nil
}

// reset clears all state left by the previous scenario.
func (e *environment) reset() error {
	if err := e.db.ClearDB(); err != nil {
		return err
	}
	if err := mock.ClearRedis(mock.NewRedis()); err != nil {
		return err
	}
	e.resend.Reset()
	e.resend.SetResponse(http.MethodPost, resendEmailsPath, http.StatusOK, map[string]any{"id": mockResendEmailID})
	e.timeMock.Reset()
	return nil
}
