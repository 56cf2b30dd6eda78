//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"github.com/Atsu2017-hub/web-ramen/internal/handler/api"
	resdto "github.com/Atsu2017-hub/web-ramen/internal/handler/dto/response"
	"github.com/Atsu2017-hub/web-ramen/internal/handler/middleware"
	"github.com/Atsu2017-hub/web-ramen/internal/usecase/commands"
	"github.com/Atsu2017-hub/web-ramen/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockAuth    *MockAuthUsecase
	mockQueries *MockUserQueries
	handler     *api.AuthHandler
	userID      uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAuth = NewMockAuthUsecase(s.mockCtrl)
	s.mockQueries = NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockAuth, s.mockQueries)
	s.userID = uuid.New()

	s.router.POST("/auth/register", s.handler.Register)
	s.router.POST("/auth/login", s.handler.Login)
	s.router.GET("/auth/me", func(c *gin.Context) {
		// Middleware stand-in: an Authorization header marks the caller as
		// authenticated.
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.userID)
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) userView() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:    s.userID,
		Email: "diner@example.com",
		Name:  "山田太郎",
	}
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/auth/register"
	reqBody := map[string]any{
		"email":    "diner@example.com",
		"password": "securepass",
		"name":     "山田太郎",
	}

	s.Run("success: 201 with token and user", func() {
		s.mockAuth.EXPECT().
			Register(gomock.Any(), commands.RegisterInput{Email: "diner@example.com", Password: "securepass", Name: "山田太郎"}).
			Return(&commands.AuthResult{User: s.userView(), AccessToken: "test-jwt-token"}, nil).
			Times(1)

		rec := performRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		s.Equal(http.StatusCreated, rec.Code)

		var resp resdto.AuthResponse
		decodeBody(s.T(), rec, &resp)
		s.Equal("test-jwt-token", resp.AccessToken)
		s.Equal("bearer", resp.TokenType)
		s.Equal("diner@example.com", resp.User.Email)
	})

	s.Run("error: 409 on duplicate email", func() {
		s.mockAuth.EXPECT().
			Register(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrEmailAlreadyRegistered).
			Times(1)

		rec := performRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		s.Equal(http.StatusConflict, rec.Code)
		s.Equal("Email already registered", errorMessage(s.T(), rec))
	})

	s.Run("error: 400 on binding failures", func() {
		cases := []map[string]any{
			{"email": "not-an-email", "password": "securepass", "name": "x"},
			{"email": "diner@example.com", "password": "short", "name": "x"},
			{"email": "diner@example.com", "password": "securepass"},
		}
		for _, body := range cases {
			rec := performRequest(s.T(), s.router, http.MethodPost, url, body)
			s.Equal(http.StatusBadRequest, rec.Code)
		}
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := map[string]any{"email": "diner@example.com", "password": "securepass"}

	s.Run("success: 200 with token", func() {
		s.mockAuth.EXPECT().
			Login(gomock.Any(), commands.LoginInput{Email: "diner@example.com", Password: "securepass"}).
			Return(&commands.AuthResult{User: s.userView(), AccessToken: "test-jwt-token"}, nil).
			Times(1)

		rec := performRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		s.Equal(http.StatusOK, rec.Code)

		var resp resdto.AuthResponse
		decodeBody(s.T(), rec, &resp)
		s.Equal("test-jwt-token", resp.AccessToken)
	})

	s.Run("error: 401 on bad credentials", func() {
		s.mockAuth.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrInvalidCredentials).
			Times(1)

		rec := performRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		s.Equal(http.StatusUnauthorized, rec.Code)
		s.Equal("Invalid email or password", errorMessage(s.T(), rec))
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("success: 200 with current user", func() {
		s.mockQueries.EXPECT().
			GetCurrentUser(gomock.Any(), s.userID).
			Return(s.userView(), nil).
			Times(1)

		req := performRequestWithAuth(s.T(), s.router, http.MethodGet, "/auth/me")
		s.Equal(http.StatusOK, req.Code)
	})

	s.Run("error: 401 without user context", func() {
		rec := performRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil)
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: 404 when user vanished", func() {
		s.mockQueries.EXPECT().
			GetCurrentUser(gomock.Any(), s.userID).
			Return(nil, queries.ErrUserNotFound).
			Times(1)

		rec := performRequestWithAuth(s.T(), s.router, http.MethodGet, "/auth/me")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}
