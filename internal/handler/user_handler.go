package handler

import (
	"net/http"

	"watched-api/internal/middleware"
	"watched-api/internal/service"
	"watched-api/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserHandler struct {
	authService service.AuthService
	auth        gin.HandlerFunc
	throttle    gin.HandlerFunc
}

// NewUserHandler sets up the routing dependencies for auth endpoints. The
// throttle middleware guards only the credential-accepting routes.
func NewUserHandler(authService service.AuthService, auth, throttle gin.HandlerFunc) *UserHandler {
	if throttle == nil {
		throttle = func(c *gin.Context) { c.Next() }
	}
	return &UserHandler{authService: authService, auth: auth, throttle: throttle}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.POST("/signup", h.throttle, h.Signup)
		users.POST("/login", h.throttle, h.Login)
		users.POST("/refresh", h.Refresh)
		users.POST("/guest", h.throttle, h.GuestLogin)
		users.POST("/checkJwtValid", h.auth, h.CheckJwtValid)
	}
}

// Signup handles POST /users/signup to create a new account
// @Summary      Register user
// @Description  Creates a new user account with a bcrypt-hashed password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.RegisterRequest  true  "Signup Payload"
// @Success      200      {object}  response.Response{data=model.User}
// @Failure      400      {object}  response.Response
// @Router       /users/signup [post]
func (h *UserHandler) Signup(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, service.ErrFieldsRequired.Error()))
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, user))
}

// Login handles POST /users/login to authenticate and issue a token pair
// @Summary      Login user
// @Description  Authenticates by username and password, returning access and refresh tokens
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.LoginRequest  true  "Login Credentials"
// @Success      200      {object}  response.Response{data=service.TokenPair}
// @Failure      401      {object}  response.Response
// @Router       /users/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, service.ErrCredentialsMissing.Error()))
		return
	}

	pair, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, pair))
}

// Refresh handles POST /users/refresh to exchange a refresh token
// @Summary      Refresh tokens
// @Description  Exchanges a valid refresh token for a new access and refresh token pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.RefreshRequest  true  "Refresh Payload"
// @Success      200      {object}  response.Response{data=service.TokenPair}
// @Failure      401      {object}  response.Response
// @Router       /users/refresh [post]
func (h *UserHandler) Refresh(c *gin.Context) {
	var req service.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, service.ErrRefreshExpired.Error()))
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, service.ErrRefreshExpired.Error()))
		return
	}

	pair, err := h.authService.Refresh(c.Request.Context(), userID, req.Token)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, pair))
}

// GuestLogin handles POST /users/guest to mint a throwaway account
// @Summary      Guest login
// @Description  Creates a random guest account and returns its credentials with a token pair
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response{data=service.GuestSession}
// @Failure      500  {object}  response.Response
// @Router       /users/guest [post]
func (h *UserHandler) GuestLogin(c *gin.Context) {
	session, err := h.authService.LoginAsGuest(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, session))
}

// CheckJwtValid handles POST /users/checkJwtValid to echo the token's identity
// @Summary      Validate token
// @Description  Confirms the presented access token is valid and echoes its identity claims
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=object}
// @Failure      401  {object}  response.Response
// @Router       /users/checkJwtValid [post]
func (h *UserHandler) CheckJwtValid(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)
	username := c.GetString("username")

	c.JSON(http.StatusOK, response.Success(http.StatusOK, map[string]interface{}{
		"userId":   userID,
		"username": username,
	}))
}
