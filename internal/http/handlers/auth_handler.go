// Account HTTP handlers.
//
// This file exposes the account endpoints:
//   - POST /accounts/register/  (create user, issue token)
//   - POST /accounts/login/     (exchange credentials for the user's token)
//   - POST /accounts/logout/    (revoke the token)
//   - GET  /accounts/me/        (current profile)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/closet-backend/internal/domain"
	"github.com/tbourn/closet-backend/internal/services"
)

//
// DTOs
//

// RegisterRequest is the JSON payload for creating an account.
type RegisterRequest struct {
	Username  string `json:"username" example:"alice"`
	Password  string `json:"password" example:"correct-horse"`
	Email     string `json:"email" example:"alice@example.com"`
	FirstName string `json:"first_name" example:"Alice"`
	LastName  string `json:"last_name" example:"Liddell"`
}

// RegisterResponse carries the new token and the created user.
type RegisterResponse struct {
	Token string       `json:"token" example:"9944b09199c62bcf9418ad846dd0e4bbdfc6ee4b"`
	User  *domain.User `json:"user"`
}

// LoginRequest is the JSON payload for logging in. Fields are pointers so
// that an absent field can be told apart from an empty one.
type LoginRequest struct {
	Username *string `json:"username" example:"alice"`
	Password *string `json:"password" example:"correct-horse"`
}

// LoginResponse carries the user's token.
type LoginResponse struct {
	Token    string `json:"token" example:"9944b09199c62bcf9418ad846dd0e4bbdfc6ee4b"`
	UserID   uint   `json:"user_id" example:"1"`
	Username string `json:"username" example:"alice"`
}

//
// Handlers
//

// Register godoc
// @ID          register
// @Summary     Register a new account
// @Description Creates a user and returns its token. Validation failures list per-field messages in `details`.
// @Tags        Accounts
// @Accept      json
// @Produce     json
// @Param       body  body      handlers.RegisterRequest  true  "Account"
// @Success     201   {object}  handlers.RegisterResponse
// @Failure     400   {object}  handlers.ErrorResponse  "Validation error"
// @Failure     500   {object}  handlers.ErrorResponse  "Internal error"
// @Router      /accounts/register/ [post]
func (h *Handlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	tok, u, err := h.auth.Register(c.Request.Context(), services.RegisterInput{
		Username:  req.Username,
		Password:  req.Password,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		serviceError(c, err)
		return
	}
	ok(c, http.StatusCreated, RegisterResponse{Token: tok.Key, User: u})
}

// Login godoc
// @ID          login
// @Summary     Log in
// @Description Exchanges username and password for the user's token. Repeated logins return the same token.
// @Tags        Accounts
// @Accept      json
// @Produce     json
// @Param       body  body      handlers.LoginRequest  true  "Credentials"
// @Success     200   {object}  handlers.LoginResponse
// @Failure     400   {object}  handlers.ErrorResponse  "Missing username or password"
// @Failure     401   {object}  handlers.ErrorResponse  "Invalid credentials"
// @Router      /accounts/login/ [post]
func (h *Handlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	if req.Username == nil || req.Password == nil {
		serviceError(c, services.ErrMissingCredentials)
		return
	}
	tok, u, err := h.auth.Login(c.Request.Context(), *req.Username, *req.Password)
	if err != nil {
		serviceError(c, err)
		return
	}
	ok(c, http.StatusOK, LoginResponse{Token: tok.Key, UserID: u.ID, Username: u.Username})
}

// Logout godoc
// @ID          logout
// @Summary     Log out
// @Description Revokes the caller's token; the next login issues a new one.
// @Tags        Accounts
// @Security    TokenAuth
// @Success     204  {string}  string  "No Content"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthenticated"
// @Router      /accounts/logout/ [post]
func (h *Handlers) Logout(c *gin.Context) {
	uid, authed := userID(c)
	if !authed {
		return
	}
	if err := h.auth.Logout(c.Request.Context(), uid); err != nil {
		serviceError(c, err)
		return
	}
	noContent(c)
}

// Me godoc
// @ID          me
// @Summary     Current user
// @Tags        Accounts
// @Produce     json
// @Security    TokenAuth
// @Success     200  {object}  domain.User
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthenticated"
// @Router      /accounts/me/ [get]
func (h *Handlers) Me(c *gin.Context) {
	uid, authed := userID(c)
	if !authed {
		return
	}
	u, err := h.auth.Me(c.Request.Context(), uid)
	if err != nil {
		serviceError(c, err)
		return
	}
	ok(c, http.StatusOK, u)
}
