package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iamjuaness/mi-boleta/internal/constant"
	"github.com/iamjuaness/mi-boleta/internal/middleware"
	"github.com/iamjuaness/mi-boleta/internal/model"
	"github.com/iamjuaness/mi-boleta/internal/model/response"
	"github.com/iamjuaness/mi-boleta/internal/token"
	"github.com/iamjuaness/mi-boleta/internal/user"
	"go.uber.org/zap"
)

// AuthHandler serves the authentication endpoints: credential login, token
// refresh and the current-principal echo.
type AuthHandler struct {
	store     user.Store
	issuer    *token.Issuer
	refresher *token.Refresher
	lifetime  time.Duration
}

func NewAuthHandler(
	store user.Store,
	issuer *token.Issuer,
	refresher *token.Refresher,
	lifetime time.Duration,
) *AuthHandler {
	return &AuthHandler{
		store:     store,
		issuer:    issuer,
		refresher: refresher,
		lifetime:  lifetime,
	}
}

// Login godoc
//
//	@Summary		Log in with email and password
//	@Description	Verifies credentials and returns a signed session token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		model.LoginRequest	true	"Credentials"
//	@Success		200			{object}	response.ResponseData{data=model.TokenResponse}
//	@Failure		401			{object}	response.ResponseData
//	@Router			/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	body := c.MustGet("validatedBody").(model.LoginRequest)

	u, err := user.Authenticate(c.Request.Context(), h.store, body.Email, body.Password)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrBadCredentials):
			c.AbortWithStatusJSON(http.StatusUnauthorized, constant.UNAUTHORIZED)
		case errors.Is(err, user.ErrInactive):
			c.AbortWithStatusJSON(http.StatusForbidden, constant.FORBIDDEN)
		default:
			zap.L().Error("Login failed against the user store", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, constant.INTERNAL_SERVER_ERROR)
		}
		return
	}

	tokenString, err := h.issuer.Issue(u.Email, token.Attributes{
		Role:   u.Role,
		Name:   u.Name,
		IDUser: u.IDUser,
	})
	if err != nil {
		zap.L().Error("Token issuance failed", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, constant.INTERNAL_SERVER_ERROR)
		return
	}

	c.JSON(http.StatusOK, response.ResponseData{
		Ec: http.StatusOK,
		Data: model.TokenResponse{
			Token:     tokenString,
			ExpiresIn: int64(h.lifetime.Seconds()),
		},
	})
}

// Refresh godoc
//
//	@Summary		Refresh a session token close to expiry
//	@Description	Returns the same token when more than the refresh window remains, a renewed one otherwise
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			token	body		model.RefreshRequest	true	"Current token"
//	@Success		200		{object}	response.ResponseData{data=model.TokenResponse}
//	@Failure		401		{object}	response.ResponseData
//	@Router			/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	body := c.MustGet("validatedBody").(model.RefreshRequest)

	refreshed, err := h.refresher.MaybeRefresh(body.Token)
	if err != nil {
		// Expired tokens cannot be refreshed either; the client re-logs in.
		c.AbortWithStatusJSON(http.StatusUnauthorized, constant.UNAUTHORIZED)
		return
	}

	c.JSON(http.StatusOK, response.ResponseData{
		Ec: http.StatusOK,
		Data: model.TokenResponse{
			Token:     refreshed,
			ExpiresIn: int64(h.lifetime.Seconds()),
		},
	})
}

// Me godoc
//
//	@Summary	Return the authenticated principal
//	@Tags		Auth
//	@Produce	json
//	@Success	200	{object}	response.ResponseData{data=model.Principal}
//	@Failure	401	{object}	response.ResponseData
//	@Security	BearerAuth
//	@Router		/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	principal := middleware.PrincipalFromContext(c)
	if principal == nil {
		// The route policy guards this endpoint; reaching here without a
		// principal means the route was wired outside the policy table.
		c.AbortWithStatusJSON(http.StatusUnauthorized, constant.UNAUTHORIZED)
		return
	}

	c.JSON(http.StatusOK, response.ResponseData{
		Ec:   http.StatusOK,
		Data: principal,
	})
}
