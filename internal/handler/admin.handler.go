package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamjuaness/mi-boleta/internal/constant"
	"github.com/iamjuaness/mi-boleta/internal/model/response"
	"github.com/iamjuaness/mi-boleta/internal/user"
	"go.uber.org/zap"
)

// AdminHandler serves the role-restricted administrative surface.
type AdminHandler struct {
	store user.Store
}

func NewAdminHandler(store user.Store) *AdminHandler {
	return &AdminHandler{store: store}
}

// GetUser godoc
//
//	@Summary	Look up a user account by email
//	@Tags		Admin
//	@Produce	json
//	@Param		email	path		string	true	"Account email"
//	@Success	200		{object}	response.ResponseData{data=user.User}
//	@Failure	404		{object}	response.ResponseData
//	@Security	BearerAuth
//	@Router		/admin/users/{email} [get]
func (h *AdminHandler) GetUser(c *gin.Context) {
	email := c.Param("email")

	u, err := h.store.FindByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, constant.NOT_FOUND)
			return
		}
		zap.L().Error("Admin user lookup failed", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, constant.INTERNAL_SERVER_ERROR)
		return
	}

	c.JSON(http.StatusOK, response.ResponseData{
		Ec:   http.StatusOK,
		Data: u,
	})
}
