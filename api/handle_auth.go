package api

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/printfarm/printfarm-backend/dto"
	"github.com/printfarm/printfarm-backend/models"
	"github.com/printfarm/printfarm-backend/usecases"
	"github.com/printfarm/printfarm-backend/utils"
)

func handleLogin(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var form dto.LoginForm
		if err := c.ShouldBindWith(&form, binding.FormPost); presentBindingError(ctx, c, err) {
			return
		}

		usecase := uc.NewAuthUsecase()
		token, err := usecase.Login(ctx, form.Username, form.Password)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.AdaptAccessTokenDto(token))
	}
}

func handleGetCurrentUser(c *gin.Context) {
	ctx := c.Request.Context()
	user, ok := utils.CurrentUserFromContext(ctx)
	if !ok {
		presentError(ctx, c, errors.Wrap(models.UnAuthorizedError, "no user in context"))
		return
	}
	c.JSON(http.StatusOK, dto.AdaptUserDto(user))
}
