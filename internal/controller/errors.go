package controller

import (
	"errors"
	"mindcare_backend/internal/scoring"
	"mindcare_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

// respondError 将业务错误映射为 HTTP 状态码
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrEmailRegistered):
		util.Conflict(ctx, util.ErrEmailRegistered.Error())
	case errors.Is(err, util.ErrConsentRequired),
		errors.Is(err, util.ErrPasswordMismatch):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrValidation),
		errors.Is(err, scoring.ErrInvalidResponses):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrInvalidCredentials):
		util.Error(ctx, http.StatusUnauthorized, util.ErrInvalidCredentials.Error())
	case errors.Is(err, util.ErrInvalidToken):
		util.Unauthorized(ctx)
	// 令牌有效但账号已不存在，按认证失败处理
	case errors.Is(err, util.ErrUserNotFound):
		util.Error(ctx, http.StatusUnauthorized, util.ErrUserNotFound.Error())
	case errors.Is(err, util.ErrJourneyNotFound),
		errors.Is(err, util.ErrProgressNotFound):
		util.NotFoundMessage(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

// currentUserID 从上下文中取出已认证用户，缺失时直接返回 401
func currentUserID(ctx *gin.Context) (string, bool) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil || claims.UserID == "" {
		util.Unauthorized(ctx)
		return "", false
	}
	return claims.UserID, true
}
