package controller

import (
	"mindcare_backend/internal/service"
	"mindcare_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// MemoryUpdateRequest 要合并的偏好键值
// swagger:model MemoryUpdateRequest
type MemoryUpdateRequest struct {
	Memory map[string]interface{} `json:"memory" binding:"required"`
}

// GetProfile godoc
// @Summary 当前用户信息
// @Tags 用户
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.User}
// @Failure 401 {object} util.Response
// @Router /api/profile [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	user, err := c.UserService.Profile(userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

// GetMemory godoc
// @Summary 获取用户偏好
// @Tags 用户
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.Memory}
// @Router /api/memory [get]
func (c *UserController) GetMemory(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	memory, err := c.UserService.GetMemory(userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, memory)
}

// UpdateMemory godoc
// @Summary 更新用户偏好
// @Description 浅合并，未提交的键保持不变
// @Tags 用户
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body MemoryUpdateRequest true "偏好"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Router /api/memory [put]
func (c *UserController) UpdateMemory(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var req MemoryUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	memory, err := c.UserService.UpdateMemory(userID, req.Memory)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"memory": memory})
}
