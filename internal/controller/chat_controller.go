package controller

import (
	"mindcare_backend/internal/service"
	"mindcare_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ChatController 陪伴聊天
type ChatController struct {
	ChatService *service.ChatService
}

// ChatRequest 用户消息
// swagger:model ChatRequest
type ChatRequest struct {
	Message string `json:"message" binding:"required" example:"سلام"`
}

func NewChatController(chatService *service.ChatService) *ChatController {
	return &ChatController{ChatService: chatService}
}

// SendMessage godoc
// @Summary 发送聊天消息
// @Description 按关键词主题回复，并记录情绪分析
// @Tags 聊天
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body ChatRequest true "消息"
// @Success 200 {object} util.Response{data=service.ChatReply}
// @Failure 400 {object} util.Response
// @Router /api/chat [post]
func (c *ChatController) SendMessage(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var req ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	reply, err := c.ChatService.Send(ctx.Request.Context(), userID, req.Message)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, reply)
}

// GetHistory godoc
// @Summary 最近 20 条对话
// @Tags 聊天
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.ChatTurn}
// @Router /api/chat/history [get]
func (c *ChatController) GetHistory(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	turns, err := c.ChatService.History(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, turns)
}
