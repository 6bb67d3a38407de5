package controller

import (
	"mindcare_backend/internal/service"
	"mindcare_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type GamificationController struct {
	GamificationService *service.GamificationService
}

func NewGamificationController(gamificationService *service.GamificationService) *GamificationController {
	return &GamificationController{GamificationService: gamificationService}
}

// AwardRequest 奖励经验值
// swagger:model AwardRequest
type AwardRequest struct {
	XP int `json:"xp" binding:"min=0,max=1000" example:"10"`
}

// GetProgression godoc
// @Summary 当前经验、等级和徽章
// @Tags 成长
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=gamification.Progression}
// @Failure 404 {object} util.Response
// @Router /api/gamification [get]
func (c *GamificationController) GetProgression(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	p, err := c.GamificationService.Get(userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, p)
}

// Award godoc
// @Summary 增加经验值
// @Tags 成长
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body AwardRequest true "经验值"
// @Success 200 {object} util.Response{data=gamification.Progression}
// @Failure 400 {object} util.Response "xp 超出 0-1000"
// @Router /api/gamification/award [post]
func (c *GamificationController) Award(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var req AwardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	p, err := c.GamificationService.Award(ctx.Request.Context(), userID, req.XP)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, p)
}

// Leaderboard godoc
// @Summary 经验排行榜前 10
// @Tags 成长
// @Produce json
// @Success 200 {object} util.Response{data=[]service.LeaderboardItem}
// @Router /api/gamification/leaderboard [get]
func (c *GamificationController) Leaderboard(ctx *gin.Context) {
	items, err := c.GamificationService.TopUsers(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, items)
}

// Badges godoc
// @Summary 徽章列表
// @Tags 成长
// @Produce json
// @Success 200 {object} util.Response{data=[]string}
// @Router /api/gamification/badges [get]
func (c *GamificationController) Badges(ctx *gin.Context) {
	util.Success(ctx, c.GamificationService.Badges())
}
