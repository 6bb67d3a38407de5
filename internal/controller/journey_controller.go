package controller

import (
	"mindcare_backend/internal/service"
	"mindcare_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type JourneyController struct {
	JourneyService *service.JourneyService
}

func NewJourneyController(journeyService *service.JourneyService) *JourneyController {
	return &JourneyController{JourneyService: journeyService}
}

// ListJourneys godoc
// @Summary 自助旅程列表
// @Tags 旅程
// @Produce json
// @Success 200 {object} util.Response{data=[]catalog.Journey}
// @Router /api/journeys [get]
func (c *JourneyController) ListJourneys(ctx *gin.Context) {
	util.Success(ctx, c.JourneyService.List())
}

// GetJourney godoc
// @Summary 旅程详情
// @Tags 旅程
// @Produce json
// @Param id path string true "旅程 ID"
// @Success 200 {object} util.Response{data=catalog.Journey}
// @Failure 404 {object} util.Response
// @Router /api/journeys/{id} [get]
func (c *JourneyController) GetJourney(ctx *gin.Context) {
	j, err := c.JourneyService.Get(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, j)
}

// StartJourney godoc
// @Summary 开始（或重新开始）旅程
// @Tags 旅程
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "旅程 ID"
// @Success 200 {object} util.Response{data=service.JourneyProgressView}
// @Failure 404 {object} util.Response
// @Router /api/journeys/{id}/start [post]
func (c *JourneyController) StartJourney(ctx *gin.Context) {
	c.progressAction(ctx, c.JourneyService.Start)
}

// GetProgress godoc
// @Summary 旅程进度
// @Tags 旅程
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "旅程 ID"
// @Success 200 {object} util.Response{data=service.JourneyProgressView}
// @Failure 404 {object} util.Response
// @Router /api/journeys/{id}/progress [get]
func (c *JourneyController) GetProgress(ctx *gin.Context) {
	c.progressAction(ctx, c.JourneyService.Progress)
}

// AdvanceJourney godoc
// @Summary 完成当前任务
// @Tags 旅程
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "旅程 ID"
// @Success 200 {object} util.Response{data=service.JourneyProgressView}
// @Failure 404 {object} util.Response
// @Router /api/journeys/{id}/advance [post]
func (c *JourneyController) AdvanceJourney(ctx *gin.Context) {
	c.progressAction(ctx, c.JourneyService.Advance)
}

func (c *JourneyController) progressAction(ctx *gin.Context, fn func(userID, journeyID string) (*service.JourneyProgressView, error)) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	v, err := fn(userID, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, v)
}
