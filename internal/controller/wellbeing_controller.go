package controller

import (
	"mindcare_backend/internal/service"
	"mindcare_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

type WellbeingController struct {
	WellbeingService *service.WellbeingService
	NLPService       *service.NLPService
}

func NewWellbeingController(wellbeingService *service.WellbeingService, nlpService *service.NLPService) *WellbeingController {
	return &WellbeingController{WellbeingService: wellbeingService, NLPService: nlpService}
}

// AnalyzeRequest 待分析文本
// swagger:model AnalyzeRequest
type AnalyzeRequest struct {
	Text string `json:"text" binding:"required"`
}

// GetPlan godoc
// @Summary 心理健康计划
// @Tags 健康
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=catalog.Plan}
// @Router /api/mental-health-plan [get]
func (c *WellbeingController) GetPlan(ctx *gin.Context) {
	util.Success(ctx, c.WellbeingService.Plan())
}

// Analyze godoc
// @Summary 文本情绪分析
// @Tags NLP
// @Accept json
// @Produce json
// @Param body body AnalyzeRequest true "文本"
// @Success 200 {object} util.Response{data=sentiment.Result}
// @Failure 503 {object} util.Response "分析服务不可用"
// @Router /api/nlp/analyze [post]
func (c *WellbeingController) Analyze(ctx *gin.Context) {
	var req AnalyzeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	result, err := c.NLPService.Analyze(ctx.Request.Context(), req.Text)
	if err != nil {
		util.Error(ctx, http.StatusServiceUnavailable, "sentiment service unavailable")
		return
	}
	util.Success(ctx, result)
}

// Models godoc
// @Summary 可用模型
// @Tags NLP
// @Produce json
// @Success 200 {object} util.Response{data=object}
// @Router /api/nlp/models [get]
func (c *WellbeingController) Models(ctx *gin.Context) {
	util.Success(ctx, gin.H{"models": c.NLPService.Models()})
}
