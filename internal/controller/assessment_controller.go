package controller

import (
	"context"
	"errors"
	"fmt"
	"mindcare_backend/internal/model"
	"mindcare_backend/internal/scoring"
	"mindcare_backend/internal/service"
	"mindcare_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	AssessmentService *service.AssessmentService
}

func NewAssessmentController(assessmentService *service.AssessmentService) *AssessmentController {
	return &AssessmentController{AssessmentService: assessmentService}
}

// SubmitAssessmentRequest 题号（从 1 开始）到 0-3 分的映射
// swagger:model SubmitAssessmentRequest
type SubmitAssessmentRequest struct {
	Responses map[int]int `json:"responses" binding:"required"`
}

// SubmitDASS21 godoc
// @Summary 提交 DASS-21 问卷
// @Description 需要 21 道题全部作答，返回抑郁/焦虑/压力分数、等级、分析和建议
// @Tags 测评
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body SubmitAssessmentRequest true "作答"
// @Success 200 {object} util.Response{data=model.AssessmentResult}
// @Failure 400 {object} util.Response "作答不完整或取值越界"
// @Failure 401 {object} util.Response
// @Router /api/submit-dass21 [post]
func (c *AssessmentController) SubmitDASS21(ctx *gin.Context) {
	c.submit(ctx, scoring.DASS21Questions, c.AssessmentService.SubmitDASS21)
}

// SubmitPHQ9 godoc
// @Summary 提交 PHQ-9 问卷
// @Tags 测评
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body SubmitAssessmentRequest true "作答"
// @Success 200 {object} util.Response{data=model.AssessmentResult}
// @Failure 400 {object} util.Response "作答不完整或取值越界"
// @Failure 401 {object} util.Response
// @Router /api/submit-phq9 [post]
func (c *AssessmentController) SubmitPHQ9(ctx *gin.Context) {
	c.submit(ctx, scoring.PHQ9Questions, c.AssessmentService.SubmitPHQ9)
}

type submitFunc func(ctx context.Context, userID string, responses scoring.ResponseSet) (*model.AssessmentResult, error)

func (c *AssessmentController) submit(ctx *gin.Context, questions int, fn submitFunc) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var req SubmitAssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := fn(ctx.Request.Context(), userID, scoring.ResponseSet(req.Responses))
	if err != nil {
		if errors.Is(err, scoring.ErrInvalidResponseCount) {
			util.BadRequest(ctx, fmt.Sprintf("باید به تمام %d سوال پاسخ داده شود", questions))
			return
		}
		respondError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// ListAssessments godoc
// @Summary 最近 10 次测评
// @Tags 测评
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.AssessmentSubmission}
// @Router /api/assessments [get]
func (c *AssessmentController) ListAssessments(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	list, err := c.AssessmentService.List(userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, list)
}

// GetQuestions godoc
// @Summary 问卷题目
// @Tags 测评
// @Produce json
// @Param type path string true "DASS-21 或 PHQ-9"
// @Success 200 {object} util.Response{data=catalog.Questionnaire}
// @Failure 400 {object} util.Response
// @Router /api/assessments/{type}/questions [get]
func (c *AssessmentController) GetQuestions(ctx *gin.Context) {
	q, err := c.AssessmentService.Questions(ctx.Param("type"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, q)
}

// ExportResearchData godoc
// @Summary 导出匿名研究数据
// @Description 仅管理员；导出文件同时写入对象存储
// @Tags 管理
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.ResearchExport}
// @Failure 403 {object} util.Response
// @Router /api/admin/export-data [get]
func (c *AssessmentController) ExportResearchData(ctx *gin.Context) {
	export, err := c.AssessmentService.ExportResearchData(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, export)
}
