package controller

import (
	"mindcare_backend/internal/service"
	"mindcare_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type JournalController struct {
	JournalService *service.JournalService
}

func NewJournalController(journalService *service.JournalService) *JournalController {
	return &JournalController{JournalService: journalService}
}

// MoodEntryRequest 心情记录
// swagger:model MoodEntryRequest
type MoodEntryRequest struct {
	MoodLevel int    `json:"mood_level" binding:"required" example:"7"`
	Note      string `json:"note" example:"امروز حالم خوب بود"`
}

// SleepEntryRequest 睡眠记录
// swagger:model SleepEntryRequest
type SleepEntryRequest struct {
	Hours   *float64 `json:"hours" binding:"required" example:"7.5"`
	Quality int      `json:"quality" binding:"required" example:"4"`
	Note    string   `json:"note"`
}

// ReflectionRequest 每日反思
// swagger:model ReflectionRequest
type ReflectionRequest struct {
	Text string `json:"text" binding:"required"`
}

// CreateMoodEntry godoc
// @Summary 记录今日心情
// @Description 同一天重复提交会覆盖当天记录
// @Tags 日志
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body MoodEntryRequest true "心情 1-10"
// @Success 200 {object} util.Response{data=service.JournalSaveResult}
// @Failure 400 {object} util.Response
// @Router /api/mood-entry [post]
func (c *JournalController) CreateMoodEntry(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var req MoodEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	result, err := c.JournalService.SaveMood(ctx.Request.Context(), userID, service.MoodInput{
		MoodLevel: req.MoodLevel,
		Note:      req.Note,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// ListMoodEntries godoc
// @Summary 最近 30 天心情
// @Tags 日志
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "条数，最多 30"
// @Success 200 {object} util.Response{data=[]model.MoodEntry}
// @Router /api/mood-entries [get]
func (c *JournalController) ListMoodEntries(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	entries, err := c.JournalService.ListMood(userID, historyLimit(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}

// CreateSleepEntry godoc
// @Summary 记录睡眠
// @Tags 日志
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body SleepEntryRequest true "时长 0-24，质量 1-5"
// @Success 200 {object} util.Response{data=service.JournalSaveResult}
// @Failure 400 {object} util.Response
// @Router /api/sleep-entry [post]
func (c *JournalController) CreateSleepEntry(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var req SleepEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	result, err := c.JournalService.SaveSleep(ctx.Request.Context(), userID, service.SleepInput{
		Hours:   *req.Hours,
		Quality: req.Quality,
		Note:    req.Note,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// ListSleepEntries godoc
// @Summary 最近 30 天睡眠
// @Tags 日志
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "条数，最多 30"
// @Success 200 {object} util.Response{data=[]model.SleepEntry}
// @Router /api/sleep-entries [get]
func (c *JournalController) ListSleepEntries(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	entries, err := c.JournalService.ListSleep(userID, historyLimit(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}

// CreateReflection godoc
// @Summary 记录每日反思
// @Tags 日志
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body ReflectionRequest true "反思内容"
// @Success 200 {object} util.Response{data=service.JournalSaveResult}
// @Failure 400 {object} util.Response
// @Router /api/daily-reflection [post]
func (c *JournalController) CreateReflection(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var req ReflectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	result, err := c.JournalService.SaveReflection(ctx.Request.Context(), userID, req.Text)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// ListReflections godoc
// @Summary 最近 30 天反思
// @Tags 日志
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "条数，最多 30"
// @Success 200 {object} util.Response{data=[]model.ReflectionEntry}
// @Router /api/daily-reflections [get]
func (c *JournalController) ListReflections(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	entries, err := c.JournalService.ListReflections(userID, historyLimit(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}

func historyLimit(ctx *gin.Context) int {
	return util.ParseLimit(ctx.Query("limit"), util.JournalHistoryLimit, util.JournalHistoryLimit)
}
