package service

import (
	"context"
	"encoding/json"
	"fmt"
	"mindcare_backend/internal/catalog"
	"mindcare_backend/internal/model"
	"mindcare_backend/internal/repository"
	"mindcare_backend/internal/scoring"
	"mindcare_backend/internal/util"
	"mindcare_backend/pkg/logger"
	"mindcare_backend/pkg/monitoring"
	"time"

	"go.uber.org/zap"
)

type AssessmentService struct {
	Repo         *repository.AssessmentRepository
	Gamification *GamificationService
	Storage      *StorageService
	Catalog      *catalog.Catalog
	Now          func() time.Time
}

func NewAssessmentService(
	repo *repository.AssessmentRepository,
	gamificationService *GamificationService,
	storage *StorageService,
	cat *catalog.Catalog,
) *AssessmentService {
	return &AssessmentService{
		Repo:         repo,
		Gamification: gamificationService,
		Storage:      storage,
		Catalog:      cat,
		Now:          func() time.Time { return time.Now().UTC() },
	}
}

func intPtr(v int) *int { return &v }

func (s *AssessmentService) SubmitDASS21(ctx context.Context, userID string, responses scoring.ResponseSet) (*model.AssessmentResult, error) {
	res, err := scoring.ScoreDASS21(responses)
	if err != nil {
		return nil, err
	}
	result := model.AssessmentResult{
		DepressionScore: intPtr(res.DepressionScore),
		AnxietyScore:    intPtr(res.AnxietyScore),
		StressScore:     intPtr(res.StressScore),
		DepressionLevel: string(res.DepressionLevel),
		AnxietyLevel:    string(res.AnxietyLevel),
		StressLevel:     string(res.StressLevel),
		Analysis:        res.Analysis,
		Recommendations: res.Recommendations,
	}
	if err := s.record(ctx, userID, model.AssessmentDASS21, responses, result, string(res.Overall())); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *AssessmentService) SubmitPHQ9(ctx context.Context, userID string, responses scoring.ResponseSet) (*model.AssessmentResult, error) {
	res, err := scoring.ScorePHQ9(responses)
	if err != nil {
		return nil, err
	}
	result := model.AssessmentResult{
		TotalScore:      intPtr(res.TotalScore),
		SeverityLevel:   string(res.SeverityLevel),
		Analysis:        res.Analysis,
		Recommendations: res.Recommendations,
	}
	if err := s.record(ctx, userID, model.AssessmentPHQ9, responses, result, string(res.SeverityLevel)); err != nil {
		return nil, err
	}
	return &result, nil
}

// record 保存提交记录并奖励经验值，用户不存在时不写入
func (s *AssessmentService) record(ctx context.Context, userID string, t model.AssessmentType, responses scoring.ResponseSet, result model.AssessmentResult, severity string) error {
	if _, err := findUser(s.Gamification.UserRepo, userID); err != nil {
		return err
	}
	submission := &model.AssessmentSubmission{
		UserID:         userID,
		AssessmentType: t,
		Responses:      responses.StringKeys(),
		Result:         result,
		CompletedAt:    s.Now(),
	}
	if err := s.Repo.Create(submission); err != nil {
		return fmt.Errorf("save %s submission: %w", t, err)
	}
	monitoring.AssessmentsSubmitted.WithLabelValues(string(t), severity).Inc()

	if _, err := s.Gamification.Award(ctx, userID, util.XPAssessment); err != nil {
		return fmt.Errorf("award xp: %w", err)
	}
	return nil
}

func (s *AssessmentService) List(userID string) ([]model.AssessmentSubmission, error) {
	return s.Repo.ListByUser(userID, util.AssessmentHistoryLimit)
}

// Questions 返回问卷题目与选项
func (s *AssessmentService) Questions(assessmentType string) (*catalog.Questionnaire, error) {
	q, ok := s.Catalog.Questionnaire(assessmentType)
	if !ok {
		return nil, fmt.Errorf("%w: unknown assessment type %q", util.ErrValidation, assessmentType)
	}
	return q, nil
}

// ResearchRecord 匿名化的研究数据，不含用户和提交 ID
type ResearchRecord struct {
	AssessmentType model.AssessmentType   `json:"assessment_type"`
	Responses      map[string]int         `json:"responses"`
	Results        model.AssessmentResult `json:"results"`
	CompletedAt    time.Time              `json:"completed_at"`
}

type ResearchExport struct {
	Data  []ResearchRecord `json:"data"`
	Count int              `json:"count"`
	URL   string           `json:"url,omitempty"`
}

// ExportResearchData 导出全部测评记录并写入对象存储
func (s *AssessmentService) ExportResearchData(ctx context.Context) (*ResearchExport, error) {
	submissions, err := s.Repo.ListAll()
	if err != nil {
		return nil, err
	}

	export := &ResearchExport{Data: make([]ResearchRecord, 0, len(submissions))}
	for _, sub := range submissions {
		export.Data = append(export.Data, ResearchRecord{
			AssessmentType: sub.AssessmentType,
			Responses:      sub.Responses,
			Results:        sub.Result,
			CompletedAt:    sub.CompletedAt,
		})
	}
	export.Count = len(export.Data)

	payload, err := json.Marshal(export)
	if err != nil {
		return nil, err
	}
	filename := fmt.Sprintf("exports/research-%s.json", s.Now().Format("20060102T150405Z"))
	url, err := s.Storage.SaveExport(ctx, filename, payload)
	if err != nil {
		return nil, fmt.Errorf("store research export: %w", err)
	}
	export.URL = url

	logger.Log.Info("Research data exported", zap.Int("count", export.Count), zap.String("url", url))
	return export, nil
}
