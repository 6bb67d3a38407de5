package service

import (
	"context"
	"mindcare_backend/internal/catalog"
	"mindcare_backend/internal/sentiment"
)

// WellbeingService 静态心理健康计划
type WellbeingService struct {
	Catalog *catalog.Catalog
}

func NewWellbeingService(cat *catalog.Catalog) *WellbeingService {
	return &WellbeingService{Catalog: cat}
}

func (s *WellbeingService) Plan() catalog.Plan {
	return s.Catalog.Plan()
}

// NLPService 对外暴露的情感分析
type NLPService struct {
	Classifier sentiment.Classifier
}

func NewNLPService(classifier sentiment.Classifier) *NLPService {
	return &NLPService{Classifier: classifier}
}

func (s *NLPService) Analyze(ctx context.Context, text string) (sentiment.Result, error) {
	return s.Classifier.Analyze(ctx, text)
}

func (s *NLPService) Models() []string {
	return s.Classifier.Models()
}
