package service

import (
	"errors"
	"mindcare_backend/internal/catalog"
	"mindcare_backend/internal/model"
	"mindcare_backend/internal/repository"
	"mindcare_backend/internal/util"
	"time"

	"gorm.io/gorm"
)

type JourneyService struct {
	Catalog *catalog.Catalog
	Repo    *repository.JourneyRepository
	Now     func() time.Time
}

func NewJourneyService(cat *catalog.Catalog, repo *repository.JourneyRepository) *JourneyService {
	return &JourneyService{
		Catalog: cat,
		Repo:    repo,
		Now:     func() time.Time { return time.Now().UTC() },
	}
}

// JourneyProgressView 进度及是否已完成全部任务
type JourneyProgressView struct {
	*model.JourneyProgress
	TotalSteps int    `json:"totalSteps"`
	Completed  bool   `json:"completed"`
	NextTask   string `json:"nextTask,omitempty"`
}

func (s *JourneyService) List() []catalog.Journey {
	return s.Catalog.Journeys()
}

func (s *JourneyService) Get(journeyID string) (*catalog.Journey, error) {
	j, ok := s.Catalog.Journey(journeyID)
	if !ok {
		return nil, util.ErrJourneyNotFound
	}
	return j, nil
}

func (s *JourneyService) Start(userID, journeyID string) (*JourneyProgressView, error) {
	j, err := s.Get(journeyID)
	if err != nil {
		return nil, err
	}
	p, err := s.Repo.Start(userID, journeyID, s.Now())
	if err != nil {
		return nil, err
	}
	return view(p, j), nil
}

func (s *JourneyService) Progress(userID, journeyID string) (*JourneyProgressView, error) {
	j, err := s.Get(journeyID)
	if err != nil {
		return nil, err
	}
	p, err := s.find(userID, journeyID)
	if err != nil {
		return nil, err
	}
	return view(p, j), nil
}

// Advance 完成当前任务，步数不超过任务总数
func (s *JourneyService) Advance(userID, journeyID string) (*JourneyProgressView, error) {
	j, err := s.Get(journeyID)
	if err != nil {
		return nil, err
	}
	p, err := s.find(userID, journeyID)
	if err != nil {
		return nil, err
	}
	if p.CurrentStep < len(j.Tasks) {
		p.CurrentStep++
		if err := s.Repo.UpdateStep(p.ID, p.CurrentStep); err != nil {
			return nil, err
		}
	}
	return view(p, j), nil
}

func (s *JourneyService) find(userID, journeyID string) (*model.JourneyProgress, error) {
	p, err := s.Repo.Find(userID, journeyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrProgressNotFound
		}
		return nil, err
	}
	return p, nil
}

func view(p *model.JourneyProgress, j *catalog.Journey) *JourneyProgressView {
	v := &JourneyProgressView{
		JourneyProgress: p,
		TotalSteps:      len(j.Tasks),
		Completed:       p.CurrentStep >= len(j.Tasks),
	}
	if !v.Completed && p.CurrentStep >= 0 {
		v.NextTask = j.Tasks[p.CurrentStep]
	}
	return v
}
