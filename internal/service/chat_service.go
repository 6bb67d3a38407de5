package service

import (
	"context"
	"fmt"
	"mindcare_backend/internal/chatbot"
	"mindcare_backend/internal/model"
	"mindcare_backend/internal/repository"
	"mindcare_backend/internal/sentiment"
	"mindcare_backend/internal/util"
	"mindcare_backend/pkg/logger"
	"mindcare_backend/pkg/monitoring"
	"strings"
	"time"

	"go.uber.org/zap"
)

type ChatService struct {
	Repo      *repository.ChatRepository
	UserRepo  *repository.UserRepository
	Responder *chatbot.Responder
	Sentiment sentiment.Classifier
	Now       func() time.Time
}

func NewChatService(
	repo *repository.ChatRepository,
	userRepo *repository.UserRepository,
	responder *chatbot.Responder,
	classifier sentiment.Classifier,
) *ChatService {
	return &ChatService{
		Repo:      repo,
		UserRepo:  userRepo,
		Responder: responder,
		Sentiment: classifier,
		Now:       func() time.Time { return time.Now().UTC() },
	}
}

type ChatReply struct {
	Response string          `json:"response"`
	Topic    string          `json:"topic"`
	Analysis model.Sentiment `json:"analysis"`
}

func (s *ChatService) Send(ctx context.Context, userID, message string) (*ChatReply, error) {
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("%w: message is required", util.ErrValidation)
	}
	user, err := findUser(s.UserRepo, userID)
	if err != nil {
		return nil, err
	}

	reply := s.Responder.Respond(message, user.Memory)
	turn := &model.ChatTurn{
		UserID:      userID,
		UserMessage: message,
		BotResponse: reply.Text,
		Topic:       string(reply.Topic),
		Analysis:    analyzeOrNeutral(ctx, s.Sentiment, message),
		Timestamp:   s.Now(),
	}
	if err := s.Repo.Create(turn); err != nil {
		return nil, fmt.Errorf("save chat turn: %w", err)
	}
	if err := s.Repo.CacheRecent(ctx, turn); err != nil {
		logger.Log.Warn("Failed to cache chat turn", zap.String("user_id", userID), zap.Error(err))
	}
	monitoring.ChatTurns.WithLabelValues(string(reply.Topic)).Inc()

	return &ChatReply{Response: reply.Text, Topic: string(reply.Topic), Analysis: turn.Analysis}, nil
}

// History 最近的对话，最新的在前
func (s *ChatService) History(ctx context.Context, userID string) ([]model.ChatTurn, error) {
	turns, ok, err := s.Repo.Recent(ctx, userID, util.ChatHistoryLimit)
	if err != nil {
		logger.Log.Warn("Chat cache unavailable, reading from database", zap.Error(err))
	}
	if ok {
		return turns, nil
	}
	return s.Repo.ListByUser(userID, util.ChatHistoryLimit)
}
