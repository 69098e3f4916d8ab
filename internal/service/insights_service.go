package service

import (
	"context"

	"github.com/driftlab/wakewise/internal/domain"
	"github.com/driftlab/wakewise/internal/llm"
	"github.com/driftlab/wakewise/internal/repository"
	"github.com/google/uuid"
)

// InsightsService narrates a schedule analysis with an LLM.
type InsightsService interface {
	// Generate returns (nil, nil) when the user has no sleep history.
	Generate(ctx context.Context, userID uuid.UUID) (*domain.ScheduleInsightsResponse, error)
}

type insightsService struct {
	analysis  AnalysisService
	goals     GoalService
	alarmRepo repository.AlarmRepository
	llmClient llm.ScheduleInsightsLLM
}

func NewInsightsService(
	analysis AnalysisService,
	goals GoalService,
	alarmRepo repository.AlarmRepository,
	llmClient llm.ScheduleInsightsLLM,
) InsightsService {
	return &insightsService{
		analysis:  analysis,
		goals:     goals,
		alarmRepo: alarmRepo,
		llmClient: llmClient,
	}
}

func (s *insightsService) Generate(ctx context.Context, userID uuid.UUID) (*domain.ScheduleInsightsResponse, error) {
	if s.llmClient == nil {
		return nil, llm.ErrOpenAIUnavailable
	}

	analysis, err := s.analysis.Analyze(ctx, userID)
	if err != nil {
		return nil, err
	}
	if analysis == nil {
		return nil, nil
	}

	goal, err := s.goals.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	alarms, err := s.alarmRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	insightsCtx := &domain.ScheduleInsightsContext{
		Analysis: *analysis,
		Goal:     *goal,
		Alarms:   alarms,
	}

	output, err := s.llmClient.GenerateInsights(ctx, insightsCtx)
	if err != nil {
		return nil, err
	}

	return &domain.ScheduleInsightsResponse{
		Analysis: *analysis,
		Insights: *output,
	}, nil
}
