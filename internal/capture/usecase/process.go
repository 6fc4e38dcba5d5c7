package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"smart-screenshot-organizer/internal/capture"
	"smart-screenshot-organizer/internal/capture/repository"
	"smart-screenshot-organizer/internal/model"
)

// Process runs the extraction strategy over a recognized screenshot, stores
// the capture, and triggers best-effort calendar export and notification.
// The rule-based engine always produces a result; the AI path can supersede
// it but its failure never fails the workflow.
func (uc *implUseCase) Process(ctx context.Context, sc model.Scope, input capture.ProcessInput) (capture.ProcessOutput, error) {
	if input.Recognition.Confidence < 0 || input.Recognition.Confidence > 100 {
		return capture.ProcessOutput{}, capture.ErrInvalidConfidence
	}

	uc.l.Infof(ctx, "Process: user=%s text_length=%d confidence=%.1f",
		sc.UserID, len(input.Recognition.Text), input.Recognition.Confidence)

	result := uc.engine.Categorize(input.Recognition.Text, input.Recognition.Confidence)
	source := model.SourceRuleBased
	summary := ""

	if uc.llm != nil && input.EnableAI && strings.TrimSpace(input.Recognition.Text) != "" {
		analysis, err := uc.analyzeWithLLM(ctx, input.Recognition.Text)
		if err != nil {
			uc.l.Warnf(ctx, "Process: AI analysis failed, using rule-based result: %v", err)
		} else {
			result = uc.resultFromAnalysis(analysis)
			source = model.SourceAI
			summary = analysis.Summary
			uc.l.Infof(ctx, "Process: AI analysis produced %d items", result.ItemCount())
		}
	}

	cap := model.Capture{
		ID:          uuid.NewString(),
		UserID:      sc.UserID,
		Recognition: input.Recognition,
		Result:      result,
		Source:      source,
		Summary:     summary,
		CreatedAt:   uc.now(),
	}

	if err := uc.repo.Create(ctx, cap); err != nil {
		return capture.ProcessOutput{}, fmt.Errorf("failed to store capture: %w", err)
	}

	uc.tryExportEvents(ctx, result.Events)
	uc.tryNotify(ctx, input.NotifyChat, cap)

	uc.l.Infof(ctx, "Process: stored capture %s source=%s items=%d", cap.ID, source, result.ItemCount())
	return capture.ProcessOutput{Capture: cap}, nil
}

// Categorize runs the rule-based pipeline only; nothing is stored.
func (uc *implUseCase) Categorize(ctx context.Context, input capture.CategorizeInput) (capture.CategorizeOutput, error) {
	if input.Confidence < 0 || input.Confidence > 100 {
		return capture.CategorizeOutput{}, capture.ErrInvalidConfidence
	}

	return capture.CategorizeOutput{
		Result: uc.engine.Categorize(input.Text, input.Confidence),
	}, nil
}

// Detail returns a stored capture by ID.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (capture.DetailOutput, error) {
	cap, err := uc.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return capture.DetailOutput{}, capture.ErrCaptureNotFound
		}
		return capture.DetailOutput{}, fmt.Errorf("failed to load capture: %w", err)
	}
	return capture.DetailOutput{Capture: cap}, nil
}

// List returns a page of stored captures, newest first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input capture.ListInput) (capture.ListOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 20
	}

	captures, total, err := uc.repo.List(ctx, repository.ListOptions{
		UserID: sc.UserID,
		Limit:  limit,
		Offset: input.Offset,
	})
	if err != nil {
		return capture.ListOutput{}, fmt.Errorf("failed to list captures: %w", err)
	}

	return capture.ListOutput{
		Captures: captures,
		Total:    total,
		Limit:    limit,
		Offset:   input.Offset,
	}, nil
}

// Delete removes a stored capture by ID.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return capture.ErrCaptureNotFound
		}
		return fmt.Errorf("failed to delete capture: %w", err)
	}
	return nil
}
