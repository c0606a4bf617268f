package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"promptwatch-backend/internal/database/models"
	"promptwatch-backend/internal/detector"
	apperrors "promptwatch-backend/internal/errors"
	"promptwatch-backend/internal/logger"
	"promptwatch-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// previewLength bounds the prompt preview stored alongside the full text
const previewLength = 200

// CaptureService orchestrates per-submission ingestion: subject resolution,
// prompt persistence, scanning, finding persistence and the acknowledgment
type CaptureService struct {
	subjectRepo repository.SubjectRepositoryInterface
	promptRepo  repository.PromptRepositoryInterface
	findingRepo repository.FindingRepositoryInterface
	scanner     *detector.Scanner
	validator   *validator.Validate
}

// NewCaptureService creates a new capture service
func NewCaptureService(
	subjectRepo repository.SubjectRepositoryInterface,
	promptRepo repository.PromptRepositoryInterface,
	findingRepo repository.FindingRepositoryInterface,
	scanner *detector.Scanner,
	validator *validator.Validate,
) *CaptureService {
	return &CaptureService{
		subjectRepo: subjectRepo,
		promptRepo:  promptRepo,
		findingRepo: findingRepo,
		scanner:     scanner,
		validator:   validator,
	}
}

// CaptureRequest represents one submission from a monitored client
type CaptureRequest struct {
	OrgID      uuid.UUID `json:"org_id" validate:"required"`
	UserEmail  string    `json:"user_email" validate:"required,email,max=255"`
	AITool     string    `json:"ai_tool" validate:"required,max=100"`
	PromptText string    `json:"prompt_text" validate:"required"`
	URL        string    `json:"url,omitempty" validate:"omitempty,max=2048"`
	SessionID  string    `json:"session_id,omitempty" validate:"omitempty,max=100"`
}

// CaptureResponse acknowledges a captured prompt
type CaptureResponse struct {
	PromptID      uuid.UUID       `json:"prompt_id"`
	RisksDetected int             `json:"risks_detected"`
	OverallRisk   models.Severity `json:"overall_risk"`
}

// Capture runs the ingestion pipeline for one submission. Validation happens
// before any persistence; a validation failure has no side effects.
func (s *CaptureService) Capture(ctx context.Context, req *CaptureRequest) (*CaptureResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	subject, err := s.resolveSubject(ctx, req.OrgID, req.UserEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve subject: %w", err)
	}

	now := time.Now().UTC()
	prompt := &models.Prompt{
		OrganizationID: req.OrgID,
		SubjectID:      subject.ID,
		AITool:         req.AITool,
		PromptText:     req.PromptText,
		Preview:        preview(req.PromptText),
		Length:         len([]rune(req.PromptText)),
		URL:            req.URL,
		SessionID:      req.SessionID,
		CapturedAt:     now,
	}
	if err := s.promptRepo.Create(ctx, prompt); err != nil {
		return nil, fmt.Errorf("failed to persist prompt: %w", err)
	}

	scanned := s.scanner.Scan(req.PromptText)

	// Findings reference the prompt, so the prompt row must exist first. If
	// this insert fails the prompt already carries unrecorded risk, which
	// must never be swallowed.
	if len(scanned) > 0 {
		findings := make([]models.Finding, len(scanned))
		for i, f := range scanned {
			findings[i] = models.Finding{
				PromptID:    prompt.ID,
				Category:    f.Category,
				Severity:    f.Severity,
				Label:       f.Label,
				MaskedValue: f.MaskedValue,
			}
		}
		if err := s.findingRepo.CreateBatch(ctx, findings); err != nil {
			logger.WithContext(ctx).WithFields(map[string]interface{}{
				"prompt_id":     prompt.ID,
				"finding_count": len(findings),
			}).Error("findings lost for captured prompt: ", err)
			return nil, fmt.Errorf("%w: %v", apperrors.ErrFindingsNotPersisted, err)
		}
	}

	if err := s.subjectRepo.TouchLastActive(ctx, subject.ID, now); err != nil {
		// The capture itself succeeded; a stale last-active marker is not
		// worth failing it over.
		logger.WithContext(ctx).WithField("subject_id", subject.ID).
			Warn("failed to refresh subject last-active marker: ", err)
	}

	return &CaptureResponse{
		PromptID:      prompt.ID,
		RisksDetected: len(scanned),
		OverallRisk:   detector.ResolveSeverity(scanned),
	}, nil
}

// resolveSubject finds the subject for (org, email), creating it on first
// capture. A create conflict means another request won the race, so it is
// treated as "already exists" and resolved with a fallback lookup.
func (s *CaptureService) resolveSubject(ctx context.Context, orgID uuid.UUID, email string) (*models.Subject, error) {
	subject, err := s.subjectRepo.GetByOrgAndEmail(ctx, orgID, email)
	if err == nil {
		return subject, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	subject = &models.Subject{
		OrganizationID: orgID,
		Email:          email,
		LastActiveAt:   time.Now().UTC(),
	}
	err = s.subjectRepo.Create(ctx, subject)
	if err == nil {
		return subject, nil
	}
	if errors.Is(err, apperrors.ErrSubjectExists) {
		return s.subjectRepo.GetByOrgAndEmail(ctx, orgID, email)
	}
	return nil, err
}

// preview returns a bounded, rune-safe prefix of the text
func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewLength {
		return text
	}
	return string(runes[:previewLength])
}
