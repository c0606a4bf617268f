package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"promptwatch-backend/internal/auth"
	"promptwatch-backend/internal/config"
	"promptwatch-backend/internal/database"
	"promptwatch-backend/internal/database/models"
	"promptwatch-backend/internal/detector"
	"promptwatch-backend/internal/repository"
	"promptwatch-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// demoCapture is one sample submission run through the real capture pipeline
type demoCapture struct {
	email  string
	tool   string
	text   string
	url    string
	sessID string
}

var demoCaptures = []demoCapture{
	{
		email:  "alice@demo.promptwatch.dev",
		tool:   "chatgpt",
		text:   "Can you review this customer record? SSN 123-45-6789, card 4111-1111-1111-1111.",
		url:    "https://chat.openai.com/",
		sessID: "demo-session-1",
	},
	{
		email:  "alice@demo.promptwatch.dev",
		tool:   "chatgpt",
		text:   "Summarize the onboarding doc for new hires.",
		url:    "https://chat.openai.com/",
		sessID: "demo-session-1",
	},
	{
		email:  "bob@demo.promptwatch.dev",
		tool:   "claude",
		text:   "Debug this: func handleLogin(w http.ResponseWriter) { api_key = \"sk-demo000000000000000000000\" }",
		url:    "https://claude.ai/",
		sessID: "demo-session-2",
	},
	{
		email:  "bob@demo.promptwatch.dev",
		tool:   "claude",
		text:   "Draft a reply to patient id 12345678, contact carol@clinic.example or (555) 867-5309.",
		url:    "https://claude.ai/",
		sessID: "demo-session-2",
	},
	{
		email:  "carol@demo.promptwatch.dev",
		tool:   "copilot",
		text:   "Write a thank-you note to Dr. Smith for the referral.",
		sessID: "demo-session-3",
	},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	ctx := context.Background()

	registry, err := detector.NewRegistryWithOverlay(cfg.DetectorOverlayPath)
	if err != nil {
		log.Fatalf("Failed to build detector registry: %v", err)
	}

	orgRepo := repository.NewOrganizationRepository(db)
	subjectRepo := repository.NewSubjectRepository(db)
	promptRepo := repository.NewPromptRepository(db)
	findingRepo := repository.NewFindingRepository(db)

	validate := validator.New()
	orgService := service.NewOrganizationService(orgRepo, validate)
	captureService := service.NewCaptureService(
		subjectRepo, promptRepo, findingRepo, detector.NewScanner(registry), validate)

	org, err := resolveDemoOrganization(ctx, db, orgService)
	if err != nil {
		log.Fatalf("Failed to resolve demo organization: %v", err)
	}
	log.Printf("Demo organization ready: %s (%s)", org.Name, org.ID)

	for _, capture := range demoCaptures {
		ack, err := captureService.Capture(ctx, &service.CaptureRequest{
			OrgID:      org.ID,
			UserEmail:  capture.email,
			AITool:     capture.tool,
			PromptText: capture.text,
			URL:        capture.url,
			SessionID:  capture.sessID,
		})
		if err != nil {
			log.Fatalf("Failed to capture demo prompt: %v", err)
		}
		log.Printf("Captured prompt %s: %d risk(s), overall %s", ack.PromptID, ack.RisksDetected, ack.OverallRisk)
	}

	token, err := auth.NewService(cfg.JWTSecret).IssueToken(org.ID, "dashboard@demo.promptwatch.dev", 24*time.Hour)
	if err != nil {
		log.Fatalf("Failed to issue demo token: %v", err)
	}

	fmt.Println()
	fmt.Println("Demo data loaded. Query the analytics endpoints with:")
	fmt.Printf("  curl -H 'Authorization: Bearer %s' http://localhost:%s/api/v1/analytics/summary\n", token, cfg.Port)
}

// resolveDemoOrganization finds or creates the fixed demo tenant
func resolveDemoOrganization(ctx context.Context, db *gorm.DB, orgService *service.OrganizationService) (*models.Organization, error) {
	var org models.Organization
	err := db.WithContext(ctx).First(&org, "name = ?", "promptwatch-demo").Error
	if err == nil {
		return &org, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created, err := orgService.Create(ctx, &service.CreateOrganizationRequest{
		Name:        "promptwatch-demo",
		DisplayName: "PromptWatch Demo",
		Domain:      "demo.promptwatch.dev",
		Description: "Seeded demo tenant",
	})
	if err != nil {
		return nil, err
	}

	err = db.WithContext(ctx).First(&org, "id = ?", created.ID).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}
