package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"promptwatch-backend/internal/database/models"
	"promptwatch-backend/internal/detector"
	apperrors "promptwatch-backend/internal/errors"
	"promptwatch-backend/internal/mocks"
	"promptwatch-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type CaptureServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockSubjectRepo *mocks.MockSubjectRepositoryInterface
	mockPromptRepo  *mocks.MockPromptRepositoryInterface
	mockFindingRepo *mocks.MockFindingRepositoryInterface
	captureService  *service.CaptureService
	validator       *validator.Validate
	ctx             context.Context
}

func (suite *CaptureServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSubjectRepo = mocks.NewMockSubjectRepositoryInterface(suite.ctrl)
	suite.mockPromptRepo = mocks.NewMockPromptRepositoryInterface(suite.ctrl)
	suite.mockFindingRepo = mocks.NewMockFindingRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.ctx = context.Background()

	registry, err := detector.NewRegistry()
	require.NoError(suite.T(), err)
	suite.captureService = service.NewCaptureService(
		suite.mockSubjectRepo,
		suite.mockPromptRepo,
		suite.mockFindingRepo,
		detector.NewScanner(registry),
		suite.validator,
	)
}

func (suite *CaptureServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CaptureServiceTestSuite) validRequest(orgID uuid.UUID) *service.CaptureRequest {
	return &service.CaptureRequest{
		OrgID:      orgID,
		UserEmail:  "alice@acme.com",
		AITool:     "chatgpt",
		PromptText: "Summarize this document for me",
	}
}

func (suite *CaptureServiceTestSuite) TestCapture_CleanText_Success() {
	orgID := uuid.New()
	subject := &models.Subject{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: orgID,
		Email:          "alice@acme.com",
	}
	promptID := uuid.New()

	suite.mockSubjectRepo.EXPECT().
		GetByOrgAndEmail(suite.ctx, orgID, "alice@acme.com").
		Return(subject, nil)
	suite.mockPromptRepo.EXPECT().
		Create(suite.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, prompt *models.Prompt) error {
			prompt.ID = promptID
			return nil
		})
	suite.mockSubjectRepo.EXPECT().
		TouchLastActive(suite.ctx, subject.ID, gomock.Any()).
		Return(nil)

	resp, err := suite.captureService.Capture(suite.ctx, suite.validRequest(orgID))

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
	assert.Equal(suite.T(), promptID, resp.PromptID)
	assert.Equal(suite.T(), 0, resp.RisksDetected)
	assert.Equal(suite.T(), models.SeverityNone, resp.OverallRisk)
}

func (suite *CaptureServiceTestSuite) TestCapture_SensitiveText_PersistsFindings() {
	orgID := uuid.New()
	subject := &models.Subject{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: orgID,
		Email:          "alice@acme.com",
	}
	promptID := uuid.New()

	req := suite.validRequest(orgID)
	req.PromptText = "My SSN is 123-45-6789 and my email is bob@corp.io"

	var persisted *models.Prompt
	suite.mockSubjectRepo.EXPECT().
		GetByOrgAndEmail(suite.ctx, orgID, "alice@acme.com").
		Return(subject, nil)
	suite.mockPromptRepo.EXPECT().
		Create(suite.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, prompt *models.Prompt) error {
			prompt.ID = promptID
			persisted = prompt
			return nil
		})
	suite.mockFindingRepo.EXPECT().
		CreateBatch(suite.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, findings []models.Finding) error {
			assert.Len(suite.T(), findings, 2)
			assert.Equal(suite.T(), promptID, findings[0].PromptID)
			assert.Equal(suite.T(), detector.CategoryIdentityNumber, findings[0].Category)
			assert.Equal(suite.T(), models.SeverityCritical, findings[0].Severity)
			assert.Equal(suite.T(), "***-**-6789", findings[0].MaskedValue)
			assert.Equal(suite.T(), detector.CategoryEmailAddress, findings[1].Category)
			return nil
		})
	suite.mockSubjectRepo.EXPECT().
		TouchLastActive(suite.ctx, subject.ID, gomock.Any()).
		Return(nil)

	resp, err := suite.captureService.Capture(suite.ctx, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
	assert.Equal(suite.T(), 2, resp.RisksDetected)
	assert.Equal(suite.T(), models.SeverityCritical, resp.OverallRisk)

	// The stored row keeps the full text, a bounded preview and rune length
	require.NotNil(suite.T(), persisted)
	assert.Equal(suite.T(), req.PromptText, persisted.PromptText)
	assert.Equal(suite.T(), req.PromptText, persisted.Preview)
	assert.Equal(suite.T(), len([]rune(req.PromptText)), persisted.Length)
	assert.Equal(suite.T(), orgID, persisted.OrganizationID)
	assert.Equal(suite.T(), subject.ID, persisted.SubjectID)
	assert.False(suite.T(), persisted.CapturedAt.IsZero())
}

func (suite *CaptureServiceTestSuite) TestCapture_LongText_TruncatesPreview() {
	orgID := uuid.New()
	subject := &models.Subject{BaseModel: models.BaseModel{ID: uuid.New()}}

	req := suite.validRequest(orgID)
	long := make([]rune, 0, 500)
	for i := 0; i < 500; i++ {
		long = append(long, 'é')
	}
	req.PromptText = string(long)

	var persisted *models.Prompt
	suite.mockSubjectRepo.EXPECT().
		GetByOrgAndEmail(suite.ctx, orgID, "alice@acme.com").
		Return(subject, nil)
	suite.mockPromptRepo.EXPECT().
		Create(suite.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, prompt *models.Prompt) error {
			persisted = prompt
			return nil
		})
	suite.mockSubjectRepo.EXPECT().
		TouchLastActive(suite.ctx, subject.ID, gomock.Any()).
		Return(nil)

	_, err := suite.captureService.Capture(suite.ctx, req)

	assert.NoError(suite.T(), err)
	require.NotNil(suite.T(), persisted)
	assert.Equal(suite.T(), 500, persisted.Length)
	assert.Equal(suite.T(), 200, len([]rune(persisted.Preview)))
}

func (suite *CaptureServiceTestSuite) TestCapture_InvalidRequest_NoSideEffects() {
	req := suite.validRequest(uuid.New())
	req.UserEmail = "not-an-email"

	// No repository expectations: validation must fail before any persistence
	resp, err := suite.captureService.Capture(suite.ctx, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

func (suite *CaptureServiceTestSuite) TestCapture_MissingPromptText_NoSideEffects() {
	req := suite.validRequest(uuid.New())
	req.PromptText = ""

	resp, err := suite.captureService.Capture(suite.ctx, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
}

func (suite *CaptureServiceTestSuite) TestCapture_NewSubject_CreatedOnFirstCapture() {
	orgID := uuid.New()
	subjectID := uuid.New()

	suite.mockSubjectRepo.EXPECT().
		GetByOrgAndEmail(suite.ctx, orgID, "alice@acme.com").
		Return(nil, gorm.ErrRecordNotFound)
	suite.mockSubjectRepo.EXPECT().
		Create(suite.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, subject *models.Subject) error {
			assert.Equal(suite.T(), orgID, subject.OrganizationID)
			assert.Equal(suite.T(), "alice@acme.com", subject.Email)
			subject.ID = subjectID
			return nil
		})
	suite.mockPromptRepo.EXPECT().
		Create(suite.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, prompt *models.Prompt) error {
			assert.Equal(suite.T(), subjectID, prompt.SubjectID)
			return nil
		})
	suite.mockSubjectRepo.EXPECT().
		TouchLastActive(suite.ctx, subjectID, gomock.Any()).
		Return(nil)

	resp, err := suite.captureService.Capture(suite.ctx, suite.validRequest(orgID))

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
}

func (suite *CaptureServiceTestSuite) TestCapture_SubjectCreateConflict_FallsBackToLookup() {
	orgID := uuid.New()
	winner := &models.Subject{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: orgID,
		Email:          "alice@acme.com",
		LastActiveAt:   time.Now().UTC(),
	}

	// A concurrent capture created the subject between our lookup and insert.
	// The conflict must resolve to the winning row, never surface as an error.
	gomock.InOrder(
		suite.mockSubjectRepo.EXPECT().
			GetByOrgAndEmail(suite.ctx, orgID, "alice@acme.com").
			Return(nil, gorm.ErrRecordNotFound),
		suite.mockSubjectRepo.EXPECT().
			Create(suite.ctx, gomock.Any()).
			Return(apperrors.ErrSubjectExists),
		suite.mockSubjectRepo.EXPECT().
			GetByOrgAndEmail(suite.ctx, orgID, "alice@acme.com").
			Return(winner, nil),
	)
	suite.mockPromptRepo.EXPECT().
		Create(suite.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, prompt *models.Prompt) error {
			assert.Equal(suite.T(), winner.ID, prompt.SubjectID)
			return nil
		})
	suite.mockSubjectRepo.EXPECT().
		TouchLastActive(suite.ctx, winner.ID, gomock.Any()).
		Return(nil)

	resp, err := suite.captureService.Capture(suite.ctx, suite.validRequest(orgID))

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
}

func (suite *CaptureServiceTestSuite) TestCapture_SubjectLookupError_Fails() {
	orgID := uuid.New()

	suite.mockSubjectRepo.EXPECT().
		GetByOrgAndEmail(suite.ctx, orgID, "alice@acme.com").
		Return(nil, errors.New("connection refused"))

	resp, err := suite.captureService.Capture(suite.ctx, suite.validRequest(orgID))

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.Contains(suite.T(), err.Error(), "failed to resolve subject")
}

func (suite *CaptureServiceTestSuite) TestCapture_FindingsPersistenceFailure_Surfaces() {
	orgID := uuid.New()
	subject := &models.Subject{BaseModel: models.BaseModel{ID: uuid.New()}}

	req := suite.validRequest(orgID)
	req.PromptText = "card 4111-1111-1111-1111"

	suite.mockSubjectRepo.EXPECT().
		GetByOrgAndEmail(suite.ctx, orgID, "alice@acme.com").
		Return(subject, nil)
	suite.mockPromptRepo.EXPECT().
		Create(suite.ctx, gomock.Any()).
		Return(nil)
	suite.mockFindingRepo.EXPECT().
		CreateBatch(suite.ctx, gomock.Any()).
		Return(errors.New("insert failed"))

	resp, err := suite.captureService.Capture(suite.ctx, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), errors.Is(err, apperrors.ErrFindingsNotPersisted))
}

func (suite *CaptureServiceTestSuite) TestCapture_TouchLastActiveFailure_StillSucceeds() {
	orgID := uuid.New()
	subject := &models.Subject{BaseModel: models.BaseModel{ID: uuid.New()}}

	suite.mockSubjectRepo.EXPECT().
		GetByOrgAndEmail(suite.ctx, orgID, "alice@acme.com").
		Return(subject, nil)
	suite.mockPromptRepo.EXPECT().
		Create(suite.ctx, gomock.Any()).
		Return(nil)
	suite.mockSubjectRepo.EXPECT().
		TouchLastActive(suite.ctx, subject.ID, gomock.Any()).
		Return(errors.New("update failed"))

	resp, err := suite.captureService.Capture(suite.ctx, suite.validRequest(orgID))

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
}

func TestCaptureServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CaptureServiceTestSuite))
}
