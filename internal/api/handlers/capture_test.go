package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"promptwatch-backend/internal/api/handlers"
	"promptwatch-backend/internal/database/models"
	apperrors "promptwatch-backend/internal/errors"
	"promptwatch-backend/internal/mocks"
	"promptwatch-backend/internal/service"
	"promptwatch-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testMaxPromptBytes = 1024

// CaptureHandlerTestSuite defines the test suite for CaptureHandler
type CaptureHandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockCaptureSv *mocks.MockCaptureServiceInterface
	handler       *handlers.CaptureHandler
	httpSuite     *testutils.HTTPTestSuite
}

func (suite *CaptureHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockCaptureSv = mocks.NewMockCaptureServiceInterface(suite.ctrl)
	suite.handler = handlers.NewCaptureHandler(suite.mockCaptureSv, testMaxPromptBytes)

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.POST("/captures", suite.handler.CreateCapture)
}

func (suite *CaptureHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CaptureHandlerTestSuite) postCapture(body interface{}) *httptest.ResponseRecorder {
	return suite.httpSuite.MakeRequest(http.MethodPost, "/captures", body)
}

func (suite *CaptureHandlerTestSuite) TestCreateCapture_Success() {
	orgID := uuid.New()
	promptID := uuid.New()
	body := service.CaptureRequest{
		OrgID:      orgID,
		UserEmail:  "alice@acme.com",
		AITool:     "chatgpt",
		PromptText: "My SSN is 123-45-6789",
	}
	ack := &service.CaptureResponse{
		PromptID:      promptID,
		RisksDetected: 1,
		OverallRisk:   models.SeverityCritical,
	}
	suite.mockCaptureSv.EXPECT().Capture(gomock.Any(), gomock.Any()).Return(ack, nil)

	w := suite.postCapture(body)

	var got service.CaptureResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &got)
	assert.Equal(suite.T(), promptID, got.PromptID)
	assert.Equal(suite.T(), 1, got.RisksDetected)
	assert.Equal(suite.T(), models.SeverityCritical, got.OverallRisk)
}

func (suite *CaptureHandlerTestSuite) TestCreateCapture_InvalidJSON() {
	req := httptest.NewRequest(http.MethodPost, "/captures", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.httpSuite.Router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *CaptureHandlerTestSuite) TestCreateCapture_OversizedPrompt() {
	body := service.CaptureRequest{
		OrgID:      uuid.New(),
		UserEmail:  "alice@acme.com",
		AITool:     "chatgpt",
		PromptText: strings.Repeat("a", testMaxPromptBytes+1),
	}

	// No service expectation: the size guard rejects before the pipeline runs
	w := suite.postCapture(body)

	assert.Equal(suite.T(), http.StatusRequestEntityTooLarge, w.Code)
}

func (suite *CaptureHandlerTestSuite) TestCreateCapture_ValidationError() {
	body := service.CaptureRequest{
		OrgID:      uuid.New(),
		UserEmail:  "not-an-email",
		AITool:     "chatgpt",
		PromptText: "hello",
	}
	vErr := validator.New().Struct(&body)
	suite.mockCaptureSv.EXPECT().
		Capture(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("validation failed: %w", vErr))

	w := suite.postCapture(body)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *CaptureHandlerTestSuite) TestCreateCapture_FindingsNotPersisted() {
	body := service.CaptureRequest{
		OrgID:      uuid.New(),
		UserEmail:  "alice@acme.com",
		AITool:     "chatgpt",
		PromptText: "card 4111-1111-1111-1111",
	}
	suite.mockCaptureSv.EXPECT().
		Capture(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: insert failed", apperrors.ErrFindingsNotPersisted))

	w := suite.postCapture(body)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusInternalServerError, "findings")
}

func (suite *CaptureHandlerTestSuite) TestCreateCapture_ServiceError() {
	body := service.CaptureRequest{
		OrgID:      uuid.New(),
		UserEmail:  "alice@acme.com",
		AITool:     "chatgpt",
		PromptText: "hello",
	}
	suite.mockCaptureSv.EXPECT().
		Capture(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("failed to persist prompt: connection refused"))

	w := suite.postCapture(body)

	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)
}

func TestCaptureHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CaptureHandlerTestSuite))
}
