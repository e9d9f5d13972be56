package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/winning-appliances/service-automation/internal/domain/entity"
	domainErrors "github.com/winning-appliances/service-automation/internal/domain/errors"
	"github.com/winning-appliances/service-automation/internal/domain/extract"
	"github.com/winning-appliances/service-automation/internal/usecase"
	"go.uber.org/zap"
)

type MockServiceRequestCreator struct {
	mock.Mock
}

func (m *MockServiceRequestCreator) CreateServiceRequest(ctx context.Context, in usecase.CreateServiceRequestInput) (*usecase.CreateServiceRequestResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.CreateServiceRequestResult), args.Error(1)
}

type MockCustomerReplyProcessor struct {
	mock.Mock
}

func (m *MockCustomerReplyProcessor) ProcessReply(ctx context.Context, in usecase.CustomerReplyInput) (*usecase.CustomerReplyResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.CustomerReplyResult), args.Error(1)
}

func newContext(method, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewRequestValidator()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealthHandler(t *testing.T) {
	h := NewHealthHandler("Winning Service Automation", "1.0.0")

	c, rec := newContext(http.MethodGet, "")
	require.NoError(t, h.Status(c))
	body := decode(t, rec)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "Winning Service Automation", body["service"])
	assert.Equal(t, "1.0.0", body["version"])
	assert.NotEmpty(t, body["timestamp"])

	c, rec = newContext(http.MethodGet, "")
	require.NoError(t, h.Health(c))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestServiceRequestHandler_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(m *MockServiceRequestCreator)
		wantStatus int
		check      func(t *testing.T, body map[string]interface{})
	}{
		{
			name:       "missing fields",
			body:       `{"pageText":"Sell-to Email: a@b.co","sku":""}`,
			setup:      func(m *MockServiceRequestCreator) {},
			wantStatus: http.StatusBadRequest,
			check: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "Missing required fields", body["error"])
				assert.Equal(t, []interface{}{"pageText", "sku", "assignedUserEmail"}, body["required"])
				assert.Equal(t, []interface{}{"sku", "assignedUserEmail"}, body["missing"])
			},
		},
		{
			name: "extraction failed",
			body: `{"pageText":"nothing useful","sku":"B1","assignedUserEmail":"staff@winning.com.au"}`,
			setup: func(m *MockServiceRequestCreator) {
				m.On("CreateServiceRequest", mock.Anything, mock.Anything).Return(
					&usecase.CreateServiceRequestResult{Extracted: extract.OrderPageFields{Name: "Jane"}},
					domainErrors.NewMissingFieldsError(usecase.MessageMissingCustomerData, extract.FieldSINumber, extract.FieldEmail),
				)
			},
			wantStatus: http.StatusBadRequest,
			check: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "Could not extract required customer data", body["error"])
				assert.Equal(t, "Jane", body["extracted"].(map[string]interface{})["name"])
				assert.Equal(t, []interface{}{"siNumber", "email"}, body["missing"])
			},
		},
		{
			name: "persistence failure",
			body: `{"pageText":"SI12345678","sku":"B1","assignedUserEmail":"staff@winning.com.au"}`,
			setup: func(m *MockServiceRequestCreator) {
				m.On("CreateServiceRequest", mock.Anything, mock.Anything).Return(
					nil, domainErrors.NewPersistenceError("failed to save service request", errors.New("db down")),
				)
			},
			wantStatus: http.StatusInternalServerError,
			check: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "Internal server error", body["error"])
				assert.Contains(t, body["message"], "db down")
			},
		},
		{
			name: "created",
			body: `{"pageText":"SI12345678","url":"https://erp/1","sku":"B1","assignedUserEmail":"staff@winning.com.au"}`,
			setup: func(m *MockServiceRequestCreator) {
				m.On("CreateServiceRequest", mock.Anything, usecase.CreateServiceRequestInput{
					PageText: "SI12345678", URL: "https://erp/1", SKU: "B1", AssignedUserEmail: "staff@winning.com.au",
				}).Return(&usecase.CreateServiceRequestResult{
					Request: &entity.ServiceRequest{SINumber: "SI12345678"},
					Created: true,
				}, nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, true, body["success"])
				assert.Equal(t, "Service request created", body["message"])
				assert.Equal(t, "SI12345678", body["siNumber"])
				assert.Equal(t, true, body["created"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creator := new(MockServiceRequestCreator)
			tt.setup(creator)
			h := NewServiceRequestHandler(creator, zap.NewNop())

			c, rec := newContext(http.MethodPost, tt.body)
			require.NoError(t, h.Create(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			tt.check(t, decode(t, rec))
			creator.AssertExpectations(t)
		})
	}
}

func TestServiceRequestHandler_InvalidBody(t *testing.T) {
	h := NewServiceRequestHandler(new(MockServiceRequestCreator), zap.NewNop())

	c, rec := newContext(http.MethodPost, `{"pageText":`)
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCustomerReplyHandler_Process(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		result     *usecase.CustomerReplyResult
		wantStatus int
		wantBody   string
	}{
		{
			name:       "missing email",
			body:       `{"serialNumber":"SN-1"}`,
			err:        domainErrors.NewMissingFieldsError(usecase.MessageMissingCustomerEmail, "customerEmail"),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Customer email is required","required":["customerEmail"]}`,
		},
		{
			name:       "no pending request",
			body:       `{"customerEmail":"jane@example.com"}`,
			err:        domainErrors.NewPendingRequestNotFoundError("jane@example.com"),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"no pending service request found for jane@example.com","email":"jane@example.com"}`,
		},
		{
			name:       "processed",
			body:       `{"customerEmail":"jane@example.com","warrantyStatus":"In Warranty"}`,
			result:     &usecase.CustomerReplyResult{Request: &entity.ServiceRequest{SINumber: "SI12345678"}, Options: make([]entity.ServiceOption, 2)},
			wantStatus: http.StatusOK,
			wantBody:   `{"success":true,"message":"Reply processed","siNumber":"SI12345678","optionsFound":2}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			processor := new(MockCustomerReplyProcessor)
			if tt.result != nil {
				processor.On("ProcessReply", mock.Anything, mock.Anything).Return(tt.result, nil)
			} else {
				processor.On("ProcessReply", mock.Anything, mock.Anything).Return(nil, tt.err)
			}
			h := NewCustomerReplyHandler(processor, zap.NewNop())

			c, rec := newContext(http.MethodPost, tt.body)
			require.NoError(t, h.Process(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestCustomerReplyHandler_PassesEmailText(t *testing.T) {
	processor := new(MockCustomerReplyProcessor)
	processor.On("ProcessReply", mock.Anything, usecase.CustomerReplyInput{
		SerialNumber: "SN-9",
		EmailText:    "From: jane@example.com",
	}).Return(nil, errors.New("boom"))
	h := NewCustomerReplyHandler(processor, zap.NewNop())

	c, rec := newContext(http.MethodPost, `{"serialNumber":"SN-9","emailText":"From: jane@example.com"}`)
	require.NoError(t, h.Process(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	processor.AssertExpectations(t)
}
