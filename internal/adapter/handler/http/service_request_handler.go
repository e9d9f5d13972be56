package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	domainErrors "github.com/winning-appliances/service-automation/internal/domain/errors"
	"github.com/winning-appliances/service-automation/internal/usecase"
	"go.uber.org/zap"
)

var serviceRequestRequiredFields = []string{"pageText", "sku", "assignedUserEmail"}

type ServiceRequestCreator interface {
	CreateServiceRequest(ctx context.Context, in usecase.CreateServiceRequestInput) (*usecase.CreateServiceRequestResult, error)
}

type ServiceRequestHandler struct {
	usecase ServiceRequestCreator
	logger  *zap.Logger
}

func NewServiceRequestHandler(usecase ServiceRequestCreator, logger *zap.Logger) *ServiceRequestHandler {
	return &ServiceRequestHandler{
		usecase: usecase,
		logger:  logger,
	}
}

type CreateServiceRequestRequest struct {
	PageText          string `json:"pageText" validate:"required"`
	URL               string `json:"url"`
	SKU               string `json:"sku" validate:"required"`
	AssignedUserEmail string `json:"assignedUserEmail" validate:"required"`
}

type CreateServiceRequestResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	SINumber string `json:"siNumber"`
	Created  bool   `json:"created"`
}

// Create handles POST /api/service-request
func (h *ServiceRequestHandler) Create(c echo.Context) error {
	var req CreateServiceRequestRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request body",
		})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":    "Missing required fields",
			"required": serviceRequestRequiredFields,
			"missing":  FailedFields(err),
		})
	}

	h.logger.Info("Received service request",
		zap.String("sku", req.SKU),
		zap.String("assigned_user_email", req.AssignedUserEmail))

	result, err := h.usecase.CreateServiceRequest(c.Request().Context(), usecase.CreateServiceRequestInput{
		PageText:          req.PageText,
		URL:               req.URL,
		SKU:               req.SKU,
		AssignedUserEmail: req.AssignedUserEmail,
	})
	if err != nil {
		if domainErrors.IsType(err, domainErrors.ErrTypeValidationFailed) && result != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error":     usecase.MessageMissingCustomerData,
				"extracted": result.Extracted,
				"missing":   result.Extracted.Missing(),
			})
		}
		return internalError(c, h.logger, err, "Failed to create service request")
	}

	return c.JSON(http.StatusOK, CreateServiceRequestResponse{
		Success:  true,
		Message:  "Service request created",
		SINumber: result.Request.SINumber,
		Created:  result.Created,
	})
}
