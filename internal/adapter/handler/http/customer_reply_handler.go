package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	domainErrors "github.com/winning-appliances/service-automation/internal/domain/errors"
	"github.com/winning-appliances/service-automation/internal/usecase"
	"go.uber.org/zap"
)

type CustomerReplyProcessor interface {
	ProcessReply(ctx context.Context, in usecase.CustomerReplyInput) (*usecase.CustomerReplyResult, error)
}

type CustomerReplyHandler struct {
	usecase CustomerReplyProcessor
	logger  *zap.Logger
}

func NewCustomerReplyHandler(usecase CustomerReplyProcessor, logger *zap.Logger) *CustomerReplyHandler {
	return &CustomerReplyHandler{
		usecase: usecase,
		logger:  logger,
	}
}

// CustomerReplyRequest accepts structured fields, the pasted reply email,
// or both.
type CustomerReplyRequest struct {
	CustomerEmail      string `json:"customerEmail"`
	SerialNumber       string `json:"serialNumber"`
	ProblemDescription string `json:"problemDescription"`
	WarrantyStatus     string `json:"warrantyStatus"`
	EmailText          string `json:"emailText"`
}

type CustomerReplyResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	SINumber     string `json:"siNumber"`
	OptionsFound int    `json:"optionsFound"`
}

// Process handles POST /api/customer-reply
func (h *CustomerReplyHandler) Process(c echo.Context) error {
	var req CustomerReplyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request body",
		})
	}

	result, err := h.usecase.ProcessReply(c.Request().Context(), usecase.CustomerReplyInput{
		CustomerEmail:      req.CustomerEmail,
		SerialNumber:       req.SerialNumber,
		ProblemDescription: req.ProblemDescription,
		WarrantyStatus:     req.WarrantyStatus,
		EmailText:          req.EmailText,
	})
	if err != nil {
		var intakeErr *domainErrors.IntakeError
		if errors.As(err, &intakeErr) {
			switch intakeErr.Type {
			case domainErrors.ErrTypeValidationFailed:
				return c.JSON(http.StatusBadRequest, echo.Map{
					"error":    intakeErr.Message,
					"required": intakeErr.Fields,
				})
			case domainErrors.ErrTypePendingRequestNotFound:
				return c.JSON(http.StatusNotFound, echo.Map{
					"error": intakeErr.Message,
					"email": intakeErr.Email,
				})
			}
		}
		return internalError(c, h.logger, err, "Failed to process customer reply")
	}

	return c.JSON(http.StatusOK, CustomerReplyResponse{
		Success:      true,
		Message:      "Reply processed",
		SINumber:     result.Request.SINumber,
		OptionsFound: len(result.Options),
	})
}
