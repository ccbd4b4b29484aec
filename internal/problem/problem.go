package problem

import (
	"Packed/internal/apperrors"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// genericDetail is the only detail text a 500 response may carry. Fault
// messages are logged under the errorId, never echoed to the client.
const genericDetail = "an unexpected error occurred while processing the request"

// Details is the error envelope shared by every non-2xx response.
type Details struct {
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Status    int       `json:"status"`
	Detail    string    `json:"detail"`
	Instance  string    `json:"instance"`
	ErrorID   string    `json:"errorId"`
	Timestamp time.Time `json:"timestamp"`
}

func New(status int, detail, instance string) Details {
	return Details{
		Type:      fmt.Sprintf("https://httpstatuses.io/%d", status),
		Title:     http.StatusText(status),
		Status:    status,
		Detail:    detail,
		Instance:  instance,
		ErrorID:   uuid.NewString(),
		Timestamp: time.Now().UTC(),
	}
}

// StatusFor maps a domain error kind to its fixed HTTP status. Anything
// outside the taxonomy is an unexpected fault.
func StatusFor(err error) int {
	kind, ok := apperrors.KindOf(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch kind {
	case apperrors.ListNotFound, apperrors.ItemNotFound,
		apperrors.ContainerNotFound, apperrors.PlacementNotFound:
		return http.StatusNotFound
	case apperrors.DuplicateList, apperrors.DuplicateItem,
		apperrors.DuplicateContainer, apperrors.ItemQuantityViolation:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Render writes the problem body for err on c. Domain errors keep their
// message as detail; anything outside the taxonomy is escalated to the
// app-level error handler, which logs the fault and hides its text.
func Render(c *fiber.Ctx, err error) error {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		return err
	}
	return c.Status(status).JSON(New(status, err.Error(), c.Path()))
}

// BadRequest reports a malformed request shape; these never reach the
// services.
func BadRequest(c *fiber.Ctx, detail string) error {
	return c.Status(http.StatusBadRequest).JSON(New(http.StatusBadRequest, detail, c.Path()))
}

// NewErrorHandler builds the app-level last-resort handler: any error that
// escapes a handler becomes a problem body, and fault text is only logged.
func NewErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := http.StatusInternalServerError
		detail := genericDetail
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			status = fiberErr.Code
			if status != http.StatusInternalServerError {
				detail = fiberErr.Message
			}
		}
		details := New(status, detail, c.Path())
		log.WithFields(logrus.Fields{
			"errorId": details.ErrorID,
			"status":  status,
			"path":    c.Path(),
			"error":   err.Error(),
		}).Error("request failed")
		return c.Status(status).JSON(details)
	}
}
