package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/davidtimmons/pragmatic-architecture/internal/marketplace/domain"
	"github.com/davidtimmons/pragmatic-architecture/internal/pkg/database"
)

// Route parameter keys.
const (
	UserIdKey   = "userId"
	WidgetIdKey = "widgetId"
)

type response struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func respond(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, response{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

func respondBadRequest(c *gin.Context, message string) {
	respond(c, http.StatusBadRequest, message, nil)
}

// handleCoreError reports a failure that escaped the core. The envelope
// carries the failure's reason rather than the full error chain; driver
// details stay in the logs.
func handleCoreError(c *gin.Context, err error) {
	var message string

	switch failure := err.(type) {
	case *domain.PurchaseFailure:
		message = failure.Reason
	case *domain.Failure:
		message = failure.Reason
	case *database.Failure:
		message = failure.Reason
	default:
		message = "internal server error"
	}

	respond(c, http.StatusInternalServerError, message, nil)
}
