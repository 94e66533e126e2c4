package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"magento-commerce-actions/internal/apierror"
	"magento-commerce-actions/internal/envelope"
)

// GatewayErrorType is reported for requests rejected before reaching an action
const GatewayErrorType = "magento-gateway-error"

// CORS middleware for handling Cross-Origin Resource Sharing
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			origin = "*"
		}
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, Authorization, Cookie")
		c.Header("Access-Control-Expose-Headers", "Content-Length, Location, Set-Cookie, OW-Activation-Id")
		c.Header("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// ErrorHandler renders errors attached to the gin context with the same
// body failed actions use.
func ErrorHandler(logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last()
		logger.WithFields(logrus.Fields{
			"request_id": c.GetString(RequestIDKey),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"error":      err.Error(),
		}).Error("Request error")

		switch err.Type {
		case gin.ErrorTypeBind:
			abortWithError(c, http.StatusBadRequest, apierror.InvalidArgument(err.Error()))
		default:
			abortWithError(c, http.StatusInternalServerError, apierror.Unexpected())
		}
	}
}

func abortWithError(c *gin.Context, status int, err *apierror.Error) {
	c.AbortWithStatusJSON(status, envelope.Failure(err, GatewayErrorType).ResponseBody())
}
