package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/asanchezr/gin-menu-api/internal/config"
	"github.com/asanchezr/gin-menu-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(logrus.DebugLevel)
	case "production":
		log.SetLevel(logrus.ErrorLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}
}

// SetLogOutput redirects middleware logging, used by tests to capture output
func SetLogOutput(w io.Writer) {
	log.SetOutput(w)
}

const (
	// RequestIDHeader is the HTTP header carrying the request correlation ID
	RequestIDHeader = "X-Request-ID"

	// RequestIDKey is the gin context key the ID is stored under
	RequestIDKey = "request_id"
)

// RequestID ensures every request carries a correlation ID: an inbound
// X-Request-ID header is reused, otherwise a new UUID is generated. The ID
// is stored in the context and echoed on the response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(RequestIDKey, requestID)
		c.Writer.Header().Set(RequestIDHeader, requestID)
		c.Next()
	}
}

// RequestLogger logs one line per request with a timestamp, the method and
// the path. For POST and PUT requests it logs the pretty-printed body on a
// second line. It never rejects or alters the request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		log.Infof("[%s] %s %s", time.Now().UTC().Format(time.RFC3339), c.Request.Method, c.Request.URL.Path)
		if c.Request.Method == http.MethodPost || c.Request.Method == http.MethodPut {
			logRequestBody(c)
		}
		c.Next()
	}
}

// logRequestBody logs the request body and restores it so downstream stages
// can still read it
func logRequestBody(c *gin.Context) {
	if c.Request.Body == nil {
		return
	}
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return
	}
	c.Request.Body = io.NopCloser(bytes.NewBuffer(raw))
	if len(raw) == 0 {
		return
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		log.Info(string(raw))
		return
	}
	pretty, err := json.MarshalIndent(decoded, "", "  ")
	if err != nil {
		log.Info(string(raw))
		return
	}
	log.Info(string(pretty))
}

// Recovery converts any panic in the handler chain into a generic 500
// response. The recovered error is logged server-side and never leaks to
// the client.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Errorf("recovered from panic: %v", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{Error: models.MsgInternalServerError})
	})
}
