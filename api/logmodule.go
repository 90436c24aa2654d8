package api

import (
	"net/http/httputil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("prefix", "api")

// RequestID tags every request with a fresh id for log correlation and
// echoes it back in the X-Request-Id header.
func (s *Server) RequestID(c *gin.Context) {
	id := uuid.NewString()
	c.Set("request_id", id)
	c.Header("X-Request-Id", id)
	c.Next()
}

// DumpRequest is a middleware to dump incoming http requests if the
// trace mode is enabled.
func (s *Server) DumpRequest(c *gin.Context) {
	if s.traceMode {
		dump, err := httputil.DumpRequest(c.Request, false)
		if err != nil {
			log.WithFields(logrus.Fields{
				"prefix":     "gin",
				"status":     c.Writer.Status(),
				"method":     c.Request.Method,
				"path":       c.Request.URL.Path,
				"request_id": c.GetString("request_id"),
			}).Error("fail to dump request")
		}

		log.WithFields(logrus.Fields{
			"prefix":     "gin",
			"request_id": c.GetString("request_id"),
			"req":        string(dump),
		}).Debug("incoming request")
	}

	c.Next()
}
