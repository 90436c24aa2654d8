package api

import (
	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	errorInternalServer     = errorResponse{1000, "internal server error"}
	errorInvalidParameters  = errorResponse{1001, "invalid parameters"}
	errorCannotParseRequest = errorResponse{1002, "cannot parse request"}
	errorUnauthorized       = errorResponse{1003, "authorization required"}
	errorForbidden          = errorResponse{1004, "access denied"}
	errorFeedbackNotFound   = errorResponse{1005, "feedback not found"}
	errorAccountTaken       = errorResponse{1006, "account already registered"}
	errorInvalidCredentials = errorResponse{1007, "invalid credentials"}
	errorMessageRequired    = errorResponse{1008, "message and product are required"}
	errorPasswordTooShort   = errorResponse{1009, "password must be at least 6 characters"}
)

func abortWithEncoding(c *gin.Context, code int, resp errorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	c.AbortWithStatusJSON(code, resp)
}
