package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/narenkarthik370h/smart-feedback-analysis/schema"
	"github.com/narenkarthik370h/smart-feedback-analysis/sentiment"
	"github.com/narenkarthik370h/smart-feedback-analysis/store"
)

const (
	defaultPageLimit = 50

	// weekLookback is a literal 7-day window ending now, not a calendar week.
	weekLookback = 7 * 24 * time.Hour
)

// createFeedback accepts a submission, derives its sentiment and persists
// it. Anonymous callers may supply a display name and email; for
// authenticated callers the resolved identity wins over the payload.
func (s *Server) createFeedback(c *gin.Context) {
	var params struct {
		Name    string         `json:"name"`
		Email   string         `json:"email"`
		Product schema.Product `json:"product"`
		Message string         `json:"message"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	message := strings.TrimSpace(params.Message)
	if message == "" || !params.Product.Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorMessageRequired)
		return
	}

	label, score := sentiment.AnalyzeMessage(message)

	feedback := schema.Feedback{
		AccountID: schema.AnonymousAccountID,
		Name:      params.Name,
		Email:     params.Email,
		Product:   params.Product,
		Message:   message,
		Sentiment: label,
		Score:     score,
		Timestamp: time.Now(),
	}
	if feedback.Name == "" {
		feedback.Name = schema.DefaultGuestName
	}

	if identity, ok := requesterIdentity(c); ok {
		feedback.AccountID = identity.AccountID
		feedback.Name = identity.Name
		feedback.Email = identity.Email
	}

	id, err := s.mongoStore.CreateFeedback(feedback)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		feedback.ID = oid
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"sentiment": label,
		"score":     score,
		"feedback":  feedback,
	})
}

func summaryFilter(c *gin.Context) store.FeedbackFilter {
	filter := store.FeedbackFilter{}
	if c.Query("period") == "week" {
		filter.Since = time.Now().Add(-weekLookback)
	}
	return filter
}

// sentimentSummary returns the global per-label counts.
func (s *Server) sentimentSummary(c *gin.Context) {
	summary, err := s.mongoStore.GetSentimentSummary(summaryFilter(c))
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// mySentimentSummary returns the per-label counts for the caller's records.
func (s *Server) mySentimentSummary(c *gin.Context) {
	identity, ok := requesterIdentity(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	filter := summaryFilter(c)
	filter.AccountID = identity.AccountID

	summary, err := s.mongoStore.GetSentimentSummary(filter)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// listMyFeedback returns the caller's records, newest first.
func (s *Server) listMyFeedback(c *gin.Context) {
	identity, ok := requesterIdentity(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	feedbacks, err := s.mongoStore.ListFeedback(store.FeedbackFilter{AccountID: identity.AccountID}, 0, 0)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"count":     len(feedbacks),
		"feedbacks": feedbacks,
	})
}

// listFeedback pages through every record for the admin dashboard.
func (s *Server) listFeedback(c *gin.Context) {
	page, err := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", ""), 10, 64)
	if err != nil || limit < 1 {
		limit = defaultPageLimit
	}

	filter := store.FeedbackFilter{}

	total, err := s.mongoStore.CountFeedback(filter)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	feedbacks, err := s.mongoStore.ListFeedback(filter, (page-1)*limit, limit)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	pages := (total + limit - 1) / limit

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"total":     total,
		"page":      page,
		"pages":     pages,
		"feedbacks": feedbacks,
	})
}

// updateFeedback replaces a record's message and re-derives its sentiment
// and score. The record's timestamp is not touched.
func (s *Server) updateFeedback(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	var params struct {
		Message string `json:"message"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	message := strings.TrimSpace(params.Message)
	if message == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorMessageRequired)
		return
	}

	label, score := sentiment.AnalyzeMessage(message)

	feedback, err := s.mongoStore.UpdateFeedbackMessage(id, message, label, score)
	if err != nil {
		if err == store.ErrFeedbackNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorFeedbackNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"feedback": feedback,
	})
}

// deleteFeedback removes one record by id.
func (s *Server) deleteFeedback(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if err := s.mongoStore.DeleteFeedback(id); err != nil {
		if err == store.ErrFeedbackNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorFeedbackNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// clearFeedback wipes every record and reports how many were removed.
func (s *Server) clearFeedback(c *gin.Context) {
	deleted, err := s.mongoStore.DeleteAllFeedback()
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"deletedCount": deleted,
	})
}
