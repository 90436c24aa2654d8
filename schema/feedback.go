package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	FeedbackCollection = "feedback"
)

// AnonymousAccountID marks feedback submitted without a resolved identity.
const AnonymousAccountID = "anonymous"

// DefaultGuestName is used when an anonymous submitter gives no name.
const DefaultGuestName = "Guest"

// Product is the closed set of product categories feedback can target.
type Product string

const (
	ProductWebsite         Product = "Website"
	ProductMobileApp       Product = "Mobile App"
	ProductCustomerService Product = "Customer Service"
	ProductQuality         Product = "Product Quality"
	ProductDelivery        Product = "Delivery"
	ProductOther           Product = "Other"
)

// Valid reports whether p is a member of the product set.
func (p Product) Valid() bool {
	switch p {
	case ProductWebsite, ProductMobileApp, ProductCustomerService,
		ProductQuality, ProductDelivery, ProductOther:
		return true
	}
	return false
}

// Sentiment is the label derived from the lexicon score sign.
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNegative Sentiment = "Negative"
	SentimentNeutral  Sentiment = "Neutral"
)

func (s Sentiment) Valid() bool {
	switch s {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
		return true
	}
	return false
}

// Feedback is one submitted feedback document. Sentiment and Score are
// always derived from Message; callers never supply them. Timestamp is set
// once at creation and survives message edits.
type Feedback struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	AccountID string             `json:"user_id" bson:"user_id"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email,omitempty" bson:"email,omitempty"`
	Product   Product            `json:"product" bson:"product"`
	Message   string             `json:"message" bson:"message"`
	Sentiment Sentiment          `json:"sentiment" bson:"sentiment"`
	Score     int                `json:"score" bson:"score"`
	Timestamp time.Time          `json:"timestamp" bson:"timestamp"`
}

// SentimentSummary is the per-label breakdown of a feedback set.
// Total is always the sum of the three counts.
type SentimentSummary struct {
	Total    int64 `json:"total"`
	Positive int64 `json:"positive"`
	Negative int64 `json:"negative"`
	Neutral  int64 `json:"neutral"`
}
