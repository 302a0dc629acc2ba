package models

import "time"

// AttemptRecord is the outcome of one add-event submission.
type AttemptRecord struct {
	ID        string    `bson:"id" json:"id"`
	SessionID string    `bson:"sessionId" json:"sessionId"`
	Start     int       `bson:"start" json:"start"`
	End       int       `bson:"end" json:"end"`
	Accepted  bool      `bson:"accepted" json:"accepted"`
	Code      string    `bson:"code,omitempty" json:"code,omitempty"` // rejection code, empty when accepted
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
