package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func NewErrorResponse(message, err string) ErrorResponse {
	return ErrorResponse{Success: false, Message: message, Error: err}
}

// SuccessResponse wraps informational replies
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func NewSuccessResponse(message string, data interface{}) SuccessResponse {
	return SuccessResponse{Success: true, Message: message, Data: data}
}

// InsertResult mirrors the driver's insert acknowledgment
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

func NewInsertResult(id primitive.ObjectID) InsertResult {
	return InsertResult{Acknowledged: true, InsertedID: id.Hex()}
}

// UpdateResult mirrors the driver's update acknowledgment
type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// MembershipChange reports the writes made by a role transition
type MembershipChange struct {
	User              UpdateResult `json:"user"`
	MembersDeleted    int64        `json:"membersDeleted"`
	AgreementsDeleted int64        `json:"agreementsDeleted"`
}

// TokenRequest is the body of POST /jwt
type TokenRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name" binding:"max=100"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
