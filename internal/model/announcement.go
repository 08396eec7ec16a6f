package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Announcement struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Timestamp   time.Time          `bson:"timestamp" json:"timestamp"`
}

func (a *Announcement) GetID() primitive.ObjectID   { return a.ID }
func (a *Announcement) SetID(id primitive.ObjectID) { a.ID = id }

// AnnouncementRequest is the body of POST /announcements
type AnnouncementRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"required,max=5000"`
}
