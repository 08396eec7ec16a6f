package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const AgreementPending = "pending"

// Agreement is a pending application from a user to rent an apartment
type Agreement struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email" json:"email"`
	ApartmentNo int                `bson:"apartmentNo" json:"apartmentNo"`
	FloorNo     int                `bson:"floorNo" json:"floorNo"`
	BlockName   string             `bson:"blockName" json:"blockName"`
	Rent        float64            `bson:"rent" json:"rent"`
	Status      string             `bson:"status" json:"status"`
	Timestamp   time.Time          `bson:"timestamp" json:"timestamp"`
}

func (a *Agreement) GetID() primitive.ObjectID   { return a.ID }
func (a *Agreement) SetID(id primitive.ObjectID) { a.ID = id }

// AgreementRequest is the body of POST /agreementlists
type AgreementRequest struct {
	Name        string  `json:"name" binding:"max=100"`
	Email       string  `json:"email" binding:"required,email"`
	ApartmentNo int     `json:"apartmentNo" binding:"gte=0"`
	FloorNo     int     `json:"floorNo" binding:"gte=0"`
	BlockName   string  `json:"blockName" binding:"max=50"`
	Rent        float64 `json:"rent" binding:"gte=0"`
}

func (r *AgreementRequest) ToAgreement() *Agreement {
	return &Agreement{
		Name:        r.Name,
		Email:       r.Email,
		ApartmentNo: r.ApartmentNo,
		FloorNo:     r.FloorNo,
		BlockName:   r.BlockName,
		Rent:        r.Rent,
		Status:      AgreementPending,
	}
}
