package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Member is the record of an approved tenant and the apartment they rent
type Member struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name          string             `bson:"name" json:"name"`
	Email         string             `bson:"email" json:"email"`
	ApartmentNo   int                `bson:"apartmentNo" json:"apartmentNo"`
	FloorNo       int                `bson:"floorNo" json:"floorNo"`
	BlockName     string             `bson:"blockName" json:"blockName"`
	Rent          float64            `bson:"rent" json:"rent"`
	AgreementDate string             `bson:"agreementDate,omitempty" json:"agreementDate,omitempty"`
	Timestamp     time.Time          `bson:"timestamp" json:"timestamp"`
}

func (m *Member) GetID() primitive.ObjectID   { return m.ID }
func (m *Member) SetID(id primitive.ObjectID) { m.ID = id }

// MemberRequest is the body of POST /membersinfo
type MemberRequest struct {
	Name          string  `json:"name" binding:"max=100"`
	Email         string  `json:"email" binding:"required,email"`
	ApartmentNo   int     `json:"apartmentNo" binding:"gte=0"`
	FloorNo       int     `json:"floorNo" binding:"gte=0"`
	BlockName     string  `json:"blockName" binding:"max=50"`
	Rent          float64 `json:"rent" binding:"gte=0"`
	AgreementDate string  `json:"agreementDate" binding:"max=40"`
}

func (r *MemberRequest) ToMember() *Member {
	return &Member{
		Name:          r.Name,
		Email:         r.Email,
		ApartmentNo:   r.ApartmentNo,
		FloorNo:       r.FloorNo,
		BlockName:     r.BlockName,
		Rent:          r.Rent,
		AgreementDate: r.AgreementDate,
	}
}
