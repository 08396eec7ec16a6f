package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Apartment is a rentable listing. ApartmentNo holds the room count and is
// what the admin statistics sum over.
type Apartment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ApartmentNo int                `bson:"apartmentNo" json:"apartmentNo"`
	FloorNo     int                `bson:"floorNo" json:"floorNo"`
	BlockName   string             `bson:"blockName" json:"blockName"`
	Rent        float64            `bson:"rent" json:"rent"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
}

func (a *Apartment) GetID() primitive.ObjectID   { return a.ID }
func (a *Apartment) SetID(id primitive.ObjectID) { a.ID = id }

// ApartmentRequest is the body of POST /appertments
type ApartmentRequest struct {
	ApartmentNo int     `json:"apartmentNo" binding:"gte=0"`
	FloorNo     int     `json:"floorNo" binding:"gte=0"`
	BlockName   string  `json:"blockName" binding:"required,max=50"`
	Rent        float64 `json:"rent" binding:"gte=0"`
	Image       string  `json:"image" binding:"omitempty,url"`
}

// ToApartment converts the request into a new document
func (r *ApartmentRequest) ToApartment() *Apartment {
	return &Apartment{
		ApartmentNo: r.ApartmentNo,
		FloorNo:     r.FloorNo,
		BlockName:   r.BlockName,
		Rent:        r.Rent,
		Image:       r.Image,
	}
}

// PageQuery carries the 1-based page and page size from the query string.
// Nil fields were not supplied.
type PageQuery struct {
	Page *int `form:"page" binding:"omitempty,min=1"`
	Size *int `form:"size" binding:"omitempty,min=1"`
}

// CountResponse is returned by count endpoints
type CountResponse struct {
	Count int64 `json:"count"`
}
