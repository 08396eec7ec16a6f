package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Coupon is a discount code applied to rent payments
type Coupon struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Code        string             `bson:"code" json:"code"`
	Discount    float64            `bson:"discount" json:"discount"` // percent off
	Description string             `bson:"description" json:"description"`
	Available   bool               `bson:"available" json:"available"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (c *Coupon) GetID() primitive.ObjectID   { return c.ID }
func (c *Coupon) SetID(id primitive.ObjectID) { c.ID = id }

// CouponRequest is the body of POST /cupon-codes
type CouponRequest struct {
	Code        string  `json:"code" binding:"required,max=40"`
	Discount    float64 `json:"discount" binding:"gte=0,lte=100"`
	Description string  `json:"description" binding:"max=1000"`
	Available   *bool   `json:"available"`
}

// CouponUpdateRequest is the body of PUT /cupon/:id; nil fields are left as they are
type CouponUpdateRequest struct {
	Code        *string  `json:"code" binding:"omitempty,min=1,max=40"`
	Discount    *float64 `json:"discount" binding:"omitempty,gte=0,lte=100"`
	Description *string  `json:"description" binding:"omitempty,max=1000"`
	Available   *bool    `json:"available"`
}
