package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is a finalized rent payment. Date holds the month paid for.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email         string             `bson:"email" json:"email"`
	Date          string             `bson:"date" json:"date"`
	Amount        float64            `bson:"amount" json:"amount"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	CouponCode    string             `bson:"couponCode,omitempty" json:"couponCode,omitempty"`
	ApartmentNo   int                `bson:"apartmentNo,omitempty" json:"apartmentNo,omitempty"`
	Timestamp     time.Time          `bson:"timestamp" json:"timestamp"`
}

func (p *Payment) GetID() primitive.ObjectID   { return p.ID }
func (p *Payment) SetID(id primitive.ObjectID) { p.ID = id }

// PaymentRequest is the body of POST /payments
type PaymentRequest struct {
	Email         string  `json:"email" binding:"required,email"`
	Date          string  `json:"date" binding:"required,max=40"`
	Amount        float64 `json:"amount" binding:"gte=0"`
	TransactionID string  `json:"transactionId" binding:"max=255"`
	CouponCode    string  `json:"couponCode" binding:"max=40"`
	ApartmentNo   int     `json:"apartmentNo" binding:"gte=0"`
}

func (r *PaymentRequest) ToPayment() *Payment {
	return &Payment{
		Email:         r.Email,
		Date:          r.Date,
		Amount:        r.Amount,
		TransactionID: r.TransactionID,
		CouponCode:    r.CouponCode,
		ApartmentNo:   r.ApartmentNo,
	}
}

// PaymentInfo is a staged, not yet finalized payment
type PaymentInfo struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email       string             `bson:"email" json:"email"`
	Date        string             `bson:"date" json:"date"`
	Rent        float64            `bson:"rent" json:"rent"`
	ApartmentNo int                `bson:"apartmentNo" json:"apartmentNo"`
	FloorNo     int                `bson:"floorNo" json:"floorNo"`
	BlockName   string             `bson:"blockName" json:"blockName"`
	Discount    float64            `bson:"discount" json:"discount"`
	Timestamp   time.Time          `bson:"timestamp" json:"timestamp"`
}

func (p *PaymentInfo) GetID() primitive.ObjectID   { return p.ID }
func (p *PaymentInfo) SetID(id primitive.ObjectID) { p.ID = id }

// PaymentInfoRequest is the body of POST /payments-info
type PaymentInfoRequest struct {
	Email       string  `json:"email" binding:"required,email"`
	Date        string  `json:"date" binding:"max=40"`
	Rent        float64 `json:"rent" binding:"gte=0"`
	ApartmentNo int     `json:"apartmentNo" binding:"gte=0"`
	FloorNo     int     `json:"floorNo" binding:"gte=0"`
	BlockName   string  `json:"blockName" binding:"max=50"`
	Discount    float64 `json:"discount" binding:"gte=0,lte=100"`
}

func (r *PaymentInfoRequest) ToPaymentInfo() *PaymentInfo {
	return &PaymentInfo{
		Email:       r.Email,
		Date:        r.Date,
		Rent:        r.Rent,
		ApartmentNo: r.ApartmentNo,
		FloorNo:     r.FloorNo,
		BlockName:   r.BlockName,
		Discount:    r.Discount,
	}
}

// PaymentQuery is the query string of GET /payments/:email
type PaymentQuery struct {
	Month string `form:"month" binding:"max=40"`
}

// PaymentIntentRequest is the body of POST /create-payment-intent
type PaymentIntentRequest struct {
	Price *float64 `json:"price" binding:"required,gt=0"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// FinalizeResult reports the stored payment and how much staged info was cleared
type FinalizeResult struct {
	Payment     InsertResult `json:"payment"`
	InfoCleared int64        `json:"infoCleared"`
}
