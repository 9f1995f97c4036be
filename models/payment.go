package models

// PaymentIntentRequest carries the price of the booking being paid for.
type PaymentIntentRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

// PaymentIntentResponse hands the client secret back to the browser checkout.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
