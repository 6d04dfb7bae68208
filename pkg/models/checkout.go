package models

type CheckoutItem struct {
	ProductID string  `json:"product_id"`
	Quantity  int64   `json:"quantity"`
	Price     float64 `json:"price"`
}

type CheckoutRequest struct {
	UserID string         `json:"user_id"`
	Items  []CheckoutItem `json:"items"`
}

type CheckoutResponse struct {
	OrderID int64  `json:"order_id"`
	Message string `json:"message"`
}
