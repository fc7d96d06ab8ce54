package update_order_status

// UpdateOrderStatusRequest HTTP request model
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// UpdateOrderStatusResponse HTTP response model
type UpdateOrderStatusResponse struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}
