package transport

type CartItemRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  uint `json:"quantity"`
}

type AddCartItemsRequest struct {
	ItemsList []CartItemRequest `json:"items_list"`
}

type AddItemResult struct {
	ProductID uint   `json:"product_id"`
	Success   bool   `json:"success"`
	Message   string `json:"message"`
}

type RemoveCartItemsRequest struct {
	ItemsList []uint `json:"items_list"`
	DeleteAll bool   `json:"delete_all"`
}

type UpdateCartItemRequest struct {
	Quantity uint `json:"quantity"`
}

type CheckoutResponse struct {
	TrackID int64  `json:"track_id"`
	Date    string `json:"date"`
	Time    string `json:"time"`
}

type OrderResponse struct {
	ID        uint   `json:"id"`
	TrackID   int64  `json:"track_id"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
