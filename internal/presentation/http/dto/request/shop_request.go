package request

// CreateShopRequest represents a shop creation request
type CreateShopRequest struct {
	Name    string  `json:"name" binding:"required,min=2,max=255"`
	Slug    string  `json:"slug" binding:"omitempty,min=2,max=100"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
}
