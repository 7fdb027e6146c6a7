package request

// CategoryFilterRequest represents category listing parameters
type CategoryFilterRequest struct {
	Search     string `form:"search"`
	Metal      string `form:"metal"`
	Type       string `form:"type"`
	ActiveOnly bool   `form:"active_only"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}

// SetCategoryActiveRequest toggles calculator visibility of a category
type SetCategoryActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}
