package item

type CreateItemRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Description *string `json:"description" binding:"omitempty,max=255"`
}

// UpdateItemRequest is a partial patch: nil fields are left untouched.
type UpdateItemRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=255"`
}

type ItemResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	OwnerID     string  `json:"owner_id"`
	CreatedAt   string  `json:"created_at"`
}

type ItemsResponse struct {
	Data  []ItemResponse `json:"data"`
	Count int64          `json:"count"`
}
