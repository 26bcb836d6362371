package request

type CreateStoreRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Location    string `json:"location" binding:"required,max=200"`
	Description string `json:"description" binding:"required,max=1000"`
}

type UpdateStoreRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Location    string `json:"location" binding:"required,max=200"`
	Description string `json:"description" binding:"required,max=1000"`
}
