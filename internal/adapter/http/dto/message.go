package dto

type MessageResponse struct {
	Message string `json:"message"`
}
