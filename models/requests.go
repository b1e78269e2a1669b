package models

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SendMessageRequest struct {
	Content string `json:"content"`
}

type IncomingMessageRequest struct {
	PhoneNumber string `json:"phone_number"`
	Content     string `json:"content"`
}

type AddKnowledgeRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
}
