package models

type ContactMessage struct {
	BaseModel

	Name    string
	Email   string
	Message string
}
