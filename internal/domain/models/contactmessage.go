// internal/domain/models/contactmessage.go
package models

// ContactMessage is a message sent through the public contact form.
type ContactMessage struct {
	ID           string `bson:"id" json:"id"`
	Nom          string `bson:"nom" json:"nom"`
	Email        string `bson:"email" json:"email"`
	Sujet        string `bson:"sujet" json:"sujet"`
	Message      string `bson:"message" json:"message"`
	DateCreation string `bson:"date_creation" json:"date_creation"`
	Statut       string `bson:"statut" json:"statut"`
}
