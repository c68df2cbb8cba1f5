// internal/domain/models/eventregistration.go
package models

// EventRegistration records a signup for an event. NomEvenement is free
// text matched against nothing; there is deliberately no foreign key into
// the evenements collection.
type EventRegistration struct {
	ID              string `bson:"id" json:"id"`
	Nom             string `bson:"nom" json:"nom"`
	Email           string `bson:"email" json:"email"`
	Telephone       string `bson:"telephone" json:"telephone"`
	NomEvenement    string `bson:"nom_evenement" json:"nom_evenement"`
	DateInscription string `bson:"date_inscription" json:"date_inscription"`
	Statut          string `bson:"statut" json:"statut"`
}
