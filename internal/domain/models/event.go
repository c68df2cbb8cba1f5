// internal/domain/models/event.go
package models

// Event is a club event (training session, match, tournament, social).
//
// Date is always a zero-padded ISO "YYYY-MM-DD" string. Upcoming-event
// filtering and ordering rely on lexicographic comparison of this field
// equaling chronological comparison, so the format must never vary.
type Event struct {
	ID            string `bson:"id" json:"id"`
	Titre         string `bson:"titre" json:"titre"`
	Description   string `bson:"description" json:"description"`
	Date          string `bson:"date" json:"date"`
	Heure         string `bson:"heure" json:"heure"`
	Lieu          string `bson:"lieu" json:"lieu"`
	TypeEvenement string `bson:"type_evenement" json:"type_evenement"`
	PlacesMax     *int   `bson:"places_max,omitempty" json:"places_max,omitempty"`
	Prix          string `bson:"prix,omitempty" json:"prix,omitempty"`
	DateCreation  string `bson:"date_creation" json:"date_creation"`
	Statut        string `bson:"statut" json:"statut"`
}
