// internal/domain/models/inscription.go
package models

// Inscription is a member registration request submitted from the public
// site. The id is generated by this service (UUID v4) and is distinct from
// the Mongo _id; all timestamps are stored as UTC strings so documents
// round-trip to JSON unchanged.
type Inscription struct {
	ID               string `bson:"id" json:"id"`
	Prenom           string `bson:"prenom" json:"prenom"`
	Nom              string `bson:"nom" json:"nom"`
	Email            string `bson:"email" json:"email"`
	Telephone        string `bson:"telephone" json:"telephone"`
	Age              int    `bson:"age" json:"age"`
	NiveauExperience string `bson:"niveau_experience" json:"niveau_experience"`
	Message          string `bson:"message,omitempty" json:"message,omitempty"`
	DateInscription  string `bson:"date_inscription" json:"date_inscription"`
	Statut           string `bson:"statut" json:"statut"`
}
