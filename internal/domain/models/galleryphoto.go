// internal/domain/models/galleryphoto.go
package models

// GalleryPhoto is an entry in the club photo gallery. DatePrise (capture
// date) is optional and, when present, an ISO "YYYY-MM-DD" string; the
// gallery lists newest captures first.
type GalleryPhoto struct {
	ID          string `bson:"id" json:"id"`
	Titre       string `bson:"titre" json:"titre"`
	Description string `bson:"description" json:"description"`
	URLImage    string `bson:"url_image" json:"url_image"`
	Categorie   string `bson:"categorie" json:"categorie"`
	DatePrise   string `bson:"date_prise,omitempty" json:"date_prise,omitempty"`
	DateAjout   string `bson:"date_ajout" json:"date_ajout"`
	Statut      string `bson:"statut" json:"statut"`
}
