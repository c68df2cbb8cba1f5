package seed

import (
	"time"

	"github.com/dalemusser/clubhub/internal/domain/models"
	"github.com/google/uuid"
)

func intPtr(n int) *int { return &n }

// DefaultEvents returns the baseline event set inserted into an empty
// evenements collection. Ids and creation timestamps are generated at
// seed time, so repeated seeds of a wiped store produce distinct ids.
func DefaultEvents() []models.Event {
	now := time.Now().UTC().Format(time.RFC3339)
	return []models.Event{
		{
			ID:            uuid.NewString(),
			Titre:         "Entraînement débutants",
			Description:   "Séance spéciale pour les nouveaux membres. Venez découvrir le roller derby dans une ambiance conviviale !",
			Date:          "2025-01-20",
			Heure:         "14:00",
			Lieu:          "Gymnase Municipal - 123 Rue du Sport, Paris",
			TypeEvenement: "entraînement",
			PlacesMax:     intPtr(15),
			Prix:          "Gratuit pour les nouveaux",
			DateCreation:  now,
			Statut:        "actif",
		},
		{
			ID:            uuid.NewString(),
			Titre:         "Match amical vs. Les Fauves",
			Description:   "Match amical contre l'équipe des Fauves de Lyon. Venez encourager La Harde !",
			Date:          "2025-01-25",
			Heure:         "19:00",
			Lieu:          "Gymnase Municipal - 123 Rue du Sport, Paris",
			TypeEvenement: "match",
			PlacesMax:     intPtr(50),
			Prix:          "5€ entrée",
			DateCreation:  now,
			Statut:        "actif",
		},
		{
			ID:            uuid.NewString(),
			Titre:         "Tournoi Régional d'Hiver",
			Description:   "Participation au tournoi régional. L'occasion de voir du roller derby de haut niveau !",
			Date:          "2025-02-15",
			Heure:         "09:00",
			Lieu:          "Palais des Sports - Créteil",
			TypeEvenement: "tournoi",
			Prix:          "10€ - transport inclus",
			DateCreation:  now,
			Statut:        "actif",
		},
		{
			ID:            uuid.NewString(),
			Titre:         "Soirée conviviale équipe",
			Description:   "Soirée détente avec toute l'équipe. Pizzas, jeux et bonne humeur au programme !",
			Date:          "2025-02-08",
			Heure:         "20:00",
			Lieu:          "Local du club",
			TypeEvenement: "événement_social",
			PlacesMax:     intPtr(30),
			Prix:          "15€ repas inclus",
			DateCreation:  now,
			Statut:        "actif",
		},
	}
}

// DefaultPhotos returns the baseline photo set inserted into an empty
// galerie collection.
func DefaultPhotos() []models.GalleryPhoto {
	now := time.Now().UTC().Format(time.RFC3339)
	return []models.GalleryPhoto{
		{
			ID:          uuid.NewString(),
			Titre:       "Entraînement en équipe",
			Description: "Séance d'entraînement intensive avec toute l'équipe de La Harde",
			URLImage:    "https://images.unsplash.com/photo-1568557412756-7d219873dd11",
			Categorie:   "entraînement",
			DatePrise:   "2024-12-15",
			DateAjout:   now,
			Statut:      "actif",
		},
		{
			ID:          uuid.NewString(),
			Titre:       "Préparation physique",
			Description: "Échauffement avant un match important",
			URLImage:    "https://images.unsplash.com/photo-1526676537331-7747bf8278fc",
			Categorie:   "entraînement",
			DatePrise:   "2024-12-10",
			DateAjout:   now,
			Statut:      "actif",
		},
		{
			ID:          uuid.NewString(),
			Titre:       "Match contre les Tigres",
			Description: "Action de jeu lors du match contre l'équipe des Tigres",
			URLImage:    "https://images.unsplash.com/photo-1559302995-ab792ee16ce8",
			Categorie:   "match",
			DatePrise:   "2024-11-28",
			DateAjout:   now,
			Statut:      "actif",
		},
		{
			ID:          uuid.NewString(),
			Titre:       "Esprit d'équipe",
			Description: "La cohésion de l'équipe La Harde en action",
			URLImage:    "https://images.unsplash.com/photo-1573301724534-c9ad93472d13",
			Categorie:   "équipe",
			DatePrise:   "2024-12-01",
			DateAjout:   now,
			Statut:      "actif",
		},
		{
			ID:          uuid.NewString(),
			Titre:       "Concentration avant match",
			Description: "Les joueuses se préparent mentalement avant le coup d'envoi",
			URLImage:    "https://images.unsplash.com/photo-1603124076947-7b6412d8958e",
			Categorie:   "équipe",
			DatePrise:   "2024-11-20",
			DateAjout:   now,
			Statut:      "actif",
		},
	}
}
