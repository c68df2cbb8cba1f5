// internal/domain/models/clubstats.go
package models

// ClubStats is the point-in-time snapshot served by /api/stats. It is
// assembled from independent counts and never persisted.
//
// MembresActifs equals TotalInscriptions: there is no membership
// lifecycle yet, so "active members" is a stand-in until one exists.
type ClubStats struct {
	TotalInscriptions int64 `json:"total_inscriptions"`
	TotalContacts     int64 `json:"total_contacts"`
	TotalEvenements   int64 `json:"total_evenements"`
	TotalPhotos       int64 `json:"total_photos"`
	EvenementsAVenir  int64 `json:"evenements_a_venir"`
	MembresActifs     int64 `json:"membres_actifs"`
}
