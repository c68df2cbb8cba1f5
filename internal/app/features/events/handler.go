package events

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	eventregstore "github.com/dalemusser/clubhub/internal/app/store/eventregs"
	eventstore "github.com/dalemusser/clubhub/internal/app/store/events"
	"github.com/dalemusser/clubhub/internal/app/system/apijson"
	"github.com/dalemusser/clubhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/clubhub/internal/app/system/inputval"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	Events *eventstore.Store
	Regs   *eventregstore.Store
	Log    *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Events: eventstore.New(db),
		Regs:   eventregstore.New(db),
		Log:    logger,
	}
}

// isISODate reports whether s is a zero-padded calendar date. Round-trip
// formatting catches inputs like "2025-1-5" that time.Parse alone accepts.
func isISODate(s string) bool {
	t, err := time.Parse(eventstore.DayFormat, s)
	return err == nil && t.Format(eventstore.DayFormat) == s
}

type createRequest struct {
	Titre         string `json:"titre"`
	Description   string `json:"description"`
	Date          string `json:"date"`
	Heure         string `json:"heure"`
	Lieu          string `json:"lieu"`
	TypeEvenement string `json:"type_evenement"`
	PlacesMax     *int   `json:"places_max"`
	Prix          string `json:"prix"`
}

func (req createRequest) validate() map[string]string {
	fields := map[string]string{}
	if strings.TrimSpace(req.Titre) == "" {
		fields["titre"] = "champ requis"
	}
	if strings.TrimSpace(req.Description) == "" {
		fields["description"] = "champ requis"
	}
	if strings.TrimSpace(req.Date) == "" {
		fields["date"] = "champ requis"
	} else if !isISODate(req.Date) {
		fields["date"] = "date invalide (format AAAA-MM-JJ)"
	}
	if strings.TrimSpace(req.Heure) == "" {
		fields["heure"] = "champ requis"
	}
	if strings.TrimSpace(req.Lieu) == "" {
		fields["lieu"] = "champ requis"
	}
	if strings.TrimSpace(req.TypeEvenement) == "" {
		fields["type_evenement"] = "champ requis"
	}
	return fields
}

type registerRequest struct {
	Nom          string `json:"nom"`
	Email        string `json:"email"`
	Telephone    string `json:"telephone"`
	NomEvenement string `json:"nom_evenement"`
}

func (req registerRequest) validate() map[string]string {
	fields := map[string]string{}
	if strings.TrimSpace(req.Nom) == "" {
		fields["nom"] = "champ requis"
	}
	if strings.TrimSpace(req.Email) == "" {
		fields["email"] = "champ requis"
	} else if !inputval.IsValidEmail(req.Email) {
		fields["email"] = "format d'email invalide"
	}
	if strings.TrimSpace(req.Telephone) == "" {
		fields["telephone"] = "champ requis"
	}
	if strings.TrimSpace(req.NomEvenement) == "" {
		fields["nom_evenement"] = "champ requis"
	}
	return fields
}

// ServeList handles GET /api/evenements: events dated today or later,
// ascending by date.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Events.ListUpcoming(ctx, eventstore.Today())
	if err != nil {
		h.Log.Error("events fetch failed", zap.Error(err))
		apijson.Internal(w, "Erreur lors de la récupération des événements")
		return
	}

	apijson.Write(w, http.StatusOK, map[string][]models.Event{"evenements": list})
}

// ServeCreate handles POST /api/evenements.
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := apijson.Decode(w, r, &req); err != nil {
		apijson.BadRequest(w)
		return
	}
	if fields := req.validate(); len(fields) > 0 {
		apijson.Invalid(w, fields)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Events.Create(ctx, models.Event{
		Titre:         req.Titre,
		Description:   htmlsanitize.Clean(req.Description),
		Date:          req.Date,
		Heure:         req.Heure,
		Lieu:          req.Lieu,
		TypeEvenement: req.TypeEvenement,
		PlacesMax:     req.PlacesMax,
		Prix:          req.Prix,
	})
	if err != nil {
		h.Log.Error("event insert failed", zap.Error(err))
		apijson.Internal(w, "Erreur lors de la création de l'événement")
		return
	}

	h.Log.Info("new event created", zap.String("titre", created.Titre), zap.String("date", created.Date))
	apijson.Write(w, http.StatusOK, apijson.Confirmation{
		Success: true,
		Message: "Événement créé avec succès!",
		EventID: created.ID,
	})
}

// ServeRegister handles POST /api/evenement/inscription. The event name is
// recorded as submitted; signups for unknown event names are accepted.
func (h *Handler) ServeRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := apijson.Decode(w, r, &req); err != nil {
		apijson.BadRequest(w)
		return
	}
	if fields := req.validate(); len(fields) > 0 {
		apijson.Invalid(w, fields)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Regs.Create(ctx, models.EventRegistration{
		Nom:          req.Nom,
		Email:        req.Email,
		Telephone:    req.Telephone,
		NomEvenement: req.NomEvenement,
	})
	if err != nil {
		h.Log.Error("event registration insert failed", zap.Error(err))
		apijson.Internal(w, "Erreur interne du serveur")
		return
	}

	h.Log.Info("new event registration",
		zap.String("email", created.Email),
		zap.String("evenement", created.NomEvenement))
	apijson.Write(w, http.StatusOK, apijson.Confirmation{
		Success: true,
		Message: fmt.Sprintf("Inscription à l'événement '%s' confirmée!", created.NomEvenement),
	})
}
