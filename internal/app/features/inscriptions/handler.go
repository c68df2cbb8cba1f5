package inscriptions

import (
	"context"
	"net/http"
	"strings"

	inscriptionstore "github.com/dalemusser/clubhub/internal/app/store/inscriptions"
	"github.com/dalemusser/clubhub/internal/app/system/apijson"
	"github.com/dalemusser/clubhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/clubhub/internal/app/system/inputval"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	Store *inscriptionstore.Store
	Log   *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store: inscriptionstore.New(db),
		Log:   logger,
	}
}

// createRequest is the POST /api/inscription body. Age is a pointer so a
// missing field is distinguishable from zero.
type createRequest struct {
	Prenom           string `json:"prenom"`
	Nom              string `json:"nom"`
	Email            string `json:"email"`
	Telephone        string `json:"telephone"`
	Age              *int   `json:"age"`
	NiveauExperience string `json:"niveau_experience"`
	Message          string `json:"message"`
}

func (req createRequest) validate() map[string]string {
	fields := map[string]string{}
	if strings.TrimSpace(req.Prenom) == "" {
		fields["prenom"] = "champ requis"
	}
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
	if req.Age == nil {
		fields["age"] = "champ requis"
	}
	if strings.TrimSpace(req.NiveauExperience) == "" {
		fields["niveau_experience"] = "champ requis"
	}
	return fields
}

// ServeCreate handles POST /api/inscription: validate, persist with a
// generated id and "en_attente" status, confirm with the new id.
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

	created, err := h.Store.Create(ctx, models.Inscription{
		Prenom:           req.Prenom,
		Nom:              req.Nom,
		Email:            req.Email,
		Telephone:        req.Telephone,
		Age:              *req.Age,
		NiveauExperience: req.NiveauExperience,
		Message:          htmlsanitize.Clean(req.Message),
	})
	if err != nil {
		h.Log.Error("registration insert failed", zap.Error(err))
		apijson.Internal(w, "Erreur interne du serveur")
		return
	}

	h.Log.Info("new registration created", zap.String("email", created.Email))
	apijson.Write(w, http.StatusOK, apijson.Confirmation{
		Success:        true,
		Message:        "Inscription reçue avec succès! Nous vous contactons bientôt.",
		RegistrationID: created.ID,
	})
}

// ServeList handles GET /api/inscriptions.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Store.List(ctx)
	if err != nil {
		h.Log.Error("registrations fetch failed", zap.Error(err))
		apijson.Internal(w, "Erreur lors de la récupération des inscriptions")
		return
	}

	apijson.Write(w, http.StatusOK, map[string][]models.Inscription{"inscriptions": list})
}
