package contact

import (
	"context"
	"net/http"
	"strings"

	contactstore "github.com/dalemusser/clubhub/internal/app/store/contacts"
	"github.com/dalemusser/clubhub/internal/app/system/apijson"
	"github.com/dalemusser/clubhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/clubhub/internal/app/system/inputval"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	Store *contactstore.Store
	Log   *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store: contactstore.New(db),
		Log:   logger,
	}
}

type createRequest struct {
	Nom     string `json:"nom"`
	Email   string `json:"email"`
	Sujet   string `json:"sujet"`
	Message string `json:"message"`
}

func (req createRequest) validate() map[string]string {
	fields := map[string]string{}
	if strings.TrimSpace(req.Nom) == "" {
		fields["nom"] = "champ requis"
	}
	if strings.TrimSpace(req.Email) == "" {
		fields["email"] = "champ requis"
	} else if !inputval.IsValidEmail(req.Email) {
		fields["email"] = "format d'email invalide"
	}
	if strings.TrimSpace(req.Sujet) == "" {
		fields["sujet"] = "champ requis"
	}
	if strings.TrimSpace(req.Message) == "" {
		fields["message"] = "champ requis"
	}
	return fields
}

// ServeCreate handles POST /api/contact.
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

	created, err := h.Store.Create(ctx, models.ContactMessage{
		Nom:     req.Nom,
		Email:   req.Email,
		Sujet:   htmlsanitize.Clean(req.Sujet),
		Message: htmlsanitize.Clean(req.Message),
	})
	if err != nil {
		h.Log.Error("contact insert failed", zap.Error(err))
		apijson.Internal(w, "Erreur interne du serveur")
		return
	}

	h.Log.Info("new contact message", zap.String("email", created.Email))
	apijson.Write(w, http.StatusOK, apijson.Confirmation{
		Success: true,
		Message: "Message envoyé avec succès! Nous vous répondrons bientôt.",
	})
}
