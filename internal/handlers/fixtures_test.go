package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/angeroddy/sceno-app-sub001/internal/identity"
	"github.com/angeroddy/sceno-app-sub001/internal/middleware"
	"github.com/angeroddy/sceno-app-sub001/internal/models"
	"github.com/angeroddy/sceno-app-sub001/internal/services"
	"github.com/angeroddy/sceno-app-sub001/internal/validator"
)

const testSessionSecret = "test-session-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

// --- in-memory stores ---

type fakeOpportunites struct {
	byID      map[string]*models.Opportunite
	updateErr error
}

func newFakeOpportunites(opps ...*models.Opportunite) *fakeOpportunites {
	byID := make(map[string]*models.Opportunite)
	for _, o := range opps {
		byID[o.ID] = o
	}
	return &fakeOpportunites{byID: byID}
}

func (f *fakeOpportunites) Create(_ context.Context, o *models.Opportunite) error {
	f.byID[o.ID] = o
	return nil
}

func (f *fakeOpportunites) FindByID(_ context.Context, id string) (*models.Opportunite, error) {
	o, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copie := *o
	return &copie, nil
}

func (f *fakeOpportunites) ListByStatut(_ context.Context, statut models.StatutOpportunite) ([]models.Opportunite, error) {
	var list []models.Opportunite
	for _, o := range f.byID {
		if o.Statut == statut {
			list = append(list, *o)
		}
	}
	return list, nil
}

func (f *fakeOpportunites) ListByAnnonceur(_ context.Context, annonceurID string) ([]models.Opportunite, error) {
	var list []models.Opportunite
	for _, o := range f.byID {
		if o.AnnonceurID == annonceurID {
			list = append(list, *o)
		}
	}
	return list, nil
}

func (f *fakeOpportunites) UpdateStatut(_ context.Context, id string, statut models.StatutOpportunite) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	o, ok := f.byID[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	o.Statut = statut
	return nil
}

func (f *fakeOpportunites) DeleteEnAttente(_ context.Context, id, annonceurID string) (bool, error) {
	o, ok := f.byID[id]
	if !ok || o.AnnonceurID != annonceurID || o.Statut != models.StatutEnAttente {
		return false, nil
	}
	delete(f.byID, id)
	return true, nil
}

type fakeAnnonceurs struct {
	byID map[string]*models.Annonceur
}

func (f *fakeAnnonceurs) FindByID(_ context.Context, id string) (*models.Annonceur, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copie := *a
	return &copie, nil
}

func (f *fakeAnnonceurs) SetIdentiteVerifiee(_ context.Context, id string, verifiee bool) error {
	a, ok := f.byID[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	a.IdentiteVerifiee = verifiee
	return nil
}

func (f *fakeAnnonceurs) ListNonVerifies(_ context.Context) ([]models.Annonceur, error) {
	var list []models.Annonceur
	for _, a := range f.byID {
		if !a.IdentiteVerifiee {
			list = append(list, *a)
		}
	}
	return list, nil
}

type journalModerations struct {
	rows *[]models.Moderation
}

func (j journalModerations) Create(_ context.Context, m *models.Moderation) error {
	*j.rows = append(*j.rows, *m)
	return nil
}

type noopNotifieur struct{ appele int }

func (n *noopNotifieur) NotifierValidation(_ context.Context, _ *models.Opportunite) (*services.FanoutReport, error) {
	n.appele++
	return &services.FanoutReport{}, nil
}

// --- principal lookups ---

type comediensBySujet map[string]*models.Comedien

func (m comediensBySujet) FindBySujet(_ context.Context, sujetID string) (*models.Comedien, error) {
	if c, ok := m[sujetID]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type annonceursBySujet map[string]*models.Annonceur

func (m annonceursBySujet) FindBySujet(_ context.Context, sujetID string) (*models.Annonceur, error) {
	if a, ok := m[sujetID]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type adminsBySujet map[string]*models.Admin

func (m adminsBySujet) FindBySujet(_ context.Context, sujetID string) (*models.Admin, error) {
	if a, ok := m[sujetID]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// --- router assembly ---

type adminFixture struct {
	router     *gin.Engine
	verifier   *identity.Verifier
	opps       *fakeOpportunites
	annonceurs *fakeAnnonceurs
	journal    []models.Moderation
	notifieur  *noopNotifieur
	adminSujet string
	adminID    string
	autreSujet string
}

// newAdminFixture mounts the admin moderation routes exactly as the route
// setup does, over in-memory stores. adminSujet resolves to an admin
// profile, autreSujet to a comedien only.
func newAdminFixture(opps ...*models.Opportunite) *adminFixture {
	f := &adminFixture{
		opps:       newFakeOpportunites(opps...),
		annonceurs: &fakeAnnonceurs{byID: map[string]*models.Annonceur{}},
		notifieur:  &noopNotifieur{},
		adminSujet: "sujet-admin",
		adminID:    "admin-1",
		autreSujet: "sujet-comedien",
	}

	f.verifier = identity.NewVerifier(testSessionSecret, time.Hour, "sceno_session")

	principal := services.NewPrincipalService(
		comediensBySujet{f.autreSujet: {BaseModel: models.BaseModel{ID: "comedien-1"}, SujetID: f.autreSujet}},
		annonceursBySujet{},
		adminsBySujet{f.adminSujet: {BaseModel: models.BaseModel{ID: f.adminID}, SujetID: f.adminSujet}},
	)

	moderation := services.NewModerationService(f.opps, f.annonceurs, journalModerations{rows: &f.journal}, f.notifieur)
	opportunites := services.NewOpportuniteService(f.opps)

	base := NewBaseHandler(validator.New())
	h := NewModerationHandler(base, moderation, opportunites)

	router := gin.New()
	admin := router.Group("/api/v1/admin")
	admin.Use(
		middleware.AuthMiddleware(f.verifier),
		middleware.ResolvePrincipal(principal),
		middleware.RequireAdmin(),
	)
	admin.GET("/moderation/opportunites", h.ListEnAttente)
	admin.POST("/moderation/opportunites", h.DecideOpportunite)
	admin.GET("/moderation/annonceurs", h.ListAnnonceursNonVerifies)
	admin.POST("/moderation/annonceurs", h.DecideAnnonceur)
	admin.PATCH("/opportunites/:opportuniteId/statut", h.SetStatut)

	f.router = router
	return f
}

func (f *adminFixture) tokenFor(sujet string) string {
	token, err := f.verifier.Issue(sujet)
	if err != nil {
		panic(err)
	}
	return token
}
