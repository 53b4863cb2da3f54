package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/angeroddy/sceno-app-sub001/internal/email"
	"github.com/angeroddy/sceno-app-sub001/internal/models"
)

// In-memory fakes for the store interfaces, shared by the service tests.

type fakeOpportuniteStore struct {
	mu        sync.Mutex
	byID      map[string]*models.Opportunite
	updateErr error
	updates   []models.StatutOpportunite
}

func newFakeOpportuniteStore(opps ...*models.Opportunite) *fakeOpportuniteStore {
	byID := make(map[string]*models.Opportunite)
	for _, o := range opps {
		byID[o.ID] = o
	}
	return &fakeOpportuniteStore{byID: byID}
}

func (f *fakeOpportuniteStore) Create(_ context.Context, o *models.Opportunite) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[o.ID] = o
	return nil
}

func (f *fakeOpportuniteStore) FindByID(_ context.Context, id string) (*models.Opportunite, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copie := *o
	return &copie, nil
}

func (f *fakeOpportuniteStore) ListByStatut(_ context.Context, statut models.StatutOpportunite) ([]models.Opportunite, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var list []models.Opportunite
	for _, o := range f.byID {
		if o.Statut == statut {
			list = append(list, *o)
		}
	}
	return list, nil
}

func (f *fakeOpportuniteStore) ListByAnnonceur(_ context.Context, annonceurID string) ([]models.Opportunite, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var list []models.Opportunite
	for _, o := range f.byID {
		if o.AnnonceurID == annonceurID {
			list = append(list, *o)
		}
	}
	return list, nil
}

func (f *fakeOpportuniteStore) UpdateStatut(_ context.Context, id string, statut models.StatutOpportunite) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	o, ok := f.byID[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	o.Statut = statut
	f.updates = append(f.updates, statut)
	return nil
}

func (f *fakeOpportuniteStore) DeleteEnAttente(_ context.Context, id, annonceurID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.byID[id]
	if !ok || o.AnnonceurID != annonceurID || o.Statut != models.StatutEnAttente {
		return false, nil
	}
	delete(f.byID, id)
	return true, nil
}

func (f *fakeOpportuniteStore) DecrementerPlaces(_ context.Context, id string) (int, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.byID[id]
	if !ok || o.Statut != models.StatutValidee || o.PlacesRestantes <= 0 {
		return 0, false, nil
	}
	o.PlacesRestantes--
	return o.PlacesRestantes, true, nil
}

type fakeAnnonceurStore struct {
	byID    map[string]*models.Annonceur
	setErr  error
	updates []bool
}

func newFakeAnnonceurStore(annonceurs ...*models.Annonceur) *fakeAnnonceurStore {
	byID := make(map[string]*models.Annonceur)
	for _, a := range annonceurs {
		byID[a.ID] = a
	}
	return &fakeAnnonceurStore{byID: byID}
}

func (f *fakeAnnonceurStore) FindByID(_ context.Context, id string) (*models.Annonceur, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copie := *a
	return &copie, nil
}

func (f *fakeAnnonceurStore) SetIdentiteVerifiee(_ context.Context, id string, verifiee bool) error {
	if f.setErr != nil {
		return f.setErr
	}
	a, ok := f.byID[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	a.IdentiteVerifiee = verifiee
	f.updates = append(f.updates, verifiee)
	return nil
}

func (f *fakeAnnonceurStore) ListNonVerifies(_ context.Context) ([]models.Annonceur, error) {
	var list []models.Annonceur
	for _, a := range f.byID {
		if !a.IdentiteVerifiee {
			list = append(list, *a)
		}
	}
	return list, nil
}

type fakeJournalModerations struct {
	rows []models.Moderation
	err  error
}

func (f *fakeJournalModerations) Create(_ context.Context, m *models.Moderation) error {
	if f.err != nil {
		return f.err
	}
	f.rows = append(f.rows, *m)
	return nil
}

type fakeNotifieur struct {
	appele []string
	report *FanoutReport
	err    error
}

func (f *fakeNotifieur) NotifierValidation(_ context.Context, o *models.Opportunite) (*FanoutReport, error) {
	f.appele = append(f.appele, o.ID)
	if f.err != nil {
		return nil, f.err
	}
	if f.report != nil {
		return f.report, nil
	}
	return &FanoutReport{}, nil
}

type fakeComedienLookup struct {
	parType map[string][]models.Comedien
}

func (f *fakeComedienLookup) FindByPreference(_ context.Context, t string) ([]models.Comedien, error) {
	return f.parType[t], nil
}

type fakeBlocageLookup struct {
	parAnnonceur map[string][]string
}

func (f *fakeBlocageLookup) ListComediensBloques(_ context.Context, annonceurID string) ([]string, error) {
	return f.parAnnonceur[annonceurID], nil
}

type fakeJournalEnvois struct {
	mu   sync.Mutex
	rows []models.NotificationEmail
}

func (f *fakeJournalEnvois) Create(_ context.Context, n *models.NotificationEmail) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows = append(f.rows, *n)
	return nil
}

type fakeSender struct {
	mu      sync.Mutex
	sent    []*email.Message
	failFor map[string]bool
}

func (f *fakeSender) Send(msg *email.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(msg.To) > 0 && f.failFor[msg.To[0]] {
		return errors.New("smtp refused")
	}
	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeSender) destinataires() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, m := range f.sent {
		out = append(out, m.To...)
	}
	return out
}

type fakeSweepStore struct {
	preventes []string
	expirees  []string
	calls     int
	txCalls   int
	err       error
}

func (f *fakeSweepStore) RetirerPreventes(_ context.Context, _, _ time.Time, _ bool) ([]string, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := f.preventes
	f.preventes = nil // second run finds nothing
	return out, nil
}

func (f *fakeSweepStore) ExpirerPassees(_ context.Context, _ time.Time) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := f.expirees
	f.expirees = nil
	return out, nil
}

func (f *fakeSweepStore) SweepEnTransaction(ctx context.Context, debut, fin time.Time, inclusive bool) ([]string, []string, error) {
	f.txCalls++
	p, err := f.RetirerPreventes(ctx, debut, fin, inclusive)
	if err != nil {
		return nil, nil, err
	}
	e, err := f.ExpirerPassees(ctx, debut)
	return p, e, err
}

type fakeAchatStore struct {
	rows      []models.Achat
	createErr error
}

func (f *fakeAchatStore) Create(_ context.Context, a *models.Achat) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.rows = append(f.rows, *a)
	return nil
}

func (f *fakeAchatStore) ListByComedien(_ context.Context, comedienID string) ([]models.Achat, error) {
	var list []models.Achat
	for _, a := range f.rows {
		if a.ComedienID == comedienID {
			list = append(list, a)
		}
	}
	return list, nil
}
