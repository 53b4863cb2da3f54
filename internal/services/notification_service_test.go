package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angeroddy/sceno-app-sub001/internal/models"
)

func comedien(nom, mail string) models.Comedien {
	return models.Comedien{
		BaseModel: models.BaseModel{ID: uuid.NewString()},
		Nom:       nom,
		Email:     mail,
	}
}

func opportuniteValidee(annonceur *models.Annonceur) *models.Opportunite {
	return &models.Opportunite{
		BaseModel:     models.BaseModel{ID: uuid.NewString()},
		AnnonceurID:   annonceur.ID,
		Annonceur:     annonceur,
		Titre:         "Tournage publicitaire",
		Type:          "tournage",
		Modele:        models.ModelePreVente,
		Statut:        models.StatutValidee,
		DateEvenement: time.Now().Add(45 * 24 * time.Hour),
		PrixBase:      120,
	}
}

func newNotificationFixture(candidats []models.Comedien, bloques map[string][]string) (*NotificationService, *fakeSender, *fakeJournalEnvois) {
	sender := &fakeSender{failFor: map[string]bool{}}
	journal := &fakeJournalEnvois{}
	svc := NewNotificationService(
		&fakeComedienLookup{parType: map[string][]models.Comedien{"tournage": candidats}},
		&fakeBlocageLookup{parAnnonceur: bloques},
		newFakeAnnonceurStore(),
		journal,
		sender,
		4,
		"https://sceno.app",
	)
	return svc, sender, journal
}

func TestNotifierValidation_EnvoieAuxCandidats(t *testing.T) {
	t.Parallel()

	annonceur := &models.Annonceur{
		BaseModel:       models.BaseModel{ID: uuid.NewString()},
		NomOrganisation: "Prod & Co",
	}
	alice := comedien("Alice", "alice@example.com")
	bruno := comedien("Bruno", "bruno@example.com")
	o := opportuniteValidee(annonceur)

	svc, sender, journal := newNotificationFixture([]models.Comedien{alice, bruno}, nil)

	report, err := svc.NotifierValidation(context.Background(), o)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Candidats)
	assert.Equal(t, 0, report.Bloques)
	assert.Equal(t, 2, report.Envoyes)
	assert.Equal(t, 0, report.Echecs)
	assert.ElementsMatch(t, []string{"alice@example.com", "bruno@example.com"}, sender.destinataires())

	require.Len(t, journal.rows, 2, "one outcome row per recipient")
	for _, row := range journal.rows {
		assert.Equal(t, o.ID, row.OpportuniteID)
		assert.Equal(t, models.EnvoiReussi, row.Statut)
		assert.Equal(t, "[Pré-vente] Tournage publicitaire", row.Sujet)
	}
}

func TestNotifierValidation_ExclutLesBloques(t *testing.T) {
	t.Parallel()

	annonceur := &models.Annonceur{
		BaseModel:       models.BaseModel{ID: uuid.NewString()},
		NomOrganisation: "Prod & Co",
	}
	alice := comedien("Alice", "alice@example.com")
	bruno := comedien("Bruno", "bruno@example.com")
	o := opportuniteValidee(annonceur)

	// Alice blocked this annonceur; Bruno did not.
	svc, sender, journal := newNotificationFixture(
		[]models.Comedien{alice, bruno},
		map[string][]string{annonceur.ID: {alice.ID}},
	)

	report, err := svc.NotifierValidation(context.Background(), o)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Candidats)
	assert.Equal(t, 1, report.Bloques)
	assert.Equal(t, 1, report.Envoyes)
	assert.Equal(t, []string{"bruno@example.com"}, sender.destinataires())

	require.Len(t, journal.rows, 1, "blocked recipients leave no outcome row")
	assert.Equal(t, bruno.ID, journal.rows[0].ComedienID)
}

func TestNotifierValidation_BlocageNeVautQuePourSonAnnonceur(t *testing.T) {
	t.Parallel()

	autreAnnonceur := &models.Annonceur{
		BaseModel:       models.BaseModel{ID: uuid.NewString()},
		NomOrganisation: "Autre Prod",
	}
	alice := comedien("Alice", "alice@example.com")
	o := opportuniteValidee(autreAnnonceur)

	// Alice blocked somebody else entirely.
	svc, sender, _ := newNotificationFixture(
		[]models.Comedien{alice},
		map[string][]string{uuid.NewString(): {alice.ID}},
	)

	report, err := svc.NotifierValidation(context.Background(), o)
	require.NoError(t, err)

	assert.Equal(t, 0, report.Bloques)
	assert.Equal(t, []string{"alice@example.com"}, sender.destinataires())
}

func TestNotifierValidation_EchecIndividuelNInterromptPas(t *testing.T) {
	t.Parallel()

	annonceur := &models.Annonceur{
		BaseModel:       models.BaseModel{ID: uuid.NewString()},
		NomOrganisation: "Prod & Co",
	}
	alice := comedien("Alice", "alice@example.com")
	bruno := comedien("Bruno", "bruno@example.com")
	o := opportuniteValidee(annonceur)

	svc, sender, journal := newNotificationFixture([]models.Comedien{alice, bruno}, nil)
	sender.failFor["alice@example.com"] = true

	report, err := svc.NotifierValidation(context.Background(), o)
	require.NoError(t, err, "per-recipient failures never escalate")

	assert.Equal(t, 1, report.Envoyes)
	assert.Equal(t, 1, report.Echecs)
	assert.Equal(t, []string{"bruno@example.com"}, sender.destinataires())

	require.Len(t, journal.rows, 2, "the failure still gets its outcome row")
	statuts := map[string]models.StatutEnvoi{}
	for _, row := range journal.rows {
		statuts[row.Destinataire] = row.Statut
	}
	assert.Equal(t, models.EnvoiEchec, statuts["alice@example.com"])
	assert.Equal(t, models.EnvoiReussi, statuts["bruno@example.com"])
}

func TestNotifierValidation_SujetDerniereMinute(t *testing.T) {
	t.Parallel()

	annonceur := &models.Annonceur{
		BaseModel:       models.BaseModel{ID: uuid.NewString()},
		NomOrganisation: "Prod & Co",
	}
	o := opportuniteValidee(annonceur)
	o.Modele = models.ModeleDerniereMinute

	svc, _, journal := newNotificationFixture([]models.Comedien{comedien("Alice", "alice@example.com")}, nil)

	_, err := svc.NotifierValidation(context.Background(), o)
	require.NoError(t, err)

	require.Len(t, journal.rows, 1)
	assert.Equal(t, "[Dernière minute] Tournage publicitaire", journal.rows[0].Sujet)
}
