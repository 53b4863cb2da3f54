package email

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderNouvelleOpportunite(t *testing.T) {
	t.Parallel()

	body, err := RenderNouvelleOpportunite(NouvelleOpportuniteData{
		NomComedien:   "Alice",
		Titre:         "Tournage publicitaire",
		NomAnnonceur:  "Prod & Co",
		DateEvenement: time.Date(2026, 4, 15, 19, 0, 0, 0, time.UTC),
		Prix:          120,
		ModeleLabel:   "Pré-vente",
		LienDetail:    "https://sceno.app/opportunites/opp-1",
	})
	require.NoError(t, err)

	assert.Contains(t, body, "Bonjour Alice")
	assert.Contains(t, body, "Tournage publicitaire")
	assert.Contains(t, body, "Pré-vente")
	assert.Contains(t, body, "15/04/2026")
	assert.Contains(t, body, "120.00")
	assert.Contains(t, body, `href="https://sceno.app/opportunites/opp-1"`)
	// html/template escapes the ampersand in the organisation name.
	assert.Contains(t, body, "Prod &amp; Co")
}

func TestRenderNouvelleOpportunite_SansLien(t *testing.T) {
	t.Parallel()

	body, err := RenderNouvelleOpportunite(NouvelleOpportuniteData{
		NomComedien: "Bruno",
		Titre:       "Lecture publique",
		ModeleLabel: "Dernière minute",
	})
	require.NoError(t, err)
	assert.NotContains(t, body, "<a href")
}
