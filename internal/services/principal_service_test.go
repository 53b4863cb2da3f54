package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/angeroddy/sceno-app-sub001/internal/models"
)

type comedienSujetFake struct {
	bySujet map[string]*models.Comedien
	err     error
}

func (f comedienSujetFake) FindBySujet(_ context.Context, sujetID string) (*models.Comedien, error) {
	if f.err != nil {
		return nil, f.err
	}
	if c, ok := f.bySujet[sujetID]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type annonceurSujetFake map[string]*models.Annonceur

func (f annonceurSujetFake) FindBySujet(_ context.Context, sujetID string) (*models.Annonceur, error) {
	if a, ok := f[sujetID]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type adminSujetFake map[string]*models.Admin

func (f adminSujetFake) FindBySujet(_ context.Context, sujetID string) (*models.Admin, error) {
	if a, ok := f[sujetID]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func TestResolve_Priorite(t *testing.T) {
	t.Parallel()

	comedien := &models.Comedien{BaseModel: models.BaseModel{ID: "c-1"}}
	annonceur := &models.Annonceur{BaseModel: models.BaseModel{ID: "a-1"}}
	admin := &models.Admin{BaseModel: models.BaseModel{ID: "adm-1"}}

	svc := NewPrincipalService(
		comedienSujetFake{bySujet: map[string]*models.Comedien{"s-com": comedien, "s-tous": comedien}},
		annonceurSujetFake{"s-ann": annonceur, "s-tous": annonceur},
		adminSujetFake{"s-adm": admin, "s-tous": admin},
	)

	cases := []struct {
		sujet string
		want  PrincipalType
	}{
		{"s-com", PrincipalComedien},
		{"s-ann", PrincipalAnnonceur},
		{"s-adm", PrincipalAdmin},
		// All three profiles behind one subject: comedien wins.
		{"s-tous", PrincipalComedien},
		{"s-inconnu", PrincipalUnknown},
	}

	for _, tc := range cases {
		p, err := svc.Resolve(context.Background(), tc.sujet)
		require.NoError(t, err, tc.sujet)
		assert.Equal(t, tc.want, p.Type, tc.sujet)
		assert.Equal(t, tc.sujet, p.SujetID)
	}

	// Role checks stay independent of the priority type.
	p, err := svc.Resolve(context.Background(), "s-tous")
	require.NoError(t, err)
	assert.True(t, p.EstComedien())
	assert.True(t, p.EstAnnonceur())
	assert.True(t, p.EstAdmin())
}

func TestResolve_MissingRowIsNotAnError(t *testing.T) {
	t.Parallel()

	svc := NewPrincipalService(
		comedienSujetFake{},
		annonceurSujetFake{},
		adminSujetFake{},
	)

	p, err := svc.Resolve(context.Background(), "s-quiconque")
	require.NoError(t, err)
	assert.Equal(t, PrincipalUnknown, p.Type)
	assert.False(t, p.EstComedien())
}

func TestResolve_GatewayFailurePropagates(t *testing.T) {
	t.Parallel()

	svc := NewPrincipalService(
		comedienSujetFake{err: errors.New("connection refused")},
		annonceurSujetFake{},
		adminSujetFake{},
	)

	_, err := svc.Resolve(context.Background(), "s-com")
	assert.Error(t, err)
}
