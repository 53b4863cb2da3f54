package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angeroddy/sceno-app-sub001/internal/models"
	"github.com/angeroddy/sceno-app-sub001/pkg/apperrors"
)

type fakeBlocageStore struct {
	rows []models.AnnonceurBloque
}

func (f *fakeBlocageStore) Create(_ context.Context, b *models.AnnonceurBloque) error {
	f.rows = append(f.rows, *b)
	return nil
}

func (f *fakeBlocageStore) Delete(_ context.Context, comedienID, annonceurID string) error {
	kept := f.rows[:0]
	for _, r := range f.rows {
		if r.ComedienID != comedienID || r.AnnonceurID != annonceurID {
			kept = append(kept, r)
		}
	}
	f.rows = kept
	return nil
}

func TestBloquer(t *testing.T) {
	t.Parallel()

	a := &models.Annonceur{BaseModel: models.BaseModel{ID: uuid.NewString()}}
	store := &fakeBlocageStore{}
	svc := NewBlocageService(store, newFakeAnnonceurStore(a))
	comedienID := uuid.NewString()

	require.NoError(t, svc.Bloquer(context.Background(), comedienID, a.ID))
	require.Len(t, store.rows, 1)
	assert.Equal(t, comedienID, store.rows[0].ComedienID)
	assert.Equal(t, a.ID, store.rows[0].AnnonceurID)

	require.NoError(t, svc.Debloquer(context.Background(), comedienID, a.ID))
	assert.Empty(t, store.rows)
}

func TestBloquer_AnnonceurInconnu(t *testing.T) {
	t.Parallel()

	store := &fakeBlocageStore{}
	svc := NewBlocageService(store, newFakeAnnonceurStore())

	err := svc.Bloquer(context.Background(), uuid.NewString(), uuid.NewString())
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)
	assert.Empty(t, store.rows)
}
