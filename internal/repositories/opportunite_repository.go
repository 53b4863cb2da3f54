package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/angeroddy/sceno-app-sub001/internal/models"
)

type OpportuniteRepository struct {
	db *gorm.DB
}

func NewOpportuniteRepository(db *gorm.DB) *OpportuniteRepository {
	return &OpportuniteRepository{db: db}
}

func (r *OpportuniteRepository) Create(ctx context.Context, o *models.Opportunite) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *OpportuniteRepository) FindByID(ctx context.Context, id string) (*models.Opportunite, error) {
	var o models.Opportunite
	if err := r.db.WithContext(ctx).Preload("Annonceur").First(&o, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OpportuniteRepository) ListByStatut(ctx context.Context, statut models.StatutOpportunite) ([]models.Opportunite, error) {
	var list []models.Opportunite
	err := r.db.WithContext(ctx).
		Where("statut = ?", statut).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *OpportuniteRepository) ListByAnnonceur(ctx context.Context, annonceurID string) ([]models.Opportunite, error) {
	var list []models.Opportunite
	err := r.db.WithContext(ctx).
		Where("annonceur_id = ?", annonceurID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

// UpdateStatut performs the single-row status write the moderation flow
// relies on. gorm.ErrRecordNotFound when the row vanished under us.
func (r *OpportuniteRepository) UpdateStatut(ctx context.Context, id string, statut models.StatutOpportunite) error {
	tx := r.db.WithContext(ctx).
		Model(&models.Opportunite{}).
		Where("id = ?", id).
		Update("statut", statut)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteEnAttente removes an advertiser's own opportunity, permitted only
// while it still awaits moderation.
func (r *OpportuniteRepository) DeleteEnAttente(ctx context.Context, id, annonceurID string) (bool, error) {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND annonceur_id = ? AND statut = ?", id, annonceurID, models.StatutEnAttente).
		Delete(&models.Opportunite{})
	return tx.RowsAffected > 0, tx.Error
}

// RetirerPreventes bulk-demotes validated pre_vente opportunities whose
// event date falls inside (debut, fin]. With inclusive false the upper
// boundary is excluded. Returns the affected ids so the sweep report can
// name them.
func (r *OpportuniteRepository) RetirerPreventes(ctx context.Context, debut, fin time.Time, inclusive bool) ([]string, error) {
	borne := "date_evenement <= ?"
	if !inclusive {
		borne = "date_evenement < ?"
	}

	var ids []string
	err := r.db.WithContext(ctx).Raw(`
		UPDATE opportunites
		SET modele = ?, updated_at = now()
		WHERE statut = ?
		AND modele = ?
		AND date_evenement > ?
		AND `+borne+`
		RETURNING id
	`, models.ModeleDerniereMinute, models.StatutValidee, models.ModelePreVente, debut, fin).
		Scan(&ids).Error
	return ids, err
}

// ExpirerPassees bulk-expires validated opportunities whose event date has
// passed. Returns the affected ids.
func (r *OpportuniteRepository) ExpirerPassees(ctx context.Context, maintenant time.Time) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Raw(`
		UPDATE opportunites
		SET statut = ?, updated_at = now()
		WHERE statut = ?
		AND date_evenement < ?
		RETURNING id
	`, models.StatutExpiree, models.StatutValidee, maintenant).
		Scan(&ids).Error
	return ids, err
}

// SweepEnTransaction runs both sweep rules inside a single transaction, for
// deployments that prefer an all-or-nothing sweep over two independent
// statements. The rules commute either way.
func (r *OpportuniteRepository) SweepEnTransaction(ctx context.Context, debut, fin time.Time, inclusive bool) (preventes, expirees []string, err error) {
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		inner := &OpportuniteRepository{db: tx}
		var txErr error
		if preventes, txErr = inner.RetirerPreventes(ctx, debut, fin, inclusive); txErr != nil {
			return txErr
		}
		expirees, txErr = inner.ExpirerPassees(ctx, debut)
		return txErr
	})
	return preventes, expirees, err
}

// DecrementerPlaces atomically takes one seat on a validated opportunity.
// The conditional UPDATE is the only concurrency guard the purchase flow
// needs: two buyers racing for the last seat resolve on the gateway's
// per-statement atomicity. Returns the remaining seat count and whether a
// seat was actually taken.
func (r *OpportuniteRepository) DecrementerPlaces(ctx context.Context, id string) (int, bool, error) {
	var restantes []int
	tx := r.db.WithContext(ctx).Raw(`
		UPDATE opportunites
		SET places_restantes = places_restantes - 1, updated_at = now()
		WHERE id = ?
		AND statut = ?
		AND places_restantes > 0
		RETURNING places_restantes
	`, id, models.StatutValidee).Scan(&restantes)
	if tx.Error != nil {
		return 0, false, tx.Error
	}
	if len(restantes) == 0 {
		return 0, false, nil
	}
	return restantes[0], true, nil
}
