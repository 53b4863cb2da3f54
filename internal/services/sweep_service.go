package services

import (
	"context"
	"time"

	"github.com/angeroddy/sceno-app-sub001/internal/logger"
)

type SweepStore interface {
	RetirerPreventes(ctx context.Context, debut, fin time.Time, inclusive bool) ([]string, error)
	ExpirerPassees(ctx context.Context, maintenant time.Time) ([]string, error)
	SweepEnTransaction(ctx context.Context, debut, fin time.Time, inclusive bool) (preventes, expirees []string, err error)
}

// SweepReport names every row each rule touched, so re-runs can be checked
// for idempotence from the outside.
type SweepReport struct {
	Timestamp         time.Time `json:"timestamp"`
	PreventesRetirees []string  `json:"preventesRetirees"`
	Expirees          []string  `json:"expirees"`
}

func (r *SweepReport) CompteDemotions() int { return len(r.PreventesRetirees) }
func (r *SweepReport) CompteExpirees() int  { return len(r.Expirees) }

// SweepService runs the two time-based bulk transitions. The rules commute:
// demotion needs a future event date, expiry a past one, so no row matches
// both in one run and order never matters.
type SweepService struct {
	store             SweepStore
	preventeWindow    time.Duration
	windowInclusive   bool
	singleTransaction bool
	now               func() time.Time
}

func NewSweepService(store SweepStore, preventeWindow time.Duration, windowInclusive, singleTransaction bool) *SweepService {
	return &SweepService{
		store:             store,
		preventeWindow:    preventeWindow,
		windowInclusive:   windowInclusive,
		singleTransaction: singleTransaction,
		now:               time.Now,
	}
}

// WithClock substitutes the time source, for tests.
func (s *SweepService) WithClock(now func() time.Time) *SweepService {
	s.now = now
	return s
}

// Run executes one sweep. Idempotent: a second run with no time passage
// finds no qualifying rows and writes nothing.
func (s *SweepService) Run(ctx context.Context) (*SweepReport, error) {
	maintenant := s.now()
	fin := maintenant.Add(s.preventeWindow)

	report := &SweepReport{Timestamp: maintenant}
	var err error

	if s.singleTransaction {
		report.PreventesRetirees, report.Expirees, err = s.store.SweepEnTransaction(ctx, maintenant, fin, s.windowInclusive)
		if err != nil {
			return nil, err
		}
	} else {
		if report.PreventesRetirees, err = s.store.RetirerPreventes(ctx, maintenant, fin, s.windowInclusive); err != nil {
			return nil, err
		}
		if report.Expirees, err = s.store.ExpirerPassees(ctx, maintenant); err != nil {
			return nil, err
		}
	}

	logger.CtxInfo(ctx, "sweep completed",
		"preventes_retirees", report.CompteDemotions(),
		"expirees", report.CompteExpirees(),
	)
	return report, nil
}
