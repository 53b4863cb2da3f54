package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"

	"github.com/angeroddy/sceno-app-sub001/internal/email"
	"github.com/angeroddy/sceno-app-sub001/internal/logger"
	"github.com/angeroddy/sceno-app-sub001/internal/models"
)

type ComediensParPreference interface {
	FindByPreference(ctx context.Context, typeOpportunite string) ([]models.Comedien, error)
}

type BlocagesParAnnonceur interface {
	ListComediensBloques(ctx context.Context, annonceurID string) ([]string, error)
}

type AnnonceurParID interface {
	FindByID(ctx context.Context, id string) (*models.Annonceur, error)
}

type JournalEnvois interface {
	Create(ctx context.Context, n *models.NotificationEmail) error
}

// EnvoiResultat is the recorded outcome for one recipient.
type EnvoiResultat struct {
	ComedienID   string             `json:"comedienId"`
	Destinataire string             `json:"destinataire"`
	Statut       models.StatutEnvoi `json:"statut"`
	Erreur       string             `json:"erreur,omitempty"`
}

// FanoutReport summarizes one notification fan-out run.
type FanoutReport struct {
	Candidats int             `json:"candidats"`
	Bloques   int             `json:"bloques"`
	Envoyes   int             `json:"envoyes"`
	Echecs    int             `json:"echecs"`
	Resultats []EnvoiResultat `json:"resultats,omitempty"`
}

// NotificationService dispatches "new opportunity" emails to comediens whose
// preferences match, minus those who blocked the annonceur. Delivery is
// at-most-once best effort: every recipient gets an outcome row, failures
// never abort the batch.
type NotificationService struct {
	comediens  ComediensParPreference
	blocages   BlocagesParAnnonceur
	annonceurs AnnonceurParID
	journal    JournalEnvois
	sender     email.Sender
	batchSize  int
	baseURL    string
}

func NewNotificationService(
	comediens ComediensParPreference,
	blocages BlocagesParAnnonceur,
	annonceurs AnnonceurParID,
	journal JournalEnvois,
	sender email.Sender,
	batchSize int,
	baseURL string,
) *NotificationService {
	if batchSize <= 0 {
		batchSize = 10
	}
	return &NotificationService{
		comediens:  comediens,
		blocages:   blocages,
		annonceurs: annonceurs,
		journal:    journal,
		sender:     sender,
		batchSize:  batchSize,
		baseURL:    baseURL,
	}
}

func modeleLabel(m models.ModeleOpportunite) string {
	if m == models.ModeleDerniereMinute {
		return "Dernière minute"
	}
	return "Pré-vente"
}

// NotifierValidation runs the fan-out for a freshly validated opportunity.
func (s *NotificationService) NotifierValidation(ctx context.Context, o *models.Opportunite) (*FanoutReport, error) {
	candidats, err := s.comediens.FindByPreference(ctx, o.Type)
	if err != nil {
		return nil, fmt.Errorf("select candidates: %w", err)
	}

	bloques, err := s.blocages.ListComediensBloques(ctx, o.AnnonceurID)
	if err != nil {
		return nil, fmt.Errorf("select blocked comediens: %w", err)
	}
	bloquesSet := make(map[string]bool, len(bloques))
	for _, id := range bloques {
		bloquesSet[id] = true
	}

	annonceur := o.Annonceur
	if annonceur == nil {
		annonceur, err = s.annonceurs.FindByID(ctx, o.AnnonceurID)
		if err != nil {
			return nil, fmt.Errorf("load annonceur: %w", err)
		}
	}

	report := &FanoutReport{Candidats: len(candidats)}

	var destinataires []models.Comedien
	for _, c := range candidats {
		if bloquesSet[c.ID] {
			report.Bloques++
			continue
		}
		destinataires = append(destinataires, c)
	}

	sujet := fmt.Sprintf("[%s] %s", modeleLabel(o.Modele), o.Titre)

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchSize)

	for _, dest := range destinataires {
		dest := dest
		g.Go(func() error {
			res := s.envoyerUn(gctx, o, annonceur, &dest, sujet)
			mu.Lock()
			report.Resultats = append(report.Resultats, res)
			if res.Statut == models.EnvoiReussi {
				report.Envoyes++
			} else {
				report.Echecs++
			}
			mu.Unlock()
			// Per-recipient failures are recorded, never escalated.
			return nil
		})
	}
	_ = g.Wait()

	return report, nil
}

func (s *NotificationService) envoyerUn(ctx context.Context, o *models.Opportunite, annonceur *models.Annonceur, dest *models.Comedien, sujet string) EnvoiResultat {
	res := EnvoiResultat{
		ComedienID:   dest.ID,
		Destinataire: dest.Email,
		Statut:       models.EnvoiReussi,
	}

	body, err := email.RenderNouvelleOpportunite(email.NouvelleOpportuniteData{
		NomComedien:   dest.Nom,
		Titre:         o.Titre,
		NomAnnonceur:  annonceur.NomOrganisation,
		DateEvenement: o.DateEvenement,
		Prix:          o.PrixActuel(),
		ModeleLabel:   modeleLabel(o.Modele),
		LienDetail:    s.lienDetail(o.ID),
	})
	if err == nil {
		err = s.sender.Send(&email.Message{
			To:       []string{dest.Email},
			Subject:  sujet,
			HTMLBody: body,
		})
	}
	if err != nil {
		res.Statut = models.EnvoiEchec
		res.Erreur = err.Error()
		logger.CtxWarn(ctx, "notification send failed",
			"comedien_id", dest.ID,
			"opportunite_id", o.ID,
			"error", err.Error(),
		)
	}

	s.journaliser(ctx, o, res, sujet)
	return res
}

// journaliser writes the per-recipient outcome row; its own failure is only
// logged, the send result stands.
func (s *NotificationService) journaliser(ctx context.Context, o *models.Opportunite, res EnvoiResultat, sujet string) {
	donnees, _ := json.Marshal(map[string]string{
		"type":   o.Type,
		"modele": string(o.Modele),
	})

	row := &models.NotificationEmail{
		ComedienID:    res.ComedienID,
		OpportuniteID: o.ID,
		Destinataire:  res.Destinataire,
		Sujet:         sujet,
		Statut:        res.Statut,
		Erreur:        res.Erreur,
		Donnees:       datatypes.JSON(donnees),
	}
	if err := s.journal.Create(ctx, row); err != nil {
		logger.CtxWarn(ctx, "notification outcome row not recorded",
			"comedien_id", res.ComedienID,
			"opportunite_id", o.ID,
			"error", err.Error(),
		)
	}
}

func (s *NotificationService) lienDetail(opportuniteID string) string {
	if s.baseURL == "" {
		return ""
	}
	return s.baseURL + "/opportunites/" + opportuniteID
}
