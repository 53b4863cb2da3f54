package models

type StatutOpportunite string
type ModeleOpportunite string
type DecisionModeration string
type CibleModeration string
type StatutEnvoi string

const (
	StatutEnAttente StatutOpportunite = "en_attente"
	StatutValidee   StatutOpportunite = "validee"
	StatutRefusee   StatutOpportunite = "refusee"
	StatutExpiree   StatutOpportunite = "expiree"
	StatutComplete  StatutOpportunite = "complete"

	ModelePreVente       ModeleOpportunite = "pre_vente"
	ModeleDerniereMinute ModeleOpportunite = "derniere_minute"

	DecisionValidee DecisionModeration = "validee"
	DecisionRefusee DecisionModeration = "refusee"

	CibleAnnonceur   CibleModeration = "annonceur"
	CibleOpportunite CibleModeration = "opportunite"

	EnvoiReussi StatutEnvoi = "envoyee"
	EnvoiEchec  StatutEnvoi = "echec"
)
