package apperrors

import "net/http"

// Domain-specific error factories shared by services and handlers.

func ErrOpportuniteNotFound(id string) *AppError {
	return New(CodeNotFound, "opportunite", "Opportunité introuvable", http.StatusNotFound).
		WithDetails(map[string]string{"opportuniteId": id})
}

func ErrAnnonceurNotFound(id string) *AppError {
	return New(CodeNotFound, "annonceur", "Annonceur introuvable", http.StatusNotFound).
		WithDetails(map[string]string{"annonceurId": id})
}

// ErrInvalidTransition reports a lifecycle move the engine forbids.
func ErrInvalidTransition(from, to string) *AppError {
	return New(CodeInvalidStatus, "lifecycle", "Transition de statut invalide", http.StatusBadRequest).
		WithDetails(map[string]string{"from": from, "to": to})
}

func ErrUnknownStatut(value string) *AppError {
	return New(CodeValidationFailed, "lifecycle", "Statut inconnu: "+value, http.StatusBadRequest)
}

func ErrOpportuniteComplete() *AppError {
	return New(CodeSoldOut, "achat", "Plus aucune place disponible", http.StatusConflict)
}
