package email

import (
	"bytes"
	"html/template"
	"time"
)

// NouvelleOpportuniteData feeds the notification template sent to comediens
// when an opportunity they care about gets validated.
type NouvelleOpportuniteData struct {
	NomComedien   string
	Titre         string
	NomAnnonceur  string
	DateEvenement time.Time
	Prix          float64
	ModeleLabel   string
	LienDetail    string
}

var nouvelleOpportuniteTmpl = template.Must(template.New("nouvelle_opportunite").Parse(`
<html>
<body>
	<p>Bonjour {{.NomComedien}},</p>
	<p>Une nouvelle opportunité correspondant à vos préférences vient d'être publiée :</p>
	<p>
		<strong>{{.Titre}}</strong> ({{.ModeleLabel}})<br>
		Proposée par {{.NomAnnonceur}}<br>
		Date de l'événement : {{.DateEvenement.Format "02/01/2006"}}<br>
		Prix : {{printf "%.2f" .Prix}} €
	</p>
	{{if .LienDetail}}<p><a href="{{.LienDetail}}">Voir l'opportunité</a></p>{{end}}
	<p>— L'équipe Scèno</p>
</body>
</html>
`))

// RenderNouvelleOpportunite renders the HTML body for the fan-out message.
func RenderNouvelleOpportunite(data NouvelleOpportuniteData) (string, error) {
	var buf bytes.Buffer
	if err := nouvelleOpportuniteTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
