package migrations

import (
	"time"

	"github.com/MKhiriev/go-city-guide/models"
)

// caruaruTZ is the fixed UTC-3 offset of Caruaru (no daylight saving).
var caruaruTZ = time.FixedZone("America/Recife", -3*60*60)

// CuratedEvents returns the curated local events. The same set is inserted by
// the 00005_seed_events migration; `guidectl seed events` re-inserts it into
// databases where it was removed.
func CuratedEvents() []models.Event {
	return []models.Event{
		{
			Name:        "Vidinha de Balada - Henrique e Juliano",
			StartsAt:    time.Date(2025, time.December, 12, 20, 0, 0, 0, caruaruTZ),
			Location:    "Estacionamento do Polo Caruaru",
			Description: "O show mais esperado do ano! Henrique e Juliano, Nattan e convidados.",
			Price:       120.00,
			ImageURL:    "https://agendadeshows.com.br/wp-content/uploads/2024/10/henrique-e-juliano-agenda.jpg",
		},
		{
			Name:        "Bregou Festival Caruaru",
			StartsAt:    time.Date(2025, time.December, 6, 21, 0, 0, 0, caruaruTZ),
			Location:    "Arena Caruaru",
			Description: "O maior festival de Brega do agreste pernambucano.",
			Price:       70.00,
			ImageURL:    "https://ingressosprime.com/images/events/bregou-festival-caruaru.jpg",
		},
		{
			Name:        "Natal Luz Caruaru",
			StartsAt:    time.Date(2025, time.December, 24, 19, 0, 0, 0, caruaruTZ),
			Location:    "Centro da Cidade",
			Description: "Decoração especial e apresentações culturais gratuitas.",
			Price:       0.00,
			ImageURL:    "https://conheca.caruaru.pe.gov.br/wp-content/uploads/2022/12/seresta.jpg",
		},
	}
}
