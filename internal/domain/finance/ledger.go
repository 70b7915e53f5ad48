package finance

import (
	"sort"
	"time"

	"github.com/BruksfildServices01/viki/internal/models"
)

const UnknownMethod = "unknown"

type Source string

const (
	SourcePayments  Source = "payments"
	SourceSynthetic Source = "synthetic"
)

// LedgerEntry é a linha do relatório financeiro: um pagamento real ou um
// substituto derivado de um atendimento pago (AmountCents nil).
type LedgerEntry struct {
	PaymentID     string    `json:"payment_id"`
	AppointmentID *string   `json:"appointment_id"`
	AmountCents   *int64    `json:"amount_cents"`
	Method        *string   `json:"method"`
	CreatedAt     time.Time `json:"created_at"`
	Synthetic     bool      `json:"synthetic"`
}

type Ledger struct {
	Source  Source        `json:"source"`
	Entries []LedgerEntry `json:"entries"`
}

func FromPayments(payments []models.Payment) []LedgerEntry {
	out := make([]LedgerEntry, 0, len(payments))
	for _, p := range payments {
		out = append(out, LedgerEntry{
			PaymentID:     p.ID,
			AppointmentID: p.AppointmentID,
			AmountCents:   p.AmountCents,
			Method:        p.Method,
			CreatedAt:     p.CreatedAt,
		})
	}
	return out
}

// Synthesize gera uma linha por atendimento pago, sem valor e com método
// "unknown"; created_at = preferred_at ou agora.
func Synthesize(
	appointments []models.Appointment,
	now time.Time,
	newID func() string,
) []LedgerEntry {

	out := make([]LedgerEntry, 0, len(appointments))
	for _, ap := range appointments {
		createdAt := now
		if ap.PreferredAt != nil {
			createdAt = *ap.PreferredAt
		}

		apID := ap.ID
		method := UnknownMethod

		out = append(out, LedgerEntry{
			PaymentID:     newID(),
			AppointmentID: &apID,
			AmountCents:   nil,
			Method:        &method,
			CreatedAt:     createdAt,
			Synthetic:     true,
		})
	}

	SortNewestFirst(out)
	return out
}

// SortNewestFirst ordena por created_at desc, estável para empates.
func SortNewestFirst(entries []LedgerEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
}
