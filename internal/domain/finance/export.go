package finance

import (
	"bytes"
	"encoding/csv"
	"time"

	"github.com/shopspring/decimal"
)

var ExportHeader = []string{"payment_id", "appointment_id", "amount", "method", "created_at"}

const ExportContentType = "text/csv"

// ExportCSV serializa o livro-caixa; o cabeçalho sai mesmo sem linhas.
func ExportCSV(entries []LedgerEntry) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(ExportHeader); err != nil {
		return nil, err
	}

	for _, e := range entries {
		record := []string{
			e.PaymentID,
			deref(e.AppointmentID),
			FormatAmount(e.AmountCents),
			deref(e.Method),
			FormatInstant(e.CreatedAt),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FormatAmount converte centavos em "12.50"; vazio quando não há valor.
func FormatAmount(cents *int64) string {
	if cents == nil {
		return ""
	}
	return decimal.New(*cents, -2).StringFixed(2)
}

func FormatInstant(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}

func ExportFilename(day time.Time) string {
	return "viki_finance_" + day.Format("2006-01-02") + ".csv"
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
