package appointment

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/viki/internal/httperr"
	"github.com/BruksfildServices01/viki/internal/timezone"
)

const (
	NotesSeparator      = " | "
	ServicesNotesPrefix = "Requested services: "
	NoTimeSelected      = "No time selected"
)

// ResolvePreferredAt retorna nil quando data ou hora não foram informadas.
func ResolvePreferredAt(date, clock string, loc *time.Location) (*time.Time, error) {
	date = strings.TrimSpace(date)
	clock = strings.TrimSpace(clock)

	if date == "" || clock == "" {
		return nil, nil
	}

	at, err := timezone.ParseDateTime(date, clock, loc)
	if err != nil {
		return nil, httperr.ErrValidation("invalid_date_or_time")
	}
	return &at, nil
}

// RenderServiceNotes mantém o formato legado das notas:
// "<nota> | Requested services: A, B".
func RenderServiceNotes(notes string, serviceNames []string) string {
	var b strings.Builder
	if notes != "" {
		b.WriteString(notes)
		b.WriteString(NotesSeparator)
	}
	b.WriteString(ServicesNotesPrefix)
	b.WriteString(strings.Join(serviceNames, ", "))
	return b.String()
}

func DisplayPreferredAt(at *time.Time, loc *time.Location) string {
	if at == nil {
		return NoTimeSelected
	}
	return at.In(loc).Format("Mon Jan 2, 2006 15:04")
}
