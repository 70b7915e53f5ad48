package appointment

import "github.com/BruksfildServices01/viki/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusRequested Status = "requested"
	StatusConfirmed Status = "confirmed"
	StatusDeclined  Status = "declined"
	StatusCompleted Status = "completed"
)

// IsTerminal: declined e completed não aceitam mais transições
func (s Status) IsTerminal() bool {
	return s == StatusDeclined || s == StatusCompleted
}

// ===============================
// Validations
// ===============================

// CanConfirm só a partir de requested
func CanConfirm(current Status) error {
	if current != StatusRequested {
		return httperr.ErrInvalidTransition("invalid_state")
	}
	return nil
}

// CanDecline só a partir de requested
func CanDecline(current Status) error {
	if current != StatusRequested {
		return httperr.ErrInvalidTransition("invalid_state")
	}
	return nil
}

// CanReschedule vale para requested e confirmed
func CanReschedule(current Status) error {
	if current != StatusRequested && current != StatusConfirmed {
		return httperr.ErrInvalidTransition("invalid_state")
	}
	return nil
}

// CanMarkPaid bloqueia apenas declined; completed é aceito (idempotente)
func CanMarkPaid(current Status) error {
	if current == StatusDeclined {
		return httperr.ErrInvalidTransition("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusRequested
}
