package appointment

import (
	"time"

	"github.com/BruksfildServices01/viki/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Confirm(ap *models.Appointment) error {
	if err := CanConfirm(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	return nil
}

func Decline(ap *models.Appointment) error {
	if err := CanDecline(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusDeclined)
	return nil
}

// Reschedule troca o horário e confirma (sugerir novo horário = confirmar)
func Reschedule(ap *models.Appointment, at time.Time) error {
	if err := CanReschedule(Status(ap.Status)); err != nil {
		return err
	}

	ap.PreferredAt = &at
	ap.Status = string(StatusConfirmed)
	return nil
}

// MarkPaid retorna changed=false quando já está pago e concluído.
func MarkPaid(ap *models.Appointment) (bool, error) {
	if err := CanMarkPaid(Status(ap.Status)); err != nil {
		return false, err
	}

	if ap.Paid && Status(ap.Status) == StatusCompleted {
		return false, nil
	}

	ap.Paid = true
	ap.Status = string(StatusCompleted)
	return true, nil
}
