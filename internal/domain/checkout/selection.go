package checkout

import (
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/viki/internal/models"
)

// Selection é o estado de seleção do checkout; vive só durante a requisição.
type Selection struct {
	AppointmentID string
	services      []models.Service
}

func NewSelection(appointmentID string, selected ...models.Service) *Selection {
	s := &Selection{AppointmentID: appointmentID}
	for _, svc := range selected {
		if !s.Contains(svc.ID) {
			s.services = append(s.services, svc)
		}
	}
	return s
}

// Toggle adiciona o serviço ou o remove se já estiver selecionado.
func (s *Selection) Toggle(svc models.Service) {
	for i, cur := range s.services {
		if cur.ID == svc.ID {
			s.services = append(s.services[:i:i], s.services[i+1:]...)
			return
		}
	}
	s.services = append(s.services, svc)
}

func (s *Selection) Contains(serviceID string) bool {
	for _, cur := range s.services {
		if cur.ID == serviceID {
			return true
		}
	}
	return false
}

func (s *Selection) Services() []models.Service {
	out := make([]models.Service, len(s.services))
	copy(out, s.services)
	return out
}

func (s *Selection) Total() decimal.Decimal {
	total := decimal.Zero
	for _, svc := range s.services {
		total = total.Add(svc.Price)
	}
	return total
}

// FirstPayable: primeiro serviço selecionado que tem link de pagamento.
func (s *Selection) FirstPayable() (models.Service, bool) {
	for _, svc := range s.services {
		if svc.HasPaymentLink() {
			return svc, true
		}
	}
	return models.Service{}, false
}
