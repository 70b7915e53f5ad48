package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/viki/internal/models"
)

// OrderByIDs devolve os serviços na ordem dos ids pedidos; ids sem
// correspondência são omitidos.
func OrderByIDs(services []models.Service, ids []string) []models.Service {
	byID := make(map[string]models.Service, len(services))
	for _, s := range services {
		byID[s.ID] = s
	}

	out := make([]models.Service, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		if s, ok := byID[id]; ok {
			out = append(out, s)
			seen[id] = true
		}
	}
	return out
}

func Names(services []models.Service) []string {
	names := make([]string, 0, len(services))
	for _, s := range services {
		names = append(names, s.Name)
	}
	return names
}

func ValidPrice(price decimal.Decimal) bool {
	return price.IsPositive()
}
