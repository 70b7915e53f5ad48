package idempotency

import (
	"context"
	"time"
)

// Pending marca um token cuja primeira submissão ainda está em andamento.
const Pending = "pending"

// Store guarda request tokens do intake → id do atendimento criado.
type Store interface {
	// Claim reserva o token. claimed=false devolve o valor já gravado
	// (Pending ou o id do atendimento).
	Claim(ctx context.Context, token string) (existing string, claimed bool, err error)

	Complete(ctx context.Context, token, appointmentID string) error

	// Release libera o token após falha, permitindo nova tentativa.
	Release(ctx context.Context, token string) error
}

func key(token string) string {
	return "viki:intake:" + token
}

type clock func() time.Time
