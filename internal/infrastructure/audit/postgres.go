package audit

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSink appends audit events to the instruction_audit table.
type PostgresSink struct {
	pool *pgxpool.Pool
}

func NewPostgresSink(pool *pgxpool.Pool) *PostgresSink {
	return &PostgresSink{pool: pool}
}

func (s *PostgresSink) Record(ctx context.Context, e Event) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO instruction_audit (id, received_at, instruction, status, status_code)
		 VALUES ($1, $2, $3, $4, $5)`,
		e.ID, e.ReceivedAt, e.Instruction, e.Status, e.StatusCode,
	)
	return err
}
