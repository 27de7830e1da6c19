package pg

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Healthcheck returns a probe that runs SELECT 1 on a pooled connection, which
// exercises connection acquisition and the query path rather than a bare ping.
func Healthcheck(pool *pgxpool.Pool) func(context.Context) error {
	return func(ctx context.Context) error {
		var one int
		if err := pool.QueryRow(ctx, "SELECT 1").Scan(&one); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		if one != 1 {
			return errors.Join(ErrHealthcheckFailed, fmt.Errorf("unexpected probe result %d", one))
		}
		return nil
	}
}
