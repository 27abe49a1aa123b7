package kernel

import (
	"context"

	"github.com/Samuel-Loga/Personal-Website/database"
	"github.com/Samuel-Loga/Personal-Website/database/repository"
	"github.com/Samuel-Loga/Personal-Website/metal/env"
	"github.com/Samuel-Loga/Personal-Website/pkg/agenda"
)

const keepAliveSchedule = "@every 10m"
const reconcileSchedule = "@every 1h"

// MakeSchedulers wires the background jobs: a periodic database ping so the
// hosted instance never idles out, and the reaction-tally reconciliation
// that repairs drift in the denormalised counters.
func MakeSchedulers(env *env.Environment, db *database.Connection) ([]*agenda.Engine, error) {
	comments := repository.Comments{DB: db}

	keepAlive, err := agenda.New(keepAliveSchedule, func(ctx context.Context) error {
		return db.Ping()
	})

	if err != nil {
		return nil, err
	}

	reconcile, err := agenda.New(reconcileSchedule, func(ctx context.Context) error {
		return comments.ReconcileTallies()
	})

	if err != nil {
		return nil, err
	}

	return []*agenda.Engine{keepAlive, reconcile}, nil
}
