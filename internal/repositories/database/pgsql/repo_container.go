package pgsql

import (
	portsrepo "github.com/IpitingaJA/church_event_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires all pgx-backed repositories onto one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:        newPgxUserRepository(dbPool),
		ChurchRepo:      newPgxChurchRepository(dbPool),
		ParticipantRepo: newPgxParticipantRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
	}
}
