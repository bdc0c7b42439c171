package store

import "github.com/MKhiriev/go-finance-keeper/internal/logger"

// Storages aggregates every repository the service layer depends on.
type Storages struct {
	UserRepository     UserRepository
	SessionRepository  SessionRepository
	IncomeRepository   IncomeRepository
	ExpenseRepository  ExpenseRepository
	CategoryRepository CategoryRepository
}

// NewStorages wires all repositories on top of a single database handle.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	log.Debug().Str("dialect", db.dialect.name).Msg("creating storages")

	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		SessionRepository:  NewSessionRepository(db, log),
		IncomeRepository:   NewIncomeRepository(db, log),
		ExpenseRepository:  NewExpenseRepository(db, log),
		CategoryRepository: NewCategoryRepository(db, log),
	}
}
