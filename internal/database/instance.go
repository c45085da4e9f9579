package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/slack-announcement-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db         *DB
	yearlyRepo contract.YearlyRepo
	onceRepo   contract.OnceRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := &instance{
		db: db,
	}
	instance.repoInstances()
	return instance
}

// repoInstances initializes all repositories
func (i *instance) repoInstances() {
	i.yearlyRepo = newYearlyRepo(i.db.conn)
	i.onceRepo = newOnceRepo(i.db.conn)
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		yearlyRepo: newYearlyRepo(db),
		onceRepo:   newOnceRepo(db),
	}
}

// Yearly returns the yearly announcement repository
func (i *instance) Yearly() contract.YearlyRepo {
	return i.yearlyRepo
}

// Once returns the one-time announcement repository
func (i *instance) Once() contract.OnceRepo {
	return i.onceRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	if i.db == nil {
		// already inside a transaction
		return fn(i)
	}

	tx, err := i.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
