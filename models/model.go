package models

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNotFound reports a read/update/delete against an identifier
	// that does not exist.
	ErrNotFound = errors.New("record.not_found")

	// ErrConstraintViolation reports a create/update that would break a
	// uniqueness or foreign-key rule. It is never corrected silently.
	ErrConstraintViolation = errors.New("record.constraint_violation")

	// ErrSerialization reports an entity instance that cannot be turned
	// into its external representation.
	ErrSerialization = errors.New("record.serialization_failed")

	// ErrCascadeFailed reports a cascading delete that could not
	// complete as a unit. The whole delete is rolled back.
	ErrCascadeFailed = errors.New("record.cascade_failed")

	// ErrInvalidTransition reports an order status change the
	// transition table does not allow.
	ErrInvalidTransition = errors.New("order.invalid_transition")
)

// Migrate creates every table of the domain. Parents before dependents so
// foreign keys always have a target.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Cryptocurrency{},
		&User{},
		&MarketData{},
		&AssetMetaData{},
		&Portfolio{},
		&PortfolioAsset{},
		&Order{},
	)
}
