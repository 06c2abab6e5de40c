// Package repository holds the persistence helpers shared by the gorm-backed
// repositories.
package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/amirasaad/pinbank/pkg/domain"
	"gorm.io/gorm"
)

// MapGormErrorToDomain converts GORM and driver errors to domain errors so
// infrastructure failures never leak their concrete types past the adapter.
// The original error stays in the chain for logging.
func MapGormErrorToDomain(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %w", domain.ErrAlreadyExists, err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %w", domain.ErrNotFound, err)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, driver.ErrBadConn):
		return fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
	default:
		return err
	}
}
