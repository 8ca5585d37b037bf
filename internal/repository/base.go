// Package repository provides data access layer implementations for the application.
package repository

import (
	"errors"

	"bloghub/internal/models"

	"gorm.io/gorm"
)

// translate maps gorm's not-found sentinel to the application's NOT_FOUND error.
func translate(err error, resource string, id any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewNotFoundError(resource, id)
	}
	return err
}

// clampedAdd is a counter expression that never goes below zero.
func clampedAdd(column string, delta int) any {
	return gorm.Expr("CASE WHEN "+column+" + ? < 0 THEN 0 ELSE "+column+" + ? END", delta, delta)
}
