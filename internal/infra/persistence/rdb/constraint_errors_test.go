package rdb

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsCheckConstraintViolation(t *testing.T) {
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))
	assert.True(t, isCheckConstraintViolation(errors.Wrap(gorm.ErrCheckConstraintViolated, "insert")))
	assert.True(t, isCheckConstraintViolation(errors.New(`ERROR: new row for relation "addresses" violates check constraint "chk_addresses_latitude" (SQLSTATE 23514)`)))
	assert.True(t, isCheckConstraintViolation(errors.New("CHECK constraint failed: chk_addresses_longitude")))
	assert.False(t, isCheckConstraintViolation(errors.New("connection reset by peer")))
}

func TestIsNotNullConstraintViolation(t *testing.T) {
	assert.True(t, isNotNullConstraintViolation(errors.New("NOT NULL constraint failed: addresses.name")))
	assert.True(t, isNotNullConstraintViolation(errors.New(`null value in column "name" violates not-null constraint (SQLSTATE 23502)`)))
	assert.False(t, isNotNullConstraintViolation(errors.New("deadlock detected")))
}
