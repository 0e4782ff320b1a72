package postgres

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolationHelpers(t *testing.T) {
	uniqueErr := fmt.Errorf("insert user: %w", &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"})
	fkErr := &pgconn.PgError{Code: "23503", ConstraintName: "fk_partner_suppliers_profession"}
	notNullErr := &pgconn.PgError{Code: "23502"}
	checkErr := &pgconn.PgError{Code: "23514", ConstraintName: "chk_users_single_profile"}

	assert.True(t, isUniqueConstraintViolation(uniqueErr))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.False(t, isUniqueConstraintViolation(fkErr))

	assert.True(t, isForeignKeyConstraintViolation(fkErr))
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.False(t, isForeignKeyConstraintViolation(uniqueErr))

	assert.True(t, isNotNullConstraintViolation(notNullErr))
	assert.False(t, isNotNullConstraintViolation(gorm.ErrRecordNotFound))

	assert.True(t, isCheckConstraintViolation(checkErr))
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))

	assert.Equal(t, "idx_users_email", pgConstraintName(uniqueErr))
	assert.Empty(t, pgConstraintName(gorm.ErrDuplicatedKey))
}
