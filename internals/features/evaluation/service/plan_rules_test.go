// file: internals/features/evaluation/service/plan_rules_test.go
package service

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"titulacion_backend/internals/features/evaluation/model"
)

func code(t *testing.T, err error) int {
	t.Helper()
	var fe *fiber.Error
	require.True(t, errors.As(err, &fe), "se espera *fiber.Error, fue: %v", err)
	return fe.Code
}

func TestValidateItemKind(t *testing.T) {
	rubricID := uuid.New()

	assert.NoError(t, ValidateItemKind(model.ItemKindDirectScore, nil))
	assert.NoError(t, ValidateItemKind(model.ItemKindRubricBased, &rubricID))

	assert.Equal(t, fiber.StatusUnprocessableEntity,
		code(t, ValidateItemKind(model.ItemKindDirectScore, &rubricID)))
	assert.Equal(t, fiber.StatusUnprocessableEntity,
		code(t, ValidateItemKind(model.ItemKindRubricBased, nil)))
	assert.Equal(t, fiber.StatusUnprocessableEntity,
		code(t, ValidateItemKind(model.ItemKind("OTRO"), nil)))
}

func TestValidateRubricPeriod(t *testing.T) {
	period := uuid.New()
	assert.NoError(t, ValidateRubricPeriod(period, period))

	err := ValidateRubricPeriod(uuid.New(), period)
	assert.Equal(t, fiber.StatusUnprocessableEntity, code(t, err))
	var fe *fiber.Error
	require.True(t, errors.As(err, &fe))
	assert.Contains(t, fe.Message, "no corresponde a este periodo")
}

func TestValidateWeightBudget(t *testing.T) {
	assert.NoError(t, ValidateWeightBudget(0, 100))
	assert.NoError(t, ValidateWeightBudget(65, 35))
	assert.NoError(t, ValidateWeightBudget(30, 35), "un plan a medio armar es válido")

	assert.Equal(t, fiber.StatusUnprocessableEntity, code(t, ValidateWeightBudget(70, 35)))
	assert.Equal(t, fiber.StatusUnprocessableEntity, code(t, ValidateWeightBudget(100, 0.01)))
}

func TestValidateDirectValue(t *testing.T) {
	assert.NoError(t, ValidateDirectValue(0))
	assert.NoError(t, ValidateDirectValue(14.5))
	assert.NoError(t, ValidateDirectValue(20))

	assert.Equal(t, fiber.StatusUnprocessableEntity, code(t, ValidateDirectValue(-0.01)))
	assert.Equal(t, fiber.StatusUnprocessableEntity, code(t, ValidateDirectValue(20.01)))
}
