// file: internals/features/rubrics/service/chain_test.go
package service

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fe(t *testing.T, err error) *fiber.Error {
	t.Helper()
	var out *fiber.Error
	require.True(t, errors.As(err, &out), "se espera *fiber.Error, fue: %v", err)
	return out
}

func TestValidateCellChain(t *testing.T) {
	rubric := uuid.New()
	component := uuid.New()

	ok := ChainRefs{
		ComponentRubricID:  rubric,
		CriterionComponent: component,
		ComponentID:        component,
		LevelRubricID:      rubric,
	}
	assert.NoError(t, ValidateCellChain(ok))

	t.Run("criterio de otro componente", func(t *testing.T) {
		refs := ok
		refs.CriterionComponent = uuid.New()
		e := fe(t, ValidateCellChain(refs))
		assert.Equal(t, fiber.StatusConflict, e.Code)
		assert.Contains(t, e.Message, "criterio")
	})

	t.Run("nivel de otra rubrica", func(t *testing.T) {
		refs := ok
		refs.LevelRubricID = uuid.New()
		e := fe(t, ValidateCellChain(refs))
		assert.Equal(t, fiber.StatusConflict, e.Code)
		assert.Contains(t, e.Message, "rúbrica")
	})
}

func TestValidateCellText(t *testing.T) {
	assert.NoError(t, ValidateCellText("Demuestra dominio completo del tema"))

	for _, s := range []string{"", "   ", "\n\t"} {
		e := fe(t, ValidateCellText(s))
		assert.Equal(t, fiber.StatusUnprocessableEntity, e.Code)
	}
}
