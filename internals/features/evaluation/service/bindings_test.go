// file: internals/features/evaluation/service/bindings_test.go
package service

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidateBoundRater(t *testing.T) {
	assert.NoError(t, ValidateBoundRater("PRESIDENTE", "PRESIDENTE"))
	assert.NoError(t, ValidateBoundRater("VOCAL_2", "VOCAL_2"))
	assert.NoError(t, ValidateBoundRater("POOL", "POOL:"+uuid.NewString()))
}

func TestValidateBoundRater_ContextoAjeno(t *testing.T) {
	err := ValidateBoundRater("VOCAL_1", "PRESIDENTE")
	assert.Equal(t, fiber.StatusForbidden, code(t, err))
	assert.Contains(t, err.Error(), "VOCAL_1")

	// un miembro del tribunal no puede calificar un componente del pool
	assert.Equal(t, fiber.StatusForbidden, code(t, ValidateBoundRater("POOL", "VOCAL_2")))
	// ni el admin uno vinculado a una designación
	assert.Equal(t, fiber.StatusForbidden, code(t, ValidateBoundRater("PRESIDENTE", "ADMIN")))
}
