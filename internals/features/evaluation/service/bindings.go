// file: internals/features/evaluation/service/bindings.go
package service

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ValidateBoundRater: cuando el componente tiene co-evaluador vinculado,
// solo ese contexto puede calificar sus criterios. La designación POOL
// admite a cualquier docente del pool general (contexto "POOL:<id>").
func ValidateBoundRater(bound, raterContext string) error {
	if bound == "POOL" {
		if strings.HasPrefix(raterContext, "POOL:") {
			return nil
		}
	} else if raterContext == bound {
		return nil
	}
	return fiber.NewError(fiber.StatusForbidden,
		fmt.Sprintf("Este componente está asignado a %s", bound))
}
