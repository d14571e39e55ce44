// file: internals/helpers/fromFiberError.go
package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// FromFiberError convierte el error de una Transaction (normalmente *fiber.Error)
// en la respuesta JSON estándar. Si no es *fiber.Error, cae a 500.
func FromFiberError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, err.Error())
}

// TranslatePGError mapea violaciones de constraint de Postgres a errores fiber:
// unique/exclusion → 409, foreign key → 422. Así un escritor que pierde la
// carrera contra otro request obtiene el mismo Conflict que el chequeo previo.
func TranslatePGError(err error, conflictMsg string) error {
	var code, constraint string

	var pgErr *pgconn.PgError
	var pqErr *pq.Error
	switch {
	case errors.As(err, &pgErr): // driver pgx (runtime)
		code, constraint = pgErr.Code, pgErr.ConstraintName
	case errors.As(err, &pqErr): // driver lib/pq (seeder/tooling)
		code, constraint = string(pqErr.Code), pqErr.Constraint
	default:
		return err
	}

	switch code {
	case "23505", "23P01": // unique_violation, exclusion_violation
		return fiber.NewError(fiber.StatusConflict, conflictMsg)
	case "23503": // foreign_key_violation
		return fiber.NewError(fiber.StatusUnprocessableEntity, "referencia inexistente: "+constraint)
	}
	return err
}
