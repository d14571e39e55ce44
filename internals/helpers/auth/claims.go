// file: internals/helpers/auth/claims.go
package helperAuth

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

/* =========================================================
   Locals keys — los llena el middleware AuthJWT
========================================================= */

const (
	LocUserID         = "user_id"
	LocRolesGlobal    = "roles_global"    // []string
	LocCareerRoles    = "career_roles"    // [{career_id, roles:[...]}]
	LocRaterRecords   = "rater_records"   // [{rater_id, career_id}]
	LocStudentRecords = "student_records" // [{student_id, career_period_id}]
	LocJWTClaims      = "jwt_claims"
)

/* =========================================================
   Shapes de claims compuestos
========================================================= */

type CareerRolesEntry struct {
	CareerID uuid.UUID `json:"career_id"`
	Roles    []string  `json:"roles"`
}

type RaterRecordEntry struct {
	RaterID  uuid.UUID `json:"rater_id"`
	CareerID uuid.UUID `json:"career_id"`
}

type StudentRecordEntry struct {
	StudentID      uuid.UUID `json:"student_id"`
	CareerPeriodID uuid.UUID `json:"career_period_id"`
}

/* =========================================================
   Parsers desde Locals (tolerantes al tipo que deje el JWT)
========================================================= */

// reshape: los claims llegan como []any/map[any]; round-trip por JSON
// normaliza al struct tipado.
func reshape[T any](v any, out *T) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals(LocUserID)
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user_id ausente en el token")
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user_id inválido")
	}
	return id, nil
}

func GetRolesGlobal(c *fiber.Ctx) []string {
	v := c.Locals(LocRolesGlobal)
	if v == nil {
		return nil
	}
	switch t := v.(type) {
	case []string:
		return t
	case string:
		if s := strings.TrimSpace(t); s != "" {
			return []string{s}
		}
		return nil
	default:
		var out []string
		if err := reshape(v, &out); err != nil {
			return nil
		}
		return out
	}
}

func HasGlobalRole(c *fiber.Ctx, role string) bool {
	for _, r := range GetRolesGlobal(c) {
		if strings.EqualFold(strings.TrimSpace(r), role) {
			return true
		}
	}
	return false
}

func GetCareerRoles(c *fiber.Ctx) []CareerRolesEntry {
	v := c.Locals(LocCareerRoles)
	if v == nil {
		return nil
	}
	if t, ok := v.([]CareerRolesEntry); ok {
		return t
	}
	var out []CareerRolesEntry
	if err := reshape(v, &out); err != nil {
		return nil
	}
	return out
}

func GetRaterRecords(c *fiber.Ctx) []RaterRecordEntry {
	v := c.Locals(LocRaterRecords)
	if v == nil {
		return nil
	}
	if t, ok := v.([]RaterRecordEntry); ok {
		return t
	}
	var out []RaterRecordEntry
	if err := reshape(v, &out); err != nil {
		return nil
	}
	return out
}

// GetRaterIDs: ids de nombramiento docente presentes en el token.
func GetRaterIDs(c *fiber.Ctx) []uuid.UUID {
	recs := GetRaterRecords(c)
	out := make([]uuid.UUID, 0, len(recs))
	for _, r := range recs {
		if r.RaterID != uuid.Nil {
			out = append(out, r.RaterID)
		}
	}
	return out
}

func GetStudentRecords(c *fiber.Ctx) []StudentRecordEntry {
	v := c.Locals(LocStudentRecords)
	if v == nil {
		return nil
	}
	if t, ok := v.([]StudentRecordEntry); ok {
		return t
	}
	var out []StudentRecordEntry
	if err := reshape(v, &out); err != nil {
		return nil
	}
	return out
}
