// file: internals/helpers/auth/scope.go
package helperAuth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"titulacion_backend/internals/constants"
)

/* =========================================================
   Scope — valor etiquetado que producen los resolvers y
   contra el que se decide toda mutación (nada de comparar
   enteros de rol sueltos).
========================================================= */

type ScopeKind string

const (
	ScopeGlobalAdmin    ScopeKind = "GLOBAL_ADMIN"
	ScopeCareerAdmin    ScopeKind = "CAREER_ADMIN"
	ScopeTribunalMember ScopeKind = "TRIBUNAL_MEMBER"
	ScopeGeneralRater   ScopeKind = "GENERAL_RATER"
	ScopeNone           ScopeKind = "NONE"
)

type Scope struct {
	Kind        ScopeKind
	CareerID    uuid.UUID // CAREER_ADMIN
	TribunalID  uuid.UUID // TRIBUNAL_MEMBER
	Designation string    // TRIBUNAL_MEMBER: PRESIDENTE | VOCAL_1 | VOCAL_2
}

/* =========================================================
   Resolución pura sobre los claims ya hidratados
========================================================= */

// ResolveScopeForCareer decide el scope del actor frente a una carrera
// objetivo. Orden: global > admin de esa carrera > docente > nada.
func ResolveScopeForCareer(rolesGlobal []string, careerRoles []CareerRolesEntry, raters []RaterRecordEntry, targetCareer uuid.UUID) Scope {
	for _, r := range rolesGlobal {
		if strings.EqualFold(strings.TrimSpace(r), constants.RoleAdminGlobal) {
			return Scope{Kind: ScopeGlobalAdmin}
		}
	}
	for _, cr := range careerRoles {
		if cr.CareerID != targetCareer {
			continue
		}
		for _, role := range cr.Roles {
			if strings.EqualFold(strings.TrimSpace(role), constants.RoleAdminCarrera) {
				return Scope{Kind: ScopeCareerAdmin, CareerID: cr.CareerID}
			}
		}
	}
	for _, rr := range raters {
		if rr.RaterID != uuid.Nil {
			return Scope{Kind: ScopeGeneralRater}
		}
	}
	return Scope{Kind: ScopeNone}
}

// ResolveScope: versión fiber de ResolveScopeForCareer.
func ResolveScope(c *fiber.Ctx, targetCareer uuid.UUID) Scope {
	return ResolveScopeForCareer(GetRolesGlobal(c), GetCareerRoles(c), GetRaterRecords(c), targetCareer)
}

/* =========================================================
   Guards — toda operación mutadora pasa primero por aquí
========================================================= */

func EnsureGlobalAdmin(c *fiber.Ctx, feature string) error {
	if HasGlobalRole(c, constants.RoleAdminGlobal) {
		return nil
	}
	return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorGlobal(feature))
}

// EnsureCareerAdmin: pasa el admin global o el admin de esa carrera.
func EnsureCareerAdmin(c *fiber.Ctx, careerID uuid.UUID, feature string) error {
	sc := ResolveScope(c, careerID)
	switch sc.Kind {
	case ScopeGlobalAdmin:
		return nil
	case ScopeCareerAdmin:
		if sc.CareerID == careerID {
			return nil
		}
	}
	return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorAdmin(feature))
}

// tribunalMemberRow: proyección mínima de la membresía, para no acoplar
// este helper al model del feature tribunals.
type tribunalMemberRow struct {
	Designation string    `gorm:"column:tribunal_member_designation"`
	RaterID     uuid.UUID `gorm:"column:tribunal_member_rater_id"`
}

// ResolveTribunalMember: verifica que algún nombramiento docente del token
// sea miembro activo del tribunal. Devuelve el scope TRIBUNAL_MEMBER con la
// designación encontrada, o 403.
func ResolveTribunalMember(c *fiber.Ctx, db *gorm.DB, tribunalID uuid.UUID) (Scope, error) {
	raterIDs := GetRaterIDs(c)
	if len(raterIDs) == 0 {
		return Scope{Kind: ScopeNone}, fiber.NewError(fiber.StatusForbidden, constants.RoleErrorTribunal("calificación de tribunal"))
	}

	var rows []tribunalMemberRow
	if err := db.Table("tribunal_members").
		Select("tribunal_member_designation, tribunal_member_rater_id").
		Where("tribunal_member_tribunal_id = ? AND tribunal_member_rater_id IN ? AND tribunal_member_is_active = TRUE",
			tribunalID, raterIDs).
		Find(&rows).Error; err != nil {
		return Scope{Kind: ScopeNone}, fiber.NewError(fiber.StatusInternalServerError, "no se pudo verificar la membresía del tribunal")
	}
	if len(rows) == 0 {
		return Scope{Kind: ScopeNone}, fiber.NewError(fiber.StatusForbidden, constants.RoleErrorTribunal("calificación de tribunal"))
	}

	return Scope{
		Kind:        ScopeTribunalMember,
		TribunalID:  tribunalID,
		Designation: rows[0].Designation,
	}, nil
}
