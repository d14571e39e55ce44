package constants

import "fmt"

// Roles globales que viajan en el claim `roles_global`.
const (
	RoleAdminGlobal  = "admin_global"
	RoleAdminCarrera = "admin_carrera"
	RoleDocente      = "docente"
	RoleEstudiante   = "estudiante"
)

// Plantillas de error por rol
const (
	ErrOnlyAdminsCanAccess   = "❌ Solo un administrador puede acceder a %s."
	ErrOnlyGlobalCanAccess   = "❌ Solo el administrador global puede acceder a %s."
	ErrOnlyTribunalCanAccess = "❌ Solo miembros del tribunal pueden acceder a %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorGlobal(feature string) string {
	return fmt.Sprintf(ErrOnlyGlobalCanAccess, feature)
}

func RoleErrorTribunal(feature string) string {
	return fmt.Sprintf(ErrOnlyTribunalCanAccess, feature)
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdminGlobal,
		RoleAdminCarrera,
		RoleDocente,
		RoleEstudiante,
	}

	AdminRoles = []string{
		RoleAdminGlobal,
		RoleAdminCarrera,
	}

	RaterRoles = []string{
		RoleAdminGlobal,
		RoleAdminCarrera,
		RoleDocente,
	}
)
