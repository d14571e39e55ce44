// file: internals/helpers/auth/scope_test.go
package helperAuth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"titulacion_backend/internals/constants"
)

func TestResolveScopeForCareer_GlobalAdmin(t *testing.T) {
	career := uuid.New()
	sc := ResolveScopeForCareer([]string{constants.RoleAdminGlobal}, nil, nil, career)
	assert.Equal(t, ScopeGlobalAdmin, sc.Kind)

	// el rol global gana aunque haya roles de carrera
	sc = ResolveScopeForCareer(
		[]string{"  Admin_Global "},
		[]CareerRolesEntry{{CareerID: career, Roles: []string{constants.RoleAdminCarrera}}},
		nil, career)
	assert.Equal(t, ScopeGlobalAdmin, sc.Kind, "insensible a mayúsculas y espacios")
}

func TestResolveScopeForCareer_CareerAdmin(t *testing.T) {
	mine := uuid.New()
	other := uuid.New()
	roles := []CareerRolesEntry{
		{CareerID: other, Roles: []string{constants.RoleAdminCarrera}},
		{CareerID: mine, Roles: []string{constants.RoleDocente, constants.RoleAdminCarrera}},
	}

	sc := ResolveScopeForCareer(nil, roles, nil, mine)
	assert.Equal(t, ScopeCareerAdmin, sc.Kind)
	assert.Equal(t, mine, sc.CareerID)

	// admin de otra carrera no da scope sobre esta
	sc = ResolveScopeForCareer(nil, roles[:1], nil, mine)
	assert.Equal(t, ScopeNone, sc.Kind)
}

func TestResolveScopeForCareer_GeneralRater(t *testing.T) {
	career := uuid.New()
	raters := []RaterRecordEntry{{RaterID: uuid.New(), CareerID: career}}

	sc := ResolveScopeForCareer(nil, nil, raters, career)
	assert.Equal(t, ScopeGeneralRater, sc.Kind)
}

func TestResolveScopeForCareer_SinClaims(t *testing.T) {
	sc := ResolveScopeForCareer(nil, nil, nil, uuid.New())
	assert.Equal(t, ScopeNone, sc.Kind)

	// registros docentes vacíos tampoco dan scope
	sc = ResolveScopeForCareer(nil, nil, []RaterRecordEntry{{}}, uuid.New())
	assert.Equal(t, ScopeNone, sc.Kind)
}

func TestResolveScopeForCareer_DocenteSinAdminNoEsAdmin(t *testing.T) {
	career := uuid.New()
	roles := []CareerRolesEntry{{CareerID: career, Roles: []string{constants.RoleDocente}}}

	sc := ResolveScopeForCareer(nil, roles, nil, career)
	assert.NotEqual(t, ScopeCareerAdmin, sc.Kind)
}
