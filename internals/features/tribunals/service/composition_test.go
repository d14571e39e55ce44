// file: internals/features/tribunals/service/composition_test.go
package service

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	raterService "titulacion_backend/internals/features/people/raters/service"
	"titulacion_backend/internals/features/tribunals/model"
)

func member(d model.Designation, careerID uuid.UUID) CandidateMember {
	return CandidateMember{
		Designation: d,
		Rater: raterService.RaterRef{
			ID:       uuid.New(),
			CareerID: careerID,
			FullName: "Docente " + string(d),
			Active:   true,
		},
	}
}

func fullBoard(careerID uuid.UUID) []CandidateMember {
	return []CandidateMember{
		member(model.DesignationPresidente, careerID),
		member(model.DesignationVocal1, careerID),
		member(model.DesignationVocal2, careerID),
	}
}

func asFiber(t *testing.T, err error) *fiber.Error {
	t.Helper()
	var fe *fiber.Error
	require.True(t, errors.As(err, &fe), "se espera *fiber.Error, fue: %v", err)
	return fe
}

func TestValidateComposition_MesaCompleta(t *testing.T) {
	careerID := uuid.New()
	assert.NoError(t, ValidateComposition(careerID, fullBoard(careerID)))
}

func TestValidateComposition_RequiereTresMiembros(t *testing.T) {
	careerID := uuid.New()
	board := fullBoard(careerID)[:2]

	fe := asFiber(t, ValidateComposition(careerID, board))
	assert.Equal(t, fiber.StatusUnprocessableEntity, fe.Code)
	assert.Contains(t, fe.Message, "presidente y dos vocales")
}

func TestValidateComposition_DesignacionRepetida(t *testing.T) {
	careerID := uuid.New()
	board := []CandidateMember{
		member(model.DesignationPresidente, careerID),
		member(model.DesignationVocal1, careerID),
		member(model.DesignationVocal1, careerID),
	}

	fe := asFiber(t, ValidateComposition(careerID, board))
	assert.Equal(t, fiber.StatusUnprocessableEntity, fe.Code)
	assert.Contains(t, fe.Message, "VOCAL_1")
}

func TestValidateComposition_DocenteRepetido(t *testing.T) {
	careerID := uuid.New()
	board := fullBoard(careerID)
	// mismo nombramiento como presidente y vocal 2
	board[2].Rater = board[0].Rater

	fe := asFiber(t, ValidateComposition(careerID, board))
	assert.Equal(t, fiber.StatusUnprocessableEntity, fe.Code)
	assert.Contains(t, fe.Message, "PRESIDENTE")
	assert.Contains(t, fe.Message, "VOCAL_2")
}

func TestValidateComposition_NombramientoInactivo(t *testing.T) {
	careerID := uuid.New()
	board := fullBoard(careerID)
	board[1].Rater.Active = false

	fe := asFiber(t, ValidateComposition(careerID, board))
	assert.Equal(t, fiber.StatusUnprocessableEntity, fe.Code)
	assert.Contains(t, fe.Message, "VOCAL_1", "el mensaje nombra la designación ofensora")
}

func TestValidateComposition_OtraCarrera(t *testing.T) {
	careerID := uuid.New()
	board := fullBoard(careerID)
	board[2].Rater.CareerID = uuid.New()

	fe := asFiber(t, ValidateComposition(careerID, board))
	assert.Equal(t, fiber.StatusUnprocessableEntity, fe.Code)
	assert.Contains(t, fe.Message, "VOCAL_2")
	assert.Contains(t, fe.Message, "carrera")
}

func TestValidateAssignmentScope(t *testing.T) {
	cp := uuid.New()
	otro := uuid.New()

	assert.NoError(t, ValidateAssignmentScope(cp, cp, cp))

	fe := asFiber(t, ValidateAssignmentScope(cp, otro, cp))
	assert.Equal(t, fiber.StatusUnprocessableEntity, fe.Code)
	assert.Contains(t, fe.Message, "estudiante")

	fe = asFiber(t, ValidateAssignmentScope(cp, cp, otro))
	assert.Equal(t, fiber.StatusUnprocessableEntity, fe.Code)
	assert.Contains(t, fe.Message, "franja")
}

func TestPlanBoardReplacement_DesactivaSinBorrar(t *testing.T) {
	tribunalID := uuid.New()
	careerID := uuid.New()

	current := []model.TribunalMemberModel{
		{TribunalMemberID: uuid.New(), TribunalMemberTribunalID: tribunalID, TribunalMemberDesignation: model.DesignationPresidente, TribunalMemberIsActive: true},
		{TribunalMemberID: uuid.New(), TribunalMemberTribunalID: tribunalID, TribunalMemberDesignation: model.DesignationVocal1, TribunalMemberIsActive: true},
		{TribunalMemberID: uuid.New(), TribunalMemberTribunalID: tribunalID, TribunalMemberDesignation: model.DesignationVocal2, TribunalMemberIsActive: true},
	}
	// histórico de un reemplazo previo: no se vuelve a tocar
	historic := model.TribunalMemberModel{TribunalMemberID: uuid.New(), TribunalMemberTribunalID: tribunalID, TribunalMemberDesignation: model.DesignationVocal1}
	incoming := fullBoard(careerID)

	plan := PlanBoardReplacement(tribunalID, append(current, historic), incoming)

	require.Len(t, plan.DeactivateIDs, 3)
	for i, row := range current {
		assert.Equal(t, row.TribunalMemberID, plan.DeactivateIDs[i])
	}
	assert.NotContains(t, plan.DeactivateIDs, historic.TribunalMemberID)

	require.Len(t, plan.NewRows, 3)
	for i, row := range plan.NewRows {
		assert.Equal(t, tribunalID, row.TribunalMemberTribunalID)
		assert.Equal(t, incoming[i].Designation, row.TribunalMemberDesignation)
		assert.Equal(t, incoming[i].Rater.ID, row.TribunalMemberRaterID)
		assert.True(t, row.TribunalMemberIsActive)
		assert.Equal(t, uuid.Nil, row.TribunalMemberID, "el ID lo asigna la base; nunca se reutiliza una fila vieja")
	}
}

func TestPlanBoardReplacement_MesaVacia(t *testing.T) {
	tribunalID := uuid.New()
	plan := PlanBoardReplacement(tribunalID, nil, fullBoard(uuid.New()))
	assert.Empty(t, plan.DeactivateIDs)
	assert.Len(t, plan.NewRows, 3)
}
