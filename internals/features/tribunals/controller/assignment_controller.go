// file: internals/features/tribunals/controller/assignment_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	cpService "titulacion_backend/internals/features/academics/career_periods/service"
	studentService "titulacion_backend/internals/features/people/students/service"
	slotService "titulacion_backend/internals/features/scheduling/time_slots/service"
	"titulacion_backend/internals/features/tribunals/dto"
	"titulacion_backend/internals/features/tribunals/model"
	"titulacion_backend/internals/features/tribunals/service"
	helper "titulacion_backend/internals/helpers"
	helperAuth "titulacion_backend/internals/helpers/auth"
)

/* =========================
   ASSIGN
   POST /api/a/tribunals/:id/assignments
   Un estudiante, un tribunal, una franja; todo del mismo
   periodo de carrera. Duplicados activos (tribunal,
   estudiante) o (tribunal, franja) → 409.
   ========================= */

func (ctl *TribunalController) AssignStudent(c *fiber.Ctx) error {
	tribunalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var p dto.TribunalAssignmentCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.FromFiberError(c, err)
	}

	tr, err := service.GetTribunal(ctl.DB, tribunalID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !tr.Active {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "El tribunal está inactivo")
	}

	cp, err := cpService.GetCareerPeriod(ctl.DB, tr.CareerPeriodID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := helperAuth.EnsureCareerAdmin(c, cp.CareerID, "asignaciones"); err != nil {
		return helper.FromFiberError(c, err)
	}

	var ent model.TribunalAssignmentModel

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		student, err := studentService.GetStudent(tx, p.TribunalAssignmentStudentID)
		if err != nil {
			return err
		}
		if !student.Active {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "El estudiante está inactivo")
		}
		slot, err := slotService.GetTimeSlot(tx, p.TribunalAssignmentTimeSlotID)
		if err != nil {
			return err
		}
		if !slot.Active {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "La franja está inactiva")
		}
		if err := service.ValidateAssignmentScope(tr.CareerPeriodID, student.CareerPeriodID, slot.CareerPeriodID); err != nil {
			return err
		}

		var cnt int64
		if err := tx.Model(&model.TribunalAssignmentModel{}).
			Where("tribunal_assignment_tribunal_id = ? AND tribunal_assignment_student_id = ? AND tribunal_assignment_is_active = TRUE",
				tribunalID, student.ID).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "El estudiante ya tiene una asignación activa con este tribunal")
		}
		if err := tx.Model(&model.TribunalAssignmentModel{}).
			Where("tribunal_assignment_tribunal_id = ? AND tribunal_assignment_time_slot_id = ? AND tribunal_assignment_is_active = TRUE",
				tribunalID, slot.ID).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "La franja ya está ocupada por este tribunal")
		}

		ent = model.TribunalAssignmentModel{
			TribunalAssignmentTribunalID: tribunalID,
			TribunalAssignmentStudentID:  student.ID,
			TribunalAssignmentTimeSlotID: slot.ID,
			TribunalAssignmentIsActive:   true,
		}
		if err := tx.Create(&ent).Error; err != nil {
			return helper.TranslatePGError(err, "La asignación duplica otra activa")
		}
		return nil
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.JsonCreated(c, "Estudiante asignado", dto.AssignmentFromModel(ent))
}

/* =========================
   LIST
   GET /api/a/tribunals/:id/assignments
   ========================= */

func (ctl *TribunalController) ListAssignments(c *fiber.Ctx) error {
	tribunalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	pg := helper.ResolvePaging(c, 25, 200)

	db := ctl.DB.Model(&model.TribunalAssignmentModel{}).
		Where("tribunal_assignment_tribunal_id = ?", tribunalID)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo contar asignaciones")
	}
	var rows []model.TribunalAssignmentModel
	if err := db.Order("tribunal_assignment_created_at ASC").
		Limit(pg.Limit).Offset(pg.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo listar asignaciones")
	}
	return helper.JsonList(c, "ok", dto.AssignmentsFromModels(rows), helper.BuildPagination(pg.Page, pg.PerPage, total))
}

/* =========================
   DEACTIVATE
   DELETE /api/a/tribunals/:id/assignments/:assignment_id
   Reubicación: desactiva la asignación, libera franja y
   estudiante.
   ========================= */

func (ctl *TribunalController) DeactivateAssignment(c *fiber.Ctx) error {
	tribunalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	assignmentID, err := uuid.Parse(c.Params("assignment_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de asignación inválido")
	}

	var ent model.TribunalAssignmentModel
	if err := ctl.DB.First(&ent,
		"tribunal_assignment_id = ? AND tribunal_assignment_tribunal_id = ?", assignmentID, tribunalID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Asignación no encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener la asignación")
	}

	tr, err := service.GetTribunal(ctl.DB, tribunalID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	cp, err := cpService.GetCareerPeriod(ctl.DB, tr.CareerPeriodID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := helperAuth.EnsureCareerAdmin(c, cp.CareerID, "asignaciones"); err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := ctl.DB.Model(&ent).Update("tribunal_assignment_is_active", false).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo desactivar la asignación")
	}
	return helper.JsonDeleted(c, "Asignación desactivada", fiber.Map{"tribunal_assignment_id": assignmentID})
}
