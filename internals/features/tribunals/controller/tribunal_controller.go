// file: internals/features/tribunals/controller/tribunal_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	cpService "titulacion_backend/internals/features/academics/career_periods/service"
	raterService "titulacion_backend/internals/features/people/raters/service"
	"titulacion_backend/internals/features/tribunals/dto"
	"titulacion_backend/internals/features/tribunals/model"
	"titulacion_backend/internals/features/tribunals/service"
	helper "titulacion_backend/internals/helpers"
	helperAuth "titulacion_backend/internals/helpers/auth"
)

/* =========================
   Controller & Constructor
   ========================= */

type TribunalController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewTribunalController(db *gorm.DB, v *validator.Validate) *TribunalController {
	if v == nil {
		v = validator.New()
	}
	return &TribunalController{DB: db, Validator: v}
}

// resolveMembers carga los nombramientos referidos por el payload.
func (ctl *TribunalController) resolveMembers(tx *gorm.DB, in []dto.TribunalMemberInputDTO) ([]service.CandidateMember, error) {
	out := make([]service.CandidateMember, 0, len(in))
	for _, m := range in {
		ref, err := raterService.RaterAppointment(tx, m.TribunalMemberRaterID)
		if err != nil {
			return nil, err
		}
		out = append(out, service.CandidateMember{Designation: m.TribunalMemberDesignation, Rater: ref})
	}
	return out, nil
}

/* =========================
   CREATE
   POST /api/a/tribunals
   Mesa completa en una sola transacción: tribunal + tres
   miembros, o nada.
   ========================= */

func (ctl *TribunalController) Create(c *fiber.Ctx) error {
	var p dto.TribunalCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.FromFiberError(c, err)
	}
	p.Normalize()

	cp, err := cpService.GetCareerPeriod(ctl.DB, p.TribunalCareerPeriodID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !cp.Active {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "El periodo de carrera está inactivo")
	}
	if err := helperAuth.EnsureCareerAdmin(c, cp.CareerID, "tribunales"); err != nil {
		return helper.FromFiberError(c, err)
	}

	ent := p.ToModel()

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		members, err := ctl.resolveMembers(tx, p.TribunalMembers)
		if err != nil {
			return err
		}
		if err := service.ValidateComposition(cp.CareerID, members); err != nil {
			return err
		}
		if err := tx.Create(&ent).Error; err != nil {
			return helper.TranslatePGError(err, "Ya existe un tribunal con esos datos")
		}
		for _, m := range members {
			row := model.TribunalMemberModel{
				TribunalMemberTribunalID:  ent.TribunalID,
				TribunalMemberRaterID:     m.Rater.ID,
				TribunalMemberDesignation: m.Designation,
				TribunalMemberIsActive:    true,
			}
			if err := tx.Create(&row).Error; err != nil {
				return helper.TranslatePGError(err, "Designación duplicada en el tribunal")
			}
			ent.TribunalMembers = append(ent.TribunalMembers, row)
		}
		return nil
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.JsonCreated(c, "Tribunal creado", dto.FromModel(ent))
}

/* =========================
   UPDATE
   PATCH /api/a/tribunals/:id
   Campos sueltos no revalidan la mesa; si el payload trae
   tribunal_members se reemplaza completa y se revalida.
   ========================= */

func (ctl *TribunalController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var ent model.TribunalModel
	if err := ctl.DB.First(&ent, "tribunal_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Tribunal no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener el tribunal")
	}

	cp, err := cpService.GetCareerPeriod(ctl.DB, ent.TribunalCareerPeriodID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := helperAuth.EnsureCareerAdmin(c, cp.CareerID, "tribunales"); err != nil {
		return helper.FromFiberError(c, err)
	}

	var p dto.TribunalUpdateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.FromFiberError(c, err)
	}

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		// desactivar con asignaciones activas está bloqueado
		if p.TribunalIsActive != nil && !*p.TribunalIsActive && ent.TribunalIsActive {
			var cnt int64
			if err := tx.Model(&model.TribunalAssignmentModel{}).
				Where("tribunal_assignment_tribunal_id = ? AND tribunal_assignment_is_active = TRUE", ent.TribunalID).
				Count(&cnt).Error; err != nil {
				return err
			}
			if cnt > 0 {
				return fiber.NewError(fiber.StatusConflict, "El tribunal tiene asignaciones activas; reubica a los estudiantes primero")
			}
		}

		p.ApplyUpdates(&ent)
		if err := tx.Save(&ent).Error; err != nil {
			return helper.TranslatePGError(err, "Ya existe un tribunal con esos datos")
		}

		if len(p.TribunalMembers) > 0 {
			members, err := ctl.resolveMembers(tx, p.TribunalMembers)
			if err != nil {
				return err
			}
			if err := service.ValidateComposition(cp.CareerID, members); err != nil {
				return err
			}
			current, err := service.ListMembers(tx, ent.TribunalID)
			if err != nil {
				return err
			}
			// la mesa anterior se desactiva, nunca se borra
			plan := service.PlanBoardReplacement(ent.TribunalID, current, members)
			if len(plan.DeactivateIDs) > 0 {
				if err := tx.Model(&model.TribunalMemberModel{}).
					Where("tribunal_member_id IN ?", plan.DeactivateIDs).
					Update("tribunal_member_is_active", false).Error; err != nil {
					return err
				}
			}
			for i := range plan.NewRows {
				if err := tx.Create(&plan.NewRows[i]).Error; err != nil {
					return helper.TranslatePGError(err, "Designación duplicada en el tribunal")
				}
			}
			ent.TribunalMembers = plan.NewRows
		}
		return nil
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.JsonUpdated(c, "Tribunal actualizado", dto.FromModel(ent))
}

/* =========================
   LIST / GET
   ========================= */

func (ctl *TribunalController) List(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 25, 200)

	db := ctl.DB.Model(&model.TribunalModel{})
	if s := strings.TrimSpace(c.Query("career_period_id")); s != "" {
		cpID, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "career_period_id inválido")
		}
		db = db.Where("tribunal_career_period_id = ?", cpID)
	}
	if v := strings.TrimSpace(c.Query("active")); v != "" {
		db = db.Where("tribunal_is_active = ?", v == "true" || v == "1")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo contar tribunales")
	}
	var rows []model.TribunalModel
	if err := db.Preload("TribunalMembers", "tribunal_member_is_active = TRUE").
		Order("tribunal_created_at DESC").
		Limit(pg.Limit).Offset(pg.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo listar tribunales")
	}
	return helper.JsonList(c, "ok", dto.FromModels(rows), helper.BuildPagination(pg.Page, pg.PerPage, total))
}

func (ctl *TribunalController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	var ent model.TribunalModel
	if err := ctl.DB.Preload("TribunalMembers", "tribunal_member_is_active = TRUE").
		First(&ent, "tribunal_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Tribunal no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener el tribunal")
	}
	return helper.JsonOK(c, "ok", dto.FromModel(ent))
}

/* =========================
   DEACTIVATE
   DELETE /api/a/tribunals/:id
   Bloqueado mientras existan asignaciones activas.
   ========================= */

func (ctl *TribunalController) Deactivate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var ent model.TribunalModel
	if err := ctl.DB.First(&ent, "tribunal_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Tribunal no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener el tribunal")
	}

	cp, err := cpService.GetCareerPeriod(ctl.DB, ent.TribunalCareerPeriodID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := helperAuth.EnsureCareerAdmin(c, cp.CareerID, "tribunales"); err != nil {
		return helper.FromFiberError(c, err)
	}

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&model.TribunalAssignmentModel{}).
			Where("tribunal_assignment_tribunal_id = ? AND tribunal_assignment_is_active = TRUE", id).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "El tribunal tiene asignaciones activas; reubica a los estudiantes primero")
		}
		return tx.Model(&ent).Update("tribunal_is_active", false).Error
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.JsonDeleted(c, "Tribunal desactivado", fiber.Map{"tribunal_id": id})
}
