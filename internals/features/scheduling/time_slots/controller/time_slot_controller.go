// file: internals/features/scheduling/time_slots/controller/time_slot_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	cpService "titulacion_backend/internals/features/academics/career_periods/service"
	"titulacion_backend/internals/features/scheduling/time_slots/dto"
	"titulacion_backend/internals/features/scheduling/time_slots/model"
	"titulacion_backend/internals/features/scheduling/time_slots/service"
	helper "titulacion_backend/internals/helpers"
	helperAuth "titulacion_backend/internals/helpers/auth"
)

/* =========================
   Controller & Constructor
   ========================= */

type TimeSlotController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewTimeSlotController(db *gorm.DB, v *validator.Validate) *TimeSlotController {
	if v == nil {
		v = validator.New()
	}
	return &TimeSlotController{DB: db, Validator: v}
}

/* =========================
   CREATE
   POST /api/a/time-slots
   ========================= */

func (ctl *TimeSlotController) Create(c *fiber.Ctx) error {
	var p dto.TimeSlotCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.FromFiberError(c, err)
	}
	p.Normalize()

	if err := service.ValidateInterval(p.TimeSlotStartTime, p.TimeSlotEndTime); err != nil {
		return helper.FromFiberError(c, err)
	}

	cp, err := cpService.GetCareerPeriod(ctl.DB, p.TimeSlotCareerPeriodID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := helperAuth.EnsureCareerAdmin(c, cp.CareerID, "franjas horarias"); err != nil {
		return helper.FromFiberError(c, err)
	}

	ent := p.ToModel()

	// chequeo de solape + insert en una sola transacción
	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		cand := service.Window{Start: ent.TimeSlotStartTime, End: ent.TimeSlotEndTime}
		if err := service.CheckNoOverlap(tx, ent.TimeSlotCareerPeriodID, ent.TimeSlotDate, cand, uuid.Nil); err != nil {
			return err
		}
		if err := tx.Create(&ent).Error; err != nil {
			return helper.TranslatePGError(err, "La franja se solapa con otra activa")
		}
		return nil
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.JsonCreated(c, "Franja creada", dto.FromModel(ent))
}

/* =========================
   UPDATE
   PATCH /api/a/time-slots/:id
   ========================= */

func (ctl *TimeSlotController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var ent model.TimeSlotModel
	if err := ctl.DB.First(&ent, "time_slot_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Franja no encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener la franja")
	}

	cp, err := cpService.GetCareerPeriod(ctl.DB, ent.TimeSlotCareerPeriodID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := helperAuth.EnsureCareerAdmin(c, cp.CareerID, "franjas horarias"); err != nil {
		return helper.FromFiberError(c, err)
	}

	var p dto.TimeSlotUpdateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.FromFiberError(c, err)
	}
	p.ApplyUpdates(&ent)

	if err := service.ValidateInterval(ent.TimeSlotStartTime, ent.TimeSlotEndTime); err != nil {
		return helper.FromFiberError(c, err)
	}

	// mismo scan de solape excluyendo la propia franja
	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if ent.TimeSlotIsActive {
			cand := service.Window{Start: ent.TimeSlotStartTime, End: ent.TimeSlotEndTime}
			if err := service.CheckNoOverlap(tx, ent.TimeSlotCareerPeriodID, ent.TimeSlotDate, cand, ent.TimeSlotID); err != nil {
				return err
			}
		}
		if err := tx.Save(&ent).Error; err != nil {
			return helper.TranslatePGError(err, "La franja se solapa con otra activa")
		}
		return nil
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.JsonUpdated(c, "Franja actualizada", dto.FromModel(ent))
}

/* =========================
   LIST / GET
   ========================= */

func (ctl *TimeSlotController) List(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 25, 200)

	db := ctl.DB.Model(&model.TimeSlotModel{})
	if s := strings.TrimSpace(c.Query("career_period_id")); s != "" {
		cpID, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "career_period_id inválido")
		}
		db = db.Where("time_slot_career_period_id = ?", cpID)
	}
	if s := strings.TrimSpace(c.Query("on_date")); s != "" {
		dt, err := time.Parse("2006-01-02", s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "on_date inválida (YYYY-MM-DD)")
		}
		db = db.Where("time_slot_date = ?", dt)
	}
	if v := strings.TrimSpace(c.Query("active")); v != "" {
		db = db.Where("time_slot_is_active = ?", v == "true" || v == "1")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo contar franjas")
	}
	var rows []model.TimeSlotModel
	if err := db.Order("time_slot_date ASC, time_slot_start_time ASC").
		Limit(pg.Limit).Offset(pg.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo listar franjas")
	}
	return helper.JsonList(c, "ok", dto.FromModels(rows), helper.BuildPagination(pg.Page, pg.PerPage, total))
}

func (ctl *TimeSlotController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	var ent model.TimeSlotModel
	if err := ctl.DB.First(&ent, "time_slot_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Franja no encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener la franja")
	}
	return helper.JsonOK(c, "ok", dto.FromModel(ent))
}

/* =========================
   DEACTIVATE
   DELETE /api/a/time-slots/:id
   Bloqueado si hay asignaciones activas sobre la franja.
   ========================= */

func (ctl *TimeSlotController) Deactivate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var ent model.TimeSlotModel
	if err := ctl.DB.First(&ent, "time_slot_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Franja no encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener la franja")
	}

	cp, err := cpService.GetCareerPeriod(ctl.DB, ent.TimeSlotCareerPeriodID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := helperAuth.EnsureCareerAdmin(c, cp.CareerID, "franjas horarias"); err != nil {
		return helper.FromFiberError(c, err)
	}

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Table("tribunal_assignments").
			Where("tribunal_assignment_time_slot_id = ? AND tribunal_assignment_is_active = TRUE", id).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "La franja tiene asignaciones activas; reubica a los estudiantes primero")
		}
		return tx.Model(&ent).Update("time_slot_is_active", false).Error
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.JsonDeleted(c, "Franja desactivada", fiber.Map{"time_slot_id": id})
}
