// file: internals/features/evaluation/controller/score_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	cpService "titulacion_backend/internals/features/academics/career_periods/service"
	"titulacion_backend/internals/features/evaluation/dto"
	"titulacion_backend/internals/features/evaluation/model"
	"titulacion_backend/internals/features/evaluation/service"
	rubricService "titulacion_backend/internals/features/rubrics/service"
	tribunalService "titulacion_backend/internals/features/tribunals/service"
	helper "titulacion_backend/internals/helpers"
	helperAuth "titulacion_backend/internals/helpers/auth"
)

// raterContextFor decide quién firma la calificación según la clase de
// evaluador del ítem. El contexto forma parte de la clave natural del upsert.
func (ctl *EvaluationController) raterContextFor(c *fiber.Ctx, item model.EvaluationItemModel, cp cpService.CareerPeriodRef, tribunalID uuid.UUID) (string, error) {
	switch item.EvaluationItemRaterClass {
	case model.RaterClassCareerAdmin:
		if err := helperAuth.EnsureCareerAdmin(c, cp.CareerID, "calificaciones"); err != nil {
			return "", err
		}
		return "ADMIN", nil

	case model.RaterClassTribunal:
		sc, err := helperAuth.ResolveTribunalMember(c, ctl.DB, tribunalID)
		if err != nil {
			return "", err
		}
		return sc.Designation, nil

	case model.RaterClassGeneralPool:
		for _, rr := range helperAuth.GetRaterRecords(c) {
			if rr.CareerID == cp.CareerID {
				return "POOL:" + rr.RaterID.String(), nil
			}
		}
		return "", fiber.NewError(fiber.StatusForbidden, "Sin nombramiento docente en esta carrera")
	}
	return "", fiber.NewError(fiber.StatusUnprocessableEntity, "Clase de evaluador inválida")
}

/* =========================
   SUBMIT SCORE
   PUT /api/u/scores
   Upsert por clave natural: reenviar sobreescribe.
   ========================= */

func (ctl *EvaluationController) SubmitScore(c *fiber.Ctx) error {
	var p dto.ScoreSubmitDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.FromFiberError(c, err)
	}

	assignment, err := tribunalService.GetAssignment(ctl.DB, p.ScoreAssignmentID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !assignment.Active {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "La asignación está inactiva")
	}
	tribunal, err := tribunalService.GetTribunal(ctl.DB, assignment.TribunalID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var item model.EvaluationItemModel
	if err := ctl.DB.First(&item, "evaluation_item_id = ?", p.ScoreItemID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "El ítem no existe")
	}
	if !item.EvaluationItemIsActive {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "El ítem está inactivo")
	}

	plan, err := service.ActivePlanOf(ctl.DB, tribunal.CareerPeriodID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if item.EvaluationItemPlanID != plan.EvaluationPlanID {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "El ítem no pertenece al plan activo de este periodo")
	}

	cp, err := cpService.GetCareerPeriod(ctl.DB, tribunal.CareerPeriodID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	raterContext, err := ctl.raterContextFor(c, item, cp, tribunal.ID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	ent := model.ScoreModel{
		ScoreAssignmentID: assignment.ID,
		ScoreItemID:       item.EvaluationItemID,
		ScoreCriterionID:  uuid.Nil,
		ScoreRaterContext: raterContext,
		ScoreSubmittedBy:  userID,
	}

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		switch item.EvaluationItemKind {
		case model.ItemKindDirectScore:
			if p.ScoreValue == nil {
				return fiber.NewError(fiber.StatusUnprocessableEntity, "Un ítem de nota directa requiere score_value")
			}
			if p.ScoreCriterionID != nil || p.ScoreLevelID != nil {
				return fiber.NewError(fiber.StatusUnprocessableEntity, "Un ítem de nota directa no acepta criterio ni nivel")
			}
			if err := service.ValidateDirectValue(*p.ScoreValue); err != nil {
				return err
			}
			ent.ScoreValue = service.Round2(*p.ScoreValue)

		case model.ItemKindRubricBased:
			if p.ScoreCriterionID == nil || p.ScoreLevelID == nil {
				return fiber.NewError(fiber.StatusUnprocessableEntity, "Un ítem basado en rúbrica requiere criterio y nivel")
			}
			crit, err := rubricService.GetCriterion(tx, *p.ScoreCriterionID)
			if err != nil {
				return err
			}
			comp, err := rubricService.GetComponent(tx, crit.ComponentID)
			if err != nil {
				return err
			}
			lvl, err := rubricService.GetLevel(tx, *p.ScoreLevelID)
			if err != nil {
				return err
			}
			if comp.RubricID != *item.EvaluationItemRubricID {
				return fiber.NewError(fiber.StatusConflict, "El criterio no pertenece a la rúbrica del ítem")
			}
			if lvl.RubricID != comp.RubricID {
				return fiber.NewError(fiber.StatusConflict, "El nivel pertenece a otra rúbrica")
			}

			// componente repartido entre co-evaluadores: solo el vinculado califica
			var bind model.ItemComponentRaterModel
			switch err := tx.First(&bind,
				"item_component_rater_item_id = ? AND item_component_rater_component_id = ?",
				item.EvaluationItemID, comp.ID).Error; {
			case err == nil:
				if err := service.ValidateBoundRater(bind.ItemComponentRaterDesignation, raterContext); err != nil {
					return err
				}
			case !errors.Is(err, gorm.ErrRecordNotFound):
				return err
			}

			ok, err := rubricService.CellExists(tx, comp.ID, crit.ID, lvl.ID)
			if err != nil {
				return err
			}
			if !ok {
				return fiber.NewError(fiber.StatusUnprocessableEntity, "La combinación no tiene celda descriptiva; complétala antes de calificar")
			}
			ent.ScoreCriterionID = crit.ID
			ent.ScoreLevelID = &lvl.ID
			ent.ScoreValue = service.Round2(lvl.Value)
		}

		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "score_assignment_id"},
				{Name: "score_item_id"},
				{Name: "score_criterion_id"},
				{Name: "score_rater_context"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"score_level_id", "score_value", "score_submitted_by", "score_updated_at",
			}),
		}).Create(&ent).Error
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.JsonUpdated(c, "Calificación registrada", dto.ScoreFromModel(ent))
}

/* =========================
   AGGREGATE
   GET /api/a/assignments/:id/aggregate
   Cálculo bajo demanda, sin efectos: llamarlo dos veces da
   lo mismo.
   ========================= */

func (ctl *EvaluationController) GetAggregate(c *fiber.Ctx) error {
	assignmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	assignment, err := tribunalService.GetAssignment(ctl.DB, assignmentID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	tribunal, err := tribunalService.GetTribunal(ctl.DB, assignment.TribunalID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	cp, err := cpService.GetCareerPeriod(ctl.DB, tribunal.CareerPeriodID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := helperAuth.EnsureCareerAdmin(c, cp.CareerID, "agregación"); err != nil {
		return helper.FromFiberError(c, err)
	}

	plan, err := service.ActivePlanOf(ctl.DB, tribunal.CareerPeriodID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	items, err := service.ActiveItemsOf(ctl.DB, plan.EvaluationPlanID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo cargar el plan")
	}
	planItems, err := service.AssemblePlanItems(ctl.DB, assignment.ID, items)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	agg, err := service.AggregatePlan(planItems, cp.PassThreshold)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.AggregateFromService(agg))
}
