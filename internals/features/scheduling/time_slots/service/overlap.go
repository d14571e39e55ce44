// file: internals/features/scheduling/time_slots/service/overlap.go
package service

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"titulacion_backend/internals/features/scheduling/time_slots/model"
	"titulacion_backend/internals/helpers/dbtime"
)

/* =========================================================
   Chequeo de solape de franjas. El predicado es puro para
   poder testearlo sin DB; el scan corre dentro de la misma
   transacción que el INSERT/UPDATE del caller.
========================================================= */

// Window: intervalo semiabierto [Start, End) dentro de un día.
type Window struct {
	ID    uuid.UUID
	Start dbtime.Tod
	End   dbtime.Tod
}

// Overlaps: solape semiabierto — tocar el borde no es conflicto.
func Overlaps(a, b Window) bool {
	return a.Start.Seconds() < b.End.Seconds() && a.End.Seconds() > b.Start.Seconds()
}

// FirstOverlap: primera ventana existente que choca con cand,
// ignorando la propia franja en updates (selfID).
func FirstOverlap(existing []Window, cand Window, selfID uuid.UUID) (Window, bool) {
	for _, w := range existing {
		if w.ID == selfID {
			continue
		}
		if Overlaps(w, cand) {
			return w, true
		}
	}
	return Window{}, false
}

// ValidateInterval: regla básica start < end.
func ValidateInterval(start, end dbtime.Tod) error {
	if start.Seconds() >= end.Seconds() {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "La hora de inicio debe ser menor a la de fin")
	}
	return nil
}

// CheckNoOverlap: carga las franjas activas del (periodo, fecha) y aplica
// FirstOverlap. Debe llamarse dentro de la transacción del write.
func CheckNoOverlap(tx *gorm.DB, careerPeriodID uuid.UUID, date interface{}, cand Window, selfID uuid.UUID) error {
	var rows []model.TimeSlotModel
	if err := tx.
		Where("time_slot_career_period_id = ? AND time_slot_date = ? AND time_slot_is_active = TRUE", careerPeriodID, date).
		Find(&rows).Error; err != nil {
		return err
	}

	windows := make([]Window, 0, len(rows))
	for _, r := range rows {
		windows = append(windows, Window{ID: r.TimeSlotID, Start: r.TimeSlotStartTime, End: r.TimeSlotEndTime})
	}
	if w, ok := FirstOverlap(windows, cand, selfID); ok {
		return fiber.NewError(fiber.StatusConflict,
			fmt.Sprintf("La franja se solapa con otra activa (%s–%s, aula %s)",
				w.Start.Format("15:04"), w.End.Format("15:04"), roomOf(rows, w.ID)))
	}
	return nil
}

func roomOf(rows []model.TimeSlotModel, id uuid.UUID) string {
	for _, r := range rows {
		if r.TimeSlotID == id {
			return r.TimeSlotRoomLabel
		}
	}
	return "?"
}
