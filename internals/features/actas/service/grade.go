// file: internals/features/actas/service/grade.go
package service

/* =========================================================
   Banda cualitativa ecuatoriana sobre la escala 0–20.
========================================================= */

const (
	GradeSobresaliente = "Sobresaliente"
	GradeMuyBuena      = "Muy Buena"
	GradeBuena         = "Buena"
	GradeRegular       = "Regular"
	GradeInsuficiente  = "Insuficiente"
)

// GradeText: texto cualitativo de la nota final.
func GradeText(final float64) string {
	switch {
	case final >= 19:
		return GradeSobresaliente
	case final >= 16:
		return GradeMuyBuena
	case final >= 14:
		return GradeBuena
	case final >= 12:
		return GradeRegular
	default:
		return GradeInsuficiente
	}
}
