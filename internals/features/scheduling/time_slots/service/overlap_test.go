// file: internals/features/scheduling/time_slots/service/overlap_test.go
package service

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"titulacion_backend/internals/helpers/dbtime"
)

func tod(t *testing.T, s string) dbtime.Tod {
	t.Helper()
	v, err := dbtime.Parse(s)
	require.NoError(t, err)
	return v
}

func win(t *testing.T, start, end string) Window {
	t.Helper()
	return Window{ID: uuid.New(), Start: tod(t, start), End: tod(t, end)}
}

func TestOverlaps(t *testing.T) {
	base := win(t, "09:00", "10:00")

	cases := []struct {
		name  string
		other Window
		want  bool
	}{
		{"solape parcial por la derecha", win(t, "09:30", "10:30"), true},
		{"solape parcial por la izquierda", win(t, "08:30", "09:30"), true},
		{"contenida", win(t, "09:15", "09:45"), true},
		{"contenedora", win(t, "08:00", "11:00"), true},
		{"identica", win(t, "09:00", "10:00"), true},
		{"borde exacto al final no es solape", win(t, "10:00", "11:00"), false},
		{"borde exacto al inicio no es solape", win(t, "08:00", "09:00"), false},
		{"disjunta", win(t, "11:00", "12:00"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(base, tc.other))
			assert.Equal(t, tc.want, Overlaps(tc.other, base), "el predicado debe ser simétrico")
		})
	}
}

func TestFirstOverlap_ExcluyeSelf(t *testing.T) {
	a := win(t, "09:00", "10:00")
	b := win(t, "10:00", "11:00")
	existing := []Window{a, b}

	// update de la propia franja: no choca consigo misma
	cand := Window{ID: a.ID, Start: tod(t, "09:00"), End: tod(t, "10:30")}
	_, found := FirstOverlap(existing, cand, a.ID)
	assert.False(t, found, "una franja nunca se solapa consigo misma")

	// pero sigue chocando con otras
	cand2 := Window{ID: a.ID, Start: tod(t, "09:00"), End: tod(t, "10:31")}
	hit, found := FirstOverlap(existing, cand2, a.ID)
	require.True(t, found)
	assert.Equal(t, b.ID, hit.ID)
}

// Escenario de agenda completo: 09:00–10:00 ya reservada.
func TestFirstOverlap_EscenarioAgenda(t *testing.T) {
	booked := win(t, "09:00", "10:00")
	existing := []Window{booked}

	// 09:30–10:30 debe chocar
	_, found := FirstOverlap(existing, win(t, "09:30", "10:30"), uuid.Nil)
	assert.True(t, found)

	// 10:00–11:00 toca el borde: permitido
	_, found = FirstOverlap(existing, win(t, "10:00", "11:00"), uuid.Nil)
	assert.False(t, found)
}

// Propiedad: para cualquier par activo a,b del mismo día vale
// a == b || a.end <= b.start || b.end <= a.start.
func TestNoOverlapInvariant(t *testing.T) {
	slots := []Window{
		win(t, "08:00", "09:00"),
		win(t, "09:00", "10:00"),
		win(t, "10:00", "11:30"),
		win(t, "13:00", "14:00"),
	}
	for i, a := range slots {
		for j, b := range slots {
			if i == j {
				continue
			}
			disjoint := a.End.Seconds() <= b.Start.Seconds() || b.End.Seconds() <= a.Start.Seconds()
			assert.True(t, disjoint, "las franjas %d y %d deben ser disjuntas", i, j)
			assert.False(t, Overlaps(a, b))
		}
	}
}

func TestValidateInterval(t *testing.T) {
	assert.NoError(t, ValidateInterval(tod(t, "09:00"), tod(t, "10:00")))

	err := ValidateInterval(tod(t, "10:00"), tod(t, "10:00"))
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusUnprocessableEntity, fe.Code)

	err = ValidateInterval(tod(t, "11:00"), tod(t, "10:00"))
	require.Error(t, err)
}
