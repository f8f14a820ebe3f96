package services

import (
	"testing"
	"time"

	"randevu.link/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchedule(reservations ...models.Reservation) *models.Schedule {
	schedule := &models.Schedule{
		Date:            time.Date(2019, 8, 12, 0, 0, 0, 0, time.UTC),
		StartTime:       "08:00",
		EndTime:         "13:00",
		IntervalMinutes: 15,
		Active:          true,
		Reservations:    reservations,
	}
	for i := range schedule.Reservations {
		schedule.Reservations[i].Active = true
	}
	return schedule
}

func at(hour, minute int) time.Time {
	return time.Date(2019, 8, 12, hour, minute, 0, 0, time.UTC)
}

func TestParseClock(t *testing.T) {
	minutes, err := parseClock("09:45")
	require.NoError(t, err)
	assert.Equal(t, 9*60+45, minutes)

	for _, bad := range []string{"", "9", "24:00", "09:60", "ab:cd", "-1:30"} {
		_, err := parseClock(bad)
		assert.Error(t, err, "parseClock(%q) hatası bekleniyordu", bad)
	}
}

func TestCheckTimeInScheduleEmptySchedule(t *testing.T) {
	schedule := testSchedule()

	assert.NoError(t, CheckTimeInSchedule(schedule, at(9, 15)))
	assert.NoError(t, CheckTimeInSchedule(schedule, at(8, 0)))
	assert.NoError(t, CheckTimeInSchedule(schedule, at(13, 0)))
}

func TestCheckTimeInScheduleOutsideWindow(t *testing.T) {
	schedule := testSchedule()

	err := CheckTimeInSchedule(schedule, at(7, 59))
	assert.ErrorIs(t, err, ErrReservationTimeInvalid)

	err = CheckTimeInSchedule(schedule, at(13, 1))
	assert.ErrorIs(t, err, ErrReservationTimeInvalid)
}

func TestCheckTimeInScheduleWrongDay(t *testing.T) {
	schedule := testSchedule()

	err := CheckTimeInSchedule(schedule, time.Date(2019, 8, 13, 9, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrReservationTimeInvalid)
}

func TestCheckTimeInScheduleNilAndZero(t *testing.T) {
	assert.ErrorIs(t, CheckTimeInSchedule(nil, at(9, 0)), ErrReservationTimeInvalid)
	assert.ErrorIs(t, CheckTimeInSchedule(testSchedule(), time.Time{}), ErrReservationTimeInvalid)
}

func TestCheckTimeInScheduleConflict(t *testing.T) {
	schedule := testSchedule(models.Reservation{DateTime: at(9, 15)})

	// Dolu aralık [09:15, 09:30) yarı açıktır.
	assert.ErrorIs(t, CheckTimeInSchedule(schedule, at(9, 15)), ErrSlotAlreadyBooked)
	assert.ErrorIs(t, CheckTimeInSchedule(schedule, at(9, 20)), ErrSlotAlreadyBooked)
	assert.ErrorIs(t, CheckTimeInSchedule(schedule, at(9, 29)), ErrSlotAlreadyBooked)

	// Üst sınır aralığa dahil değildir; arka arkaya slotlar çakışmaz.
	assert.NoError(t, CheckTimeInSchedule(schedule, at(9, 30)))
	assert.NoError(t, CheckTimeInSchedule(schedule, at(9, 14)))
}

func TestCheckTimeInScheduleIgnoresInactiveReservations(t *testing.T) {
	schedule := testSchedule()
	schedule.Reservations = []models.Reservation{{DateTime: at(10, 0), Active: false}}

	assert.NoError(t, CheckTimeInSchedule(schedule, at(10, 0)))
}

func TestCheckTimeInScheduleBadWindowFormat(t *testing.T) {
	schedule := testSchedule()
	schedule.StartTime = "sekiz"

	assert.ErrorIs(t, CheckTimeInSchedule(schedule, at(9, 0)), ErrReservationTimeInvalid)
}
