package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"randevu.link/models"
)

// ConflictServiceError slot doğrulama ve çakışma hataları.
type ConflictServiceError string

func (e ConflictServiceError) Error() string { return string(e) }

const (
	ErrReservationTimeInvalid ConflictServiceError = "istenen tarih/saat takvim penceresine uymuyor"
	ErrSlotAlreadyBooked      ConflictServiceError = "istenen slot dolu"
)

// parseClock "HH:MM" formatındaki saati gün içi dakikaya çevirir.
func parseClock(value string) (int, error) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("geçersiz saat formatı: %q", value)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("geçersiz saat formatı: %q", value)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("geçersiz saat formatı: %q", value)
	}
	return hour*60 + minute, nil
}

// sameDate iki zamanın takvim gününün aynı olup olmadığını kontrol eder.
func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// CheckTimeInSchedule istenen zamanın takvime uygunluğunu doğrular; yan etkisizdir.
//
// ErrReservationTimeInvalid: zaman boş, takvimin gününden farklı ya da
// [StartTime, EndTime] penceresinin dışında.
// ErrSlotAlreadyBooked: istenen an, takvime bağlı aktif bir rezervasyonun
// kapladığı [r.DateTime, r.DateTime + aralık) yarı açık aralığına düşüyor.
// Tam r.DateTime anı reddedilir, tam r.DateTime + aralık anı kabul edilir;
// arka arkaya slotlar çakışma sayılmaz.
func CheckTimeInSchedule(schedule *models.Schedule, wanted time.Time) error {
	if schedule == nil || wanted.IsZero() {
		return ErrReservationTimeInvalid
	}
	if !sameDate(wanted, schedule.Date) {
		return fmt.Errorf("%w: takvim günü %s", ErrReservationTimeInvalid, schedule.Date.Format("2006-01-02"))
	}

	start, err := parseClock(schedule.StartTime)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReservationTimeInvalid, err)
	}
	end, err := parseClock(schedule.EndTime)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReservationTimeInvalid, err)
	}
	wantedMinute := wanted.Hour()*60 + wanted.Minute()
	if wantedMinute < start || wantedMinute > end {
		return fmt.Errorf("%w: pencere %s-%s", ErrReservationTimeInvalid, schedule.StartTime, schedule.EndTime)
	}

	interval := schedule.Interval()
	for i := range schedule.Reservations {
		existing := &schedule.Reservations[i]
		if !existing.Active {
			continue
		}
		if !wanted.Before(existing.DateTime) && wanted.Before(existing.OccupiedUntil(interval)) {
			return fmt.Errorf("%w: %s", ErrSlotAlreadyBooked, existing.DateTime.Format("15:04"))
		}
	}
	return nil
}
