package services

import (
	"context"
	"testing"
	"time"

	"randevu.link/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reservationFixture struct {
	service         *ReservationService
	childRepo       *fakeChildRepo
	serviceRepo     *fakeServiceRepo
	scheduleRepo    *fakeScheduleRepo
	reservationRepo *fakeReservationRepo

	child    *models.Child
	catalog  *models.Service
	schedule *models.Schedule
}

// newReservationFixture tek uzmanlı, 2019-08-12 günü 08:00-13:00 arası
// 15 dakikalık slotlarla çalışan bir takvim kurar.
func newReservationFixture(t *testing.T) *reservationFixture {
	t.Helper()
	ctx := context.Background()

	childRepo := &fakeChildRepo{}
	serviceRepo := &fakeServiceRepo{}
	scheduleRepo := &fakeScheduleRepo{}
	reservationRepo := &fakeReservationRepo{}

	child := &models.Child{
		FirstName:              "Ayşe",
		LastName:               "Yılmaz",
		BirthCertificateSeries: "AB",
		BirthCertificateNumber: "123456",
	}
	require.NoError(t, childRepo.Create(ctx, child))

	catalog := &models.Service{Name: "Anaokulu Kaydı", Active: true}
	require.NoError(t, serviceRepo.Create(ctx, catalog))

	schedule := testSchedule()
	schedule.SpecialistID = 1
	schedule.Services = []models.Service{*catalog}
	require.NoError(t, scheduleRepo.Create(ctx, schedule))

	svc := &ReservationService{
		childRepo:       childRepo,
		serviceRepo:     serviceRepo,
		reservationRepo: reservationRepo,
		txManager:       &fakeTxManager{schedules: scheduleRepo, reservations: reservationRepo},
	}

	return &reservationFixture{
		service:         svc,
		childRepo:       childRepo,
		serviceRepo:     serviceRepo,
		scheduleRepo:    scheduleRepo,
		reservationRepo: reservationRepo,
		child:           child,
		catalog:         catalog,
		schedule:        schedule,
	}
}

func (f *reservationFixture) request(dateTime time.Time) BookingRequest {
	return BookingRequest{
		DateTime:   dateTime,
		ScheduleID: f.schedule.ID,
		ServiceID:  f.catalog.ID,
		ChildID:    f.child.ID,
	}
}

func TestAddReservationSuccess(t *testing.T) {
	f := newReservationFixture(t)
	ctx := context.Background()

	reservation, err := f.service.AddReservation(ctx, f.request(at(9, 15)))
	require.NoError(t, err)
	require.NotNil(t, reservation)

	assert.Equal(t, f.schedule.ID, reservation.ScheduleID)
	assert.Equal(t, f.catalog.ID, reservation.ServiceID)
	assert.Equal(t, f.child.ID, reservation.ChildID)
	assert.True(t, reservation.Active)
	assert.Equal(t, f.child.FirstName, reservation.Child.FirstName)
	assert.Equal(t, f.catalog.Name, reservation.Service.Name)

	// Yeni kayıt takvimin rezervasyon listesine de eklenmiş olmalı.
	require.Len(t, f.schedule.Reservations, 1)
	assert.Equal(t, reservation.ID, f.schedule.Reservations[0].ID)
}

func TestAddReservationSlotTakenTwice(t *testing.T) {
	f := newReservationFixture(t)
	ctx := context.Background()

	_, err := f.service.AddReservation(ctx, f.request(at(9, 15)))
	require.NoError(t, err)

	_, err = f.service.AddReservation(ctx, f.request(at(9, 15)))
	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)

	// Dolu aralığın içi de reddedilir, üst sınırı kabul edilir.
	_, err = f.service.AddReservation(ctx, f.request(at(9, 20)))
	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)

	_, err = f.service.AddReservation(ctx, f.request(at(9, 30)))
	assert.NoError(t, err)
}

func TestAddReservationUnknownReferences(t *testing.T) {
	f := newReservationFixture(t)
	ctx := context.Background()

	req := f.request(at(9, 0))
	req.ChildID = 999
	_, err := f.service.AddReservation(ctx, req)
	assert.ErrorIs(t, err, ErrChildNotFound)

	req = f.request(at(9, 0))
	req.ServiceID = 999
	_, err = f.service.AddReservation(ctx, req)
	assert.ErrorIs(t, err, ErrServiceNotFound)

	req = f.request(at(9, 0))
	req.ScheduleID = 999
	_, err = f.service.AddReservation(ctx, req)
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestAddReservationServiceNotOnSchedule(t *testing.T) {
	f := newReservationFixture(t)
	ctx := context.Background()

	other := &models.Service{Name: "Genel Danışmanlık", Active: true}
	require.NoError(t, f.serviceRepo.Create(ctx, other))

	req := f.request(at(9, 0))
	req.ServiceID = other.ID
	_, err := f.service.AddReservation(ctx, req)
	assert.ErrorIs(t, err, ErrServiceNotAllowed)

	// Başarısız denemeden sonra hiçbir kayıt kalmamalı.
	assert.Empty(t, f.reservationRepo.reservations)
	assert.Empty(t, f.schedule.Reservations)
}

func TestAddReservationTimeOutsideWindow(t *testing.T) {
	f := newReservationFixture(t)
	ctx := context.Background()

	_, err := f.service.AddReservation(ctx, f.request(at(7, 59)))
	assert.ErrorIs(t, err, ErrReservationTimeInvalid)

	assert.Empty(t, f.reservationRepo.reservations)
}

func TestFindReservationByCodeNotFound(t *testing.T) {
	f := newReservationFixture(t)

	_, err := f.service.FindReservationByCode(context.Background(), "yok-boyle-kod")
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestFindReservationByDateRejectsZero(t *testing.T) {
	f := newReservationFixture(t)

	_, err := f.service.FindReservationByDate(context.Background(), time.Time{})
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestFindReservationByPeriodRejectsZeroBounds(t *testing.T) {
	f := newReservationFixture(t)
	ctx := context.Background()
	day := time.Date(2019, 8, 12, 0, 0, 0, 0, time.UTC)

	_, err := f.service.FindReservationByPeriod(ctx, time.Time{}, day)
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = f.service.FindReservationByPeriod(ctx, day, time.Time{})
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestGetReservationsArgumentCombinations(t *testing.T) {
	f := newReservationFixture(t)
	ctx := context.Background()

	day := time.Date(2019, 8, 12, 0, 0, 0, 0, time.UTC)
	end := day.AddDate(0, 0, 7)

	// Filtre yok → tümü.
	_, err := f.service.GetReservations(ctx, nil, nil, nil)
	assert.NoError(t, err)

	// Sadece date → tek gün sorgusu.
	_, err = f.service.GetReservations(ctx, &day, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, day, f.reservationRepo.lastDate)

	// Sadece start+end → aralık sorgusu.
	_, err = f.service.GetReservations(ctx, nil, &day, &end)
	require.NoError(t, err)
	assert.Equal(t, day, f.reservationRepo.lastStart)
	assert.Equal(t, end, f.reservationRepo.lastEnd)

	// Geçersiz kombinasyonlar.
	for _, args := range []struct {
		date, start, end *time.Time
	}{
		{&day, &day, nil},
		{&day, nil, &end},
		{&day, &day, &end},
		{nil, &day, nil},
		{nil, nil, &end},
	} {
		_, err := f.service.GetReservations(ctx, args.date, args.start, args.end)
		assert.ErrorIs(t, err, ErrInvalidQueryArguments)
	}
}

func TestGetReservationsInvertedPeriodReturnsEmpty(t *testing.T) {
	f := newReservationFixture(t)
	ctx := context.Background()

	start := time.Date(2019, 8, 20, 0, 0, 0, 0, time.UTC)
	end := time.Date(2019, 8, 12, 0, 0, 0, 0, time.UTC)

	// Ters aralık hata değildir; veritabanı sorgusu boş liste döndürür.
	reservations, err := f.service.FindReservationByPeriod(ctx, start, end)
	require.NoError(t, err)
	assert.Empty(t, reservations)
}
