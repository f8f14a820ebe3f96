package services

import (
	"context"
	"testing"
	"time"

	"randevu.link/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scheduleFixture struct {
	service        *ScheduleService
	scheduleRepo   *fakeScheduleRepo
	specialistRepo *fakeSpecialistRepo
	serviceRepo    *fakeServiceRepo

	specialist *models.Specialist
	catalog    *models.Service
}

func newScheduleFixture(t *testing.T) *scheduleFixture {
	t.Helper()
	ctx := context.Background()

	scheduleRepo := &fakeScheduleRepo{}
	specialistRepo := &fakeSpecialistRepo{}
	serviceRepo := &fakeServiceRepo{}

	specialist := &models.Specialist{Name: "Dr. Mehmet Kaya", RoomNumber: "101", Active: true, OrganizationID: 1}
	require.NoError(t, specialistRepo.Create(ctx, specialist))

	catalog := &models.Service{Name: "Okul Kaydı", Active: true}
	require.NoError(t, serviceRepo.Create(ctx, catalog))

	svc := &ScheduleService{
		scheduleRepo:   scheduleRepo,
		specialistRepo: specialistRepo,
		serviceRepo:    serviceRepo,
		// Testler sabit bir "bugün" üzerinden çalışır.
		now: func() time.Time { return time.Date(2019, 8, 1, 10, 30, 0, 0, time.UTC) },
	}

	return &scheduleFixture{
		service:        svc,
		scheduleRepo:   scheduleRepo,
		specialistRepo: specialistRepo,
		serviceRepo:    serviceRepo,
		specialist:     specialist,
		catalog:        catalog,
	}
}

func (f *scheduleFixture) validInput() ScheduleInput {
	return ScheduleInput{
		SpecialistID:    f.specialist.ID,
		Date:            time.Date(2019, 8, 12, 0, 0, 0, 0, time.UTC),
		ServiceIDs:      []uint{f.catalog.ID},
		StartTime:       "08:00",
		EndTime:         "13:00",
		IntervalMinutes: 15,
		Active:          true,
	}
}

func TestAddScheduleSuccess(t *testing.T) {
	f := newScheduleFixture(t)

	schedule, err := f.service.AddSchedule(context.Background(), f.validInput())
	require.NoError(t, err)
	require.NotNil(t, schedule)

	assert.Equal(t, f.specialist.ID, schedule.SpecialistID)
	assert.Equal(t, "08:00", schedule.StartTime)
	assert.Equal(t, "13:00", schedule.EndTime)
	assert.Equal(t, 15, schedule.IntervalMinutes)
	assert.Equal(t, f.specialist.Name, schedule.Specialist.Name)
	require.Len(t, schedule.Services, 1)
	assert.Equal(t, f.catalog.ID, schedule.Services[0].ID)
	assert.Empty(t, schedule.Reservations)
}

func TestAddScheduleValidation(t *testing.T) {
	f := newScheduleFixture(t)
	ctx := context.Background()

	cases := []struct {
		name    string
		mutate  func(*ScheduleInput)
		wantErr error
	}{
		{"uzman seçilmemiş", func(in *ScheduleInput) { in.SpecialistID = 0 }, ErrScheduleInvalidInput},
		{"gün boş", func(in *ScheduleInput) { in.Date = time.Time{} }, ErrScheduleInvalidInput},
		{"hizmet listesi boş", func(in *ScheduleInput) { in.ServiceIDs = nil }, ErrScheduleInvalidInput},
		{"bozuk başlangıç saati", func(in *ScheduleInput) { in.StartTime = "8am" }, ErrScheduleInvalidInput},
		{"bozuk bitiş saati", func(in *ScheduleInput) { in.EndTime = "25:00" }, ErrScheduleInvalidInput},
		{"başlangıç bitişten sonra", func(in *ScheduleInput) { in.StartTime, in.EndTime = "14:00", "09:00" }, ErrScheduleInvalidInput},
		{"başlangıç bitişe eşit", func(in *ScheduleInput) { in.StartTime, in.EndTime = "09:00", "09:00" }, ErrScheduleInvalidInput},
		{"aralık çok kısa", func(in *ScheduleInput) { in.IntervalMinutes = 4 }, ErrScheduleInvalidInput},
		{"aralık çok uzun", func(in *ScheduleInput) { in.IntervalMinutes = 61 }, ErrScheduleInvalidInput},
		{"gün geçmişte", func(in *ScheduleInput) { in.Date = time.Date(2019, 7, 31, 0, 0, 0, 0, time.UTC) }, ErrScheduleDateInPast},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := f.validInput()
			tc.mutate(&input)
			_, err := f.service.AddSchedule(ctx, input)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestAddScheduleAllowsToday(t *testing.T) {
	f := newScheduleFixture(t)

	input := f.validInput()
	input.Date = time.Date(2019, 8, 1, 0, 0, 0, 0, time.UTC) // "bugün"

	_, err := f.service.AddSchedule(context.Background(), input)
	assert.NoError(t, err)
}

func TestAddScheduleUnknownSpecialist(t *testing.T) {
	f := newScheduleFixture(t)

	input := f.validInput()
	input.SpecialistID = 999
	_, err := f.service.AddSchedule(context.Background(), input)
	assert.ErrorIs(t, err, ErrSpecialistNotFound)
}

func TestAddScheduleUnknownService(t *testing.T) {
	f := newScheduleFixture(t)

	input := f.validInput()
	input.ServiceIDs = []uint{f.catalog.ID, 999}
	_, err := f.service.AddSchedule(context.Background(), input)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestAddScheduleDuplicateDay(t *testing.T) {
	f := newScheduleFixture(t)
	ctx := context.Background()

	_, err := f.service.AddSchedule(ctx, f.validInput())
	require.NoError(t, err)

	_, err = f.service.AddSchedule(ctx, f.validInput())
	assert.ErrorIs(t, err, ErrScheduleAlreadyExists)
}

func TestAddScheduleDifferentDaysSameSpecialist(t *testing.T) {
	f := newScheduleFixture(t)
	ctx := context.Background()

	_, err := f.service.AddSchedule(ctx, f.validInput())
	require.NoError(t, err)

	input := f.validInput()
	input.Date = input.Date.AddDate(0, 0, 1)
	_, err = f.service.AddSchedule(ctx, input)
	assert.NoError(t, err)
}

func TestRemoveSchedule(t *testing.T) {
	f := newScheduleFixture(t)
	ctx := context.Background()

	schedule, err := f.service.AddSchedule(ctx, f.validInput())
	require.NoError(t, err)

	require.NoError(t, f.service.RemoveSchedule(ctx, schedule.ID, 1))
	assert.Contains(t, f.scheduleRepo.deleted, schedule.ID)

	err = f.service.RemoveSchedule(ctx, schedule.ID, 1)
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestGetActiveSchedulesFiltersInactive(t *testing.T) {
	f := newScheduleFixture(t)
	ctx := context.Background()

	active, err := f.service.AddSchedule(ctx, f.validInput())
	require.NoError(t, err)

	inactiveInput := f.validInput()
	inactiveInput.Date = inactiveInput.Date.AddDate(0, 0, 1)
	inactiveInput.Active = false
	_, err = f.service.AddSchedule(ctx, inactiveInput)
	require.NoError(t, err)

	all, err := f.service.GetSchedules(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	onlyActive, err := f.service.GetActiveSchedules(ctx)
	require.NoError(t, err)
	require.Len(t, onlyActive, 1)
	assert.Equal(t, active.ID, onlyActive[0].ID)
}
