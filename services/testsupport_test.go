package services

import (
	"context"
	"os"
	"testing"
	"time"

	"randevu.link/configs/configslog"
	"randevu.link/models"
	"randevu.link/pkg/queryparams"
	"randevu.link/repositories"
)

func TestMain(m *testing.M) {
	configslog.InitLogger()
	os.Exit(m.Run())
}

// --- Sahte repository'ler ---

type fakeChildRepo struct {
	children map[uint]*models.Child
}

func (f *fakeChildRepo) Create(ctx context.Context, child *models.Child) error {
	if f.children == nil {
		f.children = map[uint]*models.Child{}
	}
	if child.ID == 0 {
		child.ID = uint(len(f.children) + 1)
	}
	f.children[child.ID] = child
	return nil
}

func (f *fakeChildRepo) FindByID(ctx context.Context, id uint) (*models.Child, error) {
	if child, ok := f.children[id]; ok {
		return child, nil
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeChildRepo) FindByBirthCertificate(ctx context.Context, series, number string) (*models.Child, error) {
	for _, child := range f.children {
		if child.BirthCertificateSeries == series && child.BirthCertificateNumber == number {
			return child, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeChildRepo) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Child, int64, error) {
	return nil, 0, nil
}

func (f *fakeChildRepo) Update(ctx context.Context, child *models.Child) error { return nil }

func (f *fakeChildRepo) Delete(ctx context.Context, child *models.Child, deletedByUserID uint) error {
	return nil
}

type fakeServiceRepo struct {
	services map[uint]*models.Service
}

func (f *fakeServiceRepo) Create(ctx context.Context, service *models.Service) error {
	if f.services == nil {
		f.services = map[uint]*models.Service{}
	}
	if service.ID == 0 {
		service.ID = uint(len(f.services) + 1)
	}
	f.services[service.ID] = service
	return nil
}

func (f *fakeServiceRepo) FindByID(ctx context.Context, id uint) (*models.Service, error) {
	if service, ok := f.services[id]; ok {
		return service, nil
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeServiceRepo) FindByName(ctx context.Context, name string) (*models.Service, error) {
	for _, service := range f.services {
		if service.Name == name {
			return service, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeServiceRepo) FindByIDs(ctx context.Context, ids []uint) ([]models.Service, error) {
	var out []models.Service
	seen := map[uint]struct{}{}
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		if service, ok := f.services[id]; ok {
			out = append(out, *service)
		}
	}
	return out, nil
}

func (f *fakeServiceRepo) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Service, int64, error) {
	return nil, 0, nil
}

func (f *fakeServiceRepo) Update(ctx context.Context, service *models.Service) error { return nil }

func (f *fakeServiceRepo) Delete(ctx context.Context, service *models.Service, deletedByUserID uint) error {
	return nil
}

type fakeScheduleRepo struct {
	schedules map[uint]*models.Schedule
	createErr error
	deleted   []uint
}

func (f *fakeScheduleRepo) Create(ctx context.Context, schedule *models.Schedule) error {
	if f.createErr != nil {
		return f.createErr
	}
	if f.schedules == nil {
		f.schedules = map[uint]*models.Schedule{}
	}
	if schedule.ID == 0 {
		schedule.ID = uint(len(f.schedules) + 1)
	}
	f.schedules[schedule.ID] = schedule
	return nil
}

func (f *fakeScheduleRepo) FindByID(ctx context.Context, id uint) (*models.Schedule, error) {
	if schedule, ok := f.schedules[id]; ok {
		return schedule, nil
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeScheduleRepo) FindByIDForUpdate(ctx context.Context, id uint) (*models.Schedule, error) {
	return f.FindByID(ctx, id)
}

func (f *fakeScheduleRepo) FindBySpecialistAndDate(ctx context.Context, specialistID uint, date time.Time) (*models.Schedule, error) {
	for _, schedule := range f.schedules {
		if schedule.SpecialistID == specialistID && sameDate(schedule.Date, date) {
			return schedule, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeScheduleRepo) FindAll(ctx context.Context) ([]models.Schedule, error) {
	var out []models.Schedule
	for _, schedule := range f.schedules {
		out = append(out, *schedule)
	}
	return out, nil
}

func (f *fakeScheduleRepo) FindAllActive(ctx context.Context) ([]models.Schedule, error) {
	var out []models.Schedule
	for _, schedule := range f.schedules {
		if schedule.Active {
			out = append(out, *schedule)
		}
	}
	return out, nil
}

func (f *fakeScheduleRepo) CountBySpecialistID(ctx context.Context, specialistID uint) (int64, error) {
	var count int64
	for _, schedule := range f.schedules {
		if schedule.SpecialistID == specialistID {
			count++
		}
	}
	return count, nil
}

func (f *fakeScheduleRepo) Delete(ctx context.Context, schedule *models.Schedule, deletedByUserID uint) error {
	if _, ok := f.schedules[schedule.ID]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.schedules, schedule.ID)
	f.deleted = append(f.deleted, schedule.ID)
	return nil
}

type fakeReservationRepo struct {
	reservations []models.Reservation
	createErr    error

	lastDate      time.Time
	lastStart     time.Time
	lastEnd       time.Time
	byDateResult  []models.Reservation
	byRangeResult []models.Reservation
}

func (f *fakeReservationRepo) Create(ctx context.Context, reservation *models.Reservation) error {
	if f.createErr != nil {
		return f.createErr
	}
	reservation.ID = uint(len(f.reservations) + 1)
	f.reservations = append(f.reservations, *reservation)
	return nil
}

func (f *fakeReservationRepo) FindByID(ctx context.Context, id uint) (*models.Reservation, error) {
	for i := range f.reservations {
		if f.reservations[i].ID == id {
			return &f.reservations[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeReservationRepo) FindByCode(ctx context.Context, code string) (*models.Reservation, error) {
	for i := range f.reservations {
		if f.reservations[i].Code == code {
			return &f.reservations[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeReservationRepo) FindAll(ctx context.Context) ([]models.Reservation, error) {
	return f.reservations, nil
}

func (f *fakeReservationRepo) FindAllByScheduleDate(ctx context.Context, date time.Time) ([]models.Reservation, error) {
	f.lastDate = date
	return f.byDateResult, nil
}

func (f *fakeReservationRepo) FindAllByScheduleDateRange(ctx context.Context, start, end time.Time) ([]models.Reservation, error) {
	f.lastStart, f.lastEnd = start, end
	return f.byRangeResult, nil
}

type fakeSpecialistRepo struct {
	specialists map[uint]*models.Specialist
}

func (f *fakeSpecialistRepo) Create(ctx context.Context, specialist *models.Specialist) error {
	if f.specialists == nil {
		f.specialists = map[uint]*models.Specialist{}
	}
	if specialist.ID == 0 {
		specialist.ID = uint(len(f.specialists) + 1)
	}
	f.specialists[specialist.ID] = specialist
	return nil
}

func (f *fakeSpecialistRepo) FindByID(ctx context.Context, id uint) (*models.Specialist, error) {
	if specialist, ok := f.specialists[id]; ok {
		return specialist, nil
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeSpecialistRepo) FindByName(ctx context.Context, name string) (*models.Specialist, error) {
	for _, specialist := range f.specialists {
		if specialist.Name == name {
			return specialist, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeSpecialistRepo) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Specialist, int64, error) {
	return nil, 0, nil
}

func (f *fakeSpecialistRepo) Update(ctx context.Context, specialist *models.Specialist) error {
	return nil
}

func (f *fakeSpecialistRepo) Delete(ctx context.Context, specialist *models.Specialist, deletedByUserID uint) error {
	return nil
}

type fakeUserRepo struct {
	users map[uint]*models.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	if f.users == nil {
		f.users = map[uint]*models.User{}
	}
	if user.ID == 0 {
		user.ID = uint(len(f.users) + 1)
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	if user, ok := f.users[id]; ok {
		return user, nil
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeUserRepo) Update(ctx context.Context, user *models.User) error {
	f.users[user.ID] = user
	return nil
}

// fakeTxManager transaction açmadan verilen fonksiyonu doğrudan çalıştırır.
type fakeTxManager struct {
	schedules    repositories.IScheduleRepository
	reservations repositories.IReservationRepository
}

func (f *fakeTxManager) WithTx(ctx context.Context, fn func(ctx context.Context, repos repositories.TxRepositories) error) error {
	return fn(ctx, repositories.TxRepositories{
		Schedules:    f.schedules,
		Reservations: f.reservations,
	})
}

var (
	_ repositories.IChildRepository       = (*fakeChildRepo)(nil)
	_ repositories.IServiceRepository     = (*fakeServiceRepo)(nil)
	_ repositories.IScheduleRepository    = (*fakeScheduleRepo)(nil)
	_ repositories.IReservationRepository = (*fakeReservationRepo)(nil)
	_ repositories.ISpecialistRepository  = (*fakeSpecialistRepo)(nil)
	_ repositories.IUserRepository        = (*fakeUserRepo)(nil)
	_ repositories.ITxManager             = (*fakeTxManager)(nil)
)
