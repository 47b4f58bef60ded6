package services

import (
	"context"
	"io"

	"github.com/waqarulwahab/autoport/internal/client/api"
	"github.com/waqarulwahab/autoport/internal/client/models"
	"github.com/waqarulwahab/autoport/internal/client/query"
	"github.com/waqarulwahab/autoport/internal/client/session"
	"github.com/waqarulwahab/autoport/internal/common"
)

// fakeAPI implements api.Client. A nil function field makes the call
// fail with common.ErrUnavailable, which doubles as the "backend down"
// switch for fallback tests.
type fakeAPI struct {
	loginFn  func(email, password string) (*models.Session, error)
	logoutFn func() error

	listFn   func() ([]models.Car, error)
	getFn    func(id int64) (*models.Car, error)
	createFn func(car *models.Car) (*models.Car, error)
	updateFn func(car *models.Car) (*models.Car, error)
	deleteFn func(id int64) error
	statsFn  func() (*query.Stats, error)
	searchFn func(q string) ([]models.Car, error)

	changePasswordFn func(current, newPassword, confirm string) error
}

func errUnavailable() error {
	return &api.RequestError{Message: "server unavailable", Err: common.ErrUnavailable}
}

func (f *fakeAPI) Login(_ context.Context, email, password string) (*models.Session, error) {
	if f.loginFn == nil {
		return nil, errUnavailable()
	}
	return f.loginFn(email, password)
}

func (f *fakeAPI) Register(_ context.Context, req api.RegisterRequest) (*models.Session, error) {
	return &models.Session{Token: "reg-token", Email: req.Email}, nil
}

func (f *fakeAPI) Logout(_ context.Context) error {
	if f.logoutFn == nil {
		return errUnavailable()
	}
	return f.logoutFn()
}

func (f *fakeAPI) ListCars(_ context.Context) ([]models.Car, error) {
	if f.listFn == nil {
		return nil, errUnavailable()
	}
	return f.listFn()
}

func (f *fakeAPI) GetCar(_ context.Context, id int64) (*models.Car, error) {
	if f.getFn == nil {
		return nil, errUnavailable()
	}
	return f.getFn(id)
}

func (f *fakeAPI) CreateCar(_ context.Context, car *models.Car) (*models.Car, error) {
	if f.createFn == nil {
		return nil, errUnavailable()
	}
	return f.createFn(car)
}

func (f *fakeAPI) UpdateCar(_ context.Context, car *models.Car) (*models.Car, error) {
	if f.updateFn == nil {
		return nil, errUnavailable()
	}
	return f.updateFn(car)
}

func (f *fakeAPI) DeleteCar(_ context.Context, id int64) error {
	if f.deleteFn == nil {
		return errUnavailable()
	}
	return f.deleteFn(id)
}

func (f *fakeAPI) RecentActivities(_ context.Context, limit int) ([]models.Activity, error) {
	return []models.Activity{{ID: 1, Action: "car_created"}}, nil
}

func (f *fakeAPI) ListExports(_ context.Context) ([]models.Export, error) { return nil, nil }
func (f *fakeAPI) CreateExport(_ context.Context, exp *models.Export) (*models.Export, error) {
	return exp, nil
}
func (f *fakeAPI) UpdateExportStatus(_ context.Context, id int64, status string) error { return nil }
func (f *fakeAPI) DeleteExport(_ context.Context, id int64) error                      { return nil }

func (f *fakeAPI) DashboardStats(_ context.Context) (*query.Stats, error) {
	if f.statsFn == nil {
		return nil, errUnavailable()
	}
	return f.statsFn()
}

func (f *fakeAPI) Search(_ context.Context, q string) ([]models.Car, error) {
	if f.searchFn == nil {
		return nil, errUnavailable()
	}
	return f.searchFn(q)
}

func (f *fakeAPI) Profile(_ context.Context) (*models.User, error) { return &models.User{}, nil }
func (f *fakeAPI) UpdateProfile(_ context.Context, u *models.User) (*models.User, error) {
	return u, nil
}

func (f *fakeAPI) ChangePassword(_ context.Context, current, newPassword, confirm string) error {
	if f.changePasswordFn == nil {
		return errUnavailable()
	}
	return f.changePasswordFn(current, newPassword, confirm)
}

func (f *fakeAPI) EmailPreferences(_ context.Context) (*models.EmailPreferences, error) {
	return &models.EmailPreferences{}, nil
}
func (f *fakeAPI) UpdateEmailPreferences(_ context.Context, p *models.EmailPreferences) error {
	return nil
}
func (f *fakeAPI) SystemPreferences(_ context.Context) (*models.SystemPreferences, error) {
	return &models.SystemPreferences{}, nil
}
func (f *fakeAPI) UpdateSystemPreferences(_ context.Context, p *models.SystemPreferences) error {
	return nil
}

func (f *fakeAPI) UploadImage(_ context.Context, filename string, r io.Reader) (string, error) {
	return "https://cdn.example.org/" + filename, nil
}

// memMeta is an in-memory metadata repository backing the session store
// in tests.
type memMeta struct {
	data map[string][]byte
}

func newMemMeta() *memMeta { return &memMeta{data: map[string][]byte{}} }

func (m *memMeta) Get(_ context.Context, key string) ([]byte, error) { return m.data[key], nil }
func (m *memMeta) Set(_ context.Context, key string, value []byte) error {
	m.data[key] = value
	return nil
}
func (m *memMeta) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}
func (m *memMeta) Clear(_ context.Context) error {
	m.data = map[string][]byte{}
	return nil
}

func newTestStore() *session.Store { return session.NewStore(newMemMeta()) }

// memCars is an in-memory cars repository preserving insertion order.
type memCars struct {
	items []models.Car
}

func (m *memCars) GetAll(_ context.Context) ([]models.Car, error) {
	return append([]models.Car(nil), m.items...), nil
}

func (m *memCars) GetByID(_ context.Context, id int64) (*models.Car, error) {
	for i := range m.items {
		if m.items[i].ID == id {
			c := m.items[i]
			return &c, nil
		}
	}
	return nil, common.ErrNotFound
}

func (m *memCars) CreateOrUpdate(_ context.Context, car *models.Car) error {
	for i := range m.items {
		if m.items[i].ID == car.ID {
			m.items[i] = *car
			return nil
		}
	}
	m.items = append(m.items, *car)
	return nil
}

func (m *memCars) DeleteByID(_ context.Context, id int64) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return common.ErrNotFound
}

func (m *memCars) ReplaceAll(_ context.Context, cars []models.Car) error {
	m.items = append([]models.Car(nil), cars...)
	return nil
}

func (m *memCars) Count(_ context.Context) (int, error) { return len(m.items), nil }
