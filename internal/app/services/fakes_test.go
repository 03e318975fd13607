package services

import (
	"context"
	"time"

	"github.com/yildiz/campuscms/internal/app/models"
	"github.com/yildiz/campuscms/internal/app/models/dto"
	"github.com/yildiz/campuscms/internal/app/repositories"
	"github.com/yildiz/campuscms/internal/pkg/apperrors"
	"github.com/yildiz/campuscms/internal/pkg/identifier"
)

// fakeUnitOfWork is an in-memory store container for service tests. InTx runs
// the callback directly; the tests assert on final state, not rollbacks.
type fakeUnitOfWork struct {
	staff       map[int64]*models.Staff
	faculties   map[int64]*models.Faculty
	departments map[int64]*models.Department
	nextID      int64
}

func newFakeUnitOfWork() *fakeUnitOfWork {
	return &fakeUnitOfWork{
		staff:       make(map[int64]*models.Staff),
		faculties:   make(map[int64]*models.Faculty),
		departments: make(map[int64]*models.Department),
	}
}

func (f *fakeUnitOfWork) id() int64 {
	f.nextID++
	return f.nextID
}

func (f *fakeUnitOfWork) Staff() repositories.StaffStore            { return &fakeStaffStore{f} }
func (f *fakeUnitOfWork) Faculties() repositories.FacultyStore      { return &fakeFacultyStore{f} }
func (f *fakeUnitOfWork) Departments() repositories.DepartmentStore { return &fakeDepartmentStore{f} }

func (f *fakeUnitOfWork) InTx(ctx context.Context, fn func(ctx context.Context, uow repositories.UnitOfWork) error) error {
	return fn(ctx, f)
}

// addFaculty seeds a faculty row and returns it.
func (f *fakeUnitOfWork) addFaculty(name, slug string) *models.Faculty {
	faculty := &models.Faculty{ID: f.id(), Name: name, Slug: slug}
	f.faculties[faculty.ID] = faculty
	return faculty
}

// addDepartment seeds a department row and returns it.
func (f *fakeUnitOfWork) addDepartment(facultyID int64, name, slug string) *models.Department {
	department := &models.Department{ID: f.id(), FacultyID: facultyID, Name: name, Slug: slug}
	f.departments[department.ID] = department
	return department
}

type fakeStaffStore struct{ u *fakeUnitOfWork }

func (s *fakeStaffStore) Create(_ context.Context, staff *models.Staff) error {
	for _, existing := range s.u.staff {
		if existing.Slug == staff.Slug {
			return apperrors.ErrStaffSlugAlreadyExists
		}
	}
	staff.ID = s.u.id()
	staff.CreatedAt = time.Now()
	staff.UpdatedAt = staff.CreatedAt
	s.u.staff[staff.ID] = staff
	return nil
}

func (s *fakeStaffStore) GetByID(_ context.Context, id int64) (*models.Staff, error) {
	staff, ok := s.u.staff[id]
	if !ok {
		return nil, apperrors.ErrStaffNotFound
	}
	return staff, nil
}

func (s *fakeStaffStore) GetByRef(ctx context.Context, ref identifier.Ref) (*models.Staff, error) {
	if ref.ByID() {
		return s.GetByID(ctx, ref.ID)
	}
	for _, staff := range s.u.staff {
		if staff.Slug == ref.Slug {
			return staff, nil
		}
	}
	return nil, apperrors.ErrStaffNotFound
}

func (s *fakeStaffStore) List(_ context.Context, filter dto.StaffFilter, offset uint64, limit int) ([]*models.Staff, int64, error) {
	var matched []*models.Staff
	for _, staff := range s.u.staff {
		if filter.Role != "" && string(staff.Role) != filter.Role {
			continue
		}
		if filter.FacultyID != nil && (staff.FacultyID == nil || *staff.FacultyID != *filter.FacultyID) {
			continue
		}
		if filter.DepartmentID != nil && (staff.DepartmentID == nil || *staff.DepartmentID != *filter.DepartmentID) {
			continue
		}
		if filter.IsActive != nil && staff.IsActive != *filter.IsActive {
			continue
		}
		matched = append(matched, staff)
	}
	total := int64(len(matched))
	if offset >= uint64(len(matched)) {
		return nil, total, nil
	}
	matched = matched[offset:]
	if limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, total, nil
}

func (s *fakeStaffStore) Update(_ context.Context, staff *models.Staff) error {
	if _, ok := s.u.staff[staff.ID]; !ok {
		return apperrors.ErrStaffNotFound
	}
	for _, existing := range s.u.staff {
		if existing.ID != staff.ID && existing.Slug == staff.Slug {
			return apperrors.ErrStaffSlugAlreadyExists
		}
	}
	staff.UpdatedAt = time.Now()
	s.u.staff[staff.ID] = staff
	return nil
}

func (s *fakeStaffStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.u.staff[id]; !ok {
		return apperrors.ErrStaffNotFound
	}
	delete(s.u.staff, id)
	return nil
}

type fakeFacultyStore struct{ u *fakeUnitOfWork }

func (s *fakeFacultyStore) Create(_ context.Context, faculty *models.Faculty) error {
	for _, existing := range s.u.faculties {
		if existing.Slug == faculty.Slug || existing.Name == faculty.Name {
			return apperrors.ErrFacultyAlreadyExists
		}
	}
	faculty.ID = s.u.id()
	s.u.faculties[faculty.ID] = faculty
	return nil
}

func (s *fakeFacultyStore) GetByID(_ context.Context, id int64) (*models.Faculty, error) {
	faculty, ok := s.u.faculties[id]
	if !ok {
		return nil, apperrors.ErrFacultyNotFound
	}
	return faculty, nil
}

func (s *fakeFacultyStore) GetByRef(ctx context.Context, ref identifier.Ref) (*models.Faculty, error) {
	if ref.ByID() {
		return s.GetByID(ctx, ref.ID)
	}
	for _, faculty := range s.u.faculties {
		if faculty.Slug == ref.Slug {
			return faculty, nil
		}
	}
	return nil, apperrors.ErrFacultyNotFound
}

func (s *fakeFacultyStore) GetAll(_ context.Context) ([]*models.Faculty, error) {
	var all []*models.Faculty
	for _, faculty := range s.u.faculties {
		all = append(all, faculty)
	}
	return all, nil
}

func (s *fakeFacultyStore) Update(_ context.Context, faculty *models.Faculty) error {
	if _, ok := s.u.faculties[faculty.ID]; !ok {
		return apperrors.ErrFacultyNotFound
	}
	s.u.faculties[faculty.ID] = faculty
	return nil
}

func (s *fakeFacultyStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.u.faculties[id]; !ok {
		return apperrors.ErrFacultyNotFound
	}
	delete(s.u.faculties, id)
	return nil
}

func (s *fakeFacultyStore) CountDepartments(_ context.Context, facultyID int64) (int64, error) {
	var count int64
	for _, department := range s.u.departments {
		if department.FacultyID == facultyID {
			count++
		}
	}
	return count, nil
}

func (s *fakeFacultyStore) SetDean(_ context.Context, facultyID, staffID int64) error {
	faculty, ok := s.u.faculties[facultyID]
	if !ok {
		return apperrors.ErrFacultyNotFound
	}
	faculty.DeanID = &staffID
	return nil
}

func (s *fakeFacultyStore) ClearDeanFor(_ context.Context, staffID int64) error {
	for _, faculty := range s.u.faculties {
		if faculty.DeanID != nil && *faculty.DeanID == staffID {
			faculty.DeanID = nil
		}
	}
	return nil
}

func (s *fakeFacultyStore) ClearDeanForExcept(_ context.Context, staffID, facultyID int64) error {
	for _, faculty := range s.u.faculties {
		if faculty.ID != facultyID && faculty.DeanID != nil && *faculty.DeanID == staffID {
			faculty.DeanID = nil
		}
	}
	return nil
}

type fakeDepartmentStore struct{ u *fakeUnitOfWork }

func (s *fakeDepartmentStore) Create(_ context.Context, department *models.Department) error {
	if _, ok := s.u.faculties[department.FacultyID]; !ok {
		return apperrors.ErrFacultyNotFound
	}
	for _, existing := range s.u.departments {
		if existing.Slug == department.Slug {
			return apperrors.ErrDepartmentAlreadyExists
		}
	}
	department.ID = s.u.id()
	s.u.departments[department.ID] = department
	return nil
}

func (s *fakeDepartmentStore) GetByID(_ context.Context, id int64) (*models.Department, error) {
	department, ok := s.u.departments[id]
	if !ok {
		return nil, apperrors.ErrDepartmentNotFound
	}
	return department, nil
}

func (s *fakeDepartmentStore) GetByRef(ctx context.Context, ref identifier.Ref) (*models.Department, error) {
	if ref.ByID() {
		return s.GetByID(ctx, ref.ID)
	}
	for _, department := range s.u.departments {
		if department.Slug == ref.Slug {
			return department, nil
		}
	}
	return nil, apperrors.ErrDepartmentNotFound
}

func (s *fakeDepartmentStore) GetAll(_ context.Context) ([]*models.Department, error) {
	var all []*models.Department
	for _, department := range s.u.departments {
		all = append(all, department)
	}
	return all, nil
}

func (s *fakeDepartmentStore) GetByFacultyID(_ context.Context, facultyID int64) ([]*models.Department, error) {
	var matched []*models.Department
	for _, department := range s.u.departments {
		if department.FacultyID == facultyID {
			matched = append(matched, department)
		}
	}
	return matched, nil
}

func (s *fakeDepartmentStore) Update(_ context.Context, department *models.Department) error {
	if _, ok := s.u.departments[department.ID]; !ok {
		return apperrors.ErrDepartmentNotFound
	}
	s.u.departments[department.ID] = department
	return nil
}

func (s *fakeDepartmentStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.u.departments[id]; !ok {
		return apperrors.ErrDepartmentNotFound
	}
	delete(s.u.departments, id)
	return nil
}

func (s *fakeDepartmentStore) SetHead(_ context.Context, departmentID, staffID int64) error {
	department, ok := s.u.departments[departmentID]
	if !ok {
		return apperrors.ErrDepartmentNotFound
	}
	department.HeadID = &staffID
	return nil
}

func (s *fakeDepartmentStore) ClearHeadFor(_ context.Context, staffID int64) error {
	for _, department := range s.u.departments {
		if department.HeadID != nil && *department.HeadID == staffID {
			department.HeadID = nil
		}
	}
	return nil
}

func (s *fakeDepartmentStore) ClearHeadForExcept(_ context.Context, staffID, departmentID int64) error {
	for _, department := range s.u.departments {
		if department.ID != departmentID && department.HeadID != nil && *department.HeadID == staffID {
			department.HeadID = nil
		}
	}
	return nil
}

// fakeNewsStore is the in-memory news store for news service tests.
type fakeNewsStore struct {
	items  map[int64]*models.News
	nextID int64
}

func newFakeNewsStore() *fakeNewsStore {
	return &fakeNewsStore{items: make(map[int64]*models.News)}
}

func (s *fakeNewsStore) Create(_ context.Context, news *models.News) error {
	for _, existing := range s.items {
		if existing.Slug == news.Slug {
			return apperrors.ErrNewsAlreadyExists
		}
	}
	s.nextID++
	news.ID = s.nextID
	news.CreatedAt = time.Now()
	news.UpdatedAt = news.CreatedAt
	s.items[news.ID] = news
	return nil
}

func (s *fakeNewsStore) GetByRef(_ context.Context, ref identifier.Ref) (*models.News, error) {
	if ref.ByID() {
		news, ok := s.items[ref.ID]
		if !ok {
			return nil, apperrors.ErrNewsNotFound
		}
		return news, nil
	}
	for _, news := range s.items {
		if news.Slug == ref.Slug {
			return news, nil
		}
	}
	return nil, apperrors.ErrNewsNotFound
}

func (s *fakeNewsStore) List(_ context.Context, filter dto.NewsFilter, offset uint64, limit int) ([]*models.News, int64, error) {
	var matched []*models.News
	for _, news := range s.items {
		if filter.IsPublished != nil && news.IsPublished != *filter.IsPublished {
			continue
		}
		matched = append(matched, news)
	}
	total := int64(len(matched))
	if offset >= uint64(len(matched)) {
		return nil, total, nil
	}
	matched = matched[offset:]
	if limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, total, nil
}

func (s *fakeNewsStore) Update(_ context.Context, news *models.News) error {
	if _, ok := s.items[news.ID]; !ok {
		return apperrors.ErrNewsNotFound
	}
	news.UpdatedAt = time.Now()
	s.items[news.ID] = news
	return nil
}

func (s *fakeNewsStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.items[id]; !ok {
		return apperrors.ErrNewsNotFound
	}
	delete(s.items, id)
	return nil
}
