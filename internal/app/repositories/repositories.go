package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/yildiz/campuscms/internal/app/models"
	"github.com/yildiz/campuscms/internal/app/models/dto"
	"github.com/yildiz/campuscms/internal/db"
	"github.com/yildiz/campuscms/internal/pkg/identifier"
)

// DBTX is the subset of pgx operations the repositories need. Both
// *pgxpool.Pool and pgx.Tx satisfy it, which lets the same repository code run
// inside and outside a transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// StaffStore is the typed store for staff records.
type StaffStore interface {
	Create(ctx context.Context, staff *models.Staff) error
	GetByID(ctx context.Context, id int64) (*models.Staff, error)
	GetByRef(ctx context.Context, ref identifier.Ref) (*models.Staff, error)
	List(ctx context.Context, filter dto.StaffFilter, offset uint64, limit int) ([]*models.Staff, int64, error)
	Update(ctx context.Context, staff *models.Staff) error
	Delete(ctx context.Context, id int64) error
}

// FacultyStore is the typed store for faculty records. The dean_id column is a
// derived back-reference: only SetDean/ClearDeanFor/ClearDeanForExcept write
// it, and only the leadership synchronizer calls them.
type FacultyStore interface {
	Create(ctx context.Context, faculty *models.Faculty) error
	GetByID(ctx context.Context, id int64) (*models.Faculty, error)
	GetByRef(ctx context.Context, ref identifier.Ref) (*models.Faculty, error)
	GetAll(ctx context.Context) ([]*models.Faculty, error)
	Update(ctx context.Context, faculty *models.Faculty) error
	Delete(ctx context.Context, id int64) error
	CountDepartments(ctx context.Context, facultyID int64) (int64, error)
	SetDean(ctx context.Context, facultyID, staffID int64) error
	ClearDeanFor(ctx context.Context, staffID int64) error
	ClearDeanForExcept(ctx context.Context, staffID, facultyID int64) error
}

// DepartmentStore is the typed store for department records. head_id is the
// derived back-reference counterpart of FacultyStore's dean_id.
type DepartmentStore interface {
	Create(ctx context.Context, department *models.Department) error
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	GetByRef(ctx context.Context, ref identifier.Ref) (*models.Department, error)
	GetAll(ctx context.Context) ([]*models.Department, error)
	GetByFacultyID(ctx context.Context, facultyID int64) ([]*models.Department, error)
	Update(ctx context.Context, department *models.Department) error
	Delete(ctx context.Context, id int64) error
	SetHead(ctx context.Context, departmentID, staffID int64) error
	ClearHeadFor(ctx context.Context, staffID int64) error
	ClearHeadForExcept(ctx context.Context, staffID, departmentID int64) error
}

// NewsStore is the typed store for the news content type.
type NewsStore interface {
	Create(ctx context.Context, news *models.News) error
	GetByRef(ctx context.Context, ref identifier.Ref) (*models.News, error)
	List(ctx context.Context, filter dto.NewsFilter, offset uint64, limit int) ([]*models.News, int64, error)
	Update(ctx context.Context, news *models.News) error
	Delete(ctx context.Context, id int64) error
}

// UnitOfWork groups the stores and lets a caller run several store operations
// as one serializable transaction. InTx hands the callback a transaction-bound
// UnitOfWork; nested InTx calls join the surrounding transaction.
type UnitOfWork interface {
	Staff() StaffStore
	Faculties() FacultyStore
	Departments() DepartmentStore
	InTx(ctx context.Context, fn func(ctx context.Context, uow UnitOfWork) error) error
}

// Repositories is the pgx-backed store container. It implements UnitOfWork.
type Repositories struct {
	database    *db.PostgresDB // nil when bound to a transaction
	staff       *StaffRepository
	faculties   *FacultyRepository
	departments *DepartmentRepository
	news        *NewsRepository
}

// NewRepositories creates the store container over a connection pool.
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		database:    database,
		staff:       NewStaffRepository(database.Pool),
		faculties:   NewFacultyRepository(database.Pool),
		departments: NewDepartmentRepository(database.Pool),
		news:        NewNewsRepository(database.Pool),
	}
}

// Staff returns the staff store
func (r *Repositories) Staff() StaffStore { return r.staff }

// Faculties returns the faculty store
func (r *Repositories) Faculties() FacultyStore { return r.faculties }

// Departments returns the department store
func (r *Repositories) Departments() DepartmentStore { return r.departments }

// News returns the news store
func (r *Repositories) News() NewsStore { return r.news }

// InTx runs fn within a database transaction against transaction-bound copies
// of the stores. When the receiver is already transaction-bound, fn joins the
// open transaction.
func (r *Repositories) InTx(ctx context.Context, fn func(ctx context.Context, uow UnitOfWork) error) error {
	if r.database == nil {
		return fn(ctx, r)
	}
	return r.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return fn(ctx, r.withTx(tx))
	})
}

// withTx returns a copy of the container with every store bound to tx.
func (r *Repositories) withTx(tx pgx.Tx) *Repositories {
	return &Repositories{
		staff:       NewStaffRepository(tx),
		faculties:   NewFacultyRepository(tx),
		departments: NewDepartmentRepository(tx),
		news:        NewNewsRepository(tx),
	}
}
