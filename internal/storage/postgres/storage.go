package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/avolkov/clientbase/internal/domain/errors"
	"github.com/avolkov/clientbase/internal/domain/model"
	"github.com/avolkov/clientbase/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool used by the storage layer.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type customerRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Customers() repository.CustomerRepository {
	return &customerRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            email TEXT NOT NULL,
            password_hash TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            CONSTRAINT users_email_key UNIQUE (email)
        )`,
		`CREATE TABLE IF NOT EXISTS customers (
            id SERIAL PRIMARY KEY,
            uuid TEXT NOT NULL,
            first_name TEXT NOT NULL,
            last_name TEXT NOT NULL,
            address TEXT NOT NULL DEFAULT '',
            city TEXT NOT NULL,
            state TEXT NOT NULL,
            email TEXT NOT NULL,
            phone TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            CONSTRAINT customers_uuid_key UNIQUE (uuid),
            CONSTRAINT customers_email_key UNIQUE (email),
            CONSTRAINT customers_phone_key UNIQUE (phone)
        )`,
		`CREATE INDEX IF NOT EXISTS idx_customers_city ON customers(city)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// uniqueViolation translates a 23505 into the matching domain error.
func uniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return nil
	}
	if strings.Contains(pgErr.ConstraintName, "phone") {
		return domainErrors.ErrPhoneExists
	}
	return domainErrors.ErrEmailExists
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, name, email, passwordHash string) (*model.User, error) {
	const query = `INSERT INTO users (name, email, password_hash) VALUES ($1, $2, $3) RETURNING id, created_at`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, name, email, passwordHash).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		if dup := uniqueViolation(err); dup != nil {
			return nil, dup
		}
		return nil, err
	}
	u.Name = name
	u.Email = email
	u.PasswordHash = passwordHash
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT id, name, email, password_hash, created_at FROM users WHERE email=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, email).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- CustomerRepository implementation ---

const customerColumns = `id, uuid, first_name, last_name, address, city, state, email, phone, created_at`

func scanCustomer(row pgx.Row) (*model.Customer, error) {
	var c model.Customer
	err := row.Scan(&c.ID, &c.UUID, &c.FirstName, &c.LastName, &c.Address, &c.City, &c.State, &c.Email, &c.Phone, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *customerRepository) Create(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	const query = `INSERT INTO customers (uuid, first_name, last_name, address, city, state, email, phone)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
                   RETURNING id, created_at`
	created := *c
	err := r.storage.pool.QueryRow(ctx, query,
		c.UUID, c.FirstName, c.LastName, c.Address, c.City, c.State, c.Email, c.Phone,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		if dup := uniqueViolation(err); dup != nil {
			return nil, dup
		}
		return nil, err
	}
	return &created, nil
}

func (r *customerRepository) Update(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	const query = `UPDATE customers
                   SET first_name=$1, last_name=$2, address=$3, city=$4, state=$5, email=$6, phone=$7
                   WHERE id=$8`
	tag, err := r.storage.pool.Exec(ctx, query,
		c.FirstName, c.LastName, c.Address, c.City, c.State, c.Email, c.Phone, c.ID,
	)
	if err != nil {
		if dup := uniqueViolation(err); dup != nil {
			return nil, dup
		}
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domainErrors.ErrNotFound
	}
	return c, nil
}

func (r *customerRepository) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	const query = `SELECT ` + customerColumns + ` FROM customers WHERE id=$1`
	c, err := scanCustomer(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *customerRepository) GetByEmail(ctx context.Context, email string) (*model.Customer, error) {
	const query = `SELECT ` + customerColumns + ` FROM customers WHERE email=$1`
	c, err := scanCustomer(r.storage.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

// sortColumns whitelists the user-facing sort keys. Anything else
// falls back to the natural id order.
var sortColumns = map[string]string{
	"id":        "id",
	"uuid":      "uuid",
	"firstName": "first_name",
	"lastName":  "last_name",
	"address":   "address",
	"city":      "city",
	"state":     "state",
	"email":     "email",
	"phone":     "phone",
}

func (r *customerRepository) List(ctx context.Context, pageNo, pageSize int, sortBy string) (*repository.CustomerPage, error) {
	column, ok := sortColumns[sortBy]
	if !ok {
		column = "id"
	}

	const countQuery = `SELECT COUNT(*) FROM customers`
	var total int64
	if err := r.storage.pool.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, err
	}

	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY ` + column + ` ASC LIMIT $1 OFFSET $2`
	rows, err := r.storage.pool.Query(ctx, query, pageSize, pageNo*pageSize)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers, err := collectCustomers(rows)
	if err != nil {
		return nil, err
	}
	return &repository.CustomerPage{Customers: customers, Total: total}, nil
}

// searchColumns mirror the searchable attribute names of the HTTP API.
var searchColumns = map[string]string{
	"firstName": "first_name",
	"city":      "city",
	"email":     "email",
	"phone":     "phone",
}

func (r *customerRepository) Search(ctx context.Context, field, query string) ([]model.Customer, error) {
	column, ok := searchColumns[field]
	if !ok {
		return nil, domainErrors.ErrInvalidSearchField
	}

	stmt := `SELECT ` + customerColumns + ` FROM customers WHERE ` + column + ` ILIKE '%' || $1 || '%'`
	rows, err := r.storage.pool.Query(ctx, stmt, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectCustomers(rows)
}

func (r *customerRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM customers WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func collectCustomers(rows pgx.Rows) ([]model.Customer, error) {
	var result []model.Customer
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.UUID, &c.FirstName, &c.LastName, &c.Address, &c.City, &c.State, &c.Email, &c.Phone, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	return s.pool.Ping(ctx)
}
