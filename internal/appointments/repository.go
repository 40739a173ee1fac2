package appointments

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

type Repository interface {
	List(ctx context.Context) ([]Appointment, error)
	Insert(ctx context.Context, appointment Appointment) error
	Count(ctx context.Context) (int, error)
}

type postgresRepo struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepo{db: db}
}

func (r *postgresRepo) List(ctx context.Context) ([]Appointment, error) {
	query := `SELECT id, doctor, specialty, date, time, location FROM appointments ORDER BY date, time`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing appointments: %w", err)
	}
	defer rows.Close()

	var appointments []Appointment
	for rows.Next() {
		var a Appointment
		if err := rows.Scan(&a.ID, &a.Doctor, &a.Specialty, &a.Date, &a.Time, &a.Location); err != nil {
			return nil, err
		}
		appointments = append(appointments, a)
	}
	return appointments, rows.Err()
}

func (r *postgresRepo) Insert(ctx context.Context, a Appointment) error {
	query := `
		INSERT INTO appointments (id, doctor, specialty, date, time, location)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			doctor = $2,
			specialty = $3,
			date = $4,
			time = $5,
			location = $6
	`
	_, err := r.db.ExecContext(ctx, query, a.ID, a.Doctor, a.Specialty, a.Date, a.Time, a.Location)
	return err
}

func (r *postgresRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM appointments`).Scan(&count)
	return count, err
}

// memoryRepo keeps the service usable when no database is reachable.
type memoryRepo struct {
	mu    sync.RWMutex
	items []Appointment
}

func NewMemoryRepository() Repository {
	return &memoryRepo{}
}

func (r *memoryRepo) List(ctx context.Context) ([]Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Appointment, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *memoryRepo) Insert(ctx context.Context, a Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.items {
		if existing.ID == a.ID {
			r.items[i] = a
			return nil
		}
	}
	r.items = append(r.items, a)
	return nil
}

func (r *memoryRepo) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items), nil
}
