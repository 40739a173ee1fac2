package appointments

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service owns the committed appointment list.
type Service struct {
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

func NewService(repo Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger, now: time.Now}
}

// List returns all appointments in chronological order.
func (s *Service) List(ctx context.Context) ([]Appointment, error) {
	appointments, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(appointments, func(i, j int) bool {
		return appointments[i].Date+appointments[i].Time < appointments[j].Date+appointments[j].Time
	})
	return appointments, nil
}

// Add commits an appointment, assigning an id when the caller has none.
func (s *Service) Add(ctx context.Context, a Appointment) (Appointment, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Doctor == "" {
		a.Doctor = Placeholder
	}
	if err := s.repo.Insert(ctx, a); err != nil {
		return Appointment{}, fmt.Errorf("saving appointment: %w", err)
	}
	s.logger.Info("appointment added",
		zap.String("id", a.ID),
		zap.String("specialty", a.Specialty),
		zap.String("date", a.Date),
	)
	return a, nil
}

// Seed inserts the demo appointments when the store is empty.
func (s *Service) Seed(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := s.now()
	seeds := []Appointment{
		{
			ID:        uuid.NewString(),
			Doctor:    "Dr. Smith",
			Specialty: "Cardiologist",
			Date:      now.AddDate(0, 0, 1).Format("2006-01-02"),
			Time:      "10:00",
			Location:  "Heart Center, Room 205",
		},
		{
			ID:        uuid.NewString(),
			Doctor:    "Dr. Johnson",
			Specialty: "Cardiologist",
			Date:      now.AddDate(0, 1, 0).Format("2006-01-02"),
			Time:      "14:30",
			Location:  "Cardiac Clinic, Floor 3",
		},
	}
	for _, a := range seeds {
		if err := s.repo.Insert(ctx, a); err != nil {
			return err
		}
	}
	return nil
}
