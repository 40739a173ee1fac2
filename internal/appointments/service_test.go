package appointments

import (
	"context"
	"testing"

	"go.uber.org/zap"
)

func TestServiceAddAssignsDefaults(t *testing.T) {
	svc := NewService(NewMemoryRepository(), zap.NewNop())

	added, err := svc.Add(context.Background(), Appointment{
		Specialty: "Cardiology",
		Date:      "2025-06-25",
		Time:      "10:00",
		Location:  "Heart Center",
	})
	if err != nil {
		t.Fatal(err)
	}
	if added.ID == "" {
		t.Error("expected a generated id")
	}
	if added.Doctor != Placeholder {
		t.Errorf("Doctor = %q, want placeholder", added.Doctor)
	}
}

func TestServiceListOrdersByDateThenTime(t *testing.T) {
	svc := NewService(NewMemoryRepository(), zap.NewNop())
	ctx := context.Background()

	for _, a := range []Appointment{
		{Doctor: "Dr. B", Date: "2025-07-01", Time: "14:30"},
		{Doctor: "Dr. A", Date: "2025-06-25", Time: "10:00"},
		{Doctor: "Dr. C", Date: "2025-07-01", Time: "09:00"},
	} {
		if _, err := svc.Add(ctx, a); err != nil {
			t.Fatal(err)
		}
	}

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Dr. A", "Dr. C", "Dr. B"}
	for i, doctor := range want {
		if list[i].Doctor != doctor {
			t.Errorf("list[%d].Doctor = %q, want %q", i, list[i].Doctor, doctor)
		}
	}
}

func TestServiceSeedOnlyWhenEmpty(t *testing.T) {
	svc := NewService(NewMemoryRepository(), zap.NewNop())
	ctx := context.Background()

	if err := svc.Seed(ctx); err != nil {
		t.Fatal(err)
	}
	list, err := svc.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Fatalf("got %d seeded appointments", len(list))
	}
	if list[0].Doctor != "Dr. Smith" || list[1].Doctor != "Dr. Johnson" {
		t.Errorf("seeds = %q, %q", list[0].Doctor, list[1].Doctor)
	}

	// Seeding again must not duplicate.
	if err := svc.Seed(ctx); err != nil {
		t.Fatal(err)
	}
	list, _ = svc.List(ctx)
	if len(list) != 2 {
		t.Errorf("got %d appointments after a second seed", len(list))
	}
}
