package importer

import (
	"testing"
)

// TestParseExportEnvelope verifies the {"workouts": [...]} form parses.
func TestParseExportEnvelope(t *testing.T) {
	data := []byte(`{
		"workouts": [
			{"name": "Push Day", "date": "2025-03-10", "status": "completed",
			 "exercises": [
				{"exercise": "Bench Press", "order": 1,
				 "sets": [{"reps": 10, "weight": 60, "completed": true}]}
			 ]}
		]
	}`)

	workouts, err := ParseExport(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(workouts) != 1 {
		t.Fatalf("got %d workouts, want 1", len(workouts))
	}
	w := workouts[0]
	if w.Name != "Push Day" {
		t.Errorf("name = %q, want Push Day", w.Name)
	}
	if len(w.Exercises) != 1 || len(w.Exercises[0].Sets) != 1 {
		t.Fatalf("exercises/sets = %d/%d, want 1/1", len(w.Exercises), len(w.Exercises[0].Sets))
	}
	if w.Exercises[0].Sets[0].Weight != 60 {
		t.Errorf("weight = %v, want 60", w.Exercises[0].Sets[0].Weight)
	}
}

// TestParseExportSingle verifies a bare workout object is accepted.
func TestParseExportSingle(t *testing.T) {
	data := []byte(`{"name": "Leg Day", "date": "2025-03-12"}`)
	workouts, err := ParseExport(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(workouts) != 1 || workouts[0].Name != "Leg Day" {
		t.Errorf("got %+v, want one workout named Leg Day", workouts)
	}
}

// TestParseExportInvalid verifies malformed input is rejected.
func TestParseExportInvalid(t *testing.T) {
	for _, data := range []string{`not json`, `{}`, `{"workouts": []}`} {
		if _, err := ParseExport([]byte(data)); err == nil {
			t.Errorf("ParseExport(%q): expected error", data)
		}
	}
}

// TestExportWorkoutValidate verifies field validation before import.
func TestExportWorkoutValidate(t *testing.T) {
	rating := 6
	negReps := ExportWorkout{
		Name: "W",
		Exercises: []ExportExercise{
			{Exercise: "Squat", Sets: []ExportSet{{Reps: -1}}},
		},
	}

	tests := []struct {
		name    string
		w       ExportWorkout
		wantErr bool
	}{
		{"valid", ExportWorkout{Name: "W", Date: "2025-01-01", Status: "completed"}, false},
		{"no name", ExportWorkout{Date: "2025-01-01"}, true},
		{"bad date", ExportWorkout{Name: "W", Date: "last tuesday"}, true},
		{"bad status", ExportWorkout{Name: "W", Status: "done"}, true},
		{"rating out of range", ExportWorkout{Name: "W", Rating: &rating}, true},
		{"unnamed exercise", ExportWorkout{Name: "W", Exercises: []ExportExercise{{}}}, true},
		{"negative reps", negReps, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.w.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

// TestExportSetConversion verifies the export set maps onto the API model.
func TestExportSetConversion(t *testing.T) {
	rpe := 8
	dur := 45.0
	s := ExportSet{Reps: 8, Weight: 80, DurationSec: &dur, RPE: &rpe, Completed: true}

	got := s.Set()
	if got.Reps != 8 || got.Weight != 80 || !got.Completed {
		t.Errorf("set = %+v, want reps 8 weight 80 completed", got)
	}
	if got.DurationSec == nil || *got.DurationSec != 45 {
		t.Errorf("duration_sec = %v, want 45", got.DurationSec)
	}
	if got.RPE == nil || *got.RPE != 8 {
		t.Errorf("rpe = %v, want 8", got.RPE)
	}
}
