package domain

import "strings"

// Exercise is one movement inside a training day. Run placeholders carry no
// set/rep logging; they only mark that the day requires a logged run.
type Exercise struct {
	Name             string
	Sets             int
	Reps             int
	IsRunPlaceholder bool
}

// TrainingDay is one entry of the program cycle.
type TrainingDay struct {
	Name      string
	Exercises []Exercise
}

// RunPrescription describes the run planned for a given day.
type RunPrescription struct {
	Title           string
	Details         []string
	Effort          string
	DefaultDistance string
}

// Program is the static, ordered cycle of training days. The current index
// into this cycle is the only mutable reference and lives in storage.
var Program = []TrainingDay{
	{
		Name: "Lower Body Strength",
		Exercises: []Exercise{
			{Name: "Back Squat", Sets: 3, Reps: 10},
			{Name: "Romanian Deadlift", Sets: 3, Reps: 10},
			{Name: "Walking Lunges", Sets: 3, Reps: 12},
			{Name: "Leg Press", Sets: 3, Reps: 10},
			{Name: "Calf Raises", Sets: 4, Reps: 12},
		},
	},
	{
		Name: "Upper Pull + Core",
		Exercises: []Exercise{
			{Name: "Lat Pulldown", Sets: 3, Reps: 10},
			{Name: "Seated Row", Sets: 3, Reps: 10},
			{Name: "Face Pull", Sets: 3, Reps: 15},
			{Name: "Rear Delt Fly", Sets: 3, Reps: 15},
			{Name: "Biceps Curl", Sets: 3, Reps: 12},
		},
	},
	{
		Name: "Run + Glutes",
		Exercises: []Exercise{
			{Name: "RUN_SESSION", Sets: 1, Reps: 1, IsRunPlaceholder: true},
			{Name: "Hip Thrust", Sets: 4, Reps: 10},
			{Name: "Cable Kickbacks", Sets: 3, Reps: 15},
			{Name: "Step Ups", Sets: 3, Reps: 12},
			{Name: "Plank", Sets: 3, Reps: 30},
		},
	},
	{
		Name: "Active Recovery",
		Exercises: []Exercise{
			{Name: "45-60 min walk / mobility", Sets: 1, Reps: 1},
		},
	},
	{
		Name: "Lower Hypertrophy",
		Exercises: []Exercise{
			{Name: "Hack Squat", Sets: 4, Reps: 12},
			{Name: "Bulgarian Split Squat", Sets: 3, Reps: 10},
			{Name: "Leg Curl", Sets: 4, Reps: 12},
			{Name: "Cable Pull Through", Sets: 3, Reps: 15},
			{Name: "Calves", Sets: 4, Reps: 15},
		},
	},
	{
		Name: "Shoulders + Upper Back",
		Exercises: []Exercise{
			{Name: "Machine Shoulder Press", Sets: 3, Reps: 10},
			{Name: "Lateral Raise", Sets: 4, Reps: 15},
			{Name: "Cable Y Raise", Sets: 3, Reps: 15},
			{Name: "Assisted Pullups", Sets: 3, Reps: 8},
			{Name: "Rope Rows", Sets: 3, Reps: 12},
		},
	},
	{
		Name: "Long Easy Run",
		Exercises: []Exercise{
			{Name: "RUN_LONG", Sets: 1, Reps: 1, IsRunPlaceholder: true},
		},
	},
}

// DayAt returns the training day at index. The catalog does no wrapping;
// callers take index modulo len(Program).
func DayAt(index int) TrainingDay {
	return Program[index]
}

// RequiresRun reports whether a day needs a logged run before it can be
// finished: either the day name carries a run token or any exercise is a
// run placeholder.
func RequiresRun(day TrainingDay) bool {
	if strings.Contains(strings.ToLower(day.Name), "run") {
		return true
	}
	for _, ex := range day.Exercises {
		if ex.IsRunPlaceholder {
			return true
		}
	}
	return false
}

// PrescriptionFor returns the run plan for a day name. Unknown day names get
// a generic easy-run prescription.
func PrescriptionFor(dayName string) RunPrescription {
	name := strings.ToLower(dayName)

	if strings.Contains(name, "long easy run") {
		return RunPrescription{
			Title: "Long Easy Run (Comfortable)",
			Details: []string{
				"Warm-up: 5-8 min brisk walk or very easy jog",
				"Run: 3-6km EASY pace (you can talk in sentences)",
				"Cool-down: 5 min walk + light stretching",
			},
			Effort:          "Easy",
			DefaultDistance: "4.0",
		}
	}

	if strings.Contains(name, "run + glutes") {
		return RunPrescription{
			Title: "Run Session (Quality but Controlled)",
			Details: []string{
				"Warm-up: 5-8 min easy jog",
				"Main set: 6 x 1 min faster / 1 min easy (repeat)",
				"Cool-down: 5 min easy + stretch calves/hips",
			},
			Effort:          "Moderate",
			DefaultDistance: "3.0",
		}
	}

	return RunPrescription{
		Title:   "Run Session",
		Details: []string{"Warm-up 5 min", "Run easy-moderate", "Cool-down 5 min walk"},
		Effort:  "Easy",
	}
}
