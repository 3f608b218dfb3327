package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetRowID(t *testing.T) {
	row := SetRow{
		Athlete:    "Alana",
		Date:       "2024-01-15",
		DayIndex:   2,
		DayName:    "Run + Glutes",
		Exercise:   "Hip Thrust",
		SetNumber:  1,
		TargetReps: 10,
		Timestamp:  "2024-01-15T10:00:00Z",
		Weight:     "60",
		Reps:       "10",
	}
	assert.Equal(t, "Alana|2024-01-15|D2|Run + Glutes|Hip Thrust|set1", row.RowID())
}

func TestRunRowIDUsesTimestamp(t *testing.T) {
	row := RunRow{
		Athlete:   "Alana",
		Timestamp: "2024-01-15T10:00:00Z",
		Distance:  "5",
		Time:      "25:00",
	}
	assert.Equal(t, "Alana|RUN|2024-01-15T10:00:00Z", row.RowID())

	// A second run at a different time gets its own row.
	later := row
	later.Timestamp = "2024-01-15T18:00:00Z"
	assert.NotEqual(t, row.RowID(), later.RowID())
}

func TestDateScopedRowIDs(t *testing.T) {
	nutrition := NutritionRow{Athlete: "Alana", Date: "2024-01-15"}
	assert.Equal(t, "Alana|NUTRITION|2024-01-15", nutrition.RowID())

	body := BodyRow{Athlete: "Alana", Date: "2024-01-15"}
	assert.Equal(t, "Alana|BODY|2024-01-15", body.RowID())
}

func TestSetRowFieldsWireOrder(t *testing.T) {
	row := SetRow{
		Athlete:    "Alana",
		Date:       "2024-01-15",
		DayIndex:   1,
		DayName:    "Lower Body Strength",
		Exercise:   "Goblet Squat",
		SetNumber:  2,
		TargetReps: 8,
		Timestamp:  "2024-01-15T10:00:00Z",
		Weight:     "22.5",
		Reps:       "8",
	}

	fields := row.Fields()
	require.Len(t, fields, 9)
	assert.Equal(t, row.RowID(), fields[0])
	assert.Equal(t, "2024-01-15T10:00:00Z", fields[1])
	assert.Equal(t, "Alana", fields[2])
	assert.Equal(t, "Lower Body Strength", fields[3])
	assert.Equal(t, "Goblet Squat", fields[4])
	assert.Equal(t, 2, fields[5])
	assert.Equal(t, 8, fields[6])
	assert.Equal(t, "22.5", fields[7])
	assert.Equal(t, "8", fields[8])
}

func TestRunRowFieldsWireOrder(t *testing.T) {
	row := RunRow{
		Athlete:   "Alana",
		Timestamp: "2024-01-15T10:00:00Z",
		Distance:  "5",
		Time:      "25:00",
		Effort:    "Easy",
		Notes:     "felt good",
		Pace:      "5:00 /km",
	}

	fields := row.Fields()
	require.Len(t, fields, 8)
	assert.Equal(t, row.RowID(), fields[0])
	assert.Equal(t, "5", fields[3])
	assert.Equal(t, "25:00", fields[4])
	assert.Equal(t, "5:00 /km", fields[7])
}

func TestHistoryRowID(t *testing.T) {
	assert.Equal(t, "abc", HistoryRow{"abc", "x"}.ID())
	assert.Equal(t, "", HistoryRow{}.ID())
	assert.Equal(t, "", HistoryRow{42}.ID())
}

func TestEncodePayloadEmptyBatch(t *testing.T) {
	payload, err := NewBatch().EncodePayload()
	require.NoError(t, err)

	// Empty families serialize as [] so the sheet endpoint sees arrays,
	// never null.
	assert.JSONEq(t, `{"setRows":[],"runRows":[],"nutritionRows":[],"bodyRows":[]}`, payload)
}

func TestEncodePayloadNumbersSurvive(t *testing.T) {
	batch := NewBatch()
	batch.SetRows = append(batch.SetRows, SetRow{
		Athlete:   "Alana",
		Date:      "2024-01-15",
		DayIndex:  1,
		DayName:   "Lower Body Strength",
		Exercise:  "Goblet Squat",
		SetNumber: 1, TargetReps: 8,
		Timestamp: "2024-01-15T10:00:00Z",
		Weight:    "20", Reps: "8",
	}.Fields())

	payload, err := batch.EncodePayload()
	require.NoError(t, err)

	var decoded Batch
	require.NoError(t, json.Unmarshal([]byte(payload), &decoded))
	require.Len(t, decoded.SetRows, 1)

	// Set number and target reps are JSON numbers, not strings.
	assert.Equal(t, float64(1), decoded.SetRows[0][5])
	assert.Equal(t, float64(8), decoded.SetRows[0][6])
	assert.Equal(t, "20", decoded.SetRows[0][7])
}
