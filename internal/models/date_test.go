package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/inmobiliaria/api-inmobiliaria/internal/models"
)

func TestDateJSONFormat(t *testing.T) {
	d := models.NewDate(time.Date(2023, 1, 15, 17, 30, 0, 0, time.UTC))

	out, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Failed to marshal Date: %v", err)
	}
	if string(out) != `"2023-01-15"` {
		t.Errorf("Expected \"2023-01-15\", got %s", out)
	}

	var parsed models.Date
	if err := json.Unmarshal([]byte(`"2020-06-01"`), &parsed); err != nil {
		t.Fatalf("Failed to unmarshal Date: %v", err)
	}
	if parsed.Time().Year() != 2020 || parsed.Time().Month() != time.June {
		t.Errorf("Unexpected parsed date: %v", parsed.Time())
	}
}

func TestDateRejectsTimestamps(t *testing.T) {
	var d models.Date
	if err := json.Unmarshal([]byte(`"2020-06-01T10:00:00"`), &d); err == nil {
		t.Error("Expected error for timestamp input")
	}
}

func TestDateTimeJSONFormat(t *testing.T) {
	dt := models.NewDateTime(time.Date(2024, 3, 5, 9, 45, 30, 0, time.UTC))

	out, err := json.Marshal(dt)
	if err != nil {
		t.Fatalf("Failed to marshal DateTime: %v", err)
	}
	if string(out) != `"2024-03-05T09:45:30"` {
		t.Errorf("Expected \"2024-03-05T09:45:30\", got %s", out)
	}

	var parsed models.DateTime
	if err := json.Unmarshal([]byte(`"2024-03-05T09:45:30"`), &parsed); err != nil {
		t.Fatalf("Failed to unmarshal DateTime: %v", err)
	}
	if !parsed.Time().Equal(dt.Time()) {
		t.Errorf("Round trip mismatch: %v != %v", parsed.Time(), dt.Time())
	}
}

func TestDateTimeAcceptsRFC3339(t *testing.T) {
	var parsed models.DateTime
	if err := json.Unmarshal([]byte(`"2024-03-05T09:45:30Z"`), &parsed); err != nil {
		t.Fatalf("Failed to unmarshal RFC3339 DateTime: %v", err)
	}
	if parsed.Time().Hour() != 9 {
		t.Errorf("Unexpected hour: %d", parsed.Time().Hour())
	}
}
