package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"task-management/pkg/response"
)

func TestDateMarshalJSON(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	d := response.Date(time.Date(2024, 5, 1, 0, 0, 0, 0, loc))

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("unexpected error marshaling Date: %v", err)
	}
	if string(b) != `"2024-05-01"` {
		t.Errorf("expected \"2024-05-01\", got %s", string(b))
	}
}

func TestDateTimeMarshalJSON(t *testing.T) {
	dt := response.DateTime(time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC))

	b, err := json.Marshal(dt)
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}
	if string(b) != `"2024-05-01T15:30:00Z"` {
		t.Errorf("unexpected DateTime JSON: %s", string(b))
	}
}
