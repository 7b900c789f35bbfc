package response

import (
	"encoding/json"
	"time"
)

// Resp is the success envelope.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
}

// ErrorBody is the machine-readable part of a failed response.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResp is the failure envelope: {"error":{"code","message"}}.
// Transcription is set when a voice request failed after speech was recognized.
type ErrorResp struct {
	Error         ErrorBody `json:"error"`
	Transcription string    `json:"transcription,omitempty"`
}

// Date is a calendar date that marshals as DateFormat in its own location.
type Date time.Time

// MarshalJSON implements json.Marshaler for Date.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(DateFormat))
}

// DateTime is a datetime that marshals as DateTimeFormat.
type DateTime time.Time

// MarshalJSON implements json.Marshaler for DateTime.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(DateTimeFormat))
}
