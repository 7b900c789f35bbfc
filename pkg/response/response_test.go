package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	pkgErrors "task-management/pkg/errors"
	"task-management/pkg/response"
)

func TestResponses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("OK", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.OK(c, map[string]string{"foo": "bar"})

		if w.Code != http.StatusOK {
			t.Errorf("expected %d but got %d", http.StatusOK, w.Code)
		}

		var resp response.Resp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}
		if resp.ErrorCode != 0 {
			t.Errorf("expected ErrorCode 0, got %d", resp.ErrorCode)
		}
		dMap, ok := resp.Data.(map[string]interface{})
		if !ok || dMap["foo"] != "bar" {
			t.Errorf("unexpected data payload: %v", resp.Data)
		}
	})

	t.Run("Created", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Created(c, nil)

		if w.Code != http.StatusCreated {
			t.Errorf("expected %d, got %d", http.StatusCreated, w.Code)
		}
	})

	t.Run("HTTPError keeps status and code", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Error(c, pkgErrors.NewHTTPError(http.StatusBadRequest, "INVALID_PRIORITY", "bad priority"))

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected %d, got %d", http.StatusBadRequest, w.Code)
		}

		var resp response.ErrorResp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}
		if resp.Error.Code != "INVALID_PRIORITY" {
			t.Errorf("expected code INVALID_PRIORITY, got %s", resp.Error.Code)
		}
		if resp.Error.Message != "bad priority" {
			t.Errorf("expected message 'bad priority', got %s", resp.Error.Message)
		}
	})

	t.Run("Plain error becomes UNKNOWN_ERROR", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Error(c, errors.New("db exploded"))

		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected %d, got %d", http.StatusInternalServerError, w.Code)
		}
		var resp response.ErrorResp
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Error.Code != "UNKNOWN_ERROR" {
			t.Errorf("expected UNKNOWN_ERROR, got %s", resp.Error.Code)
		}
	})

	t.Run("Transcription echoed", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.ErrorWithTranscription(c, pkgErrors.NewHTTPError(http.StatusInternalServerError, "EXTRACTION_ERROR", "failed"), "明天开会")

		var resp response.ErrorResp
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Transcription != "明天开会" {
			t.Errorf("expected transcription to be echoed, got %q", resp.Transcription)
		}
	})

	t.Run("Unauthorized", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Unauthorized(c)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
		var resp response.ErrorResp
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Error.Code != "UNAUTHORIZED" {
			t.Errorf("expected UNAUTHORIZED, got %s", resp.Error.Code)
		}
	})

	t.Run("InternalError hides cause", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.InternalError(c, errors.New("secret detail"))

		var resp response.ErrorResp
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Error.Message != response.DefaultErrorMessage {
			t.Errorf("expected default message, got %s", resp.Error.Message)
		}
	})
}
