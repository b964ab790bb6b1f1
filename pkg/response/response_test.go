package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type idPayload struct {
	Response
	ID uint `json:"id"`
}

func TestCreated_Envelope(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Created(c, &idPayload{ID: 5})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	var got map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["success"] != true || got["message"] != "Successful" || got["responseCode"] != float64(201) || got["id"] != float64(5) {
		t.Errorf("unexpected body %v", got)
	}
}

func TestError_Generic(t *testing.T) {
	tests := []struct {
		write func(*gin.Context)
		code  int
		msg   string
	}{
		{BadRequest, http.StatusBadRequest, "Bad Request"},
		{NotFound, http.StatusNotFound, "Not Found"},
		{TooManyRequests, http.StatusTooManyRequests, "Too Many Requests"},
		{InternalError, http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		tt.write(c)

		var got Response
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if w.Code != tt.code || got.Success || got.ResponseCode != tt.code || got.Message != tt.msg {
			t.Errorf("status %d: unexpected body %+v", tt.code, got)
		}
	}
}
