package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Kilat-Pet-Delivery/service-routing/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "validation",
			err:        domain.NewValidationError("Origin and Destination are required"),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Origin and Destination are required"}`,
		},
		{
			name:       "upstream",
			err:        domain.NewUpstreamError("Failed to retrieve route estimations", errors.New("timeout")),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Failed to retrieve route estimations: timeout"}`,
		},
		{
			name:       "unknown",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"internal server error"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			Error(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestRawJSON_WritesBytesVerbatim(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body := []byte(`{ "routes" : [ ] }`)

	RawJSON(c, http.StatusOK, body)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, string(body), w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
}
