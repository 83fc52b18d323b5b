package helper

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"second-brain-server/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestUnderscore(t *testing.T) {
	require.Equal(t, "username", Underscore("Username"))
	require.Equal(t, "tag_ids", Underscore("TagIDs"))
	require.Equal(t, "created_at", Underscore("CreatedAt"))
}

func TestGetStatusCode(t *testing.T) {
	h := NewHTTPHelper()

	require.Equal(t, http.StatusBadRequest, h.GetStatusCode(models.ErrorValidation{Message: "x"}))
	require.Equal(t, http.StatusUnauthorized, h.GetStatusCode(models.ErrorUnauthorized{Message: "x"}))
	require.Equal(t, http.StatusNotFound, h.GetStatusCode(models.ErrorNotFound{Message: "x"}))
	require.Equal(t, http.StatusInternalServerError, h.GetStatusCode(errors.New("driver: bad connection")))
}

func TestSendErrorHidesInternalDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHTTPHelper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/content", nil)

	h.SendError(c, errors.New("pq: connection refused"))

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "Internal server error", body["error"])
}

func TestSendErrorKeepsServiceMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHTTPHelper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/content/1", nil)

	h.SendError(c, models.ErrorNotFound{Message: "Content not found"})

	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "Content not found", body["error"])
}
