package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Counters(t *testing.T) {
	r := NewRecorder()

	r.InquirySubmitted("booking")
	r.InquirySubmitted("booking")
	r.TransitionRecorded("new", "in_progress")
	r.PermissionDenied("approvals")

	assert.Equal(t, 2.0, testutil.ToFloat64(r.inquiriesSubmitted.WithLabelValues("booking")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.triageTransitions.WithLabelValues("new", "in_progress")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.permissionDenials.WithLabelValues("approvals")))
}

func TestRecorder_MiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRecorder()

	engine := gin.New()
	engine.Use(r.Middleware())
	engine.GET("/airlines/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	engine.GET("/metrics", gin.WrapH(r.Handler()))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/airlines/al_1", nil))
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.httpRequestsTotal.WithLabelValues("GET", "/airlines/:id", "200")))

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "flyoffice_http_requests_total")
}
