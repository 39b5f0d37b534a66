package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddlewareUsesRoutePattern(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/sneakers/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	counter := httpRequestsTotal.WithLabelValues("404", http.MethodGet, "GET /api/v1/sneakers/{id}")
	before := testutil.ToFloat64(counter)

	rr := httptest.NewRecorder()
	Middleware(mux).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/sneakers/abc", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.InDelta(t, before+1, testutil.ToFloat64(counter), 1e-9)
	assert.InDelta(t, 0, testutil.ToFloat64(httpRequestsInFlight), 1e-9)
}

func TestRecordOperation(t *testing.T) {
	success := inventoryOperationsTotal.WithLabelValues("add", ResultSuccess)
	failure := inventoryOperationsTotal.WithLabelValues("add", ResultError)
	okBefore, errBefore := testutil.ToFloat64(success), testutil.ToFloat64(failure)

	RecordOperation("add", nil)
	RecordOperation("add", errors.New("boom"))

	assert.InDelta(t, okBefore+1, testutil.ToFloat64(success), 1e-9)
	assert.InDelta(t, errBefore+1, testutil.ToFloat64(failure), 1e-9)

	SetLowStockItems(3)
	assert.InDelta(t, 3, testutil.ToFloat64(lowStockItems), 1e-9)
}
