package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirection(t *testing.T) {
	assert.Equal(t, "out", Direction(-2))
	assert.Equal(t, "in", Direction(0))
	assert.Equal(t, "in", Direction(3))
}

func TestRegisterAndHandler(t *testing.T) {
	Register()
	Register()

	before := testutil.ToFloat64(SalesRegistered.WithLabelValues("pdv"))
	SalesRegistered.WithLabelValues("pdv").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(SalesRegistered.WithLabelValues("pdv")))

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "sales_registered_total"))
}
