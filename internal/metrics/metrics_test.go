package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRecordAPICall(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/initiallead", "200"))
	RecordAPICall("GET", "/initiallead", 200, 20*time.Millisecond)
	require.Equal(t, before+1, testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/initiallead", "200")))

	failed := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("DELETE", "/catelog/:name", "error"))
	RecordAPICall("DELETE", "/catelog/:name", 0, time.Millisecond)
	require.Equal(t, failed+1, testutil.ToFloat64(APIRequestsTotal.WithLabelValues("DELETE", "/catelog/:name", "error")))

	families, err := Registry.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	require.Contains(t, names, "portal_api_request_duration_seconds")
}

func TestRecordStaleResponse(t *testing.T) {
	before := testutil.ToFloat64(StaleResponsesTotal.WithLabelValues("catalog"))
	RecordStaleResponse("catalog")
	RecordStaleResponse("catalog")
	require.Equal(t, before+2, testutil.ToFloat64(StaleResponsesTotal.WithLabelValues("catalog")))
}
