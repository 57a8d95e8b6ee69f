package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordLoad(t *testing.T) {
	success := ConfigLoads.WithLabelValues("metrics_test", OutcomeSuccess)
	failure := ConfigLoads.WithLabelValues("metrics_test", OutcomeFailure)
	beforeOK, beforeFail := testutil.ToFloat64(success), testutil.ToFloat64(failure)

	RecordLoad("metrics_test", nil)
	RecordLoad("metrics_test", nil)
	RecordLoad("metrics_test", errors.New("bad literal"))

	assert.Equal(t, beforeOK+2, testutil.ToFloat64(success))
	assert.Equal(t, beforeFail+1, testutil.ToFloat64(failure))
}

func TestSetEventMappings(t *testing.T) {
	SetEventMappings("metrics_test", 4)
	assert.Equal(t, 4.0, testutil.ToFloat64(EventMappings.WithLabelValues("metrics_test")))
}
