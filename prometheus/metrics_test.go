package prometheus

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestTrackDBOperationObserves(t *testing.T) {
	before := testutil.CollectAndCount(DBOperationDuration)

	// One deferred-style call per operation label, the way the store wraps
	// its database access.
	TrackDBOperation("query")(time.Now())
	TrackDBOperation("insert")(time.Now())

	after := testutil.CollectAndCount(DBOperationDuration)
	if got, want := after-before, 2; got != want {
		t.Fatalf("new duration series = %d, want %d", got, want)
	}
}
