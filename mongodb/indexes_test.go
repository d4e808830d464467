package mongodb_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/quillhq/datastore/mongodb"
)

// ttlIndex returns the single TTL index of a collection, or nil when the
// collection has none. More than one TTL index is a spec bug.
func ttlIndex(t *testing.T, specs map[string][]mongo.IndexModel, coll string) *mongo.IndexModel {
	t.Helper()

	var found *mongo.IndexModel
	for i := range specs[coll] {
		m := specs[coll][i]
		if m.Options != nil && m.Options.ExpireAfterSeconds != nil {
			require.Nilf(t, found, "collection %s declares more than one TTL index", coll)
			found = &specs[coll][i]
		}
	}
	return found
}

func TestIndexSpecs_RetentionWindows(t *testing.T) {
	specs := mongodb.IndexSpecs()

	cases := []struct {
		coll    string
		field   string
		seconds int32
	}{
		{mongodb.CollPageViews, "timestamp", 7776000},
		{mongodb.CollUserActivity, "createdAt", 31536000},
		{mongodb.CollNotifications, "expiresAt", 0},
		{mongodb.CollEmailLogs, "timestamp", 2592000},
		{mongodb.CollPushLogs, "timestamp", 2592000},
		{mongodb.CollAuditLogs, "timestamp", 63072000},
		{mongodb.CollSystemLogs, "timestamp", 2592000},
		{mongodb.CollErrorLogs, "timestamp", 7776000},
		{mongodb.CollPerformanceLogs, "timestamp", 604800},
	}
	for _, tc := range cases {
		t.Run(tc.coll, func(t *testing.T) {
			m := ttlIndex(t, specs, tc.coll)
			require.NotNil(t, m, "expected a TTL index")
			require.Equal(t, tc.seconds, *m.Options.ExpireAfterSeconds)
			require.Equal(t, bson.D{{Key: tc.field, Value: 1}}, m.Keys)
		})
	}
}

func TestIndexSpecs_NoRetention(t *testing.T) {
	specs := mongodb.IndexSpecs()

	for _, coll := range []string{
		mongodb.CollAnalyticsEvents,
		mongodb.CollSearchQueries,
		mongodb.CollNotificationQueue,
	} {
		require.Nilf(t, ttlIndex(t, specs, coll), "collection %s must not expire documents", coll)
	}
}

func TestIndexSpecs_ErrorLogsPartialFilter(t *testing.T) {
	m := ttlIndex(t, mongodb.IndexSpecs(), mongodb.CollErrorLogs)
	require.NotNil(t, m)

	// Only resolved errors are swept; open ones stay indefinitely.
	require.Equal(t, bson.D{{Key: "resolved", Value: true}}, m.Options.PartialFilterExpression)
}

func TestIndexSpecs_CoversEveryCollection(t *testing.T) {
	specs := mongodb.IndexSpecs()

	all := []string{
		mongodb.CollPageViews,
		mongodb.CollAnalyticsEvents,
		mongodb.CollUserActivity,
		mongodb.CollSearchQueries,
		mongodb.CollNotifications,
		mongodb.CollNotificationQueue,
		mongodb.CollEmailLogs,
		mongodb.CollPushLogs,
		mongodb.CollAuditLogs,
		mongodb.CollSystemLogs,
		mongodb.CollErrorLogs,
		mongodb.CollPerformanceLogs,
	}
	require.Len(t, specs, len(all))
	for _, coll := range all {
		require.NotEmptyf(t, specs[coll], "collection %s has no indexes", coll)
	}
}

func TestIndexSpecs_NamesAreUnique(t *testing.T) {
	seen := map[string]string{}
	for coll, models := range mongodb.IndexSpecs() {
		for _, m := range models {
			require.NotNil(t, m.Options)
			require.NotNil(t, m.Options.Name, "every index is named explicitly")
			name := *m.Options.Name
			require.Emptyf(t, seen[name], "index name %s reused by %s and %s", name, seen[name], coll)
			seen[name] = coll
		}
	}
}

func TestIndexSpecs_QueuePollingIndex(t *testing.T) {
	specs := mongodb.IndexSpecs()

	var polling *mongo.IndexModel
	for i := range specs[mongodb.CollNotificationQueue] {
		m := specs[mongodb.CollNotificationQueue][i]
		if m.Options != nil && m.Options.Name != nil && *m.Options.Name == "idx_queue_status_next" {
			polling = &specs[mongodb.CollNotificationQueue][i]
		}
	}
	require.NotNil(t, polling)
	require.Equal(t, bson.D{{Key: "status", Value: 1}, {Key: "nextAttemptAt", Value: 1}}, polling.Keys)
}

func TestIndexSpecs_ReturnsFreshCopies(t *testing.T) {
	a := mongodb.IndexSpecs()
	a[mongodb.CollPageViews] = []mongo.IndexModel{{Options: options.Index().SetName("mutated")}}

	b := mongodb.IndexSpecs()
	require.NotEqual(t, "mutated", *b[mongodb.CollPageViews][0].Options.Name)
}
