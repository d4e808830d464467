package mongodb

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Retention windows, in seconds. Each is applied as expireAfterSeconds on
// the TTL index of the matching collection.
const (
	// TTLPageViews keeps page views for 90 days after their timestamp.
	TTLPageViews int32 = 7776000
	// TTLUserActivity keeps activity feed entries for 365 days.
	TTLUserActivity int32 = 31536000
	// TTLNotifications is zero: a notification expires at the instant
	// stored in its own expiresAt field. Documents without the field are
	// never swept.
	TTLNotifications int32 = 0
	// TTLDeliveryLogs keeps email and push delivery trails for 30 days.
	TTLDeliveryLogs int32 = 2592000
	// TTLAuditLogs keeps the compliance trail for 730 days.
	TTLAuditLogs int32 = 63072000
	// TTLSystemLogs keeps shipped application logs for 30 days.
	TTLSystemLogs int32 = 2592000
	// TTLErrorLogs keeps resolved errors for 90 days after their
	// timestamp. The index is partial on resolved, so open errors stay
	// until somebody marks them resolved.
	TTLErrorLogs int32 = 7776000
	// TTLPerformanceLogs keeps timing samples for 7 days.
	TTLPerformanceLogs int32 = 604800
)

// IndexSpecs returns the complete index set, keyed by collection name. The
// map is rebuilt on every call so callers may mutate their copy.
//
// Naming convention: ttl_* for expiry indexes, idx_* for query indexes.
func IndexSpecs() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		CollPageViews: {
			{
				Keys:    bson.D{{Key: "timestamp", Value: 1}},
				Options: options.Index().SetName("ttl_page_views").SetExpireAfterSeconds(TTLPageViews),
			},
			{
				Keys:    bson.D{{Key: "postId", Value: 1}, {Key: "timestamp", Value: -1}},
				Options: options.Index().SetName("idx_page_views_post_time"),
			},
			{
				Keys:    bson.D{{Key: "path", Value: 1}, {Key: "timestamp", Value: -1}},
				Options: options.Index().SetName("idx_page_views_path_time"),
			},
			{
				Keys:    bson.D{{Key: "visitorId", Value: 1}, {Key: "timestamp", Value: -1}},
				Options: options.Index().SetName("idx_page_views_visitor_time"),
			},
		},
		CollAnalyticsEvents: {
			{
				Keys:    bson.D{{Key: "type", Value: 1}, {Key: "timestamp", Value: -1}},
				Options: options.Index().SetName("idx_events_type_time"),
			},
			{
				Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "timestamp", Value: -1}},
				Options: options.Index().SetName("idx_events_user_time").SetSparse(true),
			},
		},
		CollUserActivity: {
			{
				Keys:    bson.D{{Key: "createdAt", Value: 1}},
				Options: options.Index().SetName("ttl_user_activity").SetExpireAfterSeconds(TTLUserActivity),
			},
			{
				Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
				Options: options.Index().SetName("idx_activity_user_time"),
			},
		},
		CollSearchQueries: {
			{
				Keys:    bson.D{{Key: "normalized", Value: 1}, {Key: "createdAt", Value: -1}},
				Options: options.Index().SetName("idx_search_normalized_time"),
			},
		},
		CollNotifications: {
			{
				Keys:    bson.D{{Key: "expiresAt", Value: 1}},
				Options: options.Index().SetName("ttl_notifications").SetExpireAfterSeconds(TTLNotifications),
			},
			{
				Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
				Options: options.Index().SetName("idx_notifications_user_time"),
			},
		},
		CollNotificationQueue: {
			{
				Keys:    bson.D{{Key: "status", Value: 1}, {Key: "nextAttemptAt", Value: 1}},
				Options: options.Index().SetName("idx_queue_status_next"),
			},
			{
				Keys:    bson.D{{Key: "notificationId", Value: 1}},
				Options: options.Index().SetName("idx_queue_notification"),
			},
		},
		CollEmailLogs: {
			{
				Keys:    bson.D{{Key: "timestamp", Value: 1}},
				Options: options.Index().SetName("ttl_email_logs").SetExpireAfterSeconds(TTLDeliveryLogs),
			},
			{
				Keys:    bson.D{{Key: "recipient", Value: 1}, {Key: "timestamp", Value: -1}},
				Options: options.Index().SetName("idx_email_recipient_time"),
			},
			{
				Keys:    bson.D{{Key: "providerMessageId", Value: 1}},
				Options: options.Index().SetName("idx_email_provider_message").SetSparse(true),
			},
		},
		CollPushLogs: {
			{
				Keys:    bson.D{{Key: "timestamp", Value: 1}},
				Options: options.Index().SetName("ttl_push_logs").SetExpireAfterSeconds(TTLDeliveryLogs),
			},
			{
				Keys:    bson.D{{Key: "deviceToken", Value: 1}, {Key: "timestamp", Value: -1}},
				Options: options.Index().SetName("idx_push_device_time"),
			},
		},
		CollAuditLogs: {
			{
				Keys:    bson.D{{Key: "timestamp", Value: 1}},
				Options: options.Index().SetName("ttl_audit_logs").SetExpireAfterSeconds(TTLAuditLogs),
			},
			{
				Keys:    bson.D{{Key: "entityType", Value: 1}, {Key: "entityId", Value: 1}, {Key: "timestamp", Value: -1}},
				Options: options.Index().SetName("idx_audit_entity_time"),
			},
			{
				Keys:    bson.D{{Key: "actorId", Value: 1}, {Key: "timestamp", Value: -1}},
				Options: options.Index().SetName("idx_audit_actor_time"),
			},
		},
		CollSystemLogs: {
			{
				Keys:    bson.D{{Key: "timestamp", Value: 1}},
				Options: options.Index().SetName("ttl_system_logs").SetExpireAfterSeconds(TTLSystemLogs),
			},
			{
				Keys:    bson.D{{Key: "service", Value: 1}, {Key: "level", Value: 1}, {Key: "timestamp", Value: -1}},
				Options: options.Index().SetName("idx_system_service_level_time"),
			},
		},
		CollErrorLogs: {
			{
				Keys: bson.D{{Key: "timestamp", Value: 1}},
				Options: options.Index().
					SetName("ttl_error_logs_resolved").
					SetExpireAfterSeconds(TTLErrorLogs).
					SetPartialFilterExpression(bson.D{{Key: "resolved", Value: true}}),
			},
			{
				Keys:    bson.D{{Key: "fingerprint", Value: 1}, {Key: "timestamp", Value: -1}},
				Options: options.Index().SetName("idx_error_fingerprint_time"),
			},
		},
		CollPerformanceLogs: {
			{
				Keys:    bson.D{{Key: "timestamp", Value: 1}},
				Options: options.Index().SetName("ttl_performance_logs").SetExpireAfterSeconds(TTLPerformanceLogs),
			},
			{
				Keys:    bson.D{{Key: "service", Value: 1}, {Key: "operation", Value: 1}, {Key: "timestamp", Value: -1}},
				Options: options.Index().SetName("idx_perf_service_op_time"),
			},
		},
	}
}

// EnsureIndexes creates every index from IndexSpecs. Creation is idempotent
// server-side, so running it on every deploy is safe; changing the options
// of an existing index name is not, and surfaces as a driver error here.
func (c *Client) EnsureIndexes(ctx context.Context) error {
	if c.Database() == nil {
		return ErrNotConnected
	}

	specs := IndexSpecs()
	names := make([]string, 0, len(specs))
	for name := range specs {
		names = append(names, name)
	}
	sort.Strings(names)

	total := 0
	for _, name := range names {
		created, err := c.Collection(name).Indexes().CreateMany(ctx, specs[name])
		if err != nil {
			return fmt.Errorf("op=mongodb.EnsureIndexes collection=%s: %w", name, err)
		}
		total += len(created)
	}
	slog.Info("mongodb indexes ensured",
		slog.Int("collections", len(names)),
		slog.Int("indexes", total),
	)
	return nil
}
