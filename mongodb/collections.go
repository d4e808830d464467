package mongodb

import "go.mongodb.org/mongo-driver/mongo"

// Collection names. Keep these in sync with IndexSpecs; index creation
// iterates over the same set.
const (
	CollPageViews         = "page_views"
	CollAnalyticsEvents   = "analytics_events"
	CollUserActivity      = "user_activity"
	CollSearchQueries     = "search_queries"
	CollNotifications     = "notifications"
	CollNotificationQueue = "notification_queue"
	CollEmailLogs         = "email_logs"
	CollPushLogs          = "push_logs"
	CollAuditLogs         = "audit_logs"
	CollSystemLogs        = "system_logs"
	CollErrorLogs         = "error_logs"
	CollPerformanceLogs   = "performance_logs"
)

// Collection returns a handle on the named collection in the configured
// database. Returns nil before Connect.
func (c *Client) Collection(name string) *mongo.Collection {
	db := c.Database()
	if db == nil {
		return nil
	}
	return db.Collection(name)
}

// PageViews holds one document per page impression.
func (c *Client) PageViews() *mongo.Collection {
	return c.Collection(CollPageViews)
}

// AnalyticsEvents holds free-form product events.
func (c *Client) AnalyticsEvents() *mongo.Collection {
	return c.Collection(CollAnalyticsEvents)
}

// UserActivity holds the per-user action feed.
func (c *Client) UserActivity() *mongo.Collection {
	return c.Collection(CollUserActivity)
}

// SearchQueries holds search terms with result and click data.
func (c *Client) SearchQueries() *mongo.Collection {
	return c.Collection(CollSearchQueries)
}

// Notifications holds user-facing notifications across channels.
func (c *Client) Notifications() *mongo.Collection {
	return c.Collection(CollNotifications)
}

// NotificationQueue holds pending channel deliveries with retry state.
func (c *Client) NotificationQueue() *mongo.Collection {
	return c.Collection(CollNotificationQueue)
}

// EmailLogs holds the outbound email delivery trail.
func (c *Client) EmailLogs() *mongo.Collection {
	return c.Collection(CollEmailLogs)
}

// PushLogs holds the outbound push delivery trail.
func (c *Client) PushLogs() *mongo.Collection {
	return c.Collection(CollPushLogs)
}

// AuditLogs holds the immutable change trail for sensitive operations.
func (c *Client) AuditLogs() *mongo.Collection {
	return c.Collection(CollAuditLogs)
}

// SystemLogs holds application log records shipped by services.
func (c *Client) SystemLogs() *mongo.Collection {
	return c.Collection(CollSystemLogs)
}

// ErrorLogs holds grouped application errors with resolution state.
func (c *Client) ErrorLogs() *mongo.Collection {
	return c.Collection(CollErrorLogs)
}

// PerformanceLogs holds operation timing samples.
func (c *Client) PerformanceLogs() *mongo.Collection {
	return c.Collection(CollPerformanceLogs)
}
