package datastore

import (
	"github.com/quillhq/datastore/mongodb/document"
	"github.com/quillhq/datastore/postgres/model"
)

// Aliases so consuming services get the whole schema from one import. The
// defining packages stay importable directly when a service only needs one
// side of the datastore.

// Relational entities.
type (
	User         = model.User
	Profile      = model.Profile
	Session      = model.Session
	Post         = model.Post
	Category     = model.Category
	Tag          = model.Tag
	PostCategory = model.PostCategory
	PostTag      = model.PostTag
	Comment      = model.Comment
	Like         = model.Like
	Bookmark     = model.Bookmark
	Media        = model.Media
	MediaVariant = model.MediaVariant
)

// Relational enums.
type (
	Role          = model.Role
	PostStatus    = model.PostStatus
	Visibility    = model.Visibility
	CommentStatus = model.CommentStatus
	VariantName   = model.VariantName
)

const (
	RoleReader = model.RoleReader
	RoleAuthor = model.RoleAuthor
	RoleEditor = model.RoleEditor
	RoleAdmin  = model.RoleAdmin

	PostDraft     = model.PostDraft
	PostPublished = model.PostPublished
	PostArchived  = model.PostArchived
	PostDeleted   = model.PostDeleted

	VisibilityPublic   = model.VisibilityPublic
	VisibilityUnlisted = model.VisibilityUnlisted
	VisibilityPrivate  = model.VisibilityPrivate

	CommentPending  = model.CommentPending
	CommentApproved = model.CommentApproved
	CommentSpam     = model.CommentSpam
	CommentDeleted  = model.CommentDeleted

	VariantThumb  = model.VariantThumb
	VariantSmall  = model.VariantSmall
	VariantMedium = model.VariantMedium
	VariantLarge  = model.VariantLarge
)

// Document entities.
type (
	PageView              = document.PageView
	AnalyticsEvent        = document.AnalyticsEvent
	UserActivity          = document.UserActivity
	SearchQuery           = document.SearchQuery
	ClickedResult         = document.ClickedResult
	Notification          = document.Notification
	ChannelState          = document.ChannelState
	SubjectRef            = document.SubjectRef
	NotificationQueueItem = document.NotificationQueueItem
	AttemptError          = document.AttemptError
	EmailLog              = document.EmailLog
	PushNotificationLog   = document.PushNotificationLog
	DeliveryEvent         = document.DeliveryEvent
	AuditLog              = document.AuditLog
	SystemLog             = document.SystemLog
	ErrorLog              = document.ErrorLog
	PerformanceLog        = document.PerformanceLog
)

// Document enums.
type (
	DeviceClass    = document.DeviceClass
	TrafficSource  = document.TrafficSource
	ActivityVerb   = document.ActivityVerb
	Channel        = document.Channel
	QueueStatus    = document.QueueStatus
	DeliveryStatus = document.DeliveryStatus
	LogLevel       = document.LogLevel
)

const (
	DeviceDesktop = document.DeviceDesktop
	DeviceMobile  = document.DeviceMobile
	DeviceTablet  = document.DeviceTablet
	DeviceBot     = document.DeviceBot

	SourceDirect   = document.SourceDirect
	SourceOrganic  = document.SourceOrganic
	SourceSocial   = document.SourceSocial
	SourceReferral = document.SourceReferral
	SourceEmail    = document.SourceEmail
	SourcePaid     = document.SourcePaid

	VerbPosted     = document.VerbPosted
	VerbCommented  = document.VerbCommented
	VerbLiked      = document.VerbLiked
	VerbBookmarked = document.VerbBookmarked
	VerbFollowed   = document.VerbFollowed

	ChannelInApp = document.ChannelInApp
	ChannelEmail = document.ChannelEmail
	ChannelPush  = document.ChannelPush

	QueuePending    = document.QueuePending
	QueueProcessing = document.QueueProcessing
	QueueDelivered  = document.QueueDelivered
	QueueFailed     = document.QueueFailed
	QueueDead       = document.QueueDead

	DeliveryQueued    = document.DeliveryQueued
	DeliverySent      = document.DeliverySent
	DeliveryDelivered = document.DeliveryDelivered
	DeliveryBounced   = document.DeliveryBounced
	DeliveryFailed    = document.DeliveryFailed

	LevelDebug = document.LevelDebug
	LevelInfo  = document.LevelInfo
	LevelWarn  = document.LevelWarn
	LevelError = document.LevelError
)
