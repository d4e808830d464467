package datastore_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/quillhq/datastore"
	"github.com/quillhq/datastore/config"
	"github.com/quillhq/datastore/postgres"
)

func TestOpen_MissingRelationalDSN(t *testing.T) {
	s, err := datastore.Open(context.Background(), config.Config{})
	require.ErrorIs(t, err, postgres.ErrMissingDSN)
	require.Nil(t, s)
}

func TestClose_NilStores(t *testing.T) {
	var s *datastore.Stores
	require.NoError(t, s.Close(context.Background()))
}

// The barrel surface is what services import; exercise a slice of it so a
// renamed or dropped alias breaks here first.
func TestExportedSchemaSurface(t *testing.T) {
	u := datastore.User{Email: "a@x.com", Username: "a", Role: datastore.RoleAdmin}
	require.True(t, u.Role.Valid())

	p := datastore.Post{Status: datastore.PostPublished, Visibility: datastore.VisibilityPublic}
	now := time.Now()
	p.PublishedAt = &now
	require.True(t, p.Published(now))

	pv := datastore.PageView{
		Path:      "/posts/hello",
		VisitorID: "v1",
		SessionID: "s1",
		Device:    datastore.DeviceMobile,
		Source:    datastore.SourceOrganic,
		Timestamp: now,
	}
	require.NoError(t, pv.Validate())

	q := datastore.NotificationQueueItem{
		NotificationID: "n1",
		UserID:         "u1",
		Channel:        datastore.ChannelEmail,
		Status:         datastore.QueuePending,
		MaxAttempts:    1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	q.ScheduleRetry(now, nil)
	require.Equal(t, datastore.QueueDead, q.Status)
}
