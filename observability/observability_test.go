package observability

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.mongodb.org/mongo-driver/event"

	"github.com/quillhq/datastore/config"
)

func TestSetupLogger_DevAndProd(t *testing.T) {
	lg := SetupLogger(config.Config{AppEnv: "dev", OTELServiceName: "svc"})
	if lg == nil {
		t.Fatalf("nil logger")
	}
	lg2 := SetupLogger(config.Config{AppEnv: "prod", OTELServiceName: "svc"})
	if lg2 == nil {
		t.Fatalf("nil logger prod")
	}
}

func TestSetupTracing_Disabled(t *testing.T) {
	shutdown, err := SetupTracing(config.Config{OTLPEndpoint: ""})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if shutdown != nil {
		_ = shutdown(context.Background())
	}
}

func TestNewMongoPoolMonitor_TracksConnections(t *testing.T) {
	m := NewMongoPoolMonitor()

	before := testutil.ToFloat64(MongoOpenConnections)
	m.Event(&event.PoolEvent{Type: event.ConnectionCreated})
	m.Event(&event.PoolEvent{Type: event.ConnectionCreated})
	m.Event(&event.PoolEvent{Type: event.ConnectionClosed})

	after := testutil.ToFloat64(MongoOpenConnections)
	if after-before != 1 {
		t.Fatalf("open connections delta = %v, want 1", after-before)
	}

	outBefore := testutil.ToFloat64(MongoCheckedOutConnections)
	m.Event(&event.PoolEvent{Type: event.GetSucceeded})
	m.Event(&event.PoolEvent{Type: event.ConnectionReturned})
	outAfter := testutil.ToFloat64(MongoCheckedOutConnections)
	if outAfter != outBefore {
		t.Fatalf("checked-out connections delta = %v, want 0", outAfter-outBefore)
	}
}

func TestRegisterDBStats(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	if err := RegisterDBStats(db, "datastore_test"); err != nil {
		t.Fatalf("RegisterDBStats: %v", err)
	}
	// Second registration of the same collector must report a duplicate.
	if err := RegisterDBStats(db, "datastore_test"); err == nil {
		t.Fatal("expected duplicate registration error")
	}
}
