package postgres

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Registering the junction models validates every relationship tag on the
// Post/Category/Tag models, so a typo in those tags fails here instead of at
// first use in a service.
func TestSetupJoinTables(t *testing.T) {
	c, _ := newSqlmockClient(t)
	require.NoError(t, setupJoinTables(c.db))
}
