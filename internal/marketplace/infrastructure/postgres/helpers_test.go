package postgres

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"

	"github.com/davidtimmons/pragmatic-architecture/internal/pkg/database"
	"github.com/davidtimmons/pragmatic-architecture/internal/pkg/logging"
)

type stubConnector struct {
	conn database.Querier
}

func (c stubConnector) Connect(ctx context.Context) (database.Querier, error) {
	return c.conn, nil
}

// newMockedStore wires a real facade to a pgxmock connection so service tests
// exercise the full postcondition path down to the statement level.
func newMockedStore(t *testing.T) (*database.Store, pgxmock.PgxConnIface) {
	t.Helper()

	mock, err := pgxmock.NewConn()
	require.NoError(t, err)

	store := database.NewStore(stubConnector{conn: mock}, logging.DiscardLogger, 0)
	return store, mock
}
