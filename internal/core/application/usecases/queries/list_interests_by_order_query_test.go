package queries_test

import (
	"testing"

	"writedesk/internal/core/application/usecases/queries"
	"writedesk/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListInterestsByOrderQuery_Valid(t *testing.T) {
	orderID := kernel.NewUUID()

	query, err := queries.NewListInterestsByOrderQuery(orderID)

	require.NoError(t, err)
	assert.Equal(t, orderID, query.OrderID())
	assert.NoError(t, query.Validate())
}

func TestNewListInterestsByOrderQuery_InvalidOrderID(t *testing.T) {
	_, err := queries.NewListInterestsByOrderQuery(kernel.UUID{})

	require.Error(t, err)
}

func TestListInterestsByOrderQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.ListInterestsByOrderQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrListInterestsByOrderQueryIsNotConstructed)
}
