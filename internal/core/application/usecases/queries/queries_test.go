package queries_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryConstructorGuards(t *testing.T) {
	t.Run("zero value queries fail validation", func(t *testing.T) {
		var customersQuery queries.GetCustomersQuery
		require.ErrorIs(t, customersQuery.Validate(), queries.ErrGetCustomersQueryIsNotConstructed)

		var driversQuery queries.GetDriversQuery
		require.ErrorIs(t, driversQuery.Validate(), queries.ErrGetDriversQueryIsNotConstructed)

		var restaurantsQuery queries.GetRestaurantsQuery
		require.ErrorIs(t, restaurantsQuery.Validate(), queries.ErrGetRestaurantsQueryIsNotConstructed)

		var ordersQuery queries.GetOrdersQuery
		require.ErrorIs(t, ordersQuery.Validate(), queries.ErrGetOrdersQueryIsNotConstructed)

		var orderQuery queries.GetOrderQuery
		require.ErrorIs(t, orderQuery.Validate(), queries.ErrGetOrderQueryIsNotConstructed)

		var statsQuery queries.GetDashboardStatsQuery
		require.ErrorIs(t, statsQuery.Validate(), queries.ErrGetDashboardStatsQueryIsNotConstructed)
	})

	t.Run("constructed queries pass validation", func(t *testing.T) {
		require.NoError(t, queries.NewGetCustomersQuery().Validate())
		require.NoError(t, queries.NewGetDriversQuery(true).Validate())
		require.NoError(t, queries.NewGetRestaurantsQuery().Validate())
		require.NoError(t, queries.NewGetDashboardStatsQuery().Validate())
	})
}

func TestNewGetOrdersQuery_StatusFilter(t *testing.T) {
	t.Run("empty status means no filter", func(t *testing.T) {
		query, err := queries.NewGetOrdersQuery("")
		require.NoError(t, err)
		assert.Empty(t, query.Status())
	})

	t.Run("defined status is accepted", func(t *testing.T) {
		query, err := queries.NewGetOrdersQuery("in_transit")
		require.NoError(t, err)
		assert.Equal(t, "in_transit", query.Status())
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		_, err := queries.NewGetOrdersQuery("done")
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewGetOrderQuery_RequiresValidID(t *testing.T) {
	// Given
	var zeroID kernel.UUID

	// When
	_, err := queries.NewGetOrderQuery(zeroID)

	// Then
	require.Error(t, err)

	// And a constructed id works.
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetDriversQuery_AvailableOnly(t *testing.T) {
	assert.True(t, queries.NewGetDriversQuery(true).AvailableOnly())
	assert.False(t, queries.NewGetDriversQuery(false).AvailableOnly())
}
