package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for in, want := range map[string]Role{
		"MANUFACTURER":          RoleManufacturer,
		"raw-material-supplier": RoleRawMaterialSupplier,
		" warehouse ":           RoleWarehouse,
		"Retailer":              RoleRetailer,
	} {
		got, err := ParseRole(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseRole("END_USER")
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestParseProductStatus(t *testing.T) {
	for in, want := range map[string]ProductStatus{
		"0":            StatusCreated,
		"4":            StatusSold,
		"in_transit":   StatusInTransit,
		"IN-WAREHOUSE": StatusInWarehouse,
		"delivered":    StatusDelivered,
	} {
		got, err := ParseProductStatus(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	for _, in := range []string{"5", "255", "lost", ""} {
		_, err := ParseProductStatus(in)
		assert.ErrorIs(t, err, ErrMalformedInput, in)
	}
}

func TestProductStatusString(t *testing.T) {
	assert.Equal(t, "SOLD", StatusSold.String())
	assert.Equal(t, "UNKNOWN(7)", ProductStatus(7).String())
}

func TestRoleMembershipIndex(t *testing.T) {
	m := &RoleMembership{Members: []Principal{"a", "c", "e"}}

	i, found := m.index("c")
	assert.True(t, found)
	assert.Equal(t, 1, i)

	i, found = m.index("d")
	assert.False(t, found)
	assert.Equal(t, 2, i)
}
