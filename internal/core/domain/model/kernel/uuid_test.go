package kernel_test

import (
	"testing"

	"logipeek/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shipmentID is a fixed identifier reused across parsing tests.
const shipmentID = "7c9e6679-7425-40de-944b-e07fc1f90ae7"

func TestNewUUID(t *testing.T) {
	id := kernel.NewUUID()

	assert.NoError(t, id.Validate())
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", id.String())
	assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`, id.String())
}

func TestNewUUID_Unique(t *testing.T) {
	orderID := kernel.NewUUID()
	driverID := kernel.NewUUID()

	assert.NotEqual(t, orderID.String(), driverID.String())
	assert.False(t, orderID.IsEqual(driverID))
}

func TestUUIDFromString_AcceptedForms(t *testing.T) {
	// Identifiers arrive over the API in whatever form the client sends;
	// every canonical textual encoding must parse to the same value.
	forms := []struct {
		name  string
		input string
	}{
		{"canonical", shipmentID},
		{"braced", "{" + shipmentID + "}"},
		{"urn_prefixed", "urn:uuid:" + shipmentID},
		{"no_hyphens", "7c9e6679742540de944be07fc1f90ae7"},
	}

	for _, form := range forms {
		t.Run(form.name, func(t *testing.T) {
			id, err := kernel.UUIDFromString(form.input)

			require.NoError(t, err)
			assert.Equal(t, shipmentID, id.String())
			assert.NoError(t, id.Validate())
		})
	}
}

func TestUUIDFromString_RejectsMalformedInput(t *testing.T) {
	inputs := []string{
		"",
		"not-an-id",
		"7c9e6679-7425-40de-944b",
		shipmentID + "-extra",
		"zzze6679-7425-40de-944b-e07fc1f90ae7",
	}

	for _, input := range inputs {
		_, err := kernel.UUIDFromString(input)

		require.Error(t, err, "input %q must not parse", input)
		assert.Contains(t, err.Error(), "invalid UUID format")
	}
}

func TestUUIDFromBytes(t *testing.T) {
	original, err := kernel.UUIDFromString(shipmentID)
	require.NoError(t, err)
	raw := original.Bytes()

	restored, err := kernel.UUIDFromBytes(raw[:])

	require.NoError(t, err)
	assert.True(t, restored.IsEqual(original))
}

func TestUUIDFromBytes_WrongLength(t *testing.T) {
	_, err := kernel.UUIDFromBytes([]byte{0x7c, 0x9e, 0x66})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid UUID format")
}

func TestUUIDFromBytes_AllZero(t *testing.T) {
	_, err := kernel.UUIDFromBytes(make([]byte, 16))

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestUUID_String_Stable(t *testing.T) {
	id, err := kernel.UUIDFromString(shipmentID)
	require.NoError(t, err)

	assert.Equal(t, shipmentID, id.String())
	assert.Equal(t, id.String(), id.String())
}

func TestUUID_IsEqual(t *testing.T) {
	first, err := kernel.UUIDFromString(shipmentID)
	require.NoError(t, err)
	second, err := kernel.UUIDFromString(shipmentID)
	require.NoError(t, err)

	assert.True(t, first.IsEqual(second))
	assert.True(t, second.IsEqual(first))

	var zero kernel.UUID
	assert.False(t, zero.IsEqual(first))
	assert.True(t, zero.IsEqual(kernel.UUID{}))
}

func TestUUID_Validate(t *testing.T) {
	assert.NoError(t, kernel.NewUUID().Validate())

	var zero kernel.UUID
	assert.ErrorIs(t, zero.Validate(), kernel.ErrUUIDIsNotConstructed)

	nilID, err := kernel.UUIDFromString("00000000-0000-0000-0000-000000000000")
	require.NoError(t, err)
	assert.ErrorIs(t, nilID.Validate(), kernel.ErrUUIDIsNotConstructed)
}

// Aggregates hold identifiers as plain struct fields; the zero value must
// stay detectable so Restore paths can reject half-built references.
func TestUUID_AsAggregateReference(t *testing.T) {
	type claim struct {
		OrderID  kernel.UUID
		DriverID kernel.UUID
	}

	filled := claim{OrderID: kernel.NewUUID(), DriverID: kernel.NewUUID()}
	assert.NoError(t, filled.OrderID.Validate())
	assert.NoError(t, filled.DriverID.Validate())

	var blank claim
	assert.Error(t, blank.OrderID.Validate())
	assert.Error(t, blank.DriverID.Validate())
}

func TestUUID_BytesCopyIsIndependent(t *testing.T) {
	id := kernel.NewUUID()
	before := id.String()

	raw := id.Bytes()
	for i := range raw {
		raw[i] = 0xFF
	}

	assert.Equal(t, before, id.String())
	assert.NoError(t, id.Validate())
	assert.NotEqual(t, id.String(), uuid.UUID(raw).String())
}
