package datasource

import (
	"testing"

	"github.com/MKhiriev/go-screen-sync/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProvider_Active_EmptyProvider(t *testing.T) {
	provider := NewProvider()

	_, err := provider.Active()

	assert.ErrorIs(t, err, ErrNoDataSource)
}

func TestProvider_Register_FirstRegistrationReturnsNil(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := NewProvider()
	source := mock.NewMockDataSource(ctrl)

	previous := provider.Register(source)

	assert.Nil(t, previous)

	active, err := provider.Active()
	require.NoError(t, err)
	assert.Same(t, source, active)
}

func TestProvider_Register_ReplacementReturnsPrevious(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := NewProvider()
	first := mock.NewMockDataSource(ctrl)
	second := mock.NewMockDataSource(ctrl)

	provider.Register(first)
	previous := provider.Register(second)

	assert.Same(t, first, previous)

	active, err := provider.Active()
	require.NoError(t, err)
	assert.Same(t, second, active)
}

func TestProvider_Active_SnapshotSurvivesReplacement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := NewProvider()
	first := mock.NewMockDataSource(ctrl)
	second := mock.NewMockDataSource(ctrl)

	provider.Register(first)
	snapshot, err := provider.Active()
	require.NoError(t, err)

	// Начатый до замены вызов продолжает работать со старым источником.
	provider.Register(second)
	assert.Same(t, first, snapshot)
}
