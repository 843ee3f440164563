package model_test

import (
	"testing"

	"concierge/internal/domains/hotel/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings_ValueScan(t *testing.T) {
	settings := model.DefaultSettings()
	settings.ServicesEnabled.OrderFood = false

	value, err := settings.Value()
	require.NoError(t, err)

	var scanned model.Settings
	require.NoError(t, scanned.Scan(value))

	assert.Equal(t, settings, scanned)
}

func TestSettings_ScanPartialDocumentKeepsDefaults(t *testing.T) {
	var scanned model.Settings

	require.NoError(t, scanned.Scan(`{"servicesEnabled":{"lodgeComplaint":false}}`))

	assert.False(t, scanned.ServicesEnabled.LodgeComplaint)
	assert.True(t, scanned.ServicesEnabled.OrderFood)
	assert.True(t, scanned.Notifications.Sound)
}

func TestSettings_ScanNull(t *testing.T) {
	var scanned model.Settings

	require.NoError(t, scanned.Scan(nil))
	assert.Equal(t, model.DefaultSettings(), scanned)
}

func TestSettings_ScanUnsupported(t *testing.T) {
	var scanned model.Settings

	assert.Error(t, scanned.Scan(42))
}
