package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"concierge/internal/domains/request/model"
)

func TestEnums_Valid(t *testing.T) {
	assert.True(t, model.TypeOrderFood.Valid())
	assert.False(t, model.Type("laundry").Valid())
	assert.True(t, model.StatusInProgress.Valid())
	assert.False(t, model.Status("done").Valid())
	assert.True(t, model.PriorityLow.Valid())
	assert.False(t, model.Priority("urgent").Valid())
}

func TestOrderDetails_ValueScan(t *testing.T) {
	details := model.OrderDetails{
		Items:       []model.OrderItem{{Name: "Tea", Price: 20, Quantity: 2, Total: 40}},
		TotalAmount: 40,
	}

	value, err := details.Value()
	require.NoError(t, err)

	var scanned model.OrderDetails
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, details, scanned)

	var fromString model.OrderDetails
	require.NoError(t, fromString.Scan(`{"items":[],"totalAmount":0}`))
	assert.Empty(t, fromString.Items)

	assert.Error(t, scanned.Scan(42))
}

func TestFields(t *testing.T) {
	status := model.StatusCompleted
	phone := "+1000"
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	fields := model.Fields{Status: &status, GuestPhone: &phone}

	columns := fields.Columns(now)
	assert.Equal(t, map[string]any{
		model.FieldStatus:     model.StatusCompleted,
		model.FieldGuestPhone: "+1000",
		model.FieldUpdatedAt:  now,
	}, columns)

	record := model.ServiceRequest{Status: model.StatusPending, Message: "keep", GuestPhone: "+9"}
	fields.Apply(&record, now)

	assert.Equal(t, model.StatusCompleted, record.Status)
	assert.Equal(t, "+1000", record.GuestPhone)
	assert.Equal(t, "keep", record.Message)
	assert.Equal(t, now, record.UpdatedAt)

	assert.Equal(t, map[string]any{model.FieldUpdatedAt: now}, model.Fields{}.Columns(now))
}
