package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingAction_Expired(t *testing.T) {
	created := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	action := &PendingAction{Type: ActionNavigation, Timestamp: created.UnixMilli()}

	tests := []struct {
		name    string
		now     time.Time
		expired bool
	}{
		{name: "just created", now: created, expired: false},
		{name: "one minute later", now: created.Add(time.Minute), expired: false},
		{name: "one millisecond before ttl", now: created.Add(PendingActionTTL - time.Millisecond), expired: false},
		{name: "exactly at ttl", now: created.Add(PendingActionTTL), expired: true},
		{name: "long after", now: created.Add(24 * time.Hour), expired: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expired, action.Expired(tt.now))
		})
	}
}

func TestPendingAction_JSON(t *testing.T) {
	action := PendingAction{
		Type:      ActionAddFavorite,
		Data:      PendingActionData{CarID: 42},
		ReturnURL: "/listings",
		Timestamp: 1700000000000,
	}

	data, err := json.Marshal(action)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"add_favorite","data":{"car_id":42},"returnUrl":"/listings","timestamp":1700000000000}`, string(data))

	var decoded PendingAction
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, action, decoded)
	assert.True(t, decoded.IsFavorite())
	assert.Equal(t, int64(1700000000000), decoded.CreatedAt().UnixMilli())
}

func TestUser_Valid(t *testing.T) {
	var nilUser *User
	assert.False(t, nilUser.Valid())
	assert.False(t, (&User{Email: "a@b.c"}).Valid())
	assert.True(t, (&User{ID: 3}).Valid())
}
