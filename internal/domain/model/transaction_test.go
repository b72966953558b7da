package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusFromGateway(t *testing.T) {
	cases := map[string]TransactionStatus{
		"settlement":    StatusSuccess,
		"capture":       StatusSuccess,
		"pending":       StatusPending,
		"deny":          StatusFailed,
		"cancel":        StatusCancelled,
		"expire":        StatusExpired,
		"refund":        StatusUnknown,
		"authorize":     StatusUnknown,
		"":              StatusUnknown,
		"partial_chargeback": StatusUnknown,
	}
	for raw, want := range cases {
		assert.Equal(t, want, StatusFromGateway(raw), "gateway status %q", raw)
	}
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleEditor.Valid())
	assert.False(t, Role("superuser").Valid())
	assert.False(t, Role("").Valid())
}
