package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	ReceiverID uint    `json:"receiverId" validate:"required"`
	Message    string  `json:"message" validate:"required"`
	Role       *string `json:"role" validate:"omitempty,is-user-role"`
	TxType     string  `json:"transactionType" validate:"omitempty,is-transaction-type"`
	Type       string  `json:"type" validate:"omitempty,is-property-type"`
}

func TestValidate_RequiredFieldsUseJSONNames(t *testing.T) {
	v := New()

	err := v.Validate(&sample{})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "This field is required", vErr.Errors["receiverId"])
	assert.Equal(t, "This field is required", vErr.Errors["message"])
}

func TestValidate_CustomRules(t *testing.T) {
	v := New()
	bad := "admin"
	good := "seller"

	err := v.Validate(&sample{ReceiverID: 1, Message: "hi", Role: &bad, TxType: "lease", Type: "castle"})
	require.Error(t, err)
	vErr := err.(*ValidationError)
	assert.Contains(t, vErr.Errors, "role")
	assert.Contains(t, vErr.Errors, "transactionType")
	assert.Contains(t, vErr.Errors, "type")

	assert.NoError(t, v.Validate(&sample{ReceiverID: 1, Message: "hi", Role: &good, TxType: "rent", Type: "Villa"}))
}
