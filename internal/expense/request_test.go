package expense

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddRequest(t *testing.T) {
	req, err := ParseAddRequest(`{"userId":"u1","amount":12.50,"category":"food","description":"lunch"}`)
	require.NoError(t, err)

	assert.Equal(t, "u1", req.UserID)
	assert.Equal(t, "food", req.Category)
	assert.Equal(t, "lunch", req.Description)
	require.NotNil(t, req.Amount)
	assert.True(t, decimal.RequireFromString("12.5").Equal(*req.Amount))
	assert.Equal(t, "12.5", req.Amount.String())
}

func TestParseAddRequest_ZeroAmountIsValid(t *testing.T) {
	req, err := ParseAddRequest(`{"userId":"u1","amount":0,"category":"food"}`)
	require.NoError(t, err)

	require.NotNil(t, req.Amount)
	assert.True(t, req.Amount.IsZero())
	assert.Equal(t, "", req.Description)
}

func TestParseAddRequest_AmountAsString(t *testing.T) {
	req, err := ParseAddRequest(`{"userId":"u1","amount":"0.10","category":"fee"}`)
	require.NoError(t, err)
	assert.Equal(t, "0.1", req.Amount.String())
}

func TestParseAddRequest_MissingFields(t *testing.T) {
	cases := map[string]string{
		"amount omitted": `{"userId":"u1","category":"food"}`,
		"amount null":    `{"userId":"u1","amount":null,"category":"food"}`,
		"empty userId":   `{"userId":"","amount":1,"category":"food"}`,
		"no userId":      `{"amount":1,"category":"food"}`,
		"empty category": `{"userId":"u1","amount":1,"category":""}`,
		"empty object":   `{}`,
		"empty body":     ``,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseAddRequest(body)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, MsgMissingFields, verr.Message)
		})
	}
}

func TestParseAddRequest_InvalidBody(t *testing.T) {
	cases := map[string]string{
		"not json":       `userId=u1`,
		"bad amount":     `{"userId":"u1","amount":"ten","category":"food"}`,
		"boolean amount": `{"userId":"u1","amount":true,"category":"food"}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseAddRequest(body)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, MsgInvalidBody, verr.Message)
		})
	}
}

func TestValidateOwnerID(t *testing.T) {
	assert.NoError(t, ValidateOwnerID("u1"))

	err := ValidateOwnerID("")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, MsgMissingOwnerID, verr.Error())
}

func TestParseAddRequest_AmountRange(t *testing.T) {
	valid := []string{
		`0`,
		`-12.50`,
		`9.99e125`,
		`1e-130`,
		`12345678901234567890123456789012345678`,
		`1.2345678901234567890123456789012345678e100`,
		`1000000000000000000000000000000000000000000`,
	}
	for _, amount := range valid {
		t.Run("valid "+amount, func(t *testing.T) {
			_, err := ParseAddRequest(`{"userId":"u1","amount":` + amount + `,"category":"food"}`)
			assert.NoError(t, err)
		})
	}

	invalid := []string{
		`1e50000000`,
		`-1e50000000`,
		`1e-50000000`,
		`1e126`,
		`1e-131`,
		`123456789012345678901234567890123456789`,
	}
	for _, amount := range invalid {
		t.Run("invalid "+amount, func(t *testing.T) {
			_, err := ParseAddRequest(`{"userId":"u1","amount":` + amount + `,"category":"food"}`)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, MsgAmountRange, verr.Message)
		})
	}
}
