package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelhills/internal/domains/bill/model/dto"
	"hotelhills/shared/validator"
)

func TestCharges_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    dto.Charges
		wantErr bool
	}{
		{name: "number", input: `50`, want: 50},
		{name: "decimal", input: `12.75`, want: 12.75},
		{name: "numeric string", input: `"50.5"`, want: 50.5},
		{name: "padded string", input: `" 7 "`, want: 7},
		{name: "empty string", input: `""`, want: 0},
		{name: "null", input: `null`, want: 0},
		{name: "negative is decoded for validation", input: `-5`, want: -5},
		{name: "word", input: `"fifty"`, wantErr: true},
		{name: "nan string", input: `"NaN"`, wantErr: true},
		{name: "infinity string", input: `"Inf"`, wantErr: true},
		{name: "boolean", input: `true`, wantErr: true},
		{name: "object", input: `{"amount": 5}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got dto.Charges

			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				assert.ErrorIs(t, err, dto.ErrInvalidCharges)

				return
			}

			require.NoError(t, err)
			assert.InDelta(t, float64(tt.want), got.Float64(), 0.0001)
		})
	}
}

func TestGenerateBillRequest_UnmarshalJSON(t *testing.T) {
	const stayID = "0d2c8f7e-6a0b-4f3e-9e55-3c2a1b0f9e11"

	tests := []struct {
		name       string
		body       string
		wantID     string
		wantCharge float64
	}{
		{name: "snake case", body: `{"booking_id":"` + stayID + `","additional_charges":25}`, wantID: stayID, wantCharge: 25},
		{name: "stay id alias", body: `{"stayId":"` + stayID + `","additionalCharges":"10"}`, wantID: stayID, wantCharge: 10},
		{name: "booking id alias", body: `{"bookingId":"` + stayID + `"}`, wantID: stayID},
		{name: "snake case wins", body: `{"booking_id":"` + stayID + `","stayId":"other","additional_charges":1,"additionalCharges":2}`, wantID: stayID, wantCharge: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req dto.GenerateBillRequest

			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, tt.wantID, req.BookingID)
			assert.InDelta(t, tt.wantCharge, req.AdditionalCharges.Float64(), 0.0001)
		})
	}
}

func TestGenerateBillRequest_Validation(t *testing.T) {
	t.Run("missing stay", func(t *testing.T) {
		req := dto.GenerateBillRequest{}

		err := validator.ValidateStruct(&req)

		require.Error(t, err)
		assert.Equal(t, "booking_id is required", err.Error())
	})

	t.Run("negative charges", func(t *testing.T) {
		req := dto.GenerateBillRequest{BookingID: "0d2c8f7e-6a0b-4f3e-9e55-3c2a1b0f9e11", AdditionalCharges: -1}

		err := validator.ValidateStruct(&req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "additional_charges")
	})
}
