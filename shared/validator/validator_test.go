package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelhills/shared/failure"
	"hotelhills/shared/validator"
)

type guestRequest struct {
	Name   string   `json:"name"   validate:"required,max=10"`
	Email  string   `json:"email"  validate:"omitempty,email"`
	Guests int      `json:"guests" validate:"gte=1,lte=6"`
	Status string   `json:"status" validate:"omitempty,oneof=reserved completed cancelled"`
	Price  *float64 `json:"price"  validate:"required,gte=0"`
	Items  []string `json:"items"  validate:"omitempty,min=1,max=2"`
}

func price(v float64) *float64 {
	return &v
}

func validGuest() guestRequest {
	return guestRequest{Name: "Ana", Email: "ana@hills.test", Guests: 2, Status: "reserved", Price: price(80)}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *guestRequest)
		want   string
	}{
		{name: "valid", mutate: func(*guestRequest) {}},
		{name: "missing name", mutate: func(r *guestRequest) { r.Name = "" }, want: "name is required"},
		{name: "long name", mutate: func(r *guestRequest) { r.Name = "Anastasia Hills" }, want: "name must be at most 10 characters"},
		{name: "bad email", mutate: func(r *guestRequest) { r.Email = "ana" }, want: "email must be a valid email address"},
		{name: "too many guests", mutate: func(r *guestRequest) { r.Guests = 9 }, want: "guests must be less than or equal to 6"},
		{name: "no guests", mutate: func(r *guestRequest) { r.Guests = 0 }, want: "guests must be greater than or equal to 1"},
		{name: "unknown status", mutate: func(r *guestRequest) { r.Status = "open" }, want: "status must be one of reserved completed cancelled"},
		{name: "missing price", mutate: func(r *guestRequest) { r.Price = nil }, want: "price is required"},
		{name: "zero price is allowed", mutate: func(r *guestRequest) { r.Price = price(0) }},
		{name: "too many items", mutate: func(r *guestRequest) { r.Items = []string{"a", "b", "c"} }, want: "items must contain at most 2 item(s)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validGuest()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)
			if tt.want == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestValidateStruct_ReportsFirstFailingField(t *testing.T) {
	err := validator.ValidateStruct(&guestRequest{Email: "nope", Guests: 0})

	require.Error(t, err)
	assert.Equal(t, "name is required", err.Error())
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("maintenance", "oneof=available booked maintenance"))
	assert.NoError(t, validator.ValidateVar(4, "gte=1,lte=6"))

	err := validator.ValidateVar(12, "gte=1,lte=6")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be less than or equal to 6")
}

func TestValidate(t *testing.T) {
	t.Run("decodes and validates", func(t *testing.T) {
		var req guestRequest

		err := validator.Validate(strings.NewReader(`{"name":"Ana","guests":2,"price":80}`), &req)

		require.NoError(t, err)
		assert.Equal(t, "Ana", req.Name)
		require.NotNil(t, req.Price)
		assert.InDelta(t, 80.0, *req.Price, 0.001)
	})

	t.Run("rule violations after decoding", func(t *testing.T) {
		err := validator.Validate(strings.NewReader(`{"name":"Ana","guests":2}`), &guestRequest{})

		require.Error(t, err)
		assert.Equal(t, "price is required", err.Error())
	})
}

func TestValidateDecodeMessages(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "empty body", body: "", want: "request body is required"},
		{name: "truncated json", body: `{"price":`, want: "request body must be valid JSON"},
		{name: "malformed json", body: `{"name":"Ana",}`, want: "request body must be valid JSON"},
		{name: "number field given a string", body: `{"price":"cheap"}`, want: "price must be a number"},
		{name: "integer field given a string", body: `{"guests":"two"}`, want: "guests must be a whole number"},
		{name: "string field given a number", body: `{"name":7}`, want: "name must be a string"},
		{name: "empty list", body: `{"name":"Ana","guests":1,"price":1,"items":[]}`, want: "items must contain at least 1 item(s)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.Validate(strings.NewReader(tt.body), &guestRequest{})

			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestDateTimeFlexValidation(t *testing.T) {
	tests := []struct {
		value string
		valid bool
	}{
		{value: "2024-01-01T14:00:00Z", valid: true},
		{value: "2024-01-01T14:00:00+07:00", valid: true},
		{value: "2024-01-01T14:00", valid: true},
		{value: "2024-03-04", valid: true},
		{value: "tomorrow", valid: false},
		{value: "2024-13-01", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			err := validator.ValidateParam("check_in", tt.value, "datetime_flex")
			if tt.valid {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.True(t, strings.HasPrefix(err.Error(), "check_in must be a date"), err.Error())
		})
	}
}

func TestValidateID(t *testing.T) {
	assert.NoError(t, validator.ValidateID("6f1c1a52-8a53-4f7e-9d8e-0b7a2f1a9c11"))

	for _, id := range []string{"", "42", "not-a-uuid"} {
		err := validator.ValidateID(id)

		require.Error(t, err, id)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	}

	assert.Equal(t, "id must be a valid UUID", validator.ValidateID("42").Error())
	assert.Equal(t, "id is required", validator.ValidateID("").Error())
}

func TestValidateParam(t *testing.T) {
	assert.NoError(t, validator.ValidateParam("room_id", "", "omitempty,uuid"))

	err := validator.ValidateParam("room_id", "abc", "omitempty,uuid")

	require.Error(t, err)
	assert.Equal(t, "room_id must be a valid UUID", err.Error())
}

func TestUUIDOrEmpty(t *testing.T) {
	type detach struct {
		GuestID *string `json:"guest_id" validate:"omitnil,uuid_or_empty"`
	}

	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "absent", body: `{}`},
		{name: "null", body: `{"guest_id":null}`},
		{name: "empty clears", body: `{"guest_id":""}`},
		{name: "uuid", body: `{"guest_id":"6f1c1a52-8a53-4f7e-9d8e-0b7a2f1a9c11"}`},
		{name: "not a uuid", body: `{"guest_id":"abc"}`, want: "guest_id must be a valid UUID, or empty to clear it"},
		{name: "braced uuid", body: `{"guest_id":"{6f1c1a52-8a53-4f7e-9d8e-0b7a2f1a9c11}"}`, want: "guest_id must be a valid UUID, or empty to clear it"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.Validate(strings.NewReader(tt.body), &detach{})
			if tt.want == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}
