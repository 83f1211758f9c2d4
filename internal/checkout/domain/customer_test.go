package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validCustomer() CustomerInfo {
	return CustomerInfo{
		FirstName: "Asha",
		LastName:  "Rao",
		Email:     "foo@bar.com",
		Phone:     "98765 43210",
		Address:   "12 MG Road",
		City:      "Mumbai",
		State:     "Maharashtra",
		Pincode:   "400001",
	}
}

func TestValidateAcceptsWellFormedInfo(t *testing.T) {
	assert.Empty(t, Validate(validCustomer()))
}

func TestValidateFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CustomerInfo)
		field  string
		msg    string
	}{
		{"blank first name", func(c *CustomerInfo) { c.FirstName = "  " }, "firstName", "First name is required"},
		{"blank last name", func(c *CustomerInfo) { c.LastName = "" }, "lastName", "Last name is required"},
		{"empty email", func(c *CustomerInfo) { c.Email = "" }, "email", "Email is required"},
		{"email without at", func(c *CustomerInfo) { c.Email = "foo" }, "email", "Please enter a valid email"},
		{"email without dot", func(c *CustomerInfo) { c.Email = "foo@bar" }, "email", "Please enter a valid email"},
		{"short phone", func(c *CustomerInfo) { c.Phone = "12345" }, "phone", "Please enter a valid 10-digit phone number"},
		{"eleven digit phone", func(c *CustomerInfo) { c.Phone = "98765432101" }, "phone", "Please enter a valid 10-digit phone number"},
		{"blank phone", func(c *CustomerInfo) { c.Phone = " " }, "phone", "Phone number is required"},
		{"blank address", func(c *CustomerInfo) { c.Address = "" }, "address", "Address is required"},
		{"blank city", func(c *CustomerInfo) { c.City = "" }, "city", "City is required"},
		{"blank state", func(c *CustomerInfo) { c.State = "" }, "state", "State is required"},
		{"short pincode", func(c *CustomerInfo) { c.Pincode = "1234" }, "pincode", "Please enter a valid 6-digit pincode"},
		{"long pincode", func(c *CustomerInfo) { c.Pincode = "1234567" }, "pincode", "Please enter a valid 6-digit pincode"},
		{"blank pincode", func(c *CustomerInfo) { c.Pincode = "" }, "pincode", "Pincode is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCustomer()
			tt.mutate(&c)
			fe := Validate(c)
			assert.Equal(t, FieldErrors{tt.field: tt.msg}, fe)
			assert.False(t, fe.Valid())
		})
	}
}

func TestValidateTrimsBeforeChecking(t *testing.T) {
	c := validCustomer()
	c.Email = "  foo@bar.com "
	c.Pincode = " 400001 "
	c.Phone = "98765-43210"
	assert.Empty(t, Validate(c))
}

func TestValidateReportsEveryField(t *testing.T) {
	fe := Validate(CustomerInfo{})
	assert.Len(t, fe, 8)
	assert.NotContains(t, fe, "notes")
}
