package domain

import (
	"regexp"
	"strings"
)

type CustomerInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Pincode   string `json:"pincode"`
	Notes     string `json:"notes,omitempty"`
}

func (c CustomerInfo) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// Trimmed returns a copy with surrounding whitespace removed from every field.
func (c CustomerInfo) Trimmed() CustomerInfo {
	return CustomerInfo{
		FirstName: strings.TrimSpace(c.FirstName),
		LastName:  strings.TrimSpace(c.LastName),
		Email:     strings.TrimSpace(c.Email),
		Phone:     strings.TrimSpace(c.Phone),
		Address:   strings.TrimSpace(c.Address),
		City:      strings.TrimSpace(c.City),
		State:     strings.TrimSpace(c.State),
		Pincode:   strings.TrimSpace(c.Pincode),
		Notes:     strings.TrimSpace(c.Notes),
	}
}

// FieldErrors maps a customer field (by its JSON name) to a message. An empty
// map means the form is valid.
type FieldErrors map[string]string

func (fe FieldErrors) Valid() bool { return len(fe) == 0 }

var (
	emailPattern   = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	pincodePattern = regexp.MustCompile(`^\d{6}$`)
	nonDigits      = regexp.MustCompile(`\D`)
)

func Validate(info CustomerInfo) FieldErrors {
	c := info.Trimmed()
	errs := FieldErrors{}

	required := func(field, value, message string) bool {
		if value == "" {
			errs[field] = message
			return false
		}
		return true
	}

	required("firstName", c.FirstName, "First name is required")
	required("lastName", c.LastName, "Last name is required")
	if required("email", c.Email, "Email is required") && !emailPattern.MatchString(c.Email) {
		errs["email"] = "Please enter a valid email"
	}
	if required("phone", c.Phone, "Phone number is required") && len(nonDigits.ReplaceAllString(c.Phone, "")) != 10 {
		errs["phone"] = "Please enter a valid 10-digit phone number"
	}
	required("address", c.Address, "Address is required")
	required("city", c.City, "City is required")
	required("state", c.State, "State is required")
	if required("pincode", c.Pincode, "Pincode is required") && !pincodePattern.MatchString(c.Pincode) {
		errs["pincode"] = "Please enter a valid 6-digit pincode"
	}

	return errs
}
