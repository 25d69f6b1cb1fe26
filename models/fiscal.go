package models

import (
	"time"
	"unicode/utf8"
)

// Roles a prosecutor account can hold
const (
	RoleFiscal = "fiscal"
	RoleAdmin  = "admin"
)

// Fiscalia represents an organizational unit prosecutors belong to
type Fiscalia struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Address   string    `json:"address" db:"address"`
	Phone     string    `json:"phone" db:"phone"`
	Active    bool      `json:"active" db:"active"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// FiscaliaForm represents form data for creating/updating organizational units
type FiscaliaForm struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Active  *bool  `json:"active,omitempty"`
}

// Validate validates the fiscalia form data
func (f *FiscaliaForm) Validate() []string {
	var errors []string

	if f.Name == "" {
		errors = append(errors, "Name is required")
	}
	if utf8.RuneCountInString(f.Name) > 255 {
		errors = append(errors, "Name must be at most 255 characters")
	}
	if len(f.Address) > 500 {
		errors = append(errors, "Address must be less than 500 characters")
	}
	if len(f.Phone) > 50 {
		errors = append(errors, "Phone must be less than 50 characters")
	}

	return errors
}

// Fiscal represents a prosecutor
type Fiscal struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	Active       bool      `json:"active" db:"active"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	FiscaliaID   int64     `json:"fiscaliaId" db:"fiscalia_id"`
}

// FiscalForm represents form data for creating/updating prosecutors.
// Password is only required on creation; an empty password on update keeps the current one.
type FiscalForm struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	Active     *bool  `json:"active,omitempty"`
	FiscaliaID int64  `json:"fiscaliaId"`
}

// Validate validates the prosecutor form data
func (f *FiscalForm) Validate(requirePassword bool) []string {
	var errors []string

	if f.Name == "" {
		errors = append(errors, "Name is required")
	}
	if utf8.RuneCountInString(f.Name) > 255 {
		errors = append(errors, "Name must be at most 255 characters")
	}

	if f.Email == "" {
		errors = append(errors, "Email is required")
	} else if !isValidEmail(f.Email) {
		errors = append(errors, "Email format is invalid")
	}

	if requirePassword && f.Password == "" {
		errors = append(errors, "Password is required")
	}
	if f.Password != "" && len(f.Password) < 8 {
		errors = append(errors, "Password must be at least 8 characters")
	}

	if f.Role != "" && f.Role != RoleFiscal && f.Role != RoleAdmin {
		errors = append(errors, "Role must be fiscal or admin")
	}

	if f.FiscaliaID <= 0 {
		errors = append(errors, "Fiscalia is required")
	}

	return errors
}

// FiscalFilter narrows a prosecutor listing
type FiscalFilter struct {
	FiscaliaID int64
	Active     *bool
}

// isValidEmail performs basic email validation
func isValidEmail(email string) bool {
	// Simple validation: must contain @ and at least one dot after @
	atIndex := -1
	for i, char := range email {
		if char == '@' {
			if atIndex != -1 {
				return false // Multiple @ symbols
			}
			atIndex = i
		}
	}

	if atIndex == -1 || atIndex == 0 || atIndex == len(email)-1 {
		return false
	}

	for i := atIndex + 1; i < len(email); i++ {
		if email[i] == '.' && i < len(email)-1 {
			return true
		}
	}

	return false
}
