// Package customer defines the customer entity and its business rules.
package customer

import (
	"net/http"
	"net/mail"
	"regexp"
	"strings"
	"time"

	"github.com/jsamuelsen11/go-service-errors/internal/domain"
)

// CodeInvalidCustomer is raised when a customer fails its own business rules.
var CodeInvalidCustomer = domain.ErrorCodeOf("INVALID_CUSTOMER", http.StatusUnprocessableEntity)

const (
	msgRequired = "is required"
	maxNameLen  = 200
)

// phonePattern accepts E.164-style numbers.
var phonePattern = regexp.MustCompile(`^\+?[1-9][0-9]{6,14}$`)

// Customer is a registered account holder.
type Customer struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
}

// Validate checks the business rules for a customer. It returns a
// *domain.ValidationError listing every rejected field, or nil. The message
// is synthesized from the number of rejected fields.
func (c *Customer) Validate() error {
	b := domain.NewValidationBuilder(CodeInvalidCustomer.Code(), "")
	failed := false
	reject := func(field, msg string) {
		b.FieldError(field, msg)
		failed = true
	}

	name := strings.TrimSpace(c.Name)
	switch {
	case name == "":
		reject("name", msgRequired)
	case len(name) > maxNameLen:
		reject("name", "must be at most 200 characters")
	}

	if strings.TrimSpace(c.Email) == "" {
		reject("email", msgRequired)
	} else if _, err := mail.ParseAddress(c.Email); err != nil {
		reject("email", "must be a valid email address")
	}

	if c.Phone != "" && !phonePattern.MatchString(c.Phone) {
		reject("phoneNumber", "must be an E.164 phone number")
	}

	if !failed {
		return nil
	}
	return b.Build()
}
