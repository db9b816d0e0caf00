// Package contact validates contact form submissions and hands them to an
// externally supplied delivery backend.
package contact

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"aicloudmania.dev/internal/models"
)

// Field names as they appear in form posts and JSON bodies.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldCompany = "company"
	FieldService = "service"
	FieldBudget  = "budget"
	FieldMessage = "message"
)

// Limits on field lengths, counted in characters.
const (
	MinNameLength    = 2
	MinMessageLength = 10
	MaxShortFieldLen = 100
	MaxMessageLength = 5000
	maxEmailLength   = 254
)

// User-facing validation messages.
const (
	MsgNameTooShort    = "Name must be at least 2 characters"
	MsgInvalidEmail    = "Please enter a valid email address"
	MsgMessageTooShort = "Message must be at least 10 characters"
	MsgMessageTooLong  = "Message must be at most 5000 characters"
	MsgInvalidService  = "Please select a valid service"
	MsgInvalidBudget   = "Please select a valid budget range"
)

// emailPattern accepts the common local@domain.tld shape: no spaces, no
// consecutive dots, and a dotted domain with an alphabetic TLD.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9_'+\-]+(\.[A-Za-z0-9_'+\-]+)*@([A-Za-z0-9]([A-Za-z0-9\-]*[A-Za-z0-9])?\.)+[A-Za-z]{2,}$`)

// FieldErrors maps a field name to its validation message.
type FieldErrors map[string]string

// Fields returns the failing field names in a stable order.
func (fe FieldErrors) Fields() []string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// ValidationError reports every invalid field of a submission.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("contact request invalid: %s", strings.Join(e.Fields.Fields(), ", "))
}

// Options lists the allowed values of the optional enum fields.
type Options struct {
	Services []models.Option
	Budgets  []models.Option
}

// Normalize trims surrounding whitespace and applies NFC normalization so
// that lengths and duplicate detection see canonical text.
func Normalize(req models.ContactRequest) models.ContactRequest {
	clean := func(s string) string {
		return strings.TrimSpace(norm.NFC.String(s))
	}
	return models.ContactRequest{
		Name:    clean(req.Name),
		Email:   clean(req.Email),
		Phone:   clean(req.Phone),
		Company: clean(req.Company),
		Service: clean(req.Service),
		Budget:  clean(req.Budget),
		Message: clean(req.Message),
	}
}

// Validate checks a normalized request. It returns nil when the request is valid.
func Validate(req models.ContactRequest, opts Options) FieldErrors {
	errs := FieldErrors{}

	if utf8.RuneCountInString(req.Name) < MinNameLength {
		errs[FieldName] = MsgNameTooShort
	} else if utf8.RuneCountInString(req.Name) > MaxShortFieldLen {
		errs[FieldName] = fmt.Sprintf("Name must be at most %d characters", MaxShortFieldLen)
	}

	if !ValidEmail(req.Email) {
		errs[FieldEmail] = MsgInvalidEmail
	}

	if utf8.RuneCountInString(req.Phone) > MaxShortFieldLen {
		errs[FieldPhone] = fmt.Sprintf("Phone must be at most %d characters", MaxShortFieldLen)
	}
	if utf8.RuneCountInString(req.Company) > MaxShortFieldLen {
		errs[FieldCompany] = fmt.Sprintf("Company must be at most %d characters", MaxShortFieldLen)
	}

	if req.Service != "" && !hasOption(opts.Services, req.Service) {
		errs[FieldService] = MsgInvalidService
	}
	if req.Budget != "" && !hasOption(opts.Budgets, req.Budget) {
		errs[FieldBudget] = MsgInvalidBudget
	}

	switch n := utf8.RuneCountInString(req.Message); {
	case n < MinMessageLength:
		errs[FieldMessage] = MsgMessageTooShort
	case n > MaxMessageLength:
		errs[FieldMessage] = MsgMessageTooLong
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidEmail reports whether s has the shape of an email address.
func ValidEmail(s string) bool {
	if s == "" || len(s) > maxEmailLength {
		return false
	}
	return emailPattern.MatchString(s)
}

func hasOption(opts []models.Option, value string) bool {
	for _, o := range opts {
		if o.Value == value {
			return true
		}
	}
	return false
}
