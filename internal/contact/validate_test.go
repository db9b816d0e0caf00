package contact

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"aicloudmania.dev/internal/models"
)

var testOptions = Options{
	Services: []models.Option{{Value: "devops", Label: "DevOps"}, {Value: "ai-ml", Label: "AI"}},
	Budgets:  []models.Option{{Value: "under-50k", Label: "Under $50,000"}},
}

func validRequest() models.ContactRequest {
	return models.ContactRequest{
		Name:    "Asha Rao",
		Email:   "asha@example.com",
		Message: "We need help moving to Kubernetes.",
	}
}

func TestValidate_AcceptsValidRequest(t *testing.T) {
	assert.Nil(t, Validate(validRequest(), testOptions))

	full := validRequest()
	full.Phone = "+91 98765 43210"
	full.Company = "Acme"
	full.Service = "devops"
	full.Budget = "under-50k"
	assert.Nil(t, Validate(full, testOptions))
}

func TestValidate_FieldRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.ContactRequest)
		field  string
		msg    string
	}{
		{"empty name", func(r *models.ContactRequest) { r.Name = "" }, FieldName, MsgNameTooShort},
		{"one letter name", func(r *models.ContactRequest) { r.Name = "A" }, FieldName, MsgNameTooShort},
		{"missing email", func(r *models.ContactRequest) { r.Email = "" }, FieldEmail, MsgInvalidEmail},
		{"email without at", func(r *models.ContactRequest) { r.Email = "asha.example.com" }, FieldEmail, MsgInvalidEmail},
		{"email without tld", func(r *models.ContactRequest) { r.Email = "asha@example" }, FieldEmail, MsgInvalidEmail},
		{"email with space", func(r *models.ContactRequest) { r.Email = "asha rao@example.com" }, FieldEmail, MsgInvalidEmail},
		{"short message", func(r *models.ContactRequest) { r.Message = "Hi there" }, FieldMessage, MsgMessageTooShort},
		{"huge message", func(r *models.ContactRequest) { r.Message = strings.Repeat("x", MaxMessageLength+1) }, FieldMessage, MsgMessageTooLong},
		{"unknown service", func(r *models.ContactRequest) { r.Service = "astrology" }, FieldService, MsgInvalidService},
		{"unknown budget", func(r *models.ContactRequest) { r.Budget = "one-million" }, FieldBudget, MsgInvalidBudget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			errs := Validate(req, testOptions)
			assert.Equal(t, FieldErrors{tt.field: tt.msg}, errs)
		})
	}
}

func TestValidate_ReportsEveryField(t *testing.T) {
	errs := Validate(models.ContactRequest{}, testOptions)
	assert.Equal(t, []string{FieldEmail, FieldMessage, FieldName}, errs.Fields())

	verr := &ValidationError{Fields: errs}
	assert.Equal(t, "contact request invalid: email, message, name", verr.Error())
}

func TestValidate_CountsCharactersNotBytes(t *testing.T) {
	req := validRequest()
	req.Name = "李明"
	req.Message = "नमस्ते दुनिया हम"
	assert.Nil(t, Validate(req, testOptions))
}

func TestNormalize(t *testing.T) {
	req := Normalize(models.ContactRequest{
		Name:    "  José  ",
		Email:   " jose@example.com\n",
		Message: "\tLooking for a DevOps partner. ",
	})

	assert.Equal(t, "José", req.Name)
	assert.Equal(t, "jose@example.com", req.Email)
	assert.Equal(t, "Looking for a DevOps partner.", req.Message)
}

func TestNormalize_WhitespaceNameFails(t *testing.T) {
	req := Normalize(validRequest())
	req.Name = "   "
	req = Normalize(req)

	assert.Equal(t, MsgNameTooShort, Validate(req, testOptions)[FieldName])
}
