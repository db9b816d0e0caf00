package models

import "time"

// ContactRequest is the record submitted through the contact form.
// Phone, Company, Service and Budget are optional.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Company string `json:"company,omitempty"`
	Service string `json:"service,omitempty"`
	Budget  string `json:"budget,omitempty"`
	Message string `json:"message"`
}

// Submission is a validated contact request handed to a delivery backend.
type Submission struct {
	ID         string         `json:"id"`
	ReceivedAt time.Time      `json:"received_at"`
	Request    ContactRequest `json:"request"`
}

// Receipt acknowledges an accepted submission.
type Receipt struct {
	ID         string    `json:"id"`
	ReceivedAt time.Time `json:"received_at"`
}

// Option is a value/label pair for a select input
type Option struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// ContactInfo is one row of the contact details card
type ContactInfo struct {
	Icon  string `json:"icon" yaml:"icon"`
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
	Color string `json:"color" yaml:"color"`
}

// Certification is a compliance badge
type Certification struct {
	Icon   string `json:"icon" yaml:"icon"`
	Name   string `json:"name" yaml:"name"`
	Status string `json:"status" yaml:"status"`
	Color  string `json:"color" yaml:"color"`
}
