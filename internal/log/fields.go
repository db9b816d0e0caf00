package log

// Canonical field name constants for structured logging.
const (
	FieldRequestID    = "request_id"
	FieldSubmissionID = "submission_id"
	FieldEvent        = "event"
	FieldComponent    = "component"
	FieldPath         = "path"
	FieldCategory     = "category"
)
