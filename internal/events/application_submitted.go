package events

import "time"

const ApplicationSubmittedType = "application.submitted"

type ApplicationSubmittedEvent struct {
	EventType      string    `json:"event_type"`
	ApplicationID  string    `json:"application_id"`
	JobID          string    `json:"job_id"`
	JobTitle       string    `json:"job_title"`
	RecruiterEmail string    `json:"recruiter_email"`
	ApplicantName  string    `json:"applicant_name"`
	OccurredAt     time.Time `json:"occurred_at"`
}
