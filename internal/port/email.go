package port

import "context"

// ReportEmail is a rendered report ready for delivery.
type ReportEmail struct {
	ToAddress  string
	ToName     string
	ReportName string
	Subject    string
	HTMLBody   string
	TextBody   string
	Attachment []byte
	Filename   string
}

// EmailSender defines the contract for delivering report emails.
type EmailSender interface {
	SendReportEmail(ctx context.Context, email *ReportEmail) error
}
