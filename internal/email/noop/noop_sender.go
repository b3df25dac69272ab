package noop

import (
	"context"
	"log"

	"finsight/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs report deliveries to stdout.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendReportEmail(_ context.Context, email *port.ReportEmail) error {
	log.Printf("[NOOP EMAIL] %s report for %s (%s), attachment %d bytes",
		email.ReportName, email.ToName, email.ToAddress, len(email.Attachment))
	return nil
}
