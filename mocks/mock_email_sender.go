package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"finsight/internal/port"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

var _ port.EmailSender = (*MockEmailSender)(nil)

func (m *MockEmailSender) SendReportEmail(ctx context.Context, email *port.ReportEmail) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}
