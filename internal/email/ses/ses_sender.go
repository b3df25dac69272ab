package ses

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"mime"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"finsight/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
	}, nil
}

func (s *sesSender) SendReportEmail(ctx context.Context, email *port.ReportEmail) error {
	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	var content *types.EmailContent
	if len(email.Attachment) > 0 {
		raw, err := buildRawMessage(from, email)
		if err != nil {
			return fmt.Errorf("building report email: %w", err)
		}
		content = &types.EmailContent{
			Raw: &types.RawMessage{Data: raw},
		}
	} else {
		content = &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &email.Subject},
				Body: &types.Body{
					Html: &types.Content{Data: &email.HTMLBody},
					Text: &types.Content{Data: &email.TextBody},
				},
			},
		}
	}

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{email.ToAddress},
		},
		Content: content,
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

// buildRawMessage assembles a multipart/mixed MIME message so the CSV
// attachment survives SES delivery. The Simple content type does not
// support attachments.
func buildRawMessage(from string, email *port.ReportEmail) ([]byte, error) {
	var buf bytes.Buffer

	boundary := "finsight-report-boundary"
	altBoundary := "finsight-report-alt"

	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", email.ToAddress)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", email.Subject))
	buf.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/mixed; boundary=%q\r\n\r\n", boundary)

	fmt.Fprintf(&buf, "--%s\r\n", boundary)
	fmt.Fprintf(&buf, "Content-Type: multipart/alternative; boundary=%q\r\n\r\n", altBoundary)

	fmt.Fprintf(&buf, "--%s\r\n", altBoundary)
	buf.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	buf.WriteString(email.TextBody)
	buf.WriteString("\r\n")

	fmt.Fprintf(&buf, "--%s\r\n", altBoundary)
	buf.WriteString("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	buf.WriteString(email.HTMLBody)
	buf.WriteString("\r\n")
	fmt.Fprintf(&buf, "--%s--\r\n", altBoundary)

	fmt.Fprintf(&buf, "--%s\r\n", boundary)
	buf.WriteString("Content-Type: text/csv; charset=UTF-8\r\n")
	buf.WriteString("Content-Transfer-Encoding: base64\r\n")
	fmt.Fprintf(&buf, "Content-Disposition: attachment; filename=%q\r\n\r\n", email.Filename)

	encoded := base64.StdEncoding.EncodeToString(email.Attachment)
	for len(encoded) > 76 {
		buf.WriteString(encoded[:76])
		buf.WriteString("\r\n")
		encoded = encoded[76:]
	}
	buf.WriteString(encoded)
	buf.WriteString("\r\n")
	fmt.Fprintf(&buf, "--%s--\r\n", boundary)

	return buf.Bytes(), nil
}
