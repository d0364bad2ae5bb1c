// Package email renders stock alert digests shared by the email senders.
package email

import (
	"fmt"
	"html"
	"strings"

	"pharmadist/internal/domain"
)

// Digest is a rendered stock alert email.
type Digest struct {
	Subject string
	Text    string
	HTML    string
}

// RenderDigest renders alerts as a plain text and HTML email body.
func RenderDigest(productName string, alerts []domain.StockAlert) Digest {
	high := 0
	for i := range alerts {
		if alerts[i].Severity == domain.SeverityHigh {
			high++
		}
	}
	subject := fmt.Sprintf("%s stock alerts: %d new (%d high)", productName, len(alerts), high)

	var text strings.Builder
	fmt.Fprintf(&text, "%d new stock alerts:\n\n", len(alerts))
	for i := range alerts {
		a := &alerts[i]
		fmt.Fprintf(&text, "- [%s] %s\n", strings.ToUpper(string(a.Severity)), a.Message)
	}
	fmt.Fprintf(&text, "\n%s\n", productName)

	var rows strings.Builder
	for i := range alerts {
		a := &alerts[i]
		color := "#B45309"
		if a.Severity == domain.SeverityHigh {
			color = "#B91C1C"
		}
		fmt.Fprintf(&rows, `    <tr><td style="color: %s; font-weight: bold;">%s</td><td>%s</td><td>%s</td><td>%s</td></tr>
`, color, strings.ToUpper(string(a.Severity)), html.EscapeString(a.ItemName),
			html.EscapeString(a.BatchNumber), html.EscapeString(a.Message))
	}

	body := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 700px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">%d new stock alerts</h2>
  <table style="border-collapse: collapse; width: 100%%;" cellpadding="6">
    <tr><th align="left">Severity</th><th align="left">Item</th><th align="left">Batch</th><th align="left">Detail</th></tr>
%s  </table>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">%s</p>
</body>
</html>`, len(alerts), rows.String(), html.EscapeString(productName))

	return Digest{Subject: subject, Text: text.String(), HTML: body}
}
