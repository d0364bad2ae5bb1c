package email_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pharmadist/internal/domain"
	"pharmadist/internal/email"
)

func TestRenderDigest(t *testing.T) {
	alerts := []domain.StockAlert{
		{Type: domain.AlertExpired, Severity: domain.SeverityHigh, ItemName: "Insulin <R>", BatchNumber: "IN01", Message: "Insulin expired"},
		{Type: domain.AlertLowStock, Severity: domain.SeverityMedium, ItemName: "Cetirizine", BatchNumber: "CT02", Message: "Cetirizine low"},
	}

	d := email.RenderDigest("Pharmadist", alerts)

	assert.Equal(t, "Pharmadist stock alerts: 2 new (1 high)", d.Subject)
	assert.Contains(t, d.Text, "- [HIGH] Insulin expired")
	assert.Contains(t, d.Text, "- [MEDIUM] Cetirizine low")
	assert.Contains(t, d.HTML, "Insulin &lt;R&gt;")
	assert.NotContains(t, d.HTML, "Insulin <R>")
	assert.Contains(t, d.HTML, "width: 100%;")
}
