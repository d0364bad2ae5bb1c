package importer_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmadist/internal/domain"
	"pharmadist/internal/importer"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		explicit string
		want     domain.ImportFormat
	}{
		{"xml declaration", `<?xml version="1.0"?><Customers/>`, "", domain.FormatXML},
		{"pipe delimited", "name|gstin\nA|B", "", domain.FormatDAT},
		{"comma delimited", "name,gstin\nA,B", "", domain.FormatCSV},
		{"explicit overrides content", "name|gstin", "CSV", domain.FormatCSV},
		{"bom before xml", "\ufeff<?xml version=\"1.0\"?><a/>", "", domain.FormatXML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := importer.DetectFormat(tt.data, tt.explicit)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFormat_UnknownExplicit(t *testing.T) {
	_, err := importer.DetectFormat("a,b", "xlsx")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestNormalizeKey(t *testing.T) {
	assert.Equal(t, "party_name", importer.NormalizeKey(" Party Name "))
	assert.Equal(t, "gst_no_", importer.NormalizeKey("GST-No."))
}

func TestNormalize_FirstNonEmptyAliasWins(t *testing.T) {
	m := importer.DefaultMapping()
	raw := map[string]string{
		"name":       "",
		"partyname":  "ignored",
		"ledgername": "Apollo Pharmacy",
		"gstin":      "29ABCDE1234F1Z5",
		"mobile":     "9876543210",
	}
	got := m.Normalize(raw, domain.ImportCustomers)

	assert.Equal(t, "Apollo Pharmacy", got["customer_name"])
	assert.Equal(t, "29ABCDE1234F1Z5", got["gst_number"])
	assert.Equal(t, "9876543210", got["phone"])
	_, ok := got["email"]
	assert.False(t, ok)
}

func TestNormalize_CustomMapping(t *testing.T) {
	m := importer.ColumnMapping{
		domain.ImportStock: {"item_name": {"Drug Name"}},
	}
	got := m.Normalize(map[string]string{"drug_name": "Amoxicillin"}, domain.ImportStock)
	assert.Equal(t, map[string]string{"item_name": "Amoxicillin"}, got)
}

func TestNormalize_TransactionsShareInvoiceAliases(t *testing.T) {
	m := importer.DefaultMapping()
	raw := map[string]string{"voucherno": "V-1"}
	assert.Equal(t, "V-1", m.Normalize(raw, domain.ImportTransactions)["invoice_number"])
}

func TestParse_CSV(t *testing.T) {
	data := "Customer Name,GSTIN,Phone\n\"Apollo, Indiranagar\",29ABCDE1234F1Z5,98765\n\nCity Clinic,,12345\n"
	rows, err := importer.Parse(data, domain.FormatCSV, domain.ImportCustomers)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Apollo, Indiranagar", rows[0].Fields["customer_name"])
	assert.Equal(t, "29ABCDE1234F1Z5", rows[0].Fields["gstin"])
	assert.Equal(t, 2, rows[0].Line)
	assert.Equal(t, "City Clinic", rows[1].Fields["customer_name"])
	assert.Equal(t, "", rows[1].Fields["gstin"])
}

func TestParse_DAT(t *testing.T) {
	data := "item_name|batch|qty\n'Paracetamol'|PC001|100\n"
	rows, err := importer.Parse(data, domain.FormatDAT, domain.ImportStock)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Paracetamol", rows[0].Fields["item_name"])
	assert.Equal(t, "100", rows[0].Fields["qty"])
}

func TestParse_XML(t *testing.T) {
	data := `<?xml version="1.0"?>
<Envelope>
  <Party Name="Apollo Pharmacy" GSTIN="29ABCDE1234F1Z5">
    <Mobile>9876543210</Mobile>
    <CreditLimit value="50000"/>
  </Party>
  <Account>
    <LedgerName>City Clinic</LedgerName>
  </Account>
  <Item><Name>not a customer</Name></Item>
</Envelope>`
	rows, err := importer.Parse(data, domain.FormatXML, domain.ImportCustomers)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Apollo Pharmacy", rows[0].Fields["name"])
	assert.Equal(t, "29ABCDE1234F1Z5", rows[0].Fields["gstin"])
	assert.Equal(t, "9876543210", rows[0].Fields["mobile"])
	assert.Equal(t, "50000", rows[0].Fields["creditlimit"])
	assert.Equal(t, "City Clinic", rows[1].Fields["ledgername"])
}

func TestParse_Empty(t *testing.T) {
	_, err := importer.Parse("   ", domain.FormatCSV, domain.ImportCustomers)
	assert.ErrorIs(t, err, domain.ErrEmptyImport)
}

func TestParseAmount(t *testing.T) {
	d, err := importer.ParseAmount("₹1,25,000.50", decimal.Zero)
	require.NoError(t, err)
	assert.Equal(t, "125000.50", d.StringFixed(2))

	d, err = importer.ParseAmount("", decimal.NewFromInt(12))
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.NewFromInt(12)))

	_, err = importer.ParseAmount("abc", decimal.Zero)
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	want := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	for _, s := range []string{"2024-12-01", "01-12-2024", "01/12/2024", "01-Dec-2024"} {
		got, err := importer.ParseDate(s)
		require.NoError(t, err, s)
		assert.True(t, want.Equal(got), s)
	}
	_, err := importer.ParseDate("December first")
	assert.Error(t, err)
}

func TestStockRecord_Defaults(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	in, err := importer.StockRecord(map[string]string{"item_name": "Cetirizine", "quantity": "40"}, now)
	require.NoError(t, err)

	assert.Equal(t, importer.DefaultHSNCode, in.HSNCode)
	assert.Equal(t, importer.DefaultBatch, in.BatchNumber)
	assert.Equal(t, importer.DefaultMinStockLevel, in.MinStockLevel)
	assert.Equal(t, 40, in.Quantity)
	assert.True(t, in.GSTRate.Equal(importer.DefaultGSTRate))
	assert.True(t, now.AddDate(1, 0, 0).Equal(in.ExpiryDate))
}

func TestStockRecord_RequiresName(t *testing.T) {
	_, err := importer.StockRecord(map[string]string{"quantity": "1"}, time.Now())
	assert.Error(t, err)
}

func TestCustomerRecord(t *testing.T) {
	in, err := importer.CustomerRecord(map[string]string{
		"customer_name": "Apollo",
		"credit_limit":  "50,000",
	})
	require.NoError(t, err)
	assert.Equal(t, importer.DefaultAddress, in.Address)
	assert.Equal(t, "50000", in.CreditLimit.String())
}

func TestInvoiceRecord(t *testing.T) {
	l, err := importer.InvoiceRecord(map[string]string{
		"invoice_number": "INV001",
		"invoice_date":   "2024-12-01",
		"customer_name":  "Sample Customer",
		"quantity":       "10",
		"rate":           "5.00",
		"total_amount":   "56.00",
	})
	require.NoError(t, err)
	assert.Equal(t, 10, l.Quantity)
	assert.True(t, l.GSTRate.Equal(importer.DefaultGSTRate))
	assert.True(t, l.Taxable.IsZero())
	assert.Equal(t, "56.00", l.Total.StringFixed(2))
}

func TestInvoiceRecord_Invalid(t *testing.T) {
	base := map[string]string{
		"invoice_number": "INV001",
		"invoice_date":   "2024-12-01",
		"customer_name":  "Sample Customer",
	}
	for _, field := range []string{"invoice_number", "invoice_date", "customer_name"} {
		f := make(map[string]string)
		for k, v := range base {
			if k != field {
				f[k] = v
			}
		}
		_, err := importer.InvoiceRecord(f)
		assert.Error(t, err, field)
	}

	f := map[string]string{"quantity": "0"}
	for k, v := range base {
		f[k] = v
	}
	_, err := importer.InvoiceRecord(f)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestTemplate(t *testing.T) {
	for _, kind := range []domain.ImportKind{domain.ImportCustomers, domain.ImportStock, domain.ImportInvoices, domain.ImportTransactions} {
		tpl, err := importer.Template(kind)
		require.NoError(t, err)

		rows, err := importer.Parse(tpl, domain.FormatCSV, kind)
		require.NoError(t, err)
		require.Len(t, rows, 1, kind)
	}

	_, err := importer.Template("suppliers")
	assert.ErrorIs(t, err, domain.ErrInvalidImportType)
}
