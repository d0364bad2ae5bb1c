package importer

import "pharmadist/internal/domain"

// FieldAliases maps a canonical field to the header names it may appear under,
// in priority order. Aliases are compared after NormalizeKey.
type FieldAliases map[string][]string

// ColumnMapping holds the alias table for each record kind.
type ColumnMapping map[domain.ImportKind]FieldAliases

// DefaultMapping covers the header names used by common Indian accounting packages.
func DefaultMapping() ColumnMapping {
	invoices := FieldAliases{
		"invoice_number": {"invoice_number", "invoice_no", "bill_no", "billno", "voucherno", "voucher_no"},
		"invoice_date":   {"invoice_date", "date", "billdate", "bill_date", "voucherdate", "voucher_date"},
		"customer_name":  {"customer_name", "party_name", "partyname", "buyername", "buyer_name"},
		"customer_gst":   {"customer_gst", "customer_gstin", "party_gstin", "partygstin", "buyergstin", "buyer_gstin"},
		"item_name":      {"item_name", "product_name", "itemname", "productname"},
		"batch":          {"batch", "batchno", "batch_no", "batch_number"},
		"hsn_code":       {"hsn_code", "hsn", "hsncode"},
		"quantity":       {"quantity", "qty"},
		"rate":           {"rate", "price", "unitprice", "unit_price"},
		"discount":       {"discount", "discount_pct", "discountpercent"},
		"gst_rate":       {"gst_rate", "gstrate", "taxrate", "tax_rate"},
		"taxable_amount": {"taxable_amount", "taxable_value", "taxableamount", "taxablevalue"},
		"cgst_amount":    {"cgst_amount", "cgst", "cgstamount"},
		"sgst_amount":    {"sgst_amount", "sgst", "sgstamount"},
		"igst_amount":    {"igst_amount", "igst", "igstamount"},
		"total_amount":   {"total_amount", "total", "totalamount", "billamount", "bill_amount"},
	}
	return ColumnMapping{
		domain.ImportCustomers: {
			"customer_name":   {"customer_name", "name", "party_name", "accountname", "account_name", "ledgername", "ledger_name"},
			"phone":           {"phone", "mobile", "contact", "mobileno", "mobile_no"},
			"email":           {"email", "emailid", "email_id"},
			"address":         {"address", "mailingaddress", "mailing_address"},
			"gst_number":      {"gst_number", "gstin", "gst_no", "gstnumber", "vatno"},
			"credit_limit":    {"credit_limit", "credit", "creditlimit"},
			"opening_balance": {"opening_balance", "balance", "openingbalance"},
		},
		domain.ImportStock: {
			"item_name":       {"item_name", "name", "product_name", "itemname", "description"},
			"manufacturer":    {"manufacturer", "company", "brand"},
			"category":        {"category", "group", "itemgroup", "item_group"},
			"batch_number":    {"batch_number", "batch", "batchno", "batch_no"},
			"expiry_date":     {"expiry_date", "expiry", "expirydate", "exp_date"},
			"quantity":        {"quantity", "stock", "qty", "closingstock", "closing_stock"},
			"mrp":             {"mrp", "selling_price", "saleprice", "retailprice"},
			"purchase_rate":   {"purchase_rate", "cost_price", "purchaseprice", "costprice"},
			"gst_rate":        {"gst_rate", "gstrate", "taxrate", "tax_rate"},
			"hsn_code":        {"hsn_code", "hsn", "hsncode", "servicecode"},
			"min_stock_level": {"min_stock_level", "reorder_level", "reorderlevel", "min_qty"},
			"rack_location":   {"rack_location", "location", "binlocation", "bin_location"},
		},
		domain.ImportInvoices:     invoices,
		domain.ImportTransactions: invoices,
	}
}

// Normalize resolves the canonical fields of kind from raw. For each field the
// first alias with a non-empty value wins; fields with no match are omitted.
func (m ColumnMapping) Normalize(raw map[string]string, kind domain.ImportKind) map[string]string {
	aliases := m[kind]
	out := make(map[string]string, len(aliases))
	for field, names := range aliases {
		for _, name := range names {
			if v := raw[NormalizeKey(name)]; v != "" {
				out[field] = v
				break
			}
		}
	}
	return out
}
