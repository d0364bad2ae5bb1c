package importer

import "pharmadist/internal/domain"

var templates = map[domain.ImportKind]string{
	domain.ImportCustomers: "customer_name,phone,email,address,gst_number,credit_limit,opening_balance\n" +
		`"Sample Pharmacy","9876543210","sample@example.com","123 Main St","29ABCDE1234F1Z5","50000","0"` + "\n",
	domain.ImportStock: "item_name,manufacturer,category,batch_number,expiry_date,quantity,mrp,purchase_rate,gst_rate,hsn_code,min_stock_level,rack_location\n" +
		`"Paracetamol 500mg","Cipla Ltd","Tablet","PC001","2025-12-31","100","5.00","3.50","12","30049000","10","A1"` + "\n",
	domain.ImportInvoices: "invoice_number,invoice_date,customer_name,customer_gst,item_name,batch,hsn_code,quantity,rate,discount,gst_rate,taxable_amount,cgst_amount,sgst_amount,igst_amount,total_amount\n" +
		`"INV001","2024-12-01","Sample Customer","29ABCDE1234F1Z5","Paracetamol","PC001","30049000","10","5.00","0","12","50.00","3.00","3.00","0","56.00"` + "\n",
}

// Template returns a CSV header with one sample row for kind.
func Template(kind domain.ImportKind) (string, error) {
	if kind == domain.ImportTransactions {
		kind = domain.ImportInvoices
	}
	t, ok := templates[kind]
	if !ok {
		return "", domain.ErrInvalidImportType
	}
	return t, nil
}
