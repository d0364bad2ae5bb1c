// Package export renders a GSTR-1 aggregate as filing JSON, review CSV or an
// Excel workbook. Renderers return bytes and never touch the network or disk.
package export

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"pharmadist/internal/domain"
	"pharmadist/internal/gst"
)

const (
	filingDateLayout = "02-01-2006"
	filingHash       = "hash"
	supplyTypeIntra  = "INTRA"
	supplyTypeInter  = "INTER"
	b2csTypeOE       = "OE"
)

// FilingConfig carries the seller-side fields of the filing JSON.
type FilingConfig struct {
	GSTIN         string
	Version       string
	Period        domain.Period
	DefaultUQC    string
	ReverseCharge bool
}

// Filing is the GSTR-1 offline-tool JSON document.
type Filing struct {
	GSTIN   string        `json:"gstin"`
	FP      string        `json:"fp"`
	Version string        `json:"version"`
	Hash    string        `json:"hash"`
	GT      float64       `json:"gt"`
	CurGT   float64       `json:"cur_gt"`
	B2B     []FilingParty `json:"b2b,omitempty"`
	B2CL    []FilingState `json:"b2cl,omitempty"`
	B2CS    []FilingB2CS  `json:"b2cs,omitempty"`
	HSN     *FilingHSN    `json:"hsn,omitempty"`
}

// FilingParty groups B2B invoices by counterparty GSTIN.
type FilingParty struct {
	CTIN     string          `json:"ctin"`
	Invoices []FilingInvoice `json:"inv"`
}

// FilingState groups B2C-Large invoices by place of supply.
type FilingState struct {
	POS      string          `json:"pos"`
	Invoices []FilingInvoice `json:"inv"`
}

// FilingInvoice is one invoice with its per-rate items.
type FilingInvoice struct {
	Number        string       `json:"inum"`
	Date          string       `json:"idt"`
	Value         float64      `json:"val"`
	POS           string       `json:"pos,omitempty"`
	ReverseCharge string       `json:"rchrg,omitempty"`
	InvoiceType   string       `json:"inv_typ,omitempty"`
	Items         []FilingItem `json:"itms"`
}

// FilingItem is a numbered rate line of an invoice.
type FilingItem struct {
	Num    int        `json:"num"`
	Detail ItemDetail `json:"itm_det"`
}

// ItemDetail holds the taxable value and tax amounts at one rate.
type ItemDetail struct {
	Rate    float64 `json:"rt"`
	Taxable float64 `json:"txval"`
	IGST    float64 `json:"iamt"`
	CGST    float64 `json:"camt"`
	SGST    float64 `json:"samt"`
	Cess    float64 `json:"csamt"`
}

// FilingB2CS is a B2C-Small bucket.
type FilingB2CS struct {
	SupplyType string  `json:"sply_ty"`
	POS        string  `json:"pos"`
	Type       string  `json:"typ"`
	Rate       float64 `json:"rt"`
	Taxable    float64 `json:"txval"`
	IGST       float64 `json:"iamt"`
	CGST       float64 `json:"camt"`
	SGST       float64 `json:"samt"`
	Cess       float64 `json:"csamt"`
}

// FilingHSN is the HSN-wise summary block.
type FilingHSN struct {
	Data []FilingHSNRow `json:"data"`
}

// FilingHSNRow is one HSN code in the summary block.
type FilingHSNRow struct {
	Num         int     `json:"num"`
	HSNCode     string  `json:"hsn_sc"`
	Description string  `json:"desc"`
	UQC         string  `json:"uqc"`
	Quantity    int64   `json:"qty"`
	Value       float64 `json:"val"`
	Taxable     float64 `json:"txval"`
	IGST        float64 `json:"iamt"`
	CGST        float64 `json:"camt"`
	SGST        float64 `json:"samt"`
	Cess        float64 `json:"csamt"`
}

// FilingPeriod formats a period the way the filing schema expects (MMYYYY).
func FilingPeriod(p domain.Period) string {
	return fmt.Sprintf("%02d%04d", p.Month, p.Year)
}

func money(d decimal.Decimal) float64 {
	return gst.RoundMoney(d).InexactFloat64()
}

func rate(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

func itemDetail(it *domain.ReturnInvoiceItem) ItemDetail {
	return ItemDetail{
		Rate:    rate(it.GSTRate),
		Taxable: money(it.TaxableValue),
		IGST:    money(it.IGSTAmount),
		CGST:    money(it.CGSTAmount),
		SGST:    money(it.SGSTAmount),
	}
}

func filingInvoice(inv *domain.ReturnInvoice, withPOS bool, reverseCharge string) FilingInvoice {
	fi := FilingInvoice{
		Number: inv.InvoiceNumber,
		Date:   inv.InvoiceDate.Format(filingDateLayout),
		Value:  money(inv.InvoiceValue),
		Items:  make([]FilingItem, len(inv.Items)),
	}
	if withPOS {
		fi.POS = inv.PlaceOfSupply
		fi.ReverseCharge = reverseCharge
		fi.InvoiceType = "R"
	}
	for i := range inv.Items {
		fi.Items[i] = FilingItem{Num: inv.Items[i].Number, Detail: itemDetail(&inv.Items[i])}
	}
	return fi
}

// BuildFiling maps a return onto the filing schema.
func BuildFiling(ret *domain.Return, cfg FilingConfig) *Filing {
	reverseCharge := "N"
	if cfg.ReverseCharge {
		reverseCharge = "Y"
	}
	uqc := cfg.DefaultUQC
	if uqc == "" {
		uqc = "NOS"
	}

	f := &Filing{
		GSTIN:   cfg.GSTIN,
		FP:      FilingPeriod(cfg.Period),
		Version: cfg.Version,
		Hash:    filingHash,
		GT:      money(ret.Turnover),
		CurGT:   money(ret.Turnover),
	}

	parties := make(map[string]*FilingParty)
	for i := range ret.B2B {
		inv := &ret.B2B[i]
		p, ok := parties[inv.CustomerGSTIN]
		if !ok {
			p = &FilingParty{CTIN: inv.CustomerGSTIN}
			parties[inv.CustomerGSTIN] = p
		}
		p.Invoices = append(p.Invoices, filingInvoice(inv, true, reverseCharge))
	}
	for _, p := range parties {
		f.B2B = append(f.B2B, *p)
	}
	sort.Slice(f.B2B, func(i, j int) bool { return f.B2B[i].CTIN < f.B2B[j].CTIN })

	states := make(map[string]*FilingState)
	for i := range ret.B2CLarge {
		inv := &ret.B2CLarge[i]
		s, ok := states[inv.PlaceOfSupply]
		if !ok {
			s = &FilingState{POS: inv.PlaceOfSupply}
			states[inv.PlaceOfSupply] = s
		}
		s.Invoices = append(s.Invoices, filingInvoice(inv, false, ""))
	}
	for _, s := range states {
		f.B2CL = append(f.B2CL, *s)
	}
	sort.Slice(f.B2CL, func(i, j int) bool { return f.B2CL[i].POS < f.B2CL[j].POS })

	for i := range ret.B2CSmall {
		r := &ret.B2CSmall[i]
		supplyType := supplyTypeIntra
		if r.InterState {
			supplyType = supplyTypeInter
		}
		f.B2CS = append(f.B2CS, FilingB2CS{
			SupplyType: supplyType,
			POS:        r.PlaceOfSupply,
			Type:       b2csTypeOE,
			Rate:       rate(r.GSTRate),
			Taxable:    money(r.TaxableValue),
			IGST:       money(r.IGSTAmount),
			CGST:       money(r.CGSTAmount),
			SGST:       money(r.SGSTAmount),
		})
	}

	if len(ret.HSN) > 0 {
		f.HSN = &FilingHSN{Data: make([]FilingHSNRow, len(ret.HSN))}
		for i := range ret.HSN {
			r := &ret.HSN[i]
			rowUQC := r.UQC
			if rowUQC == "" {
				rowUQC = uqc
			}
			f.HSN.Data[i] = FilingHSNRow{
				Num:         i + 1,
				HSNCode:     r.HSNCode,
				Description: r.Description,
				UQC:         rowUQC,
				Quantity:    r.TotalQuantity,
				Value:       money(r.TotalValue),
				Taxable:     money(r.TaxableValue),
				IGST:        money(r.IGSTAmount),
				CGST:        money(r.CGSTAmount),
				SGST:        money(r.SGSTAmount),
			}
		}
	}
	return f
}

// FilingJSON renders the return as filing JSON. Identical input yields identical bytes.
func FilingJSON(ret *domain.Return, cfg FilingConfig) ([]byte, error) {
	b, err := json.MarshalIndent(BuildFiling(ret, cfg), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export.FilingJSON: %w", err)
	}
	return b, nil
}

// ParseFilingJSON reads a filing document back.
func ParseFilingJSON(data []byte) (*Filing, error) {
	var f Filing
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("export.ParseFilingJSON: %w", err)
	}
	return &f, nil
}
