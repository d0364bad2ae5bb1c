package gst_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"pharmadist/internal/domain"
	"pharmadist/internal/gst"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertMoney(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Equal(t, want, got.StringFixed(2))
}

func TestRoundMoney_HalfUp(t *testing.T) {
	assertMoney(t, "2.35", gst.RoundMoney(d("2.345")))
	assertMoney(t, "2.34", gst.RoundMoney(d("2.344")))
	assertMoney(t, "-2.35", gst.RoundMoney(d("-2.345")))
	assertMoney(t, "0.00", gst.RoundMoney(d("0.004")))
}

func TestFromTaxableBase(t *testing.T) {
	t.Run("intra_state", func(t *testing.T) {
		s := gst.FromTaxableBase(d("100"), d("12"), false)
		assertMoney(t, "100.00", s.Taxable)
		assertMoney(t, "6.00", s.CGST)
		assertMoney(t, "6.00", s.SGST)
		assert.True(t, s.IGST.IsZero())
		assertMoney(t, "112.00", s.Total())
	})

	t.Run("inter_state", func(t *testing.T) {
		s := gst.FromTaxableBase(d("450"), d("12"), true)
		assertMoney(t, "54.00", s.IGST)
		assert.True(t, s.CGST.IsZero())
		assert.True(t, s.SGST.IsZero())
	})

	t.Run("zero_rate", func(t *testing.T) {
		s := gst.FromTaxableBase(d("80"), decimal.Zero, false)
		assert.True(t, s.Tax().IsZero())
	})
}

func TestFromInclusiveAmount(t *testing.T) {
	t.Run("exact", func(t *testing.T) {
		s := gst.FromInclusiveAmount(d("112"), d("12"), false).Rounded()
		assertMoney(t, "100.00", s.Taxable)
		assertMoney(t, "6.00", s.CGST)
		assertMoney(t, "6.00", s.SGST)
	})

	t.Run("mrp_back_calculation", func(t *testing.T) {
		s := gst.FromInclusiveAmount(d("100"), d("12"), false).Rounded()
		assertMoney(t, "89.29", s.Taxable)
		assertMoney(t, "5.36", s.CGST)
		assertMoney(t, "5.36", s.SGST)
	})

	t.Run("inter_state", func(t *testing.T) {
		s := gst.FromInclusiveAmount(d("105"), d("5"), true).Rounded()
		assertMoney(t, "100.00", s.Taxable)
		assertMoney(t, "5.00", s.IGST)
	})
}

func TestLineTaxable(t *testing.T) {
	assertMoney(t, "50.00", gst.LineTaxable(10, d("5.00"), decimal.Zero))
	assertMoney(t, "45.00", gst.LineTaxable(10, d("5.00"), d("10")))
	assertMoney(t, "0.00", gst.LineTaxable(0, d("5.00"), decimal.Zero))
}

func TestPostLine_SplitConsistency(t *testing.T) {
	cases := []struct {
		qty      int
		rate     string
		discount string
		gstRate  string
		inter    bool
	}{
		{3, "33.33", "0", "12", false},
		{7, "19.99", "2.5", "12", false},
		{1, "0.07", "0", "5", false},
		{12, "148.35", "7", "18", true},
		{250, "12.10", "0", "12", false},
		{9, "3.33", "33", "28", true},
	}

	tolerance := d("0.01")
	for _, tc := range cases {
		s := gst.PostLine(tc.qty, d(tc.rate), d(tc.discount), d(tc.gstRate), tc.inter)

		if tc.inter {
			assert.True(t, s.CGST.IsZero())
			assert.True(t, s.SGST.IsZero())
		} else {
			assert.True(t, s.CGST.Equal(s.SGST), "cgst %s != sgst %s", s.CGST, s.SGST)
			assert.True(t, s.IGST.IsZero())
		}

		exact := s.Taxable.Mul(d(tc.gstRate)).Div(decimal.NewFromInt(100))
		diff := s.Tax().Sub(exact).Abs()
		assert.True(t, diff.LessThanOrEqual(tolerance), "tax %s vs exact %s", s.Tax(), exact)
	}
}

func TestPostLine_Example(t *testing.T) {
	s := gst.PostLine(3, d("33.33"), decimal.Zero, d("12"), false)
	assertMoney(t, "99.99", s.Taxable)
	assertMoney(t, "6.00", s.CGST)
	assertMoney(t, "6.00", s.SGST)
	assertMoney(t, "111.99", s.Total())
}

func TestCustomerTypeFor(t *testing.T) {
	assert.Equal(t, domain.CustomerTypeB2B, gst.CustomerTypeFor("29ABCDE1234F1Z5"))
	assert.Equal(t, domain.CustomerTypeB2B, gst.CustomerTypeFor("anything"))
	assert.Equal(t, domain.CustomerTypeB2C, gst.CustomerTypeFor(""))
	assert.Equal(t, domain.CustomerTypeB2C, gst.CustomerTypeFor("   "))
}

func TestClassify(t *testing.T) {
	threshold := gst.DefaultB2CLargeThreshold

	t.Run("b2b_regardless_of_value", func(t *testing.T) {
		assert.Equal(t, domain.SupplyB2B, gst.Classify(domain.CustomerTypeB2B, d("112"), threshold))
		assert.Equal(t, domain.SupplyB2B, gst.Classify(domain.CustomerTypeB2B, d("9000000"), threshold))
	})

	t.Run("boundary_is_small", func(t *testing.T) {
		assert.Equal(t, domain.SupplyB2CSmall, gst.Classify(domain.CustomerTypeB2C, d("250000"), threshold))
		assert.Equal(t, domain.SupplyB2CSmall, gst.Classify(domain.CustomerTypeB2C, d("250000.00"), threshold))
	})

	t.Run("above_boundary_is_large", func(t *testing.T) {
		assert.Equal(t, domain.SupplyB2CLarge, gst.Classify(domain.CustomerTypeB2C, d("250000.01"), threshold))
	})

	t.Run("small", func(t *testing.T) {
		assert.Equal(t, domain.SupplyB2CSmall, gst.Classify(domain.CustomerTypeB2C, d("504"), threshold))
	})

	t.Run("deterministic", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			assert.Equal(t, domain.SupplyB2CLarge, gst.Classify(domain.CustomerTypeB2C, d("300000"), threshold))
		}
	})
}

func TestGSTIN(t *testing.T) {
	assert.True(t, gst.ValidGSTIN("29ABCDE1234F1Z5"))
	assert.True(t, gst.ValidGSTIN("27AAPFU0939F1ZV"))
	assert.False(t, gst.ValidGSTIN("29abcde1234f1z5"))
	assert.False(t, gst.ValidGSTIN("29ABCDE1234F1Y5"))
	assert.False(t, gst.ValidGSTIN(""))

	assert.Equal(t, "29ABCDE1234F1Z5", gst.NormalizeGSTIN(" 29abcde1234f1z5 "))
	assert.Equal(t, "27", gst.StateCodeFromGSTIN("27AAPFU0939F1ZV"))
	assert.Equal(t, "", gst.StateCodeFromGSTIN("bogus"))
}

func TestPlaceOfSupply(t *testing.T) {
	assert.Equal(t, "27", gst.PlaceOfSupply("27AAPFU0939F1ZV", "29"))
	assert.Equal(t, "29", gst.PlaceOfSupply("", "29"))
	assert.Equal(t, "29", gst.PlaceOfSupply("not-a-gstin", "29"))
}

func TestIsInterState(t *testing.T) {
	assert.True(t, gst.IsInterState("29", "27"))
	assert.False(t, gst.IsInterState("29", "29"))
	assert.False(t, gst.IsInterState("29", ""))
	assert.False(t, gst.IsInterState("", "27"))
}

func TestHSNLookup(t *testing.T) {
	lookup := gst.NewHSNLookup([]domain.HSNMaster{
		{HSNCode: "30049000", Description: "Other medicaments", GSTRate: d("12")},
		{HSNCode: "9021", Description: "Orthopaedic appliances", GSTRate: d("5")},
	})

	t.Run("exact_match", func(t *testing.T) {
		e, ok := lookup.Find("30049000")
		assert.True(t, ok)
		assert.Equal(t, "Other medicaments", e.Description)
	})

	t.Run("prefix_fallback_8_to_4", func(t *testing.T) {
		e, ok := lookup.Find("90211000")
		assert.True(t, ok)
		assert.Equal(t, "9021", e.HSNCode)
	})

	t.Run("unknown", func(t *testing.T) {
		_, ok := lookup.Find("12345678")
		assert.False(t, ok)
		assert.Equal(t, "Unknown", lookup.Description("12345678"))
		assertMoney(t, "18.00", lookup.RateOr("12345678", d("18")))
	})

	t.Run("rate_from_master", func(t *testing.T) {
		assertMoney(t, "5.00", lookup.RateOr("90211000", d("12")))
	})

	t.Run("nil_lookup", func(t *testing.T) {
		var empty *gst.HSNLookup
		_, ok := empty.Find("30049000")
		assert.False(t, ok)
	})
}
