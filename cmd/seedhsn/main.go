// Command seedhsn loads HSN codes into hsn_master.
// Without -file it inserts the built-in pharmaceutical list. With -file it reads the
// HSN_Master sheet of the GST HSN summary workbook and imports the codes under the
// requested chapters.
// Usage: go run ./cmd/seedhsn [-file hsn.xlsx] [-chapters 30,90]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"pharmadist/internal/config"
	"pharmadist/internal/domain"
	"pharmadist/internal/logger"
	"pharmadist/internal/repository/postgres"
	"pharmadist/internal/service"
)

// First data row of the HSN_Master sheet.
const firstDataRow = 5

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	xlsxPath := flag.String("file", "", "GST HSN summary workbook (.xlsx); empty seeds the built-in list")
	chapters := flag.String("chapters", "30,90", "comma-separated HSN chapters to import from the workbook")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	zl, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = zl.Sync() }()

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	svc := service.NewHSNService(postgres.NewHSNRepo(db))
	ctx := context.Background()

	if *xlsxPath == "" {
		n, err := svc.SeedPharmaceutical(ctx)
		if err != nil {
			return fmt.Errorf("seed pharmaceutical codes: %w", err)
		}
		zl.Info("seeded pharmaceutical HSN codes", zap.Int("inserted", n))
		return nil
	}

	f, err := excelize.OpenFile(*xlsxPath)
	if err != nil {
		return fmt.Errorf("open Excel file: %w", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return fmt.Errorf("read HSN sheet: %w", err)
	}
	entries := parseHSNRows(rows, strings.Split(*chapters, ","))
	zl.Info("parsed HSN workbook", zap.String("file", *xlsxPath), zap.Int("entries", len(entries)))

	n, err := svc.Import(ctx, entries)
	if err != nil {
		return fmt.Errorf("import HSN codes: %w", err)
	}
	zl.Info("imported HSN codes", zap.Int("inserted", n), zap.Int("skipped", len(entries)-n))
	return nil
}

// parseHSNRows reads HSN_Master rows.
// Columns: F(5)=4-digit, H(7)=4-digit desc, I(8)=6-digit, J(9)=6-digit desc,
// K(10)=8-digit, M(12)=8-digit desc, N(13)=GST rate (percentage formatted).
// Only codes whose first two digits are in chapters are kept; the first occurrence
// of a code wins.
func parseHSNRows(rows [][]string, chapters []string) []domain.HSNMaster {
	allowed := make(map[string]bool, len(chapters))
	for _, ch := range chapters {
		if ch = strings.TrimSpace(ch); ch != "" {
			allowed[ch] = true
		}
	}

	seen := make(map[string]bool)
	var entries []domain.HSNMaster
	add := func(code, desc string, rate decimal.Decimal) {
		code = strings.TrimSpace(code)
		if len(code) < 4 || !isNumeric(code) || seen[code] || !allowed[code[:2]] {
			return
		}
		seen[code] = true
		entries = append(entries, domain.HSNMaster{
			HSNCode:     code,
			Description: strings.TrimSpace(desc),
			GSTRate:     rate,
			Category:    categoryFor(code),
		})
	}

	for i := firstDataRow; i < len(rows); i++ {
		row := rows[i]
		if len(row) < 14 {
			continue
		}
		rate, ok := parseRate(cellVal(row, 13))
		if !ok {
			continue
		}
		add(cellVal(row, 10), cellVal(row, 12), rate)
		add(cellVal(row, 8), cellVal(row, 9), rate)
		add(cellVal(row, 5), cellVal(row, 7), rate)
	}
	return entries
}

func categoryFor(code string) domain.HSNCategory {
	if strings.HasPrefix(code, "90") || strings.HasPrefix(code, "3005") {
		return domain.HSNCategoryMedicalDevice
	}
	return domain.HSNCategoryPharma
}

// ratePattern matches the leading number of a rate cell such as "12%" or "0.12".
var ratePattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*%?$`)

// parseRate reads a GST rate cell. Cells formatted as a fraction ("0.12") are scaled to percent.
func parseRate(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "exempt") || strings.EqualFold(s, "nil") {
		return decimal.Zero, true
	}
	m := ratePattern.FindStringSubmatch(s)
	if m == nil {
		return decimal.Zero, false
	}
	rate, err := decimal.NewFromString(m[1])
	if err != nil {
		return decimal.Zero, false
	}
	if !strings.HasSuffix(s, "%") && rate.LessThan(decimal.NewFromInt(1)) && !rate.IsZero() {
		rate = rate.Mul(decimal.NewFromInt(100))
	}
	return rate, true
}

func cellVal(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

func isNumeric(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return s != ""
}
