package export

import (
	"fmt"

	"pharmadist/internal/domain"
)

// Filename returns the download name for a rendered return: GSTR1_<MM>_<YYYY>.<ext>.
func Filename(p domain.Period, format domain.ExportFormat) string {
	return fmt.Sprintf("GSTR1_%02d_%04d.%s", p.Month, p.Year, format)
}

// ArchiveKey returns the object key a rendered return is archived under.
func ArchiveKey(p domain.Period, format domain.ExportFormat) string {
	return fmt.Sprintf("gstr1/%04d/%02d/%s", p.Year, p.Month, Filename(p, format))
}
