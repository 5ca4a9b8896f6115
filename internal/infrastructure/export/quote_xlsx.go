// Package export renders priced quotes as spreadsheets for the service desk.
package export

import (
	"bytes"
	"fmt"

	"vhc_service/internal/domain/entities"
	"vhc_service/internal/domain/pricing"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Quote"

// QuoteExcelExporter writes one row per repair item, children indented under
// their group, followed by the quote totals and outcome buckets.
type QuoteExcelExporter struct{}

func NewQuoteExcelExporter() *QuoteExcelExporter { return &QuoteExcelExporter{} }

func (QuoteExcelExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (QuoteExcelExporter) Export(hc entities.HealthCheck, q pricing.QuoteSummary) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C", "D", "E", "F", "G"}
	widths := []float64{40, 14, 14, 14, 12, 14, 14}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return nil, fmt.Errorf("create money style: %w", err)
	}

	f.SetCellValue(sheetName, "A1", sanitizeExcelCell("Health check "+hc.VehicleRegistration))
	f.SetCellStyle(sheetName, "A1", "A1", titleStyle)
	f.SetCellValue(sheetName, "A2", sanitizeExcelCell(hc.CustomerName))
	f.SetCellValue(sheetName, "B2", fmt.Sprintf("VAT %s%%", q.VATRate.String()))

	headers := []string{"Item", "Labour", "Parts", "Subtotal", "VAT", "Total", "Outcome"}
	for i, h := range headers {
		f.SetCellValue(sheetName, columns[i]+"4", h)
	}
	f.SetCellStyle(sheetName, "A4", "G4", headerStyle)

	row := 5
	var writeItem func(iq pricing.ItemQuote, indent string)
	writeItem = func(iq pricing.ItemQuote, indent string) {
		r := fmt.Sprint(row)
		name := iq.Name
		if iq.Totals.IsOverridden {
			name += " (price override)"
		}
		f.SetCellValue(sheetName, "A"+r, indent+sanitizeExcelCell(name))
		setMoney(f, "B"+r, iq.Totals.LabourTotal)
		setMoney(f, "C"+r, iq.Totals.PartsTotal)
		setMoney(f, "D"+r, iq.Totals.Subtotal)
		setMoney(f, "E"+r, iq.Totals.VATAmount)
		if iq.IsGroup {
			setMoney(f, "F"+r, iq.GroupTotal)
		} else {
			setMoney(f, "F"+r, iq.Totals.TotalIncVAT)
		}
		f.SetCellValue(sheetName, "G"+r, outcomeLabel(iq.Outcome))
		f.SetCellStyle(sheetName, "B"+r, "F"+r, moneyStyle)
		row++
		for _, c := range iq.Children {
			writeItem(c, indent+"    ")
		}
	}
	for _, iq := range q.Items {
		writeItem(iq, "")
	}

	row++
	totals := []struct {
		label string
		value decimal.Decimal
	}{
		{"Subtotal", q.Subtotal},
		{"VAT", q.VATAmount},
		{"Total inc VAT", q.TotalIncVAT},
		{"Authorised", q.AuthorisedTotal},
		{"Declined", q.DeclinedTotal},
		{"Deferred", q.DeferredTotal},
		{"Pending", q.PendingTotal},
	}
	for _, t := range totals {
		r := fmt.Sprint(row)
		f.SetCellValue(sheetName, "E"+r, t.label)
		setMoney(f, "F"+r, t.value)
		f.SetCellStyle(sheetName, "F"+r, "F"+r, moneyStyle)
		row++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

func setMoney(f *excelize.File, cell string, v decimal.Decimal) {
	fv, _ := v.Round(2).Float64()
	f.SetCellValue(sheetName, cell, fv)
}

func outcomeLabel(o entities.OutcomeStatus) string {
	if o == entities.OutcomeNone {
		return "pending"
	}
	return string(o)
}

// sanitizeExcelCell stops customer-entered text from being read as a formula.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}
