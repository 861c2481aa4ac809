package ncu

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Column names the parser consumes from the NCU CSV header. Columns are
// bound by name, not position.
const (
	colKernelName  = "Kernel Name"
	colSectionName = "Section Name"
	colMetricName  = "Metric Name"
	colMetricUnit  = "Metric Unit"
	colMetricValue = "Metric Value"
	colRuleName    = "Rule Name"
	colRuleType    = "Rule Type"
	colRuleDesc    = "Rule Description"
	colSpeedupType = "Estimated Speedup Type"
	colSpeedup     = "Estimated Speedup"
)

// requiredColumns lists every column a row must carry.
var requiredColumns = []string{
	colKernelName, colSectionName,
	colMetricName, colMetricUnit, colMetricValue,
	colRuleName, colRuleType, colRuleDesc,
	colSpeedupType, colSpeedup,
}

// MissingFieldError reports a row that lacks one of the required columns,
// either because the header never named it or because the record is too
// short to carry it. The whole conversion aborts; there is no partial
// recovery.
type MissingFieldError struct {
	// Field is the name of the missing column.
	Field string
	// Line is the 1-based CSV record number of the offending row.
	Line int
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("ncu csv: record %d is missing required field %q", e.Line, e.Field)
}

// ParseCSV consumes NCU CSV rows and aggregates them into a Report keyed by
// base kernel name and canonical section name. Rows whose section name
// resolves to empty are dropped. A single row may contribute both a metric
// and a rule. The returned report is complete; on error no report is
// returned at all.
func ParseCSV(r io.Reader) (*Report, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return NewReport(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}

	// A header missing a required column only matters once a data row needs
	// it; a header-only file converts to an empty report.
	missing := ""
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			missing = name
			break
		}
	}

	report := NewReport()
	for line := 2; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv record: %w", err)
		}
		if missing != "" {
			return nil, &MissingFieldError{Field: missing, Line: line}
		}
		for _, name := range requiredColumns {
			if cols[name] >= len(record) {
				return nil, &MissingFieldError{Field: name, Line: line}
			}
		}

		kernelName := ExtractKernelName(record[cols[colKernelName]])
		sectionName := NormalizeSectionName(record[cols[colSectionName]])
		if sectionName == "" {
			continue
		}

		section := report.kernel(kernelName).section(sectionName)

		if name := strings.TrimSpace(record[cols[colMetricName]]); name != "" {
			section.UpsertMetric(Metric{
				Name:  name,
				Unit:  strings.TrimSpace(record[cols[colMetricUnit]]),
				Value: FormatNumericValue(strings.TrimSpace(record[cols[colMetricValue]])),
			})
		}

		if name := strings.TrimSpace(record[cols[colRuleName]]); name != "" {
			section.AddRule(Rule{
				Name:        name,
				Type:        strings.TrimSpace(record[cols[colRuleType]]),
				Description: strings.TrimSpace(record[cols[colRuleDesc]]),
				SpeedupType: strings.TrimSpace(record[cols[colSpeedupType]]),
				Speedup:     strings.TrimSpace(record[cols[colSpeedup]]),
			})
		}
	}

	return report, nil
}

// Convert parses NCU CSV from r and renders the flat Markdown document in
// one step. Either a complete document or an error is returned, never both.
func Convert(r io.Reader) (string, error) {
	report, err := ParseCSV(r)
	if err != nil {
		return "", err
	}
	return report.Markdown(), nil
}
