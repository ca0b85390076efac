// Package fill writes run-level constants into the merged table. Only empty
// cells are written: operator-entered run constants never overwrite data that
// came in on the sample sheet. Format validation happens first and reports
// every violation in one message.
package fill

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/multierr"

	"github.com/biosurv/merger/errs"
	"github.com/biosurv/merger/model"
)

var (
	runNumberRe = regexp.MustCompile(`^\d{8}_\d{3}$`)
	dateRe      = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// NormalizeControl folds the PCR-control selection onto the closed set
// {Pass, Fail, "", unknown}. Already-normalized values pass through.
func NormalizeControl(v, side string) string {
	switch v {
	case "Pass", "Fail", "", "unknown":
		return v
	case side + " Passed":
		return "Pass"
	case side + " Failed":
		return "Fail"
	case "Unselected":
		return ""
	default:
		return "unknown"
	}
}

// Validate checks the run number and the mode's date fields. All format
// violations are collected and returned as a single Format error.
func Validate(in model.OperatorInputs, meta model.RunMetadata, mode model.Mode) error {
	var bad error
	if in.RunNumber != "" && !runNumberRe.MatchString(in.RunNumber) {
		bad = multierr.Append(bad, fmt.Errorf(
			"Invalid run number format: %s. Expected yyyymmdd_xxx.", in.RunNumber))
	}
	for _, d := range dateFields(in, meta, mode) {
		if d.value == "" {
			continue
		}
		if !dateRe.MatchString(d.value) {
			bad = multierr.Append(bad, fmt.Errorf(
				"Invalid date format for %s: %s. Expected yyyy-mm-dd.", d.name, d.value))
		}
	}
	if bad == nil {
		return nil
	}
	lines := make([]string, 0)
	for _, e := range multierr.Errors(bad) {
		lines = append(lines, e.Error())
	}
	return errs.New(errs.Format, "%s", strings.Join(lines, "\n"))
}

type dateField struct {
	name  string
	value string
}

func dateFields(in model.OperatorInputs, meta model.RunMetadata, mode model.Mode) []dateField {
	fields := []dateField{
		{"RT PCR Date", in.RTDate},
		{"Sequencing Date", meta.SeqDate},
		{"Fasta Generation Date", in.FastaDate},
	}
	if mode == model.ModeDDNS {
		fields = append(fields, dateField{"VP1 PCR Date", in.VP1Date})
	}
	return fields
}

// Apply fills the mode's designated columns wherever a cell is empty. Cells
// already carrying a value are left byte-identical.
func Apply(t *model.Table, in model.OperatorInputs, meta model.RunMetadata, mode model.Mode) {
	for col, val := range targets(in, meta, mode) {
		if val == "" || !t.HasCol(col) {
			continue
		}
		for r := 0; r < t.RowCount(); r++ {
			if t.Value(r, col) == "" {
				t.SetValue(r, col, val)
			}
		}
	}
}

// targets maps output columns to their effective fill value. Operator input
// wins; report metadata backs it up for the sequencer-derived fields.
func targets(in model.OperatorInputs, meta model.RunMetadata, mode model.Mode) map[string]string {
	pores := in.FlowCellPores
	if pores == "" && meta.PoreCount > 0 {
		pores = strconv.Itoa(meta.PoreCount)
	}
	m := map[string]string{
		"RunNumber":                    in.RunNumber,
		"MinKNOWSoftwareVersion":       meta.MinKNOWVersion,
		"AnalysisPipelineVersion":      in.PipelineVersion,
		"DateRTPCR":                    in.RTDate,
		"RTPCRMachine":                 in.PCRMachine,
		"RTPCRprimers":                 in.RTPCRPrimers,
		"PositiveControlPCRCheck":      NormalizeControl(in.PositiveControl, "Positive"),
		"NegativeControlPCRCheck":      NormalizeControl(in.NegativeControl, "Negative"),
		"LibraryPreparationKit":        firstNonEmpty(in.SeqKit, meta.KitType),
		"DateSeqRunLoaded":             meta.SeqDate,
		"FlowCellID":                   meta.FlowCellID,
		"FlowCellPriorUses":            in.FlowCellUses,
		"PoresAvilableAtFlowCellCheck": pores,
		"RunHoursDuration":             firstNonEmpty(in.SeqHours, meta.RunHours),
		"DateFastaGenerated":           in.FastaDate,
	}
	switch mode {
	case model.ModeDDNS:
		m["DateVP1PCR"] = in.VP1Date
		m["VP1PCRMachine"] = in.VP1PCRMachine
		m["VP1primers"] = in.VP1Primers
	case model.ModeMinION:
		m["institute"] = in.Lab
	}
	return m
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
