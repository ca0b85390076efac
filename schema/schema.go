// Package schema fixes the two output schemas and enforces them: validation
// reports every missing column at once, projection reorders a table to the
// exact column list of the active mode.
package schema

import (
	"strings"

	"github.com/biosurv/merger/errs"
	"github.com/biosurv/merger/model"
)

var ddnsColumns = []string{
	"sample", "barcode", "IsQCRetest", "IfRetestOriginalRun", "EPID",
	"institute", "SampleType", "CaseOrContact", "Country", "Province",
	"District", "StoolCondition", "SpecimenNumber", "DateOfOnset",
	"DateStoolCollected", "DateStoolReceivedinLab", "DateRNAextraction",
	"DateRTPCR", "RTPCRMachine", "RTPCRprimers", "DateVP1PCR",
	"VP1PCRMachine", "VP1primers", "PositiveControlPCRCheck",
	"NegativeControlPCRCheck", "LibraryPreparationKit", "Well", "RunNumber",
	"DateSeqRunLoaded", "SequencerUsed", "FlowCellVersion", "FlowCellID",
	"FlowCellPriorUses", "PoresAvilableAtFlowCellCheck",
	"MinKNOWSoftwareVersion", "RunHoursDuration", "DateFastaGenerated",
	"AnalysisPipelineVersion", "RunQC", "Classification", "SampleQC",
	"SampleQCChecksComplete", "QCComments", "DateReported",
}

var minIONColumns = []string{
	"sample", "barcode", "IsQCRetest", "IfRetestOriginalRun", "EPID",
	"institute", "SampleType", "CaseOrContact", "Country", "Province",
	"District", "StoolCondition", "SpecimenNumber", "DateOfOnset",
	"DateStoolCollected", "DateStoolReceivedinLab", "FinalCellCultureResult",
	"DateFinalCultureResult", "ITDResult", "DateFinalITDresult",
	"SangerSequenceID", "DateSangerResultGenerated", "DateRNAextraction",
	"DateRTPCR", "RTPCRMachine", "RTPCRprimers", "PositiveControlPCRCheck",
	"NegativeControlPCRCheck", "LibraryPreparationKit", "RunNumber",
	"DateSeqRunLoaded", "FlowCellID", "FlowCellPriorUses",
	"PoresAvilableAtFlowCellCheck", "MinKNOWSoftwareVersion",
	"RunHoursDuration", "DateFastaGenerated", "AnalysisPipelineVersion",
	"RunQC", "SampleQC", "DateReported",
}

// Columns returns the required output columns for mode, in output order.
func Columns(mode model.Mode) []string {
	switch mode {
	case model.ModeMinION:
		return append([]string(nil), minIONColumns...)
	default:
		return append([]string(nil), ddnsColumns...)
	}
}

// Missing lists the required columns of mode that are absent from t.
func Missing(t *model.Table, mode model.Mode) []string {
	missing := make([]string, 0)
	for _, col := range Columns(mode) {
		if !t.HasCol(col) {
			missing = append(missing, col)
		}
	}
	return missing
}

// Validate fails with a MissingColumns error naming every absent column and
// the active mode.
func Validate(t *model.Table, mode model.Mode) error {
	missing := Missing(t, mode)
	if len(missing) == 0 {
		return nil
	}
	return errs.New(errs.MissingColumns,
		"These columns were missing from the samples CSV file: %s. Please use the %s template.",
		strings.Join(missing, ", "), mode)
}

// Project validates t against mode and returns it reshaped to exactly the
// mode's columns, dropping anything extra.
func Project(t *model.Table, mode model.Mode) (*model.Table, error) {
	if err := Validate(t, mode); err != nil {
		return nil, err
	}
	return t.Select(Columns(mode))
}
