// Package merge reconciles the sample table with an optional epi-info export:
// it aligns renamed columns, lets epi-info win shared columns through the
// join, and left-joins on the sample identifier.
package merge

import (
	"strings"

	"github.com/biosurv/merger/errs"
	"github.com/biosurv/merger/model"
)

const (
	sampleKey  = "sample"
	epiKey     = "ICLabID"
	epidCol    = "EPID"
	epidNumber = "EpidNumber"
)

// epiAliases maps legacy epi-info export headers to their minION schema
// names. A rename only happens when the target name is still free, so the
// mapping can be applied any number of times.
var epiAliases = map[string]string{
	"DateFinalCellCultureResults": "DateFinalCultureResult",
	"DateFinalrRTPCRResults":      "DateFinalITDresult",
	"FinalITDResult":              "ITDResult",
	"SequenceName":                "SangerSequenceID",
	"DateSeqResult":               "DateSangerResultGenerated",
}

// Reconcile merges epi into sample. A nil epi table passes sample through
// unchanged. Every sample row is preserved; when several epi rows share one
// ICLabID the first occurrence wins, so the row count never changes.
func Reconcile(sample, epi *model.Table, mode model.Mode) (*model.Table, error) {
	if epi == nil {
		return sample, nil
	}
	if mode == model.ModeMinION {
		for old, alias := range epiAliases {
			epi.Rename(old, alias)
		}
	}

	// Shared columns come from the epi side; drop them from the sample table
	// so the join carries epi-info's values. The join key stays.
	shared := make([]string, 0)
	for _, col := range sample.Cols {
		if col != sampleKey && epi.HasCol(col) {
			shared = append(shared, col)
		}
	}
	sample.Drop(shared...)

	if !sample.HasCol(sampleKey) || !epi.HasCol(epiKey) {
		return nil, errs.New(errs.Merge,
			"cannot join on %s=%s.\nSample columns: %s\nEpi Info columns: %s",
			sampleKey, epiKey,
			strings.Join(sample.Cols, ", "), strings.Join(epi.Cols, ", "))
	}

	joined, err := leftJoin(sample, epi)
	if err != nil {
		return nil, err
	}
	backfillEpid(joined)
	return joined, nil
}

func leftJoin(sample, epi *model.Table) (*model.Table, error) {
	epiCols := make([]string, 0, len(epi.Cols))
	for _, col := range epi.Cols {
		if col != epiKey {
			epiCols = append(epiCols, col)
		}
	}
	out, err := model.NewTable(append(append([]string(nil), sample.Cols...), epiCols...))
	if err != nil {
		return nil, errs.Wrap(errs.Merge, err,
			"joined column set is not unique.\nSample columns: %s\nEpi Info columns: %s",
			strings.Join(sample.Cols, ", "), strings.Join(epi.Cols, ", "))
	}

	index := make(map[string]int, epi.RowCount())
	for r := 0; r < epi.RowCount(); r++ {
		key := epi.Value(r, epiKey)
		if _, ok := index[key]; !ok {
			index[key] = r
		}
	}

	for r := 0; r < sample.RowCount(); r++ {
		row := append([]string(nil), sample.Rows[r]...)
		if er, ok := index[sample.Value(r, sampleKey)]; ok {
			for _, col := range epiCols {
				row = append(row, epi.Value(er, col))
			}
		} else {
			row = append(row, make([]string, len(epiCols))...)
		}
		out.AddRow(row)
	}
	return out, nil
}

// backfillEpid copies EpidNumber into empty EPID cells, then retires the
// epi-side identifier column.
func backfillEpid(t *model.Table) {
	if !t.HasCol(epidNumber) {
		return
	}
	if !t.HasCol(epidCol) {
		t.Rename(epidNumber, epidCol)
		return
	}
	for r := 0; r < t.RowCount(); r++ {
		if t.Value(r, epidCol) == "" {
			t.SetValue(r, epidCol, t.Value(r, epidNumber))
		}
	}
	t.Drop(epidNumber)
}
