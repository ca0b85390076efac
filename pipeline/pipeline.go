// Package pipeline runs one merge invocation end to end: load, reconcile,
// validate, fill, project, write. Each invocation owns its tables; the output
// file is only created after every validation and fill step has succeeded, so
// a failed run never leaves a partial file behind.
package pipeline

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/biosurv/merger/consts"
	"github.com/biosurv/merger/errs"
	"github.com/biosurv/merger/file"
	"github.com/biosurv/merger/fill"
	"github.com/biosurv/merger/loader"
	"github.com/biosurv/merger/log"
	"github.com/biosurv/merger/merge"
	"github.com/biosurv/merger/model"
	"github.com/biosurv/merger/report"
	"github.com/biosurv/merger/schema"
)

// Request is the immutable snapshot of one merge invocation.
type Request struct {
	SamplePath  string
	EpiPath     string // optional
	ReportPath  string // optional
	Destination string
	Mode        model.Mode
	Action      model.Action
	Inputs      model.OperatorInputs
}

// Result reports a finished invocation for caller display.
type Result struct {
	Title      string
	Message    string
	OutputPath string
	Rows       int
}

// Run executes the whole pipeline synchronously. Any returned error is an
// *errs.Error carrying a (title, message) pair.
func Run(req Request) (*Result, error) {
	sampleTable, err := loader.Load(req.SamplePath)
	if err != nil {
		return nil, err
	}
	log.Infof("loaded %d sample rows from %s", sampleTable.RowCount(), req.SamplePath)

	var epiTable *model.Table
	if req.EpiPath != "" {
		epiTable, err = loader.Load(req.EpiPath)
		if err != nil {
			return nil, err
		}
		log.Infof("loaded %d epi info rows from %s", epiTable.RowCount(), req.EpiPath)
	}

	var meta model.RunMetadata
	if req.ReportPath != "" {
		raw, err := file.ReadAll(req.ReportPath)
		if err != nil {
			return nil, errs.Wrap(errs.IO, err, "cannot read %s", req.ReportPath)
		}
		meta = report.Extract(string(raw))
		log.Infof("run report: minknow=%q flowcell=%q kit=%q hours=%q date=%q pores=%d",
			meta.MinKNOWVersion, meta.FlowCellID, meta.KitType,
			meta.RunHours, meta.SeqDate, meta.PoreCount)
	}

	merged, err := merge.Reconcile(sampleTable, epiTable, req.Mode)
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(merged, req.Mode); err != nil {
		return nil, err
	}

	if req.Action == model.ActionMerge {
		if err := fill.Validate(req.Inputs, meta, req.Mode); err != nil {
			return nil, err
		}
		fill.Apply(merged, req.Inputs, meta, req.Mode)
	}

	out, err := schema.Project(merged, req.Mode)
	if err != nil {
		return nil, err
	}

	name := req.Inputs.RunNumber + consts.OutputSuffix
	path := filepath.Join(req.Destination, name)
	if err := writeCSV(path, out); err != nil {
		return nil, err
	}
	log.Infof("wrote %d rows to %s", out.RowCount(), path)

	res := &Result{OutputPath: path, Rows: out.RowCount()}
	switch req.Action {
	case model.ActionMerge:
		res.Title = "Merge Successful"
		res.Message = fmt.Sprintf("Merged detailed run report saved to destination as %s.", name)
	default:
		res.Title = "Update Successful"
		res.Message = fmt.Sprintf("Updated detailed run report saved to destination as %s.", name)
	}
	return res, nil
}

func writeCSV(path string, t *model.Table) error {
	f, err := file.New(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC)
	if err != nil {
		return errs.Wrap(errs.Write, err, "cannot create %s", path)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.Write(t.Cols); err != nil {
		return errs.Wrap(errs.Write, err, "cannot write %s", path)
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return errs.Wrap(errs.Write, err, "cannot write %s", path)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errs.Wrap(errs.Write, err, "cannot write %s", path)
	}
	return nil
}
