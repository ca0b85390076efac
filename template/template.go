// Package template writes an empty sample sheet carrying the active mode's
// header so labs start from a sheet the validator will accept.
package template

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"github.com/biosurv/merger/consts"
	"github.com/biosurv/merger/errs"
	"github.com/biosurv/merger/file"
	"github.com/biosurv/merger/model"
	"github.com/biosurv/merger/schema"
)

// Write creates a header-only template for mode in dir and returns its path.
func Write(dir string, mode model.Mode) (string, error) {
	path := filepath.Join(dir, consts.TemplateName)
	f, err := file.New(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC)
	if err != nil {
		return "", errs.Wrap(errs.Write, err, "cannot create %s", path)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.Write(schema.Columns(mode)); err != nil {
		return "", errs.Wrap(errs.Write, err, "cannot write %s", path)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", errs.Wrap(errs.Write, err, "cannot write %s", path)
	}
	return path, nil
}
