package merge

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biosurv/merger/errs"
	"github.com/biosurv/merger/model"
)

func newTable(t *testing.T, cols []string, rows ...[]string) *model.Table {
	t.Helper()
	tab, err := model.NewTable(cols)
	require.NoError(t, err)
	for _, r := range rows {
		tab.AddRow(r)
	}
	return tab
}

func TestReconcileWithoutEpi(t *testing.T) {
	sample := newTable(t, []string{"sample", "barcode"}, []string{"A", "b01"})
	out, err := Reconcile(sample, nil, model.ModeDDNS)
	require.NoError(t, err)
	assert.Same(t, sample, out)
}

func TestReconcileLeftJoin(t *testing.T) {
	sample := newTable(t, []string{"sample", "barcode"},
		[]string{"A", "b01"}, []string{"B", "b02"})
	epi := newTable(t, []string{"ICLabID", "Foo"}, []string{"A", "bar"})
	out, err := Reconcile(sample, epi, model.ModeDDNS)
	require.NoError(t, err)
	require.Equal(t, 2, out.RowCount())
	assert.Equal(t, "bar", out.Value(0, "Foo"))
	assert.Equal(t, "", out.Value(1, "Foo"))
	assert.False(t, out.HasCol("ICLabID"))
}

func TestReconcileSharedColumnsComeFromEpi(t *testing.T) {
	sample := newTable(t, []string{"sample", "Country"}, []string{"A", "stale"})
	epi := newTable(t, []string{"ICLabID", "Country"}, []string{"A", "fresh"})
	out, err := Reconcile(sample, epi, model.ModeDDNS)
	require.NoError(t, err)
	assert.Equal(t, "fresh", out.Value(0, "Country"))
}

func TestReconcileDuplicateEpiKeysFirstWins(t *testing.T) {
	sample := newTable(t, []string{"sample"}, []string{"A"})
	epi := newTable(t, []string{"ICLabID", "Foo"},
		[]string{"A", "first"}, []string{"A", "second"})
	out, err := Reconcile(sample, epi, model.ModeDDNS)
	require.NoError(t, err)
	require.Equal(t, 1, out.RowCount())
	assert.Equal(t, "first", out.Value(0, "Foo"))
}

func TestReconcileEpidBackfill(t *testing.T) {
	sample := newTable(t, []string{"sample", "EPID"},
		[]string{"A", ""}, []string{"B", "kept"})
	epi := newTable(t, []string{"ICLabID", "EpidNumber"},
		[]string{"A", "EPID-123"}, []string{"B", "EPID-456"})
	out, err := Reconcile(sample, epi, model.ModeDDNS)
	require.NoError(t, err)
	assert.Equal(t, "EPID-123", out.Value(0, "EPID"))
	assert.Equal(t, "kept", out.Value(1, "EPID"))
	assert.False(t, out.HasCol("EpidNumber"))
}

func TestReconcileMinIONRenames(t *testing.T) {
	sample := newTable(t, []string{"sample"}, []string{"A"})
	epi := newTable(t,
		[]string{"ICLabID", "DateFinalCellCultureResults", "SequenceName"},
		[]string{"A", "2024-01-01", "SEQ1"})
	out, err := Reconcile(sample, epi, model.ModeMinION)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", out.Value(0, "DateFinalCultureResult"))
	assert.Equal(t, "SEQ1", out.Value(0, "SangerSequenceID"))
	assert.False(t, out.HasCol("SequenceName"))
}

func TestMinIONRenamesIdempotent(t *testing.T) {
	epi := newTable(t,
		[]string{"ICLabID", "FinalITDResult"},
		[]string{"A", "positive"})
	once := newTable(t,
		[]string{"ICLabID", "FinalITDResult"},
		[]string{"A", "positive"})
	for old, alias := range epiAliases {
		epi.Rename(old, alias)
		once.Rename(old, alias)
	}
	for old, alias := range epiAliases {
		epi.Rename(old, alias)
	}
	if diff := cmp.Diff(once.Cols, epi.Cols); diff != "" {
		t.Fatalf("double rename changed columns (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(once.Rows, epi.Rows); diff != "" {
		t.Fatalf("double rename changed rows (-want +got):\n%s", diff)
	}
}

func TestReconcileDDNSSkipsRenames(t *testing.T) {
	sample := newTable(t, []string{"sample"}, []string{"A"})
	epi := newTable(t, []string{"ICLabID", "SequenceName"}, []string{"A", "SEQ1"})
	out, err := Reconcile(sample, epi, model.ModeDDNS)
	require.NoError(t, err)
	assert.True(t, out.HasCol("SequenceName"))
	assert.False(t, out.HasCol("SangerSequenceID"))
}

func TestReconcileMissingJoinKey(t *testing.T) {
	sample := newTable(t, []string{"labid"}, []string{"A"})
	epi := newTable(t, []string{"ICLabID"}, []string{"A"})
	_, err := Reconcile(sample, epi, model.ModeDDNS)
	require.Error(t, err)
	kind, ok := errs.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, errs.Merge, kind)
	assert.Contains(t, err.Error(), "labid")
	assert.Contains(t, err.Error(), "ICLabID")
}
