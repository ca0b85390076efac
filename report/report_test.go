package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/biosurv/merger/model"
)

const reportHTML = `<!DOCTYPE html>
<html>
<head><title>Run report</title></head>
<body>
<script>const other=1;</script>
<script>
const reportData={
  "software_versions": [
    {"title": "MinKNOW", "value": "23.04.5"},
    {"title": "Bream", "value": "7.5.9"}
  ],
  "run_setup": [
    {"title": "Flow cell ID", "value": "FBA38845"},
    {"title": "Kit type", "value": "SQK-RBK004"}
  ],
  "run_settings": [
    {"title": "Run limit", "value": "72"}
  ],
  "run_end_time": "2025-02-06T15:39:00Z",
  "pore_scan": {
    "series_data": [
      {"name": "Pore available", "data": [[0, 1421], [60, 1390]]},
      {"name": "Recovering", "data": [[0, 12]]}
    ]
  }
};
renderReport(reportData);
</script>
</body>
</html>`

func TestExtract(t *testing.T) {
	meta := Extract(reportHTML)
	assert.Equal(t, "23.04.5", meta.MinKNOWVersion)
	assert.Equal(t, "FBA38845", meta.FlowCellID)
	assert.Equal(t, "SQK-RBK004", meta.KitType)
	assert.Equal(t, "72", meta.RunHours)
	assert.Equal(t, "2025-02-06", meta.SeqDate)
	assert.Equal(t, 1421, meta.PoreCount)
}

func TestExtractNoMarker(t *testing.T) {
	meta := Extract(`<html><body><script>var x=1;</script></body></html>`)
	assert.Equal(t, model.RunMetadata{}, meta)
}

func TestExtractMalformedJSON(t *testing.T) {
	meta := Extract(`<html><script>const reportData={"run_end_time": not json};</script></html>`)
	assert.Equal(t, model.RunMetadata{}, meta)
}

func TestExtractPartialPayload(t *testing.T) {
	doc := `<html><script>const reportData={"run_end_time":"2024-11-30T08:00:00"};</script></html>`
	meta := Extract(doc)
	assert.Equal(t, "2024-11-30", meta.SeqDate)
	assert.Equal(t, "", meta.MinKNOWVersion)
	assert.Equal(t, 0, meta.PoreCount)
}

func TestExtractEntryWithoutValue(t *testing.T) {
	doc := `<html><script>const reportData={"run_setup":[{"title":"Flow cell ID"}]};</script></html>`
	meta := Extract(doc)
	assert.Equal(t, "Unknown", meta.FlowCellID)
	assert.Equal(t, "", meta.KitType)
}

func TestExtractNotHTMLAtAll(t *testing.T) {
	assert.Equal(t, model.RunMetadata{}, Extract("plain text, no markup"))
}
