package consts

const (
	LF        = byte('\n')
	Comma     = byte(',')
	Semicolon = byte(';')
	Tab       = byte('\t')

	// SniffLines is how many lines the delimiter sniffer samples.
	SniffLines = 50

	// Unknown marks a report entry that was present without a value.
	Unknown = "Unknown"

	// ReportMarker opens the embedded JSON payload of a MinKNOW report.
	ReportMarker = "const reportData="

	OutputSuffix = "_merger_output.csv"
	TemplateName = "sample_template.csv"
)
