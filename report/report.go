// Package report extracts run-level metadata from a sequencer-generated HTML
// report. The report embeds a JSON payload in a script tag; extraction is
// best-effort and never fails the merge. Every field defaults independently.
package report

import (
	"encoding/json"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/biosurv/merger/consts"
	"github.com/biosurv/merger/log"
	"github.com/biosurv/merger/model"
)

type entry struct {
	Title string `json:"title"`
	Value string `json:"value"`
}

type series struct {
	Name string          `json:"name"`
	Data [][]json.Number `json:"data"`
}

type payload struct {
	SoftwareVersions []entry `json:"software_versions"`
	RunSetup         []entry `json:"run_setup"`
	RunSettings      []entry `json:"run_settings"`
	RunEndTime       string  `json:"run_end_time"`
	PoreScan         struct {
		SeriesData []series `json:"series_data"`
	} `json:"pore_scan"`
}

// Extract pulls run metadata out of the report document text. A document
// without the reportData marker yields an empty RunMetadata; a partially
// decodable payload yields whatever fields survived.
func Extract(doc string) model.RunMetadata {
	var meta model.RunMetadata
	script, ok := reportScript(doc)
	if !ok {
		return meta
	}
	body := script[strings.Index(script, consts.ReportMarker)+len(consts.ReportMarker):]
	if i := strings.Index(body, ";"); i != -1 {
		body = body[:i]
	}
	var p payload
	if err := json.Unmarshal([]byte(strings.TrimSpace(body)), &p); err != nil {
		log.Infof("run report payload only partially decoded: %v", err)
	}
	for _, e := range p.SoftwareVersions {
		if e.Title == "MinKNOW" {
			meta.MinKNOWVersion = orUnknown(e.Value)
		}
	}
	for _, e := range p.RunSetup {
		switch e.Title {
		case "Flow cell ID":
			meta.FlowCellID = orUnknown(e.Value)
		case "Kit type":
			meta.KitType = orUnknown(e.Value)
		}
	}
	for _, e := range p.RunSettings {
		if e.Title == "Run limit" {
			meta.RunHours = orUnknown(e.Value)
		}
	}
	if p.RunEndTime != "" {
		meta.SeqDate = strings.SplitN(p.RunEndTime, "T", 2)[0]
	}
	meta.PoreCount = poresAvailable(p.PoreScan.SeriesData)
	return meta
}

// reportScript walks the document for a script element whose text contains
// the reportData marker.
func reportScript(doc string) (string, bool) {
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		return "", false
	}
	var found string
	var walk func(*html.Node) bool
	walk = func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == "script" {
			text := nodeText(n)
			if strings.Contains(text, consts.ReportMarker) {
				found = text
				return true
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}
	if walk(root) {
		return found, true
	}
	return "", false
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}

// poresAvailable reads the second element of the first data pair of the
// "Pore available" series; 0 when anything along that path is missing.
func poresAvailable(sd []series) int {
	for _, s := range sd {
		if s.Name != "Pore available" {
			continue
		}
		if len(s.Data) == 0 || len(s.Data[0]) < 2 {
			return 0
		}
		if v, err := strconv.ParseFloat(s.Data[0][1].String(), 64); err == nil {
			return int(v)
		}
		return 0
	}
	return 0
}

func orUnknown(v string) string {
	if v == "" {
		return consts.Unknown
	}
	return v
}
