package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/worthyretail/xray/internal/contract"
	"github.com/worthyretail/xray/schema"
)

// PrintReport outputs an individual assessment, dispatching based on the output format configured.
func PrintReport(report schema.Report, catalog schema.Catalog, cfg *contract.Config) error {
	return dispatch(cfg,
		func(w io.Writer) error { return writeReportText(w, report, catalog, cfg) },
		func(w io.Writer) error { return writeReportJSON(w, report, catalog) },
		func(w io.Writer) error { return writeReportCSV(w, report) },
	)
}

// writeReportText renders the archetype, pillar table and remediation advice.
func writeReportText(w io.Writer, report schema.Report, catalog schema.Catalog, cfg *contract.Config) error {
	if err := writeHeading(w, heading(cfg, "🩻", catalog.Title)); err != nil {
		return err
	}

	a := report.Archetype
	if _, err := fmt.Fprintf(w, "\nArchetype: %s (%s)\nStatus: %s\n%s\n\n", a.Name, a.Tagline, a.Status, a.Description); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Pillar", "Meaning", "Score", "Label"})
	table.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignLeft
	})

	var data [][]string
	for _, p := range schema.AllPillars {
		score := report.Result.Scores.Get(p)
		data = append(data, []string{
			pillarDisplayName(catalog, p),
			catalog.Pillars[p].Meaning,
			fmt.Sprintf("%d%%", score),
			scoreLabel(cfg, score),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Overall: %.0f%%\n", report.Result.Scores.Average()); err != nil {
		return err
	}

	lowest := report.Result.LowestPillar
	if _, err := fmt.Fprintf(w, "\n%s: %s\n%s\n", heading(cfg, "🎯", "Focus pillar"), pillarDisplayName(catalog, lowest), report.Remedy.Remedy); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\nPrescription: %s\nStrive for: %s\n", a.Prescription, a.StriveFor); err != nil {
		return err
	}

	c := report.Result.Confidence
	if c.Reliable {
		_, err := fmt.Fprintf(w, "Confidence: %d%%\n", c.Percent)
		return err
	}
	_, err := fmt.Fprintf(w, "Confidence: %d%% (straight-lining suspected: %.0f%% of answers were %d)\n",
		c.Percent, c.MaxRatio*100, schema.MaxAnswer)
	return err
}

// jsonReport is the JSON shape of an individual assessment.
type jsonReport struct {
	Title  string                   `json:"title"`
	Labels map[schema.Pillar]string `json:"labels"`
	schema.Report
}

// writeReportJSON writes the report with plain pillar labels.
func writeReportJSON(w io.Writer, report schema.Report, catalog schema.Catalog) error {
	labels := make(map[schema.Pillar]string, len(schema.AllPillars))
	for _, p := range schema.AllPillars {
		labels[p] = contract.GetPlainLabel(report.Result.Scores.Get(p))
	}
	return writeJSON(w, jsonReport{Title: catalog.Title, Labels: labels, Report: report})
}

// writeReportCSV writes a single summary row.
func writeReportCSV(w io.Writer, report schema.Report) error {
	header := []string{
		"archetype_id",
		"archetype_name",
		"score_b",
		"score_f",
		"score_p",
		"lowest_pillar",
		"confidence",
		"reliable",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		r := report.Result
		return cw.Write([]string{
			string(r.ArchetypeID),
			report.Archetype.Name,
			strconv.Itoa(r.Scores.B),
			strconv.Itoa(r.Scores.F),
			strconv.Itoa(r.Scores.P),
			string(r.LowestPillar),
			strconv.Itoa(r.Confidence.Percent),
			strconv.FormatBool(r.Confidence.Reliable),
		})
	})
}

// pillarDisplayName prefers the catalog's pillar name over the built-in one.
func pillarDisplayName(catalog schema.Catalog, p schema.Pillar) string {
	if info, ok := catalog.Pillars[p]; ok && info.Name != "" {
		return info.Name
	}
	return schema.PillarName(p)
}
