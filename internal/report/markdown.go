package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/batchstat/internal/model"
	"github.com/nao1215/batchstat/internal/wordcount"
	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
)

// chartTopTokens is the number of most frequent tokens shown in the pie chart.
const chartTopTokens = 10

// MarkdownWriter outputs reports in GitHub Flavored Markdown.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.Report) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)

	switch report.Kind {
	case model.KindStatistics:
		w.writeStatistics(md, report.Statistics)
	case model.KindConversion:
		w.writeConversions(md, report.Conversions)
	case model.KindWordCount:
		w.writeWordCounts(md, report.WordCounts)
	}

	w.writeSkipped(md, report.Skipped)
	w.writeFooter(md, report)

	return len(md.String()), md.Build()
}

// writeHeader writes the title and input file.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.Report) {
	switch report.Kind {
	case model.KindStatistics:
		md.H1("Descriptive Statistics")
	case model.KindConversion:
		md.H1("Number Conversion")
	case model.KindWordCount:
		md.H1("Word Count")
	default:
		md.H1("Results")
	}
	md.PlainText("")
	md.PlainTextf("Input file: `%s`", report.Source)
	md.PlainText("")
}

func (w *MarkdownWriter) writeStatistics(md *markdown.Markdown, s *model.Statistics) {
	if s == nil {
		return
	}
	md.Table(markdown.TableSet{
		Header: []string{"Statistic", "Value"},
		Rows: [][]string{
			{"Count", strconv.Itoa(s.Count)},
			{"Mean", FormatFloat(s.Mean)},
			{"Median", FormatFloat(s.Median)},
			{"Mode", formatFloatList(s.Modes)},
			{"Variance", FormatFloat(s.Variance)},
			{"Standard Deviation", FormatFloat(s.StdDev)},
		},
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeConversions(md *markdown.Markdown, conversions []model.Conversion) {
	if len(conversions) == 0 {
		md.PlainText("No values to convert.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(conversions))
	for i, c := range conversions {
		rows[i] = []string{
			FormatFloat(c.Original),
			strconv.FormatInt(c.Integer, 10),
			"`" + c.Binary + "`",
			"`" + c.Hex + "`",
		}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Original", "Integer", "Binary", "Hex"},
		Rows:   rows,
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeWordCounts(md *markdown.Markdown, table *model.FrequencyTable[string]) {
	if table == nil || table.Len() == 0 {
		md.PlainText("No words found.")
		md.PlainText("")
		return
	}

	entries := table.Entries()
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{escapeCell(e.Key), strconv.Itoa(e.Count)}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Word", "Count"},
		Rows:   rows,
	})
	md.PlainText("")

	w.writePieChart(md, table)
}

// writePieChart writes a mermaid pie chart of the most frequent tokens.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, table *model.FrequencyTable[string]) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Most Frequent Words"),
		piechart.WithShowData(true),
	)

	for _, e := range wordcount.Top(table, chartTopTokens) {
		chart.LabelAndIntValue(strings.ReplaceAll(e.Key, `"`, "'"), uint64(e.Count)) //nolint:gosec // counts are positive
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeSkipped lists malformed input lines, if any.
func (w *MarkdownWriter) writeSkipped(md *markdown.Markdown, skipped []model.SkippedEntry) {
	if len(skipped) == 0 {
		return
	}

	md.Warningf("%d malformed entr%s skipped.", len(skipped), pluralY(len(skipped)))
	md.PlainText("")

	items := make([]string, len(skipped))
	for i, s := range skipped {
		items[i] = "line " + strconv.Itoa(s.Line) + ": `" + s.Text + "`"
	}
	md.BulletList(items...)
	md.PlainText("")
}

// writeFooter writes the elapsed time.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown, report *model.Report) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Time Elapsed: %s seconds*", FormatFloat(report.ElapsedSeconds()))
}

// escapeCell keeps table cells from breaking the column layout.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func pluralY(n int) string {
	if n == 1 {
		return "y was"
	}
	return "ies were"
}
