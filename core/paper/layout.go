package paper

import (
	"fmt"
	"strings"

	"github.com/vamsidulam/exameval/core/exam"
	"github.com/vamsidulam/exameval/core/question"
)

// The layout engine converts a {template, questions} pair into paginated pages
// of typed lines. It works in millimetres on an A4 portrait page so the PDF
// exporter and the plain-text fallback render the exact same pagination.

const (
	pageHeight    = 297.0
	topMargin     = 15.0
	breakAt       = 272.0 // near-bottom threshold: start a new page past this
	questionWidth = 88    // wrap width (chars) for question text, marks column excluded
	optionWidth   = 80    // wrap width (chars) for indented option lines
)

// line heights in mm, per kind
const (
	titleH       = 9.0
	subtitleH    = 7.0
	metaH        = 6.0
	sectionH     = 9.0
	instructionH = 6.0
	textH        = 6.0
	spacerH      = 3.0
)

type LineKind int

const (
	LineTitle LineKind = iota
	LineSubtitle
	LineMeta
	LineSectionHeader
	LineInstruction
	LineQuestion     // first wrapped segment; carries the marks column
	LineContinuation // subsequent wrapped segments of a question
	LineOption
	LineSpacer
	LineEmptyState
)

type (
	Line struct {
		Kind    LineKind
		Text    string
		Marks   int  // right-aligned marks, LineQuestion only
		Correct bool // LineOption only: option matching the correct answer
	}

	Page struct {
		Lines []Line
	}

	Document struct {
		Title      string
		Institute  string
		Meta       []string
		TotalMarks int
		Pages      []Page
	}
)

const emptyStateText = "No questions have been generated for this paper yet."

// Layout builds the paginated document for a paper and its originating
// template. It never fails: absent fields default to zero values and an empty
// question list yields the designated empty state.
func Layout(tpl exam.Template, p QuestionPaper) Document {
	doc := Document{
		Title:      paperTitle(tpl, p),
		Institute:  tpl.InstituteName,
		TotalMarks: tpl.GrandTotal(),
	}
	doc.Meta = headerMeta(tpl, doc.TotalMarks)

	l := &layouter{}
	l.newPage()

	// header block on the first page
	if doc.Institute != "" {
		l.add(Line{Kind: LineTitle, Text: doc.Institute}, titleH)
	}
	l.add(Line{Kind: LineSubtitle, Text: doc.Title}, subtitleH)
	for _, m := range doc.Meta {
		l.add(Line{Kind: LineMeta, Text: m}, metaH)
	}
	if p.AdditionalInstructions != "" {
		for _, seg := range wrap(p.AdditionalInstructions, questionWidth) {
			l.add(Line{Kind: LineInstruction, Text: seg}, instructionH)
		}
	}
	l.add(Line{Kind: LineSpacer}, spacerH)

	if !p.HasQuestions() {
		l.add(Line{Kind: LineEmptyState, Text: emptyStateText}, textH)
		doc.Pages = l.pages
		return doc
	}

	idx := 0
	for _, g := range GroupBySection(tpl, p.Questions) {
		l.section(g)
		for _, q := range g.Questions {
			l.question(q, idx)
			idx++
		}
		l.add(Line{Kind: LineSpacer}, spacerH)
	}

	doc.Pages = l.pages
	return doc
}

func paperTitle(tpl exam.Template, p QuestionPaper) string {
	if p.Name != "" {
		return p.Name
	}
	if tpl.Name != "" {
		return tpl.Name
	}
	return "Question Paper"
}

func headerMeta(tpl exam.Template, totalMarks int) []string {
	var meta []string
	if tpl.Duration > 0 {
		meta = append(meta, fmt.Sprintf("Duration: %d minutes", tpl.Duration))
	}
	when := tpl.ExamDate
	if ts := tpl.ExamTime.String(); ts != "" {
		if when != "" {
			when += " at "
		}
		when += ts
	}
	if when != "" {
		meta = append(meta, "Date: "+when)
	}
	meta = append(meta, fmt.Sprintf("Total Marks: %d", totalMarks))
	return meta
}

type layouter struct {
	pages  []Page
	cursor float64
}

func (l *layouter) newPage() {
	l.pages = append(l.pages, Page{})
	l.cursor = topMargin
}

func (l *layouter) cur() *Page {
	return &l.pages[len(l.pages)-1]
}

// add appends a line, breaking to a new page first when the cursor would pass
// the near-bottom threshold. A line taller than a page still gets placed.
func (l *layouter) add(line Line, height float64) {
	if l.cursor+height > breakAt && len(l.cur().Lines) > 0 {
		l.newPage()
	}
	l.cur().Lines = append(l.cur().Lines, line)
	l.cursor += height
}

// section places a section header and its instruction, keeping them together:
// the break happens before the header, never between header and instruction.
func (l *layouter) section(g SectionGroup) {
	needed := sectionH + instructionH + textH // keep at least one question line nearby
	if l.cursor+needed > breakAt && len(l.cur().Lines) > 0 {
		l.newPage()
	}
	if g.Name != "" {
		l.add(Line{Kind: LineSectionHeader, Text: g.Name}, sectionH)
	}
	if g.Section != nil {
		l.add(Line{Kind: LineInstruction, Text: g.Section.Instruction()}, instructionH)
	} else if g.Name != "" {
		// section not declared by the template: generic fallback instruction
		l.add(Line{Kind: LineInstruction, Text: exam.Section{TotalQuestions: len(g.Questions)}.Instruction()}, instructionH)
	}
}

func (l *layouter) question(q question.Question, idx int) {
	text := fmt.Sprintf("%d. %s", q.DisplayNumber(idx), question.CleanText(q.Text))
	segs := wrap(text, questionWidth)
	l.add(Line{Kind: LineQuestion, Text: segs[0], Marks: q.Marks}, textH)
	for _, seg := range segs[1:] {
		l.add(Line{Kind: LineContinuation, Text: seg}, textH)
	}

	if q.HasOptions() {
		correct := question.CorrectOptionIndex(q.Options, q.CorrectAnswer)
		for i, opt := range q.Options {
			for j, seg := range wrap(opt, optionWidth) {
				l.add(Line{Kind: LineOption, Text: seg, Correct: i == correct && j == 0}, textH)
			}
		}
	}
	l.add(Line{Kind: LineSpacer}, spacerH)
}

// wrap splits s into segments of at most width characters, breaking on spaces
// where possible. Always returns at least one segment.
func wrap(s string, width int) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return []string{""}
	}
	// widths count runes, and hard splits land on rune boundaries, so wrapped
	// text stays valid UTF-8
	var segs []string
	var b []rune
	for _, w := range strings.Fields(s) {
		r := []rune(w)
		for len(r) > width { // unbreakable run longer than a whole line
			if len(b) > 0 {
				segs = append(segs, string(b))
				b = b[:0]
			}
			segs = append(segs, string(r[:width]))
			r = r[width:]
		}
		switch {
		case len(b) == 0:
			b = append(b, r...)
		case len(b)+1+len(r) <= width:
			b = append(b, ' ')
			b = append(b, r...)
		default:
			segs = append(segs, string(b))
			b = append(b[:0], r...)
		}
	}
	if len(b) > 0 {
		segs = append(segs, string(b))
	}
	return segs
}
