package echoapi

import (
	"fmt"
	"strings"

	"github.com/vamsidulam/exameval/core/exam"
	"github.com/vamsidulam/exameval/core/question"
)

// generateQuestions produces a deterministic stub paper shaped by the
// template: the first section gets multiple-choice questions, the rest short
// answers, topics cycled from the syllabus text.
func generateQuestions(tpl exam.Template, syllabus string) []question.Question {
	topics := syllabusTopics(syllabus)
	var out []question.Question
	num := 0
	for si, section := range tpl.Sections {
		for qi := 0; qi < section.TotalQuestions; qi++ {
			num++
			topic := topics[(num-1)%len(topics)]
			q := question.Question{
				Number:      num,
				Marks:       section.MarksPerQuestion,
				SectionName: section.Name,
				BTL:         fmt.Sprintf("L%d", qi%3+1),
			}
			if si == 0 {
				q.RawType = "MCQ"
				q.Kind = question.MultipleChoice
				q.Text = fmt.Sprintf("Which of the following best describes %s?", topic)
				q.Options = []string{
					fmt.Sprintf("A) The definition of %s", topic),
					fmt.Sprintf("B) An application of %s", topic),
					fmt.Sprintf("C) A limitation of %s", topic),
					"D) None of the above",
				}
				q.CorrectAnswer = "A"
			} else {
				q.RawType = "Short Answer"
				q.Kind = question.ShortAnswer
				q.Text = fmt.Sprintf("Explain %s with an example.", topic)
			}
			out = append(out, q)
		}
	}
	return out
}

func syllabusTopics(syllabus string) []string {
	var topics []string
	for _, part := range strings.FieldsFunc(syllabus, func(r rune) bool { return r == ',' || r == ';' || r == '\n' }) {
		if part = strings.TrimSpace(part); part != "" {
			topics = append(topics, part)
		}
	}
	if len(topics) == 0 {
		topics = []string{"the syllabus"}
	}
	return topics
}
