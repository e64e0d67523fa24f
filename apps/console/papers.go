package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/vamsidulam/exameval/core"
	"github.com/vamsidulam/exameval/core/flow"
	"github.com/vamsidulam/exameval/core/paper"
	"github.com/vamsidulam/exameval/services/examapi"
	"github.com/vamsidulam/exameval/services/export"
)

func (cli *commandLine) runListPapers() error {
	cli.warnIfExpired()
	papers, err := cli.client.ListPapers(context.Background())
	if err != nil {
		return err
	}
	if len(papers) == 0 {
		fmt.Println("no question papers yet")
		return nil
	}
	for _, p := range papers {
		state := "draft"
		if p.HasQuestions() {
			state = fmt.Sprintf("%d questions", len(p.Questions))
		}
		fmt.Printf("%s  %-30s  %s\n", p.ID, p.Name, state)
	}
	return nil
}

// runPaperGenerate drives the generation flow: setup -> syllabus ->
// generating -> done|failed. A backend failure lands in the failed state and
// is reported; the process stays interactive.
func (cli *commandLine) runPaperGenerate(args []string) error {
	cmd := flag.NewFlagSet("paper-generate", flag.ExitOnError)
	templateID := cmd.String("template", "", "The template id to generate against.")
	name := cmd.String("name", "", "The question paper name.")
	syllabusFile := cmd.String("syllabus", "", "Path to a syllabus text file.")
	instructions := cmd.String("instructions", "", "Additional instructions printed on the paper.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *templateID == "" || *name == "" || *syllabusFile == "" {
		cmd.Usage()
		return errHelp
	}

	syllabus, err := os.ReadFile(*syllabusFile)
	if err != nil {
		return errors.Wrapf(err, "reading %s", *syllabusFile)
	}
	np := examapi.NewPaper{
		TemplateID:             *templateID,
		Name:                   *name,
		Syllabus:               string(syllabus),
		AdditionalInstructions: *instructions,
	}

	f := flow.PaperGeneration(
		func() error {
			return core.TranslateValidationErrors(cli.validate.Struct(np), cli.translator)
		},
		func() error {
			if core.CleanString(np.Syllabus) == "" {
				return core.NewValidationError(nil, core.FieldError{Field: "syllabus", Error: "syllabus text is empty"})
			}
			return nil
		},
	)
	for _, next := range []flow.State{flow.GenSyllabus, flow.GenGenerating} {
		if err := f.Advance(next); err != nil {
			return err
		}
	}

	cli.warnIfExpired()
	ctx := context.Background()
	created, err := cli.client.CreatePaper(ctx, np)
	if err != nil {
		_ = f.Advance(flow.GenFailed)
		return err
	}
	fmt.Printf("created paper %s, generating questions...\n", created.ID)

	generated, err := cli.client.GeneratePaper(ctx, created.ID)
	if err != nil {
		_ = f.Advance(flow.GenFailed)
		return err
	}
	_ = f.Advance(flow.GenDone)
	fmt.Printf("generated %d questions for %s\n", len(generated.Questions), generated.Name)
	return nil
}

func (cli *commandLine) runPaperExport(args []string) error {
	cmd := flag.NewFlagSet("paper-export", flag.ExitOnError)
	id := cmd.String("id", "", "The question paper id.")
	out := cmd.String("out", ".", "Output directory.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		cmd.Usage()
		return errHelp
	}

	cli.warnIfExpired()
	ctx := context.Background()
	p, err := cli.client.GetPaper(ctx, *id)
	if err != nil {
		return err
	}
	tpl, err := cli.client.GetTemplate(ctx, p.TemplateID)
	if err != nil {
		return err
	}

	doc := paper.Layout(tpl, p)
	data, filename := export.Paper(doc, logger)
	path := filepath.Join(*out, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	fmt.Printf("exported %s (%d pages, %d bytes)\n", path, len(doc.Pages), len(data))
	return nil
}
