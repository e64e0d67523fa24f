package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/vamsidulam/exameval/core"
	"github.com/vamsidulam/exameval/core/exam"
	"github.com/vamsidulam/exameval/core/flow"
)

func (cli *commandLine) runListTemplates() error {
	cli.warnIfExpired()
	tpls, err := cli.client.ListTemplates(context.Background())
	if err != nil {
		return err
	}
	if len(tpls) == 0 {
		fmt.Println("no templates yet")
		return nil
	}
	for _, tpl := range tpls {
		fmt.Printf("%s  %-30s  %2d sections  %3d marks\n", tpl.ID, tpl.Name, len(tpl.Sections), tpl.GrandTotal())
	}
	return nil
}

// runTemplateCreate walks the creation flow over a form file: details are
// validated before sections, sections before review, and only a reviewed
// form is submitted.
func (cli *commandLine) runTemplateCreate(args []string) error {
	cmd := flag.NewFlagSet("template-create", flag.ExitOnError)
	file := cmd.String("file", "", "Path to a JSON template form.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		cmd.Usage()
		return errHelp
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		return errors.Wrapf(err, "reading %s", *file)
	}
	var form exam.TemplateForm
	if err := json.Unmarshal(data, &form); err != nil {
		return errors.Wrapf(err, "parsing %s", *file)
	}

	f := flow.TemplateCreation(
		func() error { // details step: name, institute, duration
			return core.TranslateValidationErrors(cli.validate.Struct(form), cli.translator)
		},
		func() error { // sections step: full form
			return form.Validate(cli.validate, cli.translator)
		},
	)
	for _, next := range []flow.State{flow.TplSections, flow.TplReview, flow.TplSubmitted} {
		if err := f.Advance(next); err != nil {
			return err
		}
	}

	cli.warnIfExpired()
	created, err := cli.client.CreateTemplate(context.Background(), form.Template())
	if err != nil {
		return err
	}
	fmt.Printf("created template %s (%s), total marks %d\n", created.Name, created.ID, created.GrandTotal())
	return nil
}
