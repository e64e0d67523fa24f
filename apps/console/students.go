package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/vamsidulam/exameval/core/student"
)

func (cli *commandLine) runListStudents() error {
	cli.warnIfExpired()
	students, err := cli.client.ListStudents(context.Background())
	if err != nil {
		return err
	}
	if len(students) == 0 {
		fmt.Println("no students yet")
		return nil
	}
	for _, s := range students {
		fmt.Printf("%-12s  %-25s  %-28s  %s\n", s.StudentID, s.Name, s.Email, s.Branch)
	}
	return nil
}

func (cli *commandLine) runStudentsImport(args []string) error {
	cmd := flag.NewFlagSet("students-import", flag.ExitOnError)
	file := cmd.String("file", "", "Path to the roster CSV.")
	class := cmd.String("class", "", "Class name applied to rows without a branch.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *file == "" || *class == "" {
		cmd.Usage()
		return errHelp
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		return errors.Wrapf(err, "reading %s", *file)
	}

	// preflight locally; structural problems surface before any upload
	pre, err := student.PreflightRoster(bytes.NewReader(data), cli.validate)
	if err != nil {
		return err
	}
	for _, f := range pre.Failed {
		fmt.Printf("warning: row %d (%s): %s\n", f.Row, f.Data, f.Reason)
	}

	cli.warnIfExpired()
	rep, err := cli.client.ImportStudentsCSV(context.Background(), bytes.NewReader(data), filepath.Base(*file), *class)
	if err != nil {
		return err
	}
	printImportReport(rep)
	return nil
}

// printImportReport shows both counts; partial success is a report, not an
// error.
func printImportReport(rep student.ImportReport) {
	fmt.Printf("imported %d of %d rows (%d failed)\n", rep.SuccessfulInserts, rep.TotalRows, rep.FailedInserts)
	for _, f := range rep.Failed {
		fmt.Printf("  row %d: %s  (%s)\n", f.Row, f.Reason, f.Data)
	}
}
