package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/vamsidulam/exameval/services/export"
)

func (cli *commandLine) runKeyUpload(args []string) error {
	cmd := flag.NewFlagSet("key-upload", flag.ExitOnError)
	file := cmd.String("file", "", "Path to the key sheet document.")
	class := cmd.String("class", "", "Class name the key sheet grades.")
	subject := cmd.String("subject", "", "Subject name (optional).")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *file == "" || *class == "" {
		cmd.Usage()
		return errHelp
	}

	f, err := os.Open(*file)
	if err != nil {
		return errors.Wrapf(err, "opening %s", *file)
	}
	defer f.Close()

	cli.warnIfExpired()
	ks, err := cli.client.UploadKeySheet(context.Background(), f, filepath.Base(*file), *class, *subject)
	if err != nil {
		return err
	}
	fmt.Printf("uploaded key sheet %s for class %s\n", ks.ID, ks.ClassName)
	return nil
}

func (cli *commandLine) runScriptUpload(args []string) error {
	cmd := flag.NewFlagSet("script-upload", flag.ExitOnError)
	file := cmd.String("file", "", "Path to the student script.")
	key := cmd.String("key", "", "Key sheet id to evaluate against.")
	studentID := cmd.String("student", "", "The student's id.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *file == "" || *key == "" || *studentID == "" {
		cmd.Usage()
		return errHelp
	}

	f, err := os.Open(*file)
	if err != nil {
		return errors.Wrapf(err, "opening %s", *file)
	}
	defer f.Close()

	cli.warnIfExpired()
	sc, err := cli.client.UploadScript(context.Background(), f, filepath.Base(*file), *key, *studentID)
	if err != nil {
		return err
	}
	fmt.Printf("uploaded script %s (student %s, status %s)\n", sc.ID, sc.StudentID, sc.Status)
	return nil
}

func (cli *commandLine) runEvaluate(args []string) error {
	cmd := flag.NewFlagSet("evaluate", flag.ExitOnError)
	key := cmd.String("key", "", "Key sheet id whose pending scripts to evaluate.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *key == "" {
		cmd.Usage()
		return errHelp
	}

	cli.warnIfExpired()
	results, err := cli.client.Evaluate(context.Background(), *key)
	if err != nil {
		return err
	}
	fmt.Printf("evaluated %d scripts\n", len(results))
	return nil
}

func (cli *commandLine) runResults(args []string) error {
	cmd := flag.NewFlagSet("results", flag.ExitOnError)
	key := cmd.String("key", "", "Key sheet id.")
	csvOut := cmd.String("csv", "", "Also write a CSV summary to this path.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *key == "" {
		cmd.Usage()
		return errHelp
	}

	cli.warnIfExpired()
	dash, err := cli.client.Dashboard(context.Background(), *key)
	if err != nil {
		return err
	}

	fmt.Printf("evaluated %d, pending %d, avg %.1f, high %.1f, low %.1f\n",
		dash.Stats.Evaluated, dash.Stats.Pending, dash.Stats.Average, dash.Stats.Highest, dash.Stats.Lowest)
	for _, r := range dash.Results {
		fmt.Printf("%-12s  %6.1f / %-6.1f  %s\n", r.StudentID, r.Score, r.MaxScore, r.Status)
	}

	if *csvOut != "" {
		data, err := export.EvaluationSummary(dash.Results)
		if err != nil {
			return err
		}
		if err := os.WriteFile(*csvOut, data, 0o644); err != nil {
			return errors.Wrapf(err, "writing %s", *csvOut)
		}
		fmt.Printf("wrote %s\n", *csvOut)
	}
	return nil
}

func (cli *commandLine) runTimetableUpload(args []string) error {
	cmd := flag.NewFlagSet("timetable-upload", flag.ExitOnError)
	file := cmd.String("file", "", "Path to the timetable file.")
	class := cmd.String("class", "", "Class name.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *file == "" || *class == "" {
		cmd.Usage()
		return errHelp
	}

	f, err := os.Open(*file)
	if err != nil {
		return errors.Wrapf(err, "opening %s", *file)
	}
	defer f.Close()

	cli.warnIfExpired()
	tt, err := cli.client.UploadTimetable(context.Background(), f, filepath.Base(*file), *class)
	if err != nil {
		return err
	}
	fmt.Printf("uploaded timetable %s for class %s\n", tt.ID, tt.ClassName)
	return nil
}
