package main

import (
	"errors"
	"flag"
	"fmt"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"golang.org/x/term"

	"github.com/vamsidulam/exameval/core"
	"github.com/vamsidulam/exameval/core/session"
	"github.com/vamsidulam/exameval/services/examapi"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	sess       *session.Context
	client     *examapi.Client
	validate   *validator.Validate
	translator ut.Translator
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  login            -username USERNAME - authenticate; the password is prompted next")
	fmt.Println("  templates        - list exam templates")
	fmt.Println("  template-create  -file FORM.json - create a template from a form file")
	fmt.Println("  papers           - list question papers")
	fmt.Println("  paper-generate   -template ID -name NAME -syllabus FILE [-instructions TEXT]")
	fmt.Println("  paper-export     -id ID [-out DIR] - export a paper as PDF (text on failure)")
	fmt.Println("  students         - list students")
	fmt.Println("  students-import  -file ROSTER.csv -class NAME - bulk import students")
	fmt.Println("  key-upload       -file KEY.pdf -class NAME [-subject NAME]")
	fmt.Println("  script-upload    -file SCRIPT.pdf -key KEYSHEET_ID -student STUDENT_ID")
	fmt.Println("  evaluate         -key KEYSHEET_ID - evaluate all pending scripts")
	fmt.Println("  results          -key KEYSHEET_ID [-csv FILE] - show results and stats")
	fmt.Println("  timetable-upload -file FILE -class NAME")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	switch args[1] {
	case "login":
		return cli.runLogin(args[2:])
	case "templates":
		return cli.runListTemplates()
	case "template-create":
		return cli.runTemplateCreate(args[2:])
	case "papers":
		return cli.runListPapers()
	case "paper-generate":
		return cli.runPaperGenerate(args[2:])
	case "paper-export":
		return cli.runPaperExport(args[2:])
	case "students":
		return cli.runListStudents()
	case "students-import":
		return cli.runStudentsImport(args[2:])
	case "key-upload":
		return cli.runKeyUpload(args[2:])
	case "script-upload":
		return cli.runScriptUpload(args[2:])
	case "evaluate":
		return cli.runEvaluate(args[2:])
	case "results":
		return cli.runResults(args[2:])
	case "timetable-upload":
		return cli.runTimetableUpload(args[2:])
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) runLogin(args []string) error {
	cmd := flag.NewFlagSet("login", flag.ExitOnError)
	username := cmd.String("username", "", "The teacher account username. The password will be prompted next.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *username == "" {
		cmd.Usage()
		return errHelp
	}
	fmt.Print("Enter password:")
	pwd, err := readPasswordFunc(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return err
	}
	if len(pwd) == 0 {
		cmd.Usage()
		return errHelp
	}
	return cli.login(*username, string(pwd))
}

// printError renders any failure without crashing the process: API errors
// verbatim, validation errors per field, everything else wrapped.
func printError(err error) {
	switch e := err.(type) {
	case *examapi.APIError:
		fmt.Printf("error: %s\n", e.Error())
	case *core.ValidationError:
		if len(e.Fields) == 0 {
			fmt.Printf("error: %s\n", e.Error())
		}
		for _, f := range e.Fields {
			fmt.Printf("error: %s: %s\n", f.Field, f.Error)
		}
	default:
		fmt.Printf("error: %s\n", err)
	}
}
