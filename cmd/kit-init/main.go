package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/c3nk/cli-standard-kit/scaffold"
	"github.com/c3nk/cli-standard-kit/version"
)

var (
	logger = log.New(os.Stderr, "kit-init: ", 0)

	cmd scaffold.InitProjectCmd

	showVersion bool

	helpMsg = `Usage: %s [flags] <ProjectName>

Create a new CLI project: scaffold it from the standard cookiecutter
template, initialize a git repository with an initial commit, and create a
virtual environment.

Arguments:
  <ProjectName>    Name of the new CLI project.

Flags:
`
)

func registerFlagsAndHelp() {
	flag.StringVar(&cmd.Template, "template", "", "Cookiecutter template reference. Defaults to the config file value or "+scaffold.DefaultTemplate+".")
	flag.StringVar(&cmd.Branch, "branch", "", "Name of the initial git branch. Defaults to "+scaffold.DefaultBranch+".")
	flag.StringVar(&cmd.VenvDir, "venv-dir", "", "Directory of the virtual environment inside the project. Defaults to "+scaffold.DefaultVenvDir+".")
	flag.StringVar(&cmd.Python, "python", "", "Python interpreter used to create the virtual environment. Defaults to "+scaffold.DefaultPython+".")
	flag.BoolVar(&cmd.SkipVersionCheck, "skip-version-check", false, "Do not compare the installed cookiecutter version against PyPI.")
	flag.IntVar(&cmd.TimeoutSeconds, "timeout-seconds", 3, "Timeout the PyPI version lookup after this many seconds.")
	flag.BoolVar(&showVersion, "version", false, "Show version information and quit.")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(flag.CommandLine.Output(), helpMsg, os.Args[0])

		flag.PrintDefaults()
	}
}

func main() {
	exitCode := 0

	defer func() { os.Exit(exitCode) }()

	registerFlagsAndHelp()

	flag.Parse()

	if showVersion {
		_, _ = fmt.Fprintln(flag.CommandLine.Output(), version.FromBuildInfo())

		return
	}

	exitCode = run(flag.Args(), os.Stdout)
}

// run drives the initializer and returns the process exit code. With zero
// arguments it prints the usage line to stdout and performs no filesystem
// or network actions.
func run(args []string, stdout io.Writer) int {
	if len(args) == 0 {
		_, _ = fmt.Fprintln(stdout, "❌ Usage: cli-standard-kit init <project_name>")

		return 1
	}

	cmd.ProjectName = args[0]

	if err := cmd.AfterApply(); err != nil {
		logger.Print(err.Error())

		return 1
	}

	if err := cmd.Run(); err != nil {
		logger.Print(err.Error())

		return scaffold.ExitCode(err)
	}

	return 0
}
