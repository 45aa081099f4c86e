// Package scaffold creates new CLI projects from the shared cookiecutter
// template: it materializes the project directory, initializes a git
// repository with an initial commit, and creates a virtual environment.
// Every step shells out to the corresponding external tool and any failure
// aborts the whole run.
package scaffold

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"time"

	"golang.org/x/mod/semver"

	"github.com/c3nk/cli-standard-kit/terminal"
)

type (
	InitProjectCmd struct {
		out io.Writer

		ProjectName      string `arg:"" required:"" name:"ProjectName" help:"Name of the new CLI project."`
		Template         string `name:"template" help:"Cookiecutter template reference (default: gh:c3nk/cookiecutter-cli-standard-kit, or the config file value)."`
		Branch           string `name:"branch" help:"Name of the initial git branch."`
		VenvDir          string `name:"venv-dir" help:"Directory of the virtual environment inside the project."`
		Python           string `name:"python" help:"Python interpreter used to create the virtual environment."`
		SkipVersionCheck bool   `name:"skip-version-check" help:"Do not compare the installed cookiecutter version against PyPI."`
		TimeoutSeconds   int    `name:"timeout-seconds" default:"3" help:"Timeout the PyPI version lookup after this many seconds."`
	}
)

const (
	DefaultTemplate = "gh:c3nk/cookiecutter-cli-standard-kit"
	DefaultBranch   = "main"
	DefaultVenvDir  = ".venv"
	DefaultPython   = "python3"
)

var (
	ErrProjectNameRequired = errors.New("the <ProjectName> argument is required")

	versionRegex = regexp.MustCompile(`(\d+\.\d+\.\d+)`)
)

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

// ApplyConfig fills unset fields from cfg, falling back to the built-in
// defaults. Flags always win over the config file.
func (c *InitProjectCmd) ApplyConfig(cfg Config) {
	c.Template = firstNonEmpty(c.Template, cfg.Template, DefaultTemplate)
	c.Branch = firstNonEmpty(c.Branch, cfg.Branch, DefaultBranch)
	c.VenvDir = firstNonEmpty(c.VenvDir, cfg.VenvDir, DefaultVenvDir)
	c.Python = firstNonEmpty(c.Python, cfg.Python, DefaultPython)
}

func (c *InitProjectCmd) AfterApply() error {
	if c.out == nil {
		c.out = os.Stdout
	}

	path, err := ConfigPath()
	if err != nil {
		// No user config directory on this platform; built-ins apply.
		c.ApplyConfig(Config{})

		return nil
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		return err
	}

	c.ApplyConfig(cfg)

	return nil
}

func (c *InitProjectCmd) Run() error {
	return c.run(context.Background())
}

func (c *InitProjectCmd) run(ctx context.Context) (err error) {
	if c.out == nil {
		c.out = os.Stdout
	}

	fmt.Fprintf(c.out, "🚀 Creating new CLI project: %s\n", c.ProjectName)

	if !c.SkipVersionCheck {
		c.checkCookiecutterVersion(ctx)
	}

	err = c.exec(ctx, "cookiecutter", c.Template, "--no-input",
		fmt.Sprintf("project_name=%s", c.ProjectName),
		fmt.Sprintf("project_slug=%s", c.ProjectName),
	)
	if err != nil {
		return err
	}

	if err = os.Chdir(c.ProjectName); err != nil {
		return fmt.Errorf("failed to enter the new project directory %q: %w", c.ProjectName, err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current working directory: %w", err)
	}

	fmt.Fprintf(c.out, "📁 Entered: %s\n", cwd)

	gitSteps := [][]string{
		{"git", "init", "-q"},
		{"git", "add", "."},
		{"git", "commit", "-m", "init project"},
		{"git", "branch", "-M", c.Branch},
	}

	for _, argv := range gitSteps {
		if err = c.exec(ctx, argv[0], argv[1:]...); err != nil {
			return err
		}
	}

	fmt.Fprintf(c.out, "🐍 Creating virtual environment (%s)...\n", c.VenvDir)

	if err = c.exec(ctx, c.Python, "-m", "venv", c.VenvDir); err != nil {
		return err
	}

	fmt.Fprintln(c.out, "✅ Virtual environment created.")

	fmt.Fprintln(c.out, "\n📦 Project ready!")
	fmt.Fprintf(c.out, "➡ cd %s && source %s/bin/activate && python src/%s/cli.py --help\n", c.ProjectName, c.VenvDir, c.ProjectName)

	return nil
}

// exec echoes and runs one external command, streaming its output through.
func (c *InitProjectCmd) exec(ctx context.Context, name string, args ...string) error {
	fmt.Fprintln(c.out, terminal.Dim("▶ "+strings.Join(append([]string{name}, args...), " ")))

	return runCommand(ctx, c.out, c.out, name, args...)
}

// checkCookiecutterVersion warns when the installed cookiecutter lags behind
// the latest PyPI release. It never fails the run: the scaffolding step
// itself reports a missing or broken cookiecutter loudly enough.
func (c *InitProjectCmd) checkCookiecutterVersion(ctx context.Context) {
	var buf bytes.Buffer

	if err := runCommand(ctx, &buf, io.Discard, "cookiecutter", "--version"); err != nil {
		fmt.Fprintln(c.out, terminal.Warning("could not determine the installed cookiecutter version: "+err.Error()))

		return
	}

	m := versionRegex.FindStringSubmatch(buf.String())
	if m == nil {
		fmt.Fprintln(c.out, terminal.Warning(fmt.Sprintf("unrecognized cookiecutter version output: %q", strings.TrimSpace(buf.String()))))

		return
	}

	local := m[1]

	lookupCtx, cancelFunc := context.WithTimeout(ctx, time.Duration(c.TimeoutSeconds)*time.Second)

	defer cancelFunc()

	latest, err := PyPIPackageLatestVersion(lookupCtx, "cookiecutter")
	if err != nil {
		return
	}

	if semver.Compare("v"+local, "v"+latest) < 0 {
		fmt.Fprintln(c.out, terminal.Warning(fmt.Sprintf("cookiecutter %s is installed, but %s is available on PyPI", local, latest)))
	}
}
