package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"regexp"

	"github.com/alecthomas/kong"
	"github.com/pkg/browser"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

//go:embed github_style.html
var pageTemplate []byte

type CLI struct {
	InputPath  string `arg:"" help:"Path to the input Markdown file, e.g. a scaffolded project README."`
	OutputPath string `arg:"" optional:"" help:"Path of the output HTML file. When omitted, open the result in the default browser."`
}

func (c *CLI) Run() error {
	source, err := os.ReadFile(c.InputPath)
	if err != nil {
		return fmt.Errorf("failed to read input Markdown file at %q: %w", c.InputPath, err)
	}

	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
		),
	)

	var buf bytes.Buffer

	if err = md.Convert(source, &buf); err != nil {
		return fmt.Errorf("failed to convert Markdown file to HTML: %w", err)
	}

	regex := regexp.MustCompile("BODY_PLACEHOLDER")
	contents := regex.ReplaceAll(pageTemplate, buf.Bytes())

	if c.OutputPath == "" {
		if err = browser.OpenReader(bytes.NewReader(contents)); err != nil {
			return fmt.Errorf("failed to open rendered HTML in default browser: %w", err)
		}

		return nil
	}

	return os.WriteFile(c.OutputPath, contents, 0644)
}

func main() {
	var cli CLI

	ctx := kong.Parse(
		&cli,
		kong.Name("kit-show-md"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
