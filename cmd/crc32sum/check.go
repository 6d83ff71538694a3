package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/hupe1980/crcfold/verify"
)

// checkCommand verifies blobs against a manifest.
type checkCommand struct {
	name     string
	g        *globals
	out      io.Writer
	manifest *string
	quiet    *bool
}

func addCheckCommand(app *kingpin.Application, g *globals, out io.Writer) *checkCommand {
	cmd := &checkCommand{g: g, out: out}
	c := app.Command("check", "Verify blobs against a manifest; exits 1 on any mismatch or missing blob.")
	cmd.name = c.FullCommand()
	cmd.quiet = c.Flag("quiet", "Only print failures.").Short('q').Bool()
	cmd.manifest = c.Arg("manifest", "Manifest file, - for stdin.").Default("-").String()
	return cmd
}

func (cmd *checkCommand) readManifest() ([]verify.Entry, error) {
	if *cmd.manifest == "-" {
		return verify.ParseManifest(os.Stdin)
	}
	f, err := os.Open(*cmd.manifest)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return verify.ParseManifest(f)
}

func (cmd *checkCommand) run(ctx context.Context) error {
	entries, err := cmd.readManifest()
	if err != nil {
		return err
	}
	v, _, err := cmd.g.verifier(ctx)
	if err != nil {
		return err
	}

	report, err := v.Check(ctx, entries)
	if err != nil {
		return err
	}

	status := make(map[string]string, len(entries))
	for _, name := range report.Mismatched {
		status[name] = "FAILED"
	}
	for _, name := range report.Missing {
		status[name] = "MISSING"
	}

	bad := color.New(color.FgRed, color.Bold)
	for _, e := range entries {
		s, failed := status[e.Name]
		switch {
		case failed:
			bad.Fprintf(cmd.out, "%s: %s\n", e.Name, s)
		case !*cmd.quiet:
			fmt.Fprintf(cmd.out, "%s: OK\n", e.Name)
		}
	}

	if report.Failed() {
		fmt.Fprintf(cmd.out, "crc32sum: WARNING: %s of %s blobs failed (%d mismatched, %d missing)\n",
			humanize.Comma(int64(len(report.Mismatched)+len(report.Missing))),
			humanize.Comma(int64(len(entries))),
			len(report.Mismatched), len(report.Missing))
		return errCheckFailed
	}
	return nil
}
