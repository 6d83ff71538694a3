package main

import (
	"context"
	"io"

	"github.com/alecthomas/kingpin/v2"

	"github.com/hupe1980/crcfold/verify"
)

// sumCommand prints a manifest for the named blobs.
type sumCommand struct {
	name   string
	g      *globals
	out    io.Writer
	prefix *string
	names  *[]string
}

func addSumCommand(app *kingpin.Application, g *globals, out io.Writer) *sumCommand {
	cmd := &sumCommand{g: g, out: out}
	c := app.Command("sum", "Print a checksum manifest.")
	cmd.name = c.FullCommand()
	cmd.prefix = c.Flag("prefix", "Checksum every blob whose name starts with this prefix.").String()
	cmd.names = c.Arg("names", "Blob names (file paths without --store).").Strings()
	return cmd
}

func (cmd *sumCommand) run(ctx context.Context) error {
	names := *cmd.names
	if *cmd.prefix != "" && len(names) > 0 {
		return usagef("--prefix and names are mutually exclusive")
	}

	v, store, err := cmd.g.verifier(ctx)
	if err != nil {
		return err
	}

	if len(names) == 0 {
		if names, err = store.List(ctx, *cmd.prefix); err != nil {
			return err
		}
	}

	entries, err := v.SumAll(ctx, names)
	if err != nil {
		return err
	}
	return verify.WriteManifest(cmd.out, entries)
}
