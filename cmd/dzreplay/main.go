// Command dzreplay replays a dropzone gesture scenario headless and prints
// the collaborator callbacks it produced, one per line.
//
//	dzreplay testdata/scenario_drop.json
//	dzreplay --json --debug testdata/scenario_cancel.json
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/phanxgames/dropzone"
	"github.com/urfave/cli/v3"
)

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "dzreplay: %v\n", err)
		os.Exit(1)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:      "dzreplay",
		Usage:     "replay a drag-and-drop gesture scenario and print the callback trace",
		ArgsUsage: "SCENARIO.json",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "print the trace as JSON"},
			&cli.BoolFlag{Name: "debug", Usage: "print engine transitions to stderr"},
			&cli.BoolFlag{Name: "frames", Usage: "prefix each callback with its frame number"},
		},
		Action: run,
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	path := cmd.Args().First()
	if path == "" {
		return cli.Exit("missing scenario file", 2)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read scenario: %w", err)
	}
	sc, err := dropzone.LoadScenario(data)
	if err != nil {
		return err
	}

	var trace []dropzone.TraceEntry
	if cmd.Bool("debug") {
		trace, err = replayDebug(sc, os.Stderr)
	} else {
		trace, err = sc.Replay()
	}
	if err != nil {
		return err
	}
	return printTrace(cmd.Root().Writer, trace, cmd.Bool("json"), cmd.Bool("frames"))
}

// replayDebug is Replay with engine debug logging routed to w.
func replayDebug(sc *dropzone.Scenario, w io.Writer) ([]dropzone.TraceEntry, error) {
	return sc.ReplayWith(func(e *dropzone.Engine) {
		e.SetDebugOutput(w)
		e.SetDebugMode(true)
	})
}

func printTrace(w io.Writer, trace []dropzone.TraceEntry, asJSON, frames bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(trace)
	}
	for _, t := range trace {
		var err error
		if frames {
			_, err = fmt.Fprintf(w, "%5d  %s\n", t.Frame, t)
		} else {
			_, err = fmt.Fprintln(w, t)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
