package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkoosis/lintreport/internal/config"
	"github.com/dkoosis/lintreport/internal/detect"
	"github.com/dkoosis/lintreport/pkg/reporter"
	"github.com/dkoosis/lintreport/pkg/reportjson"
	"github.com/dkoosis/lintreport/pkg/sarif"
)

type wrapOptions struct {
	output     string
	reporter   string
	statements int
	previous   string
}

// rawMessage mirrors one element of the host linter's native JSON output.
// Text arrives unescaped here; the reporter encodes it.
type rawMessage struct {
	Category  string `json:"type"`
	Module    string `json:"module"`
	Obj       string `json:"obj"`
	Line      int    `json:"line"`
	Column    int    `json:"column"`
	Path      string `json:"path"`
	Symbol    string `json:"symbol"`
	Text      string `json:"message"`
	MessageID string `json:"message-id"`
}

func newWrapCmd() *cobra.Command {
	opts := &wrapOptions{}

	cmd := &cobra.Command{
		Use:   "wrap [messages.json]",
		Short: "Wrap raw linter output into a report document",
		Long: `wrap reads the diagnostics a linter emits, either as its native JSON
message array or as a SARIF document, and runs them through a collector
reporter, producing the report document the render commands consume.
The input dialect is detected automatically. Statement counts are not
part of either dialect, so pass --statements to make the score
computable.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWrap(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "", "write the document to this file instead of stdout")
	flags.StringVar(&opts.reporter, "reporter", config.DefaultReporter, "collector reporter to run the messages through")
	flags.IntVar(&opts.statements, "statements", 0, "number of statements the linter analysed")
	flags.StringVar(&opts.previous, "previous", "", "previous report document; its stats ride along for comparison")
	return cmd
}

func runWrap(cmd *cobra.Command, args []string, opts *wrapOptions) error {
	data, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	events, err := parseEvents(data)
	if err != nil {
		return err
	}

	var previous *reportjson.Stats
	if opts.previous != "" {
		prev, err := reportjson.ReadFile(opts.previous)
		if err != nil {
			return fmt.Errorf("read previous report: %w", err)
		}
		previous = &prev.Stats
	}

	out, closeOut, err := openOutput(cmd, opts.output)
	if err != nil {
		return err
	}

	rep, err := reporter.NewRegistry().New(opts.reporter, out)
	if err != nil {
		closeOut() //nolint:errcheck
		return err
	}
	msgs := make([]reportjson.Message, 0, len(events))
	for _, e := range events {
		rep.HandleMessage(e)
		msgs = append(msgs, reportjson.Message(e))
	}
	stats := reportjson.ComputeStats(msgs)
	stats.Statement = opts.statements
	if err := rep.OnClose(stats, previous); err != nil {
		closeOut() //nolint:errcheck
		return err
	}
	return closeOut()
}

// parseEvents decodes input into collector events, dispatching on the
// detected dialect. A report document is rejected: it is already wrapped.
func parseEvents(data []byte) ([]reporter.Event, error) {
	switch detect.Sniff(data) {
	case detect.SARIF:
		doc, err := sarif.Read(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		return sarif.Events(doc), nil
	case detect.ReportDocument:
		return nil, errors.New("input is already a report document; pass it to lintreport directly")
	default:
		return parseMessageArray(data)
	}
}

func parseMessageArray(data []byte) ([]reporter.Event, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	var raw []rawMessage
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse message array: %w", err)
	}
	if dec.More() {
		return nil, errors.New("parse message array: trailing data after JSON value")
	}
	events := make([]reporter.Event, 0, len(raw))
	for _, m := range raw {
		events = append(events, reporter.Event(m))
	}
	return events, nil
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("read messages file: %w", err)
		}
		return data, nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return data, nil
}
