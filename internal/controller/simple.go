package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "verify.dev/pkg/verify/internal/model"
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
	// SimpleUI doesn't block - it just prints and continues
}

// WriteLine prints a single line; the write has completed when it returns.
func (s *SimpleUI) WriteLine(_ context.Context, line string) error {
	_, err := fmt.Fprintln(s.cmd.OutOrStdout(), line)
	return err
}

// DisplayTests prints the discovered tests as a table.
func (s *SimpleUI) DisplayTests(ctx context.Context, tests []m.TestDescriptor) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(tests) == 0 {
		return s.WriteLine(ctx, noTestsMessage)
	}

	_, err := fmt.Fprintf(s.cmd.OutOrStdout(), "\n%s", renderTestTable(tests))

	return err
}

// DisplayReports prints a table of stored runs followed by the transcript of
// the most recent one.
func (s *SimpleUI) DisplayReports(ctx context.Context, reports []m.RunReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(reports) == 0 {
		return s.WriteLine(ctx, noReportsMessage)
	}

	latest := reports[len(reports)-1]

	_, err := fmt.Fprintf(s.cmd.OutOrStdout(), "\n%s\nLatest run %s:\n%s",
		renderReportTable(reports), latest.ID, strings.Join(latest.Transcript, "\n")+"\n")

	return err
}

func renderTestTable(tests []m.TestDescriptor) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"#", "Test"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT})

	for i, test := range tests {
		table.Append([]string{fmt.Sprintf("%d", i+1), test.Name})
	}

	table.SetFooter([]string{"Total", fmt.Sprintf("%d", len(tests))})

	table.Render()

	return tableBuffer.String()
}

func renderReportTable(reports []m.RunReport) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Run", "Started", "Duration", "Succeeded", "Failed"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, report := range reports {
		table.Append([]string{
			report.ID,
			report.StartedAt.Format(time.RFC3339),
			report.FinishedAt.Sub(report.StartedAt).Round(time.Millisecond).String(),
			fmt.Sprintf("%d", report.Summary.Succeeded),
			fmt.Sprintf("%d", report.Summary.Failed),
		})
	}

	table.Render()

	return tableBuffer.String()
}
