package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/gookit/color"
	"github.com/kelseyhightower/envconfig"
	"github.com/olekukonko/tablewriter"
)

type Display struct {
	// ECHOSPHERE_COLOURS enables colorized notices
	Colours bool `envconfig:"ECHOSPHERE_COLOURS" default:"true"`
	// ECHOSPHERE_JSON prints results as JSON instead of tables
	JSON bool `envconfig:"ECHOSPHERE_JSON" default:"false"`
}

func LoadDisplay() (Display, error) {
	var display Display
	err := envconfig.Process("", &display)
	return display, err
}

var (
	successStyle = color.New(color.FgGreen)
	failureStyle = color.New(color.FgRed, color.OpBold)
	mutedStyle   = color.New(color.FgGray)
)

func (d Display) paint(style color.Style, text string) string {
	if !d.Colours {
		return text
	}
	return style.Render(text)
}

func (c *CLI) success(format string, args ...any) {
	fmt.Fprintln(c.out, c.display.paint(successStyle, fmt.Sprintf(format, args...)))
}

func (c *CLI) muted(format string, args ...any) {
	fmt.Fprintln(c.out, c.display.paint(mutedStyle, fmt.Sprintf(format, args...)))
}

// Failure renders an error the way every command reports it.
func (d Display) Failure(err error) string {
	return d.paint(failureStyle, "Error: "+err.Error())
}

func (c *CLI) printJSON(v any) error {
	encoder := json.NewEncoder(c.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func newTable(out io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func formatTime(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04")
}
