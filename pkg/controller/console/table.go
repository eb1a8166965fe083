package console

import (
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/secmon-lab/memsweep/pkg/domain/model"
)

const timeFormat = "2006-01-02 15:04:05"

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
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

// WriteGroups prints the groups numbered from 1, the number used to select one
func WriteGroups(w io.Writer, groups []*model.Group) {
	table := newTable(w, []string{"No", "Title", "ID", "Members", "Private"})
	for i, g := range groups {
		table.Append([]string{
			strconv.Itoa(i + 1),
			g.Title,
			g.ID.String(),
			strconv.Itoa(g.MemberCount),
			strconv.FormatBool(g.IsPrivate),
		})
	}
	table.Render()
}

// WriteSweeps prints recorded sweeps
func WriteSweeps(w io.Writer, sweeps []*model.SweepResult) {
	table := newTable(w, []string{"Started", "Group", "Status", "Removed", "Failures", "Duration", "ID"})
	for _, s := range sweeps {
		table.Append([]string{
			s.StartedAt.Local().Format(timeFormat),
			s.GroupTitle,
			s.Status.String(),
			strconv.Itoa(s.Removed),
			strconv.Itoa(len(s.Failures)),
			s.Duration().Round(time.Second).String(),
			s.ID.String(),
		})
	}
	table.Render()
}
