package attendance

import (
	"html/template"
	"io"

	"letnex-erp/backend/internal/model"
)

// PrintRow 打印视图中的一行
type PrintRow struct {
	Employee string
	Status   string
	Reason   string
}

// PrintView 单日考勤打印文档
type PrintView struct {
	Date        string
	DisplayDate string
	Rows        []PrintRow
	Summary     Summary
}

// BuildPrintView 生成 date 当日的打印视图
func BuildPrintView(sheet *Sheet, employees []string, date string) (*PrintView, error) {
	day, err := ParseDay(date)
	if err != nil {
		return nil, err
	}

	view := &PrintView{
		Date:        day.Format(model.DateLayout),
		DisplayDate: day.Format("January 2, 2006"),
		Rows:        make([]PrintRow, 0, len(employees)),
	}
	view.Summary = Summarize(sheet, view.Date)
	for _, emp := range employees {
		status, reason := statusLabel(sheet.Lookup(view.Date, emp))
		view.Rows = append(view.Rows, PrintRow{Employee: emp, Status: status, Reason: reason})
	}
	return view, nil
}

var printTemplate = template.Must(template.New("print").Funcs(template.FuncMap{
	"inc":      func(i int) int { return i + 1 },
	"statuses": func() []model.AttendanceStatus { return model.AttendanceStatuses },
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Attendance Report - {{.DisplayDate}}</title>
<style>
body { font-family: Arial, sans-serif; margin: 24px; }
table { width: 100%; border-collapse: collapse; margin-top: 16px; }
th, td { border: 1px solid #444; padding: 6px 10px; text-align: left; }
th { background: #f0f0f0; }
.summary span { margin-right: 16px; }
</style>
</head>
<body>
<h2>Attendance Report - {{.DisplayDate}}</h2>
<table>
<thead><tr><th>#</th><th>Employee</th><th>Status</th><th>Reason</th></tr></thead>
<tbody>
{{- range $i, $r := .Rows}}
<tr><td>{{inc $i}}</td><td>{{$r.Employee}}</td><td>{{$r.Status}}</td><td>{{$r.Reason}}</td></tr>
{{- end}}
</tbody>
</table>
<h3>Summary</h3>
<p class="summary">
{{- range statuses}}
<span>{{.}}: {{$.Summary.Count .}}</span>
{{- end}}
</p>
<script>window.onload = function () { window.print(); };</script>
</body>
</html>
`))

// Render 输出 HTML 文档，浏览器打开后自动调用打印对话框
func (v *PrintView) Render(w io.Writer) error {
	return printTemplate.Execute(w, v)
}

// statusLabel 缺省值显示为 "-"
func statusLabel(e Entry, ok bool) (string, string) {
	status, reason := "-", "-"
	if ok && e.Status != "" {
		status = string(e.Status)
	}
	if ok && e.Reason != "" {
		reason = e.Reason
	}
	return status, reason
}
