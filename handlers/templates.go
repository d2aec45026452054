package handlers

import "html/template"

var (
	dashboardTmpl = template.Must(template.New("dashboard").Parse(dashboardHTML))
	errorTmpl     = template.Must(template.New("error").Parse(errorHTML))
	uploadTmpl    = template.Must(template.New("upload").Parse(uploadHTML))
)

const pageStyle = `
	body { font-family: sans-serif; margin: 0; background: #f5f6fa; color: #222; }
	header { background: #2c3e50; color: #fff; padding: 14px 24px; }
	header h1 { margin: 0; font-size: 20px; }
	.layout { display: flex; }
	.sidebar { width: 240px; padding: 16px; background: #fff; border-right: 1px solid #ddd; min-height: 100vh; }
	.sidebar h2 { font-size: 14px; text-transform: uppercase; color: #666; }
	.sidebar fieldset { border: none; padding: 0; margin: 0 0 18px 0; }
	.sidebar legend { font-weight: bold; margin-bottom: 6px; }
	.sidebar label { display: block; font-size: 14px; margin: 2px 0; }
	.content { flex: 1; padding: 20px 24px; }
	.kpis { display: flex; gap: 16px; flex-wrap: wrap; margin-bottom: 20px; }
	.kpi { background: #fff; border: 1px solid #ddd; border-radius: 6px; padding: 14px 20px; min-width: 140px; }
	.kpi .value { font-size: 26px; font-weight: bold; }
	.kpi .label { font-size: 12px; color: #666; text-transform: uppercase; }
	.panels { display: grid; grid-template-columns: repeat(auto-fill, minmax(480px, 1fr)); gap: 16px; }
	.panel { background: #fff; border: 1px solid #ddd; border-radius: 6px; padding: 10px; }
	.panel img { max-width: 100%; }
	.panel .warning { color: #a66; font-size: 14px; padding: 30px 10px; text-align: center; }
	table { border-collapse: collapse; width: 100%; margin-top: 20px; background: #fff; }
	th, td { border: 1px solid #ddd; padding: 6px 8px; font-size: 13px; text-align: left; }
	th { background: #eef; }
	.error { background: #fdd; border: 1px solid #f99; padding: 14px; border-radius: 6px; margin: 20px; }
	button { background: #2c3e50; color: #fff; border: none; padding: 8px 14px; border-radius: 4px; cursor: pointer; }
	a.export { font-size: 14px; }
`

const dashboardHTML = `<!DOCTYPE html>
<html>
<head>
<title>HR Analytics Dashboard</title>
<style>` + pageStyle + `</style>
</head>
<body>
<header><h1>HR Analytics Dashboard</h1></header>
<div class="layout">
	<div class="sidebar">
		<h2>Filter Data</h2>
		<form method="GET" action="/">
			{{range .Filters}}
			<fieldset>
				<legend>{{.Title}}</legend>
				{{$param := .Param}}
				{{range .Options}}
				<label><input type="checkbox" name="{{$param}}" value="{{.Value}}"{{if .Selected}} checked{{end}}> {{.Value}}</label>
				{{end}}
			</fieldset>
			{{end}}
			<button type="submit">Apply Filters</button>
		</form>
		<p><a href="/export{{if .Query}}?{{.Query}}{{end}}" class="export">Export to Excel</a></p>
		<p><a href="/upload" class="export">Upload dataset</a></p>
	</div>
	<div class="content">
		{{range .Warnings}}<p class="warning">{{.}}</p>{{end}}
		<div class="kpis">
			<div class="kpi"><div class="value">{{.Total}}</div><div class="label">Total Employees</div></div>
			<div class="kpi"><div class="value">{{printf "%.1f" .Averages.Age}}</div><div class="label">Average Age</div></div>
			<div class="kpi"><div class="value">{{printf "%.2f" .Averages.Performance}}</div><div class="label">Avg. Performance</div></div>
			<div class="kpi"><div class="value">{{printf "%.0f" .Averages.Salary}}</div><div class="label">Avg. Salary</div></div>
			<div class="kpi"><div class="value">{{printf "%.2f" .Averages.Engagement}}</div><div class="label">Avg. Engagement</div></div>
			<div class="kpi"><div class="value">{{.Active}} / {{.Terminated}}</div><div class="label">Active / Terminated</div></div>
		</div>
		<div class="panels">
			{{range .Panels}}
			<div class="panel">
				{{if .Warning}}
				<div class="warning">{{.Title}}: {{.Warning}}</div>
				{{else}}
				<img src="{{.Src}}" alt="{{.Title}}">
				{{end}}
			</div>
			{{end}}
		</div>
		<h2>Employees ({{.Total}})</h2>
		<table>
			<tr>
				<th>Name</th><th>Department</th><th>Position</th><th>Sex</th><th>Age</th>
				<th>Salary</th><th>Performance</th><th>Status</th><th>Term Reason</th>
				<th>Recruitment Source</th><th>Engagement</th>
			</tr>
			{{range .Employees}}
			<tr>
				<td>{{.Name}}</td><td>{{.Department}}</td><td>{{.Position}}</td><td>{{.Sex}}</td>
				<td>{{.Age}}</td><td>{{printf "%.0f" .Salary}}</td><td>{{.PerformanceScore}}</td>
				<td>{{.EmploymentStatus}}</td><td>{{.TermReason}}</td><td>{{.RecruitmentSource}}</td>
				<td>{{printf "%.2f" .EngagementSurvey}}</td>
			</tr>
			{{end}}
		</table>
	</div>
</div>
</body>
</html>
`

const errorHTML = `<!DOCTYPE html>
<html>
<head>
<title>HR Analytics Dashboard</title>
<style>` + pageStyle + `</style>
</head>
<body>
<header><h1>HR Analytics Dashboard</h1></header>
<div class="error">
	<strong>Unable to load dataset.</strong>
	<p>{{.Message}}</p>
	<p><a href="/upload">Upload a dataset file</a></p>
</div>
</body>
</html>
`

const uploadHTML = `<!DOCTYPE html>
<html>
<head>
<title>Upload Dataset</title>
<style>` + pageStyle + `</style>
</head>
<body>
<header><h1>Upload Dataset</h1></header>
<div class="content" style="padding:24px">
	{{if .Error}}<div class="error">{{.Error}}</div>{{end}}
	<form method="POST" action="/upload" enctype="multipart/form-data">
		<p><input type="file" name="file" accept=".csv,.xlsx,.xls"></p>
		{{if .NeedsToken}}<p><input type="password" name="token" placeholder="Admin token"></p>{{end}}
		<p><button type="submit">Upload</button></p>
	</form>
	<p>Accepted formats: .csv, .xlsx. The upload replaces the current dataset.</p>
	<p><a href="/">Back to dashboard</a></p>
</div>
</body>
</html>
`
