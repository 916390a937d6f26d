package web

import (
	"fmt"
	"html/template"
	"io"
	"log"
	"time"

	"github.com/sweeney/wifi-led/internal/status"
)

var indexTmpl = template.Must(template.New("index").Funcs(template.FuncMap{
	"uptime": func(d time.Duration) string {
		d = d.Truncate(time.Second)
		days := int(d.Hours()) / 24
		h := int(d.Hours()) % 24
		m := int(d.Minutes()) % 60
		s := int(d.Seconds()) % 60
		if days > 0 {
			return fmt.Sprintf("%dd %dh %dm %ds", days, h, m, s)
		}
		if h > 0 {
			return fmt.Sprintf("%dh %dm %ds", h, m, s)
		}
		if m > 0 {
			return fmt.Sprintf("%dm %ds", m, s)
		}
		return fmt.Sprintf("%ds", s)
	},
	"ledString": func(on bool) string {
		if on {
			return "HIGH"
		}
		return "LOW"
	},
}).Parse(indexHTML))

const indexHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>WiFi LED</title>
<style>
body { font-family: monospace; max-width: 600px; margin: 2em auto; padding: 0 1em; }
h1 { font-size: 1.4em; }
table { border-collapse: collapse; width: 100%; margin: 1em 0; }
td, th { text-align: left; padding: 4px 8px; border-bottom: 1px solid #ddd; }
th { width: 40%; }
.connected { color: green; font-weight: bold; }
.searching { color: orange; font-weight: bold; }
.high { color: green; }
.low { color: #888; }
.err { color: red; }
</style>
</head>
<body>
<h1>WiFi LED</h1>

<h2>State</h2>
<table>
<tr><th>Association</th><td class="{{if eq .Phase "CONNECTED"}}connected{{else}}searching{{end}}">{{.Phase}}</td></tr>
<tr><th>LED</th><td class="{{if .LED}}high{{else}}low{{end}}">{{ledString .LED}}</td></tr>
<tr><th>In phase since</th><td>{{.PhaseSince.UTC.Format "2006-01-02T15:04:05Z"}}</td></tr>
{{if .LastPollErr}}<tr><th>Last poll error</th><td class="err">{{.LastPollErr}}</td></tr>{{end}}
</table>

<h2>Transitions</h2>
<table>
<tr><th>Connects</th><td>{{.Counts.Connects}}</td></tr>
<tr><th>Disconnects</th><td>{{.Counts.Disconnects}}</td></tr>
</table>

<h2>System</h2>
<table>
<tr><th>Uptime</th><td>{{uptime .Uptime}}</td></tr>
<tr><th>Started</th><td>{{.StartTime.UTC.Format "2006-01-02T15:04:05Z"}}</td></tr>
<tr><th>Interface</th><td>{{.Config.Interface}}</td></tr>
<tr><th>SSID</th><td>{{.Config.SSID}}</td></tr>
<tr><th>LED pin</th><td>{{.Config.LEDPin}}</td></tr>
<tr><th>Flash</th><td>{{.Config.FlashMs}}ms</td></tr>
<tr><th>Hold</th><td>{{.Config.HoldMs}}ms</td></tr>
<tr><th>Serial</th><td>{{if .Config.SerialDev}}{{.Config.SerialDev}} @ {{.Config.BaudRate}}{{else}}disabled{{end}}</td></tr>
<tr><th>HTTP</th><td>{{.Config.HTTPAddr}}</td></tr>
</table>

<p><a href="/index.json">JSON</a></p>
</body>
</html>
`

func renderHTML(w io.Writer, snap status.Snapshot) {
	if err := indexTmpl.Execute(w, snap); err != nil {
		log.Printf("render status page: %v", err)
	}
}
