package helpers

import (
	"bytes"
	"html/template"
)

// page is the skeleton the browser loads once; it then swaps fragments into the
// mount points on its own timer.
var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Auction Dashboard</title>
<script src="https://cdn.jsdelivr.net/npm/chart.js"></script>
</head>
<body data-refresh-ms="{{.RefreshMs}}">
{{- range .Mounts}}
<div id="{{.}}" data-fragment="/fragments/{{.}}"></div>
{{- end}}
<script>
const charts = {};
async function refresh(el) {
  const resp = await fetch(el.dataset.fragment, {cache: "no-store"});
  if (resp.status !== 200) { if (el.id === "error-banner") el.innerHTML = ""; return; }
  if ((resp.headers.get("Content-Type") || "").startsWith("application/json")) {
    const cfg = await resp.json();
    if (charts[el.id]) charts[el.id].destroy();
    if (!el.firstChild) el.appendChild(document.createElement("canvas"));
    charts[el.id] = new Chart(el.firstChild, cfg);
    return;
  }
  el.innerHTML = await resp.text();
  const list = el.querySelector('[data-scroll="end"]');
  if (list) list.scrollTop = list.scrollHeight;
}
document.addEventListener("change", (ev) => {
  if (ev.target.id !== "auction-selector") return;
  fetch("/selection", {method: "PUT", headers: {"Content-Type": "application/json"},
    body: JSON.stringify({key: ev.target.value})});
});
function tick() { document.querySelectorAll("[data-fragment]").forEach(refresh); }
tick();
setInterval(tick, Number(document.body.dataset.refreshMs));
</script>
</body>
</html>
`))

// RenderPage builds the page skeleton for the given mount points
func RenderPage(mounts []string, refreshMs int64) ([]byte, error) {
	var buf bytes.Buffer
	err := page.Execute(&buf, struct {
		Mounts    []string
		RefreshMs int64
	}{Mounts: mounts, RefreshMs: refreshMs})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
