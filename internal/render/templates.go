package render

import "html/template"

var fragments = template.Must(template.New("fragments").Parse(`
{{define "status"}}<div class="{{.StateClass}}">
  <span class="status-label">{{.Label}}</span>
  <span id="highest-bid">{{.HighestBid}}</span>
  <span id="winner-id">{{.Winner}}</span>
</div>{{end}}

{{define "history"}}<div class="bid-list"{{if .ScrollToEnd}} data-scroll="end"{{end}}>
{{- range .Entries}}
  <div class="bid-entry"><strong>{{.Sender}}</strong> {{.Amount}}<br><small>{{.Time}}</small></div>
{{- end}}
</div>{{end}}

{{define "cards"}}{{range .Cards}}<div class="auction-card" data-auction-id="{{.AuctionID}}">
  <h3>{{.Title}}</h3>
  <p class="item-name">{{.ItemName}}</p>
  {{- if .ItemDescription}}
  <p class="item-description">{{.ItemDescription}}</p>
  {{- end}}
  <p class="highest-bid">{{.HighestBid}}</p>
  <p class="winner-id">{{.Winner}}</p>
  <p><span class="{{.StatusClass}}">{{.StatusBadge}}</span></p>
  <ul>
  {{- range .Bids}}
    <li>{{.Amount}}, {{.Sender}}</li>
  {{- end}}
  </ul>
</div>
{{end}}{{end}}

{{define "options"}}<select id="auction-selector" name="key">
{{- range .}}
  <option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>
{{- end}}
</select>{{end}}

{{define "extrema"}}<dl class="stats-extrema">
  <dt>{{.MaxLabel}}</dt><dd class="max">{{.Max}}</dd>
  <dt>{{.MinLabel}}</dt><dd class="min">{{.Min}}</dd>
</dl>{{end}}

{{define "banners"}}{{if .}}<div class="error-banner" role="alert">
{{- range .}}
  <p data-banner-id="{{.ID}}" data-expires-at="{{.ExpiresAt}}">{{.Message}}</p>
{{- end}}
</div>{{end}}{{end}}
`))
