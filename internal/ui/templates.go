package ui

import (
	"html/template"

	catalogdomain "chirostore/internal/features/catalog/domain"
	ordersdomain "chirostore/internal/features/orders/domain"
)

// pageData is the root template context for one render of the storefront.
type pageData struct {
	ActiveTab Tab
	Catalog   *CatalogView
	Orders    *OrdersView
	Form      *OrderForm
}

var pageTemplate = template.Must(template.New("page").Funcs(template.FuncMap{
	"formatCurrency": FormatCurrency,
	"servicePrice":   servicePrice,
	"statusText": func(s ordersdomain.Status) string {
		return StatusText(int(s))
	},
	"statusStyle": func(s ordersdomain.Status) string {
		return StatusStyle(int(s))
	},
	"statusIcon": func(s ordersdomain.Status) string {
		return StatusIcon(int(s))
	},
	"operatorStyle": func(op ordersdomain.Operator) string {
		return OperatorStyle(string(op))
	},
	"operatorLabel": func(op ordersdomain.Operator) string {
		return Capitalize(string(op))
	},
	"operators": func() []ordersdomain.Operator {
		return []ordersdomain.Operator{
			ordersdomain.OperatorAny,
			ordersdomain.OperatorTelkomsel,
			ordersdomain.OperatorIndosat,
			ordersdomain.OperatorAxis,
		}
	},
}).Parse(pageHTML))

// servicePrice picks the price string for a service card: the backend
// breakdown when present, then the pre-computed display price, then the raw
// upstream price string.
func servicePrice(svc catalogdomain.Service) string {
	if svc.Pricing != nil {
		return FormatCurrency(svc.Pricing.SellingPrice)
	}
	if svc.DisplayPrice > 0 {
		return FormatCurrency(svc.DisplayPrice)
	}
	return svc.Price
}

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Virtual Number Store</title>
<style>
body { font-family: sans-serif; margin: 2rem auto; max-width: 960px; color: #1f2937; }
.tabs a { margin-right: 1rem; text-decoration: none; color: #6b7280; }
.tabs a.active { color: #111827; font-weight: bold; border-bottom: 2px solid #111827; }
.grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(260px, 1fr)); gap: 1rem; margin-top: 1rem; }
.card { border: 1px solid #e5e7eb; border-radius: 8px; padding: 1rem; }
.badge { display: inline-block; padding: 2px 8px; border-radius: 9999px; font-size: 0.75rem; }
.badge.green { background: #dcfce7; color: #166534; }
.badge.red { background: #fee2e2; color: #991b1b; }
.badge.yellow { background: #fef9c3; color: #854d0e; }
.badge.blue { background: #dbeafe; color: #1e40af; }
.badge.purple { background: #f3e8ff; color: #6b21a8; }
.badge.gray { background: #f3f4f6; color: #374151; }
.error { background: #fee2e2; color: #991b1b; padding: 0.75rem; border-radius: 8px; margin-top: 1rem; }
.sms { background: #f0fdf4; border: 1px solid #bbf7d0; border-radius: 6px; padding: 0.5rem; margin: 0.5rem 0; }
.muted { color: #6b7280; }
button { cursor: pointer; }
button:disabled { cursor: not-allowed; opacity: 0.5; }
</style>
</head>
<body>
<h1>Virtual Number Store</h1>
{{if .Form}}
  {{template "orderForm" .Form}}
{{else}}
  <nav class="tabs">
    <a href="/ui?tab=services" {{if eq .ActiveTab "services"}}class="active"{{end}}>Services</a>
    <a href="/ui?tab=orders" {{if eq .ActiveTab "orders"}}class="active"{{end}}>Active Orders</a>
  </nav>
  {{if eq .ActiveTab "orders"}}
    {{template "ordersList" .Orders}}
  {{else}}
    {{template "servicesGrid" .Catalog}}
  {{end}}
{{end}}
</body>
</html>

{{define "servicesGrid"}}
{{if .Loading}}
  <p class="muted">Loading services...</p>
{{else if .Err}}
  <div class="error">
    <p>{{.Err}}</p>
    <form method="post" action="/ui/catalog/retry"><button type="submit">Try Again</button></form>
  </div>
{{else if not .Services}}
  <p class="muted">No services available.</p>
{{else}}
<div class="grid">
  {{$view := .}}
  {{range .Services}}
  <div class="card">
    <h3>{{.Name}}</h3>
    <p>{{servicePrice .}}</p>
    {{if .Pricing}}
    <p class="muted">Base {{formatCurrency .Pricing.OriginalPrice}}</p>
    <p class="muted">Profit {{formatCurrency .Pricing.Profit}}</p>
    {{end}}
    <form method="post" action="/ui/catalog/operator">
      <input type="hidden" name="service" value="{{.ID}}">
      <select name="operator" onchange="this.form.submit()">
        {{$selected := $view.OperatorFor .ID}}
        {{range operators}}
        <option value="{{.}}" {{if eq . $selected}}selected{{end}}>{{operatorLabel .}}</option>
        {{end}}
      </select>
    </form>
    <form method="post" action="/ui/catalog/order">
      <input type="hidden" name="service" value="{{.ID}}">
      <button type="submit">Order</button>
    </form>
  </div>
  {{end}}
</div>
{{end}}
{{end}}

{{define "orderForm"}}
<div class="card">
  <h2>Confirm Order</h2>
  <p>{{.Service.Name}} <span class="badge {{operatorStyle .Operator}}">{{operatorLabel .Operator}}</span></p>
  {{if .Service.Pricing}}
  <p><s class="muted">{{formatCurrency .Service.Pricing.OriginalPrice}}</s> {{formatCurrency .Service.Pricing.SellingPrice}}</p>
  <p class="muted">Profit {{formatCurrency .Service.Pricing.Profit}}</p>
  {{else}}
  <p>{{servicePrice .Service}}</p>
  {{end}}
  {{if .Success}}
    <p class="badge green">Order placed! Returning to your orders...</p>
  {{else}}
    {{if .Err}}<div class="error">{{.Err}}</div>{{end}}
    <form method="post" action="/ui/order/confirm">
      <button type="submit" {{if .Submitting}}disabled{{end}}>{{if .Submitting}}Ordering...{{else}}Confirm{{end}}</button>
    </form>
    <form method="post" action="/ui/order/cancel">
      <button type="submit" {{if .Submitting}}disabled{{end}}>Cancel</button>
    </form>
  {{end}}
</div>
{{end}}

{{define "ordersList"}}
<form method="post" action="/ui/orders/refresh"><button type="submit">Refresh</button></form>
{{if .Err}}<div class="error">{{.Err}}</div>{{end}}
{{if .Loading}}
  <p class="muted">Loading orders...</p>
{{else if not .Orders}}
  <p class="muted">No active orders.</p>
{{else}}
<div class="grid">
  {{$view := .}}
  {{range .Orders}}
  <div class="card">
    <h3>Order #{{.ID}}</h3>
    <p>{{.Service}}</p>
    <span class="badge {{statusStyle .Status}}" data-icon="{{statusIcon .Status}}">{{statusText .Status}}</span>
    <span class="badge {{operatorStyle .Operator}}">{{operatorLabel .Operator}}</span>
    {{if .Phone}}<p>{{.Phone}}</p>{{end}}
    {{if .SMS}}<div class="sms"><span class="muted">Received:</span> {{.SMS}}</div>{{end}}
    {{if .CreatedAt}}<p class="muted">{{.CreatedAt}}</p>{{end}}
    {{$updating := eq $view.UpdatingID .ID}}
    <form method="post" action="/ui/orders/status">
      <input type="hidden" name="order_id" value="{{.ID}}">
      <button type="submit" name="status" value="1" {{if $updating}}disabled{{end}}>Ready</button>
      <button type="submit" name="status" value="2" {{if $updating}}disabled{{end}}>Cancel</button>
      <button type="submit" name="status" value="3" {{if $updating}}disabled{{end}}>Resend</button>
      <button type="submit" name="status" value="4" {{if $updating}}disabled{{end}}>Complete</button>
    </form>
  </div>
  {{end}}
</div>
{{end}}
{{end}}
`
