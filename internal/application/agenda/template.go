package agenda

import (
	"fmt"
	"html/template"
)

// agendaPage is the template model for the printable run sheet
type agendaPage struct {
	Date string
	Rows []agendaPageRow
}

type agendaPageRow struct {
	DeliveryTime  string
	RecipientName string
	SenderName    string
	Address       string
	MessageTitle  string
	Amount        string
	Status        string
	Canceled      bool
}

func newAgendaPage(response *AgendaResponse) agendaPage {
	page := agendaPage{Date: response.Date, Rows: make([]agendaPageRow, 0, len(response.Rows))}
	for _, row := range response.Rows {
		page.Rows = append(page.Rows, agendaPageRow{
			DeliveryTime:  row.DeliveryTime,
			RecipientName: row.RecipientName,
			SenderName:    row.SenderName,
			Address:       row.Address,
			MessageTitle:  row.MessageTitle,
			Amount:        fmt.Sprintf("R$ %d,%02d", row.AmountCents/100, row.AmountCents%100),
			Status:        row.Status,
			Canceled:      row.Canceled,
		})
	}
	return page
}

var agendaTemplate = template.Must(template.New("agenda").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>Agenda {{.Date}}</title>
<style>
  body { font-family: Arial, Helvetica, sans-serif; font-size: 12px; color: #222; }
  h1 { font-size: 18px; margin-bottom: 2px; }
  .subtitle { color: #666; margin-bottom: 14px; }
  table { width: 100%; border-collapse: collapse; }
  th, td { border: 1px solid #bbb; padding: 6px 8px; text-align: left; vertical-align: top; }
  th { background: #f0f0f0; }
  tr.canceled td { color: #999; text-decoration: line-through; }
  .status { text-transform: uppercase; font-size: 10px; }
  .empty { margin-top: 24px; color: #666; }
</style>
</head>
<body>
<h1>Agenda de Entregas</h1>
<div class="subtitle">{{.Date}}</div>
{{if .Rows}}
<table>
  <thead>
    <tr>
      <th>Hora</th>
      <th>Destinatário</th>
      <th>Remetente</th>
      <th>Endereço</th>
      <th>Mensagem</th>
      <th>Valor</th>
      <th>Situação</th>
    </tr>
  </thead>
  <tbody>
  {{range .Rows}}
    <tr{{if .Canceled}} class="canceled"{{end}}>
      <td>{{.DeliveryTime}}</td>
      <td>{{.RecipientName}}</td>
      <td>{{.SenderName}}</td>
      <td>{{.Address}}</td>
      <td>{{.MessageTitle}}</td>
      <td>{{.Amount}}</td>
      <td class="status">{{.Status}}</td>
    </tr>
  {{end}}
  </tbody>
</table>
{{else}}
<div class="empty">Nenhuma entrega para esta data.</div>
{{end}}
</body>
</html>
`))
