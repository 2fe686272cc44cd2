package notification

import (
	"text/template"

	"quickparcel/internal/entities"
)

var statusMessages = map[entities.DeliveryStatusType]string{
	entities.DeliveryAvailable: "Your parcel is booked and waiting to be assigned to a delivery partner.",
	entities.DeliveryAccepted:  "Your parcel has been accepted by a delivery partner and will be picked up soon.",
	entities.DeliveryPicked:    "Your parcel has been picked up and is on its way.",
	entities.DeliveryOnTheWay:  "Your parcel is on the way to the delivery address.",
	entities.DeliveryDelivered: "Your parcel has been delivered successfully!",
	entities.DeliveryCompleted: "Your delivery has been completed and paid. Thank you!",
}

var bodyTemplate = template.Must(template.New("status").Parse(`Tracking Update - {{.DeliveryID}}: {{.Label}}

Dear {{.SenderName}},

{{.Message}}

Tracking ID: {{.DeliveryID}}
Status: {{.Label}}
{{- if .PartnerName}}
Delivery Partner: {{.PartnerName}}
{{- end}}

You can keep tracking your parcel with the tracking ID above.

Thank you for choosing QuickParcel!
`))

type bodyData struct {
	DeliveryID  string
	SenderName  string
	Label       string
	Message     string
	PartnerName string
}
