package notification

import (
	"bytes"
	"fmt"
	"text/template"
)

type messageTemplate struct {
	subject *template.Template
	body    *template.Template
}

func mustTemplate(subject, body string) messageTemplate {
	return messageTemplate{
		subject: template.Must(template.New("subject").Option("missingkey=zero").Parse(subject)),
		body:    template.Must(template.New("body").Option("missingkey=zero").Parse(body)),
	}
}

var templates = map[Kind]messageTemplate{
	KindBidReceived: mustTemplate(
		"New bid on {{.listing_title}}",
		"A new bid of {{.bid_per_night}} per night was placed for {{.check_in}} to {{.check_out}} ({{.status}}).\nBid: {{.bid_id}}\n",
	),
	KindBidAccepted: mustTemplate(
		"Your bid on {{.listing_title}} was accepted",
		"Your bid {{.bid_id}} for {{.check_in}} to {{.check_out}} was accepted. Complete checkout to secure the stay; the total is {{.total_amount}}.\n",
	),
	KindBidRejected: mustTemplate(
		"Your bid on {{.listing_title}} was not accepted",
		"Your bid {{.bid_id}} for {{.check_in}} to {{.check_out}} was rejected.{{if .reason}} Reason: {{.reason}}{{end}}\n",
	),
	KindBookingConfirmed: mustTemplate(
		"Booking confirmed: {{.listing_title}}",
		"Payment of {{.amount}} {{.currency}} for bid {{.bid_id}} ({{.check_in}} to {{.check_out}}) was captured. The booking is confirmed.\n",
	),
	KindPayoutSent: mustTemplate(
		"Payout sent for bid {{.bid_id}}",
		"A payout of {{.payable_to_hotel}} was sent{{if .payout_method}} via {{.payout_method}}{{end}} for the stay {{.check_in}} to {{.check_out}}.\n",
	),
}

// Render builds the message for kind from vars
func Render(kind Kind, recipient string, vars map[string]string) (Message, error) {
	t, ok := templates[kind]
	if !ok {
		return Message{}, fmt.Errorf("notification: unknown template %q", kind)
	}

	var subject, body bytes.Buffer
	if err := t.subject.Execute(&subject, vars); err != nil {
		return Message{}, fmt.Errorf("notification: render %s subject: %w", kind, err)
	}
	if err := t.body.Execute(&body, vars); err != nil {
		return Message{}, fmt.Errorf("notification: render %s body: %w", kind, err)
	}
	return Message{To: recipient, Subject: subject.String(), Body: body.String()}, nil
}
