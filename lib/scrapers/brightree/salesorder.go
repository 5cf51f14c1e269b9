package brightree

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"go.opentelemetry.io/otel/codes"
)

type SalesOrderResult struct {
	// the portal's key for the freshly created order
	OrderKey string
	// absolute url of the order detail page the portal redirected to
	URL string
	// set instead of the other fields when the patient id could not be
	// resolved to an internal key
	Message string
}

func (o SalesOrder) overlay(state pageState) (map[string]string, error) {
	displayActual, err := formatDateMDY(o.ActualDate)
	if err != nil {
		return nil, err
	}
	displayScheduled, err := formatDateMDY(o.ScheduledDate)
	if err != nil {
		return nil, err
	}
	scheduledAt, err := combineDateTime(o.ScheduledDate, o.ScheduledTime)
	if err != nil {
		return nil, err
	}
	displayTime, err := formatTimeDisplay(o.ScheduledTime)
	if err != nil {
		return nil, err
	}

	return map[string]string{
		"ctl00$ctl00$c$c$ddlSOType":   o.OrderType,
		"ctl00$ctl00$c$c$txtPONumber": o.PONumber,
		"ctl00$ctl00$c$c$memNote":     o.Note,

		"ctl00$ctl00$c$c$rdpActualDate":                       o.ActualDate,
		"ctl00$ctl00$c$c$rdpActualDate$dateInput":             displayActual,
		"ctl00_ctl00_c_c_rdpActualDate_dateInput_ClientState": dateInput(o.ActualDate, displayActual).encode(),

		"ctl00$ctl00$c$c$rdpScheduledDate":                       o.ScheduledDate,
		"ctl00$ctl00$c$c$rdpScheduledDate$dateInput":             displayScheduled,
		"ctl00_ctl00_c_c_rdpScheduledDate_dateInput_ClientState": dateInput(o.ScheduledDate, displayScheduled).encode(),

		"ctl00$ctl00$c$c$rtpScheduledTime":                       displayTime,
		"ctl00$ctl00$c$c$rtpScheduledTime$dateInput":             displayTime,
		"ctl00_ctl00_c_c_rtpScheduledTime_dateInput_ClientState": timeInput(scheduledAt, displayTime).encode(),
	}, nil
}

// CreateSalesOrder opens a blank order detail page for the patient and
// replays its save postback with the order's fields folded in. The
// patient id must already exist on the vendor side; an unresolvable id
// comes back as a soft Message result without anything being posted.
func (c *Client) CreateSalesOrder(ctx context.Context, order SalesOrder) (SalesOrderResult, error) {
	ctx, span := tracer.Start(ctx, "CreateSalesOrder")
	defer span.End()

	order, err := order.normalized()
	if err != nil {
		span.SetStatus(codes.Error, "order validation failed")
		return SalesOrderResult{}, err
	}

	patientKey, ok, err := c.resolvePatientKey(ctx, order.PatientID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "patient key lookup failed")
		return SalesOrderResult{}, err
	}
	if !ok {
		slog.WarnContext(
			ctx, "patient lookup returned no match",
			"patient_id", order.PatientID,
		)
		return SalesOrderResult{
			Message: fmt.Sprintf("unable to retrieve patient with id %d", order.PatientID),
		}, nil
	}

	pageURL := fmt.Sprintf(
		"%s/F1/02873/Nation/OrderEntry/frmSODetail.aspx?SOKey=0&PatientKey=%s&SOType=%s",
		c.base(), patientKey, url.QueryEscape(order.OrderType),
	)
	page, err := c.fetchPage(ctx, pageURL)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch order page")
		return SalesOrderResult{}, err
	}
	doc, err := parseDocument(page)
	if err != nil {
		span.SetStatus(codes.Error, "failed to parse order page html")
		return SalesOrderResult{}, err
	}
	state := extractPageState(doc)

	payload := newFormPayload(salesOrderFormFields())
	payload.apply(state.overlay())
	payload.set("ctl00$ctl00$c$c$hfPatientKey", patientKey)
	fields, err := order.overlay(state)
	if err != nil {
		span.SetStatus(codes.Error, "failed to map order onto form")
		return SalesOrderResult{}, err
	}
	payload.apply(fields)

	delta, err := c.postback(ctx, pageURL, payload)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "save postback failed")
		return SalesOrderResult{}, err
	}
	redirect, err := c.resolvePostbackRedirect(delta)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "postback carried no redirect")
		return SalesOrderResult{}, err
	}

	orderKey := redirect.Query().Get("SalesOrderKey")
	if orderKey == "" {
		return SalesOrderResult{}, &APIError{Message: fmt.Sprintf(
			"save redirect carries no SalesOrderKey: %q", redirect.String(),
		)}
	}
	return SalesOrderResult{OrderKey: orderKey, URL: redirect.String()}, nil
}
