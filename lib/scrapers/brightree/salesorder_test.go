package brightree

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

const orderPagePath = "/F1/02873/Nation/OrderEntry/frmSODetail.aspx"

const orderEditPage = `<!DOCTYPE html>
<html><body><form>
<input type="hidden" id="__VIEWSTATE" name="__VIEWSTATE" value="so-vs" />
<input type="hidden" id="__VIEWSTATEGENERATOR" name="__VIEWSTATEGENERATOR" value="AB12CD34" />
<input type="hidden" id="__EVENTVALIDATION" name="__EVENTVALIDATION" value="so-ev" />
</form></body></html>`

func TestCreateSalesOrder(t *testing.T) {
	var form map[string][]string
	var pageQuery url.Values
	mux := http.NewServeMux()
	mux.HandleFunc(lookupPath, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"label": "DOE, JANE (42)", "value": "1001", "AccountNumber": "42"}]`)
	})
	mux.HandleFunc(orderPagePath, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			require.Equal(t, "Delta=true", r.Header.Get("X-MicrosoftAjax"))
			require.NoError(t, r.ParseForm())
			form = r.PostForm
			fmt.Fprint(w, "123|pageRedirect||%2fF1%2f02873%2fNation%2fOrderEntry%2ffrmSODetail.aspx%3fSalesOrderKey%3d999|")
			return
		}
		pageQuery = r.URL.Query()
		fmt.Fprint(w, orderEditPage)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := testClient(t, server)
	result, err := client.CreateSalesOrder(context.Background(), SalesOrder{
		PatientID:     42,
		ActualDate:    "2024-03-05",
		ScheduledDate: "2024-03-06",
		ScheduledTime: "14:30",
		PONumber:      "PO-77",
		Note:          "leave at door",
	})
	require.NoError(t, err)
	require.Empty(t, result.Message)
	require.Equal(t, "999", result.OrderKey)
	require.Contains(t, result.URL, "SalesOrderKey=999")

	// blank order page opened against the resolved patient
	require.Equal(t, "0", pageQuery.Get("SOKey"))
	require.Equal(t, "1001", pageQuery.Get("PatientKey"))
	require.Equal(t, "S", pageQuery.Get("SOType"))

	require.Equal(t, []string{"so-vs"}, form["__VIEWSTATE"])
	require.Equal(t, []string{"so-ev"}, form["__EVENTVALIDATION"])
	require.Equal(t, []string{"1001"}, form["ctl00$ctl00$c$c$hfPatientKey"])
	require.Equal(t, []string{"S"}, form["ctl00$ctl00$c$c$ddlSOType"])
	require.Equal(t, []string{"PO-77"}, form["ctl00$ctl00$c$c$txtPONumber"])
	require.Equal(t, []string{"leave at door"}, form["ctl00$ctl00$c$c$memNote"])
	require.Equal(t, []string{"2024-03-05"}, form["ctl00$ctl00$c$c$rdpActualDate"])
	require.Equal(t, []string{"3/5/2024"}, form["ctl00$ctl00$c$c$rdpActualDate$dateInput"])
	require.Equal(t, []string{"2:30 PM"}, form["ctl00$ctl00$c$c$rtpScheduledTime"])
}

func TestCreateSalesOrderUnknownPatient(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(lookupPath, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "[]")
	})
	mux.HandleFunc(orderPagePath, func(w http.ResponseWriter, r *http.Request) {
		t.Error("the order page should never be opened for an unknown patient")
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := testClient(t, server)
	result, err := client.CreateSalesOrder(context.Background(), SalesOrder{PatientID: 42})
	require.NoError(t, err)
	require.Equal(t, "unable to retrieve patient with id 42", result.Message)
	require.Empty(t, result.OrderKey)
}

func TestCreateSalesOrderMissingKeyInRedirect(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(lookupPath, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"label": "DOE, JANE (42)", "value": "1001", "AccountNumber": "42"}]`)
	})
	mux.HandleFunc(orderPagePath, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			fmt.Fprint(w, "123|pageRedirect||%2fF1%2fHome.aspx|")
			return
		}
		fmt.Fprint(w, orderEditPage)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := testClient(t, server)
	_, err := client.CreateSalesOrder(context.Background(), SalesOrder{PatientID: 42})
	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Contains(t, apiErr.Message, "SalesOrderKey")
}

func TestCreateSalesOrderRejectedSave(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(lookupPath, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"label": "DOE, JANE (42)", "value": "1001", "AccountNumber": "42"}]`)
	})
	mux.HandleFunc(orderPagePath, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			fmt.Fprint(w, "123|pageRedirect||%2fF1%2fError.aspx%3fmsg%3dSystem.NullReferenceException|")
			return
		}
		fmt.Fprint(w, orderEditPage)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := testClient(t, server)
	_, err := client.CreateSalesOrder(context.Background(), SalesOrder{PatientID: 42})
	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Contains(t, apiErr.Message, "save rejected by server")
}
