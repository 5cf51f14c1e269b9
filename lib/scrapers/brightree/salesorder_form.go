package brightree

// salesOrderFormFields is the control tree of frmSODetail.aspx loaded
// for a brand-new order (SOKey=0). Same rules as the patient page:
// complete snapshot, byte-identical defaults, fresh map per call.
func salesOrderFormFields() map[string]string {
	return map[string]string{
		"ctl00$ctl00$pageSM":   "ctl00$ctl00$ctl00$ctl00$c$btnContextSavePanel|ctl00$ctl00$c$btnContextSave",
		"__EVENTTARGET":        "ctl00$ctl00$c$btnContextSave",
		"__EVENTARGUMENT":      "",
		"__LASTFOCUS":          "",
		"__VIEWSTATE":          "",
		"__VIEWSTATEGENERATOR": "",
		"__EVENTVALIDATION":    "",

		"ctl00_ctl00_c_EditContextMenu_ClientState":      "",
		"ctl00_ctl00_c_SaveContextMenu_ClientState":      "",
		"ctl00_ctl00_c_btnContextSave_ClientState":       button("", "Save", true, true).encode(),
		"ctl00_ctl00_c_btnSaveSplit_ClientState":         button("Save", "", false, true).encode(),
		"ctl00_ctl00_c_btnPrintPreview_ClientState":      button("Print Preview", "", true, false).encode(),
		"ctl00_ctl00_c_btnVoidSO_ClientState":            button("Void", "", true, false).encode(),
		"ctl00_ctl00_c_btnConfirmSO_ClientState":         button("Confirm", "", true, false).encode(),
		"ctl00_ctl00_c_tsTop_ClientState":                tabStrip("0").encode(),

		"ctl00$ctl00$c$c$hfPatientKey":     "",
		"ctl00$ctl00$c$c$hfSalesOrderKey":  "0",
		"ctl00$ctl00$c$c$ddlSOType":        "S",
		"ctl00$ctl00$c$c$ddlClassification": "0",
		"ctl00$ctl00$c$c$ddlBranch":        "102",
		"ctl00$ctl00$c$c$ddlPOS":           "4",
		"ctl00$ctl00$c$c$txtPONumber":      "",
		"ctl00$ctl00$c$c$memNote":          "",

		"ctl00$ctl00$c$c$rdpActualDate":                       "",
		"ctl00$ctl00$c$c$rdpActualDate$dateInput":             "",
		"ctl00_ctl00_c_c_rdpActualDate_dateInput_ClientState": dateInput("", "").encode(),
		"ctl00_ctl00_c_c_rdpActualDate_calendar_SD":           calendarSD,
		"ctl00_ctl00_c_c_rdpActualDate_calendar_AD":           calendarAD,
		"ctl00_ctl00_c_c_rdpActualDate_ClientState":           datePicker().encode(),

		"ctl00$ctl00$c$c$rdpScheduledDate":                       "",
		"ctl00$ctl00$c$c$rdpScheduledDate$dateInput":             "",
		"ctl00_ctl00_c_c_rdpScheduledDate_dateInput_ClientState": dateInput("", "").encode(),
		"ctl00_ctl00_c_c_rdpScheduledDate_calendar_SD":           calendarSD,
		"ctl00_ctl00_c_c_rdpScheduledDate_calendar_AD":           calendarAD,
		"ctl00_ctl00_c_c_rdpScheduledDate_ClientState":           datePicker().encode(),

		"ctl00$ctl00$c$c$rtpScheduledTime":                       "",
		"ctl00$ctl00$c$c$rtpScheduledTime$dateInput":             "",
		"ctl00_ctl00_c_c_rtpScheduledTime_dateInput_ClientState": timeInput("", "").encode(),
		"ctl00_ctl00_c_c_rtpScheduledTime_ClientState":           "",

		"ctl00$ctl00$c$c$luOrderingDoctor$cbLookup_Input":        "[None]",
		"ctl00$ctl00$c$c$luOrderingDoctor$cbLookup_value":        "0",
		"ctl00$ctl00$c$c$luOrderingDoctor$cbLookup_text":         "[None]",
		"ctl00$ctl00$c$c$luOrderingDoctor$cbLookup_clientWidth":  "150px",
		"ctl00$ctl00$c$c$luOrderingDoctor$cbLookup_clientHeight": "14px",
		"ctl00$ctl00$c$c$luFacility$cbLookup_Input":              "[None]",
		"ctl00$ctl00$c$c$luFacility$cbLookup_value":              "0",
		"ctl00$ctl00$c$c$luFacility$cbLookup_text":               "[None]",
		"ctl00$ctl00$c$c$luFacility$cbLookup_clientWidth":        "150px",
		"ctl00$ctl00$c$c$luFacility$cbLookup_clientHeight":       "14px",

		"ctl00$ctl00$c$c$ucDeliveryAddress$hfLobKey":                                      defaultLobKey,
		"ctl00_ctl00_c_c_ucDeliveryAddress_rdwManagePBA_C_btnValidateAddress_ClientState": button("Validate", "", true, true).encode(),
		"ctl00_ctl00_c_c_ucDeliveryAddress_rdwManagePBA_C_btnCancelPBA_ClientState":       button("Cancel", "", true, true).encode(),
		"ctl00$ctl00$c$c$ucDeliveryAddress$rdwManagePBA$C$acAddressLine1":                 "",
		"ctl00$ctl00$c$c$ucDeliveryAddress$rdwManagePBA$C$AddressLine2Field":              "",
		"ctl00$ctl00$c$c$ucDeliveryAddress$rdwManagePBA$C$AddressLine3Field":              "",
		"ctl00$ctl00$c$c$ucDeliveryAddress$rdwManagePBA$C$CityField":                      "",
		"ctl00$ctl00$c$c$ucDeliveryAddress$rdwManagePBA$C$pbStateField":                   "CA",
		"ctl00$ctl00$c$c$ucDeliveryAddress$rdwManagePBA$C$pbCountyField":                  "0",
		"ctl00$ctl00$c$c$ucDeliveryAddress$rdwManagePBA$C$pbCountryField":                 "1",
		"ctl00$ctl00$c$c$ucDeliveryAddress$rdwManagePBA$C$pbPostalCodeField":              PostalMask,
		"ctl00_ctl00_c_c_ucDeliveryAddress_rdwManagePBA_C_pbPostalCodeField_ClientState":  maskedInput(PostalMask).encode(),
		"ctl00_ctl00_c_c_ucDeliveryAddress_rdwManagePBA_ClientState":                      "",
		"ctl00_ctl00_c_c_ucDeliveryAddress_rttPBAClear_ClientState":                       "",

		"ctl00$ctl00$c$c$hmeDeliveryPhone":                  PhoneMask,
		"ctl00_ctl00_c_c_hmeDeliveryPhone_ClientState":      maskedInput(PhoneMask).encode(),

		"ctl00_ctl00_c_c_rgSOItems_ClientState":    "",
		"ctl00_ctl00_c_c_rwItemSearch_ClientState": "",
		"ctl00_ctl00_c_c_rwTherapySearch_ClientState": "",

		"radGridClickedRowIndex": "",
		"ptKey":                  "",
		"policyKey":              "",

		"ctl00_ctl00_c_wctl00_ctl00_c_c_luOrderingDoctor_cbLookup_ClientState": "",
		"ctl00_ctl00_c_wctl00_ctl00_c_c_luFacility_cbLookup_ClientState":       "",
		"ctl00_ctl00_c_rwmPE_ClientState":                                      "",
		"ctl00_ctl00_c_concurrencyWin_ClientState":                             "",
		"ctl00_ctl00_c_rwmMaster_ClientState":                                  "",
		"ctl00$ctl00$c$ucMainFooter$isReadOnly":                                "False",

		"__ASYNCPOST":      "true",
		"RadAJAXControlID": "ctl00_ctl00_pageRAM",
	}
}
