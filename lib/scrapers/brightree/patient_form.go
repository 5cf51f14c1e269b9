package brightree

// default line-of-business key rendered by the patient pages; replaced
// by the value extracted from the live page whenever one is present
const defaultLobKey = "Basic bGl2ZV9wdWJfYTM4NTU1NjAyOTcyMzhiOTg0NzQwNDZmNzZmNDVmODo"

// calendar state blobs the date pickers render; the trailing triple is
// part of the server's fixture, not a client-side clock
const calendarSD = "[]"
const calendarAD = "[[1753,1,2],[9999,12,31],[2025,2,4]]"

// patientFormFields is the complete control tree of
// frmPatientPersonal.aspx as the portal renders it. The server treats a
// postback as a full snapshot of the page, so every control has to be
// present even when the operation never touches it, and the values have
// to match the live markup byte for byte. Returns a fresh map per call.
func patientFormFields() map[string]string {
	return map[string]string{
		"ctl00$ctl00$pageSM":   "ctl00$ctl00$ctl00$ctl00$c$btnContextSavePanel|ctl00$ctl00$c$btnContextSave",
		"__EVENTTARGET":        "ctl00$ctl00$c$btnContextSave",
		"__EVENTARGUMENT":      "",
		"__LASTFOCUS":          "",
		"__VIEWSTATE":          "",
		"__VIEWSTATEGENERATOR": "",
		"__EVENTVALIDATION":    "",

		"ctl00_ctl00_c_EditContextMenu_ClientState":                  "",
		"ctl00_ctl00_c_SaveContextMenu_ClientState":                  "",
		"ctl00_ctl00_c_btnContextSave_ClientState":                   button("", "Save", true, true).encode(),
		"ctl00_ctl00_c_btnSaveSplit_ClientState":                     button("Save", "", false, true).encode(),
		"ctl00_ctl00_c_btnNewSalesOrder_ClientState":                 button("New Sales Order", "", true, false).encode(),
		"ctl00_ctl00_c_btnPickup_ClientState":                        button("New Pickup/Exchange", "", true, false).encode(),
		"ctl00_ctl00_c_btnLaunch_btnLaunch_Menu_ClientState":         "",
		"ctl00_ctl00_c_btnLaunch_btnLaunch_Button_ClientState":       button("Launch", "", true, true).encode(),
		"ctl00_ctl00_c_PtAppRegControl_btnDoInvite_ClientState":      button("DoInvite", "", true, true).encode(),
		"ctl00_ctl00_c_PtAppRegControl_btnDoPasswordReset_ClientState": button("DoPasswordReset", "", true, true).encode(),
		"ctl00_ctl00_c_PtAppRegControl_btnViewQRCode_ClientState":    button("DoInvite", "", true, true).encode(),

		"ctl00$ctl00$c$ssnControl$hfSSNRetrieved": "false",
		"ctl00$ctl00$c$ssnControl$hfSSN":          "",
		"ctl00$ctl00$c$hdnShowBanner":             "",
		"ctl00$ctl00$c$hdnDMEScriptShowBanner":    "",
		"ctl00_ctl00_c_tsTop_ClientState":         tabStrip("1").encode(),

		"ctl00$ctl00$c$c$txtLastName":      "",
		"ctl00$ctl00$c$c$txtFirstName":     "",
		"ctl00$ctl00$c$c$txtMiddleName":    "",
		"ctl00$ctl00$c$c$txtPreferredName": "",
		"ctl00$ctl00$c$c$txtSuffix":        "",

		"ctl00$ctl00$c$c$hmeDOB":                         "",
		"ctl00$ctl00$c$c$hmeDOB$dateInput":               "",
		"ctl00_ctl00_c_c_hmeDOB_dateInput_ClientState":   dateInput("", "").encode(),
		"ctl00_ctl00_c_c_hmeDOB_calendar_SD":             calendarSD,
		"ctl00_ctl00_c_c_hmeDOB_calendar_AD":             calendarAD,
		"ctl00_ctl00_c_c_hmeDOB_ClientState":             datePicker().encode(),
		"ctl00$ctl00$c$c$ssnControl$hmeSSN":              SSNMask,
		"ctl00_ctl00_c_c_ssnControl_hmeSSN_ClientState":  maskedInput(SSNMask).encode(),
		"ctl00$ctl00$c$c$ssnControl$currentSSNView$hfSSNRetrieved": "false",
		"ctl00$ctl00$c$c$ssnControl$currentSSNView$hfSSN":          "",
		"ctl00$ctl00$c$c$ssnControl$tbSSNEdit$tb":                  "",
		"ctl00$ctl00$c$c$ssnControl$tbSSNConfirm$tb":               "",

		"ctl00$ctl00$c$c$txtAccountNumber":  "",
		"ctl00$ctl00$c$c$ddlCustomerType":   "Patient",
		"ctl00$ctl00$c$c$txtPriorSystemKey": "",

		"ctl00$ctl00$c$c$MasterFacilityField$cbLookup_Input":        "[None]",
		"ctl00$ctl00$c$c$MasterFacilityField$cbLookup_value":        "0",
		"ctl00$ctl00$c$c$MasterFacilityField$cbLookup_text":         "[None]",
		"ctl00$ctl00$c$c$MasterFacilityField$cbLookup_clientWidth":  "150px",
		"ctl00$ctl00$c$c$MasterFacilityField$cbLookup_clientHeight": "14px",
		"ctl00_ctl00_c_c_btnCopyFacilityAddress_ClientState":        button("Copy Facility Address", "", true, false).encode(),

		"ctl00_ctl00_c_c_ucAlternateID_rdwManageAID_C_btnSaveAID_ClientState":   button("Save ", "", true, true).encode(),
		"ctl00_ctl00_c_c_ucAlternateID_rdwManageAID_C_btnDeleteAID_ClientState": button("Delete", "", true, true).encode(),
		"ctl00_ctl00_c_c_ucAlternateID_rdwManageAID_C_btnCancelAID_ClientState": button("Cancel", "", true, true).encode(),
		"ctl00_ctl00_c_c_ucAlternateID_rdwManageAID_ClientState":                "",
		"ctl00_ctl00_c_c_ucAlternateID_rttAIDClear_ClientState":                 "",
		"ctl00_ctl00_c_c_btnCopyToInsured_ClientState":                          button("Copy to Insured", "", true, true).encode(),

		"ctl00$ctl00$c$c$ucBillingAddressUpdate$hfLobKey":                                          defaultLobKey,
		"ctl00_ctl00_c_c_ucBillingAddressUpdate_rdwManagePBA_C_btnValidateAddress_ClientState":     button("Validate", "", true, true).encode(),
		"ctl00_ctl00_c_c_ucBillingAddressUpdate_rdwManagePBA_C_btnCancelPBA_ClientState":           button("Cancel", "", true, true).encode(),
		"ctl00$ctl00$c$c$ucBillingAddressUpdate$rdwManagePBA$C$acAddressLine1":                     "",
		"ctl00$ctl00$c$c$ucBillingAddressUpdate$rdwManagePBA$C$AddressLine2Field":                  "",
		"ctl00$ctl00$c$c$ucBillingAddressUpdate$rdwManagePBA$C$AddressLine3Field":                  "",
		"ctl00$ctl00$c$c$ucBillingAddressUpdate$rdwManagePBA$C$CityField":                          "",
		"ctl00$ctl00$c$c$ucBillingAddressUpdate$rdwManagePBA$C$pbStateField":                       "CA",
		"ctl00$ctl00$c$c$ucBillingAddressUpdate$rdwManagePBA$C$pbCountyField":                      "0",
		"ctl00$ctl00$c$c$ucBillingAddressUpdate$rdwManagePBA$C$pbCountryField":                     "1",
		"ctl00$ctl00$c$c$ucBillingAddressUpdate$rdwManagePBA$C$pbPostalCodeField":                  PostalMask,
		"ctl00_ctl00_c_c_ucBillingAddressUpdate_rdwManagePBA_C_pbPostalCodeField_ClientState":      maskedInput(PostalMask).encode(),
		"ctl00_ctl00_c_c_ucBillingAddressUpdate_rdwManagePBA_ClientState":                          "",
		"ctl00_ctl00_c_c_ucBillingAddressUpdate_rttPBAClear_ClientState":                           "",

		"ctl00$ctl00$c$c$hmePhone":                  PhoneMask,
		"ctl00_ctl00_c_c_hmePhone_ClientState":      maskedInput(PhoneMask).encode(),
		"ctl00$ctl00$c$c$hmeFax":                    PhoneMask,
		"ctl00_ctl00_c_c_hmeFax_ClientState":        maskedInput(PhoneMask).encode(),
		"ctl00$ctl00$c$c$hmeMobilePhone":            PhoneMask,
		"ctl00_ctl00_c_c_hmeMobilePhone_ClientState": maskedInput(PhoneMask).encode(),
		"ctl00$ctl00$c$c$txtEmailAddress":           "",

		"ctl00$ctl00$c$c$CustomFields$CustomFieldKey66":    "",
		"ctl00$ctl00$c$c$CustomFields$CustomFieldKey69":    "",
		"ctl00$ctl00$c$c$CustomFields$CustomFieldKey73":    "",
		"ctl00$ctl00$c$c$CustomFields$CustomFieldKey71":    "",
		"ctl00$ctl00$c$c$CustomFields$CustomFieldKey23":    "",
		"ctl00$ctl00$c$c$CustomFields$CustomFieldKey26":    "",
		"ctl00$ctl00$c$c$CustomFields$CustomFieldKey31":    "",
		"ctl00$ctl00$c$c$CustomFields$CustomFieldKey43":    "",
		"ctl00$ctl00$c$c$CustomFields$CustomFieldKey32":    "",
		"ctl00$ctl00$c$c$CustomFields$CustomFieldKey10":    "",
		"ctl00$ctl00$c$c$CustomFields$CustomFieldKey20":    "",
		"ctl00$ctl00$c$c$CustomFields$CustomFieldKey21":    "",
		"ctl00$ctl00$c$c$CustomFields$CustomFieldKey30":    "",
		"ctl00$ctl00$c$c$CustomFields$CustomFieldKey34":    "",
		"ctl00$ctl00$c$c$CustomFields$CustomFieldKey27":    "",
		"ctl00$ctl00$c$c$CustomFields$CustomFieldKey29":    "",
		"ctl00$ctl00$c$c$CustomFields$CustomFieldKey46":    "",
		"ctl00$ctl00$c$c$CustomFields$CustomFieldKey33":    "",
		"ctl00$ctl00$c$c$CustomFields$CustomFieldKey49":    "",
		"ctl00$ctl00$c$c$CustomFields$CustomFieldKey50":    "",
		"ctl00$ctl00$c$c$CustomFields$CustomFieldKey64":    "",
		"ctl00$ctl00$c$c$CustomFields$CustomFieldKey65":    "",
		"ctl00$ctl00$c$c$CustomFields$CustomFieldKey70":    "",
		"ctl00$ctl00$c$c$CustomFields$CustomFieldKey72":    "",
		"ctl00$ctl00$c$c$CustomFields$hdnCustomFieldList":  "",

		"ctl00$ctl00$c$c$txtDiscountPercent": "0%",
		"ctl00_ctl00_c_c_txtDiscountPercent_ClientState": numericInputState{
			Enabled:             false,
			ValidationText:      "0",
			ValueAsString:       "0",
			MinValue:            0,
			MaxValue:            100,
			LastSetTextBoxValue: "0%",
		}.encode(),

		"ctl00$ctl00$c$c$luTaxZone$cbLookup_Input":        "[None]",
		"ctl00$ctl00$c$c$luTaxZone$cbLookup_value":        "0",
		"ctl00$ctl00$c$c$luTaxZone$cbLookup_text":         "[None]",
		"ctl00$ctl00$c$c$luTaxZone$cbLookup_clientWidth":  "150px",
		"ctl00$ctl00$c$c$luTaxZone$cbLookup_clientHeight": "14px",

		"ctl00$ctl00$c$c$ddlBranch":       "102",
		"ctl00$ctl00$c$c$ddlAccountGroup": "0",
		"ctl00$ctl00$c$c$ddlPtGrp":        "1",
		"ctl00$ctl00$c$c$txtUser1":        "",
		"ctl00$ctl00$c$c$txtUser2":        "",
		"ctl00$ctl00$c$c$txtUser3":        "",
		"ctl00$ctl00$c$c$txtUser4":        "",
		"ctl00$ctl00$c$c$ddlPOS":          "4",

		"ctl00$ctl00$c$c$rdpDateOfAdmission":                         "",
		"ctl00$ctl00$c$c$rdpDateOfAdmission$dateInput":               "",
		"ctl00_ctl00_c_c_rdpDateOfAdmission_dateInput_ClientState":   dateInput("", "").encode(),
		"ctl00_ctl00_c_c_rdpDateOfAdmission_calendar_SD":             calendarSD,
		"ctl00_ctl00_c_c_rdpDateOfAdmission_calendar_AD":             calendarAD,
		"ctl00_ctl00_c_c_rdpDateOfAdmission_ClientState":             datePicker().encode(),
		"ctl00$ctl00$c$c$rdpDateOfDischarge":                         "",
		"ctl00$ctl00$c$c$rdpDateOfDischarge$dateInput":               "",
		"ctl00_ctl00_c_c_rdpDateOfDischarge_dateInput_ClientState":   dateInput("", "").encode(),
		"ctl00_ctl00_c_c_rdpDateOfDischarge_calendar_SD":             calendarSD,
		"ctl00_ctl00_c_c_rdpDateOfDischarge_calendar_AD":             calendarAD,
		"ctl00_ctl00_c_c_rdpDateOfDischarge_ClientState":             datePicker().encode(),

		"ctl00$ctl00$c$c$chkActiveAddress":                   "on",
		"ctl00_ctl00_c_c_btnAdditionDeliveryAddress_ClientState": button("Additional Address", "", true, false).encode(),

		"ctl00$ctl00$c$c$ucAdditionalDeliveryAddress$hfLobKey":                                      defaultLobKey,
		"ctl00_ctl00_c_c_ucAdditionalDeliveryAddress_rdwManagePBA_C_btnValidateAddress_ClientState": button("Validate", "", true, true).encode(),
		"ctl00_ctl00_c_c_ucAdditionalDeliveryAddress_rdwManagePBA_C_btnCancelPBA_ClientState":       button("Cancel", "", true, true).encode(),
		"ctl00$ctl00$c$c$ucAdditionalDeliveryAddress$rdwManagePBA$C$acAddressLine1":                 "",
		"ctl00$ctl00$c$c$ucAdditionalDeliveryAddress$rdwManagePBA$C$AddressLine2Field":              "",
		"ctl00$ctl00$c$c$ucAdditionalDeliveryAddress$rdwManagePBA$C$AddressLine3Field":              "",
		"ctl00$ctl00$c$c$ucAdditionalDeliveryAddress$rdwManagePBA$C$CityField":                      "",
		"ctl00$ctl00$c$c$ucAdditionalDeliveryAddress$rdwManagePBA$C$pbStateField":                   "CA",
		"ctl00$ctl00$c$c$ucAdditionalDeliveryAddress$rdwManagePBA$C$pbCountyField":                  "0",
		"ctl00$ctl00$c$c$ucAdditionalDeliveryAddress$rdwManagePBA$C$pbCountryField":                 "1",
		"ctl00$ctl00$c$c$ucAdditionalDeliveryAddress$rdwManagePBA$C$pbPostalCodeField":              PostalMask,
		"ctl00_ctl00_c_c_ucAdditionalDeliveryAddress_rdwManagePBA_C_pbPostalCodeField_ClientState":  maskedInput(PostalMask).encode(),
		"ctl00_ctl00_c_c_ucAdditionalDeliveryAddress_rdwManagePBA_ClientState":                      "",
		"ctl00_ctl00_c_c_ucAdditionalDeliveryAddress_rttPBAClear_ClientState":                       "",

		"ctl00$ctl00$c$c$PrimaryDeliveryAddress$i0$hfPtPrimaryDeliveryAddrKey":                                         "",
		"ctl00_ctl00_c_c_PrimaryDeliveryAddress_i0_btnSameAsBillingAddressPrimary_ClientState":                         button("Same as Billing Address", "", true, true).encode(),
		"ctl00$ctl00$c$c$PrimaryDeliveryAddress$i0$ucPrimaryAddressUpdate$hfLobKey":                                    defaultLobKey,
		"ctl00_ctl00_c_c_PrimaryDeliveryAddress_i0_ucPrimaryAddressUpdate_rdwManagePBA_C_btnValidateAddress_ClientState": button("Validate", "", true, true).encode(),
		"ctl00_ctl00_c_c_PrimaryDeliveryAddress_i0_ucPrimaryAddressUpdate_rdwManagePBA_C_btnCancelPBA_ClientState":     button("Cancel", "", true, true).encode(),
		"ctl00$ctl00$c$c$PrimaryDeliveryAddress$i0$ucPrimaryAddressUpdate$rdwManagePBA$C$acAddressLine1":               "",
		"ctl00$ctl00$c$c$PrimaryDeliveryAddress$i0$ucPrimaryAddressUpdate$rdwManagePBA$C$AddressLine2Field":            "",
		"ctl00$ctl00$c$c$PrimaryDeliveryAddress$i0$ucPrimaryAddressUpdate$rdwManagePBA$C$AddressLine3Field":            "",
		"ctl00$ctl00$c$c$PrimaryDeliveryAddress$i0$ucPrimaryAddressUpdate$rdwManagePBA$C$CityField":                    "",
		"ctl00$ctl00$c$c$PrimaryDeliveryAddress$i0$ucPrimaryAddressUpdate$rdwManagePBA$C$pbStateField":                 "CA",
		"ctl00$ctl00$c$c$PrimaryDeliveryAddress$i0$ucPrimaryAddressUpdate$rdwManagePBA$C$pbCountyField":                "0",
		"ctl00$ctl00$c$c$PrimaryDeliveryAddress$i0$ucPrimaryAddressUpdate$rdwManagePBA$C$pbCountryField":               "1",
		"ctl00$ctl00$c$c$PrimaryDeliveryAddress$i0$ucPrimaryAddressUpdate$rdwManagePBA$C$pbPostalCodeField":            PostalMask,
		"ctl00_ctl00_c_c_PrimaryDeliveryAddress_i0_ucPrimaryAddressUpdate_rdwManagePBA_C_pbPostalCodeField_ClientState": maskedInput(PostalMask).encode(),
		"ctl00_ctl00_c_c_PrimaryDeliveryAddress_i0_ucPrimaryAddressUpdate_rdwManagePBA_ClientState":                    "",
		"ctl00_ctl00_c_c_PrimaryDeliveryAddress_i0_ucPrimaryAddressUpdate_rttPBAClear_ClientState":                     "",
		"ctl00$ctl00$c$c$PrimaryDeliveryAddress$i0$TxtDescription":                                                     "",
		"ctl00_ctl00_c_c_PrimaryDeliveryAddress_i0_TxtDescription_ClientState":                                         textInput("").encode(),
		"ctl00$ctl00$c$c$PrimaryDeliveryAddress$i0$hmeDelPrimaryPhone":                                                 PhoneMask,
		"ctl00_ctl00_c_c_PrimaryDeliveryAddress_i0_hmeDelPrimaryPhone_ClientState":                                     maskedInput(PhoneMask).encode(),
		"ctl00$ctl00$c$c$PrimaryDeliveryAddress$i0$ddlZonePrimary":                                                     "0",
		"ctl00_ctl00_c_c_PrimaryDeliveryAddress_ClientState":                                                           panelBar("0").encode(),

		"ctl00_ctl00_c_c_rwUpdatePHEmail_ClientState":     "",
		"ctl00_ctl00_c_c_rwOptInStatusPopup_ClientState":  "",
		"ctl00_ctl00_c_c_rwAdditionalAddress_ClientState": "",
		"ctl00_ctl00_c_tsBot_ClientState":                 tabStrip("1").encode(),

		"radGridClickedRowIndex": "",
		"ptKey":                  "",
		"policyKey":              "",

		"ctl00_ctl00_c_wctl00_ctl00_c_c_MasterFacilityField_cbLookup_ClientState": "",
		"ctl00_ctl00_c_wctl00_ctl00_c_c_luTaxZone_cbLookup_ClientState":           "",
		"ctl00_ctl00_c_rwmPE_ClientState":                                         "",
		"ctl00_ctl00_c_concurrencyWin_ClientState":                                "",
		"ctl00_ctl00_c_rwmMaster_ClientState":                                     "",
		"ctl00_ctl00_c_rwmInvitePatient_ClientState":                              "",
		"ctl00_ctl00_c_GoScriptsRegisterWindow_ClientState":                       "",
		"ctl00_ctl00_c_DMEScriptsRegisterWindow_ClientState":                      "",
		"ctl00_ctl00_c_rwConnectWalkInPatient_ClientState":                        "",
		"ctl00_ctl00_c_rwAdhocMessage_ClientState":                                "",
		"ctl00_ctl00_c_rwTherapySearchForSO_ClientState":                          "",
		"ctl00$ctl00$c$ucMainFooter$isReadOnly":                                   "False",

		"__ASYNCPOST":      "true",
		"RadAJAXControlID": "ctl00_ctl00_pageRAM",
	}
}
