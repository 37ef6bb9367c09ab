package sheets

// LeadHeaderRow is the fixed header of every provisioned lead sheet. The
// column order mirrors the appended rows: name, phone, service, time,
// captured-at.
var LeadHeaderRow = []string{"Name", "Phone", "Service", "Time", "Captured At"}

type CreateSpreadsheetInput struct {
	Title  string
	Header []string
}

type createSpreadsheetRequest struct {
	Properties spreadsheetProperties `json:"properties"`
}

type spreadsheetProperties struct {
	Title string `json:"title"`
}

type createSpreadsheetResponse struct {
	SpreadsheetID string `json:"spreadsheetId"`
}

type valueRange struct {
	Values [][]string `json:"values"`
}
