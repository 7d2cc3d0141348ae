package entity

// InquiryDraft is the client-held, not-yet-submitted copy of an inquiry.
// It mirrors the fields the wizard collects; everything is raw strings the
// way the form captures them, validated only on step transitions.
type InquiryDraft struct {
	Name                string   `json:"name"`
	Email               string   `json:"email"`
	Phone               string   `json:"phone"`
	SelectedGames       []string `json:"selectedGames"`
	CustomGames         string   `json:"customGames,omitempty"`
	NumberOfControllers int      `json:"numberOfControllers"`
	HouseNumber         string   `json:"houseNumber"`
	BuildingName        string   `json:"buildingName"`
	StreetName          string   `json:"streetName"`
	PinCode             string   `json:"pinCode"`
	City                string   `json:"city"`
	StartDate           string   `json:"startDate"`
	StartTime           string   `json:"startTime"`
	EndDate             string   `json:"endDate"`
	EndTime             string   `json:"endTime"`
	Message             string   `json:"message,omitempty"`
}

// NewInquiryDraft returns an empty draft with the form defaults.
func NewInquiryDraft() *InquiryDraft {
	return &InquiryDraft{
		SelectedGames:       []string{},
		NumberOfControllers: 2,
	}
}
