package usecase

// SubmitInquiryInput is the raw request body of POST /inquiries. Field names
// follow the wire contract; nothing here is trusted until validated.
type SubmitInquiryInput struct {
	Name                string   `json:"name"`
	Email               string   `json:"email"`
	Phone               string   `json:"phone"`
	SelectedGames       []string `json:"selectedGames"`
	CustomGames         string   `json:"customGames,omitempty"`
	NumberOfControllers int      `json:"numberOfControllers,omitempty"`
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

// NotificationStatus reports the outcome of one email delivery attempt.
// Email failure never fails the request; it is surfaced here instead.
type NotificationStatus struct {
	Sent    bool   `json:"sent"`
	Service string `json:"service,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type InquiryResult struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type Notifications struct {
	Admin    NotificationStatus `json:"admin"`
	Customer NotificationStatus `json:"customer"`
}

type SubmitInquiryOutput struct {
	Message       string        `json:"message"`
	Inquiry       InquiryResult `json:"inquiry"`
	Notifications Notifications `json:"notifications"`
}
