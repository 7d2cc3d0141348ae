package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/consoleforeveryone/rental-api/internal/entity"
)

// Composer renders the two notification documents for one inquiry. It is
// pure rendering: validation is assumed to have run already.
type Composer struct {
	From         string
	AdminEmail   string
	ContactPhone string
}

func NewComposer(from, adminEmail, contactPhone string) *Composer {
	return &Composer{
		From:         from,
		AdminEmail:   adminEmail,
		ContactPhone: contactPhone,
	}
}

type templateData struct {
	Name          string
	Email         string
	Phone         string
	FullAddress   string
	Games         string
	CustomGames   string
	Controllers   int
	StartDate     string
	StartTime     string
	EndDate       string
	EndTime       string
	DurationLabel string
	Message       string
	SubmittedAt   string
	ContactPhone  string
}

func (c *Composer) buildData(inquiry *entity.Inquiry) (templateData, error) {
	start, err := inquiry.StartInstant()
	if err != nil {
		return templateData{}, fmt.Errorf("invalid start date/time on inquiry %s: %w", inquiry.ID, err)
	}
	end, err := inquiry.EndInstant()
	if err != nil {
		return templateData{}, fmt.Errorf("invalid end date/time on inquiry %s: %w", inquiry.ID, err)
	}

	days := entity.DurationDays(start, end)
	label := fmt.Sprintf("%d days", days)
	if days == 1 {
		label = "1 day"
	}

	return templateData{
		Name:          inquiry.Name,
		Email:         inquiry.Email,
		Phone:         "+91 " + inquiry.Phone,
		FullAddress:   inquiry.Address.FullAddress(),
		Games:         strings.Join(inquiry.SelectedGames, ", "),
		CustomGames:   inquiry.CustomGames,
		Controllers:   inquiry.NumberOfControllers,
		StartDate:     start.Format("02/01/2006"),
		StartTime:     inquiry.StartTime,
		EndDate:       end.Format("02/01/2006"),
		EndTime:       inquiry.EndTime,
		DurationLabel: label,
		Message:       inquiry.Message,
		SubmittedAt:   inquiry.CreatedAt.Format("02/01/2006, 3:04:05 pm"),
		ContactPhone:  c.ContactPhone,
	}, nil
}

// ComposeAdminNotification renders the action-required email for the
// notification inbox.
func (c *Composer) ComposeAdminNotification(inquiry *entity.Inquiry) (EmailJob, error) {
	data, err := c.buildData(inquiry)
	if err != nil {
		return EmailJob{}, err
	}

	var body bytes.Buffer
	if err := adminTemplate.Execute(&body, data); err != nil {
		return EmailJob{}, fmt.Errorf("failed to render admin notification: %w", err)
	}

	return EmailJob{
		To:       c.AdminEmail,
		Subject:  fmt.Sprintf("New PS5 Rental Inquiry from %s", inquiry.Name),
		HTMLBody: body.String(),
		From:     c.From,
	}, nil
}

// ComposeCustomerConfirmation renders the booking-summary email sent back
// to the customer.
func (c *Composer) ComposeCustomerConfirmation(inquiry *entity.Inquiry) (EmailJob, error) {
	data, err := c.buildData(inquiry)
	if err != nil {
		return EmailJob{}, err
	}

	var body bytes.Buffer
	if err := customerTemplate.Execute(&body, data); err != nil {
		return EmailJob{}, fmt.Errorf("failed to render customer confirmation: %w", err)
	}

	return EmailJob{
		To:       inquiry.Email,
		Subject:  "Your PS5 Rental Inquiry Confirmed - We'll Be In Touch Soon!",
		HTMLBody: body.String(),
		From:     c.From,
	}, nil
}

var adminTemplate = template.Must(template.New("admin").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>New PS5 Rental Inquiry</title>
</head>
<body style="margin:0;padding:20px;background-color:#f0f9ff;font-family:'Segoe UI',Tahoma,Geneva,Verdana,sans-serif">
  <div style="max-width:650px;margin:0 auto;background:white;border-radius:16px;overflow:hidden;border:1px solid #e0f2fe">
    <div style="background:linear-gradient(135deg, #3b82f6 0%, #1d4ed8 100%);color:white;padding:32px 24px;text-align:center">
      <h1 style="margin:0;font-size:28px;font-weight:600">New PS5 Rental Inquiry</h1>
      <p style="margin:8px 0 0 0;opacity:0.9;font-size:16px">Action required - Review and respond</p>
    </div>
    <div style="padding:32px 24px">
      <div style="background:#f0f9ff;border:2px solid #e0f2fe;border-radius:12px;padding:24px;margin-bottom:24px">
        <h3 style="margin:0 0 16px 0;color:#1e40af;font-size:20px;font-weight:600">Customer Details</h3>
        <p style="margin:6px 0"><strong>Name:</strong> {{.Name}}</p>
        <p style="margin:6px 0"><strong>Email:</strong> {{.Email}}</p>
        <p style="margin:6px 0"><strong>Phone:</strong> {{.Phone}}</p>
        <p style="margin:6px 0"><strong>Address:</strong> {{.FullAddress}}</p>
      </div>
      <div style="background:white;border:2px solid #dbeafe;border-radius:12px;padding:24px;margin-bottom:24px">
        <h3 style="margin:0 0 16px 0;color:#1e40af;font-size:20px;font-weight:600">Games &amp; Equipment</h3>
        <p style="margin:6px 0"><strong>Games:</strong> {{.Games}}</p>
        {{if .CustomGames}}<p style="margin:6px 0"><strong>Custom:</strong> {{.CustomGames}}</p>{{end}}
        <p style="margin:6px 0"><strong>Controllers:</strong> {{.Controllers}}</p>
      </div>
      <div style="background:#f0f9ff;border:2px solid #e0f2fe;border-radius:12px;padding:24px;margin-bottom:24px">
        <h3 style="margin:0 0 16px 0;color:#1e40af;font-size:20px;font-weight:600">Rental Schedule</h3>
        <p style="margin:6px 0"><strong>Start:</strong> {{.StartDate}} at {{.StartTime}}</p>
        <p style="margin:6px 0"><strong>End:</strong> {{.EndDate}} at {{.EndTime}}</p>
        <p style="margin:6px 0"><strong>Duration:</strong> {{.DurationLabel}}</p>
        {{if .Message}}
        <div style="margin-top:16px;padding-top:16px;border-top:1px solid #e0f2fe">
          <strong>Customer Message:</strong>
          <div style="background:white;padding:16px;border-radius:8px;border:1px solid #e0f2fe;font-style:italic">{{.Message}}</div>
        </div>
        {{end}}
      </div>
      <div style="background:linear-gradient(135deg, #3b82f6 0%, #1d4ed8 100%);color:white;padding:20px;border-radius:12px;text-align:center">
        <div style="font-size:18px;font-weight:600;margin-bottom:4px">Action Required</div>
        <div style="font-size:14px;opacity:0.9">Review details and send personalized quote to customer</div>
      </div>
    </div>
    <div style="background:#f8fafc;padding:20px 24px;text-align:center;border-top:1px solid #e0f2fe">
      <p style="margin:0;color:#64748b;font-size:14px">Inquiry submitted on {{.SubmittedAt}} | Console For Everyone</p>
    </div>
  </div>
</body>
</html>`))

var customerTemplate = template.Must(template.New("customer").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>PS5 Rental Inquiry Confirmed</title>
</head>
<body style="margin:0;padding:20px;background-color:#f0f9ff;font-family:'Segoe UI',Tahoma,Geneva,Verdana,sans-serif">
  <div style="max-width:600px;margin:0 auto;background:white;border-radius:16px;overflow:hidden;border:1px solid #e0f2fe">
    <div style="background:linear-gradient(135deg, #3b82f6 0%, #1d4ed8 100%);color:white;padding:40px 24px;text-align:center">
      <h1 style="margin:0;font-size:32px;font-weight:700">Thank You, {{.Name}}!</h1>
      <p style="margin:12px 0 0 0;font-size:18px;opacity:0.95">Your gaming adventure awaits</p>
    </div>
    <div style="padding:32px 24px">
      <div style="background:linear-gradient(135deg, #10b981 0%, #059669 100%);color:white;padding:20px;border-radius:12px;text-align:center;margin-bottom:32px">
        <div style="font-size:20px;font-weight:600">Inquiry Received Successfully!</div>
      </div>
      <div style="background:#f0f9ff;border:2px solid #e0f2fe;border-radius:12px;padding:24px;margin-bottom:24px">
        <h3 style="margin:0 0 20px 0;color:#1e40af;font-size:22px;font-weight:600;text-align:center">Your Booking Summary</h3>
        <p style="margin:8px 0"><strong>Games Selected:</strong> {{.Games}}</p>
        <p style="margin:8px 0"><strong>Controllers:</strong> {{.Controllers}}</p>
        <p style="margin:8px 0"><strong>Duration:</strong> {{.DurationLabel}}</p>
        <p style="margin:8px 0"><strong>Rental Period:</strong> {{.StartDate}} to {{.EndDate}}</p>
      </div>
      <div style="background:white;border:2px solid #dbeafe;border-radius:12px;padding:24px;margin-bottom:24px">
        <h3 style="margin:0 0 20px 0;color:#1e40af;font-size:20px;font-weight:600;text-align:center">What Happens Next?</h3>
        <p style="margin:8px 0">1. Our team reviews your request and checks availability</p>
        <p style="margin:8px 0">2. You receive a personalized quote via email</p>
        <p style="margin:8px 0">3. We schedule delivery and professional setup at your location</p>
      </div>
      <div style="background:linear-gradient(135deg, #3b82f6 0%, #1d4ed8 100%);color:white;padding:20px;border-radius:12px;text-align:center">
        <div style="font-size:16px;margin-bottom:4px;opacity:0.9">Have questions? We're here to help!</div>
        <div style="font-size:20px;font-weight:600">Contact: {{.ContactPhone}}</div>
      </div>
    </div>
    <div style="background:#f8fafc;padding:24px;text-align:center;border-top:1px solid #e0f2fe">
      <p style="margin:0 0 8px 0;color:#64748b;font-size:14px">Thank you for choosing <strong style="color:#1e40af">Console For Everyone</strong></p>
      <p style="margin:0;color:#94a3b8;font-size:12px">This email was sent on {{.SubmittedAt}}</p>
    </div>
  </div>
</body>
</html>`))
