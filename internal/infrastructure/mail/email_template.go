package mail

import (
	"fmt"
	"strings"

	"github.com/winning-appliances/service-automation/internal/domain/entity"
)

const notAvailable = "N/A"

// EmailTemplateService renders the staff notification emails
type EmailTemplateService struct {
	companyName string
	teamName    string
}

func NewEmailTemplateService(companyName, teamName string) *EmailTemplateService {
	return &EmailTemplateService{
		companyName: companyName,
		teamName:    teamName,
	}
}

// NewRequestAlert tells staff a request was recorded and gives them the text
// to forward to the customer.
func (s *EmailTemplateService) NewRequestAlert(req *entity.ServiceRequest, invoiceURL string) (string, string) {
	if invoiceURL == "" {
		invoiceURL = notAvailable
	}

	subject := fmt.Sprintf("📋 Service Request Ready - %s - %s", req.CustomerName, req.SINumber)

	body := fmt.Sprintf(`Hi,

A new service request has been created for:
- Customer: %[1]s
- Invoice: %[2]s
- Product: %[3]s

📋 Customer Details:
- Email: %[4]s
- Phone: %[5]s
- Address: %[6]s
- Purchase Date: %[7]s

---

✉️ COPY & PASTE - Email to Customer

---COPY FROM HERE---

Subject: Service Request - %[3]s - Invoice %[2]s

Hi %[1]s,

Thank you for contacting us about your appliance service request.

We have your purchase details on file (Invoice %[2]s, purchased %[7]s).

To help us arrange the best service for you, please reply to this email with:

- Serial number (found on your appliance)
- Description of the problem you're experiencing
- Do you believe your product is under warranty? (Yes/No)
- Photos (optional - if you believe they will assist us)

Once we receive this information, we'll respond with your service options.

Best regards,
%[8]s

---COPY TO HERE---

View invoice: %[9]s
`,
		req.CustomerName, req.SINumber, req.SKU,
		req.CustomerEmail, req.CustomerPhone, req.CustomerAddress, req.ShipmentDate,
		s.signature(), invoiceURL)

	return subject, body
}

// CustomerReplyAlert lists the matched service options for a customer reply.
func (s *EmailTemplateService) CustomerReplyAlert(req *entity.ServiceRequest, resp *entity.CustomerResponse, options []entity.ServiceOption) (string, string) {
	subject := fmt.Sprintf("⚡ Customer Replied - %s - Service Options Ready", req.CustomerName)

	body := fmt.Sprintf(`Hi,

🎉 %[1]s replied with appliance details!

📋 Customer Details:
- Name: %[1]s
- Email: %[2]s
- Phone: %[3]s

🛒 Purchase Info:
- Invoice: %[4]s
- SKU: %[5]s
- Purchase Date: %[6]s

🔧 Appliance Details:
- Serial: %[7]s
- Warranty: %[8]s
- Problem: %[9]s

---

🛠️ SERVICE OPTIONS:

%[10]s
Copy and send to customer.
`,
		req.CustomerName, req.CustomerEmail, req.CustomerPhone,
		req.SINumber, req.SKU, req.ShipmentDate,
		resp.SerialNumber, resp.WarrantyStatus, resp.ProblemDescription,
		renderOptions(options))

	return subject, body
}

func (s *EmailTemplateService) signature() string {
	if s.teamName != "" {
		return s.teamName
	}
	return s.companyName + " Service Team"
}

func renderOptions(options []entity.ServiceOption) string {
	if len(options) == 0 {
		return "⚠️ No service options found in database for this product/warranty combination.\n"
	}

	var b strings.Builder
	for i, o := range options {
		hours := ""
		if o.BusinessHours != "" {
			hours = fmt.Sprintf(" (%s)", o.BusinessHours)
		}
		instructions := o.PhoneInstructions
		if instructions == "" {
			instructions = "Contact service agent for booking"
		}

		fmt.Fprintf(&b, "Option %d: %s\n\n", i+1, orNA(o.ServiceAgent))
		fmt.Fprintf(&b, "📞 Contact: %s%s\n", orNA(o.PhoneNumber), hours)
		fmt.Fprintf(&b, "💰 Cost: %s\n", orNA(o.ServiceCallFee))
		fmt.Fprintf(&b, "⏱️ Response Time: %s\n\n", orNA(o.ExpectedTimeframe))
		fmt.Fprintf(&b, "%s\n\n---\n\n", instructions)
	}
	return b.String()
}

func orNA(v string) string {
	if v == "" {
		return notAvailable
	}
	return v
}
