package domain

// LeadRecord is the contact record captured before payment. Created once per
// checkout session on first submission, destroyed when the session resets.
type LeadRecord struct {
	LeadID           string `json:"lead_id"`
	FullName         string `json:"full_name"`
	Email            string `json:"email"`
	PhoneCountryCode string `json:"phone_country_code"`
	PhoneNumber      string `json:"phone_number"`
}

// Attribution carries the acquisition context forwarded to the CRM.
type Attribution struct {
	UTMSource   string `json:"utm_source"`
	UTMMedium   string `json:"utm_medium"`
	UTMCampaign string `json:"utm_campaign"`
	UTMContent  string `json:"utm_content"`
	UTMTerm     string `json:"utm_term"`
	Referrer    string `json:"referrer"`
	LandingPage string `json:"landing_page"`
}

// BehaviorSnapshot is the behavioral signal captured alongside the lead.
type BehaviorSnapshot struct {
	TimeOnPageSec  int `json:"time_on_page_sec"`
	ScrollDepthPct int `json:"scroll_depth_pct"`
	SectionsViewed int `json:"sections_viewed"`
}
