package models

// RegistryEntry is a known repeat-offender record returned by a registry
// snapshot. Entries are never persisted locally.
type RegistryEntry struct {
	FlagID               string   `json:"flag_id"`
	EmailAddress         string   `json:"email_address"`
	Impersonates         string   `json:"impersonates,omitempty"`
	TotalVictimsReported int      `json:"total_victims_reported"`
	TotalEmailsSent      int      `json:"total_emails_sent"`
	RiskScore            int      `json:"risk_score"`
	RiskLevel            string   `json:"risk_level"`
	RiskColor            string   `json:"risk_color,omitempty"`
	RiskBadge            string   `json:"risk_badge,omitempty"`
	ConfidenceScore      int      `json:"confidence_score"`
	ScamTypesUsed        []string `json:"scam_types_used"`
	ThreatSummary        string   `json:"threat_summary,omitempty"`
	LinkedPhoneNumbers   []string `json:"linked_phone_numbers,omitempty"`
	LinkedUPIIDs         []string `json:"linked_upi_ids,omitempty"`
	LinkedDomains        []string `json:"linked_domains,omitempty"`
	DomainType           string   `json:"domain_type,omitempty"`
}

// RegistrySnapshot is the normalized registry response.
type RegistrySnapshot struct {
	Entries []RegistryEntry `json:"demo_entries"`
}
