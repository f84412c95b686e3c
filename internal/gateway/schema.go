package gateway

import "github.com/MKhiriev/go-fraud-guard/models"

func str() *models.Schema { return &models.Schema{Type: models.SchemaString} }
func integer() *models.Schema { return &models.Schema{Type: models.SchemaInteger} }
func number() *models.Schema { return &models.Schema{Type: models.SchemaNumber} }
func boolean() *models.Schema { return &models.Schema{Type: models.SchemaBoolean} }

func stringList() *models.Schema {
	return &models.Schema{Type: models.SchemaArray, Items: str()}
}

// AnalysisSchema describes the Fraud DNA record requested from the model.
func AnalysisSchema() *models.Schema {
	return &models.Schema{
		Type: models.SchemaObject,
		Properties: map[string]*models.Schema{
			"id":                   str(),
			"timestamp":            str(),
			"analysis_type":        str(),
			"scam_type":            str(),
			"scam_family":          str(),
			"risk_score":           integer(),
			"risk_level":           str(),
			"threat_indicators":    stringList(),
			"primary_emotion":      str(),
			"urgency_level":        str(),
			"manipulation_tactics": stringList(),
			"recommended_action":   str(),
			"prevention_tip":       str(),
			"report_authority":     str(),
			"verdict":              str(),
			"impersonation_entity": str(),
			"email_metadata": {
				Type: models.SchemaObject,
				Properties: map[string]*models.Schema{
					"sender_domain":            str(),
					"sender_verdict":           str(),
					"sender_trust_score":       number(),
					"is_trusted_sender":        boolean(),
					"domain_spoofing_detected": boolean(),
					"display_name_mismatch":    boolean(),
				},
			},
		},
		Required: []string{"risk_score", "scam_type", "verdict", "risk_level"},
	}
}

// analysisParseSchema is AnalysisSchema plus the presentation hints some
// model versions add on their own. It is only used to check responses.
func analysisParseSchema() *models.Schema {
	s := AnalysisSchema()
	s.Properties["flag_score"] = integer()
	s.Properties["risk_color"] = str()
	s.Properties["risk_badge"] = str()
	return s
}

// RegistryEntrySchema describes one registry entry.
func RegistryEntrySchema() *models.Schema {
	return &models.Schema{
		Type: models.SchemaObject,
		Properties: map[string]*models.Schema{
			"flag_id":                str(),
			"email_address":          str(),
			"impersonates":           str(),
			"total_victims_reported": integer(),
			"total_emails_sent":      integer(),
			"risk_score":             integer(),
			"risk_level":             str(),
			"risk_color":             str(),
			"risk_badge":             str(),
			"confidence_score":       integer(),
			"scam_types_used":        stringList(),
			"threat_summary":         str(),
		},
		Required: []string{"flag_id", "email_address", "risk_score", "risk_level"},
	}
}

// RegistrySchema describes the registry snapshot requested from the model.
func RegistrySchema() *models.Schema {
	return &models.Schema{
		Type: models.SchemaObject,
		Properties: map[string]*models.Schema{
			registryEntriesKey: {Type: models.SchemaArray, Items: RegistryEntrySchema()},
		},
	}
}
