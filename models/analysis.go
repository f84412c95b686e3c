// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RiskLevel is the coarse risk bucket derived from a 0-100 risk score.
type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
)

// Risk score thresholds. A score up to and including the threshold belongs to
// the named level; anything above RiskHighMax is critical.
const (
	RiskLowMax    = 20
	RiskMediumMax = 60
	RiskHighMax   = 85

	MinRiskScore = 0
	MaxRiskScore = 100
)

// RiskLevelFromScore maps score onto its [RiskLevel].
func RiskLevelFromScore(score int) RiskLevel {
	switch {
	case score <= RiskLowMax:
		return RiskLow
	case score <= RiskMediumMax:
		return RiskMedium
	case score <= RiskHighMax:
		return RiskHigh
	default:
		return RiskCritical
	}
}

// SenderVerdict is the trust classification of an email sender.
type SenderVerdict string

const (
	SenderTrusted    SenderVerdict = "TRUSTED"
	SenderSuspicious SenderVerdict = "SUSPICIOUS"
	SenderDangerous  SenderVerdict = "DANGEROUS"
	SenderUnknown    SenderVerdict = "UNKNOWN"
)

// EmailMetadata describes the sender of an analyzed email, when the model
// recognized the input as one.
type EmailMetadata struct {
	SenderDomain           string        `json:"sender_domain,omitempty"`
	SenderVerdict          SenderVerdict `json:"sender_verdict,omitempty"`
	SenderTrustScore       float64       `json:"sender_trust_score"`
	IsTrustedSender        bool          `json:"is_trusted_sender"`
	DomainSpoofingDetected bool          `json:"domain_spoofing_detected"`
	DisplayNameMismatch    bool          `json:"display_name_mismatch"`
}

// AnalysisRecord is the structured verdict ("Fraud DNA") produced for one
// analyzed input. It is immutable once returned by the gateway.
type AnalysisRecord struct {
	ID                  string         `json:"id"`
	Timestamp           string         `json:"timestamp"`
	AnalysisType        string         `json:"analysis_type"`
	ScamType            string         `json:"scam_type"`
	ScamFamily          string         `json:"scam_family"`
	RiskScore           int            `json:"risk_score"`
	RiskLevel           RiskLevel      `json:"risk_level"`
	ThreatIndicators    []string       `json:"threat_indicators"`
	PrimaryEmotion      string         `json:"primary_emotion"`
	UrgencyLevel        string         `json:"urgency_level"`
	ManipulationTactics []string       `json:"manipulation_tactics"`
	RecommendedAction   string         `json:"recommended_action"`
	PreventionTip       string         `json:"prevention_tip"`
	ReportAuthority     string         `json:"report_authority"`
	Verdict             string         `json:"verdict"`
	ImpersonationEntity string         `json:"impersonation_entity,omitempty"`
	EmailMetadata       *EmailMetadata `json:"email_metadata,omitempty"`

	// Optional presentation hints some model versions emit.
	FlagScore *int   `json:"flag_score,omitempty"`
	RiskColor string `json:"risk_color,omitempty"`
	RiskBadge string `json:"risk_badge,omitempty"`
}

// InlineImage is an image attached to an analysis request.
type InlineImage struct {
	MIMEType string `json:"mimeType"`
	Data     []byte `json:"data"`
}

// AnalysisRequest is the user input submitted for analysis.
type AnalysisRequest struct {
	Text  string       `json:"text"`
	Image *InlineImage `json:"image,omitempty"`
}
