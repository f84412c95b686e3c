package gateway

import (
	"fmt"
	"strings"
)

// Identity is one name on the known repeat offender roster.
type Identity struct {
	Name  string
	Email string
}

// Roster is the fixed list of synthetic repeat offenders the registry
// snapshot draws from.
var Roster = []Identity{
	{Name: "Julian Vance", Email: "j.vance88@example-mail.com"},
	{Name: "Elena Rios", Email: "elena.rios.test@mocklink.net"},
	{Name: "Marcus Chen", Email: "mchen_92@fakespace.org"},
	{Name: "Sarah Jenkins", Email: "s.jenkins.dev@demo-inbox.com"},
	{Name: "Arlo Sterling", Email: "asterling_44@sample-net.io"},
	{Name: "Fiona Gallagher", Email: "fiona.g.test@example-mail.com"},
	{Name: "Silas Thorne", Email: "sthorne_alpha@mocklink.net"},
	{Name: "Nadia Petrov", Email: "nadia.p89@fakespace.org"},
	{Name: "Victor Hugo", Email: "v.hugo.demo@demo-inbox.com"},
	{Name: "Maya Patel", Email: "mpatel_dev@sample-net.io"},
	{Name: "Leo Maxwell", Email: "l.maxwell21@example-mail.com"},
	{Name: "Clara Oswald", Email: "c.oswald.test@mocklink.net"},
	{Name: "Dante Alighieri", Email: "dante_alpha@fakespace.org"},
	{Name: "Ivy Winters", Email: "i.winters.demo@demo-inbox.com"},
	{Name: "Oscar Wilde", Email: "owilde_dev@sample-net.io"},
}

// RegistrySize is the number of entries asked for per snapshot.
const RegistrySize = 10

const rubric = `You are the FraudGenome Behavioral Engine v3.0. Your primary objective is to differentiate between Legitimate/Trusted communications and Fraudulent/Spam tactics with surgical precision.

### CORE BEHAVIORAL RUBRIC

#### 1. THE "SAFE" PROFILE (Risk Score: 0-20)
- **Tone**: Informational, professional, consistent, and respectful.
- **Urgency**: No "immediate" threats. Standard billing cycles or routine updates.
- **Identity**: Consistent with the sender's stated domain. No spoofing.
- **Action**: Directs user to known official portals (e.g., "Log in to your dashboard" without a hidden link).
- **Markers**: "Thank you for being a customer", "Your monthly statement is ready", "Newsletter update".

#### 2. THE "SPAM/SUSPICIOUS" PROFILE (Risk Score: 21-60)
- **Tone**: Salesy, generic, or slightly off-brand.
- **Urgency**: "Limited time offer", "Don't miss out".
- **Action**: Excessive links, "Click here" buttons, tracking pixels.
- **Markers**: Unsolicited marketing, newsletter without unsubscribe, "Win $500".

#### 3. THE "FRAUD/SCAM" PROFILE (Risk Score: 61-100)
- **Tone**: High-pressure, fear-inducing, or overly friendly (love bombing).
- **Urgency**: "ACCOUNT SUSPENDED", "LEGAL ACTION PENDING", "OTP REQUIRED NOW".
- **Tactics**: 
    - Authority Impersonation (Banks, Tax Dept, Police).
    - Technical Support Scams (Virus detected).
    - Advance Fee (Lottery, Inheritance).
    - Data Phishing (Verification required).
- **Markers**: Poor grammar, mismatched email headers, requests for sensitive data, unusual attachments.

### OUTPUT REQUIREMENTS:
- **Accuracy**: If an email is a standard "Welcome to the team" or "Meeting invitation", it MUST be scored below 10.
- **Logic**: Explain the reasoning in the 'threat_indicators' field.
- **Registry**: When 'MODE: REGISTRY' is requested, provide the Repeat Offender list using 'demo_entries'.

KNOWN REPEAT OFFENDER REGISTRY:`

// analysisInstruction precedes the user's text in every analysis request.
const analysisInstruction = "Analyze this content for behavioral Fraud DNA. " +
	"If it is a routine, professional, or standard transactional message, give it a very low score (0-15). " +
	"If it uses manipulation tactics, give it a high score. Content: "

// SystemInstruction is sent with both analysis and registry requests.
var SystemInstruction = buildSystemInstruction(Roster)

func buildSystemInstruction(roster []Identity) string {
	var b strings.Builder
	b.WriteString(rubric)
	for _, id := range roster {
		fmt.Fprintf(&b, "\n- %s (%s)", id.Name, id.Email)
	}
	return b.String()
}

// AnalysisPrompt returns the text part of an analysis request. text is
// appended verbatim.
func AnalysisPrompt(text string) string {
	return analysisInstruction + text
}

// RegistryPrompt returns the text of a registry request.
func RegistryPrompt() string {
	return fmt.Sprintf("MODE: REGISTRY. Output %d unique entries from the Repeat Offender list into the 'demo_entries' JSON array.", RegistrySize)
}
