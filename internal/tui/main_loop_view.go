package tui

import (
	"fmt"
	"strconv"
	"strings"
)

const reportLabelWidth = 16

func (m mainLoopModel) View() string {
	var body, hotKeys, title string

	switch {
	case m.loading:
		title = "ANALYZING"
		body = m.spinner.View() + " Consulting the intelligence engine..."
		hotKeys = "esc: cancel"
	case m.view == viewResult:
		title = "FRAUD DNA REPORT"
		body = m.renderRecord()
		hotKeys = "esc: new analysis │ c: copy verdict │ ctrl+o: history"
	case m.view == viewRegistry:
		title = "OFFENDER REGISTRY"
		body = m.renderRegistry()
		hotKeys = "↑/↓: navigate │ r: refresh │ esc: back"
	case m.view == viewHistory:
		title = "HISTORY"
		body = m.renderHistory()
		hotKeys = "↑/↓: navigate │ enter: open │ x: clear │ esc: back"
		if m.confirmClear {
			hotKeys = "y: clear all │ n: keep"
		}
	case m.view == viewSettings:
		title = "SETTINGS"
		body = m.renderSettings()
		hotKeys = "enter: save key │ esc: back"
	case m.view == viewPassword:
		title = "CHANGE PASSWORD"
		body = m.password.view("Change password", m.passwordBusy, "")
		hotKeys = "tab: next field │ enter: submit │ esc: back"
	default:
		title = "FRAUDGUARD"
		body = m.renderInput()
		hotKeys = "ctrl+s: analyze │ ctrl+g: registry │ ctrl+o: history │ ctrl+k: settings │ ctrl+p: password │ tab: switch field │ ctrl+x: clear"
	}

	hotKeys += " │ ctrl+t: theme │ ctrl+l: log out"

	var b strings.Builder
	b.WriteString(body)
	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(m.styles.status.Render(m.status))
	}
	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(m.styles.err.Render("Error: " + m.errMsg))
	}

	header := m.styles.title.Render(title) + "  " + m.styles.help.Render(m.session.FullName+" <"+m.session.Email+">")
	return m.styles.app.Render(renderPage(header, b.String(), m.styles.help.Render(hotKeys)))
}

func (m mainLoopModel) renderInput() string {
	var b strings.Builder
	b.WriteString(m.styles.label.Render("Message"))
	b.WriteString("\n")
	b.WriteString(m.text.View())
	b.WriteString("\n\n")
	b.WriteString(m.styles.label.Render("Screenshot"))
	b.WriteString(" [")
	b.WriteString(m.imagePath.View())
	b.WriteString("]")
	return b.String()
}

func (m mainLoopModel) renderRecord() string {
	if m.record == nil {
		return ""
	}
	r := m.record

	var b strings.Builder
	row := func(label, value string) {
		b.WriteString(padRight(label, reportLabelWidth))
		b.WriteString(value)
		b.WriteString("\n")
	}

	row("Risk", riskBadge(string(r.RiskLevel))+" "+strconv.Itoa(r.RiskScore)+"/100")
	row("Scam type", valueOrDash(r.ScamType))
	row("Family", valueOrDash(r.ScamFamily))
	row("Input", valueOrDash(r.AnalysisType))
	if r.ImpersonationEntity != "" {
		row("Impersonates", r.ImpersonationEntity)
	}
	row("Emotion", valueOrDash(r.PrimaryEmotion)+" (urgency: "+valueOrDash(r.UrgencyLevel)+")")
	row("Indicators", joinOrDash(r.ThreatIndicators))
	row("Tactics", joinOrDash(r.ManipulationTactics))
	row("Action", valueOrDash(r.RecommendedAction))
	row("Prevention", valueOrDash(r.PreventionTip))
	row("Report to", valueOrDash(r.ReportAuthority))
	row("Analyzed at", valueOrDash(r.Timestamp))

	if md := r.EmailMetadata; md != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.label.Render("Sender"))
		b.WriteString("\n")
		row("Domain", valueOrDash(md.SenderDomain))
		row("Verdict", valueOrDash(string(md.SenderVerdict)))
		row("Trust score", fmt.Sprintf("%.0f", md.SenderTrustScore))
		row("Spoofed domain", yesNo(md.DomainSpoofingDetected))
		row("Name mismatch", yesNo(md.DisplayNameMismatch))
	}

	b.WriteString("\n")
	b.WriteString(m.styles.label.Render("Verdict"))
	b.WriteString("\n")
	b.WriteString(m.styles.box.Render(strings.Join(wrapText(valueOrDash(r.Verdict), m.contentWidth()), "\n")))

	return b.String()
}

func (m mainLoopModel) renderRegistry() string {
	if len(m.registry) == 0 {
		return "No known offenders in the latest snapshot."
	}

	const emailWidth = 32

	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %-10s │ %-*s │ %-8s │ %s\n", "Flag", emailWidth, "Sender", "Risk", "Victims"))
	b.WriteString("  " + strings.Repeat("─", 10+emailWidth+26) + "\n")
	for i, e := range m.registry {
		cursor := " "
		if i == m.registryIdx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %-10s │ %-*s │ %-8s │ %d\n",
			cursor, fitText(e.FlagID, 10), emailWidth, fitText(e.EmailAddress, emailWidth), valueOrDash(e.RiskLevel), e.TotalVictimsReported))
	}

	e := m.registry[m.registryIdx]
	b.WriteString("\n")
	row := func(label, value string) {
		b.WriteString(padRight(label, reportLabelWidth))
		b.WriteString(value)
		b.WriteString("\n")
	}
	row("Risk", riskBadge(e.RiskLevel)+" "+strconv.Itoa(e.RiskScore)+"/100")
	row("Confidence", strconv.Itoa(e.ConfidenceScore)+"%")
	row("Impersonates", valueOrDash(e.Impersonates))
	row("Emails sent", strconv.Itoa(e.TotalEmailsSent))
	row("Scam types", joinOrDash(e.ScamTypesUsed))
	row("Phones", joinOrDash(e.LinkedPhoneNumbers))
	row("UPI IDs", joinOrDash(e.LinkedUPIIDs))
	row("Domains", joinOrDash(e.LinkedDomains))
	if e.ThreatSummary != "" {
		b.WriteString("\n")
		b.WriteString(strings.Join(wrapText(e.ThreatSummary, m.contentWidth()), "\n"))
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m mainLoopModel) renderHistory() string {
	if len(m.history) == 0 {
		return "No analyses yet."
	}

	var b strings.Builder
	for i, r := range m.history {
		cursor := " "
		if i == m.historyIdx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %-20s │ %-8s │ %3d │ %s\n",
			cursor, fitText(r.Timestamp, 20), r.RiskLevel, r.RiskScore, fitText(valueOrDash(r.ScamType), 40)))
	}

	if m.confirmClear {
		b.WriteString("\nClear all ")
		b.WriteString(strconv.Itoa(len(m.history)))
		b.WriteString(" records?")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m mainLoopModel) renderSettings() string {
	var b strings.Builder
	b.WriteString(padRight("Theme", reportLabelWidth))
	b.WriteString(string(m.theme))
	b.WriteString("\n")
	b.WriteString(padRight("Saved API key", reportLabelWidth))
	b.WriteString(yesNo(m.hasAPIKey))
	b.WriteString("\n\n")
	b.WriteString(padRight("New API key", reportLabelWidth))
	b.WriteString("[")
	b.WriteString(m.apiKey.View())
	b.WriteString("]")
	return b.String()
}

func (m mainLoopModel) contentWidth() int {
	if m.width > 12 {
		return min(m.width-12, 96)
	}
	return 72
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

