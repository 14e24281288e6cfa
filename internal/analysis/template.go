package analysis

// FormatHTMLEmail is the only creative format that requires a subject line
const FormatHTMLEmail = "html_email"

const maxSubjectLength = 60

// Severity of a template validation issue
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Template is the content of a creative as far as validation is concerned
type Template struct {
	Format      string
	SubjectLine string
	BodyHTML    string
	BodyPlain   string
	CTAText     string
}

// ValidationIssue is one finding against a template
type ValidationIssue struct {
	Severity Severity
	Field    string
	Message  string
}

// TemplateValidation is the outcome of ValidateTemplate. Score starts at 100
// and loses 30 per error and 10 per warning, floored at 0.
type TemplateValidation struct {
	Valid  bool
	Issues []ValidationIssue
	Score  float64
}

// ValidateTemplate checks a creative for missing or risky content.
// Only errors make it invalid.
func ValidateTemplate(t Template) TemplateValidation {
	issues := []ValidationIssue{}

	if t.SubjectLine == "" && t.Format == FormatHTMLEmail {
		issues = append(issues, ValidationIssue{SeverityError, "subject_line", "Email must have a subject line"})
	}
	if t.BodyHTML == "" && t.BodyPlain == "" {
		issues = append(issues, ValidationIssue{SeverityError, "body", "Creative must have content"})
	}
	if len([]rune(t.SubjectLine)) > maxSubjectLength {
		issues = append(issues, ValidationIssue{SeverityWarning, "subject_line", "Subject line may be truncated on mobile"})
	}
	if t.CTAText == "" {
		issues = append(issues, ValidationIssue{SeverityWarning, "cta_text", "Missing call-to-action"})
	}

	errorCount, warningCount := 0, 0
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			errorCount++
		} else {
			warningCount++
		}
	}

	score := 100 - float64(errorCount)*30 - float64(warningCount)*10
	if score < 0 {
		score = 0
	}

	return TemplateValidation{
		Valid:  errorCount == 0,
		Issues: issues,
		Score:  score,
	}
}
