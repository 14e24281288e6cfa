package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTemplate(t *testing.T) {
	complete := Template{
		Format:      FormatHTMLEmail,
		SubjectLine: "Spring sale starts today",
		BodyHTML:    "<p>Save 20%</p>",
		CTAText:     "Shop now",
	}

	tests := []struct {
		name       string
		template   func() Template
		wantValid  bool
		wantScore  float64
		wantFields []string
	}{
		{
			name:      "complete email",
			template:  func() Template { return complete },
			wantValid: true,
			wantScore: 100,
		},
		{
			name: "email without subject",
			template: func() Template {
				tpl := complete
				tpl.SubjectLine = ""
				return tpl
			},
			wantValid:  false,
			wantScore:  70,
			wantFields: []string{"subject_line"},
		},
		{
			name: "subject only required for html email",
			template: func() Template {
				tpl := complete
				tpl.Format = "sms"
				tpl.SubjectLine = ""
				return tpl
			},
			wantValid: true,
			wantScore: 100,
		},
		{
			name: "plain body is enough",
			template: func() Template {
				tpl := complete
				tpl.BodyHTML = ""
				tpl.BodyPlain = "Save 20%"
				return tpl
			},
			wantValid: true,
			wantScore: 100,
		},
		{
			name: "long subject and missing cta warn",
			template: func() Template {
				tpl := complete
				tpl.SubjectLine = strings.Repeat("a", 61)
				tpl.CTAText = ""
				return tpl
			},
			wantValid:  true,
			wantScore:  80,
			wantFields: []string{"subject_line", "cta_text"},
		},
		{
			name: "subject of exactly sixty characters",
			template: func() Template {
				tpl := complete
				tpl.SubjectLine = strings.Repeat("a", 60)
				return tpl
			},
			wantValid: true,
			wantScore: 100,
		},
		{
			name:       "empty email",
			template:   func() Template { return Template{Format: FormatHTMLEmail} },
			wantValid:  false,
			wantScore:  30,
			wantFields: []string{"subject_line", "body", "cta_text"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateTemplate(tt.template())

			assert.Equal(t, tt.wantValid, result.Valid)
			assert.Equal(t, tt.wantScore, result.Score)

			fields := []string{}
			for _, issue := range result.Issues {
				fields = append(fields, issue.Field)
			}
			if tt.wantFields == nil {
				tt.wantFields = []string{}
			}
			assert.Equal(t, tt.wantFields, fields)
		})
	}
}

func TestValidateTemplate_Severities(t *testing.T) {
	result := ValidateTemplate(Template{Format: FormatHTMLEmail, BodyPlain: "hi"})

	assert.Equal(t, []ValidationIssue{
		{Severity: SeverityError, Field: "subject_line", Message: "Email must have a subject line"},
		{Severity: SeverityWarning, Field: "cta_text", Message: "Missing call-to-action"},
	}, result.Issues)
	assert.Equal(t, 60.0, result.Score)
}
