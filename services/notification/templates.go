package notification

import (
	htmltemplate "html/template"
	"strings"
	"text/template"

	"smartmeet/models"
)

const signature = "SmartMeet - AI-Powered Meeting Scheduler"

var invitationHTML = htmltemplate.Must(htmltemplate.New("invitation").Parse(`<html>
  <body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
    <div style="background: linear-gradient(135deg, #8b5cf6 0%, #3b82f6 100%); padding: 30px; text-align: center;">
      <h1 style="color: white; margin: 0;">{{.Heading}}</h1>
    </div>
    <div style="padding: 30px; background-color: #f8fafc;">
      <p>Hello,</p>
      <p>{{.Lead}} "<strong>{{.Meeting.Title}}</strong>"{{.LeadSuffix}}</p>
      <div style="background: white; padding: 20px; border-radius: 8px; margin: 20px 0;">
        <p><strong>Date:</strong> {{.Meeting.Date}}</p>
        <p><strong>Time:</strong> {{.Meeting.Time}}</p>
        <p><strong>Duration:</strong> {{.Meeting.Duration}}</p>
        {{- if not .Meeting.MeetingLink}}
        <p><strong>Platform:</strong> {{.Meeting.Platform}}</p>
        {{- end}}
      </div>
      {{- if .Meeting.MeetingLink}}
      <div style="background-color: #f0f4ff; border-left: 4px solid #8b5cf6; padding: 15px; margin: 15px 0; border-radius: 4px;">
        <h3 style="color: #8b5cf6; margin: 0 0 10px 0;">Join Meeting</h3>
        <p style="margin: 5px 0;"><strong>Platform:</strong> {{.Meeting.Platform}}</p>
        <p style="margin: 5px 0;"><a href="{{.Meeting.MeetingLink}}" style="color: #3b82f6; font-weight: bold;">{{.Meeting.MeetingLink}}</a></p>
        {{- if .Meeting.MeetingID}}
        <p style="margin: 5px 0;"><strong>Meeting ID:</strong> {{.Meeting.MeetingID}}</p>
        {{- end}}
        {{- if .Meeting.MeetingPassword}}
        <p style="margin: 5px 0;"><strong>Password:</strong> {{.Meeting.MeetingPassword}}</p>
        {{- end}}
      </div>
      {{- end}}
      <p style="margin-top: 30px; color: #64748b; font-size: 14px;">Regards,<br>{{.Signature}}</p>
    </div>
  </body>
</html>`))

var invitationText = template.Must(template.New("invitation").Parse(`Hello,

{{.Lead}} "{{.Meeting.Title}}"{{.LeadSuffix}}

Date: {{.Meeting.Date}}
Time: {{.Meeting.Time}}
Duration: {{.Meeting.Duration}}
Platform: {{.Meeting.Platform}}
{{- if .Meeting.MeetingLink}}

Join Link: {{.Meeting.MeetingLink}}
{{- end}}
{{- if .Meeting.MeetingID}}
Meeting ID: {{.Meeting.MeetingID}}
{{- end}}
{{- if .Meeting.MeetingPassword}}
Password: {{.Meeting.MeetingPassword}}
{{- end}}

Regards,
{{.Signature}}
`))

type emailView struct {
	Heading    string
	Lead       string
	LeadSuffix string
	Meeting    *models.Meeting
	Signature  string
}

func renderBodies(view emailView) (text string, html string, err error) {
	view.Signature = signature

	var tb strings.Builder
	if err := invitationText.Execute(&tb, view); err != nil {
		return "", "", err
	}
	var hb strings.Builder
	if err := invitationHTML.Execute(&hb, view); err != nil {
		return "", "", err
	}
	return tb.String(), hb.String(), nil
}
