package ai

import (
	"strings"
	"text/template"
)

var extractionPrompt = template.Must(template.New("extraction").Parse(`You are a meeting scheduling assistant. Extract meeting details from the following request and respond with ONLY valid JSON (no markdown, no explanations, no code blocks).

CURRENT DATE/TIME CONTEXT (for calculating relative dates/times):
- Current Date: {{.Date}} ({{.Weekday}})
- Current Time: {{.Time}}
- Full Date/Time: {{.FullDateTime}}
- Time Zone: {{.OffsetLabel}}

CRITICAL: Handle relative dates and times by calculating from the current date/time:
- "in 2 hours" -> add 2 hours to the current time ({{.Time}})
- "in 30 minutes" -> add 30 minutes to the current time
- "tomorrow" -> {{.Date}} + 1 day
- "day after tomorrow" -> {{.Date}} + 2 days
- "in 2 days" or "2 days from now" -> {{.Date}} + 2 days
- "next Monday/Tuesday/etc" -> the next occurrence of that weekday after {{.Date}}
- "next week" -> {{.Date}} + 7 days
- "this Friday" -> the Friday of the current week

User Request: {{printf "%q" .Query}}

Extract these fields:
1. "title": a concise meeting title (if not specified, create one from the context)
2. "date": format YYYY-MM-DD; calculate it if relative
3. "time": format HH:MM in 24-hour format; calculate it if relative; convert AM/PM to 24-hour
4. "duration": format "X minutes" or "X hour"/"X hours" (default "30 minutes")
5. "participants": array of participant names mentioned ([] if none)
6. "platform": detect from keywords:
   - "zoom", "on zoom", "via zoom" -> "Zoom"
   - "google meet", "meet", "on meet" -> "Google Meet"
   - "teams", "microsoft teams", "ms teams" -> "Microsoft Teams"
   - none of the above -> "Online"
7. "platform_link": always the empty string "", it is generated separately

Example 1:
Input: "Team standup tomorrow at 10 AM on Zoom for 30 minutes"
Output: {"title":"Team standup","date":"<tomorrow in YYYY-MM-DD>","time":"10:00","duration":"30 minutes","participants":[],"platform":"Zoom","platform_link":""}

Example 2:
Input: "Client call in 2 hours on Google Meet"
Output: {"title":"Client call","date":"{{.Date}}","time":"<current time + 2 hours in HH:MM>","duration":"30 minutes","participants":[],"platform":"Google Meet","platform_link":""}

Example 3:
Input: "Project review 2 days from now at 3 PM on Teams for 1 hour"
Output: {"title":"Project review","date":"<current date + 2 days in YYYY-MM-DD>","time":"15:00","duration":"1 hour","participants":[],"platform":"Microsoft Teams","platform_link":""}

Now extract from: {{printf "%q" .Query}}

Respond with a single JSON object only:`))

type promptData struct {
	ClockSnapshot
	Query string
}

// BuildExtractionPrompt renders the instruction sent to the language model.
func BuildExtractionPrompt(query string, snap ClockSnapshot) (string, error) {
	var sb strings.Builder
	if err := extractionPrompt.Execute(&sb, promptData{ClockSnapshot: snap, Query: query}); err != nil {
		return "", err
	}
	return sb.String(), nil
}
