package repo

import "github.com/jacksmith/stencil/internal/model"

// Seed returns the built-in example stories installed on first run.
// They deliberately mix single- and double-brace variable spellings.
func Seed() model.Collection {
	return model.Collection{
		{
			Title: "Welcome Email Template",
			Text: `Dear {{name}},

Welcome to {{company}}! We're thrilled to have you join our team as a {{position}}.

Your start date is {{startDate}}, and you'll be working in the {{department}} department. Your manager, {{managerName}}, will reach out to you soon to discuss your onboarding schedule.

Please feel free to reach out if you have any questions before your start date. We're looking forward to working with you!

Best regards,
{{hrName}}
Human Resources Manager`,
			Variables: map[string]string{
				"name":        "",
				"company":     "",
				"position":    "",
				"startDate":   "",
				"department":  "",
				"managerName": "",
				"hrName":      "",
			},
		},
		{
			Title: "Meeting Invitation",
			Text: `Hi {name},

I hope this message finds you well. I'd like to schedule a meeting to discuss {topic}.

Proposed time: {date} at {time}
Duration: {duration}
Location: {location}

Please let me know if this works for you, or suggest an alternative time.

Looking forward to our discussion!

Best,
{senderName}`,
			Variables: map[string]string{
				"name":       "",
				"topic":      "",
				"date":       "",
				"time":       "",
				"duration":   "",
				"location":   "",
				"senderName": "",
			},
		},
		{
			Title: "Product Launch Announcement",
			Text: `🎉 Exciting News! 🎉

We're thrilled to announce the launch of {{productName}}!

After {{developmentTime}} of hard work, our team at {{companyName}} is proud to present this innovative solution that will {{benefit}}.

Key Features:
- {{feature1}}
- {{feature2}}
- {{feature3}}

Available starting {{launchDate}} at {{price}}.

Learn more at {{website}}

Thank you for your continued support!

The {{companyName}} Team`,
			Variables: map[string]string{
				"productName":     "",
				"developmentTime": "",
				"companyName":     "",
				"benefit":         "",
				"feature1":        "",
				"feature2":        "",
				"feature3":        "",
				"launchDate":      "",
				"price":           "",
				"website":         "",
			},
		},
	}
}
