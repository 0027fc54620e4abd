package dataset

import "leadlens/internal/model"

// DemographicQuestions returns the static intake form. Field IDs match the
// JSON keys the classify and start endpoints accept.
func DemographicQuestions() []model.DemographicQuestion {
	return []model.DemographicQuestion{
		{
			ID:          "name",
			Type:        "text",
			Question:    "Please enter what name you'd like to use in your report.",
			Placeholder: "Enter your name",
		},
		{
			ID:          "industry",
			Type:        "text",
			Question:    "What industry is your business in?",
			Placeholder: "e.g., Healthcare, Technology, Manufacturing, Education",
			HelperText:  "Please specify the industry your organization operates within.",
		},
		{
			ID:          "companySize",
			Type:        "number",
			Question:    "How many people work at your company?",
			Placeholder: "e.g., 500",
			HelperText:  "Please enter the total number of employees in your entire organization.",
		},
		{
			ID:          "department",
			Type:        "text",
			Question:    "What department or division do you primarily work in within your organization?",
			Placeholder: "e.g., Finance, Western Region Operations, Company-wide",
			HelperText:  "For those with broader responsibilities, such as overseeing multiple areas or the entire organization, indicate the most encompassing area.",
		},
		{
			ID:          "jobTitle",
			Type:        "text",
			Question:    "What is your job title?",
			Placeholder: "Enter your exact title as used in your workplace",
		},
		{
			ID:          "directReports",
			Type:        "number",
			Question:    "How many people report directly to you?",
			Placeholder: "Enter a number (0 if none)",
			HelperText:  "If none, enter '0'",
		},
		{
			ID:          "reportingRoles",
			Type:        "text",
			Question:    "What types of roles report directly to you? Please list them.",
			Placeholder: "e.g., Manager of Engineering, Sales Coordinator",
			HelperText:  "If none, please state 'None'",
		},
		{
			ID:       "decisionLevel",
			Type:     "select",
			Question: "What level of decisions do you primarily make? (Please select the most appropriate option)",
			Options: []model.QuestionOption{
				{
					Value:       "operational",
					Label:       "Operational",
					Description: "Day-to-day decisions within your specific role, like processing invoices, responding to customer queries, or maintaining records",
				},
				{
					Value:       "tactical",
					Label:       "Tactical",
					Description: "Medium-term decisions affecting your team or department, such as improving workflow efficiency or determining project timelines",
				},
				{
					Value:       "strategic",
					Label:       "Strategic",
					Description: "Long-term decisions that shape major aspects of the organization, such as developing new company-wide programs, setting overarching business strategies, or leading major organizational changes",
				},
			},
		},
		{
			ID:          "typicalProject",
			Type:        "textarea",
			Question:    "Describe a typical project or task you are responsible for.",
			Placeholder: "Please include details about what the task involves, any teams or departments you interact with, and its impact on your organization",
			HelperText:  "Example: 'I develop IT security policies that align with company-wide risk management strategies and coordinate with the legal and tech departments to implement them.'",
		},
		{
			ID:          "levelsToCEO",
			Type:        "number",
			Question:    "How many levels are there between you and the highest-ranking executive in your organization?",
			Placeholder: "Enter a number",
			HelperText:  "Count the layers of management from you to the CEO or equivalent. Example: If you report to a Manager, who reports to a VP, who reports to the CEO, you would enter '3'.",
		},
		{
			ID:         "managesBudget",
			Type:       "boolean",
			Question:   "Does your role require you to manage a budget?",
			HelperText: "If yes, please specify whether it is for your department only or if it spans multiple departments.",
		},
	}
}
