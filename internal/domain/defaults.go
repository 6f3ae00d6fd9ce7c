package domain

func ga4Step(number int, eventID string, target float64) FunnelTemplateStep {
	event, _ := FindGA4Event(eventID)
	return FunnelTemplateStep{
		StepNumber:           number,
		Event:                event,
		TargetConversionRate: target,
	}
}

// DefaultTemplates returns the starter templates seeded into an empty store
func DefaultTemplates() []FunnelTemplate {
	return []FunnelTemplate{
		{
			Name:         "SaaS Free Trial",
			Description:  "Visitor to trial signup to onboarding completion",
			BusinessGoal: "acquisition",
			TargetUsers:  "smb",
			BudgetRange:  "$1000-5000",
			Steps: []FunnelTemplateStep{
				ga4Step(1, "session_start", 100),
				ga4Step(2, "view_item", 45),
				ga4Step(3, "sign_up", 20),
				ga4Step(4, "tutorial_complete", 60),
			},
		},
		{
			Name:         "E-commerce Checkout",
			Description:  "Product discovery through purchase",
			BusinessGoal: "revenue",
			TargetUsers:  "consumers",
			BudgetRange:  "$5000-20000",
			Steps: []FunnelTemplateStep{
				ga4Step(1, "page_view", 100),
				ga4Step(2, "view_item", 40),
				ga4Step(3, "add_to_cart", 25),
				ga4Step(4, "begin_checkout", 55),
				ga4Step(5, "purchase", 65),
			},
		},
		{
			Name:         "Lead Generation",
			Description:  "Landing page to qualified lead",
			BusinessGoal: "leads",
			TargetUsers:  "enterprise",
			BudgetRange:  "$20000+",
			Steps: []FunnelTemplateStep{
				ga4Step(1, "first_visit", 100),
				ga4Step(2, "scroll", 60),
				ga4Step(3, "generate_lead", 12),
			},
		},
	}
}
