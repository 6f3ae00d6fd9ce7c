package domain

// GA4Events is the built-in catalog of recommended GA4 events
var GA4Events = []Event{
	{ID: "first_visit", Name: "First Visit", Stage: StageAcquisition, EstimatedConversion: 100, Description: "User visits the site for the first time"},
	{ID: "session_start", Name: "Session Start", Stage: StageAcquisition, EstimatedConversion: 100, Description: "User starts a session"},
	{ID: "page_view", Name: "Page View", Stage: StageAwareness, EstimatedConversion: 85, Description: "User views a page"},
	{ID: "scroll", Name: "Scroll", Stage: StageAwareness, EstimatedConversion: 60, Description: "User scrolls to 90% of a page"},
	{ID: "view_item", Name: "View Item", Stage: StageInterest, EstimatedConversion: 45, Description: "User views a product or plan"},
	{ID: "generate_lead", Name: "Generate Lead", Stage: StageInterest, EstimatedConversion: 25, Description: "User submits a lead form"},
	{ID: "sign_up", Name: "Sign Up", Stage: StageTrial, EstimatedConversion: 20, Description: "User creates an account"},
	{ID: "tutorial_begin", Name: "Tutorial Begin", Stage: StageTrial, EstimatedConversion: 35, Description: "User starts onboarding"},
	{ID: "tutorial_complete", Name: "Tutorial Complete", Stage: StageTrial, EstimatedConversion: 30, Description: "User finishes onboarding"},
	{ID: "add_to_cart", Name: "Add to Cart", Stage: StageConversion, EstimatedConversion: 15, Description: "User adds an item to the cart"},
	{ID: "begin_checkout", Name: "Begin Checkout", Stage: StageConversion, EstimatedConversion: 10, Description: "User starts checkout"},
	{ID: "purchase", Name: "Purchase", Stage: StageConversion, EstimatedConversion: 3, Description: "User completes a purchase"},
}

// FindGA4Event looks up a built-in event by id
func FindGA4Event(id string) (Event, bool) {
	for _, e := range GA4Events {
		if e.ID == id {
			return e, true
		}
	}
	return Event{}, false
}
