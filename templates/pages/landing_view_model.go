package pages

import "travel_crm_go/models"

// LandingViewModel holds everything the landing page renders
type LandingViewModel struct {
	Title            string
	Lang             string
	ToggleLang       string
	CSRFToken        string
	Nonce            string
	TurnstileSiteKey string
	CSSURL           string
	ScriptURL        string
	FaviconURL       string
	DefaultBudget    int
	Year             int
	Content          models.LandingContent
}
