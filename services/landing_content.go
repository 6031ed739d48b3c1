package services

import "travel_crm_go/models"

// GetLandingContent returns a fresh copy of the landing page copy
func GetLandingContent() models.LandingContent {
	return models.LandingContent{
		WhyChooseUs: []models.Highlight{
			{Icon: "⏱️", Title: "Save Time", Description: "Automate repetitive tasks and focus on what matters most - growing your business"},
			{Icon: "👥", Title: "Manage Clients", Description: "Keep all client information organized and accessible in one centralized platform"},
			{Icon: "📈", Title: "Boost Sales", Description: "AI-powered insights help you identify opportunities and increase revenue"},
			{Icon: "📊", Title: "Real-time Analytics", Description: "Track performance, monitor trends, and make data-driven decisions"},
		},
		Features: []models.Highlight{
			{Icon: "🎯", Title: "Lead Management", Description: "Capture and nurture leads with automated follow-ups and personalized communication"},
			{Icon: "🗺️", Title: "AI Trip Planning", Description: "Create personalized itineraries in minutes with our intelligent planning assistant"},
			{Icon: "📅", Title: "Smart Booking Calendar", Description: "Manage bookings, appointments, and availability with an intuitive calendar interface"},
			{Icon: "🔔", Title: "Automated Follow-ups", Description: "Never lose a potential client with intelligent follow-up reminders and messaging"},
			{Icon: "📝", Title: "Client Notes & History", Description: "Keep detailed records of all client interactions, preferences, and travel history"},
			{Icon: "🚀", Title: "Pipeline Tracking", Description: "Monitor your sales pipeline and track progress from lead to booking"},
		},
		Solutions: []models.Solution{
			{Slug: "agencies", Title: "Travel Agencies", Description: "Scale your agency with powerful tools designed for multi-agent operations",
				Features: []string{"Multi-agent collaboration tools", "Advanced reporting and analytics", "Team workflow management", "Third-party integrations"}},
			{Slug: "solo", Title: "Solo Travel Agents", Description: "Everything you need to manage your independent travel business efficiently",
				Features: []string{"Personalized dashboard", "Client relationship management", "Automated workflows", "Mobile-first design"}},
			{Slug: "groups", Title: "Group Organizers", Description: "Streamline group travel planning with specialized tools and features",
				Features: []string{"Group management tools", "Payment processing", "Communication hub", "Itinerary planning"}},
			{Slug: "corporate", Title: "Corporate Teams", Description: "Enterprise-grade solutions for corporate travel management",
				Features: []string{"Compliance management", "Expense tracking", "Approval workflows", "Advanced analytics"}},
		},
		Plans: []models.PricingPlan{
			{Name: "Free", Description: "Perfect for getting started with basic travel management", MonthlyPrice: 0, YearlyPrice: 0,
				Features: []string{"Up to 50 contacts", "Basic CRM features", "Email support", "Mobile app access"}},
			{Name: "Professional", Description: "Ideal for growing travel businesses and agencies", MonthlyPrice: 49, YearlyPrice: 39, Popular: true,
				Features: []string{"Unlimited contacts", "Advanced analytics", "Automated workflows", "Priority support", "API access", "Third-party integrations"}},
			{Name: "Enterprise", Description: "Complete solution for large teams and corporations", MonthlyPrice: 99, YearlyPrice: 79,
				Features: []string{"Everything in Professional", "White-label options", "Dedicated account manager", "Custom development", "Enhanced security", "SLA guarantees"}},
		},
		Testimonials: []models.Testimonial{
			{Quote: "TravelCRM cut our quoting time in half. Follow-ups happen on their own now.", Author: "Priya Sharma", Role: "Founder", Company: "Wanderlust Journeys"},
			{Quote: "The AI itinerary planner wows our clients on the very first call.", Author: "Rahul Mehta", Role: "Senior Travel Consultant", Company: "Horizon Holidays"},
			{Quote: "Managing 40-person group tours finally feels under control.", Author: "Anita Desai", Role: "Group Tour Organizer", Company: "Yatra Collective"},
		},
		FAQs: []models.FAQ{
			{Question: "Is my data secure?", Answer: "Yes, we use enterprise-grade security measures including SSL encryption, regular backups, and compliance with industry standards to keep your data safe."},
			{Question: "Can I cancel my subscription anytime?", Answer: "Absolutely! You can cancel your subscription at any time with no cancellation fees. Your data will be available for 30 days after cancellation."},
			{Question: "Is there a free trial?", Answer: "Yes, we offer a 14-day free trial with full access to all features. No credit card required to start your trial."},
			{Question: "What kind of support do you offer?", Answer: "We provide 24/7 email support, live chat during business hours, and comprehensive documentation. Enterprise customers get dedicated phone support."},
			{Question: "Can I import my existing data?", Answer: "Yes, we support importing data from CSV files, Excel spreadsheets, and most popular CRM systems. Our team can help with the migration process."},
			{Question: "Do you have a mobile app?", Answer: "Yes, our mobile app is available for both iOS and Android devices, giving you full access to your CRM on the go."},
		},
		Integrations: []models.Integration{
			{NameKey: "integrations.googleWorkspace", Logo: "https://www.google.com/favicon.ico"},
			{NameKey: "integrations.whatsapp", Logo: "https://web.whatsapp.com/favicon.ico"},
			{NameKey: "integrations.stripe", Logo: "https://stripe.com/favicon.ico"},
			{NameKey: "integrations.gmail", Logo: "https://ssl.gstatic.com/ui/v1/icons/mail/rfr/gmail.ico"},
			{NameKey: "integrations.googleMaps", Logo: "https://maps.google.com/favicon.ico"},
			{NameKey: "integrations.slack", Logo: "https://slack.com/favicon.ico"},
		},
		Stats: []models.Stat{
			{Value: "10,000+", LabelKey: "finalCTA.stats.agencies"},
			{Value: "1M+", LabelKey: "finalCTA.stats.bookings"},
			{Value: "98%", LabelKey: "finalCTA.stats.satisfaction"},
		},
	}
}
