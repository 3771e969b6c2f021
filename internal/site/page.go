package site

// Milestone is one item of the phase checklist.
type Milestone struct {
	Done   bool
	Title  string
	Detail string
}

// Icon is the status glyph shown before the title.
func (m Milestone) Icon() string {
	if m.Done {
		return "✅"
	}
	return "🔄"
}

// Page is the fixed copy of the landing page. The status notice is
// Markdown.
type Page struct {
	Lang           string
	Title          string
	Description    string
	Heading        string
	Lead           string
	Phase          string
	Milestones     []Milestone
	StatusTitle    string
	StatusMarkdown string
}

// DefaultPage returns the Phase 1 placeholder copy.
func DefaultPage() Page {
	return Page{
		Lang:        "en",
		Title:       "XGrid Campers Ambassador Map",
		Description: "Discover and schedule viewings with Ambassador Campers, Dealers, and Events",
		Heading:     "XGrid Campers Ambassador Map",
		Lead: "Connect with XGrid Camper Ambassadors near you. Schedule viewings, " +
			"explore models, and discover your perfect adventure vehicle.",
		Phase: "Phase 1: Hello World 🚀",
		Milestones: []Milestone{
			{Done: true, Title: "Next.js Setup", Detail: "React framework configured"},
			{Done: true, Title: "Tailwind CSS", Detail: "Styling system ready"},
			{Done: false, Title: "AWS Amplify", Detail: "Deployment pending"},
		},
		StatusTitle: "Development Status",
		StatusMarkdown: "Application framework is ready. Next steps include database integration\n" +
			"and map implementation.\n",
	}
}
