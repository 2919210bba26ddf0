package models

// SiteSettings is the singleton record of site-wide toggles and text
// edited from the management surface. Fields absent from an update
// patch keep their stored values.
type SiteSettings struct {
	ShowFeedback      bool              `json:"showFeedback"`
	ShowProjects      bool              `json:"showProjects"`
	ShowServices      bool              `json:"showServices"`
	SiteTitle         string            `json:"siteTitle"`
	SiteTitleAr       string            `json:"siteTitleAr"`
	SiteDescription   string            `json:"siteDescription"`
	SiteDescriptionAr string            `json:"siteDescriptionAr"`
	ContactEmail      string            `json:"contactEmail,omitempty"`
	ContactPhone      string            `json:"contactPhone,omitempty"`
	SocialLinks       map[string]string `json:"socialLinks,omitempty"`
}

// Project is one portfolio entry. Order is the sort key; ties keep
// their original array position.
type Project struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	TitleAr       string   `json:"titleAr"`
	Description   string   `json:"description"`
	DescriptionAr string   `json:"descriptionAr"`
	Image         string   `json:"image,omitempty"`
	Link          string   `json:"link,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	Order         int      `json:"order"`
	Visible       bool     `json:"visible"`
}

// Service is one offered-service entry with a display icon glyph.
type Service struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	TitleAr       string `json:"titleAr"`
	Description   string `json:"description"`
	DescriptionAr string `json:"descriptionAr"`
	Icon          string `json:"icon,omitempty"`
	Order         int    `json:"order"`
	Visible       bool   `json:"visible"`
}

// Feedback moderation statuses. Visible alone decides whether an
// entry shows on the public site; Status tracks the moderation
// workflow.
const (
	FeedbackStatusNew      = "new"
	FeedbackStatusApproved = "approved"
	FeedbackStatusRejected = "rejected"
)

// Feedback categories accepted on submission.
const (
	FeedbackCategoryGeneral    = "general"
	FeedbackCategoryProject    = "project"
	FeedbackCategoryService    = "service"
	FeedbackCategorySuggestion = "suggestion"
)

// Feedback is one visitor submission. IDs are timestamp-derived and
// never reused; CreatedAt and Timestamp are RFC 3339 strings.
type Feedback struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	Rating    int    `json:"rating"`
	Category  string `json:"category"`
	Status    string `json:"status"`
	Visible   bool   `json:"visible"`
	CreatedAt string `json:"createdAt"`
	Timestamp string `json:"timestamp"`
}

// AdminDocument is the whole persisted content document: the one unit
// of persistence for the site. There is exactly one per deployment.
type AdminDocument struct {
	LastUpdated string       `json:"lastUpdated"`
	Settings    SiteSettings `json:"settings"`
	Projects    []Project    `json:"projects"`
	Services    []Service    `json:"services"`
	Feedbacks   []Feedback   `json:"feedbacks"`
}

// DefaultAdminDocument is the document persisted on first read when
// no backing file exists yet.
func DefaultAdminDocument() AdminDocument {
	return AdminDocument{
		Settings: SiteSettings{
			ShowFeedback:      true,
			ShowProjects:      true,
			ShowServices:      true,
			SiteTitle:         "My Portfolio",
			SiteTitleAr:       "ملفي الشخصي",
			SiteDescription:   "Personal portfolio and services",
			SiteDescriptionAr: "موقع شخصي لعرض الأعمال والخدمات",
		},
		Projects:  []Project{},
		Services:  []Service{},
		Feedbacks: []Feedback{},
	}
}
