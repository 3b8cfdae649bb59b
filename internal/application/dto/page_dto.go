package dto

// Section una entrada del menú.
type Section struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Active bool   `json:"active"`
	Badge  string `json:"badge,omitempty"`
}

// PageView todo lo que necesita la plantilla (o GET /api/state) para pintar una página.
type PageView struct {
	AppName          string           `json:"app_name"`
	Year             int              `json:"year"`
	Section          string           `json:"section"`
	SectionTitle     string           `json:"section_title"`
	Sections         []Section        `json:"sections"`
	Theme            string           `json:"theme"`
	SidebarCollapsed bool             `json:"sidebar_collapsed"`
	APIStatus        APIStatus        `json:"api_status"`
	Dashboard        DashboardCounts  `json:"dashboard"`
	Query            string           `json:"query,omitempty"`
	StatusFilter     string           `json:"status_filter,omitempty"`
	List             *ListView        `json:"list,omitempty"`
	Form             *FormView        `json:"form,omitempty"`
	OrderDetail      *OrderDetailView `json:"order_detail,omitempty"`
	Delete           DeletePrompt     `json:"delete"`
	Notifications    []Notification   `json:"notifications"`
}
