package header

// Route paths with a fixed header. Keys are matched verbatim: no trailing
// slash or query string normalization.
const (
	PathDashboard       = "/dashboard"
	PathMyDocuments     = "/my-documents"
	PathTemplates       = "/templates"
	PathCompliance      = "/compliance"
	PathCreditDecoder   = "/compliance/credit-decoder"
	PathCriminalDecoder = "/compliance/criminal-decoder"
	PathSettings        = "/settings"
	PathAdminTopics     = "/admin/decoder-topics"
	wizardPrefix        = "/templates/"
	wizardMarker        = "/fill"
)

// defaultRoutes is the static route → header table.
var defaultRoutes = map[string]RouteDescriptor{
	PathDashboard:   {Title: "Dashboard", ShowState: true},
	PathMyDocuments: {Title: "My Documents"},
	PathTemplates:   {Title: "Templates"},
	PathCompliance:  {Title: "Compliance Hub", ShowState: true},
	PathCreditDecoder: {
		Title: "Credit Decoder",
		Breadcrumbs: []Breadcrumb{
			{Label: "Compliance Hub", Path: PathCompliance},
			{Label: "Credit Decoder"},
		},
		ShowState: true,
	},
	PathCriminalDecoder: {
		Title: "Criminal & Eviction Decoder",
		Breadcrumbs: []Breadcrumb{
			{Label: "Compliance Hub", Path: PathCompliance},
			{Label: "Criminal & Eviction Decoder"},
		},
		ShowState: true,
	},
	PathSettings: {Title: "Settings"},
	PathAdminTopics: {
		Title: "Decoder Topics",
		Breadcrumbs: []Breadcrumb{
			{Label: "Admin"},
			{Label: "Decoder Topics"},
		},
	},
}

// wizardDescriptor is returned for any /templates/<id>.../fill path.
var wizardDescriptor = RouteDescriptor{
	Title: "Document Wizard",
	Breadcrumbs: []Breadcrumb{
		{Label: "Templates", Path: PathTemplates},
		{Label: "Fill Document"},
	},
}
