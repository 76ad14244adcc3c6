package dashboard

// NavItem is one entry of the sidebar.
type NavItem struct {
	View   View   `json:"view"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

var navLabels = map[View]string{
	ViewDocuments:  "Documents",
	ViewActivity:   "Activity Logs",
	ViewMonitoring: "Logs & Monitoring",
	ViewSettings:   "Settings",
}

// Sidebar returns the navigation entries with active marked.
func Sidebar(active View) []NavItem {
	items := make([]NavItem, 0, len(Views))
	for _, v := range Views {
		items = append(items, NavItem{View: v, Label: navLabels[v], Active: v == active})
	}
	return items
}
