package web

import (
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/dmitrijs2005/careadmin/internal/server/dashboard"
	"github.com/dmitrijs2005/careadmin/internal/server/files"
	"github.com/dmitrijs2005/careadmin/internal/server/i18n"
	"github.com/dmitrijs2005/careadmin/internal/server/navigation"
	"github.com/dmitrijs2005/careadmin/internal/server/profile"
	"github.com/dmitrijs2005/careadmin/internal/server/state"
)

//go:embed templates/*.html
var templatesFS embed.FS

func loadTemplates(catalog *i18n.Catalog) (*template.Template, error) {
	funcs := template.FuncMap{
		"t": func(lang, key string, params ...string) string {
			return catalog.T(lang, key, params...)
		},
		"date": func(lang string, t time.Time) string {
			return catalog.FormatDate(lang, t)
		},
		"formatSize": files.FormatSize,
		"typeBadge":  files.TypeBadge,
		"iconKind":   files.IconKind,
		"itoa":       func(n int) string { return fmt.Sprint(n) },
	}

	tmpl, err := template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

type sidebarItem struct {
	navigation.Item
	Active bool
}

// notice is a toast or, when Blocking, a modal dialog.
type notice struct {
	Kind     string // success, error
	Title    string
	Body     string
	Blocking bool
}

// formField describes one input of the profile form.
type formField struct {
	Path  string
	Label string
	Value string
	Type  string
}

type formSection struct {
	Title  string
	Fields []formField
}

// view is the data every page template receives.
type view struct {
	Page      navigation.Page
	Path      string
	Lang      string
	Languages []i18n.Language
	State     state.Snapshot
	Sidebar   []sidebarItem

	Dashboard  dashboard.Summary
	Profile    []formSection
	Categories []files.Category

	Notice *notice
	Errors []string
}

func (s *HTTPServer) newView(page navigation.Page, path string, snap state.Snapshot) *view {
	v := &view{
		Page:      page,
		Path:      path,
		Lang:      snap.Language,
		Languages: s.catalog.Languages(),
		State:     snap,
	}

	for _, it := range navigation.Sidebar() {
		v.Sidebar = append(v.Sidebar, sidebarItem{Item: it, Active: navigation.Active(it, path)})
	}

	switch page {
	case navigation.PageDashboard:
		v.Dashboard = dashboard.Load()
	case navigation.PageProfile:
		v.Profile = profileSections(snap.Profile)
	case navigation.PageFiles:
		v.Categories = files.Categories()
	}

	return v
}

func profileSections(p profile.Profile) []formSection {
	return []formSection{
		{Title: "personalInformation", Fields: []formField{
			{Path: profile.FieldName, Label: "name", Value: p.Name, Type: "text"},
			{Path: profile.FieldDateOfBirth, Label: "dateOfBirth", Value: p.DateOfBirth, Type: "date"},
			{Path: profile.FieldRoom, Label: "room", Value: p.Room, Type: "text"},
		}},
		{Title: "contactInformation", Fields: []formField{
			{Path: profile.FieldEmail, Label: "email", Value: p.Email, Type: "email"},
			{Path: profile.FieldPhone, Label: "phone", Value: p.Phone, Type: "tel"},
			{Path: profile.FieldAddress, Label: "address", Value: p.Address, Type: "text"},
		}},
		{Title: "emergencyContact", Fields: []formField{
			{Path: profile.FieldEmergencyContactName, Label: "name", Value: p.EmergencyContact.Name, Type: "text"},
			{Path: profile.FieldEmergencyContactPhone, Label: "phone", Value: p.EmergencyContact.Phone, Type: "tel"},
			{Path: profile.FieldEmergencyContactRelation, Label: "relationship", Value: p.EmergencyContact.Relationship, Type: "text"},
		}},
		{Title: "medicalInformation", Fields: []formField{
			{Path: profile.FieldAllergies, Label: "allergies", Value: p.MedicalInfo.Allergies, Type: "text"},
			{Path: profile.FieldMedications, Label: "medications", Value: p.MedicalInfo.Medications, Type: "text"},
			{Path: profile.FieldConditions, Label: "conditions", Value: p.MedicalInfo.Conditions, Type: "text"},
		}},
		{Title: "preferences", Fields: []formField{
			{Path: profile.FieldLanguage, Label: "language", Value: p.Preferences.Language, Type: "text"},
		}},
	}
}
