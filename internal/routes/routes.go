package routes

import (
	"net/url"
	"strings"
)

// Backend REST paths, relative to the configured base URL.
const (
	UserLogin         = "/user/login"
	UserRegister      = "/user/register"
	AdminLogin        = "/user/admin/login"
	AdminSignup       = "/user/admin"
	ForgotPassword    = "/user/forgot-password"
	ResetPasswordBase = "/user/reset-password"
	UsersAll          = "/user/all"
	Catalog           = "/catelog"
	CatalogCategory   = "/catelog/category"
	InitialLead       = "/initiallead"
	Project           = "/project"
	ProjectByUser     = "/project/user"
	Designs           = "/designs"
)

// Portal navigation targets.
const (
	Home                = "/"
	AdminHome           = "/admin/catelog/display"
	AdminCatalogDisplay = "/admin/catelog/display"
	AdminCatalogAdd     = "/admin/catelog/additem"
	AdminCatalogUpdate  = "/admin/catelog/updateitem"
	AdminLeadDisplay    = "/admin/initiallead/display"
	AdminLeadAdd        = "/admin/initiallead/addlead"
	AdminLeadUpdate     = "/admin/initiallead/updatelead"
	AdminUsers          = "/admin/users"
	AdminProjects       = "/admin/projects"
	AdminProjectAdd     = "/admin/projects/add"
	UserLoginPage       = "/accounts/login"
	AdminLoginPage      = "/admin/login"
)

// Join builds a backend path from a base and escaped segments.
func Join(base string, segments ...string) string {
	var b strings.Builder
	b.WriteString(base)
	for _, s := range segments {
		b.WriteString("/")
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

// WithQuery appends a single query parameter to a route.
func WithQuery(route, key, value string) string {
	return route + "?" + url.Values{key: []string{value}}.Encode()
}

func CatalogItem(name string) string {
	return Join(Catalog, name)
}

func Lead(id string) string {
	return Join(InitialLead, id)
}

func ResetPassword(token string) string {
	return Join(ResetPasswordBase, token)
}

func ProjectDesigns(projectID string) string {
	return Join(Designs, projectID)
}

// AdminProjectDesigns is the portal page listing a project's designs.
func AdminProjectDesigns(projectID string) string {
	return Join(AdminProjects, projectID) + "/designs"
}

func AdminProjectQuotation(projectID string) string {
	return Join(AdminProjects, projectID) + "/quotation"
}

func AdminProjectDesignsAdd(projectID string) string {
	return Join(AdminProjects, projectID) + "/designs/add"
}
