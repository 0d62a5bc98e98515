package renderer

import (
	"github.com/etnz/travelbuddy"
)

// MemberRow is one user line of the admin community table.
type MemberRow struct {
	Name      string
	Email     string
	Role      string
	JoinedOn  string
	LastLogin string
}

// CommunityView is the community page data for rendering. Admin drives
// which of the two page variants is shown.
type CommunityView struct {
	Admin   bool
	Total   int
	Members []MemberRow
	// Membership card of the current user, shown on the non-admin page.
	Me MemberRow
}

// NewCommunityView shapes the registry for rendering. Non-admins only get
// their own membership card and the community size.
func NewCommunityView(r *travelbuddy.UserRegistry, viewer string, admin bool) *CommunityView {
	v := &CommunityView{Admin: admin, Total: r.Len()}
	for _, u := range r.List(true) {
		row := MemberRow{
			Name:      u.Name,
			Email:     u.Email,
			Role:      u.Role.String(),
			JoinedOn:  travelbuddy.DateOf(u.JoinedAt).String(),
			LastLogin: travelbuddy.DateOf(u.LastLogin).String(),
		}
		if admin {
			v.Members = append(v.Members, row)
		}
		if u.Email == viewer {
			v.Me = row
		}
	}
	return v
}

// RenderCommunity renders the community page to a markdown string.
func RenderCommunity(r *travelbuddy.UserRegistry, viewer string, admin bool) string {
	partials := map[string]string{
		"community_admin":  "community_admin.md",
		"community_member": "community_member.md",
	}
	return renderTemplate("community", "community.md", partials, NewCommunityView(r, viewer, admin))
}
