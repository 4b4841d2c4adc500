package auth

import (
	"sort"
	"strings"
)

// ============================================================================
// SCOPES - recruitment store
// ============================================================================

const (
	ScopeAll = "*"

	// Job scopes
	ScopeJobsAll    = "jobs:*"
	ScopeJobsRead   = "jobs:read"
	ScopeJobsWrite  = "jobs:write"
	ScopeJobsDelete = "jobs:delete"

	// Candidate scopes
	ScopeCandidatesAll    = "candidates:*"
	ScopeCandidatesRead   = "candidates:read"
	ScopeCandidatesWrite  = "candidates:write"
	ScopeCandidatesDelete = "candidates:delete"

	// Application scopes
	ScopeApplicationsAll    = "applications:*"
	ScopeApplicationsRead   = "applications:read"
	ScopeApplicationsWrite  = "applications:write"
	ScopeApplicationsDelete = "applications:delete"

	// Interview scopes
	ScopeInterviewsAll      = "interviews:*"
	ScopeInterviewsRead     = "interviews:read"
	ScopeInterviewsSchedule = "interviews:schedule"
	ScopeInterviewsConduct  = "interviews:conduct" // Record results, cancel
	ScopeInterviewsDelete   = "interviews:delete"

	// Offer scopes
	ScopeOffersAll    = "offers:*"
	ScopeOffersRead   = "offers:read"
	ScopeOffersWrite  = "offers:write"
	ScopeOffersDelete = "offers:delete"

	// Report scopes
	ScopeReportsRead = "reports:read"
)

// ScopeCategories organizes scopes by resource
var ScopeCategories = map[string][]string{
	"Jobs": {
		ScopeJobsAll,
		ScopeJobsRead,
		ScopeJobsWrite,
		ScopeJobsDelete,
	},
	"Candidates": {
		ScopeCandidatesAll,
		ScopeCandidatesRead,
		ScopeCandidatesWrite,
		ScopeCandidatesDelete,
	},
	"Applications": {
		ScopeApplicationsAll,
		ScopeApplicationsRead,
		ScopeApplicationsWrite,
		ScopeApplicationsDelete,
	},
	"Interviews": {
		ScopeInterviewsAll,
		ScopeInterviewsRead,
		ScopeInterviewsSchedule,
		ScopeInterviewsConduct,
		ScopeInterviewsDelete,
	},
	"Offers": {
		ScopeOffersAll,
		ScopeOffersRead,
		ScopeOffersWrite,
		ScopeOffersDelete,
	},
	"Reports": {
		ScopeReportsRead,
	},
}

// ScopeDescriptions provides descriptions for scopes
var ScopeDescriptions = map[string]string{
	ScopeAll: "Full access",

	ScopeJobsAll:    "Full access to job management",
	ScopeJobsRead:   "View jobs",
	ScopeJobsWrite:  "Create and edit jobs",
	ScopeJobsDelete: "Delete jobs",

	ScopeCandidatesAll:    "Full access to candidate management",
	ScopeCandidatesRead:   "View candidates",
	ScopeCandidatesWrite:  "Create and edit candidates",
	ScopeCandidatesDelete: "Delete candidates",

	ScopeApplicationsAll:    "Full access to application management",
	ScopeApplicationsRead:   "View applications",
	ScopeApplicationsWrite:  "Create applications and change their status",
	ScopeApplicationsDelete: "Delete applications",

	ScopeInterviewsAll:      "Full access to interview management",
	ScopeInterviewsRead:     "View interviews",
	ScopeInterviewsSchedule: "Schedule interviews",
	ScopeInterviewsConduct:  "Record interview results and cancel interviews",
	ScopeInterviewsDelete:   "Delete interviews",

	ScopeOffersAll:    "Full access to offer management",
	ScopeOffersRead:   "View offers",
	ScopeOffersWrite:  "Create and edit offers",
	ScopeOffersDelete: "Delete offers",

	ScopeReportsRead: "View candidate and company reports",
}

// IsKnownScope reports whether scope is one of the declared scopes
func IsKnownScope(scope string) bool {
	_, ok := ScopeDescriptions[scope]
	return ok
}

// KnownScopes lists every declared scope, sorted
func KnownScopes() []string {
	out := make([]string, 0, len(ScopeDescriptions))
	for s := range ScopeDescriptions {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Grants reports whether a granted scope satisfies a required one.
// "*" grants everything and "<resource>:*" grants every scope of that resource.
func Grants(granted, required string) bool {
	if granted == ScopeAll || granted == required {
		return true
	}
	resource, action, ok := strings.Cut(granted, ":")
	if !ok || action != "*" {
		return false
	}
	return strings.HasPrefix(required, resource+":")
}
