// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthTokenExpired       = "auth.token_expired"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthUserExists         = "auth.user_exists"
	KeyAuthLoginSuccess       = "auth.login_success"
	KeyAuthLogoutSuccess      = "auth.logout_success"
	KeyAuthRegisterSuccess    = "auth.register_success"
	KeyAdminAccessDenied      = "auth.admin_access_denied"

	// Validation
	KeyValidationInvalid  = "validation.invalid"
	KeyValidationRequired = "validation.required"

	// Content
	KeyNewsCreated   = "news.created"
	KeyNewsUpdated   = "news.updated"
	KeyNewsDeleted   = "news.deleted"
	KeyNewsNotFound  = "news.not_found"
	KeyCaseCreated   = "case.created"
	KeyCaseUpdated   = "case.updated"
	KeyCaseDeleted   = "case.deleted"
	KeyCaseNotFound  = "case.not_found"
	KeyTeamCreated   = "team.created"
	KeyTeamUpdated   = "team.updated"
	KeyTeamDeleted   = "team.deleted"
	KeyTeamNotFound  = "team.not_found"
	KeyVideoCreated  = "video.created"
	KeyVideoUpdated  = "video.updated"
	KeyVideoDeleted  = "video.deleted"
	KeyVideoNotFound = "video.not_found"
	KeyLogoCreated   = "logo.created"
	KeyLogoUpdated   = "logo.updated"
	KeyLogoDeleted   = "logo.deleted"
	KeyLogoNotFound  = "logo.not_found"

	// Contact requests
	KeyRequestSubmitted = "request.submitted"
	KeyRequestDeleted   = "request.deleted"
	KeyRequestNotFound  = "request.not_found"
)
