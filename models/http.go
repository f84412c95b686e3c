package models

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	UserProfile

	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ResetPasswordRequest is the body of POST /api/auth/reset-password.
type ResetPasswordRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"newPassword"`
}

// ChangePasswordRequest is the body of POST /api/profile/password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ThemeRequest is the body of PUT /api/preferences/theme.
type ThemeRequest struct {
	Theme Theme `json:"theme"`
}

// APIKeyRequest is the body of PUT /api/preferences/api-key.
// An empty key clears the override.
type APIKeyRequest struct {
	APIKey string `json:"apiKey"`
}

// ErrorResponse is the JSON body written for failed API calls.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ServiceInfo is the body of GET /api/version. It names the build and the
// model configuration verdicts are produced with.
type ServiceInfo struct {
	Version       string `json:"version"`
	Generator     string `json:"generator"`
	AnalysisModel string `json:"analysisModel"`
	RegistryModel string `json:"registryModel"`
}
