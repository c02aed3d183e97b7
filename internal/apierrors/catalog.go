package apierrors

var (
	ErrInternal = New(KindInternal, "internal", "internal server error")

	ErrValidation       = New(KindValidation, "validation_failed", "invalid input")
	ErrUsernameReserved = New(KindValidation, "username_reserved", "this username is not available")
	ErrPasswordsDiffer  = New(KindValidation, "passwords_differ", "passwords do not match")
	ErrSelfAction       = New(KindValidation, "self_action", "users cannot perform this action on themselves")
	ErrInvalidStatus    = New(KindValidation, "invalid_status", "unknown follow request status")

	ErrUserNotFound    = New(KindNotFound, "user_not_found", "user not found")
	ErrRequestNotFound = New(KindNotFound, "follow_request_not_found", "follow request not found")
	ErrSessionNotFound = New(KindNotFound, "session_not_found", "session not found")
	ErrImageNotFound   = New(KindNotFound, "image_not_found", "image not found")

	ErrEmailTaken        = New(KindConflict, "email_taken", "email is already taken")
	ErrUsernameTaken     = New(KindConflict, "username_taken", "username is already taken")
	ErrIdentityTaken     = New(KindConflict, "email_or_username_taken", "email or username is already taken")
	ErrAlreadyFollowing  = New(KindConflict, "already_following", "you are already following this user")
	ErrNotFollowing      = New(KindConflict, "not_following", "you are not following this user")
	ErrAlreadyBlocked    = New(KindConflict, "already_blocked", "you have already blocked this user")
	ErrNotBlocked        = New(KindConflict, "not_blocked", "you have not blocked this user")
	ErrBlocked           = New(KindConflict, "blocked", "this user has blocked you")
	ErrRequestPending    = New(KindConflict, "request_pending", "a follow request is already pending")
	ErrRequestResolved   = New(KindConflict, "request_resolved", "follow request has already been answered")
	ErrTwoFactorNotSetup = New(KindConflict, "two_factor_not_setup", "two-factor authentication is not set up")
	ErrAlreadyVerified   = New(KindConflict, "already_verified", "user is already verified")
	ErrNotVerified       = New(KindConflict, "not_verified", "user is not verified")

	ErrInvalidCredentials = New(KindUnauthorized, "invalid_credentials", "invalid email or password")
	ErrWrongPassword      = New(KindUnauthorized, "wrong_password", "current password is incorrect")
	ErrMissingToken       = New(KindUnauthorized, "missing_token", "authorization token is required")
	ErrInvalidToken       = New(KindUnauthorized, "invalid_token", "authorization token is invalid")
	ErrSessionInvalid     = New(KindUnauthorized, "session_invalid", "session is no longer valid")

	ErrForbidden         = New(KindForbidden, "forbidden", "you are not allowed to perform this action")
	ErrNotRequestTarget  = New(KindForbidden, "not_request_recipient", "only the recipient can answer this follow request")
	ErrProfileNotVisible = New(KindForbidden, "profile_not_visible", "this profile is not visible to you")

	ErrTokenExpired     = New(KindExpired, "token_expired", "token has expired")
	ErrRecoveryExpired  = New(KindExpired, "recovery_link_expired", "recovery link has expired")
	ErrInvalidSignature = New(KindInvalidSignature, "invalid_signature", "token signature is invalid")

	ErrInvalidCode = New(KindInvalidCode, "invalid_code", "verification code is invalid")

	ErrTooManyAttempts = New(KindRateLimited, "too_many_attempts", "too many failed attempts, try again later")
)

// RecoveryRequested is the uniform answer to a password recovery request.
const RecoveryRequested = "if an account with this email exists, a recovery link has been sent"
