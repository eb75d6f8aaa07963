package auth

import "github.com/htetarkarhlaing/share-book-api/internal/pkg/apperror"

var (
	ErrUserNotFound        = apperror.NotFound("User not found")
	ErrAdminNotFound       = apperror.NotFound("Admin not found")
	ErrEmailAlreadyUsed    = apperror.Conflict("Your email is already used")
	ErrAccountNotActivated = apperror.Unauthorized("Your account is not activated, please request for verification code with your email")
	ErrAccountSuspended    = apperror.Unauthorized("Your account is suspended, please contact to Customer support")
	ErrAccountDeleted      = apperror.Unauthorized("Your account is deleted")
	ErrNotVerifiedYet      = apperror.Unauthorized("Your account is not verify yet")
	ErrPasswordMismatch    = apperror.Unauthorized("Password not match")
	ErrOTPMismatch         = apperror.Unauthorized("OTP not match")
	ErrInvalidRefreshToken = apperror.Unauthorized("Refresh token is not valid")
	ErrInvalidResetToken   = apperror.Unauthorized("Provided token is not valid")
	ErrEmptyProfilePatch   = apperror.Validation("At least one of email or username should be provided")
	ErrInternal            = apperror.Internal("Internal server error")
)
