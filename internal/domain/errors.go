package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenInvalid       = errors.New("token invalid")

	ErrInvalidHeight        = errors.New("thumbnail height must be a positive integer")
	ErrInvalidTierName      = errors.New("tier name must be a non-empty string of at most 50 characters")
	ErrEmptySizeSet         = errors.New("tier requires at least one thumbnail size")
	ErrTierNameTaken        = errors.New("tier name already exists")
	ErrTierBundleExists     = errors.New("tier with identical sizes and permissions already exists")
	ErrTierNotFound         = errors.New("tier not found")
	ErrAlreadySubscribed    = errors.New("account already has a subscription")
	ErrNotSubscribed        = errors.New("account has no subscription")
	ErrSameTier             = errors.New("account is already on this tier")
	ErrInvalidOwner         = errors.New("image owner is not a valid account")
	ErrUnsupportedExtension = errors.New("unsupported extension, supported extensions: .jpg, .png")
	ErrImageNotFound        = errors.New("image not found")
	ErrNameTaken            = errors.New("asset name already exists")
	ErrSizeNotAllowed       = errors.New("thumbnail size not permitted by current tier")
	ErrThumbnailExists      = errors.New("thumbnail already exists for this image and size")
	ErrImageDecode          = errors.New("file is not a valid image")
	ErrExpiryOutOfRange     = errors.New("link lifetime must be between 300 and 30000 seconds")
	ErrLinkNotAllowed       = errors.New("expiring links not permitted by current tier")
	ErrImageNotLinkable     = errors.New("image has no stored original to link")
	ErrLinkNotFound         = errors.New("link not found")
)
