package domain

import (
	"strings"

	apperrors "github.com/spec-kit/adoptafacil/pkg/util/errorutil"
)

// UserStatus represents lifecycle states for a platform user.
type UserStatus string

const (
	UserStatusActive    UserStatus = "ACTIVE"
	UserStatusInactive  UserStatus = "INACTIVE"
	UserStatusSuspended UserStatus = "SUSPENDED"
)

// UserStatuses lists every valid UserStatus.
var UserStatuses = []UserStatus{UserStatusActive, UserStatusInactive, UserStatusSuspended}

// ParseUserStatus maps text in any case onto a UserStatus.
func ParseUserStatus(value string) (UserStatus, error) {
	s := UserStatus(normalize(value))
	if !s.IsValid() {
		return "", apperrors.NewInvalidEnumValue("status", value, names(UserStatuses))
	}
	return s, nil
}

// IsValid returns true if the status is one of the defined constants.
func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusActive, UserStatusInactive, UserStatusSuspended:
		return true
	default:
		return false
	}
}

func (s UserStatus) String() string {
	return string(s)
}

// DocumentType enumerates identity documents accepted from adopters.
type DocumentType string

const (
	DocumentTypeID       DocumentType = "ID"
	DocumentTypePassport DocumentType = "PASSPORT"
	DocumentTypeOther    DocumentType = "OTHER"
)

var DocumentTypes = []DocumentType{DocumentTypeID, DocumentTypePassport, DocumentTypeOther}

// ParseDocumentType maps text in any case onto a DocumentType.
func ParseDocumentType(value string) (DocumentType, error) {
	d := DocumentType(normalize(value))
	if !d.IsValid() {
		return "", apperrors.NewInvalidEnumValue("documentType", value, names(DocumentTypes))
	}
	return d, nil
}

func (d DocumentType) IsValid() bool {
	switch d {
	case DocumentTypeID, DocumentTypePassport, DocumentTypeOther:
		return true
	default:
		return false
	}
}

func (d DocumentType) String() string {
	return string(d)
}

// DonationType distinguishes money from goods.
type DonationType string

const (
	DonationTypeMonetary DonationType = "MONETARY"
	DonationTypeInKind   DonationType = "IN_KIND"
)

var DonationTypes = []DonationType{DonationTypeMonetary, DonationTypeInKind}

// ParseDonationType maps text in any case onto a DonationType.
func ParseDonationType(value string) (DonationType, error) {
	d := DonationType(normalize(value))
	if !d.IsValid() {
		return "", apperrors.NewInvalidEnumValue("donationType", value, names(DonationTypes))
	}
	return d, nil
}

func (d DonationType) IsValid() bool {
	switch d {
	case DonationTypeMonetary, DonationTypeInKind:
		return true
	default:
		return false
	}
}

func (d DonationType) String() string {
	return string(d)
}

func normalize(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}

func names[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
