package lib

import (
	"fmt"
	"strconv"
)

// The service reports these enumerations as raw integers. Each closed set
// gets a typed constructor so an unknown value surfaces as a DataFormatError
// instead of leaking into caller code.

// Permission is one basic capability an access key can be granted.
type Permission int

const (
	PermissionImportURLs  Permission = 0
	PermissionImportFiles Permission = 1
	PermissionAddTags     Permission = 2
	PermissionSearchFiles Permission = 3
)

func PermissionFromInt(value int) (Permission, error) {
	switch p := Permission(value); p {
	case PermissionImportURLs, PermissionImportFiles, PermissionAddTags, PermissionSearchFiles:
		return p, nil
	}
	return 0, &DataFormatError{Kind: "permission", Value: value}
}

func (p Permission) String() string {
	switch p {
	case PermissionImportURLs:
		return "import urls"
	case PermissionImportFiles:
		return "import files"
	case PermissionAddTags:
		return "add tags"
	case PermissionSearchFiles:
		return "search files"
	}
	return fmt.Sprintf("Permission(%d)", int(p))
}

// URLType classifies what the service would do with a URL. Value 1 is
// unassigned on the service side.
type URLType int

const (
	URLTypePost      URLType = 0
	URLTypeFile      URLType = 2
	URLTypeGallery   URLType = 3
	URLTypeWatchable URLType = 4
	// URLTypeUnknown means no URL class matched.
	URLTypeUnknown URLType = 5
)

func URLTypeFromInt(value int) (URLType, error) {
	switch t := URLType(value); t {
	case URLTypePost, URLTypeFile, URLTypeGallery, URLTypeWatchable, URLTypeUnknown:
		return t, nil
	}
	return 0, &DataFormatError{Kind: "url type", Value: value}
}

func (t URLType) String() string {
	switch t {
	case URLTypePost:
		return "post url"
	case URLTypeFile:
		return "file url"
	case URLTypeGallery:
		return "gallery url"
	case URLTypeWatchable:
		return "watchable url"
	case URLTypeUnknown:
		return "unknown url"
	}
	return fmt.Sprintf("URLType(%d)", int(t))
}

// ImportStatus is the service's verdict on a file or URL submitted for
// import. Values 5 and 6 are unassigned on the service side.
type ImportStatus int

const (
	// ImportStatusImportable means the file is not in the database yet and
	// is ready for import.
	ImportStatusImportable        ImportStatus = 0
	ImportStatusSuccess           ImportStatus = 1
	ImportStatusExists            ImportStatus = 2
	ImportStatusPreviouslyDeleted ImportStatus = 3
	ImportStatusFailed            ImportStatus = 4
	ImportStatusVetoed            ImportStatus = 7
)

func ImportStatusFromInt(value int) (ImportStatus, error) {
	switch s := ImportStatus(value); s {
	case ImportStatusImportable, ImportStatusSuccess, ImportStatusExists,
		ImportStatusPreviouslyDeleted, ImportStatusFailed, ImportStatusVetoed:
		return s, nil
	}
	return 0, &DataFormatError{Kind: "import status", Value: value}
}

func (s ImportStatus) String() string {
	switch s {
	case ImportStatusImportable:
		return "importable"
	case ImportStatusSuccess:
		return "success"
	case ImportStatusExists:
		return "exists"
	case ImportStatusPreviouslyDeleted:
		return "previously deleted"
	case ImportStatusFailed:
		return "failed"
	case ImportStatusVetoed:
		return "vetoed"
	}
	return fmt.Sprintf("ImportStatus(%d)", int(s))
}

// TagAction is one content update the add_tags endpoint can apply.
type TagAction int

const (
	TagActionAdd             TagAction = 0
	TagActionDelete          TagAction = 1
	TagActionPend            TagAction = 2
	TagActionRescindPending  TagAction = 3
	TagActionPetition        TagAction = 4
	TagActionRescindPetition TagAction = 5
)

func TagActionFromInt(value int) (TagAction, error) {
	switch a := TagAction(value); a {
	case TagActionAdd, TagActionDelete, TagActionPend, TagActionRescindPending,
		TagActionPetition, TagActionRescindPetition:
		return a, nil
	}
	return 0, &DataFormatError{Kind: "tag action", Value: value}
}

func (a TagAction) String() string {
	switch a {
	case TagActionAdd:
		return "add"
	case TagActionDelete:
		return "delete"
	case TagActionPend:
		return "pend"
	case TagActionRescindPending:
		return "rescind pending"
	case TagActionPetition:
		return "petition"
	case TagActionRescindPetition:
		return "rescind petition"
	}
	return fmt.Sprintf("TagAction(%d)", int(a))
}

// TagStatus is the curation state of a tag within one tag service.
type TagStatus int

const (
	TagStatusCurrent    TagStatus = 0
	TagStatusPending    TagStatus = 1
	TagStatusDeleted    TagStatus = 2
	TagStatusPetitioned TagStatus = 3
)

func TagStatusFromInt(value int) (TagStatus, error) {
	switch s := TagStatus(value); s {
	case TagStatusCurrent, TagStatusPending, TagStatusDeleted, TagStatusPetitioned:
		return s, nil
	}
	return 0, &DataFormatError{Kind: "tag status", Value: value}
}

// TagStatusFromString converts the string-typed status keys of metadata
// responses.
func TagStatusFromString(value string) (TagStatus, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &DataFormatError{Kind: "tag status", Value: value}
	}
	return TagStatusFromInt(n)
}

func (s TagStatus) String() string {
	switch s {
	case TagStatusCurrent:
		return "current"
	case TagStatusPending:
		return "pending"
	case TagStatusDeleted:
		return "deleted"
	case TagStatusPetitioned:
		return "petitioned"
	}
	return fmt.Sprintf("TagStatus(%d)", int(s))
}
