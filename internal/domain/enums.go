package domain

// UserRole defines the role hierarchy within a tenant.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleMember UserRole = "member"
	RoleViewer UserRole = "viewer"
)

// ValidUserRoles is the set of assignable roles.
var ValidUserRoles = map[UserRole]bool{
	RoleAdmin:  true,
	RoleMember: true,
	RoleViewer: true,
}

// DocumentType classifies the business content of an uploaded document.
type DocumentType string

const (
	DocTypePurchaseRegister DocumentType = "purchase_register"
	DocTypeSalesRegister    DocumentType = "sales_register"
	DocTypeBankStatement    DocumentType = "bank_statement"
	DocTypeOther            DocumentType = "other"
)

// DocumentStatus represents the processing lifecycle of a document.
type DocumentStatus string

const (
	DocStatusPending   DocumentStatus = "pending"
	DocStatusCompleted DocumentStatus = "completed"
	DocStatusFailed    DocumentStatus = "failed"
)

// FileType represents the allowed upload formats.
type FileType string

const (
	FileTypeCSV  FileType = "csv"
	FileTypeXLSX FileType = "xlsx"
)

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"csv":  FileTypeCSV,
	"xlsx": FileTypeXLSX,
}

// AllowedContentTypes maps MIME content types back to FileType. Browsers
// frequently send octet-stream for spreadsheets, so extension wins first.
var AllowedContentTypes = map[string]FileType{
	"text/csv": FileTypeCSV,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": FileTypeXLSX,
}
