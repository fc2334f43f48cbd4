package constants

// FieldName identifies one verifiable field on a beverage label application.
type FieldName string

const (
	FieldBrandName          FieldName = "brand_name"
	FieldFancifulName       FieldName = "fanciful_name"
	FieldClassType          FieldName = "class_type"
	FieldAlcoholContent     FieldName = "alcohol_content"
	FieldNetContents        FieldName = "net_contents"
	FieldHealthWarning      FieldName = "health_warning"
	FieldNameAndAddress     FieldName = "name_and_address"
	FieldCountryOfOrigin    FieldName = "country_of_origin"
	FieldAppellation        FieldName = "appellation"
	FieldSulfiteDeclaration FieldName = "sulfite_declaration"
	FieldVintage            FieldName = "vintage"
)

var allFields = []FieldName{
	FieldBrandName,
	FieldFancifulName,
	FieldClassType,
	FieldAlcoholContent,
	FieldNetContents,
	FieldHealthWarning,
	FieldNameAndAddress,
	FieldCountryOfOrigin,
	FieldAppellation,
	FieldSulfiteDeclaration,
	FieldVintage,
}

// AllFieldNames returns the canonical field names as strings, in display order.
func AllFieldNames() []string {
	result := make([]string, len(allFields))
	for i, f := range allFields {
		result[i] = string(f)
	}
	return result
}

// DefaultMinorFields is the default "minor discrepancy" set: a mismatch on one
// of these downgrades to needs_correction instead of a hard mismatch. The
// settings collaborator may override it per deployment.
var DefaultMinorFields = map[FieldName]struct{}{
	FieldFancifulName: {},
	FieldAppellation:  {},
	FieldVintage:      {},
}

// HealthWarningHeader is the literal header token that must appear in all caps
// on the mandatory warning statement.
const HealthWarningHeader = "GOVERNMENT WARNING"
