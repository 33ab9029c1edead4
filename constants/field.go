package constants

// Label names one captured region of a plan document. The domain vocabulary
// covers the co-payment tiers that appear on every plan sheet.
type Label string

const (
	AltoHospitalaria Label = "alto"
	BajoHospitalaria Label = "bajo"
	AltoAmbulatoria  Label = "alto_ambulatoria"
	BajoAmbulatoria  Label = "bajo_ambulatorio"
)

// KeyColumn is the identifier column of the output table. Its value is the
// document file name with the extension stripped.
const KeyColumn = "nombre_plan"

var domainLabels = []Label{
	AltoHospitalaria,
	BajoHospitalaria,
	AltoAmbulatoria,
	BajoAmbulatoria,
}

// DomainLabels returns the canonical label vocabulary in column order.
func DomainLabels() []string {
	result := make([]string, len(domainLabels))
	for i, l := range domainLabels {
		result[i] = string(l)
	}
	return result
}
