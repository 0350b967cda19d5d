package lexicon

import "github.com/ppiankov/contractlens/internal/model"

// ContractProfile is the classifier's view of one contract type
type ContractProfile struct {
	Type        model.ContractType
	Weight      float64
	Keywords    []string // whole-word, case-insensitive
	Title       string   // regex searched in the document head only
	Description string
}

// TitleWindow is how many leading characters are searched for a title
const TitleWindow = 500

// ClassificationFloor is the minimum winning score for a confident classification
const ClassificationFloor = 3.0

// MaxTopKeywords caps the explainability keyword list
const MaxTopKeywords = 10

// ContractProfiles is ordered; on equal scores the earlier type wins
var ContractProfiles = []ContractProfile{
	{
		Type:   model.ContractEmployment,
		Weight: 1.0,
		Keywords: []string{
			"employee", "employer", "employment", "salary", "wages",
			"working hours", "probation", "resignation", "termination of employment",
			"job title", "job description", "work duties", "leave policy",
			"gratuity", "provident fund", "epf", "esi", "notice period",
			"full-time", "part-time", "designation", "reporting manager",
		},
		Title:       `(?i)(employment|job|appointment|offer)\s*(agreement|contract|letter)`,
		Description: "Employment Agreement - A contract between an employer and employee defining terms of employment",
	},
	{
		Type:   model.ContractVendor,
		Weight: 1.0,
		Keywords: []string{
			"vendor", "supplier", "purchase order", "supply", "goods",
			"delivery", "shipment", "procurement", "inventory", "wholesale",
			"pricing", "unit price", "bulk order", "minimum order",
			"product specifications", "quality standards", "returns policy",
			"invoice", "payment terms", "net 30", "net 60",
		},
		Title:       `(?i)(vendor|supplier|supply|purchase)\s*(agreement|contract|order)`,
		Description: "Vendor/Supplier Contract - An agreement for the supply of goods or products",
	},
	{
		Type:   model.ContractLease,
		Weight: 1.0,
		Keywords: []string{
			"lease", "lessor", "lessee", "tenant", "landlord", "rent",
			"monthly rent", "security deposit", "premises", "property",
			"real estate", "occupation", "subletting", "maintenance",
			"utilities", "eviction", "renewal of lease", "commercial lease",
			"residential", "lock-in period",
		},
		Title:       `(?i)(lease|rental|tenancy)\s*(agreement|deed|contract)`,
		Description: "Lease Agreement - A contract for the rental of property or premises",
	},
	{
		Type:   model.ContractPartnership,
		Weight: 1.0,
		Keywords: []string{
			"partner", "partnership", "partnership deed", "profit sharing",
			"loss sharing", "capital contribution", "partnership firm",
			"managing partner", "sleeping partner", "dissolution",
			"partnership act", "goodwill", "drawings", "retirement of partner",
		},
		Title:       `(?i)partnership\s*(deed|agreement)`,
		Description: "Partnership Deed - An agreement establishing a business partnership",
	},
	{
		Type:   model.ContractService,
		Weight: 1.0,
		Keywords: []string{
			"service provider", "client", "services", "scope of work",
			"deliverables", "milestones", "service level", "sla", "consulting",
			"professional services", "project timeline", "acceptance criteria",
			"change request", "statement of work", "hourly rate", "fixed fee",
			"retainer",
		},
		Title:       `(?i)(service|consulting|professional)\s*(agreement|contract)`,
		Description: "Service Contract - An agreement for the provision of professional services",
	},
	{
		Type:   model.ContractNDA,
		Weight: 1.2,
		Keywords: []string{
			"non-disclosure", "nda", "confidential information",
			"confidentiality agreement", "proprietary information",
			"trade secrets", "disclosing party", "receiving party",
			"non-circumvention", "mutual nda", "unilateral nda",
		},
		Title:       `(?i)(non-disclosure|nda|confidentiality)\s*(agreement|contract)?`,
		Description: "Non-Disclosure Agreement - A contract protecting confidential information",
	},
}

// UnknownDescription describes an unclassified contract
const UnknownDescription = "Unknown Contract Type - Unable to determine the specific contract category"
