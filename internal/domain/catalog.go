// Package domain classifies documents into occupational domains and
// scores how well experience transfers between two domains.
package domain

// DomainUnknown is the classification result when no signal is found.
const DomainUnknown = "Unknown"

// Category describes one occupational domain and the keywords that
// signal it in document text.
type Category struct {
	Name        string
	Description string
	Keywords    []string
}

// catalog lists the recognized domains. Declaration order matters:
// classification ties break toward the earlier entry.
var catalog = []Category{
	{
		Name:        "IT/Software",
		Description: "Information Technology and Software Development",
		Keywords:    []string{"software", "developer", "engineer", "programming", "code", "it", "technology", "web", "app", "mobile"},
	},
	{
		Name:        "Backend Development",
		Description: "Server-side and API development",
		Keywords:    []string{"backend", "server", "api", "django", "fastapi", "nodejs", "express", "spring", "microservices"},
	},
	{
		Name:        "Frontend Development",
		Description: "Client-side and UI development",
		Keywords:    []string{"frontend", "ui", "ux", "react", "angular", "vue", "html", "css", "javascript", "web development"},
	},
	{
		Name:        "AI/ML/Data Science",
		Description: "Machine Learning, AI, and Data Science",
		Keywords:    []string{"ai", "ml", "machine learning", "deep learning", "neural", "tensorflow", "pytorch", "data science", "nlp", "computer vision", "algorithm"},
	},
	{
		Name:        "DevOps/Cloud",
		Description: "DevOps, Cloud Infrastructure, and System Administration",
		Keywords:    []string{"devops", "cloud", "aws", "azure", "gcp", "kubernetes", "docker", "ci/cd", "jenkins", "terraform", "infrastructure"},
	},
	{
		Name:        "QA/Testing",
		Description: "Quality Assurance and Software Testing",
		Keywords:    []string{"qa", "test", "testing", "automation", "selenium", "pytest", "manual testing", "quality assurance"},
	},
	{
		Name:        "Finance/Accounting",
		Description: "Finance, Accounting, and Financial Services",
		Keywords:    []string{"finance", "accounting", "gaap", "ledger", "audit", "cpa", "financial", "accountant", "bookkeeping", "tax"},
	},
	{
		Name:        "Healthcare",
		Description: "Healthcare and Medical Services",
		Keywords:    []string{"healthcare", "medical", "nurse", "doctor", "physician", "hospital", "clinical", "pharmaceutical", "health"},
	},
	{
		Name:        "Sales/Marketing",
		Description: "Sales and Marketing",
		Keywords:    []string{"sales", "marketing", "business development", "account executive", "campaign", "seo", "digital marketing"},
	},
	{
		Name:        "HR/Recruitment",
		Description: "Human Resources and Recruitment",
		Keywords:    []string{"hr", "human resources", "recruitment", "hiring", "talent", "employee", "payroll"},
	},
	{
		Name:        "Finance/Banking",
		Description: "Banking and Financial Services",
		Keywords:    []string{"banking", "bank", "loan", "credit", "mortgage", "trading", "investment", "portfolio"},
	},
}

// Names returns the recognized domain names in catalog order.
func Names() []string {
	names := make([]string, len(catalog))
	for i, c := range catalog {
		names[i] = c.Name
	}
	return names
}

// Describe returns the description of a domain, or "Unknown domain" for
// names outside the catalog.
func Describe(name string) string {
	for _, c := range catalog {
		if c.Name == name {
			return c.Description
		}
	}
	return "Unknown domain"
}

// IsKnown reports whether name is a catalog domain.
func IsKnown(name string) bool {
	for _, c := range catalog {
		if c.Name == name {
			return true
		}
	}
	return false
}
