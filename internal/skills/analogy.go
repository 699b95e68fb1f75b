package skills

// analogyGroups maps normalized skill spellings to a shared group id.
// Two skills in the same group name the same technology even though an
// exact comparison fails, like "react" and "reactjs".
var analogyGroups = map[string]string{
	"javascript": "javascript",
	"js":         "javascript",
	"ecmascript": "javascript",

	"typescript": "typescript",
	"ts":         "typescript",

	"react":    "react",
	"reactjs":  "react",
	"react js": "react",

	"angular":   "angular",
	"angularjs": "angular",

	"vue":    "vue",
	"vuejs":  "vue",
	"vue js": "vue",

	"node":    "node",
	"nodejs":  "node",
	"node js": "node",

	"express":    "express",
	"expressjs":  "express",
	"express js": "express",

	"go":     "go",
	"golang": "go",

	"postgres":   "postgresql",
	"postgresql": "postgresql",

	"mongo":   "mongodb",
	"mongodb": "mongodb",

	"kubernetes": "kubernetes",
	"k8s":        "kubernetes",

	"aws":                 "aws",
	"amazon web services": "aws",

	"gcp":                   "gcp",
	"google cloud":          "gcp",
	"google cloud platform": "gcp",

	"ml":               "machine learning",
	"machine learning": "machine learning",

	"ai":                      "artificial intelligence",
	"artificial intelligence": "artificial intelligence",

	"tensorflow": "tensorflow",
	"tf":         "tensorflow",

	"scikit learn": "scikit-learn",
	"sklearn":      "scikit-learn",

	"ci cd": "ci/cd",
	"cicd":  "ci/cd",

	"rest":        "rest",
	"rest api":    "rest",
	"restful":     "rest",
	"restful api": "rest",

	"html":  "html",
	"html5": "html",

	"css":  "css",
	"css3": "css",

	"dotnet": "dotnet",
	"net":    "dotnet",
}

// analogyGroup returns the group id for an already-normalized skill.
func analogyGroup(normalized string) (string, bool) {
	group, ok := analogyGroups[normalized]
	return group, ok
}
