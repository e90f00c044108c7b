// Package dictionary holds the static skill vocabulary used by the explicit
// matcher when scanning raw text. Terms are lowercase; multi-word phrases are
// matched as whole phrases.
package dictionary

// skillTerms is a broad cross-industry vocabulary. The candidate pool from
// the taxonomy service is unioned with this list at match time, so taxonomy
// outages degrade to dictionary-only matching instead of empty results.
var skillTerms = []string{
	// Software engineering & programming languages
	"python", "java", "javascript", "typescript", "node.js", "node", "react", "angular", "vue",
	"c", "c#", ".net", "c++", "go", "rust", "php", "ruby", "scala", "swift", "objective-c", "perl",
	"sql", "postgresql", "mysql", "mariadb", "sqlite", "mongodb", "cassandra", "couchbase", "redis",
	"graphql", "rest api", "grpc", "soap", "xml", "json",
	"spring", "spring boot", "hibernate", "django", "flask", "fastapi", "express", "laravel", "rails",
	"next.js", "nuxt", "svelte", "jquery",
	"redux", "mobx", "zustand", "state management",
	"websocket", "websockets", "socket.io",
	"android", "ios", "kotlin", "flutter", "react native", "xamarin",
	"unity", "unreal engine", "game development",

	// Cloud & infrastructure
	"aws", "azure", "gcp", "cloudformation", "terraform", "pulumi", "ansible", "chef", "puppet",
	"kubernetes", "docker", "openshift", "helm", "istio",
	"serverless", "lambda", "cloud run", "cloud functions",
	"sre", "devops", "infrastructure as code", "observability", "prometheus", "grafana", "datadog", "splunk",
	"elastic stack", "elk", "logstash", "kibana",
	"network security", "firewalls", "vpn", "load balancing", "dns", "tcp/ip",

	// Data engineering, analytics, ai/ml
	"data engineering", "data analytics", "data science", "etl", "elt", "data warehousing", "data lakes",
	"hadoop", "spark", "hive", "flink", "beam",
	"airflow", "dbt", "informatica", "talend", "ssis",
	"power bi", "tableau", "looker", "qlik",
	"machine learning", "deep learning", "mlops", "nlp", "natural language processing", "computer vision",
	"pandas", "numpy", "scikit-learn", "tensorflow", "keras", "pytorch", "hugging face", "xgboost",
	"statistics", "predictive modeling", "time series", "reinforcement learning",
	"bigquery", "redshift", "snowflake", "databricks", "athena", "presto",

	// Cybersecurity & compliance
	"cybersecurity", "penetration testing", "threat modeling", "incident response",
	"iam", "identity and access management", "zero trust", "siem",
	"owasp", "nist", "iso 27001", "gdpr", "hipaa", "pci dss", "soc 2",
	"malware analysis", "digital forensics", "vulnerability management",

	// QA, testing, automation
	"quality assurance", "qa automation", "test automation", "unit testing", "integration testing",
	"tdd", "bdd", "selenium", "cypress", "playwright", "pytest", "robot framework",
	"jmeter", "gatling", "performance testing", "chaos engineering",

	// Product & project management
	"product management", "product owner", "scrum master", "agile", "scrum", "kanban", "lean",
	"jira", "confluence", "trello",
	"roadmapping", "stakeholder management", "user stories", "backlog grooming",
	"project management", "pmp", "prince2", "waterfall", "risk management", "budgeting",

	// UX/UI & creative
	"user experience", "user interface design", "ux research", "wireframing", "prototyping",
	"figma", "sketch", "adobe xd", "adobe photoshop", "illustrator",
	"design systems", "accessibility", "design thinking", "usability testing",

	// Business, finance, operations
	"business analysis", "requirements gathering", "process improvement", "six sigma",
	"finance", "accounting", "financial modeling", "valuation", "ifrs", "gaap",
	"auditing", "internal controls", "sox compliance",
	"supply chain", "logistics", "procurement", "inventory management", "erp", "sap", "netsuite",
	"customer success", "crm", "salesforce", "hubspot", "zendesk",

	// Marketing & communications
	"digital marketing", "seo", "sem", "ppc", "content marketing", "email marketing", "marketing automation",
	"google analytics", "google ads", "campaign management",
	"brand strategy", "public relations", "copywriting", "social media",
	"market research", "growth marketing", "ab testing",

	// Human resources & people operations
	"talent acquisition", "recruiting", "hris", "workday", "bamboohr",
	"employee relations", "performance management", "compensation", "payroll",
	"learning and development", "organizational development", "change management",

	// Healthcare & life sciences
	"clinical research", "gmp", "glp", "fda compliance",
	"electronic medical records", "epic", "cerner", "hl7", "hipaa compliance",
	"nursing", "patient care", "telehealth", "medical coding", "icd-10",
	"biostatistics", "bioinformatics", "clinical trials",

	// Engineering disciplines
	"mechanical engineering", "electrical engineering", "civil engineering", "chemical engineering",
	"autocad", "solidworks", "revit", "catia", "ansys",
	"manufacturing", "process engineering", "quality engineering", "lean manufacturing", "root cause analysis",
	"reliability engineering", "hvac", "plc", "scada",

	// Legal & compliance
	"legal research", "contracts", "negotiation", "intellectual property", "patents",
	"corporate governance", "compliance", "regulatory affairs", "litigation",

	// Sales & customer-facing
	"sales strategy", "account management", "business development", "lead generation",
	"customer relationship management", "sales forecasting", "pipeline management",
	"customer retention", "customer onboarding",

	// Soft skills & leadership
	"leadership", "mentoring", "coaching", "team building", "communication", "presentation skills",
	"strategic planning", "problem solving", "critical thinking", "analytical skills",
	"conflict resolution", "time management", "decision making", "adaptability",
	"object oriented programming", "oop", "solid principles",

	// Emerging technologies & misc
	"blockchain", "smart contracts", "web3", "iot", "edge computing",
	"robotics", "rpa", "chatbots", "ar", "vr",
	"data privacy", "explainable ai", "digital twin",
}

// Terms returns the static skill vocabulary.
func Terms() []string {
	return skillTerms
}
