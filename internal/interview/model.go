package interview

// Profile is the job-seeker input submitted for analysis. Every field is optional;
// absent JSON fields decode to "" and are treated like blank values.
type Profile struct {
	Experience        string `json:"experience"`
	Position          string `json:"position"`
	Front             string `json:"front"`
	Back              string `json:"back"`
	DevOps            string `json:"devops"`
	Etc               string `json:"etc"`
	ProjectExperience string `json:"projectExperience"`
	LearningGoals     string `json:"learningGoals"`
	CompanySize       string `json:"companySize"`
	Industry          string `json:"industry"`
}

// Priority ranks how urgently a candidate should act on the recommendations.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// Metadata annotates a successful analysis.
type Metadata struct {
	ProcessingTimeMs  int64    `json:"processingTimeMs"`
	AIModel           string   `json:"aiModel"`
	QualityScore      int      `json:"qualityScore"`
	AnalysisTimestamp string   `json:"analysisTimestamp"`
	Priority          Priority `json:"priority"`
	ExtractedKeywords []string `json:"extractedKeywords"`
}

// Result is either a populated success or a failure carrying ErrorMessage.
type Result struct {
	InterviewQuestions []string  `json:"interviewQuestions,omitempty"`
	LearningPath       string    `json:"learningPath,omitempty"`
	Success            bool      `json:"success"`
	ErrorMessage       string    `json:"errorMessage,omitempty"`
	Metadata           *Metadata `json:"metadata,omitempty"`
}

// Success builds a successful result. metadata may be nil.
func Success(questions []string, learningPath string, metadata *Metadata) Result {
	return Result{
		InterviewQuestions: questions,
		LearningPath:       learningPath,
		Success:            true,
		Metadata:           metadata,
	}
}

// Failure builds a failed result.
func Failure(message string) Result {
	return Result{Success: false, ErrorMessage: message}
}
