// Package engine assembles AI-assistant prompts from structured settings.
// All builders are pure: identical inputs always produce identical text,
// and unknown enum values resolve to fallback phrases instead of failing.
package engine

// Mode selects between pedagogical and submission-draft framing.
type Mode string

const (
	ModeLearning    Mode = "learning"
	ModeDeliverable Mode = "deliverable"
)

// OutlineMode selects structure-only vs full-writing output guidance.
type OutlineMode string

const (
	OutlineOnly OutlineMode = "outline"
	FullWrite   OutlineMode = "full"
)

// TonePreset selects one of the five stylistic directive blocks.
type TonePreset string

const (
	ToneAcademic     TonePreset = "academic"
	ToneReport       TonePreset = "report"
	ToneCasual       TonePreset = "casual"
	ToneFormalEmail  TonePreset = "formalEmail"
	TonePresentation TonePreset = "presentation"
)

// Level is the student's academic level.
type Level string

const (
	LevelHS  Level = "HS"
	LevelUG1 Level = "UG1"
	LevelUG2 Level = "UG2"
	LevelUG3 Level = "UG3"
	LevelUG4 Level = "UG4"
	LevelGR  Level = "GR"
)

// LanguageLevel is the requested explanation register.
type LanguageLevel string

const (
	LangLevelHS LanguageLevel = "HS"
	LangLevelUG LanguageLevel = "UG"
	LangLevelGR LanguageLevel = "GR"
)

// SubjectProfile describes the course the work is for.
type SubjectProfile struct {
	CourseName     string
	MajorOrGE      string
	Level          Level
	ProfessorStyle string // "strict" or "relaxed"; empty to omit
	AssignmentType string
}

// UserProfile describes the student.
type UserProfile struct {
	Major             string
	Interests         string
	PreferredExamples string
}

// TimePressure describes deadline constraints. Nil means no constraint.
type TimePressure struct {
	DeadlineDescription string
	ExamRemaining       string
}

// Settings is the engine-facing cross-category configuration.
type Settings struct {
	Mode             Mode
	OutlineMode      OutlineMode
	TonePreset       TonePreset
	IncludeReferences bool
	SelfCheckEnabled bool
	SubjectProfile   SubjectProfile
	UserProfile      UserProfile
	StyleSampleText  string
	TimePressure     *TimePressure
	AIPolicyText     string
	ModelPreference  string
	LanguageLevel    LanguageLevel
}

// ReportEssayInputs drives the report/essay builder.
type ReportEssayInputs struct {
	AssignmentSummary      string
	Topic                  string
	RequiredSections       string
	LengthTarget           string
	KeyPoints              string
	ProhibitedThings       string
	AttachedMaterialSummary string
	StageCollectMaterial   bool
	StageOutline           bool
	StageDraft             bool
}

// ExamInputs drives the exam-prep builder.
type ExamInputs struct {
	ExamScope        string
	QuestionType     string
	MyWeakPoints     string
	TimeAvailable    string
	WantPracticeSet  bool
	WantSummarySheet bool
}

// CodingInputs drives the coding builder.
type CodingInputs struct {
	GoalDescription    string
	TechStack          string
	Constraints        string
	CurrentCodeSnippet string
	WantStepPlan       bool
	WantRefactor       bool
}

// ResearchInputs drives the research/paper builder.
type ResearchInputs struct {
	ResearchTopic       string
	ResearchQuestion    string
	Methodology         string
	TargetVenueOrClass  string
	ExistingWorkSummary string
	LengthTarget        string
}

// CareerEmailInputs drives the career/email builder.
type CareerEmailInputs struct {
	EmailType           string // "professor", "hr", "networking", "etc"
	Purpose             string
	ReceiverProfile     string
	KeyPoints           string
	LengthPreset        string
	WantCompanyResearch bool
	WantOutline         bool
	WantFullWrite       bool
	DocumentType        string // "email" or "cover-letter"
}

// ImageInputs drives the image-prompt builder.
type ImageInputs struct {
	ImageGoal         string
	Subject           string
	Style             string
	ColorPalette      string
	ResolutionOrRatio string
	DetailLevel       string // "simple", "medium", "detailed"
	NegativePrompt    string
}

// TabInputs is the closed union of per-category builder inputs.
// Exactly the six input types in this package implement it.
type TabInputs interface {
	isTabInputs()
}

func (ReportEssayInputs) isTabInputs() {}
func (ExamInputs) isTabInputs()        {}
func (CodingInputs) isTabInputs()      {}
func (ResearchInputs) isTabInputs()    {}
func (CareerEmailInputs) isTabInputs() {}
func (ImageInputs) isTabInputs()       {}
