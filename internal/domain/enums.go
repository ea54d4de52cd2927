package domain

// TabType identifies one of the six task categories.
type TabType string

const (
	TabReport   TabType = "report"
	TabExam     TabType = "exam"
	TabCoding   TabType = "coding"
	TabResearch TabType = "research"
	TabCareer   TabType = "career"
	TabImage    TabType = "image"
)

// AllTabs lists the categories in display order.
var AllTabs = []TabType{TabReport, TabExam, TabCoding, TabResearch, TabCareer, TabImage}

// ValidTabTypes is the canonical set of accepted tab type strings.
var ValidTabTypes = map[string]bool{
	"report": true, "exam": true, "coding": true,
	"research": true, "career": true, "image": true,
}

type Mode string

const (
	ModeLearning Mode = "learning"
	ModeTask     Mode = "task"
)

type ResultFormat string

const (
	FormatOutline ResultFormat = "outline"
	FormatFull    ResultFormat = "full"
)

type MajorType string

const (
	MajorTypeMajor   MajorType = "major"
	MajorTypeGeneral MajorType = "general"
	MajorTypeOther   MajorType = "other"
)

type GradeLevel string

const (
	GradeFirst    GradeLevel = "1"
	GradeSecond   GradeLevel = "2"
	GradeThird    GradeLevel = "3"
	GradeFourth   GradeLevel = "4"
	GradeGraduate GradeLevel = "graduate"
	GradeOther    GradeLevel = "other"
)

type ProfessorStyle string

const (
	ProfessorStrict   ProfessorStyle = "strict"
	ProfessorFlexible ProfessorStyle = "flexible"
	ProfessorUnknown  ProfessorStyle = "unknown"
)

type DeadlineType string

const (
	DeadlineAssignment DeadlineType = "assignment"
	DeadlineExam       DeadlineType = "exam"
	DeadlineOther      DeadlineType = "other"
)

type TargetModel string

const (
	ModelChatGPT TargetModel = "chatgpt"
	ModelGemini  TargetModel = "gemini"
	ModelOther   TargetModel = "other"
)

type Language string

const (
	LangKorean  Language = "korean"
	LangEnglish Language = "english"
	LangMixed   Language = "mixed"
	LangOther   Language = "other"
)

type DifficultyLevel string

const (
	DifficultyHighSchool    DifficultyLevel = "high-school"
	DifficultyUndergraduate DifficultyLevel = "undergraduate"
	DifficultyGraduate      DifficultyLevel = "graduate"
	DifficultyExpert        DifficultyLevel = "expert"
)

type ReportTone string

const (
	ToneAcademic     ReportTone = "academic"
	ToneReport       ReportTone = "report"
	TonePresentation ReportTone = "presentation"
	ToneCasual       ReportTone = "casual"
)

type CareerDocumentType string

const (
	DocProfessorEmail CareerDocumentType = "professor-email"
	DocInternship     CareerDocumentType = "internship"
	DocCompanyInquiry CareerDocumentType = "company-inquiry"
	DocCoverLetter    CareerDocumentType = "cover-letter"
)
