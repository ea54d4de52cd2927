package domain

// ReportTabData holds form state for the report/essay tab.
type ReportTabData struct {
	TaskDescription  string
	Topic            string
	Rubric           string
	ResearchScope    string
	SourceTypes      string
	OutlineStructure string // "3-paragraph", "5-paragraph", "other"
	OutlineOther     string
	WordCountPreset  string // "300", "800", "1500", "3000", "other"
	WordCountOther   string
	Tone             ReportTone
}

// ExamTabData holds form state for the exam-prep tab.
type ExamTabData struct {
	ExamScope       string
	ExamType        string
	NotesText       string
	SummaryType     string // "concept-list", "concept-example-trap", "other"
	SummaryOther    string
	WordCountPreset string // "200", "400", "600", "bullet", "other"
	WordCountOther  string
}

// CodingTabData holds form state for the coding tab.
type CodingTabData struct {
	Language           string // "python", "javascript", "c-cpp", "matlab", "other"
	LanguageOther      string
	Environment        string
	FeatureDescription string
	CurrentCode        string
	ErrorMessage       string
	Goal               string // "script", "app", "library"
	WriteMode          string // "minimal-code", "explanation"
	WordCountPreset    string // "300", "600", "1000", "other"
	WordCountOther     string
}

// ResearchTabData holds form state for the research/paper tab.
type ResearchTabData struct {
	ResearchTopic      string
	CurrentIdea        string
	ReferenceSummary   string
	LiteratureKeywords string
	OutlineStructure   string // "proposal", "review", "other"
	OutlineOther       string
	WordCountPreset    string // "500", "1000", "1500", "other"
	WordCountOther     string
}

// CareerTabData holds form state for the career/email tab.
type CareerTabData struct {
	DocumentType             CareerDocumentType
	RecipientInfo            string
	CoreMessage              string
	Experience               string
	ExistingDraft            string
	CompanyResearchMode      bool
	OutlineStructure         string // "email", "cover-letter"
	EmailLength              string // "short", "medium", "long", "other"
	EmailLengthOther         string
	CoverLetterWordCount     string // "500", "800", "1000", "1500", "other"
	CoverLetterWordCountOther string
}

// ImageTabData holds form state for the image-generation tab.
type ImageTabData struct {
	ImageType            string // "logo", "app-ui", "poster", "thumbnail", "illustration"
	ServiceName          string
	Tagline              string
	StyleKeywords        string
	ReferenceDescription string
	PreserveElements     string
	Platform             string
	PromptMode           string // "outline", "full"
	IncludeBothLanguages bool
}

func DefaultReportTabData() ReportTabData {
	return ReportTabData{
		OutlineStructure: "5-paragraph",
		WordCountPreset:  "1500",
		Tone:             ToneAcademic,
	}
}

func DefaultExamTabData() ExamTabData {
	return ExamTabData{
		SummaryType:     "concept-example-trap",
		WordCountPreset: "400",
	}
}

func DefaultCodingTabData() CodingTabData {
	return CodingTabData{
		Language:        "python",
		Goal:            "script",
		WriteMode:       "minimal-code",
		WordCountPreset: "600",
	}
}

func DefaultResearchTabData() ResearchTabData {
	return ResearchTabData{
		OutlineStructure: "proposal",
		WordCountPreset:  "1000",
	}
}

func DefaultCareerTabData() CareerTabData {
	return CareerTabData{
		DocumentType:         DocProfessorEmail,
		OutlineStructure:     "email",
		EmailLength:          "medium",
		CoverLetterWordCount: "800",
	}
}

func DefaultImageTabData() ImageTabData {
	return ImageTabData{
		ImageType:            "logo",
		PromptMode:           "full",
		IncludeBothLanguages: true,
	}
}

// FormState bundles everything the generator consumes for one session.
type FormState struct {
	ActiveTab      TabType
	Common         CommonSettings
	Stages         StageSelection
	Attachment     FileAttachment
	Report         ReportTabData
	Exam           ExamTabData
	Coding         CodingTabData
	Research       ResearchTabData
	Career         CareerTabData
	Image          ImageTabData
}

// DefaultFormState returns the initial state for a fresh session.
func DefaultFormState() *FormState {
	return &FormState{
		ActiveTab:  TabReport,
		Common:     DefaultCommonSettings(),
		Stages:     DefaultStageSelection(),
		Attachment: FileAttachment{},
		Report:     DefaultReportTabData(),
		Exam:       DefaultExamTabData(),
		Coding:     DefaultCodingTabData(),
		Research:   DefaultResearchTabData(),
		Career:     DefaultCareerTabData(),
		Image:      DefaultImageTabData(),
	}
}
