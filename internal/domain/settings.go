package domain

// CommonSettings is the flat, form-facing configuration shared by every tab.
// Free-text fields are optional; empty means "omit the matching sentence"
// in the generated prompt, never "render empty".
type CommonSettings struct {
	Mode                Mode
	ResultFormat        ResultFormat
	IncludeSources      bool
	IncludeSelfCheck    bool
	SubjectName         string
	MajorType           MajorType
	GradeLevel          GradeLevel
	ProfessorStyle      ProfessorStyle
	UserMajor           string
	InterestAreas       string
	WritingStyleSample  string
	DeadlineType        DeadlineType
	DeadlineValue       string
	AIRegulation        string
	IncludeRegulation   bool
	TargetModel         TargetModel
	TargetModelOther    string
	ExplanationLanguage Language
	OutputLanguage      Language
	DifficultyLevel     DifficultyLevel
}

// StageSelection holds the three independent work-phase toggles.
// They are not mutually exclusive and may all be off.
type StageSelection struct {
	Research  bool
	Outline   bool
	FullWrite bool
}

// FileAttachment notes a file the user has already uploaded elsewhere.
type FileAttachment struct {
	HasAttachment bool
	Description   string
}

// DefaultCommonSettings returns the initial form state.
func DefaultCommonSettings() CommonSettings {
	return CommonSettings{
		Mode:                ModeTask,
		ResultFormat:        FormatFull,
		IncludeSources:      false,
		IncludeSelfCheck:    true,
		MajorType:           MajorTypeMajor,
		GradeLevel:          GradeThird,
		ProfessorStyle:      ProfessorUnknown,
		DeadlineType:        DeadlineAssignment,
		TargetModel:         ModelChatGPT,
		ExplanationLanguage: LangKorean,
		OutputLanguage:      LangKorean,
		DifficultyLevel:     DifficultyUndergraduate,
	}
}

// DefaultStageSelection starts with only the outline stage enabled.
func DefaultStageSelection() StageSelection {
	return StageSelection{Research: false, Outline: true, FullWrite: false}
}
