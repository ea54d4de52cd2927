// Package generation maps flat form state onto the engine's structured
// schema and runs the prompt assembler. The mapping is one-way; nothing
// here reads the engine's output back into form state.
package generation

import (
	"fmt"

	"github.com/classprojectsecond-jpg/campus-prompt-palette/internal/domain"
	"github.com/classprojectsecond-jpg/campus-prompt-palette/internal/engine"
)

var gradeLevels = map[domain.GradeLevel]engine.Level{
	domain.GradeFirst:    engine.LevelUG1,
	domain.GradeSecond:   engine.LevelUG2,
	domain.GradeThird:    engine.LevelUG3,
	domain.GradeFourth:   engine.LevelUG4,
	domain.GradeGraduate: engine.LevelGR,
	domain.GradeOther:    engine.LevelUG2,
}

var difficultyLevels = map[domain.DifficultyLevel]engine.LanguageLevel{
	domain.DifficultyHighSchool:    engine.LangLevelHS,
	domain.DifficultyUndergraduate: engine.LangLevelUG,
	domain.DifficultyGraduate:      engine.LangLevelGR,
	domain.DifficultyExpert:        engine.LangLevelGR,
}

var majorTypeLabels = map[domain.MajorType]string{
	domain.MajorTypeMajor:   "전공",
	domain.MajorTypeGeneral: "교양",
	domain.MajorTypeOther:   "기타",
}

var deadlineTypeLabels = map[domain.DeadlineType]string{
	domain.DeadlineAssignment: "과제 마감",
	domain.DeadlineExam:       "시험",
	domain.DeadlineOther:      "기타",
}

// modelPreference resolves the target-model display name, honoring the
// free-text override when "other" is selected.
func modelPreference(c domain.CommonSettings) string {
	switch c.TargetModel {
	case domain.ModelChatGPT:
		return "ChatGPT"
	case domain.ModelGemini:
		return "Gemini"
	case domain.ModelOther:
		if c.TargetModelOther != "" {
			return c.TargetModelOther
		}
		return "Other"
	default:
		return "ChatGPT"
	}
}

// toEngineSettings reshapes flat common settings into the engine schema.
func toEngineSettings(c domain.CommonSettings, tone engine.TonePreset) engine.Settings {
	level, ok := gradeLevels[c.GradeLevel]
	if !ok {
		level = engine.LevelUG2
	}
	langLevel, ok := difficultyLevels[c.DifficultyLevel]
	if !ok {
		langLevel = engine.LangLevelUG
	}

	professorStyle := ""
	switch c.ProfessorStyle {
	case domain.ProfessorStrict:
		professorStyle = "strict"
	case domain.ProfessorFlexible:
		professorStyle = "relaxed"
	}

	mode := engine.ModeDeliverable
	if c.Mode == domain.ModeLearning {
		mode = engine.ModeLearning
	}
	outlineMode := engine.FullWrite
	if c.ResultFormat == domain.FormatOutline {
		outlineMode = engine.OutlineOnly
	}

	var timePressure *engine.TimePressure
	if c.DeadlineValue != "" {
		tp := &engine.TimePressure{
			DeadlineDescription: fmt.Sprintf("%s까지 %s 남음", deadlineTypeLabels[c.DeadlineType], c.DeadlineValue),
		}
		if c.DeadlineType == domain.DeadlineExam {
			tp.ExamRemaining = c.DeadlineValue
		}
		timePressure = tp
	}

	policyText := ""
	if c.IncludeRegulation && c.AIRegulation != "" {
		policyText = c.AIRegulation
	}

	return engine.Settings{
		Mode:              mode,
		OutlineMode:       outlineMode,
		TonePreset:        tone,
		IncludeReferences: c.IncludeSources,
		SelfCheckEnabled:  c.IncludeSelfCheck,
		SubjectProfile: engine.SubjectProfile{
			CourseName:     c.SubjectName,
			MajorOrGE:      majorTypeLabels[c.MajorType],
			Level:          level,
			ProfessorStyle: professorStyle,
		},
		UserProfile: engine.UserProfile{
			Major:     c.UserMajor,
			Interests: c.InterestAreas,
		},
		StyleSampleText: c.WritingStyleSample,
		TimePressure:    timePressure,
		AIPolicyText:    policyText,
		ModelPreference: modelPreference(c),
		LanguageLevel:   langLevel,
	}
}

// toneForTab selects the tone preset applied to a generation. Only the
// report tab exposes a tone choice in its form; every other tab has a
// fixed mapping.
func toneForTab(tab domain.TabType, report domain.ReportTabData) engine.TonePreset {
	switch tab {
	case domain.TabReport:
		switch report.Tone {
		case domain.ToneReport:
			return engine.ToneReport
		case domain.ToneCasual:
			return engine.ToneCasual
		case domain.TonePresentation:
			return engine.TonePresentation
		default:
			return engine.ToneAcademic
		}
	case domain.TabCareer:
		return engine.ToneFormalEmail
	case domain.TabCoding, domain.TabImage:
		return engine.ToneCasual
	default:
		return engine.ToneAcademic
	}
}

// wordCount resolves a preset against a table, falling back to the user
// override and then to a generic phrase. Never returns an empty string
// for the "other" preset.
func wordCount(presets map[string]string, preset, other string) string {
	if preset == "other" {
		if other != "" {
			return other
		}
		return "사용자 지정 분량"
	}
	if p, ok := presets[preset]; ok {
		return p
	}
	if other != "" {
		return other
	}
	return "사용자 지정 분량"
}

var reportWordCounts = map[string]string{
	"300": "약 300자", "800": "약 800자", "1500": "약 1500자", "3000": "약 3000자",
}

func convertReport(data domain.ReportTabData, stages domain.StageSelection) engine.ReportEssayInputs {
	requiredSections := ""
	switch data.OutlineStructure {
	case "other":
		requiredSections = data.OutlineOther
	case "3-paragraph":
		requiredSections = "3단락 (서론-본론-결론)"
	default:
		requiredSections = "5단락 (서론-본론1-본론2-본론3-결론)"
	}

	attached := ""
	if data.ResearchScope != "" {
		attached = fmt.Sprintf("조사 범위: %s, 자료 유형: %s", data.ResearchScope, data.SourceTypes)
	}

	return engine.ReportEssayInputs{
		AssignmentSummary:       data.TaskDescription,
		Topic:                   data.Topic,
		RequiredSections:        requiredSections,
		LengthTarget:            wordCount(reportWordCounts, data.WordCountPreset, data.WordCountOther),
		KeyPoints:               data.Rubric,
		AttachedMaterialSummary: attached,
		StageCollectMaterial:    stages.Research,
		StageOutline:            stages.Outline,
		StageDraft:              stages.FullWrite,
	}
}

func convertExam(data domain.ExamTabData, stages domain.StageSelection) engine.ExamInputs {
	return engine.ExamInputs{
		ExamScope:        data.ExamScope,
		QuestionType:     data.ExamType,
		MyWeakPoints:     data.NotesText,
		WantSummarySheet: stages.Outline,
		WantPracticeSet:  stages.FullWrite,
	}
}

var codingLanguages = map[string]string{
	"python": "Python", "javascript": "JavaScript", "c-cpp": "C/C++", "matlab": "MATLAB",
}

func convertCoding(data domain.CodingTabData, stages domain.StageSelection) engine.CodingInputs {
	lang, ok := codingLanguages[data.Language]
	if !ok {
		lang = data.LanguageOther
		if lang == "" {
			lang = "기타"
		}
	}
	techStack := lang
	if data.Environment != "" {
		techStack += ", " + data.Environment
	}

	return engine.CodingInputs{
		GoalDescription:    data.FeatureDescription,
		TechStack:          techStack,
		Constraints:        data.ErrorMessage,
		CurrentCodeSnippet: data.CurrentCode,
		WantStepPlan:       stages.Outline,
		WantRefactor:       stages.Research,
	}
}

var researchWordCounts = map[string]string{
	"500": "약 500자", "1000": "약 1000자", "1500": "약 1500자",
}

func convertResearch(data domain.ResearchTabData) engine.ResearchInputs {
	return engine.ResearchInputs{
		ResearchTopic:       data.ResearchTopic,
		ResearchQuestion:    data.CurrentIdea,
		ExistingWorkSummary: data.ReferenceSummary,
		LengthTarget:        wordCount(researchWordCounts, data.WordCountPreset, data.WordCountOther),
	}
}

var careerEmailTypes = map[domain.CareerDocumentType]string{
	domain.DocProfessorEmail: "professor",
	domain.DocInternship:     "hr",
	domain.DocCompanyInquiry: "hr",
	domain.DocCoverLetter:    "etc",
}

var emailLengths = map[string]string{
	"short": "짧게 (5~7문장)", "medium": "보통 (8~12문장)", "long": "길게",
}

var coverLetterLengths = map[string]string{
	"500": "약 500자", "800": "약 800자", "1000": "약 1000자", "1500": "약 1500자",
}

func convertCareer(data domain.CareerTabData, stages domain.StageSelection) engine.CareerEmailInputs {
	emailType, ok := careerEmailTypes[data.DocumentType]
	if !ok {
		emailType = "etc"
	}

	var lengthPreset string
	if data.DocumentType == domain.DocCoverLetter {
		if data.CoverLetterWordCount == "other" && data.CoverLetterWordCountOther != "" {
			lengthPreset = data.CoverLetterWordCountOther
		} else if p, ok := coverLetterLengths[data.CoverLetterWordCount]; ok {
			lengthPreset = p
		} else {
			lengthPreset = "약 800자"
		}
	} else {
		if data.EmailLength == "other" && data.EmailLengthOther != "" {
			lengthPreset = data.EmailLengthOther
		} else if p, ok := emailLengths[data.EmailLength]; ok {
			lengthPreset = p
		} else {
			lengthPreset = "보통 (8~12문장)"
		}
	}

	docType := "email"
	if data.DocumentType == domain.DocCoverLetter {
		docType = "cover-letter"
	}

	return engine.CareerEmailInputs{
		EmailType:           emailType,
		Purpose:             data.CoreMessage,
		ReceiverProfile:     data.RecipientInfo,
		KeyPoints:           data.Experience,
		LengthPreset:        lengthPreset,
		WantCompanyResearch: stages.Research && data.CompanyResearchMode,
		WantOutline:         stages.Outline,
		WantFullWrite:       stages.FullWrite,
		DocumentType:        docType,
	}
}

var imageTypeLabels = map[string]string{
	"logo": "로고", "app-ui": "앱 UI", "poster": "포스터",
	"thumbnail": "썸네일", "illustration": "일러스트",
}

func convertImage(data domain.ImageTabData) engine.ImageInputs {
	goal, ok := imageTypeLabels[data.ImageType]
	if !ok {
		goal = data.ImageType
	}
	detail := "detailed"
	if data.PromptMode == "outline" {
		detail = "simple"
	}

	return engine.ImageInputs{
		ImageGoal:         goal,
		Subject:           data.ServiceName,
		Style:             data.StyleKeywords,
		ResolutionOrRatio: data.Platform,
		DetailLevel:       detail,
	}
}

// tabInputs dispatches to the per-tab conversion for the active tab.
func tabInputs(state *domain.FormState) engine.TabInputs {
	switch state.ActiveTab {
	case domain.TabExam:
		return convertExam(state.Exam, state.Stages)
	case domain.TabCoding:
		return convertCoding(state.Coding, state.Stages)
	case domain.TabResearch:
		return convertResearch(state.Research)
	case domain.TabCareer:
		return convertCareer(state.Career, state.Stages)
	case domain.TabImage:
		return convertImage(state.Image)
	default:
		return convertReport(state.Report, state.Stages)
	}
}

// Generate produces the full prompt text for the current form state.
// Pure: the same state always yields byte-identical output.
func Generate(state *domain.FormState) string {
	tone := toneForTab(state.ActiveTab, state.Report)
	settings := toEngineSettings(state.Common, tone)

	prompt := engine.BuildPrompt(settings, tabInputs(state))

	if state.Attachment.HasAttachment && state.Attachment.Description != "" {
		prompt += fmt.Sprintf("\n\n---\n\n# 첨부 파일\n\n나는 이미 %q에 해당하는 파일을 별도로 제출/업로드해 두었습니다. 이 파일도 함께 고려해 주세요.",
			state.Attachment.Description)
	}

	return prompt
}
