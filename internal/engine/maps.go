package engine

// Formatting maps translate enum values into display phrases.
// Each lookup is total: unrecognized keys resolve to a fallback phrase,
// never to an error or an empty string.

var levelPhrases = map[Level]string{
	LevelHS:  "고등학생",
	LevelUG1: "대학교 1학년",
	LevelUG2: "대학교 2학년",
	LevelUG3: "대학교 3학년",
	LevelUG4: "대학교 4학년",
	LevelGR:  "대학원생",
}

// LevelPhrase returns the display phrase for an academic level.
func LevelPhrase(l Level) string {
	if p, ok := levelPhrases[l]; ok {
		return p
	}
	return "대학생"
}

var professorStylePhrases = map[string]string{
	"strict":  "엄격한 채점 기준",
	"relaxed": "유연한 채점 기준",
}

// ProfessorStylePhrase returns the grading-style phrase, empty for unset.
func ProfessorStylePhrase(style string) string {
	if style == "" {
		return ""
	}
	if p, ok := professorStylePhrases[style]; ok {
		return p
	}
	return style
}

var langLevelPhrases = map[LanguageLevel]string{
	LangLevelHS: "고등학생 수준",
	LangLevelUG: "학부생 수준",
	LangLevelGR: "대학원생 수준",
}

// LanguageLevelPhrase returns the explanation-register phrase.
func LanguageLevelPhrase(l LanguageLevel) string {
	if p, ok := langLevelPhrases[l]; ok {
		return p
	}
	return "학부생 수준"
}

var detailLevelPhrases = map[string]string{
	"simple":   "심플 - 핵심 요소만",
	"medium":   "중간 - 적당한 디테일",
	"detailed": "상세 - 풍부한 디테일",
}

// DetailLevelPhrase returns the image detail-level phrase.
func DetailLevelPhrase(level string) string {
	if p, ok := detailLevelPhrases[level]; ok {
		return p
	}
	return "중간 - 적당한 디테일"
}

var emailTypePhrases = map[string]string{
	"professor":  "지도교수/수업 교수에게 보내는 이메일 (면담 요청, 마감 연장 요청, 추천서 요청 등)",
	"hr":         "채용담당자용 이메일 (지원서 제출, 후속 문의, 인터뷰 감사메일)",
	"networking": "선배/현업자에게 네트워킹 및 조언 요청",
}

// EmailTypePhrase returns the contextual description for an email type.
func EmailTypePhrase(emailType string) string {
	if p, ok := emailTypePhrases[emailType]; ok {
		return p
	}
	return "기타 비즈니스 이메일"
}

var toneDraftInstructions = map[TonePreset]string{
	ToneAcademic:     "학술적 보고서체(~다/~이다 어미)로 작성해 주세요.",
	ToneReport:       "교수 제출용 보고서체로, 공손하지만 과도하게 딱딱하지 않게 작성해 주세요.",
	ToneCasual:       "친구에게 설명하듯 자연스러운 문체로 작성해 주세요.",
	ToneFormalEmail:  "교수/HR에게 보내는 이메일용 극존대체로 작성해 주세요.",
	TonePresentation: "발표 대본용 구어체로 작성해 주세요.",
}

// ToneDraftInstruction returns the single-sentence drafting directive for a
// tone preset, used inside stage blocks.
func ToneDraftInstruction(tone TonePreset) string {
	if p, ok := toneDraftInstructions[tone]; ok {
		return p
	}
	return "적절한 문체로 작성해 주세요."
}
