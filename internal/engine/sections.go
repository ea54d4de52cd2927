package engine

import (
	"fmt"
	"strings"
)

// buildRoleAndContext emits the fixed role declaration, the context bullet
// list (one bullet per populated profile field, fixed order), an optional
// style-imitation block, and an optional time-constraint block.
func buildRoleAndContext(s Settings) string {
	parts := []string{
		"# 역할 정의\n\n당신은 **한국 대학생을 돕는 전문 AI 어시스턴트**입니다.",
	}

	var bullets []string
	if s.SubjectProfile.CourseName != "" {
		bullets = append(bullets, "- 과목: "+s.SubjectProfile.CourseName)
	}
	if s.SubjectProfile.MajorOrGE != "" {
		bullets = append(bullets, "- 전공/교양 구분: "+s.SubjectProfile.MajorOrGE)
	}
	if s.SubjectProfile.Level != "" {
		bullets = append(bullets, "- 학년: "+LevelPhrase(s.SubjectProfile.Level))
	}
	if s.SubjectProfile.ProfessorStyle != "" {
		bullets = append(bullets, "- 교수 스타일: "+ProfessorStylePhrase(s.SubjectProfile.ProfessorStyle))
	}
	if s.SubjectProfile.AssignmentType != "" {
		bullets = append(bullets, "- 과제 유형: "+s.SubjectProfile.AssignmentType)
	}
	if s.UserProfile.Major != "" {
		bullets = append(bullets, "- 사용자 전공: "+s.UserProfile.Major)
	}
	if s.UserProfile.Interests != "" {
		bullets = append(bullets, "- 관심 분야: "+s.UserProfile.Interests)
	}
	if s.UserProfile.PreferredExamples != "" {
		bullets = append(bullets, "- 선호 예시 유형: "+s.UserProfile.PreferredExamples)
	}
	if s.ModelPreference != "" {
		bullets = append(bullets, "- 대상 모델: "+s.ModelPreference)
	}
	if s.LanguageLevel != "" {
		bullets = append(bullets, "- 설명 수준: "+LanguageLevelPhrase(s.LanguageLevel))
	}
	if len(bullets) > 0 {
		parts = append(parts, "\n## 맥락 정보\n"+strings.Join(bullets, "\n"))
	}

	if s.StyleSampleText != "" {
		parts = append(parts, fmt.Sprintf(
			"\n## 스타일 참고\n\n아래 샘플 글과 비슷한 수준의 어휘, 문장 길이, 문체로 작성해 주세요:\n\n---\n%s\n---",
			s.StyleSampleText))
	}

	if tp := s.TimePressure; tp != nil && (tp.DeadlineDescription != "" || tp.ExamRemaining != "") {
		var lines []string
		if tp.DeadlineDescription != "" {
			lines = append(lines, "- 마감: "+tp.DeadlineDescription)
		}
		if tp.ExamRemaining != "" {
			lines = append(lines, "- 시험까지 남은 시간: "+tp.ExamRemaining)
		}
		parts = append(parts, fmt.Sprintf(
			"\n## 시간 제약\n\n%s\n\n시간 내에 가장 중요한 내용을 우선적으로 다뤄 주세요.",
			strings.Join(lines, "\n")))
	}

	return strings.Join(parts, "\n")
}

// buildAIPolicyAndMode emits the quoted AI-policy block when set, followed by
// the mode section: learning mode forbids giving the answer outright and
// prescribes the 3-step pedagogical sequence; deliverable mode prescribes a
// submission draft with review and plagiarism caveats.
func buildAIPolicyAndMode(s Settings) string {
	var parts []string

	if s.AIPolicyText != "" {
		quoted := "> " + strings.Join(strings.Split(s.AIPolicyText, "\n"), "\n> ")
		parts = append(parts, fmt.Sprintf(
			"# AI 사용 규정\n\n다음 규정을 먼저 확인하고, 이 범위 내에서만 답변해 주세요:\n\n%s\n\n위 규정을 준수하면서 답변을 작성해 주세요.",
			quoted))
	}

	parts = append(parts, "# 응답 모드")

	if s.Mode == ModeLearning {
		parts = append(parts, `
## 학습 모드

**중요**: 정답을 바로 제시하지 마세요!

다음 순서로 답변해 주세요:
1. **이해 확인 질문**: 학생이 이미 알고 있는 내용을 확인하는 질문 1~2개
2. **개념 설명**: 핵심 개념을 단계별로 설명
3. **보충 예시**: 이해를 돕는 추가 예시 제공

학생이 스스로 생각하고 답을 찾아갈 수 있도록 도와주세요.`)
	} else {
		parts = append(parts, `
## 결과물 모드

제출용 초안을 작성해 주세요.

**유의사항**:
- 실제 제출 전에 사용자가 반드시 직접 수정하고 검토해야 합니다.
- 완성도 높은 초안을 제공하되, 최종 책임은 사용자에게 있음을 전제합니다.
- 표절 검사를 통과할 수 있도록 독창적인 표현을 사용해 주세요.`)
	}

	return strings.Join(parts, "\n\n")
}

// buildOutlineModeSetting emits the binary structure-only vs full-writing
// format instruction.
func buildOutlineModeSetting(s Settings) string {
	if s.OutlineMode == OutlineOnly {
		return `# 작성 형식: 아웃라인 중심

다음 형식으로 작성해 주세요:
- 목차 구조를 명확히
- 각 단락의 주장과 근거를 간결하게
- 필요한 자료 리스트
- 문장 길이는 짧게, 핵심만`
	}
	return `# 작성 형식: 완전 작성

실제 완성본에 가까운 수준으로 작성해 주세요:
- 서론, 본론, 결론이 완비된 형태
- 문단 간 자연스러운 연결
- 구체적인 예시와 근거 포함`
}

// buildToneSetting emits the stylistic directive block for the tone preset.
// Unrecognized presets fall back to a generic instruction.
func buildToneSetting(s Settings) string {
	switch s.TonePreset {
	case ToneAcademic:
		return `# 말투: 학술적 보고서체

- ~다/~이다 어미 사용
- 객관적이고 논리적인 표현
- 전문 용어 적절히 활용
- 감정적 표현 자제`
	case ToneReport:
		return `# 말투: 교수 제출용 보고서체

- 공손하지만 과도하게 딱딱하지 않게
- ~합니다/~입니다 어미 혼용 가능
- 명확하고 간결한 문장
- 적절한 존칭 사용`
	case ToneCasual:
		return `# 말투: 캐주얼 설명체

- 친구에게 설명하듯 자연스럽게
- 존댓말/반말 여부는 상황에 맞게
- 이해하기 쉬운 비유 활용
- 딱딱한 전문 용어보다 쉬운 표현 선호`
	case ToneFormalEmail:
		return `# 말투: 극존대 이메일체

- 교수/HR에게 보내는 공식 이메일 톤
- ~드립니다/~말씀드립니다 어미
- 최대한 공손하고 정중하게
- 비즈니스 격식 준수`
	case TonePresentation:
		return `# 말투: 발표 대본용 구어체

- 청중에게 말하듯 자연스러운 구어체
- ~요/~습니다 어미
- 적절한 질문과 강조
- 청중의 이해를 확인하는 표현`
	default:
		return `# 말투: 일반

상황에 맞는 적절한 말투로 작성해 주세요.`
	}
}

// buildCommonOptions emits the independently conditional source-citation and
// self-check request blocks. Empty when neither option is enabled.
func buildCommonOptions(s Settings) string {
	var parts []string

	if s.IncludeReferences {
		parts = append(parts, `## 출처 제안 요청

주장이나 통계가 나올 때마다:
- 참고할 만한 자료 유형(논문, 보고서, 공신력 있는 웹사이트)을 제안해 주세요.
- 가능하면 구체적인 검색 키워드도 알려 주세요.
- **중요**: 실제 출처 검증은 사용자가 직접 해야 합니다. AI가 제시하는 출처는 참고용일 뿐입니다.`)
	}

	if s.SelfCheckEnabled {
		parts = append(parts, `## 자기검토 요청

답변 마지막에 다음을 포함해 주세요:

1. **신뢰도 평가**: 이 답변의 신뢰도를 1~10점으로 자체 평가
2. **검증 필요 항목**: 사용자가 추가로 확인해야 할 부분 목록
   - 불확실한 정보
   - 최신 정보 확인 필요 항목
   - 개인적 판단이 포함된 부분`)
	}

	return strings.Join(parts, "\n\n")
}

// buildReflectionPattern emits the closing quality-control section: the
// flipped-interaction answer structure in learning mode, then the fixed
// logic-check instruction.
func buildReflectionPattern(s Settings) string {
	parts := []string{"# 답변 품질 관리"}

	if s.Mode == ModeLearning {
		parts = append(parts, `
## Flipped Interaction 패턴 (학습 모드)

답변 구조:
1. **사전 지식 확인**: "먼저, 이 주제에 대해 당신이 이미 알고 있다고 가정되는 내용을 한 단락으로 정리하겠습니다..."
2. **부족한 점 지적**: "다음으로, 보충이 필요한 부분을 말씀드리겠습니다..."
3. **생각해볼 질문**: "스스로 생각해볼 수 있는 질문 1~3개를 던지겠습니다..."
4. **모범 해설**: "마지막으로, 모범 해설을 제시하겠습니다..."`)
	}

	parts = append(parts, `
## 논리 점검

답변 작성 중 스스로 다음을 점검해 주세요:
- 논리적 빈틈이 없는지
- 앞뒤 내용이 일관된지
- 근거가 충분한지

문제가 발견되면 스스로 수정하고, 수정 이유를 간단히 언급해 주세요.`)

	return strings.Join(parts, "\n")
}
